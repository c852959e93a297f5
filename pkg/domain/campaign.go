package domain

// SceneCount は1キャンペーンに含まれるシーン数の固定値です。
// Scene 1 = Hook、Scene 2 = Detail/Benefit、Scene 3 = Call to Action の
// 3幕構成をプロンプト側で強制するため、この数は常に 3 です。
const SceneCount = 3

// ScenePrompt は AI モデルから返される1シーン分の構成要素です。
// フィールド名は構造化出力スキーマの JSON キーと一致させています。
type ScenePrompt struct {
	SceneTitle       string `json:"scene_title"`
	AngleDescription string `json:"angle_description"`
	ImagePrompt      string `json:"image_prompt"`
	KlingVideoPrompt string `json:"kling_video_prompt"`
	CtaText          string `json:"cta_text"`
}

// GeneratedCampaign は AI モデルから返されるキャンペーン全体の構造です。
// Scenes の順序は応答順のまま保持されます（並べ替え禁止）。
type GeneratedCampaign struct {
	ProductName string        `json:"product_name"`
	Scenes      []ScenePrompt `json:"scenes"`
}

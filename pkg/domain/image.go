package domain

// ReferenceImage はユーザーがアップロードした商品写真です。
// キャンペーン生成と全シーンの画像合成で読み取り専用として共有されます。
type ReferenceImage struct {
	Data     []byte
	MimeType string
}

// SceneImage は合成された1シーン分の画像データです。
type SceneImage struct {
	Data     []byte
	MimeType string
}

package prompts

import "google.golang.org/genai"

// CampaignSchema は構造化出力モードで強制する応答スキーマを返します。
// スキーマはあくまでプロバイダへの契約であり、実際の検証は
// campaign.ParseCampaign 側で必ず再実施します（モデルは善処ベースのため）。
func CampaignSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"product_name": {
				Type:        genai.TypeString,
				Description: "Nama singkat produk yang menarik (Clickbait style)",
			},
			"scenes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"scene_title": {Type: genai.TypeString},
						"angle_description": {
							Type:        genai.TypeString,
							Description: "Penjelasan angle (e.g., Medium Shot, Low Angle)",
						},
						"image_prompt": {
							Type:        genai.TypeString,
							Description: "Prompt English detail & konsisten. MUST include 'Single photo', 'Exact product match'.",
						},
						"kling_video_prompt": {
							Type:        genai.TypeString,
							Description: "Prompt English untuk gerakan video. MUST specify 'No talking', 'Static mouth'.",
						},
						"cta_text": {
							Type:        genai.TypeString,
							Description: "Kalimat promosi (Copywriting) Bahasa Indonesia yang persuasif untuk scene ini.",
						},
					},
					Required: []string{"scene_title", "angle_description", "image_prompt", "kling_video_prompt", "cta_text"},
				},
			},
		},
		Required: []string{"product_name", "scenes"},
	}
}

package domain

import (
	"encoding/json"
	"testing"
)

func TestGeneratedCampaign_JSON(t *testing.T) {
	t.Run("AIからのレスポンス形式をシミュレートするのだ", func(t *testing.T) {
		inputJSON := `{
			"product_name": "Sepatu Lari ProMax",
			"scenes": [
				{
					"scene_title": "Hook Pagi Hari",
					"angle_description": "Medium Shot, Eye Level",
					"image_prompt": "A single full-frame photo of white running shoes",
					"kling_video_prompt": "High quality video motion. No talking.",
					"cta_text": "Lagi cari sepatu lari murah?"
				}
			]
		}`

		var campaign GeneratedCampaign
		if err := json.Unmarshal([]byte(inputJSON), &campaign); err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}

		if campaign.ProductName != "Sepatu Lari ProMax" {
			t.Errorf("商品名が違うのだ: %s", campaign.ProductName)
		}
		if len(campaign.Scenes) != 1 || campaign.Scenes[0].CtaText != "Lagi cari sepatu lari murah?" {
			t.Error("シーン内容が正しくパースされていないのだ")
		}
	})

	t.Run("シーンの順序がそのまま保持されるのだ", func(t *testing.T) {
		campaign := GeneratedCampaign{
			ProductName: "Serum Glow",
			Scenes: []ScenePrompt{
				{SceneTitle: "Hook"},
				{SceneTitle: "Detail"},
				{SceneTitle: "CTA"},
			},
		}

		data, err := json.Marshal(campaign)
		if err != nil {
			t.Fatalf("Marshal失敗なのだ: %v", err)
		}

		var decoded GeneratedCampaign
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal失敗なのだ: %v", err)
		}

		want := []string{"Hook", "Detail", "CTA"}
		for i, s := range decoded.Scenes {
			if s.SceneTitle != want[i] {
				t.Errorf("シーン %d の順序が崩れているのだ: got %s, want %s", i, s.SceneTitle, want[i])
			}
		}
	})
}

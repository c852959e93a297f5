package campaign

import (
	"errors"
	"testing"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
	"product_name": "Sepatu X",
	"scenes": [
		{
			"scene_title": "Hook Lari Pagi",
			"angle_description": "Medium Shot, Eye Level",
			"image_prompt": "A single full-frame photo of white running shoes on asphalt",
			"kling_video_prompt": "High quality video motion. No talking.",
			"cta_text": "Lagi cari sepatu lari murah?"
		},
		{
			"scene_title": "Detail Bahan",
			"angle_description": "Close Up, Macro",
			"image_prompt": "Extreme close up of breathable mesh texture",
			"kling_video_prompt": "Slow pan over the fabric. No talking.",
			"cta_text": "Bahannya adem banget."
		},
		{
			"scene_title": "Ajakan Beli",
			"angle_description": "Wide Shot, Low Angle",
			"image_prompt": "The shoes on an aesthetic lifestyle shelf",
			"kling_video_prompt": "Camera dolly out. No talking.",
			"cta_text": "Klik keranjang kuning sebelum kehabisan!"
		}
	]
}`

func TestParseCampaign_Valid(t *testing.T) {
	campaign, err := ParseCampaign(validResponse)

	require.NoError(t, err)
	assert.Equal(t, "Sepatu X", campaign.ProductName)
	require.Len(t, campaign.Scenes, 3)

	// 応答順がそのまま保持されること
	assert.Equal(t, "Hook Lari Pagi", campaign.Scenes[0].SceneTitle)
	assert.Equal(t, "Detail Bahan", campaign.Scenes[1].SceneTitle)
	assert.Equal(t, "Ajakan Beli", campaign.Scenes[2].SceneTitle)
}

func TestParseCampaign_MalformedJSON(t *testing.T) {
	_, err := ParseCampaign(`{"product_name": "Sepatu X", "scenes": [`)

	var malformed *domain.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.NotEmpty(t, malformed.Raw)
}

func TestParseCampaign_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"product_name欠落", `{"scenes": []}`},
		{"scenes欠落", `{"product_name": "Sepatu X"}`},
		{"シーン数が2件", `{"product_name": "Sepatu X", "scenes": [
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"}
		]}`},
		{"シーン数が4件", `{"product_name": "Sepatu X", "scenes": [
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"}
		]}`},
		{"cta_text欠落", `{"product_name": "Sepatu X", "scenes": [
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d"}
		]}`},
		{"image_promptが空白のみ", `{"product_name": "Sepatu X", "scenes": [
			{"scene_title": "a", "angle_description": "b", "image_prompt": "  ", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"},
			{"scene_title": "a", "angle_description": "b", "image_prompt": "c", "kling_video_prompt": "d", "cta_text": "e"}
		]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCampaign(tc.raw)

			var violation *domain.SchemaViolationError
			require.ErrorAs(t, err, &violation, "SchemaViolationError であるべき")

			var malformed *domain.MalformedResponseError
			assert.False(t, errors.As(err, &malformed), "パースエラーと混同してはいけない")
		})
	}
}

package publisher

import (
	"fmt"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/asset"
	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// BuildCampaignMarkdown は、キャンペーンの全シーンを人が確認しやすい
// Markdown のシーンデッキに変換します。各シーンには画像の保存予定
// ファイル名も併記します。
func BuildCampaignMarkdown(campaign *domain.GeneratedCampaign) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", campaign.ProductName))

	for i, scene := range campaign.Scenes {
		sb.WriteString(fmt.Sprintf("## Scene %d: %s\n\n", i+1, scene.SceneTitle))
		sb.WriteString(fmt.Sprintf("- angle: %s\n", scene.AngleDescription))
		sb.WriteString(fmt.Sprintf("- image: %s\n", asset.SceneImageFileName(i, scene.SceneTitle)))
		sb.WriteString("\n### Image Prompt\n\n")
		sb.WriteString(scene.ImagePrompt)
		sb.WriteString("\n\n### Kling Video Prompt\n\n")
		sb.WriteString(scene.KlingVideoPrompt)
		sb.WriteString("\n\n### CTA\n\n")
		sb.WriteString(fmt.Sprintf("> %s\n\n", scene.CtaText))
	}

	return sb.String()
}

package campaign

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// sceneField は検証メッセージで使うフィールド名の一覧です。
var sceneFields = []struct {
	name string
	get  func(domain.ScenePrompt) string
}{
	{"scene_title", func(s domain.ScenePrompt) string { return s.SceneTitle }},
	{"angle_description", func(s domain.ScenePrompt) string { return s.AngleDescription }},
	{"image_prompt", func(s domain.ScenePrompt) string { return s.ImagePrompt }},
	{"kling_video_prompt", func(s domain.ScenePrompt) string { return s.KlingVideoPrompt }},
	{"cta_text", func(s domain.ScenePrompt) string { return s.CtaText }},
}

// ParseCampaign は AI の生応答を GeneratedCampaign に変換します。
// スキーマはプロバイダへの契約にすぎないため、ここで必ず再検証します。
// パース失敗は MalformedResponseError、契約違反は SchemaViolationError です。
// シーンは応答順のまま返します（並べ替え・重複排除は行いません）。
func ParseCampaign(raw string) (*domain.GeneratedCampaign, error) {
	var campaign domain.GeneratedCampaign
	if err := json.Unmarshal([]byte(raw), &campaign); err != nil {
		return nil, &domain.MalformedResponseError{Raw: truncateString(raw, 200), Err: err}
	}

	if strings.TrimSpace(campaign.ProductName) == "" {
		return nil, &domain.SchemaViolationError{Reason: "product_name がありません"}
	}
	if campaign.Scenes == nil {
		return nil, &domain.SchemaViolationError{Reason: "scenes がありません"}
	}
	if len(campaign.Scenes) != domain.SceneCount {
		return nil, &domain.SchemaViolationError{
			Reason: fmt.Sprintf("scenes は %d 件必要ですが %d 件でした", domain.SceneCount, len(campaign.Scenes)),
		}
	}

	for i, scene := range campaign.Scenes {
		for _, f := range sceneFields {
			if strings.TrimSpace(f.get(scene)) == "" {
				return nil, &domain.SchemaViolationError{
					Reason: fmt.Sprintf("scene %d の %s がありません", i+1, f.name),
				}
			}
		}
	}

	return &campaign, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/asset"
	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// OutputWriter はデータを外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter がこの契約を満たします。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, mimeType string) error
}

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	JSONPath     string // 生成された campaign.json のパス
	MarkdownPath string // 生成された campaign.md のパス
}

// CampaignPublisher はキャンペーン成果物の永続化を担います。
// JSON は image サブコマンドの再入力として、Markdown は人が確認する
// シーンデッキとして書き出します。
type CampaignPublisher struct {
	writer OutputWriter
}

// NewCampaignPublisher は依存関係を注入して CampaignPublisher を初期化します。
func NewCampaignPublisher(writer OutputWriter) (*CampaignPublisher, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer (OutputWriter) is required")
	}
	return &CampaignPublisher{writer: writer}, nil
}

// Publish はキャンペーンを campaign.json と campaign.md の2形式で保存します。
func (p *CampaignPublisher) Publish(ctx context.Context, campaign *domain.GeneratedCampaign, opts Options) (PublishResult, error) {
	result := PublishResult{}
	if campaign == nil {
		return result, fmt.Errorf("campaign is required")
	}

	jsonPath, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultCampaignJson)
	if err != nil {
		return result, err
	}
	markdownPath, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultCampaignName)
	if err != nil {
		return result, err
	}

	data, err := json.MarshalIndent(campaign, "", "  ")
	if err != nil {
		return result, fmt.Errorf("キャンペーンのJSON変換に失敗しました: %w", err)
	}
	if err := p.writer.Write(ctx, jsonPath, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return result, fmt.Errorf("jsonファイルの書き込みに失敗しました: %w", err)
	}
	result.JSONPath = jsonPath

	content := BuildCampaignMarkdown(campaign)
	if err := p.writer.Write(ctx, markdownPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}
	result.MarkdownPath = markdownPath

	slog.Info("キャンペーンを保存しました", "json", result.JSONPath, "markdown", result.MarkdownPath)
	return result, nil
}

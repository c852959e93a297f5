package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/ghostblack/affilate-ai/pkg/gemini"
	"github.com/ghostblack/affilate-ai/pkg/prompts"

	"google.golang.org/genai"
)

// Generator は商品写真と設定からキャンペーン（3シーン構成）を生成します。
// 1回の呼び出しで1回のマルチモーダルリクエストを行い、リトライはしません。
type Generator struct {
	client gemini.GenerativeClient
	model  string
}

// NewGenerator は依存関係を注入して Generator を初期化します。
func NewGenerator(client gemini.GenerativeClient, model string) (*Generator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (gemini.GenerativeClient) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &Generator{client: client, model: model}, nil
}

// Generate は参照画像＋生成指示＋応答スキーマを送信し、検証済みの
// GeneratedCampaign を返します。応答にテキストが無ければ ErrEmptyResponse、
// プロバイダ失敗は UpstreamError として返します。
func (g *Generator) Generate(ctx context.Context, ref *domain.ReferenceImage, cfg domain.CampaignConfig) (*domain.GeneratedCampaign, error) {
	if ref == nil {
		return nil, fmt.Errorf("参照画像が指定されていません")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instr := prompts.BuildInstruction(cfg)

	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: ref.MimeType, Data: ref.Data}},
		genai.NewPartFromText(instr.UserCue),
	}

	slog.Info("キャンペーン生成リクエストを送信します", "model", g.model, "talent", cfg.TalentType, "style", cfg.StyleType)

	raw, err := g.client.GenerateStructured(ctx, g.model, parts, gemini.StructuredOptions{
		SystemPrompt: instr.SystemPrompt,
		Schema:       prompts.CampaignSchema(),
	})
	if err != nil {
		return nil, &domain.UpstreamError{Op: "campaign", Err: err}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.ErrEmptyResponse
	}

	return ParseCampaign(raw)
}

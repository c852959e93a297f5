package imagegen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/ghostblack/affilate-ai/pkg/gemini"

	"google.golang.org/genai"
)

// SceneAspectRatio は縦型ショート動画向けの固定アスペクト比です。
const SceneAspectRatio = "9:16"

// referenceGuard は参照画像を添付する際の商品一貫性ルールです。
// 色・ロゴ・形状の改変を禁止し、参照画像との同一性を強制します。
const referenceGuard = "Generate a high-quality image based on the following prompt. " +
	"IMPORTANT: The product in the generated image must look EXACTLY like the product " +
	"in the provided reference image. Do not change the color, logo, or shape of the product."

// Synthesizer はシーンプロンプト1件から9:16の静止画を1枚生成します。
type Synthesizer struct {
	client gemini.GenerativeClient
	model  string
}

// NewSynthesizer は依存関係を注入して Synthesizer を初期化します。
func NewSynthesizer(client gemini.GenerativeClient, model string) (*Synthesizer, error) {
	if client == nil {
		return nil, fmt.Errorf("client (gemini.GenerativeClient) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &Synthesizer{client: client, model: model}, nil
}

// Synthesize は画像生成リクエストを1回実行し、応答から最初のインライン
// 画像データを返します。ref が nil でなければ参照画像を先頭パートに添付し、
// 一貫性ルール付きのプロンプトに切り替えます。どのパートにも画像が
// 含まれない場合は ErrImageNotFound を返します。
func (s *Synthesizer) Synthesize(ctx context.Context, prompt string, ref *domain.ReferenceImage) (*domain.SceneImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("プロンプトが空です")
	}

	var parts []*genai.Part
	if ref != nil {
		parts = append(parts,
			&genai.Part{InlineData: &genai.Blob{MIMEType: ref.MimeType, Data: ref.Data}},
			genai.NewPartFromText(referenceGuard+"\n\nPrompt: "+prompt),
		)
	} else {
		parts = append(parts, genai.NewPartFromText(prompt))
	}

	slog.Info("シーン画像生成リクエストを送信します", "model", s.model, "with_reference", ref != nil)

	resp, err := s.client.GenerateImage(ctx, s.model, parts, gemini.ImageOptions{
		AspectRatio: SceneAspectRatio,
	})
	if err != nil {
		return nil, &domain.UpstreamError{Op: "scene-image", Err: err}
	}

	image := firstInlineImage(resp)
	if image == nil {
		return nil, domain.ErrImageNotFound
	}
	return image, nil
}

// firstInlineImage は応答の全候補・全パートを順に走査し、最初に現れた
// 空でないインライン画像を返します。見つからなければ nil です。
func firstInlineImage(resp *genai.GenerateContentResponse) *domain.SceneImage {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil {
				continue
			}
			if len(part.InlineData.Data) == 0 {
				continue
			}
			return &domain.SceneImage{
				Data:     part.InlineData.Data,
				MimeType: part.InlineData.MIMEType,
			}
		}
	}
	return nil
}

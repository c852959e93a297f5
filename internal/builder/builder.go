package builder

import (
	"context"
	"fmt"

	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/internal/runner"

	"github.com/ghostblack/affilate-ai/pkg/campaign"
	"github.com/ghostblack/affilate-ai/pkg/gemini"
	"github.com/ghostblack/affilate-ai/pkg/imagegen"
	"github.com/ghostblack/affilate-ai/pkg/publisher"
	"github.com/ghostblack/affilate-ai/pkg/reference"

	gocache "github.com/patrickmn/go-cache"
	"google.golang.org/genai"
)

// BuildCampaignRunner はキャンペーン台本の生成と保存を担当する Runner を構築します。
func BuildCampaignRunner(appCtx *AppContext) (*runner.CampaignRunner, error) {
	loader, err := buildReferenceLoader(appCtx)
	if err != nil {
		return nil, err
	}

	gen, err := campaign.NewGenerator(appCtx.aiClient, appCtx.Config.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンジェネレーターの初期化に失敗したのだ: %w", err)
	}

	pub, err := publisher.NewCampaignPublisher(appCtx.Writer)
	if err != nil {
		return nil, fmt.Errorf("パブリッシャーの初期化に失敗したのだ: %w", err)
	}

	return runner.NewCampaignRunner(gen, loader, pub, appCtx.Options), nil
}

// BuildSceneImageRunner は各シーン画像の並列生成と保存を担当する Runner を構築します。
func BuildSceneImageRunner(appCtx *AppContext) (*runner.SceneImageRunner, error) {
	loader, err := buildReferenceLoader(appCtx)
	if err != nil {
		return nil, err
	}

	synth, err := imagegen.NewSynthesizer(appCtx.aiClient, appCtx.Config.GeminiImageModel)
	if err != nil {
		return nil, fmt.Errorf("画像シンセサイザーの初期化に失敗したのだ: %w", err)
	}

	return runner.NewSceneImageRunner(synth, loader, appCtx.Writer, appCtx.Options), nil
}

// buildReferenceLoader は参照画像ローダーを構築します。
// 同一実行内の再取得を避けるため、インメモリキャッシュを挟みます。
func buildReferenceLoader(appCtx *AppContext) (*reference.Loader, error) {
	imageCache := gocache.New(config.DefaultCacheTTL, 2*config.DefaultCacheTTL)

	loader, err := reference.NewLoader(appCtx.Reader, appCtx.httpClient, imageCache, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("参照画像ローダーの初期化に失敗したのだ: %w", err)
	}
	return loader, nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeClient, error) {
	const defaultGeminiTemperature = float32(0.7)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

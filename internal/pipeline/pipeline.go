package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ghostblack/affilate-ai/internal/builder"
	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/pkg/campaign"
	"github.com/ghostblack/affilate-ai/pkg/domain"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// Execute は、商品写真からキャンペーン台本の生成・保存（Phase 1 & 2）を実行し、
// --with-images 指定時はシーン画像の生成（Phase 3）まで続けるのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Phase 1 & 2: Campaign Phase (台本生成と保存) ---
	generated, err := runCampaignStep(ctx, appCtx)
	if err != nil {
		return err
	}

	// --- Phase 3: Image Phase (シーン画像生成、任意) ---
	if cfg.Options.WithImages {
		if err := runImageStep(ctx, appCtx, generated); err != nil {
			return err
		}
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

// ExecuteImageOnly は、生成済みの campaign.json を読み込み、
// シーン画像の生成と保存（Phase 3）だけを実行するのだ。
func ExecuteImageOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	generated, err := loadCampaignFile(ctx, appCtx, cfg.Options.CampaignFile)
	if err != nil {
		return err
	}

	if err := runImageStep(ctx, appCtx, generated); err != nil {
		return err
	}

	slog.Info("シーン画像の生成と保存が完了したのだ！")
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)
	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer)
	return &appCtx, nil
}

// loadCampaignFile は campaign.json を読み込み、スキーマ契約を再検証して返すのだ。
// 手で編集されたファイルが契約を破っていたら、ここで弾くのだ。
func loadCampaignFile(ctx context.Context, appCtx *builder.AppContext, path string) (*domain.GeneratedCampaign, error) {
	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンファイル '%s' の読み込みに失敗したのだ: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンファイル '%s' の読み込みに失敗したのだ: %w", path, err)
	}

	generated, err := campaign.ParseCampaign(string(data))
	if err != nil {
		return nil, fmt.Errorf("キャンペーンファイル '%s' の検証に失敗したのだ: %w", path, err)
	}
	return generated, nil
}

// runCampaignStep は CampaignRunner を使って台本の生成と保存を行うのだ
func runCampaignStep(ctx context.Context, appCtx *builder.AppContext) (*domain.GeneratedCampaign, error) {
	slog.Info("Phase 1: キャンペーン台本の生成を開始するのだ...")
	campaignRunner, err := builder.BuildCampaignRunner(appCtx)
	if err != nil {
		return nil, fmt.Errorf("CampaignRunnerの構築に失敗したのだ: %w", err)
	}

	generated, err := campaignRunner.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("キャンペーン生成に失敗したのだ: %w", err)
	}
	return generated, nil
}

// runImageStep は SceneImageRunner を使ってシーン画像を並列生成するのだ
func runImageStep(ctx context.Context, appCtx *builder.AppContext, generated *domain.GeneratedCampaign) error {
	slog.Info("Phase 3: シーン画像生成を開始するのだ...", "scenes", len(generated.Scenes))
	imageRunner, err := builder.BuildSceneImageRunner(appCtx)
	if err != nil {
		return fmt.Errorf("SceneImageRunnerの構築に失敗したのだ: %w", err)
	}

	results, err := imageRunner.Run(ctx, generated)
	if err != nil {
		return fmt.Errorf("シーン画像生成に失敗したのだ: %w", err)
	}

	for _, res := range results {
		if res.Err == nil {
			slog.Info("シーン画像", "scene", res.SceneNumber, "title", res.Title, "path", res.ImagePath)
		}
	}
	return nil
}

package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/pkg/campaign"
	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/ghostblack/affilate-ai/pkg/publisher"
	"github.com/ghostblack/affilate-ai/pkg/reference"
)

// CampaignRunner は、商品写真からキャンペーン台本を生成し保存するランナーなのだ。
type CampaignRunner struct {
	generator *campaign.Generator
	loader    *reference.Loader
	publisher *publisher.CampaignPublisher
	opts      config.GenerateOptions
}

// NewCampaignRunner は、CampaignRunnerの新しいインスタンスを生成して返すのだ。
func NewCampaignRunner(
	gen *campaign.Generator,
	loader *reference.Loader,
	pub *publisher.CampaignPublisher,
	opts config.GenerateOptions,
) *CampaignRunner {
	return &CampaignRunner{
		generator: gen,
		loader:    loader,
		publisher: pub,
		opts:      opts,
	}
}

// Run は参照画像の取得、キャンペーン生成、成果物の保存までを一括で実行するのだ。
func (r *CampaignRunner) Run(ctx context.Context) (*domain.GeneratedCampaign, error) {
	cfg, err := r.buildCampaignConfig()
	if err != nil {
		return nil, err
	}

	ref, err := r.loader.Load(ctx, r.opts.ReferenceURI)
	if err != nil {
		return nil, fmt.Errorf("参照画像の準備に失敗したのだ: %w", err)
	}

	slog.Info("キャンペーン台本の生成を開始するのだ",
		"talent", cfg.TalentType,
		"style", cfg.StyleType,
		"product", cfg.ProductName)

	generated, err := r.generator.Generate(ctx, ref, cfg)
	if err != nil {
		return nil, fmt.Errorf("キャンペーン生成に失敗したのだ: %w", err)
	}

	result, err := r.publisher.Publish(ctx, generated, publisher.Options{OutputDir: r.opts.OutputDir})
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの保存に失敗したのだ: %w", err)
	}

	slog.Info("キャンペーン台本が完成したのだ！",
		"product", generated.ProductName,
		"json", result.JSONPath,
		"markdown", result.MarkdownPath)
	return generated, nil
}

// buildCampaignConfig は CLI フラグの文字列をドメインの列挙型に変換するのだ。
func (r *CampaignRunner) buildCampaignConfig() (domain.CampaignConfig, error) {
	talent, err := domain.ParseTalentType(r.opts.Talent)
	if err != nil {
		return domain.CampaignConfig{}, err
	}
	style, err := domain.ParseStyleType(r.opts.Style)
	if err != nil {
		return domain.CampaignConfig{}, err
	}
	return domain.CampaignConfig{
		TalentType:  talent,
		StyleType:   style,
		ProductName: r.opts.ProductName,
	}, nil
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/internal/pipeline"

	"github.com/spf13/cobra"
)

// campaignCmd は、AIによるキャンペーン台本の生成を実行するのだ。
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "AIにキャンペーン台本を生成させるのだ。",
	Long: `商品写真を解析し、3シーン構成のキャンペーン台本を生成するのだ。
出力は campaign.json（画像生成の再入力用）と campaign.md（確認用デッキ）になるのだよ。
--with-images を付けると、続けて各シーンの画像も生成するのだ。`,
	RunE: campaignCommand,
}

func init() {
	campaignCmd.Flags().BoolVar(&opts.WithImages, "with-images", false, "台本に続けてシーン画像も生成するのだ。")
}

func campaignCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.ReferenceURI == "" {
		return fmt.Errorf("商品写真（--reference）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("キャンペーン生成パイプラインを起動するのだ！",
		"talent", opts.Talent,
		"style", opts.Style,
		"text_model", cfg.GeminiModel,
		"image_model", cfg.GeminiImageModel,
		"output", opts.OutputDir)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	return nil
}

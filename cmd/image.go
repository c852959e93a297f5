package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/internal/pipeline"
	"github.com/ghostblack/affilate-ai/pkg/asset"

	"github.com/spf13/cobra"
)

// imageCmd は、生成済みの台本からシーン画像の生成だけを実行するのだ。
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "生成済みの campaign.json からシーン画像を生成するのだ。",
	Long: `campaign コマンドで出力された campaign.json を読み込み、各シーンの
9:16画像を生成して保存するのだ。--scene で1シーンだけの再生成もできるのだよ。`,
	RunE: imageCommand,
}

func init() {
	imageCmd.Flags().StringVarP(&opts.CampaignFile, "campaign-file", "f", "", "生成済み campaign.json のパスなのだ。省略時は出力先の campaign.json を使うのだ。")
	imageCmd.Flags().IntVar(&opts.SceneNumber, "scene", 0, "再生成するシーン番号（1〜3）なのだ。0なら全シーンなのだ。")
}

func imageCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェックと入力ファイルの補完
	if opts.CampaignFile == "" {
		resolved, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultCampaignJson)
		if err != nil {
			return fmt.Errorf("campaign.json のパス解決に失敗したのだ: %w", err)
		}
		opts.CampaignFile = resolved
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("シーン画像生成パイプラインを起動するのだ！",
		"campaign", opts.CampaignFile,
		"scene", opts.SceneNumber,
		"image_model", cfg.GeminiImageModel,
		"output", opts.OutputDir)

	// 3. 画像フェーズだけを実行するのだ
	if err := pipeline.ExecuteImageOnly(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	return nil
}

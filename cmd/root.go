package cmd

import (
	"fmt"
	"os"

	"github.com/ghostblack/affilate-ai/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// opts は、各サブコマンド共通の実行時パラメータを保持するのだ。
var opts config.GenerateOptions

// rootCmd は、アプリケーションのトップレベルコマンドなのだ。
var rootCmd = &cobra.Command{
	Use:   "affilate-ai",
	Short: "商品写真からアフィリエイト動画用のキャンペーン素材を生成するのだ。",
	Long: `商品写真を解析して、3シーン構成の動画キャンペーン台本（タイトル、アングル、
画像プロンプト、Kling動画プロンプト、CTA）と各シーンの9:16画像を生成するツールなのだ。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ReferenceURI, "reference", "r", "", "商品写真のURI（ローカル / http(s):// / gs://...）なのだ。")

	// --- キャンペーン設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Talent, "talent", "t", "indo_woman", "タレント種別（indo_woman / indo_man / no_model）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Style, "style", "s", "natural", "映像スタイル（natural / cinematic）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ProductName, "product-name", "p", "", "商品名なのだ。省略すると画像から推測させるのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物の保存先（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "台本生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// .env があれば読み込むのだ（無くてもエラーにはしないのだ）
	_ = godotenv.Load()

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(campaignCmd, imageCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

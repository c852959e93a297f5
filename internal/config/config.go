package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultImageModel  = "gemini-2.5-flash-image"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultRateLimit   = 10 * time.Second
	DefaultCacheTTL    = 30 * time.Minute
	DefaultOutputDir   = "output" // 成果物（campaign.json / campaign.md / シーン画像）の保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	ReferenceURI string // --reference: 商品写真のURI（ローカル / http(s) / gs://）
	CampaignFile string // --campaign-file: 生成済み campaign.json のパス

	// キャンペーン設定
	Talent      string // --talent: indo_woman / indo_man / no_model
	Style       string // --style: natural / cinematic
	ProductName string // --product-name: 空の場合は画像から推測させる

	// 生成結果の出力設定
	OutputDir string // --output-dir

	// AI挙動設定
	AIModel    string // --model: テキスト生成用のGeminiモデル
	ImageModel string // --image-model: 画像生成用のGeminiモデル

	// 実行制御
	WithImages  bool          // --with-images: キャンペーン生成に続けてシーン画像も生成するのだ
	SceneNumber int           // --scene: 1始まりのシーン番号。0なら全シーンなのだ
	HTTPTimeout time.Duration // --http-timeout
}

package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerativeClient は本キットが必要とする Gemini 操作の最小契約です。
// 実体をコンストラクタ経由で注入することで、グローバルなクライアント初期化に
// 依存しない構成にしています。
type GenerativeClient interface {
	// GenerateStructured はマルチモーダル入力に対して構造化出力（JSON）を要求し、
	// 応答のテキストペイロードをそのまま返します。
	GenerateStructured(ctx context.Context, model string, parts []*genai.Part, opts StructuredOptions) (string, error)
	// GenerateImage は画像生成リクエストを実行し、生の応答を返します。
	// 応答パートの解析は呼び出し側の責務です。
	GenerateImage(ctx context.Context, model string, parts []*genai.Part, opts ImageOptions) (*genai.GenerateContentResponse, error)
}

// StructuredOptions は構造化出力リクエストの生成オプションです。
type StructuredOptions struct {
	SystemPrompt string
	Schema       *genai.Schema
	Temperature  *float32
}

// ImageOptions は画像生成リクエストの生成オプションです。
type ImageOptions struct {
	AspectRatio string
}

// Config はクライアント初期化の設定です。
type Config struct {
	APIKey      string
	Temperature *float32
}

// Client は google.golang.org/genai の薄いラッパーです。
type Client struct {
	client      *genai.Client
	temperature *float32
}

var _ GenerativeClient = (*Client)(nil)

// NewClient は Gemini API クライアントを初期化します。
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIキーが設定されていません")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &Client{client: client, temperature: cfg.Temperature}, nil
}

// GenerateStructured は system instruction と応答スキーマを添えて
// テキスト生成を1回実行します。リトライは行いません。
func (c *Client) GenerateStructured(ctx context.Context, model string, parts []*genai.Part, opts StructuredOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   opts.Schema,
		Temperature:      c.resolveTemperature(opts.Temperature),
	}
	if opts.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: opts.SystemPrompt}},
		}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// GenerateImage は指定アスペクト比で画像生成を1回実行します。
func (c *Client) GenerateImage(ctx context.Context, model string, parts []*genai.Part, opts ImageOptions) (*genai.GenerateContentResponse, error) {
	config := &genai.GenerateContentConfig{}
	if opts.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: opts.AspectRatio}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// resolveTemperature はリクエスト個別の指定を優先し、なければ
// クライアント既定値を使います。
func (c *Client) resolveTemperature(override *float32) *float32 {
	if override != nil {
		return override
	}
	return c.temperature
}

package campaign

import (
	"context"

	"github.com/ghostblack/affilate-ai/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockClient struct {
	// 呼び出し記録
	structuredCalled bool
	lastModel        string
	lastParts        []*genai.Part
	lastOpts         gemini.StructuredOptions

	// 応答設定
	raw string
	err error
}

func (m *mockClient) GenerateStructured(ctx context.Context, model string, parts []*genai.Part, opts gemini.StructuredOptions) (string, error) {
	m.structuredCalled = true
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	return m.raw, m.err
}

func (m *mockClient) GenerateImage(ctx context.Context, model string, parts []*genai.Part, opts gemini.ImageOptions) (*genai.GenerateContentResponse, error) {
	return nil, nil
}

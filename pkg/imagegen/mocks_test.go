package imagegen

import (
	"context"

	"github.com/ghostblack/affilate-ai/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockClient struct {
	// 呼び出し記録
	imageCalled bool
	lastModel   string
	lastParts   []*genai.Part
	lastOpts    gemini.ImageOptions

	// 応答設定
	resp *genai.GenerateContentResponse
	err  error
}

func (m *mockClient) GenerateStructured(ctx context.Context, model string, parts []*genai.Part, opts gemini.StructuredOptions) (string, error) {
	return "", nil
}

func (m *mockClient) GenerateImage(ctx context.Context, model string, parts []*genai.Part, opts gemini.ImageOptions) (*genai.GenerateContentResponse, error) {
	m.imageCalled = true
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	return m.resp, m.err
}

// imageResponse は指定パート列を1候補に詰めた応答を作ります。
func imageResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

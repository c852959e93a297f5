package campaign

import (
	"context"
	"errors"
	"testing"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() domain.CampaignConfig {
	return domain.CampaignConfig{
		TalentType:  domain.TalentIndoWoman,
		StyleType:   domain.StyleNatural,
		ProductName: "Sepatu X",
	}
}

func testReference() *domain.ReferenceImage {
	return &domain.ReferenceImage{
		Data:     []byte{0x89, 0x50, 0x4E, 0x47},
		MimeType: "image/png",
	}
}

func TestNewGenerator(t *testing.T) {
	t.Run("クライアント必須なのだ", func(t *testing.T) {
		_, err := NewGenerator(nil, "gemini-2.5-flash")
		assert.Error(t, err)
	})

	t.Run("モデル名必須なのだ", func(t *testing.T) {
		_, err := NewGenerator(&mockClient{}, "")
		assert.Error(t, err)
	})
}

func TestGenerator_Generate_RequestComposition(t *testing.T) {
	mock := &mockClient{raw: validResponse}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), testReference(), testConfig())
	require.NoError(t, err)

	require.True(t, mock.structuredCalled)
	assert.Equal(t, "gemini-2.5-flash", mock.lastModel)

	// 参照画像が先頭パートであること
	require.Len(t, mock.lastParts, 2)
	require.NotNil(t, mock.lastParts[0].InlineData)
	assert.Equal(t, "image/png", mock.lastParts[0].InlineData.MIMEType)
	assert.Equal(t, testReference().Data, mock.lastParts[0].InlineData.Data)

	// 指示テキストに商品名が含まれること
	assert.Contains(t, mock.lastParts[1].Text, "Sepatu X")

	// system instruction と応答スキーマが渡ること
	assert.NotEmpty(t, mock.lastOpts.SystemPrompt)
	require.NotNil(t, mock.lastOpts.Schema)
	assert.Contains(t, mock.lastOpts.Schema.Required, "scenes")
}

func TestGenerator_Generate_ValidResponse(t *testing.T) {
	mock := &mockClient{raw: validResponse}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	campaign, err := gen.Generate(context.Background(), testReference(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "Sepatu X", campaign.ProductName)
	assert.Len(t, campaign.Scenes, 3)
}

func TestGenerator_Generate_NilReference(t *testing.T) {
	mock := &mockClient{raw: validResponse}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), nil, testConfig())
	assert.Error(t, err)
	assert.False(t, mock.structuredCalled, "検証前にリクエストしてはいけない")
}

func TestGenerator_Generate_InvalidConfig(t *testing.T) {
	mock := &mockClient{raw: validResponse}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.TalentType = "robot"
	_, err = gen.Generate(context.Background(), testReference(), cfg)

	assert.Error(t, err)
	assert.False(t, mock.structuredCalled)
}

func TestGenerator_Generate_EmptyResponse(t *testing.T) {
	mock := &mockClient{raw: "   \n"}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), testReference(), testConfig())
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGenerator_Generate_UpstreamError(t *testing.T) {
	cause := errors.New("429 RESOURCE_EXHAUSTED")
	mock := &mockClient{err: cause}
	gen, err := NewGenerator(mock, "gemini-2.5-flash")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), testReference(), testConfig())

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "campaign", upstream.Op)
	assert.ErrorIs(t, err, cause)
}

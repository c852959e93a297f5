package scene

import (
	"bytes"
	"context"
	"io"

	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// --- Mocks ---

type mockSynthesizer struct {
	// 呼び出し記録
	calls      int
	lastPrompt string
	lastRef    *domain.ReferenceImage

	// 応答設定
	image *domain.SceneImage
	err   error

	// release が設定されている場合、Synthesize は受信するまでブロックするのだ
	started chan struct{}
	release chan struct{}
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, prompt string, ref *domain.ReferenceImage) (*domain.SceneImage, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastRef = ref
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	return m.image, m.err
}

type mockWriter struct {
	lastPath string
	lastMime string
	lastData []byte
	err      error
}

func (m *mockWriter) Write(ctx context.Context, path string, r io.Reader, mimeType string) error {
	m.lastPath = path
	m.lastMime = mimeType
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}
	m.lastData = buf.Bytes()
	return m.err
}

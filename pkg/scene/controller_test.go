package scene

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() domain.ScenePrompt {
	return domain.ScenePrompt{
		SceneTitle:       "Hook Lari Pagi",
		AngleDescription: "Medium Shot",
		ImagePrompt:      "white running shoes on asphalt",
		KlingVideoPrompt: "slow pan, no talking",
		CtaText:          "Cek keranjang kuning!",
	}
}

func TestController_Generate_Success(t *testing.T) {
	mock := &mockSynthesizer{
		image: &domain.SceneImage{Data: []byte{1, 2}, MimeType: "image/png"},
	}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, ctrl.State())

	require.NoError(t, ctrl.Generate(context.Background()))

	assert.Equal(t, StateSuccess, ctrl.State())
	assert.Equal(t, []byte{1, 2}, ctrl.Image().Data)
	assert.NoError(t, ctrl.Err())
	assert.Equal(t, "white running shoes on asphalt", mock.lastPrompt)
}

func TestController_Generate_Error(t *testing.T) {
	cause := errors.New("quota exceeded")
	mock := &mockSynthesizer{err: cause}
	ctrl, err := NewController(mock, 1, testScene(), nil)
	require.NoError(t, err)

	err = ctrl.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, StateError, ctrl.State())
	assert.Nil(t, ctrl.Image())
	assert.ErrorIs(t, ctrl.Err(), cause)
}

func TestController_Regenerate_AfterError(t *testing.T) {
	// 失敗したシーンはそのシーンだけで再生成できるのだ
	mock := &mockSynthesizer{err: errors.New("transient")}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)

	require.Error(t, ctrl.Generate(context.Background()))
	require.Equal(t, StateError, ctrl.State())

	mock.err = nil
	mock.image = &domain.SceneImage{Data: []byte{7}, MimeType: "image/png"}

	require.NoError(t, ctrl.Generate(context.Background()))
	assert.Equal(t, StateSuccess, ctrl.State())
	assert.NoError(t, ctrl.Err())
	assert.Equal(t, []byte{7}, ctrl.Image().Data)
}

func TestController_Regenerate_ErrorDiscardsPreviousImage(t *testing.T) {
	mock := &mockSynthesizer{
		image: &domain.SceneImage{Data: []byte{1}, MimeType: "image/png"},
	}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)

	require.NoError(t, ctrl.Generate(context.Background()))
	require.Equal(t, StateSuccess, ctrl.State())

	mock.image = nil
	mock.err = errors.New("boom")

	require.Error(t, ctrl.Generate(context.Background()))
	assert.Equal(t, StateError, ctrl.State())
	assert.Nil(t, ctrl.Image(), "前回の画像は保持しない")
}

func TestController_Generate_RejectsWhileInFlight(t *testing.T) {
	mock := &mockSynthesizer{
		image:   &domain.SceneImage{Data: []byte{1}, MimeType: "image/png"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- ctrl.Generate(context.Background()) }()

	<-mock.started
	assert.Equal(t, StateGenerating, ctrl.State())

	// 生成中の再トリガーは新しいリクエストを起こさない
	err = ctrl.Generate(context.Background())
	assert.ErrorIs(t, err, domain.ErrGenerationInFlight)

	close(mock.release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("生成が完了しない")
	}

	assert.Equal(t, StateSuccess, ctrl.State())
	assert.Equal(t, 1, mock.calls, "リクエストは1回だけであるべき")
}

func TestController_Download_Success(t *testing.T) {
	mock := &mockSynthesizer{
		image: &domain.SceneImage{Data: []byte{0x89, 0x50}, MimeType: "image/png"},
	}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)
	require.NoError(t, ctrl.Generate(context.Background()))

	writer := &mockWriter{}
	path, err := ctrl.Download(context.Background(), writer, "output")
	require.NoError(t, err)

	assert.Contains(t, path, "scene-1-hook-lari-pagi.png")
	assert.Equal(t, path, writer.lastPath)
	assert.Equal(t, "image/png", writer.lastMime)
	assert.Equal(t, []byte{0x89, 0x50}, writer.lastData)
}

func TestController_Download_RequiresSuccessState(t *testing.T) {
	mock := &mockSynthesizer{err: errors.New("boom")}
	ctrl, err := NewController(mock, 0, testScene(), nil)
	require.NoError(t, err)

	writer := &mockWriter{}

	// Idle
	_, err = ctrl.Download(context.Background(), writer, "output")
	assert.Error(t, err)

	// Error
	require.Error(t, ctrl.Generate(context.Background()))
	_, err = ctrl.Download(context.Background(), writer, "output")
	assert.Error(t, err)
	assert.Empty(t, writer.lastPath, "保存は実行されないべき")
}

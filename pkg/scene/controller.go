package scene

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ghostblack/affilate-ai/pkg/asset"
	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// State はシーン1件の画像生成ライフサイクルです。
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ImageSynthesizer は Controller が必要とする画像生成の契約です。
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, prompt string, ref *domain.ReferenceImage) (*domain.SceneImage, error)
}

// ImageWriter は生成画像を外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter がこの契約を満たします。
type ImageWriter interface {
	Write(ctx context.Context, path string, data io.Reader, mimeType string) error
}

// Controller はシーン1件の画像生成状態を管理します。
// 各シーンの状態は互いに独立で、あるシーンの失敗が他のシーンに
// 影響することはありません。再生成は成功・失敗のどちらの結果も
// 新しい結果で上書きします。
type Controller struct {
	synth ImageSynthesizer
	index int // 0始まりのシーン位置
	scene domain.ScenePrompt
	ref   *domain.ReferenceImage

	mu    sync.Mutex
	state State
	seq   uint64 // 生成世代。古い世代の完了を破棄するために使います
	image *domain.SceneImage
	err   error
}

// NewController は1シーン分の Controller を初期化します。初期状態は Idle です。
func NewController(synth ImageSynthesizer, index int, scene domain.ScenePrompt, ref *domain.ReferenceImage) (*Controller, error) {
	if synth == nil {
		return nil, fmt.Errorf("synth (ImageSynthesizer) is required")
	}
	if index < 0 {
		return nil, fmt.Errorf("index must be >= 0, got %d", index)
	}
	return &Controller{synth: synth, index: index, scene: scene, ref: ref}, nil
}

// Generate はこのシーンの画像を生成し、完了まで待ちます。
// すでに生成中の場合は新しいリクエストを起こさず ErrGenerationInFlight を
// 返します。成功すると前回の結果（画像・エラー）は破棄され、失敗すると
// 前回の画像も破棄されます。
func (c *Controller) Generate(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateGenerating {
		c.mu.Unlock()
		return domain.ErrGenerationInFlight
	}
	c.state = StateGenerating
	c.seq++
	token := c.seq
	c.mu.Unlock()

	slog.Info("シーン画像の生成を開始します", "scene", c.index+1, "title", c.scene.SceneTitle)

	image, err := c.synth.Synthesize(ctx, c.scene.ImagePrompt, c.ref)

	c.mu.Lock()
	defer c.mu.Unlock()

	// 自分より新しい世代が始まっていたら、この結果は反映しない
	if token != c.seq {
		return nil
	}

	if err != nil {
		c.state = StateError
		c.image = nil
		c.err = fmt.Errorf("scene %d: %w", c.index+1, err)
		return c.err
	}

	c.state = StateSuccess
	c.image = image
	c.err = nil
	return nil
}

// Download は生成済み画像を baseDir 配下に保存します。
// Success 状態でのみ実行でき、ファイル名は
// scene-{番号}-{タイトルのスラグ}.png になります。
func (c *Controller) Download(ctx context.Context, writer ImageWriter, baseDir string) (string, error) {
	c.mu.Lock()
	state := c.state
	image := c.image
	c.mu.Unlock()

	if state != StateSuccess {
		return "", fmt.Errorf("scene %d はダウンロード可能な状態ではありません (state: %s)", c.index+1, state)
	}
	if writer == nil {
		return "", fmt.Errorf("writer (ImageWriter) is required")
	}

	fileName := asset.SceneImageFileName(c.index, c.scene.SceneTitle)
	finalPath, err := asset.ResolveOutputPath(baseDir, fileName)
	if err != nil {
		return "", fmt.Errorf("保存パスの生成に失敗しました (path: %s): %w", fileName, err)
	}

	if err := writer.Write(ctx, finalPath, bytes.NewReader(image.Data), image.MimeType); err != nil {
		return "", fmt.Errorf("scene %d の保存に失敗しました (path: %s): %w", c.index+1, finalPath, err)
	}

	slog.Info("シーン画像を保存しました", "scene", c.index+1, "path", finalPath)
	return finalPath, nil
}

// State は現在のライフサイクル状態を返します。
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Image は生成済み画像を返します。Success 状態以外では nil です。
func (c *Controller) Image() *domain.SceneImage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// Err は直近の生成失敗を返します。Error 状態以外では nil です。
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Scene はこのコントローラが担当するシーンプロンプトを返します。
func (c *Controller) Scene() domain.ScenePrompt {
	return c.scene
}

// Index は0始まりのシーン位置を返します。
func (c *Controller) Index() int {
	return c.index
}

package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghostblack/affilate-ai/internal/config"
	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/ghostblack/affilate-ai/pkg/reference"
	"github.com/ghostblack/affilate-ai/pkg/scene"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// SceneImageRunner は、キャンペーン台本の各シーン画像を並列生成するランナーなのだ。
// シーン同士は独立していて、1シーンの失敗が他のシーンを止めることはないのだ。
type SceneImageRunner struct {
	synth  scene.ImageSynthesizer
	loader *reference.Loader
	writer remoteio.OutputWriter
	opts   config.GenerateOptions
}

// SceneResult は1シーン分の生成結果なのだ。
type SceneResult struct {
	SceneNumber int    // 1始まりのシーン番号
	Title       string
	ImagePath   string // 保存先。失敗時は空なのだ
	Err         error  // 失敗時のみ設定されるのだ
}

// NewSceneImageRunner は、SceneImageRunnerの新しいインスタンスを生成して返すのだ。
func NewSceneImageRunner(
	synth scene.ImageSynthesizer,
	loader *reference.Loader,
	writer remoteio.OutputWriter,
	opts config.GenerateOptions,
) *SceneImageRunner {
	return &SceneImageRunner{
		synth:  synth,
		loader: loader,
		writer: writer,
		opts:   opts,
	}
}

// Run は対象シーンの画像を並列生成し、成功分を保存するのだ。
// opts.SceneNumber が 1〜3 ならそのシーンだけ、0なら全シーンが対象なのだ。
// 全シーンが失敗した場合のみエラーを返すのだ。
func (r *SceneImageRunner) Run(ctx context.Context, generated *domain.GeneratedCampaign) ([]SceneResult, error) {
	if generated == nil {
		return nil, fmt.Errorf("キャンペーン台本が指定されていないのだ")
	}

	targets, err := r.selectTargets(generated)
	if err != nil {
		return nil, err
	}

	ref, err := r.loader.Load(ctx, r.opts.ReferenceURI)
	if err != nil {
		// 参照画像なしでも生成は続けられるが、商品の一貫性は落ちるのだ
		slog.Warn("参照画像が取得できなかったため、一貫性ガードなしで生成するのだ", "error", err)
		ref = nil
	}

	results := make([]SceneResult, len(targets))
	eg, egCtx := errgroup.WithContext(ctx)

	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	slog.Info("並列シーン画像生成を開始するのだ", "count", len(targets), "interval", config.DefaultRateLimit)

	for i, index := range targets {
		i, index := i, index // ゴルーチンのクロージャ対策なのだ

		ctrl, err := scene.NewController(r.synth, index, generated.Scenes[index], ref)
		if err != nil {
			return nil, err
		}

		eg.Go(func() error {
			// 1. レートリミットに従って、自分の番が来るまで待機するのだ
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			result := SceneResult{
				SceneNumber: index + 1,
				Title:       generated.Scenes[index].SceneTitle,
			}

			// 2. 生成と保存。シーン単位の失敗は記録するだけで、他のシーンは止めないのだ
			if err := ctrl.Generate(egCtx); err != nil {
				slog.Error("シーン生成に失敗したのだ", "scene", index+1, "error", err)
				result.Err = err
				results[i] = result
				return nil
			}

			path, err := ctrl.Download(egCtx, r.writer, r.opts.OutputDir)
			if err != nil {
				slog.Error("シーン画像の保存に失敗したのだ", "scene", index+1, "error", err)
				result.Err = err
				results[i] = result
				return nil
			}

			result.ImagePath = path
			results[i] = result
			slog.Info("シーン画像が完成したのだ", "scene", index+1, "path", path)
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return results, fmt.Errorf("すべてのシーン生成に失敗したのだ (%d/%d)", failed, len(results))
	}
	if failed > 0 {
		slog.Warn("一部のシーン生成に失敗したのだ。--scene で個別に再生成できるのだ", "failed", failed, "total", len(results))
	}

	return results, nil
}

// selectTargets は SceneNumber の指定から、生成対象の0始まりインデックス列を作るのだ。
func (r *SceneImageRunner) selectTargets(generated *domain.GeneratedCampaign) ([]int, error) {
	total := len(generated.Scenes)
	if r.opts.SceneNumber == 0 {
		targets := make([]int, total)
		for i := range targets {
			targets[i] = i
		}
		return targets, nil
	}

	if r.opts.SceneNumber < 1 || r.opts.SceneNumber > total {
		return nil, fmt.Errorf("シーン番号は 1〜%d で指定してほしいのだ (指定値: %d)", total, r.opts.SceneNumber)
	}
	return []int{r.opts.SceneNumber - 1}, nil
}

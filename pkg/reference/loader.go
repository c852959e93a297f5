package reference

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ghostblack/affilate-ai/pkg/domain"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/singleflight"
)

const cacheKeyReference = "reference:"

// ImageCacher は、取得済みの参照画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// Loader は商品の参照画像を URI から取得します。
// http/https は HTTP クライアント、gs:// とローカルパスはリーダー経由で
// 読み込み、取得結果が画像であることを検証してから返します。
type Loader struct {
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
	fetchGroup singleflight.Group
}

// NewLoader は依存関係を注入して Loader を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewLoader(reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*Loader, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}

	return &Loader{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// Load は uri の参照画像を取得します。同一 URI への同時リクエストは
// singleflight で1回にまとめられ、結果はキャッシュされます。
// 取得データが画像でない場合は ErrInvalidInput を返します。
func (l *Loader) Load(ctx context.Context, uri string) (*domain.ReferenceImage, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("参照画像のURIが空です")
	}

	cacheKey := cacheKeyReference + uri
	if l.cache != nil {
		if val, ok := l.cache.Get(cacheKey); ok {
			if ref, ok := val.(*domain.ReferenceImage); ok {
				return ref, nil
			}
		}
	}

	val, err, _ := l.fetchGroup.Do(uri, func() (interface{}, error) {
		data, err := l.fetchData(ctx, uri)
		if err != nil {
			return nil, err
		}

		mimeType := http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			return nil, fmt.Errorf("%w (uri: %s, mime: %s)", domain.ErrInvalidInput, uri, mimeType)
		}

		ref := &domain.ReferenceImage{Data: data, MimeType: mimeType}
		if l.cache != nil {
			l.cache.Set(cacheKey, ref, l.expiration)
		}
		return ref, nil
	})
	if err != nil {
		return nil, err
	}

	ref, ok := val.(*domain.ReferenceImage)
	if !ok {
		return nil, fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return ref, nil
}

// fetchData は URI のスキームに応じて取得経路を切り替えます。
func (l *Loader) fetchData(ctx context.Context, uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		data, err := l.httpClient.FetchBytes(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("参照画像の取得に失敗しました (uri: %s): %w", uri, err)
		}
		return data, nil
	}

	rc, err := l.reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("参照画像を開けませんでした (uri: %s): %w", uri, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("参照画像の読み込みに失敗しました (uri: %s): %w", uri, err)
	}
	return data, nil
}

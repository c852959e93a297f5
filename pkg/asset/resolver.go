package asset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultCampaignJson は生成されたキャンペーンのデフォルト JSON ファイル名です。
	DefaultCampaignJson = "campaign.json"
	// DefaultCampaignName は生成されたキャンペーンのデフォルト Markdown ファイル名です。
	DefaultCampaignName = "campaign.md"
)

// SceneImageFileRegex はシーン画像 (scene-1-hook-pagi.png 等) に一致します
var SceneImageFileRegex = regexp.MustCompile(`^scene-\d+-[a-z0-9-]*\.png$`)

// whitespaceRegex は連続する空白を1つのダッシュに畳み込むために使います。
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Slug はシーンタイトルをファイル名に安全な形へ変換します。
// 小文字化し、空白の連続を単一のダッシュに置き換え、パス区切りに
// なり得る文字を除去します。すでにスラグ化された文字列を渡しても
// 結果は変わりません。
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRegex.ReplaceAllString(s, "-")
	s = strings.NewReplacer("/", "", "\\", "", "..", "", ":", "").Replace(s)
	return s
}

// SceneImageFileName はシーン画像の保存ファイル名を生成します。
// index は0始まりのシーン位置で、ファイル名では1始まりに変換されます。
// 例: (0, "Hook Pagi") -> "scene-1-hook-pagi.png"
func SceneImageFileName(index int, title string) string {
	return fmt.Sprintf("scene-%d-%s.png", index+1, Slug(title))
}

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// ResolveBaseURL は、入力パス（URLまたはローカルパス）から
// 親ディレクトリのパスを解決し、末尾がセパレータで終わるように正規化します。
func ResolveBaseURL(rawPath string) string {
	return urlpath.ResolveBaseURL(rawPath)
}

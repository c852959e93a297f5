package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput は参照画像として画像以外のデータが渡されたことを示します。
	ErrInvalidInput = errors.New("入力が画像ファイルではありません")

	// ErrEmptyResponse はキャンペーン要求に対してテキストペイロードが一切
	// 返らなかったことを示します（空文字列・欠落の両方を含む）。
	ErrEmptyResponse = errors.New("Geminiから空の応答が返されました")

	// ErrImageNotFound は画像合成応答のどのパートにもインライン画像が
	// 含まれていなかったことを示します。
	ErrImageNotFound = errors.New("応答に画像データが含まれていません")

	// ErrGenerationInFlight は同一シーンで生成中に再トリガーされたことを示します。
	ErrGenerationInFlight = errors.New("このシーンは現在生成中です")
)

// MalformedResponseError は AI 応答が構造化データとしてパースできなかった
// 場合のエラーです。Raw には応答の抜粋を保持します。
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("AI応答のJSON解析に失敗しました (応答抜粋: %q): %v", e.Raw, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError はパースには成功したが応答スキーマの契約
// （product_name 必須、scenes は5フィールド揃いのちょうど3件）に
// 違反していた場合のエラーです。
type SchemaViolationError struct {
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("応答がスキーマ契約に違反しています: %s", e.Reason)
}

// UpstreamError はプロバイダ／トランスポート層の失敗です。
// プロバイダのメッセージは解釈せずそのまま保持します。
type UpstreamError struct {
	Op  string // "campaign" / "scene-image" など失敗した操作名
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: プロバイダ呼び出しに失敗しました: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

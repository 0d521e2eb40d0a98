package e4b

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalid は E4B として解釈できない入力を表す番兵エラーです。
	// 構造エラーはすべて errors.Is(err, ErrInvalid) を満たします。
	ErrInvalid = errors.New("不正な E4B バンクです")

	// ErrNotExist はバンクファイルが存在しないことを示します。fs.ErrNotExist をラップします。
	ErrNotExist = fmt.Errorf("E4B ファイルが見つかりません: %w", fs.ErrNotExist)

	// ErrRemoteDisabled はリモート取得が無効な状態で URL が指定されたことを示します。
	ErrRemoteDisabled = errors.New("リモート取得は無効です")
)

// ----------------------------------------------------------------------
// 構造エラー (reader.go, writer.go で利用)
// ----------------------------------------------------------------------

// ErrInvalidFormat はチャンク構造の破損など、バンク全体の読み込みを中止すべきエラーです。
type ErrInvalidFormat struct {
	Details    string
	WrappedErr error
}

func (e *ErrInvalidFormat) Error() string {
	if e.WrappedErr != nil {
		return fmt.Sprintf("不正な E4B フォーマット: %s (詳細: %v)", e.Details, e.WrappedErr)
	}
	return fmt.Sprintf("不正な E4B フォーマット: %s", e.Details)
}

func (e *ErrInvalidFormat) Unwrap() error { return e.WrappedErr }

func (e *ErrInvalidFormat) Is(target error) bool { return target == ErrInvalid }

// ErrUnsupportedExtension はファイル拡張子が .e4b / .E4B でないことを示します。
type ErrUnsupportedExtension struct {
	Path string
}

func (e *ErrUnsupportedExtension) Error() string {
	return fmt.Sprintf("E4B ファイルではありません (拡張子は %s のいずれか): %s",
		strings.Join(supportedExtensions, ", "), e.Path)
}

func (e *ErrUnsupportedExtension) Is(target error) bool { return target == ErrInvalid }

// ----------------------------------------------------------------------
// 通信エラー (client.go で利用)
// ----------------------------------------------------------------------

// ErrFetch はリモートバンクの取得における通信エラーやリトライ後の最終失敗を示します。
type ErrFetch struct {
	URL        string
	WrappedErr error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("バンク取得エラー (%s): %v", e.URL, e.WrappedErr)
}

func (e *ErrFetch) Unwrap() error { return e.WrappedErr }

// ----------------------------------------------------------------------
// バッチ処理エラー (loader.go で利用)
// ----------------------------------------------------------------------

// ErrBatch は複数バンクの読み込みで発生したエラーをまとめて返すためのエラー型です。
type ErrBatch struct {
	TotalErrors int
	Details     []string
}

func (e *ErrBatch) Error() string {
	return fmt.Sprintf("バンク読み込みバッチ処理中に %d 件のエラーが発生しました:\n- %s",
		e.TotalErrors, strings.Join(e.Details, "\n- "))
}

// ----------------------------------------------------------------------
// 読み込み結果の分類
// ----------------------------------------------------------------------

// Result は読み込み処理の結果を3値で表します。
type Result int

const (
	ResultSuccess Result = iota
	ResultNotExist
	ResultInvalid
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultNotExist:
		return "not-exist"
	default:
		return "invalid"
	}
}

// Classify はエラーを Result に分類します。ファイルが存在しない場合以外はすべて ResultInvalid です。
func Classify(err error) Result {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, fs.ErrNotExist):
		return ResultNotExist
	default:
		return ResultInvalid
	}
}

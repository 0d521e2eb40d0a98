package manifest

import (
	"fmt"
	"strings"
)

// ErrInvalidJSON はマニフェストが期待される JSON 形式でなかったことを示します。
type ErrInvalidJSON struct {
	Details    string
	WrappedErr error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("不正なJSONデータ: %s (詳細: %v)", e.Details, e.WrappedErr)
}

func (e *ErrInvalidJSON) Unwrap() error { return e.WrappedErr }

// ErrMissingRequiredField はマニフェストに必要なフィールドや参照先が見つからないことを示します。
type ErrMissingRequiredField struct {
	Field   string
	Context string // 例: "プリセット Lead のボイス 0"
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("%sで必須フィールド '%s' が見つかりません", e.Context, e.Field)
}

// ErrBuild はバンク組み立て中に発生した複数のエラーをまとめます。
type ErrBuild struct {
	Errors []error
}

func (e *ErrBuild) Error() string {
	details := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		details[i] = err.Error()
	}
	return fmt.Sprintf("マニフェストの組み立て中に %d 件のエラーが発生しました:\n- %s",
		len(e.Errors), strings.Join(details, "\n- "))
}

func (e *ErrBuild) Unwrap() []error { return e.Errors }

package audio

import "fmt"

// ErrInvalidWAV は WAV データが読み込めない、または実機で扱えない形式であることを示します。
type ErrInvalidWAV struct {
	Path    string
	Details string
}

func (e *ErrInvalidWAV) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("WAV ファイル %s が無効です: %s", e.Path, e.Details)
	}
	return fmt.Sprintf("WAV データが無効です: %s", e.Details)
}

// ErrExportBatch はバンク全体の書き出しで発生した複数のエラーをまとめます。
type ErrExportBatch struct {
	TotalErrors int
	Details     []string
}

func (e *ErrExportBatch) Error() string {
	return fmt.Sprintf("サンプル書き出し中に %d 件のエラーが発生しました: %v", e.TotalErrors, e.Details)
}

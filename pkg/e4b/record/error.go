package record

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrShortRecord はペイロードがレコードの固定レイアウトより短いことを示します。
	ErrShortRecord = errors.New("レコードのペイロードが不足しています")

	// ErrEmptyPayload はPCMやMIDIデータが空のレコードを書き込もうとしたことを示します。
	ErrEmptyPayload = errors.New("書き込むデータが空です")
)

// ErrFieldConsistency はレコード内のフィールド同士が矛盾していることを示します。
// このエラーはバンク全体を無効にせず、該当レコードだけを破棄する目印として使われます。
type ErrFieldConsistency struct {
	Record  string
	Field   string
	Details string
}

func (e *ErrFieldConsistency) Error() string {
	return fmt.Sprintf("%s の %s が不整合です: %s", e.Record, e.Field, e.Details)
}

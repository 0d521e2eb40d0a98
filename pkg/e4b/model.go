package e4b

import (
	"context"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
)

// ----------------------------------------------------------------------
// インターフェース
// ----------------------------------------------------------------------

// BankFetcher はリモートのバンクを取得して復元するための契約です。
type BankFetcher interface {
	FetchBank(ctx context.Context, ref string) (*bank.Bank, error)
}

// BankLoader は複数のバンク (ファイルパスまたは URL) をまとめて読み込むための契約です。
// オプションは Functional Options Pattern で提供されます。
type BankLoader interface {
	// Load は sources と同じ順序・長さのスライスを返します。失敗したソースの位置は nil です。
	Load(ctx context.Context, sources []string, opts ...LoadOption) ([]*bank.Bank, error)
}

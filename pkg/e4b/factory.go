package e4b

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
)

// ----------------------------------------------------------------------
// No-op パターン
// ----------------------------------------------------------------------

// noopFetcher はリモート取得が無効なときに使う BankFetcher です。
type noopFetcher struct{}

// FetchBank は通信を行わず ErrRemoteDisabled を返します。
func (noopFetcher) FetchBank(ctx context.Context, ref string) (*bank.Bank, error) {
	slog.InfoContext(ctx, "リモート取得は無効です。FetchBank呼び出しはスキップされました。", "url", ref)
	return nil, &ErrFetch{URL: ref, WrappedErr: ErrRemoteDisabled}
}

// ----------------------------------------------------------------------
// 環境変数
// ----------------------------------------------------------------------

// durationFromEnv は環境変数を time.Duration として読み取ります。未設定・不正な値は既定値になります。
func durationFromEnv(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("環境変数の値が不正なため既定値を使います。", "env", name, "value", v, "default", def.String())
		return def
	}
	return d
}

func intFromEnv(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("環境変数の値が不正なため既定値を使います。", "env", name, "value", v, "default", def)
		return def
	}
	return n
}

// ----------------------------------------------------------------------
// Factory 関数
// ----------------------------------------------------------------------

// NewBankLoader は環境変数から設定を読み取り、BankLoader を組み立てて返します。
// remote が false の場合、URL のソースは通信を行わずにエラーになります。
func NewBankLoader(remote bool) BankLoader {
	loaderConfig := LoaderConfig{
		MaxParallel:   intFromEnv(EnvMaxParallel, DefaultMaxParallel),
		SourceTimeout: DefaultSourceTimeout,
		FetchInterval: DefaultFetchRateLimit,
	}

	if !remote {
		slog.Info("リモート取得は無効です。ダミーのFetcherを使用します。", "action", "skip_client_initialization")
		return NewLoader(noopFetcher{}, loaderConfig)
	}

	httpTimeout := durationFromEnv(EnvHTTPTimeout, DefaultFetchTimeout)
	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		slog.Debug("E4B_BASE_URL 環境変数が設定されていません。URL は絶対指定のみ受け付けます。")
	}

	loader := NewLoader(NewClient(baseURL, httpTimeout), loaderConfig)
	slog.Info("バンクローダーの初期化が完了しました。",
		"max_parallel", loader.config.MaxParallel,
		"source_timeout", loader.config.SourceTimeout.String(),
		"http_timeout", httpTimeout.String())
	return loader
}

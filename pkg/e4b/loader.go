package e4b

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
)

// Loader は複数のバンクを並列に読み込みます。
// ローカルファイルは ReadFile、URL は BankFetcher で取得し、リモート取得は一定間隔に制限されます。
type Loader struct {
	fetcher BankFetcher
	config  LoaderConfig
}

type LoaderConfig struct {
	MaxParallel   int
	SourceTimeout time.Duration
	// FetchInterval はリモート取得同士の最小間隔です。
	FetchInterval time.Duration
}

// loadResult は1つのソースの処理結果です。
type loadResult struct {
	index int
	bank  *bank.Bank
	err   error
}

// ----------------------------------------------------------------------
// Loadメソッド用のオプション定義 (Functional Options Pattern)
// ----------------------------------------------------------------------

// LoadConfig は Load の実行中に適用されるオプション設定を保持する
type LoadConfig struct {
	// SkipInvalid が true の場合、破損したバンクは警告ログのみでエラーに数えません。
	SkipInvalid bool
}

// LoadOption はオプションを適用するための関数シグネチャ
type LoadOption func(*LoadConfig)

func newLoadConfig() *LoadConfig {
	return &LoadConfig{}
}

// WithSkipInvalid は破損したバンクを読み飛ばすオプションです。
func WithSkipInvalid() LoadOption {
	return func(cfg *LoadConfig) {
		cfg.SkipInvalid = true
	}
}

// NewLoader は新しい Loader を作成します。fetcher が nil の場合、URL の読み込みは失敗します。
func NewLoader(fetcher BankFetcher, config LoaderConfig) *Loader {
	if config.MaxParallel <= 0 {
		config.MaxParallel = DefaultMaxParallel
	}
	if config.SourceTimeout <= 0 {
		config.SourceTimeout = DefaultSourceTimeout
	}
	if config.FetchInterval <= 0 {
		config.FetchInterval = DefaultFetchRateLimit
	}
	if fetcher == nil {
		fetcher = noopFetcher{}
	}
	return &Loader{fetcher: fetcher, config: config}
}

// ----------------------------------------------------------------------
// ヘルパー関数
// ----------------------------------------------------------------------

// loadSource は単一のソースを読み込みます。
func (l *Loader) loadSource(ctx context.Context, limiter *rate.Limiter, source string, index int) loadResult {
	if !IsRemote(source) {
		b, err := ReadFile(source)
		return loadResult{index: index, bank: b, err: err}
	}

	// レートリミッターとコンテキストキャンセルを Wait で同時に監視
	if err := limiter.Wait(ctx); err != nil {
		return loadResult{index: index, err: fmt.Errorf("ソース %d の取得待機が中断されました: %w", index, err)}
	}
	b, err := l.fetcher.FetchBank(ctx, source)
	return loadResult{index: index, bank: b, err: err}
}

// ----------------------------------------------------------------------
// メイン処理 (Load メソッド)
// ----------------------------------------------------------------------

func (l *Loader) Load(ctx context.Context, sources []string, opts ...LoadOption) ([]*bank.Bank, error) {
	cfg := newLoadConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	banks := make([]*bank.Bank, len(sources))
	if len(sources) == 0 {
		return banks, nil
	}

	semaphore := make(chan struct{}, l.config.MaxParallel)
	wg := sync.WaitGroup{}
	resultsChan := make(chan loadResult, len(sources))
	limiter := rate.NewLimiter(rate.Every(l.config.FetchInterval), 1)

	slog.InfoContext(ctx, "バンク読み込みバッチ処理開始", "total_sources", len(sources), "max_parallel", l.config.MaxParallel)

	// エラー詳細はソース順に並べる
	details := make([]string, len(sources))
	for i, source := range sources {
		select {
		case <-ctx.Done():
			details[i] = fmt.Sprintf("%s: %v", source, ctx.Err())
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, source string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			srcCtx, cancel := context.WithTimeout(ctx, l.config.SourceTimeout)
			defer cancel()

			resultsChan <- l.loadSource(srcCtx, limiter, source, i)
		}(i, source)
	}

	wg.Wait()
	close(resultsChan)

	for res := range resultsChan {
		if res.err == nil {
			banks[res.index] = res.bank
			continue
		}
		if cfg.SkipInvalid && errors.Is(res.err, ErrInvalid) {
			slog.WarnContext(ctx, "破損したバンクを読み飛ばしました", "source", sources[res.index], "error", res.err)
			continue
		}
		details[res.index] = fmt.Sprintf("%s: %v", sources[res.index], res.err)
	}

	var errs []string
	for _, d := range details {
		if d != "" {
			errs = append(errs, d)
		}
	}
	if ctx.Err() != nil {
		slog.InfoContext(ctx, "バッチ処理が外部コンテキストキャンセルにより中断されました。")
	}

	if len(errs) > 0 {
		return banks, &ErrBatch{TotalErrors: len(errs), Details: errs}
	}
	slog.InfoContext(ctx, "全てのバンクの読み込みが完了しました。", "total_sources", len(sources))
	return banks, nil
}

package e4b

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// countingFetcher は取得回数を数え、URL ごとに決まったバンクを返します。
type countingFetcher struct {
	calls atomic.Int32
}

func (f *countingFetcher) FetchBank(ctx context.Context, ref string) (*bank.Bank, error) {
	f.calls.Add(1)
	if strings.HasSuffix(ref, "/broken.e4b") {
		return nil, &ErrFetch{URL: ref, WrappedErr: errors.New("503")}
	}
	b := bank.New()
	b.AddPreset(record.NewPreset(filepath.Base(ref), record.AutoIndex))
	return b, nil
}

func writeTempBank(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := WriteFile(path, testBank()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoaderLoadsInOrder(t *testing.T) {
	dir := t.TempDir()
	good := writeTempBank(t, dir, "good.e4b")
	fetcher := &countingFetcher{}

	l := NewLoader(fetcher, LoaderConfig{MaxParallel: 2, FetchInterval: time.Millisecond})
	sources := []string{"https://example.com/a.e4b", good, "https://example.com/b.e4b"}
	banks, err := l.Load(context.Background(), sources)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(banks) != 3 || fetcher.calls.Load() != 2 {
		t.Fatalf("banks = %d, fetches = %d", len(banks), fetcher.calls.Load())
	}
	if name := record.DisplayName(banks[2].Presets()[0].Name); name != "b.e4b" {
		t.Errorf("banks[2] preset = %q, want b.e4b", name)
	}
	if len(banks[1].Presets()) != 2 {
		t.Errorf("local bank presets = %d, want 2", len(banks[1].Presets()))
	}
}

func TestLoaderAggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeTempBank(t, dir, "good.e4b")
	corrupt := filepath.Join(dir, "corrupt.e4b")
	if err := os.WriteFile(corrupt, []byte("FORM"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.e4b")
	sources := []string{good, corrupt, missing, "https://example.com/broken.e4b"}

	l := NewLoader(&countingFetcher{}, LoaderConfig{FetchInterval: time.Millisecond})
	banks, err := l.Load(context.Background(), sources)

	var batch *ErrBatch
	if !errors.As(err, &batch) {
		t.Fatalf("err = %v, want *ErrBatch", err)
	}
	if batch.TotalErrors != 3 || !strings.HasPrefix(batch.Details[0], corrupt) {
		t.Errorf("batch = %+v", batch)
	}
	if banks[0] == nil || banks[1] != nil || banks[2] != nil || banks[3] != nil {
		t.Errorf("banks = %v", banks)
	}

	// 破損ファイルだけを読み飛ばす
	_, err = l.Load(context.Background(), sources, WithSkipInvalid())
	if !errors.As(err, &batch) || batch.TotalErrors != 2 {
		t.Errorf("WithSkipInvalid err = %v", err)
	}
}

func TestLoaderWithoutFetcher(t *testing.T) {
	l := NewLoader(nil, LoaderConfig{})
	_, err := l.Load(context.Background(), []string{"https://example.com/a.e4b"})
	if err == nil {
		t.Fatal("Load succeeded without a fetcher")
	}
	if !strings.Contains(err.Error(), ErrRemoteDisabled.Error()) {
		t.Errorf("err = %v, want it to mention %v", err, ErrRemoteDisabled)
	}
}

func TestLoaderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(&countingFetcher{}, LoaderConfig{MaxParallel: 1})
	banks, err := l.Load(ctx, []string{"https://example.com/a.e4b", "https://example.com/b.e4b"})

	var batch *ErrBatch
	if !errors.As(err, &batch) || batch.TotalErrors != 2 {
		t.Fatalf("err = %v, want two errors", err)
	}
	if banks[0] != nil || banks[1] != nil {
		t.Error("canceled load returned banks")
	}
}

func TestNewBankLoaderFromEnv(t *testing.T) {
	t.Setenv(EnvMaxParallel, "3")
	t.Setenv(EnvHTTPTimeout, "not-a-duration")

	l, ok := NewBankLoader(true).(*Loader)
	if !ok {
		t.Fatal("NewBankLoader did not return *Loader")
	}
	if l.config.MaxParallel != 3 {
		t.Errorf("MaxParallel = %d, want 3", l.config.MaxParallel)
	}
	if _, ok := l.fetcher.(*Client); !ok {
		t.Errorf("fetcher = %T, want *Client", l.fetcher)
	}

	t.Setenv(EnvMaxParallel, "-1")
	l = NewBankLoader(false).(*Loader)
	if l.config.MaxParallel != DefaultMaxParallel {
		t.Errorf("MaxParallel = %d, want default", l.config.MaxParallel)
	}
	if _, ok := l.fetcher.(noopFetcher); !ok {
		t.Errorf("fetcher = %T, want noopFetcher", l.fetcher)
	}
}

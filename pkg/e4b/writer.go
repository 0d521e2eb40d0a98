package e4b

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// ----------------------------------------------------------------------
// Write 用のオプション定義 (Functional Options Pattern)
// ----------------------------------------------------------------------

// WriteConfig は Write の実行中に適用される設定です。
type WriteConfig struct {
	// Sequences が true の場合、E4s1 チャンクも書き出します。
	Sequences bool
}

// WriteOption はオプションを適用するための関数シグネチャ
type WriteOption func(*WriteConfig)

func newWriteConfig() *WriteConfig {
	return &WriteConfig{}
}

// WithSequences はシーケンスも TOC に含めて書き出すオプションです。
func WithSequences() WriteOption {
	return func(cfg *WriteConfig) {
		cfg.Sequences = true
	}
}

// ----------------------------------------------------------------------
// 書き込み
// ----------------------------------------------------------------------

// WriteFile は拡張子を確認し、バンクをファイルに書き出します。
func WriteFile(path string, b *bank.Bank, opts ...WriteOption) error {
	if err := checkExtension(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Write(&buf, b, opts...); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("出力ディレクトリの作成に失敗しました (%s): %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "バンク %s の書き込み", path)
	}
	slog.Info("バンクを書き出しました", "path", path, "bytes", buf.Len())
	return nil
}

// Write はバンクを FORM/E4B0 コンテナとして w に書き出します。
// チャンクの並びは TOC1、プリセット、サンプル、(指定時は) シーケンス、EMSt の順です。
func Write(w io.Writer, b *bank.Bank, opts ...WriteOption) error {
	if b == nil {
		return errors.New("バンクが nil です")
	}
	cfg := newWriteConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	chunks := collectChunks(b, cfg)
	if len(chunks) == 0 {
		slog.Warn("TOC エントリが0件のバンクを書き出します。このファイルは読み込み時に無効と判定されます")
	}

	form := chunk.New(TagForm)
	form.Bytes([]byte(FormType))
	form.AddChild(buildTOC(chunks))
	for _, c := range chunks {
		form.AddChild(c.node)
	}

	startup := chunk.New(TagStartup)
	b.Startup().Encode(startup)
	form.AddChild(startup)

	if _, err := form.WriteTo(w); err != nil {
		return fmt.Errorf("バンクの書き出しに失敗しました: %w", err)
	}
	return nil
}

// collectChunks はバンクの各レコードをデータチャンクにエンコードします。
// 空のサンプル・シーケンスは書き出せないため警告を出して除外します。
func collectChunks(b *bank.Bank, cfg *WriteConfig) []dataChunk {
	var chunks []dataChunk

	for _, p := range b.Presets() {
		n := chunk.New(TagPreset)
		p.Encode(n)
		chunks = append(chunks, dataChunk{node: n, index: p.Index, name: p.Name})
	}

	for _, s := range b.Samples() {
		n := chunk.New(TagSample)
		if err := s.Encode(n); err != nil {
			slog.Warn("サンプルを書き出しから除外しました", "index", s.Index, "name", record.DisplayName(s.Name), "error", err)
			continue
		}
		chunks = append(chunks, dataChunk{node: n, index: s.Index, name: s.Name})
	}

	if cfg.Sequences {
		for _, s := range b.Sequences() {
			n := chunk.New(TagSequence)
			if err := s.Encode(n); err != nil {
				slog.Warn("シーケンスを書き出しから除外しました", "index", s.Index, "name", record.DisplayName(s.Name), "error", err)
				continue
			}
			chunks = append(chunks, dataChunk{node: n, index: s.Index, name: s.Name})
		}
	} else if len(b.Sequences()) > 0 {
		slog.Debug("シーケンスは書き出しません (WithSequences 未指定)", "count", len(b.Sequences()))
	}

	return chunks
}

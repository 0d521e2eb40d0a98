package e4b

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// ----------------------------------------------------------------------
// ファイル境界
// ----------------------------------------------------------------------

// checkExtension は拡張子が .e4b または .E4B であることを確認します。
func checkExtension(path string) error {
	if !slices.Contains(supportedExtensions, filepath.Ext(path)) {
		return &ErrUnsupportedExtension{Path: path}
	}
	return nil
}

// ReadFile は拡張子を確認したうえでバンクファイルを読み込みます。
// 存在しないファイルは ErrNotExist、それ以外の失敗は ErrInvalid を満たすエラーになります。
func ReadFile(path string) (*bank.Bank, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, &ErrInvalidFormat{Details: fmt.Sprintf("ファイル %s を開けません", path), WrappedErr: err}
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s の読み込みに失敗しました: %w", path, err)
	}
	slog.Debug("バンクを読み込みました", "path", path,
		"presets", len(b.Presets()), "samples", len(b.Samples()), "sequences", len(b.Sequences()))
	return b, nil
}

// ----------------------------------------------------------------------
// ストリーム読み込み
// ----------------------------------------------------------------------

// reader は1回の読み込み処理の状態を保持します。
type reader struct {
	r   io.ReadSeeker
	end int64
}

func invalid(details string, err error) error {
	return &ErrInvalidFormat{Details: details, WrappedErr: err}
}

func (rd *reader) seek(off int64) error {
	if _, err := rd.r.Seek(off, io.SeekStart); err != nil {
		return invalid(fmt.Sprintf("オフセット %d へ移動できません", off), errors.WithStack(err))
	}
	return nil
}

// readAt は off から size バイトを読み取ります。ファイル末尾を超える要求は構造エラーです。
func (rd *reader) readAt(off, size int64) ([]byte, error) {
	if off < 0 || size < 0 || off+size > rd.end {
		return nil, invalid(fmt.Sprintf("範囲 [%d, %d) がファイル長 %d を超えています", off, off+size, rd.end), nil)
	}
	if err := rd.seek(off); err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, invalid(fmt.Sprintf("オフセット %d から %d バイト読み取れません", off, size), errors.WithStack(err))
	}
	return buf, nil
}

// readTOC は FORM / E4B0 / TOC1 の各ヘッダーを検証し、TOC エントリを返します。
func (rd *reader) readTOC() ([]TOCEntry, error) {
	if err := rd.seek(0); err != nil {
		return nil, err
	}

	form, err := chunk.ReadHeader(rd.r)
	if err != nil {
		return nil, invalid("FORM ヘッダーを読み取れません", err)
	}
	if form.Tag() != TagForm {
		return nil, invalid(fmt.Sprintf("先頭チャンクが %q です (期待値 %s)", form.Tag(), TagForm), nil)
	}

	var formType [formTypeSize]byte
	if _, err := io.ReadFull(rd.r, formType[:]); err != nil {
		return nil, invalid("フォームタイプを読み取れません", errors.WithStack(err))
	}
	if string(formType[:]) != FormType {
		return nil, invalid(fmt.Sprintf("フォームタイプが %q です (期待値 %s)", formType[:], FormType), nil)
	}

	toc, err := chunk.ReadHeader(rd.r)
	if err != nil {
		return nil, invalid("TOC1 ヘッダーを読み取れません", err)
	}
	if toc.Tag() != TagTOC {
		return nil, invalid(fmt.Sprintf("TOC チャンクが %q です (期待値 %s)", toc.Tag(), TagTOC), nil)
	}

	count := int64(toc.DeclaredSize() / TOCEntrySize)
	if count == 0 {
		return nil, invalid("TOC にエントリがありません", nil)
	}
	tocStart := int64(chunk.HeaderSize + formTypeSize + chunk.HeaderSize)
	if tocStart+count*TOCEntrySize > rd.end {
		return nil, invalid(fmt.Sprintf("TOC (%d エントリ) がファイル長 %d を超えています", count, rd.end), nil)
	}

	entries := make([]TOCEntry, 0, count)
	for i := int64(0); i < count; i++ {
		if err := rd.seek(tocStart + i*TOCEntrySize); err != nil {
			return nil, err
		}
		e, err := readTOCEntry(rd.r)
		if err != nil {
			return nil, invalid(fmt.Sprintf("TOC エントリ %d を読み取れません", i), errors.WithStack(err))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func newReader(r io.ReadSeeker) (*reader, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, invalid("ストリーム長を取得できません", errors.WithStack(err))
	}
	return &reader{r: r, end: end}, nil
}

// ReadTOC はバンクの TOC エントリだけを読み取ります。データチャンクは解釈しません。
func ReadTOC(r io.ReadSeeker) ([]TOCEntry, error) {
	rd, err := newReader(r)
	if err != nil {
		return nil, err
	}
	return rd.readTOC()
}

// Read はストリームからバンクを読み込みます。
// TOC の各エントリが指すチャンクを種類ごとに復元し、未知のタグはバンク全体を無効とします。
// 最後のエントリの後ろに EMSt チャンクがあれば起動時設定として取り込みます。
func Read(r io.ReadSeeker) (*bank.Bank, error) {
	rd, err := newReader(r)
	if err != nil {
		return nil, err
	}
	entries, err := rd.readTOC()
	if err != nil {
		return nil, err
	}

	b := bank.New()
	var last int64
	for i, e := range entries {
		switch e.Tag {
		case TagPreset, TagSample, TagSequence:
			payload, err := rd.readAt(e.PayloadOffset(), e.PayloadSize())
			if err != nil {
				return nil, err
			}
			if err := decodeEntry(b, e, payload); err != nil {
				return nil, invalid(fmt.Sprintf("TOC エントリ %d (%s) を復元できません", i, e.Tag), err)
			}
		case TagMap, TagMultiSetup:
			if e.PayloadOffset()+e.PayloadSize() > rd.end {
				return nil, invalid(fmt.Sprintf("TOC エントリ %d (%s) がファイル末尾を超えています", i, e.Tag), nil)
			}
			slog.Info("未対応のチャンクを読み飛ばします", "tag", e.Tag, "entry", i)
		default:
			return nil, invalid(fmt.Sprintf("TOC エントリ %d のタグ %q は不明です", i, e.Tag), nil)
		}
		last = e.PayloadOffset() + e.PayloadSize()
	}

	if err := rd.readTrailer(b, last); err != nil {
		return nil, err
	}
	return b, nil
}

// decodeEntry はペイロードを対応するレコードに復元してバンクへ追加します。
// 上限到達やインデックス重複で追加できなかったレコードは警告だけを出して捨てます。
func decodeEntry(b *bank.Bank, e TOCEntry, payload []byte) error {
	var added bool
	switch e.Tag {
	case TagPreset:
		p := &record.Preset{}
		if err := p.Decode(payload); err != nil {
			return err
		}
		added = b.AddPreset(p)
	case TagSample:
		s := &record.Sample{}
		if err := s.Decode(payload); err != nil {
			return err
		}
		added = b.AddSample(s)
	case TagSequence:
		s := &record.Sequence{}
		if err := s.Decode(payload); err != nil {
			return err
		}
		added = b.AddSequence(s)
	}
	if !added {
		slog.Warn("レコードをバンクに追加できませんでした", "tag", e.Tag, "index", e.Index, "name", record.DisplayName(e.Name))
	}
	return nil
}

// readTrailer は最後の TOC エントリに続く EMSt チャンクを読み取ります。
func (rd *reader) readTrailer(b *bank.Bank, off int64) error {
	if off >= rd.end {
		return nil
	}
	if rd.end-off < chunk.HeaderSize {
		slog.Warn("末尾の余分なバイトを無視します", "offset", off, "bytes", rd.end-off)
		return nil
	}
	if err := rd.seek(off); err != nil {
		return err
	}
	header, err := chunk.ReadHeader(rd.r)
	if err != nil {
		return invalid("末尾チャンクのヘッダーを読み取れません", err)
	}
	if header.Tag() != TagStartup {
		slog.Debug("末尾のチャンクは起動時設定ではないため無視します", "tag", header.Tag())
		return nil
	}

	payload, err := rd.readAt(off+chunk.HeaderSize, int64(header.DeclaredSize()))
	if err != nil {
		return err
	}
	s := &record.Startup{}
	if err := s.Decode(payload); err != nil {
		return invalid("EMSt を復元できません", err)
	}
	b.SetStartup(s)
	return nil
}

package audio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/kennygrant/sanitize"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// ----------------------------------------------------------------------
// 書き出し
// ----------------------------------------------------------------------

// interleave はチャンネル別ブロックの PCM を WAV のフレーム順に並べ替えます。
func interleave(s *record.Sample) []int {
	if s.Channels != 2 {
		out := make([]int, len(s.Data))
		for i, v := range s.Data {
			out[i] = int(v)
		}
		return out
	}

	left := s.ChannelData(record.ChannelLeft)
	right := s.ChannelData(record.ChannelRight)
	frames := min(len(left), len(right))
	out := make([]int, 0, frames*2)
	for i := 0; i < frames; i++ {
		out = append(out, int(left[i]), int(right[i]))
	}
	return out
}

// ExportSample はサンプルを16ビット PCM の WAV として w に書き出します。
func ExportSample(w io.WriteSeeker, s *record.Sample) error {
	if s == nil || len(s.Data) == 0 {
		return &ErrInvalidWAV{Details: "書き出す PCM データがありません"}
	}

	channels := 1
	if s.Channels == 2 {
		channels = 2
	}
	rate := int(s.SampleRate)

	enc := wav.NewEncoder(w, rate, BitDepth, channels, wavFormatPCM)
	enc.Metadata = &wav.Metadata{
		Title:    record.DisplayName(s.Name),
		Software: exportSoftware,
	}

	buf := &goaudio.IntBuffer{
		Data:           interleave(s),
		Format:         &goaudio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("WAV データの書き込みに失敗しました: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WAV ヘッダーの確定に失敗しました: %w", err)
	}
	return nil
}

// FileName はサンプルの書き出し先ファイル名 ("003_Grand-Piano.wav" の形式) を返します。
func FileName(s *record.Sample) string {
	base := sanitize.BaseName(record.DisplayName(s.Name))
	if base == "" {
		base = "sample"
	}
	return fmt.Sprintf("%03d_%s%s", s.Index, base, FileExtension)
}

// ExportSampleFile はサンプルを dir 配下の WAV ファイルに書き出し、そのパスを返します。
func ExportSampleFile(dir string, s *record.Sample) (string, error) {
	if s == nil || len(s.Data) == 0 {
		return "", &ErrInvalidWAV{Details: "書き出す PCM データがありません"}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗しました (%s): %w", dir, err)
	}

	path := filepath.Join(dir, FileName(s))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("WAV ファイル %s を作成できません: %w", path, err)
	}
	defer f.Close()

	if err := ExportSample(f, s); err != nil {
		return "", err
	}
	return path, nil
}

// ExportBank はバンク内の全サンプルを書き出します。失敗したサンプルは ErrExportBatch にまとめます。
func ExportBank(dir string, b *bank.Bank) ([]string, error) {
	var (
		paths   []string
		details []string
	)
	for _, s := range b.Samples() {
		path, err := ExportSampleFile(dir, s)
		if err != nil {
			details = append(details, fmt.Sprintf("サンプル %d: %v", s.Index, err))
			continue
		}
		slog.Debug("サンプルを書き出しました", "index", s.Index, "path", path)
		paths = append(paths, path)
	}

	if len(details) > 0 {
		return paths, &ErrExportBatch{TotalErrors: len(details), Details: details}
	}
	return paths, nil
}

// ----------------------------------------------------------------------
// 読み込み
// ----------------------------------------------------------------------

// toInt16 は任意のビット深度の整数サンプルを16ビットに揃えます。
func toInt16(v, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - unsigned8Center) << 8)
	case depth > BitDepth:
		return int16(v >> (depth - BitDepth))
	default:
		return int16(v)
	}
}

// deinterleave は WAV のフレーム順データを、左ブロックの後に右ブロックが続く配置に並べ替えます。
func deinterleave(data []int, channels, depth int) []int16 {
	frames := len(data) / channels
	out := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch*frames+i] = toInt16(data[i*channels+ch], depth)
		}
	}
	return out
}

// ImportSample は WAV を読み込みサンプルを作成します。
// name が空の場合は INFO チャンクのタイトルを使います。smpl チャンクの最初のループはループ設定になります。
func ImportSample(r io.ReadSeeker, name string, index uint16) (*record.Sample, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, &ErrInvalidWAV{Details: "RIFF/WAVE ヘッダーが不正です"}
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, &ErrInvalidWAV{Details: fmt.Sprintf("リニア PCM 以外の形式 (%d) は扱えません", d.WavAudioFormat)}
	}
	channels := int(d.NumChans)
	if channels < 1 || channels > maxChannels {
		return nil, &ErrInvalidWAV{Details: fmt.Sprintf("チャンネル数 %d は扱えません", channels)}
	}
	depth := int(d.BitDepth)
	switch depth {
	case 8, 16, 24, 32:
	default:
		return nil, &ErrInvalidWAV{Details: fmt.Sprintf("ビット深度 %d は扱えません", depth)}
	}

	// メタデータはファイル全体を走査するため、PCM の読み込み前に巻き戻す
	d.ReadMetadata()
	if err := d.Rewind(); err != nil {
		return nil, &ErrInvalidWAV{Details: fmt.Sprintf("巻き戻しに失敗しました: %v", err)}
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, &ErrInvalidWAV{Details: fmt.Sprintf("PCM データを読み取れません: %v", err)}
	}
	data := deinterleave(buf.Data, channels, depth)
	if len(data) == 0 {
		return nil, &ErrInvalidWAV{Details: "PCM データがありません"}
	}

	var loop record.LoopInfo
	if md := d.Metadata; md != nil {
		if name == "" {
			name = strings.TrimSpace(md.Title)
		}
		if md.SamplerInfo != nil && len(md.SamplerInfo.Loops) > 0 {
			l := md.SamplerInfo.Loops[0]
			loop = record.LoopInfo{Enabled: true, Start: l.Start, End: l.End}
		}
	}

	if d.SampleRate < record.MinSampleRate || d.SampleRate > record.MaxSampleRate {
		slog.Warn("サンプルレートを値域内に丸めます", "name", name, "sample_rate", d.SampleRate)
	}
	return record.NewSample(name, data, d.SampleRate, uint32(channels), loop, index), nil
}

// ImportSampleFile は WAV ファイルを読み込みます。
// INFO チャンクにタイトルがない場合はファイル名 (拡張子を除く) をサンプル名にします。
func ImportSampleFile(path string, index uint16) (*record.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("WAV ファイル %s を開けません: %w", path, err)
	}
	defer f.Close()

	s, err := ImportSample(f, "", index)
	if err != nil {
		if e, ok := err.(*ErrInvalidWAV); ok {
			e.Path = path
		}
		return nil, err
	}
	if record.DisplayName(s.Name) == "" {
		s.SetName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return s, nil
}

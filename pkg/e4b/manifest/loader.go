package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-e4b/pkg/e4b/audio"
	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/midi"
	"github.com/shouni/go-e4b/pkg/e4b/record"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// ----------------------------------------------------------------------
// 読み込み
// ----------------------------------------------------------------------

// Load はマニフェストファイルを読み込みます。
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("マニフェスト %s を読み込めません: %w", path, err)
	}
	return Parse(data)
}

// Parse は JSON をデコードします。未知のフィールドは綴り誤りとしてエラーにします。
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, &ErrInvalidJSON{Details: "マニフェスト", WrappedErr: err}
	}
	return &m, nil
}

// ----------------------------------------------------------------------
// ヘルパー関数
// ----------------------------------------------------------------------

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// indexOf は未指定・値域外のインデックスを自動割り当てにします。
func indexOf(p *int, where string) uint16 {
	if p == nil {
		return record.AutoIndex
	}
	if *p < 0 || *p > maxIndex {
		slog.Warn("インデックスが値域外のため自動割り当てにします", "context", where, "index", *p)
		return record.AutoIndex
	}
	return uint16(*p)
}

func parseNote(s, field, where string) (uint8, error) {
	n, ok := record.ParseMidiNote(s)
	if !ok {
		return 0, fmt.Errorf("%sの %s %q を解釈できません", where, field, s)
	}
	return uint8(n), nil
}

func parseRange(spec *RangeSpec, where string) (record.NoteRange, error) {
	low, err := parseNote(spec.Low, "low", where)
	if err != nil {
		return record.NoteRange{}, err
	}
	high, err := parseNote(spec.High, "high", where)
	if err != nil {
		return record.NoteRange{}, err
	}
	return record.NewNoteRange(low, spec.LowFade, spec.HighFade, high), nil
}

// ----------------------------------------------------------------------
// 組み立てロジック
// ----------------------------------------------------------------------

// Build はマニフェストからバンクを組み立てます。
// エラーはすべて集めて ErrBuild として返し、その場合バンクは返しません。
func Build(ctx context.Context, m *Manifest, baseDir string) (*bank.Bank, error) {
	b := bank.New()
	var errs []error

	// 1. サンプル (ゾーンから名前で参照するためのマップも構築)
	sampleIndex := make(map[string]uint16)
	for i, spec := range m.Samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		where := fmt.Sprintf("サンプル %d (%s)", i, spec.Name)
		if spec.File == "" {
			errs = append(errs, &ErrMissingRequiredField{Field: "file", Context: where})
			continue
		}

		s, err := audio.ImportSampleFile(resolve(baseDir, spec.File), indexOf(spec.Index, where))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
			continue
		}
		if spec.Name != "" {
			s.SetName(spec.Name)
		}
		if spec.Loop != nil {
			s.Loop = record.LoopInfo{Enabled: true, InRelease: spec.Loop.InRelease, Start: spec.Loop.Start, End: spec.Loop.End}
		}
		if !b.AddSample(s) {
			errs = append(errs, fmt.Errorf("%s: バンクに追加できません (上限またはインデックス重複)", where))
			continue
		}

		key := spec.Name
		if key == "" {
			key = record.DisplayName(s.Name)
		}
		sampleIndex[key] = s.Index
	}

	// 2. プリセット
	for i, spec := range m.Presets {
		where := fmt.Sprintf("プリセット %d (%s)", i, spec.Name)
		p := record.NewPreset(spec.Name, indexOf(spec.Index, where))
		p.SetTranspose(spec.Transpose)
		p.SetVolume(spec.Volume)

		for vi, vs := range spec.Voices {
			v, verrs := buildVoice(vs, sampleIndex, fmt.Sprintf("%sのボイス %d", where, vi))
			errs = append(errs, verrs...)
			p.AddVoice(v)
		}
		if !b.AddPreset(p) {
			errs = append(errs, fmt.Errorf("%s: バンクに追加できません (上限またはインデックス重複)", where))
		}
	}

	// 3. シーケンス
	for i, spec := range m.Sequences {
		where := fmt.Sprintf("シーケンス %d (%s)", i, spec.Name)
		seq, err := buildSequence(spec, baseDir, where)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !b.AddSequence(seq) {
			errs = append(errs, fmt.Errorf("%s: バンクに追加できません (上限またはインデックス重複)", where))
		}
	}

	if len(errs) > 0 {
		return nil, &ErrBuild{Errors: errs}
	}

	// 4. 起動時設定
	if st := m.Startup; st != nil {
		name := st.Name
		if name == "" {
			name = record.DefaultStartupName
		}
		startup := record.NewStartup(name, 0)
		if st.Tempo != 0 {
			startup.SetTempo(st.Tempo)
		}
		if st.Preset != nil {
			startup.CurrentPreset = indexOf(st.Preset, "startup")
		} else if presets := b.Presets(); len(presets) > 0 {
			startup.CurrentPreset = presets[0].Index
		}
		b.SetStartup(startup)
	}

	slog.InfoContext(ctx, "マニフェストからバンクを組み立てました",
		"presets", len(b.Presets()), "samples", len(b.Samples()), "sequences", len(b.Sequences()))
	return b, nil
}

// buildVoice はボイスを組み立てます。エラーがあってもボイスは返し、エラーは呼び出し側で集約します。
func buildVoice(spec VoiceSpec, samples map[string]uint16, where string) (*record.Voice, []error) {
	v := record.NewVoice()
	var errs []error

	if spec.KeyRange != nil {
		r, err := parseRange(spec.KeyRange, where)
		if err != nil {
			errs = append(errs, err)
		}
		v.KeyRange = r
	}
	if spec.VelocityRange != nil {
		r, err := parseRange(spec.VelocityRange, where)
		if err != nil {
			errs = append(errs, err)
		}
		v.VelocityRange = r
	}

	v.SetTranspose(spec.Transpose)
	v.SetCoarseTune(spec.CoarseTune)
	v.SetFineTune(spec.FineTune)
	v.SetVolume(spec.Volume)
	v.SetPan(spec.Pan)

	if spec.KeyMode != "" {
		if km, ok := record.ParseKeyMode(spec.KeyMode); ok {
			v.KeyMode = km
		} else {
			errs = append(errs, fmt.Errorf("%s: 不明なキーモード %q", where, spec.KeyMode))
		}
	}
	if spec.Filter != "" {
		if ft, ok := record.ParseFilterType(spec.Filter); ok {
			v.FilterType = ft
		} else {
			errs = append(errs, fmt.Errorf("%s: 不明なフィルター %q", where, spec.Filter))
		}
	}
	if spec.FilterFrequency != 0 {
		v.SetFilterFrequency(spec.FilterFrequency)
	}
	v.FilterResonance = units.Clamp(spec.FilterResonance, 0, maxResonance)

	for ci, cs := range spec.Cords {
		src, srcOK := record.ParseCordSource(cs.Source)
		dst, dstOK := record.ParseCordDest(cs.Dest)
		if !srcOK || !dstOK {
			errs = append(errs, fmt.Errorf("%s: コード %d (%s -> %s) を解釈できません", where, ci, cs.Source, cs.Dest))
			continue
		}
		if !v.ReplaceOrAddCord(src, dst, cs.Amount) {
			errs = append(errs, fmt.Errorf("%s: コード %d を追加できません (空きスロットなし)", where, ci))
		}
	}

	if len(spec.Zones) == 0 {
		errs = append(errs, &ErrMissingRequiredField{Field: "zones", Context: where})
	}
	for zi, zs := range spec.Zones {
		zoneWhere := fmt.Sprintf("%sのゾーン %d", where, zi)
		index, ok := samples[zs.Sample]
		if !ok {
			errs = append(errs, &ErrMissingRequiredField{Field: fmt.Sprintf("sample %q", zs.Sample), Context: zoneWhere})
			continue
		}

		z := record.NewZone(index)
		if zs.KeyRange != nil {
			r, err := parseRange(zs.KeyRange, zoneWhere)
			if err != nil {
				errs = append(errs, err)
			}
			z.KeyRange = r
		}
		if zs.VelocityRange != nil {
			r, err := parseRange(zs.VelocityRange, zoneWhere)
			if err != nil {
				errs = append(errs, err)
			}
			z.VelocityRange = r
		}
		if zs.OriginalKey != "" {
			key, err := parseNote(zs.OriginalKey, "original_key", zoneWhere)
			if err != nil {
				errs = append(errs, err)
			}
			z.OriginalKey = record.MidiNote(key)
		}
		z.SetFineTune(zs.FineTune)
		z.SetVolume(zs.Volume)
		z.SetPan(zs.Pan)

		if !v.AddZone(z) {
			errs = append(errs, fmt.Errorf("%s: ゾーン数の上限を超えています", zoneWhere))
		}
	}
	return v, errs
}

// buildSequence は SMF ファイルを読み込むか、ノート列から SMF を生成します。
func buildSequence(spec SequenceSpec, baseDir, where string) (*record.Sequence, error) {
	var data []byte
	switch {
	case spec.File != "":
		raw, err := os.ReadFile(resolve(baseDir, spec.File))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if _, err := midi.Summarize(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		data = raw
	case len(spec.Notes) > 0:
		built, err := midi.BuildSMF(spec.Name, spec.Tempo, spec.Notes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		data = built
	default:
		return nil, &ErrMissingRequiredField{Field: "file または notes", Context: where}
	}
	return record.NewSequence(spec.Name, data, indexOf(spec.Index, where)), nil
}

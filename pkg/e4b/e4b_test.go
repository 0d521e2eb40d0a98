package e4b

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

func writeBank(t *testing.T, b *bank.Bank, opts ...WriteOption) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, b, opts...); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

// testBank は2つのプリセットと1つのサンプル、1つのシーケンスを持つバンクです。
func testBank() *bank.Bank {
	b := bank.New()

	lead := record.NewPreset("Lead", 3)
	v := record.NewVoice()
	z := record.NewZone(0)
	z.OriginalKey = 48
	v.AddZone(z)
	lead.AddVoice(v)
	b.AddPreset(lead)

	pad := record.NewPreset("Pad", 7)
	pv := record.NewVoice()
	pv.AddZone(record.NewZone(0))
	pad.AddVoice(pv)
	b.AddPreset(pad)

	b.AddSample(record.NewSample("Saw", []int16{0, 100, -100, 200, -200}, 44100, 1, record.LoopInfo{}, 0))
	b.AddSequence(record.NewSequence("Groove", []byte("MThd"), 0))
	return b
}

func TestRoundTripUntitled(t *testing.T) {
	b := bank.New()
	b.AddPreset(record.NewPreset("Untitled", record.AutoIndex))

	got, err := Read(bytes.NewReader(writeBank(t, b)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	presets := got.Presets()
	if len(presets) != 1 {
		t.Fatalf("presets = %d, want 1", len(presets))
	}
	if presets[0].Index != 0 || presets[0].Name != "Untitled        " {
		t.Errorf("preset = %d %q", presets[0].Index, presets[0].Name)
	}
	if len(presets[0].Voices) != 0 {
		t.Errorf("voices = %d, want 0", len(presets[0].Voices))
	}
}

func TestTOCOffsetsPointAtPayloads(t *testing.T) {
	raw := writeBank(t, testBank())

	entries, err := ReadTOC(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadTOC: %v", err)
	}
	wantTags := []string{TagPreset, TagPreset, TagSample}
	if len(entries) != len(wantTags) {
		t.Fatalf("entries = %d, want %d", len(entries), len(wantTags))
	}

	for i, e := range entries {
		if e.Tag != wantTags[i] {
			t.Errorf("entry %d tag = %s, want %s", i, e.Tag, wantTags[i])
		}
		off := int(e.Offset)
		if off+chunk.HeaderSize+2 > len(raw) {
			t.Fatalf("entry %d offset %d is out of range", i, off)
		}
		if string(raw[off:off+4]) != e.Tag {
			t.Errorf("entry %d: chunk at %d is %q, want %s", i, off, raw[off:off+4], e.Tag)
		}
		declared := binary.BigEndian.Uint32(raw[off+4 : off+8])
		if int64(declared) != e.PayloadSize() {
			t.Errorf("entry %d: payload size %d, TOC says %d", i, declared, e.PayloadSize())
		}
		if idx := binary.BigEndian.Uint16(raw[off+8 : off+10]); idx != e.Index {
			t.Errorf("entry %d: payload index %d, TOC index %d", i, idx, e.Index)
		}
		if name := string(raw[off+10 : off+26]); name != e.Name {
			t.Errorf("entry %d: payload name %q, TOC name %q", i, name, e.Name)
		}
	}

	// 先頭のデータチャンクは FORM(8) + E4B0(4) + TOC1(8 + 32*3) の直後
	if want := uint32(12 + 8 + 32*3); entries[0].Offset != want {
		t.Errorf("first offset = %d, want %d", entries[0].Offset, want)
	}
	// FORM の長さはファイル全体から自身のヘッダーを引いた値
	if got := binary.BigEndian.Uint32(raw[4:8]); int(got) != len(raw)-8 {
		t.Errorf("FORM size = %d, want %d", got, len(raw)-8)
	}
}

func TestReadBank(t *testing.T) {
	src := testBank()
	src.SetStartupPreset(7)

	got, err := Read(bytes.NewReader(writeBank(t, src)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Presets()) != 2 || len(got.Samples()) != 1 {
		t.Fatalf("presets/samples = %d/%d", len(got.Presets()), len(got.Samples()))
	}
	if len(got.Sequences()) != 0 {
		t.Errorf("sequences written without WithSequences: %d", len(got.Sequences()))
	}
	if got.StartupPreset() != 7 {
		t.Errorf("startup preset = %d, want 7", got.StartupPreset())
	}

	lead, ok := got.Preset(3)
	if !ok || len(lead.Voices) != 1 || len(lead.Voices[0].Zones) != 1 {
		t.Fatalf("lead = %+v, %v", lead, ok)
	}
	s, ok := got.ZoneSample(lead.Voices[0].Zones[0])
	if !ok || record.DisplayName(s.Name) != "Saw" {
		t.Fatalf("zone sample = %v, %v", s, ok)
	}
	if len(s.Data) != 5 || s.Data[4] != -200 || s.SampleRate != 44100 {
		t.Errorf("sample = %d frames, last %d, rate %d", len(s.Data), s.Data[len(s.Data)-1], s.SampleRate)
	}
}

func TestWriteWithSequences(t *testing.T) {
	raw := writeBank(t, testBank(), WithSequences())

	got, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	seqs := got.Sequences()
	if len(seqs) != 1 || string(seqs[0].Data) != "MThd" {
		t.Fatalf("sequences = %+v", seqs)
	}

	entries, err := ReadTOC(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadTOC: %v", err)
	}
	if last := entries[len(entries)-1]; last.Tag != TagSequence {
		t.Errorf("last entry = %s, want %s", last.Tag, TagSequence)
	}
}

func TestStartupRecordSurvivesRoundTrip(t *testing.T) {
	src := testBank()
	s := record.NewStartup("Live Set", 3)
	s.SetTempo(128)
	s.Channels[5].Volume = 90
	src.SetStartup(s)

	got, err := Read(bytes.NewReader(writeBank(t, src)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	st := got.Startup()
	if record.DisplayName(st.Name) != "Live Set" || st.Tempo != 128 || st.Channels[5].Volume != 90 {
		t.Errorf("startup = %q tempo %d vol %d", st.Name, st.Tempo, st.Channels[5].Volume)
	}
}

func TestReadSkipsUnsupportedChunks(t *testing.T) {
	p := chunk.New(TagPreset)
	record.NewPreset("Kept", 0).Encode(p)
	m := chunk.New(TagMap)
	m.Bytes(bytes.Repeat([]byte{0xAB}, 40))

	chunks := []dataChunk{
		{node: m, index: 0, name: "Map"},
		{node: p, index: 0, name: "Kept"},
	}
	form := chunk.New(TagForm)
	form.Bytes([]byte(FormType))
	form.AddChild(buildTOC(chunks))
	for _, c := range chunks {
		form.AddChild(c.node)
	}
	var buf bytes.Buffer
	if _, err := form.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Presets()) != 1 || record.DisplayName(got.Presets()[0].Name) != "Kept" {
		t.Errorf("presets = %+v", got.Presets())
	}
}

func TestReadInvalid(t *testing.T) {
	valid := writeBank(t, testBank())

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"empty", func([]byte) []byte { return nil }},
		{"not FORM", func(b []byte) []byte { copy(b, "RIFF"); return b }},
		{"wrong form type", func(b []byte) []byte { copy(b[8:], "E4B1"); return b }},
		{"missing TOC", func(b []byte) []byte { copy(b[12:], "TOC2"); return b }},
		{"unknown entry tag", func(b []byte) []byte { copy(b[20:], "XXXX"); return b }},
		{"offset past end", func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[28:], uint32(len(b)))
			return b
		}},
		{"truncated", func(b []byte) []byte { return b[:len(b)/2] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.mutate(append([]byte(nil), valid...))
			_, err := Read(bytes.NewReader(raw))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if Classify(err) != ResultInvalid {
				t.Errorf("Classify = %v", Classify(err))
			}
		})
	}
}

func TestReadZeroEntries(t *testing.T) {
	raw := writeBank(t, bank.New())
	if _, err := Read(bytes.NewReader(raw)); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestFileBoundary(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "banks", "test.E4B")
	if err := WriteFile(path, testBank()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := ReadFile(path)
	if Classify(err) != ResultSuccess || len(b.Presets()) != 2 {
		t.Fatalf("ReadFile = %v", err)
	}

	var extErr *ErrUnsupportedExtension
	if err := WriteFile(filepath.Join(dir, "test.wav"), testBank()); !errors.As(err, &extErr) {
		t.Errorf("WriteFile(.wav) err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "test.wav")); !os.IsNotExist(err) {
		t.Error("WriteFile created a file with an unsupported extension")
	}
	if _, err := ReadFile(filepath.Join(dir, "test.e4bx")); Classify(err) != ResultInvalid {
		t.Errorf("ReadFile(.e4bx) = %v", err)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.e4b"))
	if Classify(err) != ResultNotExist || !errors.Is(err, ErrNotExist) {
		t.Errorf("ReadFile(missing) = %v", err)
	}
}

func TestResultString(t *testing.T) {
	for r, want := range map[Result]string{ResultSuccess: "success", ResultNotExist: "not-exist", ResultInvalid: "invalid"} {
		if r.String() != want {
			t.Errorf("%d.String() = %s", r, r.String())
		}
	}
}

func FuzzRead(f *testing.F) {
	var buf bytes.Buffer
	if err := Write(&buf, testBank(), WithSequences()); err != nil {
		f.Fatal(err)
	}
	f.Add(buf.Bytes())
	f.Add([]byte("FORM\x00\x00\x00\x04E4B0"))

	f.Fuzz(func(t *testing.T, data []byte) {
		b, err := Read(bytes.NewReader(data))
		if err != nil {
			if b != nil {
				t.Fatal("Read returned a bank together with an error")
			}
			return
		}
		// 読み込めたバンクは書き戻せる
		var out bytes.Buffer
		if err := Write(&out, b, WithSequences()); err != nil {
			t.Fatalf("Write: %v", err)
		}
	})
}

package record

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shouni/go-e4b/pkg/e4b/chunk"
)

func encodePreset(t *testing.T, p *Preset) []byte {
	t.Helper()
	n := chunk.New("E4P1")
	p.Encode(n)
	return n.Payload()
}

func testVoice(group uint8, sampleIndex uint16) *Voice {
	v := NewVoice()
	v.SetGroup(group)
	v.KeyRange = NewNoteRange(36, 0, 0, 72)
	v.SetKeyDelay(250)
	v.SetTranspose(-12)
	v.SetCoarseTune(7)
	v.SetFineTune(-100)
	v.KeyMode = KeyModeSoloMelodyLast
	v.AssignGroup = AssignMonoA
	v.FilterType = FilterTwoPoleLowpass
	v.SetFilterFrequency(1000)
	v.FilterResonance = 40
	v.ChorusAmount = 50
	v.SetVolume(-6)
	v.SetPan(-20)
	v.AmpEnv.Release1 = Stage{Time: 40, Level: 0}
	v.LFO2 = LFO{Rate: 2, Shape: ShapeTriangle, Delay: 1, Variation: 25, KeySync: false}
	v.SetLFOLag1(3)
	v.ReplaceOrAddCord(SrcPressure, DstFilterRes, -50)

	z := NewZone(sampleIndex)
	z.KeyRange = NewNoteRange(36, 0, 0, 60)
	z.OriginalKey = 48
	z.SetFineTune(100)
	z.SetVolume(3)
	v.AddZone(z)
	v.AddZone(NewZone(sampleIndex + 1))
	return v
}

func TestPresetHeaderLayout(t *testing.T) {
	p := NewPreset("Untitled Preset", 0)
	b := encodePreset(t, p)

	if len(b) != presetHeaderSize {
		t.Fatalf("payload length = %d, want %d", len(b), presetHeaderSize)
	}
	if !bytes.Equal(b[2:18], []byte("Untitled Preset ")) {
		t.Errorf("name = %q", b[2:18])
	}
	if b[18] != 0 || b[19] != presetDataSize {
		t.Errorf("data size = % x, want 00 52", b[18:20])
	}
	if !bytes.Equal(b[52:56], []byte{'R', '#', 0, '~'}) {
		t.Errorf("marker = % x", b[52:56])
	}
	if !bytes.Equal(b[56:60], []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("initial controllers = % x", b[56:60])
	}
}

func TestPresetRoundTrip(t *testing.T) {
	p := NewPreset("Strings", 3)
	p.SetTranspose(-20)
	p.SetVolume(5)
	p.InitialControllers = [4]uint8{1, 2, ControllerOff, 64}
	p.AddVoice(testVoice(5, 0))
	p.AddVoice(testVoice(9, 2))

	first := encodePreset(t, p)
	wantLen := presetHeaderSize + 2*(voiceFixedSize+2*zoneSize)
	if len(first) != wantLen {
		t.Fatalf("payload length = %d, want %d", len(first), wantLen)
	}

	var got Preset
	if err := got.Decode(first); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Index != 3 || DisplayName(got.Name) != "Strings" {
		t.Errorf("identity = %d %q", got.Index, got.Name)
	}
	if got.Transpose != MinPresetTranspose || got.Volume != 5 {
		t.Errorf("transpose/volume = %d/%d", got.Transpose, got.Volume)
	}
	if got.InitialControllers != p.InitialControllers {
		t.Errorf("controllers = %v", got.InitialControllers)
	}
	if len(got.Voices) != 2 {
		t.Fatalf("voices = %d, want 2", len(got.Voices))
	}

	v := got.Voices[1]
	if v.Group != 9 || v.KeyDelay != 250 || v.Transpose != -12 || v.CoarseTune != 7 {
		t.Errorf("voice scalars = %+v", v)
	}
	if v.FineTune != -100 {
		t.Errorf("voice fine tune = %v, want -100", v.FineTune)
	}
	if v.KeyRange != (NoteRange{Low: 36, High: 72}) {
		t.Errorf("key range = %v", v.KeyRange)
	}
	if v.FilterType != FilterTwoPoleLowpass || v.KeyMode != KeyModeSoloMelodyLast || v.AssignGroup != AssignMonoA {
		t.Errorf("enums = %v %v %v", v.FilterType, v.KeyMode, v.AssignGroup)
	}
	if amt, ok := v.CordAmount(SrcPressure, DstFilterRes); !ok || amt > -49 || amt < -51 {
		t.Errorf("pressure cord = %v, %v", amt, ok)
	}
	if len(v.Zones) != 2 || v.Zones[0].SampleIndex != 2 || v.Zones[1].SampleIndex != 3 {
		t.Fatalf("zones = %+v", v.Zones)
	}
	if z := v.Zones[0]; z.OriginalKey != 48 || z.FineTune != 100 || z.Volume != 3 || z.KeyRange.High != 60 {
		t.Errorf("zone = %+v", z)
	}

	// 量子化済みの値を書き戻すとバイト列は一致する
	second := encodePreset(t, &got)
	if !bytes.Equal(first, second) {
		t.Fatal("re-encoded preset differs from the first encoding")
	}
}

func TestPresetAbandonsVoiceWithoutZones(t *testing.T) {
	p := NewPreset("Broken", 0)
	p.AddVoice(NewVoice())
	p.AddVoice(testVoice(5, 0))

	var got Preset
	if err := got.Decode(encodePreset(t, p)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Voices) != 2 {
		t.Fatalf("voices = %d, want 2", len(got.Voices))
	}
	if len(got.Voices[0].Zones) != 0 || got.Voices[0].FilterType != FilterNoFilter {
		t.Errorf("abandoned voice was not reset to defaults: %+v", got.Voices[0])
	}
	// 次のボイスは長さフィールドで再同期されている
	if got.Voices[1].Group != 5 || len(got.Voices[1].Zones) != 2 {
		t.Errorf("second voice = group %d, %d zones", got.Voices[1].Group, len(got.Voices[1].Zones))
	}
}

func TestPresetStopsAtCorruptVoiceSize(t *testing.T) {
	p := NewPreset("Corrupt", 0)
	p.AddVoice(testVoice(1, 0))
	p.AddVoice(testVoice(2, 0))
	b := encodePreset(t, p)
	b[presetHeaderSize] = 0x01
	b[presetHeaderSize+1] = 0x1D // 285

	var got Preset
	if err := got.Decode(b); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Voices) != 1 || len(got.Voices[0].Zones) != 0 {
		t.Fatalf("voices = %d, want a single default voice", len(got.Voices))
	}
}

func TestPresetDataSizeMismatch(t *testing.T) {
	p := NewPreset("Odd", 7)
	p.AddVoice(testVoice(1, 0))
	b := encodePreset(t, p)
	b[19] = presetDataSize - 1

	var got Preset
	if err := got.Decode(b); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Index != 7 || len(got.Voices) != 0 {
		t.Errorf("preset = index %d, %d voices; want 7, 0", got.Index, len(got.Voices))
	}
}

func TestPresetTruncated(t *testing.T) {
	p := NewPreset("Short", 0)
	p.AddVoice(testVoice(1, 0))
	b := encodePreset(t, p)

	var got Preset
	if err := got.Decode(b[:presetHeaderSize+100]); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("err = %v, want ErrShortRecord", err)
	}
}

func TestVoiceDefaults(t *testing.T) {
	v := NewVoice()
	if v.ChorusWidth != 100 || v.FilterFrequency != MaxFilterFrequency {
		t.Errorf("chorus/filter defaults = %v/%v", v.ChorusWidth, v.FilterFrequency)
	}
	if amt, ok := v.CordAmount(SrcFootswitch1, DstKeySustain); !ok || amt != 100 {
		t.Errorf("footswitch cord = %v, %v", amt, ok)
	}
	if amt, ok := v.CordAmount(SrcModWheel, DstCord3Amt); !ok || amt != 6 {
		t.Errorf("mod wheel cord = %v, %v", amt, ok)
	}
	if v.AmpEnv.Attack().Level != fullLevel || v.AmpEnv.Sustain() != fullLevel {
		t.Errorf("envelope defaults = %+v", v.AmpEnv)
	}
	if !v.LFO1.KeySync || v.LFO1.Shape != ShapeSine {
		t.Errorf("lfo defaults = %+v", v.LFO1)
	}
}

func TestVoiceSettersClamp(t *testing.T) {
	v := NewVoice()
	v.SetGroup(200)
	v.SetTranspose(100)
	v.SetCoarseTune(-100)
	v.SetVolume(50)
	v.SetPan(-100)
	v.SetKeyDelay(65000)
	v.SetFilterFrequency(10)
	v.SetLFOLag2(99)

	if v.Group != MaxGroup || v.Transpose != MaxVoiceTranspose || v.CoarseTune != MinCoarseTune {
		t.Errorf("group/transpose/coarse = %d/%d/%d", v.Group, v.Transpose, v.CoarseTune)
	}
	if v.Volume != MaxVolume || v.Pan != MinPan || v.KeyDelay != MaxKeyDelay {
		t.Errorf("volume/pan/delay = %d/%d/%d", v.Volume, v.Pan, v.KeyDelay)
	}
	if v.FilterFrequency != MinFilterFrequency || v.LFOLag2 != MaxLFOLag {
		t.Errorf("filter/lag = %d/%d", v.FilterFrequency, v.LFOLag2)
	}
}

func TestVoiceCords(t *testing.T) {
	v := NewVoice()
	if !v.HasCord(SrcModWheel) {
		t.Error("default mod wheel cord missing")
	}
	if !v.ReplaceOrAddCord(SrcPitchWheel, DstPitch, 150) {
		t.Fatal("replace failed")
	}
	if amt, _ := v.CordAmount(SrcPitchWheel, DstPitch); amt != 100 {
		t.Errorf("replaced amount = %v, want 100", amt)
	}

	// 既定の8本 + 16本で満杯になる
	for i := 0; i < NumCords-8; i++ {
		if !v.ReplaceOrAddCord(CordSource(200+i), DstPitch, 1) {
			t.Fatalf("add %d failed", i)
		}
	}
	if v.ReplaceOrAddCord(SrcPressure, DstAmpPan, 1) {
		t.Error("add succeeded on a full cord table")
	}
	if v.HasCord(SrcPressure) {
		t.Error("HasCord reported a cord that was never added")
	}
}

func TestVoiceZoneCap(t *testing.T) {
	v := NewVoice()
	for i := 0; i < MaxZones; i++ {
		if !v.AddZone(NewZone(0)) {
			t.Fatalf("AddZone %d failed", i)
		}
	}
	if v.AddZone(NewZone(0)) {
		t.Error("AddZone accepted a zone beyond the cap")
	}
}

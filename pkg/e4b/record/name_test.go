package record

import (
	"testing"
	"unicode/utf8"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Untitled", "Untitled        "},
		{"Exactly16Chars!!", "Exactly16Chars!!"},
		{"A name that is far too long", "A name that is f"},
		{"Nul\x00Inside", "Nul Inside      "},
		{"", "                "},
		// 3バイト文字の途中では切らない
		{"ピアノピアノXY", "ピアノピア "},
	}
	for _, tt := range tests {
		got := NormalizeName(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("NormalizeName(%q) = %q is not valid UTF-8", tt.in, got)
		}
		if len(got) != NameSize {
			t.Errorf("NormalizeName(%q) has length %d", tt.in, len(got))
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Piano           "); got != "Piano" {
		t.Errorf("DisplayName = %q, want Piano", got)
	}
}

func TestMidiNote(t *testing.T) {
	tests := []struct {
		notation string
		octave   int
		want     MidiNote
	}{
		{"C", 3, 60},
		{"A", -2, 9},
		{"C#", 0, 25},
		{"G", 9, 127}, // オクターブは 8 に丸められる
		{"B", 8, 127}, // 131 は 127 に丸められる
		{"C", -5, 0},  // オクターブは -2 に丸められる
	}
	for _, tt := range tests {
		got, ok := NewMidiNote(tt.notation, tt.octave)
		if !ok || got != tt.want {
			t.Errorf("NewMidiNote(%q, %d) = %d, %v; want %d", tt.notation, tt.octave, got, ok, tt.want)
		}
	}

	if _, ok := NewMidiNote("H", 3); ok {
		t.Error("NewMidiNote accepted an unknown notation")
	}
	if s := DefaultOriginalKey.String(); s != "C3" {
		t.Errorf("DefaultOriginalKey = %s, want C3", s)
	}
	if n := MidiNote(70); n.Notation() != "A#" || n.Octave() != 3 {
		t.Errorf("MidiNote(70) = %s%d, want A#3", n.Notation(), n.Octave())
	}
}

func TestClampIndex(t *testing.T) {
	if got := clampIndex(AutoIndex, MaxPresets); got != AutoIndex {
		t.Errorf("AutoIndex was clamped to %d", got)
	}
	if got := clampIndex(5000, MaxPresets); got != MaxPresets {
		t.Errorf("clampIndex(5000) = %d, want %d", got, MaxPresets)
	}
}

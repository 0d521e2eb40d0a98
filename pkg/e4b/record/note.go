package record

import (
	"fmt"

	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// ----------------------------------------------------------------------
// MIDIノート
// ----------------------------------------------------------------------

var noteNotation = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const (
	minOctave = -2
	maxOctave = 8

	// DefaultOriginalKey は C3 (60) です。
	DefaultOriginalKey MidiNote = 60
)

// MidiNote は0〜127のMIDIノート番号です。オクターブは -2 始まり (60 = C3) で表記します。
type MidiNote uint8

// NewMidiNote は音名とオクターブからノートを作成します。
// 不明な音名は false を返します。オクターブと結果は値域内に丸められます。
func NewMidiNote(notation string, octave int) (MidiNote, bool) {
	for pos, n := range noteNotation {
		if n == notation {
			octave = units.Clamp(octave, minOctave, maxOctave)
			return MidiNote(units.Clamp(pos+(octave+2)*12, 0, MaxNoteData)), true
		}
	}
	return 0, false
}

// Notation は音名 (C, C# ...) を返します。
func (n MidiNote) Notation() string { return noteNotation[int(n)%12] }

// Octave はオクターブ番号を返します。
func (n MidiNote) Octave() int { return int(n)/12 - 2 }

func (n MidiNote) String() string {
	return fmt.Sprintf("%s%d", n.Notation(), n.Octave())
}

// ----------------------------------------------------------------------
// NoteRange
// ----------------------------------------------------------------------

// NoteRange はキー・ベロシティ・リアルタイムの各レンジとフェード幅です。
type NoteRange struct {
	Low      uint8
	LowFade  uint8
	HighFade uint8
	High     uint8
}

// FullRange は 0〜127 の全域を表すレンジです。
func FullRange() NoteRange {
	return NoteRange{High: MaxNoteData}
}

// NewNoteRange は各値を 0〜127 に丸めてレンジを作成します。
func NewNoteRange(low, lowFade, highFade, high uint8) NoteRange {
	r := NoteRange{Low: low, LowFade: lowFade, HighFade: highFade, High: high}
	return r.clamped()
}

func (r NoteRange) clamped() NoteRange {
	return NoteRange{
		Low:      units.Clamp(r.Low, 0, MaxNoteData),
		LowFade:  units.Clamp(r.LowFade, 0, MaxNoteData),
		HighFade: units.Clamp(r.HighFade, 0, MaxNoteData),
		High:     units.Clamp(r.High, 0, MaxNoteData),
	}
}

// Contains は値 v がレンジ内にあるかを返します。
func (r NoteRange) Contains(v uint8) bool {
	return v >= r.Low && v <= r.High
}

func (r NoteRange) String() string {
	return fmt.Sprintf("%d-%d (fade %d/%d)", r.Low, r.High, r.LowFade, r.HighFade)
}

func (r NoteRange) encode(n *chunk.Node) {
	c := r.clamped()
	n.Uint8(c.Low)
	n.Uint8(c.LowFade)
	n.Uint8(c.HighFade)
	n.Uint8(c.High)
}

func decodeNoteRange(d *decoder) NoteRange {
	return NoteRange{Low: d.u8(), LowFade: d.u8(), HighFade: d.u8(), High: d.u8()}
}

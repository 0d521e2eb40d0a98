package record

import (
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// Zone はボイス内でサンプルをキー・ベロシティ範囲に割り当てるマッピングです。
type Zone struct {
	KeyRange      NoteRange
	VelocityRange NoteRange
	SampleIndex   uint16
	FineTune      float64 // セント [-100, 100]
	OriginalKey   MidiNote
	Volume        int8 // dB [-96, 10]
	Pan           int8 // [-64, 63]
}

// NewZone は全域レンジで指定サンプルを鳴らすゾーンを作成します。
func NewZone(sampleIndex uint16) *Zone {
	return &Zone{
		KeyRange:      FullRange(),
		VelocityRange: FullRange(),
		SampleIndex:   sampleIndex,
		OriginalKey:   DefaultOriginalKey,
	}
}

func (z *Zone) SetFineTune(cents float64) {
	z.FineTune = units.Clamp(cents, MinFineTune, MaxFineTune)
}

func (z *Zone) SetVolume(db int8) { z.Volume = units.Clamp(db, MinVolume, MaxVolume) }

func (z *Zone) SetPan(pan int8) { z.Pan = units.Clamp(pan, MinPan, MaxPan) }

func (z *Zone) encode(n *chunk.Node) {
	z.KeyRange.encode(n)
	z.VelocityRange.encode(n)
	n.Uint16(z.SampleIndex)
	n.Pad(1)
	n.Int8(units.FineTuneToByte(units.Clamp(z.FineTune, MinFineTune, MaxFineTune)))
	n.Uint8(uint8(units.Clamp(z.OriginalKey, 0, MaxNoteData)))
	n.Int8(units.Clamp(z.Volume, MinVolume, MaxVolume))
	n.Int8(units.Clamp(z.Pan, MinPan, MaxPan))
	n.Pad(7)
}

func decodeZone(d *decoder) *Zone {
	z := &Zone{
		KeyRange:      decodeNoteRange(d),
		VelocityRange: decodeNoteRange(d),
		SampleIndex:   d.u16(),
	}
	d.skip(1)
	z.FineTune = units.ByteToFineTune(d.i8())
	z.OriginalKey = MidiNote(d.u8())
	z.Volume = d.i8()
	z.Pan = d.i8()
	d.skip(7)
	return z
}

package record

import (
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

const (
	// DefaultStartupName は実機が新規バンクに付ける名前です。
	DefaultStartupName = "Untitled MSetup "

	// NoPreset はMIDIチャンネルにプリセットが割り当てられていないことを示します。
	NoPreset = 0xFFFF
)

// MIDIChannel はマルチセットアップ内の1チャンネル分の設定です。
type MIDIChannel struct {
	Volume      uint8 // [0, 127]
	Pan         int8  // [-64, 63]
	AuxSend     bool
	Controllers [NumControllers]uint8
	Preset      uint16 // NoPreset は未割り当て

	// 用途不明の領域。読み取った値をそのまま書き戻します。
	reserved1 [3]uint8
	reserved2 [8]uint8
}

// DefaultMIDIChannel は実機の初期値を返します。
func DefaultMIDIChannel() MIDIChannel {
	return MIDIChannel{
		Volume:    127,
		AuxSend:   true,
		Preset:    NoPreset,
		reserved2: [8]uint8{0, 0, 0, 0, 127, 0, 0, 0},
	}
}

func (c MIDIChannel) encode(n *chunk.Node) {
	n.Uint8(units.Clamp(c.Volume, 0, MaxNoteData))
	n.Int8(units.Clamp(c.Pan, MinPan, MaxPan))
	n.Bytes(c.reserved1[:])
	if c.AuxSend {
		n.Uint8(0xFF)
	} else {
		n.Uint8(0)
	}
	n.Bytes(c.Controllers[:])
	n.Bytes(c.reserved2[:])
	n.Uint16(c.Preset)
}

func decodeMIDIChannel(d *decoder) MIDIChannel {
	var c MIDIChannel
	c.Volume = d.u8()
	c.Pan = d.i8()
	copy(c.reserved1[:], d.take(len(c.reserved1)))
	c.AuxSend = d.u8() != 0
	copy(c.Controllers[:], d.take(NumControllers))
	copy(c.reserved2[:], d.take(len(c.reserved2)))
	c.Preset = d.u16()
	return c
}

// ----------------------------------------------------------------------
// Startup (EMSt)
// ----------------------------------------------------------------------

// Startup はバンク読み込み時に実機が使うマルチセットアップです。
type Startup struct {
	Name          string
	CurrentPreset uint16
	Channels      [NumMIDIChannels]MIDIChannel
	Tempo         uint8 // BPM [20, 240]
}

// NewStartup は既定値のマルチセットアップを作成します。
func NewStartup(name string, currentPreset uint16) *Startup {
	s := &Startup{
		Name:          NormalizeName(name),
		CurrentPreset: currentPreset,
		Tempo:         MinTempo,
	}
	for i := range s.Channels {
		s.Channels[i] = DefaultMIDIChannel()
	}
	return s
}

func (s *Startup) SetName(name string) { s.Name = NormalizeName(name) }
func (s *Startup) SetTempo(bpm uint8) { s.Tempo = units.Clamp(bpm, MinTempo, MaxTempo) }

// Encode は固定長 1366 バイトのペイロードを書き込みます。
func (s *Startup) Encode(n *chunk.Node) {
	n.Pad(2)
	n.Bytes(encodeName(s.Name))
	n.Pad(4)
	n.Uint16(s.CurrentPreset)
	for _, c := range s.Channels {
		c.encode(n)
	}
	n.Pad(5)
	n.Uint8(units.Clamp(s.Tempo, MinTempo, MaxTempo))
	n.Pad(312)
}

func (s *Startup) Decode(b []byte) error {
	d := newDecoder(b)
	d.skip(2)
	s.Name = d.name()
	d.skip(4)
	s.CurrentPreset = d.u16()
	for i := range s.Channels {
		s.Channels[i] = decodeMIDIChannel(d)
	}
	d.skip(5)
	s.Tempo = d.u8()
	d.skip(312)
	return d.err
}

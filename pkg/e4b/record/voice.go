package record

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// Voice はプリセット内の1つの発音レイヤーです。
// 固定長のパラメーター部の後に 24 本のコードと可変個のゾーンが続きます。
type Voice struct {
	Group uint8 // [0, 31]

	KeyRange      NoteRange
	VelocityRange NoteRange
	RealtimeRange NoteRange

	AssignGroup AssignGroup
	KeyDelay    uint16 // ミリ秒 [0, 10000]

	SampleOffset float64 // % [0, 100]
	Transpose    int8    // 半音 [-36, 36]
	CoarseTune   int8    // 半音 [-72, 24]
	FineTune     float64 // セント [-100, 100]
	GlideRate    uint8
	FixedPitch   bool
	KeyMode      KeyMode
	GlideCurve   GlideCurve
	KeyLatch     bool

	ChorusWidth   float64 // % [0, 100]
	ChorusAmount  float64 // % [0, 100]
	ChorusInitITD uint8

	Volume             int8 // dB [-96, 10]
	Pan                int8 // [-64, 63]
	AmpEnvDynamicRange int8

	FilterType      FilterType
	FilterFrequency uint16  // Hz [57, 20000]
	FilterResonance float64 // % [0, 100]

	AmpEnv    Envelope
	FilterEnv Envelope
	AuxEnv    Envelope

	LFO1    LFO
	LFO2    LFO
	LFOLag1 uint8 // [0, 10]
	LFOLag2 uint8 // [0, 10]

	Cords [NumCords]Cord
	Zones []*Zone
}

// NewVoice は実機の新規ボイスと同じ初期値でボイスを作成します。
func NewVoice() *Voice {
	return &Voice{
		KeyRange:        FullRange(),
		VelocityRange:   FullRange(),
		RealtimeRange:   FullRange(),
		ChorusWidth:     100,
		FilterType:      FilterNoFilter,
		FilterFrequency: MaxFilterFrequency,
		AmpEnv:          DefaultEnvelope(),
		FilterEnv:       DefaultEnvelope(),
		AuxEnv:          DefaultEnvelope(),
		LFO1:            DefaultLFO(),
		LFO2:            DefaultLFO(),
		Cords:           defaultCords(),
	}
}

// ----------------------------------------------------------------------
// セッター (値域外の値は黙って丸める)
// ----------------------------------------------------------------------

func (v *Voice) SetGroup(g uint8) { v.Group = units.Clamp(g, 0, MaxGroup) }
func (v *Voice) SetKeyDelay(ms uint16) { v.KeyDelay = units.Clamp(ms, 0, MaxKeyDelay) }
func (v *Voice) SetTranspose(semi int8) { v.Transpose = units.Clamp(semi, MinVoiceTranspose, MaxVoiceTranspose) }
func (v *Voice) SetCoarseTune(semi int8) { v.CoarseTune = units.Clamp(semi, MinCoarseTune, MaxCoarseTune) }
func (v *Voice) SetFineTune(cents float64) { v.FineTune = units.Clamp(cents, MinFineTune, MaxFineTune) }
func (v *Voice) SetVolume(db int8) { v.Volume = units.Clamp(db, MinVolume, MaxVolume) }
func (v *Voice) SetPan(pan int8) { v.Pan = units.Clamp(pan, MinPan, MaxPan) }
func (v *Voice) SetLFOLag1(lag uint8) { v.LFOLag1 = units.Clamp(lag, 0, MaxLFOLag) }
func (v *Voice) SetLFOLag2(lag uint8) { v.LFOLag2 = units.Clamp(lag, 0, MaxLFOLag) }

func (v *Voice) SetFilterFrequency(hz uint16) {
	v.FilterFrequency = units.Clamp(hz, MinFilterFrequency, MaxFilterFrequency)
}

// ----------------------------------------------------------------------
// ゾーン・コード操作
// ----------------------------------------------------------------------

// AddZone はゾーンを追加します。上限 (256) に達している場合は false を返します。
func (v *Voice) AddZone(z *Zone) bool {
	if z == nil || len(v.Zones) >= MaxZones {
		return false
	}
	v.Zones = append(v.Zones, z)
	return true
}

// ReplaceOrAddCord は同じ入力元・出力先のコードの量を置き換えます。
// 見つからない場合は最初の空きスロットへ追加し、空きがなければ false を返します。
func (v *Voice) ReplaceOrAddCord(src CordSource, dst CordDest, amount float64) bool {
	amount = units.Clamp(amount, -100, 100)
	for i := range v.Cords {
		if v.Cords[i].Source == src && v.Cords[i].Dest == dst {
			v.Cords[i].Amount = amount
			return true
		}
	}
	for i := range v.Cords {
		if v.Cords[i].IsOff() {
			v.Cords[i] = Cord{Source: src, Dest: dst, Amount: amount}
			return true
		}
	}
	return false
}

// CordAmount は指定ルーティングのコード量を返します。
func (v *Voice) CordAmount(src CordSource, dst CordDest) (float64, bool) {
	for _, c := range v.Cords {
		if c.Source == src && c.Dest == dst {
			return c.Amount, true
		}
	}
	return 0, false
}

// HasCord は入力元 src から出ているコードが存在するかを返します。
func (v *Voice) HasCord(src CordSource) bool {
	for _, c := range v.Cords {
		if c.Source == src {
			return true
		}
	}
	return false
}

// DataSize はボイスの長さフィールドに書き込む値です。
func (v *Voice) DataSize() uint16 {
	return uint16(voiceFixedSize + zoneSize*len(v.Zones))
}

// ----------------------------------------------------------------------
// エンコード / デコード
// ----------------------------------------------------------------------

// Encode はボイスを node のカーソル位置へ書き込みます。
func (v *Voice) Encode(n *chunk.Node) {
	zones := v.Zones
	if len(zones) > maxEncodedZones {
		slog.Warn("ゾーン数が1バイトに収まらないため超過分を書き込みません", "zones", len(zones), "max", maxEncodedZones)
		zones = zones[:maxEncodedZones]
	}

	n.Uint16(uint16(voiceFixedSize + zoneSize*len(zones)))
	n.Uint8(uint8(len(zones)))
	n.Uint8(units.Clamp(v.Group, 0, MaxGroup))
	n.Pad(8)

	v.KeyRange.encode(n)
	v.VelocityRange.encode(n)
	v.RealtimeRange.encode(n)

	n.Pad(1)
	n.Uint8(uint8(v.AssignGroup))
	n.Uint16(units.Clamp(v.KeyDelay, 0, MaxKeyDelay))
	n.Pad(3)

	n.Uint8(uint8(units.PercentToByte(units.Clamp(v.SampleOffset, 0, 100))))
	n.Int8(units.Clamp(v.Transpose, MinVoiceTranspose, MaxVoiceTranspose))
	n.Int8(units.Clamp(v.CoarseTune, MinCoarseTune, MaxCoarseTune))
	n.Int8(units.FineTuneToByte(units.Clamp(v.FineTune, MinFineTune, MaxFineTune)))
	n.Uint8(v.GlideRate)
	n.Bool(v.FixedPitch)
	n.Uint8(uint8(v.KeyMode))
	n.Pad(1)

	n.Uint8(units.ChorusWidthToByte(units.Clamp(v.ChorusWidth, 0, 100)))
	n.Uint8(uint8(units.PercentToByte(units.Clamp(v.ChorusAmount, 0, 100))))
	n.Pad(1)
	n.Uint8(v.ChorusInitITD)
	n.Pad(5)

	n.Bool(v.KeyLatch)
	n.Pad(2)

	n.Uint8(uint8(v.GlideCurve))
	n.Int8(units.Clamp(v.Volume, MinVolume, MaxVolume))
	n.Int8(units.Clamp(v.Pan, MinPan, MaxPan))
	n.Pad(1)

	n.Int8(v.AmpEnvDynamicRange)
	n.Uint8(uint8(v.FilterType))
	n.Pad(1)

	n.Uint8(units.FilterFreqToByte(units.Clamp(v.FilterFrequency, MinFilterFrequency, MaxFilterFrequency)))
	n.Uint8(uint8(units.PercentToByte(units.Clamp(v.FilterResonance, 0, 100))))
	n.Pad(48)

	for _, env := range []Envelope{v.AmpEnv, v.FilterEnv, v.AuxEnv} {
		env.encode(n)
		n.Pad(2)
	}

	v.LFO1.encode(n)
	n.Pad(1)
	v.LFO2.encode(n)
	n.Uint8(units.Clamp(v.LFOLag1, 0, MaxLFOLag))
	n.Pad(1)
	n.Uint8(units.Clamp(v.LFOLag2, 0, MaxLFOLag))
	n.Pad(20)

	for _, c := range v.Cords {
		c.encode(n)
	}
	for _, z := range zones {
		z.encode(n)
	}
}

// decodeVoice はカーソル位置からボイスを1つ読み取ります。
// 長さフィールドが正しいがゾーン数が 0 のボイスは破棄され、カーソルは次のボイスへ再同期されます。
// 長さフィールド自体が不正な場合は次のボイス位置を特定できないため、呼び出し側は残りを読み飛ばす必要があります。
func decodeVoice(d *decoder) (*Voice, error) {
	start := d.off
	size := d.u16()
	if d.err != nil {
		return nil, d.err
	}
	if size < voiceFixedSize || size%zoneSize != voiceSizeModRemainder {
		return nil, &ErrFieldConsistency{
			Record:  "voice",
			Field:   "voiceDataSize",
			Details: fmt.Sprintf("%d は %d + %d*n の形式ではありません", size, voiceFixedSize, zoneSize),
		}
	}

	zoneCount := d.u8()
	if zoneCount == 0 {
		d.seek(start + int(size))
		if d.err != nil {
			return nil, d.err
		}
		return NewVoice(), &ErrFieldConsistency{Record: "voice", Field: "zoneCount", Details: "ゾーン数が 0 です"}
	}

	v := &Voice{Group: d.u8()}
	d.skip(8)

	v.KeyRange = decodeNoteRange(d)
	v.VelocityRange = decodeNoteRange(d)
	v.RealtimeRange = decodeNoteRange(d)

	d.skip(1)
	v.AssignGroup = AssignGroup(d.u8())
	v.KeyDelay = d.u16()
	d.skip(3)

	v.SampleOffset = units.UnsignedByteToPercent(d.u8())
	v.Transpose = d.i8()
	v.CoarseTune = d.i8()
	v.FineTune = units.ByteToFineTune(d.i8())
	v.GlideRate = d.u8()
	v.FixedPitch = d.boolean()
	v.KeyMode = KeyMode(d.u8())
	d.skip(1)

	v.ChorusWidth = units.ChorusWidthFromByte(d.u8())
	v.ChorusAmount = units.CeilPlaces(units.UnsignedByteToPercent(d.u8()), 2)
	d.skip(1)
	v.ChorusInitITD = d.u8()
	d.skip(5)

	v.KeyLatch = d.boolean()
	d.skip(2)

	v.GlideCurve = GlideCurve(d.u8())
	v.Volume = d.i8()
	v.Pan = d.i8()
	d.skip(1)

	v.AmpEnvDynamicRange = d.i8()
	v.FilterType = FilterType(d.u8())
	d.skip(1)

	v.FilterFrequency = units.ByteToFilterFreq(d.u8())
	v.FilterResonance = units.CeilPlaces(units.UnsignedByteToPercent(d.u8()), 1)
	d.skip(48)

	v.AmpEnv = decodeEnvelope(d)
	d.skip(2)
	v.FilterEnv = decodeEnvelope(d)
	d.skip(2)
	v.AuxEnv = decodeEnvelope(d)
	d.skip(2)

	v.LFO1 = decodeLFO(d)
	d.skip(1)
	v.LFO2 = decodeLFO(d)
	v.LFOLag1 = d.u8()
	d.skip(1)
	v.LFOLag2 = d.u8()
	d.skip(20)

	for i := range v.Cords {
		v.Cords[i] = decodeCord(d)
	}

	v.Zones = make([]*Zone, 0, zoneCount)
	for i := 0; i < int(zoneCount); i++ {
		v.Zones = append(v.Zones, decodeZone(d))
	}

	// 長さフィールドを正として次のボイス位置へ揃える
	d.seek(start + int(size))
	if d.err != nil {
		return nil, d.err
	}
	return v, nil
}

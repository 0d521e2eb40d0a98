package record

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// Preset は名前付きの楽器プリセットで、1つ以上のボイスを束ねます。
type Preset struct {
	Index     uint16
	Name      string
	Transpose int8 // 半音 [-12, 12]
	Volume    int8 // dB [-96, 10]

	// InitialControllers は初期MIDIコントローラー A〜D の値です。ControllerOff は未設定。
	InitialControllers [4]uint8

	Voices []*Voice
}

// NewPreset は名前を正規化してプリセットを作成します。
// index に AutoIndex を渡すとバンク追加時に割り当てられます。
func NewPreset(name string, index uint16) *Preset {
	return &Preset{
		Index:              clampIndex(index, MaxPresets),
		Name:               NormalizeName(name),
		InitialControllers: [4]uint8{ControllerOff, ControllerOff, ControllerOff, ControllerOff},
	}
}

func (p *Preset) SetName(name string) { p.Name = NormalizeName(name) }
func (p *Preset) SetIndex(index uint16) { p.Index = clampIndex(index, MaxPresets) }
func (p *Preset) SetTranspose(semi int8) { p.Transpose = units.Clamp(semi, MinPresetTranspose, MaxPresetTranspose) }
func (p *Preset) SetVolume(db int8) { p.Volume = units.Clamp(db, MinVolume, MaxVolume) }

// AddVoice はボイスを追加します。上限に達している場合は false を返します。
func (p *Preset) AddVoice(v *Voice) bool {
	if v == nil || len(p.Voices) >= MaxVoices {
		return false
	}
	p.Voices = append(p.Voices, v)
	return true
}

// RemoveVoice は i 番目のボイスを取り除きます。
func (p *Preset) RemoveVoice(i int) bool {
	if i < 0 || i >= len(p.Voices) {
		return false
	}
	p.Voices = append(p.Voices[:i], p.Voices[i+1:]...)
	return true
}

// ----------------------------------------------------------------------
// エンコード / デコード
// ----------------------------------------------------------------------

// Encode はプリセットのペイロード全体を node に書き込みます。
func (p *Preset) Encode(n *chunk.Node) {
	n.Uint16(p.Index)
	n.Bytes(encodeName(p.Name))
	n.Uint16(presetDataSize)
	n.Uint16(uint16(len(p.Voices)))
	n.Pad(4)
	n.Int8(units.Clamp(p.Transpose, MinPresetTranspose, MaxPresetTranspose))
	n.Int8(units.Clamp(p.Volume, MinVolume, MaxVolume))
	n.Pad(24)
	n.Bytes([]byte{'R', '#', 0, '~'})
	for _, c := range p.InitialControllers {
		n.Uint8(c)
	}
	n.Pad(24)

	for _, v := range p.Voices {
		v.Encode(n)
	}
}

// Decode はペイロードからプリセットを復元します。
// ペイロードの途中切れはエラーとして返します。ボイス単位の不整合は警告ログを出し、
// 該当ボイスを既定値で置き換えて読み進めます。
func (p *Preset) Decode(b []byte) error {
	d := newDecoder(b)

	p.Index = d.u16()
	p.Name = d.name()
	dataSize := d.u16()
	if d.err != nil {
		return d.err
	}
	p.Voices = nil
	if dataSize != presetDataSize {
		err := &ErrFieldConsistency{
			Record:  "preset",
			Field:   "dataSize",
			Details: fmt.Sprintf("%d (期待値 %d)", dataSize, presetDataSize),
		}
		slog.Warn("プリセットを破棄しました", "index", p.Index, "name", DisplayName(p.Name), "error", err)
		return nil
	}

	numVoices := d.u16()
	d.skip(4)
	p.Transpose = d.i8()
	p.Volume = d.i8()
	// 予約領域と 'R#\0~' マーカー
	d.skip(28)
	for i := range p.InitialControllers {
		p.InitialControllers[i] = d.u8()
	}
	d.skip(24)
	if d.err != nil {
		return d.err
	}

	for i := 0; i < int(numVoices); i++ {
		v, err := decodeVoice(d)
		if err == nil {
			p.Voices = append(p.Voices, v)
			continue
		}

		var fe *ErrFieldConsistency
		if !errors.As(err, &fe) {
			return err
		}
		slog.Warn("ボイスを破棄しました", "preset", p.Index, "voice", i, "error", err)
		if v == nil {
			// 長さフィールドが壊れているため以降のボイス位置は不明
			p.Voices = append(p.Voices, NewVoice())
			break
		}
		p.Voices = append(p.Voices, v)
	}
	return nil
}

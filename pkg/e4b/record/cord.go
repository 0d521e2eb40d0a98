package record

import (
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// Cord はモジュレーションのルーティング (入力元 → 出力先, 量) です。
type Cord struct {
	Source CordSource
	Dest   CordDest
	Amount float64 // % [-100, 100]
}

// IsOff は未使用スロットかどうかを返します。
func (c Cord) IsOff() bool {
	return c.Source == SrcOff && c.Dest == DstOff
}

// defaultCords は新規ボイスのコード配置です。先頭8スロットだけが埋まります。
func defaultCords() [NumCords]Cord {
	var cords [NumCords]Cord
	copy(cords[:], []Cord{
		{SrcVelPolarityLess, DstAmpVolume, 0},
		{SrcPitchWheel, DstPitch, 0},
		{SrcLFO1PolarityCenter, DstPitch, 0},
		{SrcModWheel, DstCord3Amt, 6},
		{SrcVelPolarityLess, DstFilterFreq, 0},
		{SrcFilterEnvPolarityPos, DstFilterFreq, 0},
		{SrcKeyPolarityCenter, DstFilterFreq, 0},
		{SrcFootswitch1, DstKeySustain, 100},
	})
	return cords
}

func (c Cord) encode(n *chunk.Node) {
	n.Uint8(uint8(c.Source))
	n.Uint8(uint8(c.Dest))
	n.Int8(units.PercentToByte(units.Clamp(c.Amount, -100, 100)))
	n.Pad(1)
}

func decodeCord(d *decoder) Cord {
	c := Cord{
		Source: CordSource(d.u8()),
		Dest:   CordDest(d.u8()),
		Amount: units.ByteToPercent(d.i8()),
	}
	d.skip(1)
	return c
}

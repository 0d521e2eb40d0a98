package record

import (
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// LFO はボイスの低周波オシレーターです。
type LFO struct {
	Rate      float64 // Hz [0.08, 18.01]
	Shape     LFOShape
	Delay     float64 // 秒 [0, 21.694]
	Variation float64 // % [0, 100]
	KeySync   bool
}

// DefaultLFO は 5.79Hz のサイン波を返します。
func DefaultLFO() LFO {
	return LFO{Rate: 5.79, Shape: ShapeSine, KeySync: true}
}

func (l LFO) encode(n *chunk.Node) {
	n.Uint8(units.ByteFromLFORate(units.Clamp(l.Rate, MinLFORate, MaxLFORate)))
	n.Uint8(uint8(l.Shape))
	n.Uint8(units.ByteFromLFODelay(units.Clamp(l.Delay, 0, MaxLFODelay)))
	n.Uint8(uint8(units.PercentToByte(units.Clamp(l.Variation, 0, 100))))
	// 実機では 0 が key sync オン
	n.Bool(!l.KeySync)
	n.Pad(2)
}

func decodeLFO(d *decoder) LFO {
	l := LFO{
		Rate:      units.LFORateFromByte(d.u8()),
		Shape:     LFOShape(d.u8()),
		Delay:     units.LFODelayFromByte(d.u8()),
		Variation: units.UnsignedByteToPercent(d.u8()),
		KeySync:   !d.boolean(),
	}
	d.skip(2)
	return l
}

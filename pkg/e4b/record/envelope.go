package record

import "github.com/shouni/go-e4b/pkg/e4b/chunk"

// Stage はエンベロープの1区間 (時間とレベル) です。値は実機のバイト値そのままです。
type Stage struct {
	Time  uint8
	Level int8
}

// Envelope は6区間のエンベロープです。
// Attack1/Attack2 のうち先にフルレベルへ到達する方が実質的なアタックになります。
type Envelope struct {
	Attack1  Stage
	Attack2  Stage
	Decay1   Stage
	Decay2   Stage
	Release1 Stage
	Release2 Stage
}

const fullLevel = 127

// DefaultEnvelope は Attack2/Decay1/Decay2 のレベルだけがフルのエンベロープを返します。
func DefaultEnvelope() Envelope {
	return Envelope{
		Attack2: Stage{Level: fullLevel},
		Decay1:  Stage{Level: fullLevel},
		Decay2:  Stage{Level: fullLevel},
	}
}

// Attack は実質的なアタック区間を返します。
func (e Envelope) Attack() Stage {
	if e.Attack1.Level == fullLevel {
		return e.Attack1
	}
	return e.Attack2
}

// Hold はホールド区間 (Decay1) を返します。
func (e Envelope) Hold() Stage { return e.Decay1 }

// Sustain はサスティンレベル (Decay2 のレベル) を返します。
func (e Envelope) Sustain() int8 { return e.Decay2.Level }

func (e Envelope) stages() [6]*Stage {
	return [6]*Stage{&e.Attack1, &e.Attack2, &e.Decay1, &e.Decay2, &e.Release1, &e.Release2}
}

func (e Envelope) encode(n *chunk.Node) {
	for _, s := range e.stages() {
		n.Uint8(s.Time)
		n.Int8(s.Level)
	}
}

func decodeEnvelope(d *decoder) Envelope {
	var e Envelope
	for _, s := range []*Stage{&e.Attack1, &e.Attack2, &e.Decay1, &e.Decay2, &e.Release1, &e.Release2} {
		s.Time = d.u8()
		s.Level = d.i8()
	}
	return e
}

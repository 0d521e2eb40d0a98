package record

import (
	"github.com/pkg/errors"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
)

// Sequence はバンクに格納される Standard MIDI File です。
// MIDI データは解釈せずにそのまま保持します。
type Sequence struct {
	Index uint16
	Name  string
	Data  []byte
}

func NewSequence(name string, data []byte, index uint16) *Sequence {
	return &Sequence{
		Index: clampIndex(index, MaxSequences),
		Name:  NormalizeName(name),
		Data:  data,
	}
}

func (s *Sequence) SetName(name string) { s.Name = NormalizeName(name) }
func (s *Sequence) SetIndex(index uint16) { s.Index = clampIndex(index, MaxSequences) }

func (s *Sequence) Encode(n *chunk.Node) error {
	if len(s.Data) == 0 {
		return errors.Wrapf(ErrEmptyPayload, "sequence %d %q", s.Index, DisplayName(s.Name))
	}
	n.Uint16(s.Index)
	n.Bytes(encodeName(s.Name))
	n.Bytes(s.Data)
	return nil
}

func (s *Sequence) Decode(b []byte) error {
	d := newDecoder(b)
	s.Index = d.u16()
	s.Name = d.name()
	if d.err != nil {
		return d.err
	}
	s.Data = append([]byte(nil), d.take(d.remaining())...)
	return nil
}

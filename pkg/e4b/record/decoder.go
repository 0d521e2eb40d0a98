package record

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// decoder はチャンクペイロードを先頭から順に読み進めるカーソルです。
// 最初のエラーを保持し、以降の読み取りはゼロ値を返します。
type decoder struct {
	buf []byte
	off int
	err error
}

func newDecoder(b []byte) *decoder {
	return &decoder{buf: b}
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.off+n > len(d.buf) {
		d.err = errors.Wrapf(ErrShortRecord, "オフセット %d で %d バイト必要ですが残り %d バイトです", d.off, n, len(d.buf)-d.off)
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) skip(n int) { d.take(n) }

// seek は絶対位置へ移動します。ボイスの再同期に使います。
func (d *decoder) seek(off int) {
	if d.err != nil {
		return
	}
	if off < 0 || off > len(d.buf) {
		d.err = errors.Wrapf(ErrShortRecord, "シーク先 %d がペイロード長 %d を超えています", off, len(d.buf))
		return
	}
	d.off = off
}

func (d *decoder) remaining() int { return len(d.buf) - d.off }

func (d *decoder) u8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) i8() int8 { return int8(d.u8()) }

func (d *decoder) boolean() bool { return d.u8() != 0 }

func (d *decoder) u16() uint16 {
	b := d.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (d *decoder) u32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (d *decoder) u32le() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// name は16バイトの名前を加工せずにそのまま返します。
func (d *decoder) name() string {
	return string(d.take(NameSize))
}

func (d *decoder) int16sLE(count int) []int16 {
	b := d.take(count * 2)
	if b == nil {
		return nil
	}
	out := make([]int16, count)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out
}

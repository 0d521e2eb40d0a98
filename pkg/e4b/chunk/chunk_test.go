package chunk

import (
	"bytes"
	"errors"
	"testing"
)

func TestAppendCursor(t *testing.T) {
	n := New("TEST")
	n.Uint16(0x0102)
	n.Pad(3)
	n.Bytes([]byte("ab"))
	n.Uint32LE(0x0a0b0c0d)

	want := []byte{0x01, 0x02, 0, 0, 0, 'a', 'b', 0x0d, 0x0c, 0x0b, 0x0a}
	if !bytes.Equal(n.Payload(), want) {
		t.Fatalf("payload = % x, want % x", n.Payload(), want)
	}
}

func TestAppendRejectsInvalidSizes(t *testing.T) {
	n := New("TEST")
	n.Append([]byte{1, 2}, 0)
	n.Append([]byte{1, 2}, -1)
	n.Append([]byte{1, 2}, 3)
	if len(n.Payload()) != 0 {
		t.Fatalf("payload = % x, want empty", n.Payload())
	}

	n.Append([]byte{1, 2, 3}, 2)
	if !bytes.Equal(n.Payload(), []byte{1, 2}) {
		t.Fatalf("payload = % x, want 01 02", n.Payload())
	}
}

func TestFullSize(t *testing.T) {
	root := New("FORM")
	root.Bytes([]byte("E4B0"))

	child := New("E4P1")
	child.Pad(10)
	root.AddChild(child)

	grand := New("TOC1")
	grand.Pad(32)
	child.AddChild(grand)

	if got := root.FullSize(false); got != 4+10+32 {
		t.Errorf("FullSize(false) = %d, want 46", got)
	}
	if got := root.FullSize(true); got != 46+3*HeaderSize {
		t.Errorf("FullSize(true) = %d, want %d", got, 46+3*HeaderSize)
	}
}

func TestWriteToDepthFirst(t *testing.T) {
	root := New("FORM")
	root.Bytes([]byte("E4B0"))

	a := New("AAAA")
	a.Uint8(0xaa)
	root.AddChild(a)

	b := NewSized("BBBB", 7)
	b.Uint8(0xbb)
	root.AddChild(b)

	var buf bytes.Buffer
	n, err := root.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) || uint32(n) != root.FullSize(true) {
		t.Fatalf("wrote %d bytes, buffer %d, full size %d", n, buf.Len(), root.FullSize(true))
	}

	want := []byte{
		'F', 'O', 'R', 'M', 0, 0, 0, 22, 'E', '4', 'B', '0',
		'A', 'A', 'A', 'A', 0, 0, 0, 1, 0xaa,
		'B', 'B', 'B', 'B', 0, 0, 0, 7, 0xbb,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("stream = % x\nwant     % x", buf.Bytes(), want)
	}
}

func TestWriteToInvalidTag(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New("BAD").WriteTo(&buf); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("err = %v, want ErrInvalidTag", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %d bytes for an invalid tag", buf.Len())
	}
}

func TestReadHeader(t *testing.T) {
	r := bytes.NewReader([]byte{'T', 'O', 'C', '1', 0, 0, 1, 0, 0xff})
	h, err := ReadHeader(r)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Tag() != "TOC1" || h.DeclaredSize() != 256 {
		t.Fatalf("header = %s/%d, want TOC1/256", h.Tag(), h.DeclaredSize())
	}
	if r.Len() != 1 {
		t.Fatalf("ReadHeader consumed %d bytes, want 8", 9-r.Len())
	}

	if _, err := ReadHeader(bytes.NewReader([]byte("FOR"))); err == nil {
		t.Fatal("expected error for a short header")
	}
}

package chunk

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// ErrInvalidTag はチャンク名がちょうど4バイトでないことを示します。
var ErrInvalidTag = errors.New("チャンク名は4バイトである必要があります")

// ----------------------------------------------------------------------
// Node 構造体
// ----------------------------------------------------------------------

// Node はタグ付き・長さ付きのバイナリブロックです。
// ペイロードは書き込み順に蓄積され、子ノードはペイロードの後に深さ優先で書き出されます。
type Node struct {
	tag      string
	override uint32 // 0 以外なら書き込み時の長さフィールドをこの値で上書きする (TOC エントリ用)
	declared uint32 // ReadHeader で読み取った長さ

	payload []byte
	cursor  int

	children []*Node
}

// New は空のノードを作成します。
func New(tag string) *Node {
	return &Node{tag: tag}
}

// NewSized は長さフィールドを明示的に上書きするノードを作成します。
// TOC エントリは対象チャンクのペイロード長 - 2 を格納するため、これを利用します。
func NewSized(tag string, size uint32) *Node {
	return &Node{tag: tag, override: size}
}

// Tag はチャンク名を返します。
func (n *Node) Tag() string { return n.tag }

// DeclaredSize は ReadHeader で読み取った長さフィールドの値を返します。
func (n *Node) DeclaredSize() uint32 { return n.declared }

// Payload は蓄積済みのペイロードを返します。
func (n *Node) Payload() []byte { return n.payload }

// Children は子ノードを挿入順に返します。
func (n *Node) Children() []*Node { return n.children }

// AddChild は子ノードを末尾に追加します。
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// FullSize はペイロード長と全子ノードのサイズの合計を返します。
// includeHeader が true の場合、自身と各子ノードの8バイトヘッダーも含めます。
func (n *Node) FullSize(includeHeader bool) uint32 {
	size := uint32(len(n.payload))
	if includeHeader {
		size += uint32(len(n.tag)) + SizeFieldSize
	}
	for _, child := range n.children {
		size += child.FullSize(includeHeader)
	}
	return size
}

// ----------------------------------------------------------------------
// ペイロードの蓄積
// ----------------------------------------------------------------------

// Append はカーソル位置に size バイトを書き込み、カーソルを進めます。
// data が nil の場合はゼロ埋めの領域だけを確保します (パディング・予約フィールド用)。
// size が 0 以下、または data より大きい要求は何もせずに無視されます。
func (n *Node) Append(data []byte, size int) {
	if size <= 0 || (data != nil && size > len(data)) {
		slog.Debug("チャンクへの不正な追記要求を無視しました", "tag", n.tag, "size", size, "data_len", len(data))
		return
	}

	if end := n.cursor + size; end > len(n.payload) {
		n.payload = append(n.payload, make([]byte, end-len(n.payload))...)
	}
	if data != nil {
		copy(n.payload[n.cursor:], data[:size])
	}
	n.cursor += size
}

// Pad はゼロのパディングを size バイト確保します。
func (n *Node) Pad(size int) { n.Append(nil, size) }

// Bytes はバイト列をそのまま追記します。
func (n *Node) Bytes(b []byte) { n.Append(b, len(b)) }

func (n *Node) Uint8(v uint8) { n.Append([]byte{v}, 1) }

func (n *Node) Int8(v int8) { n.Uint8(uint8(v)) }

func (n *Node) Bool(v bool) {
	if v {
		n.Uint8(1)
		return
	}
	n.Uint8(0)
}

// Uint16 はビッグエンディアンで書き込みます。
func (n *Node) Uint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	n.Append(b[:], len(b))
}

// Uint32 はビッグエンディアンで書き込みます。
func (n *Node) Uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	n.Append(b[:], len(b))
}

// Uint32LE はリトルエンディアンで書き込みます (サンプルブロック用)。
func (n *Node) Uint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	n.Append(b[:], len(b))
}

// Int16sLE は16ビットPCMをリトルエンディアンで書き込みます。
func (n *Node) Int16sLE(samples []int16) {
	if len(samples) == 0 {
		return
	}
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	n.Append(b, len(b))
}

// ----------------------------------------------------------------------
// 入出力
// ----------------------------------------------------------------------

// WriteTo はタグ、長さ、ペイロード、子ノードの順に深さ優先で書き出します。
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	if len(n.tag) != TagSize {
		return 0, errors.Wrapf(ErrInvalidTag, "tag %q", n.tag)
	}

	size := n.override
	if size == noSizeOverride {
		size = n.FullSize(true) - HeaderSize
	}

	var header [HeaderSize]byte
	copy(header[:TagSize], n.tag)
	binary.BigEndian.PutUint32(header[TagSize:], size)

	var written int64
	m, err := w.Write(header[:])
	written += int64(m)
	if err != nil {
		return written, errors.Wrapf(err, "チャンク %s のヘッダー書き込み", n.tag)
	}

	if len(n.payload) > 0 {
		m, err = w.Write(n.payload)
		written += int64(m)
		if err != nil {
			return written, errors.Wrapf(err, "チャンク %s のペイロード書き込み", n.tag)
		}
	}

	for _, child := range n.children {
		m, err := child.WriteTo(w)
		written += m
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadHeader はタグと長さの8バイトだけを読み取ります。
// ペイロードの解析や読み飛ばしは呼び出し側 (レコードコーデック) の責務です。
func ReadHeader(r io.Reader) (*Node, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.WithStack(err)
	}
	return &Node{
		tag:      string(header[:TagSize]),
		declared: binary.BigEndian.Uint32(header[TagSize:]),
	}, nil
}

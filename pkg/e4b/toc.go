package e4b

import (
	"encoding/binary"
	"io"

	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// TOCEntry は TOC1 チャンク内の1エントリです。
type TOCEntry struct {
	Tag    string
	Size   uint32 // 対象チャンクのペイロード長 - 2
	Offset uint32 // 対象チャンクヘッダーのファイル先頭からの位置
	Index  uint16
	Name   string
}

// PayloadOffset は対象チャンクのペイロード開始位置です。
func (e TOCEntry) PayloadOffset() int64 { return int64(e.Offset) + chunk.HeaderSize }

// PayloadSize は対象チャンクのペイロード長です。
func (e TOCEntry) PayloadSize() int64 { return int64(e.Size) + tocSizeAdjust }

// ----------------------------------------------------------------------
// 書き込み
// ----------------------------------------------------------------------

// dataChunk は TOC に索引される1つのデータチャンクです。
type dataChunk struct {
	node  *chunk.Node
	index uint16
	name  string
}

// buildTOC はデータチャンクの実際の配置からオフセットを求め、TOC1 ノードを組み立てます。
// 最初のデータチャンクは FORM ヘッダー、フォームタイプ、TOC1 ブロック全体の直後に置かれます。
func buildTOC(chunks []dataChunk) *chunk.Node {
	toc := chunk.New(TagTOC)
	offset := uint32(chunk.HeaderSize + formTypeSize + chunk.HeaderSize + TOCEntrySize*len(chunks))

	for _, c := range chunks {
		entry := chunk.NewSized(c.node.Tag(), c.node.FullSize(false)-tocSizeAdjust)
		entry.Uint32(offset)
		entry.Uint16(c.index)
		entry.Bytes([]byte(record.NormalizeName(c.name)))
		entry.Pad(tocPaddingSize)
		toc.AddChild(entry)

		offset += c.node.FullSize(true)
	}
	return toc
}

// ----------------------------------------------------------------------
// 読み込み
// ----------------------------------------------------------------------

// readTOCEntry は現在位置から TOC エントリを1つ読み取ります。
func readTOCEntry(r io.Reader) (TOCEntry, error) {
	header, err := chunk.ReadHeader(r)
	if err != nil {
		return TOCEntry{}, err
	}

	var body [TOCEntrySize - chunk.HeaderSize]byte
	if _, err := io.ReadFull(r, body[:]); err != nil {
		return TOCEntry{}, err
	}

	nameStart := tocOffsetSize + 2
	return TOCEntry{
		Tag:    header.Tag(),
		Size:   header.DeclaredSize(),
		Offset: binary.BigEndian.Uint32(body[:tocOffsetSize]),
		Index:  binary.BigEndian.Uint16(body[tocOffsetSize:nameStart]),
		Name:   string(body[nameStart : nameStart+record.NameSize]),
	}, nil
}

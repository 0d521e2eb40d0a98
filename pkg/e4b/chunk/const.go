package chunk

// ----------------------------------------------------------------------
// チャンクヘッダー定数
// ----------------------------------------------------------------------

const (
	TagSize       = 4                       // "FORM" などのチャンク名
	SizeFieldSize = 4                       // ビッグエンディアンの長さフィールド
	HeaderSize    = TagSize + SizeFieldSize // 8 bytes

	noSizeOverride = 0
)

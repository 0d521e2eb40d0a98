package record

import (
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// NormalizeName は名前を実機の命名規則 (16バイト固定・スペース埋め) に揃えます。
// 長い名前は文字の境界で切り詰め、NULはスペースに置き換えます。
func NormalizeName(name string) string {
	b := []byte(name)
	if len(b) > NameSize {
		cut := NameSize
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		b = b[:cut]
	}
	out := make([]byte, NameSize)
	for i := range out {
		out[i] = ' '
		if i < len(b) && b[i] != 0 {
			out[i] = b[i]
		}
	}
	return string(out)
}

// DisplayName は表示用に末尾のスペースとNULを取り除きます。
func DisplayName(name string) string {
	return strings.TrimRight(name, " \x00")
}

func encodeName(name string) []byte {
	return []byte(NormalizeName(name))
}

// clampIndex は AutoIndex 以外のインデックスを [0, max] に収めます。
func clampIndex(index uint16, max uint16) uint16 {
	if index == AutoIndex {
		return index
	}
	return units.Clamp(index, 0, max)
}

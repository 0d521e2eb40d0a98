package manifest

const (
	// maxIndex は明示指定できるインデックスの上限です。0xFFFF は自動割り当てを表します。
	maxIndex = 0xFFFE

	maxResonance = 100
)

package audio

// ----------------------------------------------------------------------
// WAV ファイル定数
// ----------------------------------------------------------------------

const (
	// FileExtension は書き出す WAV ファイルの拡張子です。
	FileExtension = ".wav"

	// BitDepth は実機のサンプル形式 (16ビット符号付き PCM) です。
	BitDepth = 16

	// wavFormatPCM は fmt チャンクの audioFormat (リニア PCM) です。
	wavFormatPCM = 1

	// 8ビット WAV は符号なしで格納されるため中心値を引いて符号付きにする
	unsigned8Center = 128

	maxChannels = 2

	// exportSoftware は書き出した WAV の INFO チャンクに記録するソフトウェア名です。
	exportSoftware = "go-e4b"
)

package e4b

import "time"

// ----------------------------------------------------------------------
// コンテナ定数
// ----------------------------------------------------------------------

const (
	TagForm     = "FORM"
	FormType    = "E4B0"
	TagTOC      = "TOC1"
	TagPreset   = "E4P1"
	TagSample   = "E3S1"
	TagSequence = "E4s1"
	TagStartup  = "EMSt"

	// 読み込み時に中身を解釈せず読み飛ばすチャンク
	TagMultiSetup = "EMS0"
	TagMap        = "E4Ma"

	// TOCEntrySize は TOC1 内の1エントリのサイズです (ヘッダー8 + オフセット4 + index2 + 名前16 + パディング2)。
	TOCEntrySize = 32

	tocOffsetSize  = 4
	tocPaddingSize = 2

	// TOC エントリの長さフィールドはペイロード長からこの値を引いたものです。
	tocSizeAdjust = 2

	formTypeSize = 4
)

// ----------------------------------------------------------------------
// ファイル拡張子
// ----------------------------------------------------------------------

var supportedExtensions = []string{".e4b", ".E4B"}

// ----------------------------------------------------------------------
// ローダー定数
// ----------------------------------------------------------------------

const (
	DefaultMaxParallel   = 4
	DefaultSourceTimeout = 60 * time.Second
	DefaultFetchTimeout  = 30 * time.Second

	// DefaultFetchRateLimit はリモート取得の最小間隔です。
	DefaultFetchRateLimit = 250 * time.Millisecond
)

// 環境変数名
const (
	EnvHTTPTimeout = "E4B_HTTP_TIMEOUT"
	EnvMaxParallel = "E4B_MAX_PARALLEL"
	EnvBaseURL     = "E4B_BASE_URL"
	EnvLogLevel    = "E4B_LOG_LEVEL"
)

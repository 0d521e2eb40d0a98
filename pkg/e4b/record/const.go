package record

// ----------------------------------------------------------------------
// バンク全体の上限値
// ----------------------------------------------------------------------

const (
	// AutoIndex はバンクへの追加時に次の空きスロットを割り当てることを示します。
	AutoIndex = 0xFFFF

	MaxPresets   = 1000
	MaxSamples   = 1000
	MaxSequences = 1000
	MaxVoices    = 0xFFFF
	MaxZones     = 256

	NameSize             = 16
	NumCords             = 24
	NumExtraSampleParams = 8
	NumMIDIChannels      = 32
	NumControllers       = 16

	// ControllerOff はプリセットの初期MIDIコントローラーが未設定であることを示します。
	ControllerOff = 0xFF
)

// ----------------------------------------------------------------------
// レコードレイアウト
// ----------------------------------------------------------------------

const (
	// presetDataSize はインデックスを除くプリセットヘッダーの長さで、常に 82 です。
	presetDataSize   = 82
	presetHeaderSize = 2 + presetDataSize

	// voiceFixedSize は長さフィールドを含むボイス固定部の長さです。
	// voiceDataSize = voiceFixedSize + zoneSize * ゾーン数 となるため、
	// voiceDataSize % zoneSize は常に 20 になります。
	voiceFixedSize        = 284
	zoneSize              = 22
	voiceSizeModRemainder = voiceFixedSize % zoneSize

	// ゾーン数フィールドは1バイトのため、256 個目のゾーンは書き込めません。
	maxEncodedZones = 255

	envelopeSize = 12
	lfoSize      = 7
	cordSize     = 4

	// sampleHeaderSize は index(2) + name(16) + params(36) + rate(4) + format(4) + extra(32)。
	sampleParamsSize = 9 * 4
	sampleHeaderSize = 2 + NameSize + sampleParamsSize + 4 + 4 + NumExtraSampleParams*4

	// sampleEnvelopeHeader は実機のサンプルデータ先頭に置かれるヘッダーの長さです。
	// SampleParams のバイトオフセットはこの分だけずれています。
	sampleEnvelopeHeader = 92

	sequenceHeaderSize = 2 + NameSize

	midiChannelSize = 32
	startupSize     = 2 + NameSize + 4 + 2 + NumMIDIChannels*midiChannelSize + 5 + 1 + 312
)

// ----------------------------------------------------------------------
// サンプルフォーマットのビットフラグ
// ----------------------------------------------------------------------

const (
	formatMonoLeft    = 0x00200000
	formatMonoRight   = 0x00400000
	formatStereo      = 0x00600000
	formatLoop        = 0x00010000
	formatLoopRelease = 0x00080000
)

// ----------------------------------------------------------------------
// 値域
// ----------------------------------------------------------------------

const (
	MinPresetTranspose = -12
	MaxPresetTranspose = 12
	MinVoiceTranspose  = -36
	MaxVoiceTranspose  = 36
	MinCoarseTune      = -72
	MaxCoarseTune      = 24
	MinFineTune        = -100.0
	MaxFineTune        = 100.0
	MinVolume          = -96
	MaxVolume          = 10
	MinPan             = -64
	MaxPan             = 63
	MaxGroup           = 31
	MaxKeyDelay        = 10000
	MaxLFOLag          = 10
	MaxNoteData        = 127

	MinFilterFrequency = 57
	MaxFilterFrequency = 20000

	MinLFORate  = 0.08
	MaxLFORate  = 18.01
	MaxLFODelay = 21.694

	MinSampleRate = 7000
	MaxSampleRate = 192000

	MinTempo = 20
	MaxTempo = 240
)

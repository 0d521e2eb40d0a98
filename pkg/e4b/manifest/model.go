package manifest

import "github.com/shouni/go-e4b/pkg/e4b/midi"

// ----------------------------------------------------------------------
// 構造体定義
// ----------------------------------------------------------------------

// Manifest はバンクを組み立てるための JSON 定義です。
// ファイルパスはマニフェストのあるディレクトリからの相対パスとして解決されます。
type Manifest struct {
	Startup   *StartupSpec   `json:"startup,omitempty"`
	Samples   []SampleSpec   `json:"samples"`
	Presets   []PresetSpec   `json:"presets"`
	Sequences []SequenceSpec `json:"sequences,omitempty"`
}

type StartupSpec struct {
	Name   string `json:"name"`
	Preset *int   `json:"preset,omitempty"`
	Tempo  uint8  `json:"tempo,omitempty"`
}

// SampleSpec は WAV ファイル1つ分のサンプルです。Name はゾーンからの参照キーを兼ねます。
type SampleSpec struct {
	Name  string    `json:"name"`
	Index *int      `json:"index,omitempty"`
	File  string    `json:"file"`
	Loop  *LoopSpec `json:"loop,omitempty"`
}

type LoopSpec struct {
	Start     uint32 `json:"start"`
	End       uint32 `json:"end"`
	InRelease bool   `json:"in_release,omitempty"`
}

type PresetSpec struct {
	Name      string      `json:"name"`
	Index     *int        `json:"index,omitempty"`
	Transpose int8        `json:"transpose,omitempty"`
	Volume    int8        `json:"volume,omitempty"`
	Voices    []VoiceSpec `json:"voices"`
}

// VoiceSpec は列挙値を表示名 ("TWO_POLE_LOWPASS" など) で指定します。
type VoiceSpec struct {
	KeyRange        *RangeSpec `json:"key_range,omitempty"`
	VelocityRange   *RangeSpec `json:"velocity_range,omitempty"`
	Transpose       int8       `json:"transpose,omitempty"`
	CoarseTune      int8       `json:"coarse_tune,omitempty"`
	FineTune        float64    `json:"fine_tune,omitempty"`
	Volume          int8       `json:"volume,omitempty"`
	Pan             int8       `json:"pan,omitempty"`
	KeyMode         string     `json:"key_mode,omitempty"`
	Filter          string     `json:"filter,omitempty"`
	FilterFrequency uint16     `json:"filter_frequency,omitempty"`
	FilterResonance float64    `json:"filter_resonance,omitempty"`
	Cords           []CordSpec `json:"cords,omitempty"`
	Zones           []ZoneSpec `json:"zones"`
}

// RangeSpec の Low/High は "C3" 形式の音名または "60" のような番号です。
type RangeSpec struct {
	Low      string `json:"low"`
	High     string `json:"high"`
	LowFade  uint8  `json:"low_fade,omitempty"`
	HighFade uint8  `json:"high_fade,omitempty"`
}

type CordSpec struct {
	Source string  `json:"source"`
	Dest   string  `json:"dest"`
	Amount float64 `json:"amount"`
}

type ZoneSpec struct {
	Sample        string     `json:"sample"`
	KeyRange      *RangeSpec `json:"key_range,omitempty"`
	VelocityRange *RangeSpec `json:"velocity_range,omitempty"`
	OriginalKey   string     `json:"original_key,omitempty"`
	FineTune      float64    `json:"fine_tune,omitempty"`
	Volume        int8       `json:"volume,omitempty"`
	Pan           int8       `json:"pan,omitempty"`
}

// SequenceSpec は SMF ファイル、またはノート列から生成するシーケンスです。
type SequenceSpec struct {
	Name  string      `json:"name"`
	Index *int        `json:"index,omitempty"`
	File  string      `json:"file,omitempty"`
	Tempo float64     `json:"tempo,omitempty"`
	Notes []midi.Note `json:"notes,omitempty"`
}

package units

import (
	"math"
)

// ----------------------------------------------------------------------
// フィッティング定数
// ----------------------------------------------------------------------

const (
	// フィルター周波数 (対数スケール) の両端。ln(57) と ln(20000)。
	lnFilterFreqMin = 4.04305126783455015
	lnFilterFreqMax = 9.90348755253612804
	filterByteMax   = 255.0

	// ファインチューンの中心バイトと1ステップあたりのセント
	fineTuneCenterByte = 64.0
	fineTuneStep       = 1.5625

	// コーラス幅の1ステップあたりのパーセント
	chorusWidthStep = 0.78125

	// LFOレート: rate = a * b^x + c
	lfoRateA = 1.64054
	lfoRateB = 1.01973
	lfoRateC = -1.57702

	// LFOディレイ: delay = a * b^x + c
	lfoDelayA = 0.149998
	lfoDelayB = 1.04
	lfoDelayC = -0.150012
)

// ----------------------------------------------------------------------
// 汎用ヘルパー
// ----------------------------------------------------------------------

// Number はクランプ対象となる数値型の制約です。
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp は v を [lo, hi] に収めます。
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CeilPlaces は value を小数点以下 places 桁で切り上げます。
// 四捨五入ではなく切り上げである点に注意 (実機ファイルとのバイト一致に必要)。
func CeilPlaces(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Ceil(value*scale) / scale
}

// ----------------------------------------------------------------------
// パーセント
// ----------------------------------------------------------------------

// PercentToByte は [-100, 100] のパーセントを [-127, 127] のバイトへ変換します。
func PercentToByte(p float64) int8 {
	return int8(math.Round(p * 127 / 100))
}

// ByteToPercent は PercentToByte の逆変換です。
func ByteToPercent(b int8) float64 {
	return float64(b) / 127 * 100
}

// UnsignedByteToPercent は符号なしで格納されるパーセント値 (LFOバリエーション等) を変換します。
func UnsignedByteToPercent(b uint8) float64 {
	return float64(b) / 127 * 100
}

// ----------------------------------------------------------------------
// ファインチューン
// ----------------------------------------------------------------------

// FineTuneToByte はセント値をバイトへ変換します。
func FineTuneToByte(cents float64) int8 {
	return int8(math.Round((cents-100)/fineTuneStep + fineTuneCenterByte))
}

// ByteToFineTune はバイトをセント値へ変換し、小数点以下2桁で切り上げます。
func ByteToFineTune(b int8) float64 {
	return CeilPlaces((float64(b)-fineTuneCenterByte)*fineTuneStep+100, 2)
}

// ----------------------------------------------------------------------
// フィルター周波数
// ----------------------------------------------------------------------

// FilterFreqToByte はヘルツ [57, 20000] を対数スケールで [0, 255] に写像します。
func FilterFreqToByte(hz uint16) uint8 {
	t := (math.Log(float64(hz)) - lnFilterFreqMin) / (lnFilterFreqMax - lnFilterFreqMin)
	return uint8(math.Round(t * filterByteMax))
}

// ByteToFilterFreq は FilterFreqToByte の逆変換です。
func ByteToFilterFreq(b uint8) uint16 {
	t := float64(b) / filterByteMax
	return uint16(math.Round(math.Exp(t*(lnFilterFreqMax-lnFilterFreqMin) + lnFilterFreqMin)))
}

// ----------------------------------------------------------------------
// LFO
// ----------------------------------------------------------------------

// LFORateFromByte は [0, 127] をヘルツ [0.08, 18.01] へ変換します。
func LFORateFromByte(b uint8) float64 {
	return lfoRateA*math.Pow(lfoRateB, float64(b)) + lfoRateC
}

// ByteFromLFORate は LFORateFromByte の逆変換です。
func ByteFromLFORate(hz float64) uint8 {
	return uint8(math.Round(math.Log((hz-lfoRateC)/lfoRateA) / math.Log(lfoRateB)))
}

// LFODelayFromByte は [0, 127] を秒 [0, 21.694] へ変換します。
func LFODelayFromByte(b uint8) float64 {
	return lfoDelayA*math.Pow(lfoDelayB, float64(b)) + lfoDelayC
}

// ByteFromLFODelay は LFODelayFromByte の逆変換です。
func ByteFromLFODelay(sec float64) uint8 {
	return uint8(math.Round(math.Log((sec-lfoDelayC)/lfoDelayA) / math.Log(lfoDelayB)))
}

// ----------------------------------------------------------------------
// コーラス幅
// ----------------------------------------------------------------------

// ChorusWidthFromByte はバイトをパーセント [0, 100] へ変換します。
// 0 が 100%、128 が 0% に対応します。
func ChorusWidthFromByte(b uint8) float64 {
	return Clamp(CeilPlaces(math.Abs((float64(b)-128)*chorusWidthStep), 2), 0, 100)
}

// ChorusWidthToByte はパーセントをバイトへ変換します。
// 100% は 256 となり 0 に折り返されます。
func ChorusWidthToByte(width float64) uint8 {
	return uint8(int(math.Round(width/chorusWidthStep + 128)))
}

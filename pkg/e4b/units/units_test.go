package units

import (
	"math"
	"testing"
)

func TestFilterFreqRoundTrip(t *testing.T) {
	for b := 0; b <= 255; b++ {
		hz := ByteToFilterFreq(uint8(b))
		if got := FilterFreqToByte(hz); got != uint8(b) {
			t.Errorf("FilterFreqToByte(%d Hz) = %d, want %d", hz, got, b)
		}

		again := ByteToFilterFreq(FilterFreqToByte(hz))
		if diff := math.Abs(float64(again) - float64(hz)); diff > 1 {
			t.Errorf("byte %d: %d Hz drifted to %d Hz", b, hz, again)
		}
	}
}

func TestFilterFreqBounds(t *testing.T) {
	if got := ByteToFilterFreq(0); got != 57 {
		t.Errorf("ByteToFilterFreq(0) = %d, want 57", got)
	}
	if got := ByteToFilterFreq(255); got != 20000 {
		t.Errorf("ByteToFilterFreq(255) = %d, want 20000", got)
	}
	if got := FilterFreqToByte(20000); got != 255 {
		t.Errorf("FilterFreqToByte(20000) = %d, want 255", got)
	}
}

func TestPercentQuantisation(t *testing.T) {
	for p := -100.0; p <= 100.0; p += 0.25 {
		got := ByteToPercent(PercentToByte(p))
		if math.Abs(got-p) > 1 {
			t.Errorf("percent %.2f round-tripped to %.4f", p, got)
		}
	}

	if got := PercentToByte(100); got != 127 {
		t.Errorf("PercentToByte(100) = %d, want 127", got)
	}
	if got := PercentToByte(-100); got != -127 {
		t.Errorf("PercentToByte(-100) = %d, want -127", got)
	}
}

func TestFineTune(t *testing.T) {
	tests := []struct {
		name  string
		cents float64
		want  int8
	}{
		{"lower bound", -100, -64},
		{"centre", 0, 0},
		{"upper bound", 100, 64},
		{"one step", 1.5625, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FineTuneToByte(tt.cents); got != tt.want {
				t.Errorf("FineTuneToByte(%v) = %d, want %d", tt.cents, got, tt.want)
			}
		})
	}

	if got := ByteToFineTune(-64); got < -100 || got > -99.9 {
		t.Errorf("ByteToFineTune(-64) = %v, want within [-100, -99.9]", got)
	}

	// 1.5625 は 1.57 に切り上がる (四捨五入なら 1.56)
	if got := ByteToFineTune(1); got != 1.57 {
		t.Errorf("ByteToFineTune(1) = %v, want 1.57", got)
	}
}

func TestChorusWidth(t *testing.T) {
	tests := []struct {
		width float64
		b     uint8
	}{
		{0, 128},
		{50, 192},
		{100, 0},
	}
	for _, tt := range tests {
		if got := ChorusWidthToByte(tt.width); got != tt.b {
			t.Errorf("ChorusWidthToByte(%v) = %d, want %d", tt.width, got, tt.b)
		}
		if got := ChorusWidthFromByte(tt.b); got != tt.width {
			t.Errorf("ChorusWidthFromByte(%d) = %v, want %v", tt.b, got, tt.width)
		}
	}
}

func TestLFOCurvesInvert(t *testing.T) {
	for b := 0; b <= 127; b++ {
		if got := ByteFromLFORate(LFORateFromByte(uint8(b))); got != uint8(b) {
			t.Errorf("rate byte %d round-tripped to %d", b, got)
		}
		if got := ByteFromLFODelay(LFODelayFromByte(uint8(b))); got != uint8(b) {
			t.Errorf("delay byte %d round-tripped to %d", b, got)
		}
	}

	if got := ByteFromLFODelay(21.694); got != 127 {
		t.Errorf("ByteFromLFODelay(21.694) = %d, want 127", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Clamp(150) = %d", got)
	}
	if got := Clamp(int8(-100), -96, 10); got != -96 {
		t.Errorf("Clamp(-100) = %d", got)
	}
	if got := Clamp(3.5, 0.0, 10.0); got != 3.5 {
		t.Errorf("Clamp(3.5) = %v", got)
	}
}

package midi

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shouni/go-e4b/pkg/e4b/record"
)

func TestBuildAndSummarize(t *testing.T) {
	notes := []Note{
		{Channel: 0, Key: 60, Velocity: 100, Start: 0, Length: 480},
		{Channel: 9, Key: 36, Velocity: 127, Start: 480, Length: 240},
		{Channel: 0, Key: 64, Velocity: 0, Start: 960, Length: 960},
		{Channel: 16, Key: 60, Velocity: 100, Start: 0, Length: 10}, // 値域外
	}
	data, err := BuildSMF("Groove", 90, notes)
	if err != nil {
		t.Fatalf("BuildSMF: %v", err)
	}

	sum, err := Summarize(data)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Tracks != 1 || sum.Resolution != DefaultResolution {
		t.Errorf("tracks/resolution = %d/%d", sum.Tracks, sum.Resolution)
	}
	if sum.Tempo < 89.9 || sum.Tempo > 90.1 {
		t.Errorf("tempo = %v, want 90", sum.Tempo)
	}
	if sum.NoteCount != 3 || !slices.Equal(sum.Channels, []uint8{0, 9}) {
		t.Errorf("notes = %d on %v", sum.NoteCount, sum.Channels)
	}
	if sum.TotalTicks != 1920 {
		t.Errorf("total ticks = %d, want 1920", sum.TotalTicks)
	}
	if !slices.Contains(sum.TrackNames, "Groove") {
		t.Errorf("track names = %v", sum.TrackNames)
	}
	// 1920 ティック = 4拍、90 BPM で 2.666... 秒
	if d := sum.Duration(); d < 2600*time.Millisecond || d > 2700*time.Millisecond {
		t.Errorf("duration = %v", d)
	}
}

func TestSummarizeSequenceInvalid(t *testing.T) {
	seq := record.NewSequence("Broken", []byte("MThd"), 2)
	_, err := SummarizeSequence(seq)
	var smfErr *ErrInvalidSMF
	if !errors.As(err, &smfErr) {
		t.Fatalf("err = %v, want *ErrInvalidSMF", err)
	}
}

func TestSummaryDurationWithoutResolution(t *testing.T) {
	s := &Summary{Tempo: 120, TotalTicks: 100}
	if s.Duration() != 0 {
		t.Errorf("duration = %v, want 0", s.Duration())
	}
}

package midi

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/shouni/go-e4b/pkg/e4b/record"
)

const (
	// DefaultTempo は テンポイベントがない SMF のテンポ (BPM) です。
	DefaultTempo = 120.0

	// DefaultResolution は BuildSMF が使う4分音符あたりのティック数です。
	DefaultResolution = 480

	maxChannel = 15
	maxData    = 127
)

// ErrInvalidSMF はシーケンスのデータが Standard MIDI File として読めないことを示します。
type ErrInvalidSMF struct {
	Details    string
	WrappedErr error
}

func (e *ErrInvalidSMF) Error() string {
	return fmt.Sprintf("不正な SMF データ: %s (詳細: %v)", e.Details, e.WrappedErr)
}

func (e *ErrInvalidSMF) Unwrap() error { return e.WrappedErr }

// ----------------------------------------------------------------------
// 要約
// ----------------------------------------------------------------------

// Summary はシーケンスの内容を一覧表示するための要約です。
type Summary struct {
	Format     uint16
	Tracks     int
	Resolution uint16 // 4分音符あたりのティック数。SMPTE 形式の場合は 0
	Tempo      float64
	TrackNames []string
	Channels   []uint8 // ノートが使われているチャンネル (昇順)
	NoteCount  int
	TotalTicks uint32
}

// Duration は最初のテンポで最後のイベントまでの長さを概算します。
func (s *Summary) Duration() time.Duration {
	if s.Resolution == 0 || s.Tempo <= 0 {
		return 0
	}
	beats := float64(s.TotalTicks) / float64(s.Resolution)
	return time.Duration(beats * 60 / s.Tempo * float64(time.Second))
}

// Summarize は SMF のバイト列を解析して要約を返します。
func Summarize(data []byte) (*Summary, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrInvalidSMF{Details: fmt.Sprintf("%d バイトの解析", len(data)), WrappedErr: err}
	}

	sum := &Summary{
		Format: s.Format(),
		Tracks: len(s.Tracks),
	}
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		sum.Resolution = uint16(mt)
	}

	for _, tr := range s.Tracks {
		var ticks uint32
		for _, ev := range tr {
			ticks += ev.Delta

			var (
				bpm               float64
				name              string
				ch, key, velocity uint8
			)
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				if sum.Tempo == 0 {
					sum.Tempo = bpm
				}
			case ev.Message.GetMetaTrackName(&name):
				sum.TrackNames = append(sum.TrackNames, name)
			case gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &velocity):
				sum.NoteCount++
				if !slices.Contains(sum.Channels, ch) {
					sum.Channels = append(sum.Channels, ch)
				}
			}
		}
		sum.TotalTicks = max(sum.TotalTicks, ticks)
	}

	if sum.Tempo == 0 {
		sum.Tempo = DefaultTempo
	}
	slices.Sort(sum.Channels)
	return sum, nil
}

// SummarizeSequence はバンク内のシーケンスを要約します。
func SummarizeSequence(seq *record.Sequence) (*Summary, error) {
	sum, err := Summarize(seq.Data)
	if err != nil {
		return nil, fmt.Errorf("シーケンス %d (%s): %w", seq.Index, record.DisplayName(seq.Name), err)
	}
	return sum, nil
}

// ----------------------------------------------------------------------
// 生成
// ----------------------------------------------------------------------

// Note は BuildSMF に渡す1音です。Start と Length はティック単位です。
type Note struct {
	Channel  uint8  `json:"channel"`
	Key      uint8  `json:"key"`
	Velocity uint8  `json:"velocity"`
	Start    uint32 `json:"start"`
	Length   uint32 `json:"length"`
}

type timedMessage struct {
	tick uint32
	off  bool
	msg  gomidi.Message
}

// BuildSMF はノート列からフォーマット0の SMF を生成します。
// 同じティックではノートオフをノートオンより先に置きます。
func BuildSMF(name string, bpm float64, notes []Note) ([]byte, error) {
	if bpm <= 0 {
		bpm = DefaultTempo
	}

	events := make([]timedMessage, 0, len(notes)*2)
	for _, n := range notes {
		if n.Channel > maxChannel || n.Key > maxData || n.Velocity > maxData {
			slog.Debug("値域外のノートを除外しました", "channel", n.Channel, "key", n.Key, "velocity", n.Velocity)
			continue
		}
		velocity := max(n.Velocity, 1)
		events = append(events,
			timedMessage{tick: n.Start, msg: gomidi.NoteOn(n.Channel, n.Key, velocity)},
			timedMessage{tick: n.Start + max(n.Length, 1), off: true, msg: gomidi.NoteOff(n.Channel, n.Key)},
		)
	}
	slices.SortStableFunc(events, func(a, b timedMessage) int {
		switch {
		case a.tick != b.tick:
			return cmp.Compare(a.tick, b.tick)
		case a.off == b.off:
			return 0
		case a.off:
			return -1
		default:
			return 1
		}
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(bpm))
	var last uint32
	for _, e := range events {
		tr.Add(e.tick-last, e.msg)
		last = e.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(DefaultResolution)
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("トラックの追加に失敗しました: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("SMF の書き出しに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-e4b/pkg/e4b"
	"github.com/shouni/go-e4b/pkg/e4b/bank"
	"github.com/shouni/go-e4b/pkg/e4b/midi"
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// printBank はバンクの内容を人が読める形で出力します。
func printBank(w io.Writer, source string, b *bank.Bank) {
	fmt.Fprintf(w, "== %s\n", source)

	fmt.Fprintf(w, "プリセット (%d)\n", len(b.Presets()))
	for _, p := range b.Presets() {
		fmt.Fprintf(w, "  %03d %-16s transpose=%d volume=%ddB voices=%d\n",
			p.Index, record.DisplayName(p.Name), p.Transpose, p.Volume, len(p.Voices))
		for vi, v := range p.Voices {
			fmt.Fprintf(w, "      voice %d key=%s vel=%s filter=%s mode=%s zones=%d\n",
				vi, v.KeyRange, v.VelocityRange, v.FilterType, v.KeyMode, len(v.Zones))
			for _, z := range v.Zones {
				name := "(なし)"
				if s, ok := b.ZoneSample(z); ok {
					name = record.DisplayName(s.Name)
				}
				fmt.Fprintf(w, "        zone sample=%03d %s key=%s root=%s\n",
					z.SampleIndex, name, z.KeyRange, z.OriginalKey)
			}
		}
	}

	fmt.Fprintf(w, "サンプル (%d)\n", len(b.Samples()))
	for _, s := range b.Samples() {
		loop := "-"
		if s.Loop.Enabled {
			loop = fmt.Sprintf("%d-%d", s.Loop.Start, s.Loop.End)
		}
		fmt.Fprintf(w, "  %03d %-16s %dHz ch=%d frames=%d loop=%s\n",
			s.Index, record.DisplayName(s.Name), s.SampleRate, s.Channels, s.Frames(), loop)
	}

	fmt.Fprintf(w, "シーケンス (%d)\n", len(b.Sequences()))
	for _, seq := range b.Sequences() {
		sum, err := midi.SummarizeSequence(seq)
		if err != nil {
			slog.Warn("シーケンスを解析できません", "index", seq.Index, "error", err)
			fmt.Fprintf(w, "  %03d %-16s %d bytes (解析不可)\n", seq.Index, record.DisplayName(seq.Name), len(seq.Data))
			continue
		}
		fmt.Fprintf(w, "  %03d %-16s tracks=%d notes=%d tempo=%.1f length=%s\n",
			seq.Index, record.DisplayName(seq.Name), sum.Tracks, sum.NoteCount, sum.Tempo, sum.Duration())
	}

	st := b.Startup()
	fmt.Fprintf(w, "起動時設定 %q preset=%d tempo=%d\n\n", record.DisplayName(st.Name), st.CurrentPreset, st.Tempo)
}

func printTOC(w io.Writer, entries []e4b.TOCEntry) {
	fmt.Fprintf(w, "%-4s  %5s  %-16s  %10s  %10s\n", "tag", "index", "name", "offset", "size")
	for _, e := range entries {
		fmt.Fprintf(w, "%-4s  %5d  %-16s  %10d  %10d\n",
			e.Tag, e.Index, record.DisplayName(e.Name), e.Offset, e.PayloadSize())
	}
}

package record

import (
	"strconv"
	"strings"
)

// parseName は列挙型の表示名 (大文字・小文字は区別しない) から値を引きます。
func parseName[T comparable](names map[T]string, s string) (T, bool) {
	for v, name := range names {
		if strings.EqualFold(name, s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func ParseLFOShape(s string) (LFOShape, bool)       { return parseName(lfoShapeNames, s) }
func ParseCordSource(s string) (CordSource, bool)   { return parseName(cordSourceNames, s) }
func ParseCordDest(s string) (CordDest, bool)       { return parseName(cordDestNames, s) }
func ParseFilterType(s string) (FilterType, bool)   { return parseName(filterTypeNames, s) }
func ParseGlideCurve(s string) (GlideCurve, bool)   { return parseName(glideCurveNames, s) }
func ParseAssignGroup(s string) (AssignGroup, bool) { return parseName(assignGroupNames, s) }
func ParseKeyMode(s string) (KeyMode, bool)         { return parseName(keyModeNames, s) }

// ParseMidiNote は "C#3" や "A-1" の表記、または "60" のようなノート番号を解釈します。
func ParseMidiNote(s string) (MidiNote, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > MaxNoteData {
			return 0, false
		}
		return MidiNote(n), true
	}

	split := 1
	if len(s) > 1 && s[1] == '#' {
		split = 2
	}
	if len(s) <= split {
		return 0, false
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil || octave < minOctave || octave > maxOctave {
		return 0, false
	}
	return NewMidiNote(strings.ToUpper(s[:1])+s[1:split], octave)
}

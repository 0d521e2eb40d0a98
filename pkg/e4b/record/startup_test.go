package record

import (
	"testing"

	"github.com/shouni/go-e4b/pkg/e4b/chunk"
)

func TestStartupLayout(t *testing.T) {
	s := NewStartup(DefaultStartupName, 0x0102)
	n := chunk.New("EMSt")
	s.Encode(n)
	b := n.Payload()

	if len(b) != startupSize {
		t.Fatalf("payload length = %d, want %d", len(b), startupSize)
	}
	if string(b[2:18]) != DefaultStartupName {
		t.Errorf("name = %q", b[2:18])
	}
	if b[22] != 0x01 || b[23] != 0x02 {
		t.Errorf("current preset = % x, want 01 02", b[22:24])
	}

	ch := b[24 : 24+midiChannelSize]
	if ch[0] != 127 || ch[5] != 0xFF || ch[26] != 127 || ch[30] != 0xFF || ch[31] != 0xFF {
		t.Errorf("channel defaults = % x", ch)
	}
	if tempo := b[24+NumMIDIChannels*midiChannelSize+5]; tempo != MinTempo {
		t.Errorf("tempo = %d, want %d", tempo, MinTempo)
	}
}

func TestStartupRoundTrip(t *testing.T) {
	s := NewStartup("Live Set", 12)
	s.SetTempo(250)
	s.Channels[3].Preset = 12
	s.Channels[3].Pan = -30
	s.Channels[3].AuxSend = false
	s.Channels[3].Controllers[0] = 64

	n := chunk.New("EMSt")
	s.Encode(n)

	var got Startup
	if err := got.Decode(n.Payload()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Tempo != MaxTempo || got.CurrentPreset != 12 || DisplayName(got.Name) != "Live Set" {
		t.Errorf("startup = %+v", got)
	}
	if got.Channels != s.Channels {
		t.Errorf("channel 3 = %+v, want %+v", got.Channels[3], s.Channels[3])
	}
}

func TestStartupTruncated(t *testing.T) {
	var got Startup
	if err := got.Decode(make([]byte, 100)); err == nil {
		t.Fatal("expected an error for a short startup record")
	}
}

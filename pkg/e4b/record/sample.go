package record

import (
	"github.com/pkg/errors"
	"github.com/shouni/go-e4b/pkg/e4b/chunk"
	"github.com/shouni/go-e4b/pkg/e4b/units"
)

// Channel はサンプルデータから取り出すチャンネルです。
type Channel int

const (
	ChannelLeft Channel = iota
	ChannelRight

	// ChannelMono はモノラルサンプルの唯一のチャンネルで、左と同じ扱いです。
	ChannelMono = ChannelLeft
)

// LoopInfo はサンプルのループ設定です。Start/End はサンプル数単位です。
type LoopInfo struct {
	Enabled   bool
	InRelease bool
	Start     uint32
	End       uint32
}

// ----------------------------------------------------------------------
// SampleParams
// ----------------------------------------------------------------------

// SampleParams は実機が参照するチャンネル別の開始・終了・ループ位置です。
// 値はサンプルデータ先頭のヘッダー (92バイト) を含めたバイトオフセットで表現されます。
type SampleParams struct {
	Unknown    uint32
	StartL     uint32
	StartR     uint32
	EndL       uint32
	EndR       uint32
	LoopStartL uint32
	LoopStartR uint32
	LoopEndL   uint32
	LoopEndR   uint32
}

// NewSampleParams は総サンプル数 (全チャンネル分の int16 数) とループ位置から各オフセットを計算します。
// ステレオデータは左チャンネルの後に右チャンネルが続く配置を前提とします。
func NewSampleParams(numSamples, channels, loopStart, loopEnd uint32) SampleParams {
	mono := channels != 2
	p := SampleParams{StartL: sampleEnvelopeHeader}

	if mono {
		p.StartR = p.StartL
		p.EndL = numSamples*2 + sampleEnvelopeHeader - 2
		p.EndR = p.EndL
	} else {
		p.StartR = numSamples + sampleEnvelopeHeader
		p.EndL = numSamples + sampleEnvelopeHeader - 2
		p.EndR = numSamples*2 + sampleEnvelopeHeader - 2
	}

	if numSamples > 0 {
		loopStart = units.Clamp(loopStart, 0, numSamples-1)
	} else {
		loopStart = 0
	}
	loopEnd = units.Clamp(loopEnd, 0, numSamples)

	p.LoopStartL = loopStart*2 + p.StartL
	p.LoopEndL = loopEnd*2 + p.StartL - 2
	if mono {
		p.LoopStartR = p.LoopStartL
		p.LoopEndR = p.LoopEndL
	} else {
		p.LoopStartR = loopStart*2 + p.StartR
		p.LoopEndR = loopEnd*2 + p.StartR - 2
	}
	return p
}

// SampleStartR は右チャンネルの開始位置 (int16 単位) です。
func (p SampleParams) SampleStartR() uint32 { return (p.StartR - sampleEnvelopeHeader) / 2 }

// SampleEndL は左チャンネルの終了位置 (int16 単位, 排他的) です。
func (p SampleParams) SampleEndL() uint32 { return (p.EndL - (sampleEnvelopeHeader - 2)) / 2 }

// SampleEndR は右チャンネルの終了位置 (int16 単位, 排他的) です。
func (p SampleParams) SampleEndR() uint32 { return (p.EndR - (sampleEnvelopeHeader - 2)) / 2 }

// LoopStart は左チャンネル基準のループ開始位置です。
func (p SampleParams) LoopStart() uint32 { return (p.LoopStartL - sampleEnvelopeHeader) / 2 }

// LoopEnd は左チャンネル基準のループ終了位置です。
func (p SampleParams) LoopEnd() uint32 { return (p.LoopEndL - (sampleEnvelopeHeader - 2)) / 2 }

func (p SampleParams) encode(n *chunk.Node) {
	for _, v := range []uint32{p.Unknown, p.StartL, p.StartR, p.EndL, p.EndR, p.LoopStartL, p.LoopStartR, p.LoopEndL, p.LoopEndR} {
		n.Uint32LE(v)
	}
}

func decodeSampleParams(d *decoder) SampleParams {
	return SampleParams{
		Unknown:    d.u32le(),
		StartL:     d.u32le(),
		StartR:     d.u32le(),
		EndL:       d.u32le(),
		EndR:       d.u32le(),
		LoopStartL: d.u32le(),
		LoopStartR: d.u32le(),
		LoopEndL:   d.u32le(),
		LoopEndR:   d.u32le(),
	}
}

// ----------------------------------------------------------------------
// Sample
// ----------------------------------------------------------------------

// Sample は16ビットPCMの波形データです。
// ステレオの場合 Data は左チャンネル全体の後に右チャンネル全体が続きます。
type Sample struct {
	Index      uint16
	Name       string
	SampleRate uint32 // [7000, 192000]
	Channels   uint32 // 1 または 2
	Loop       LoopInfo
	Data       []int16

	// Params はデコード時に読み取った値です。エンコード時は Data と Loop から再計算した値を書き、このフィールドは変更しません。
	Params SampleParams
	Extra  [NumExtraSampleParams]uint32
}

// NewSample はサンプルを作成します。サンプルレートとチャンネル数は値域内に丸められます。
func NewSample(name string, data []int16, sampleRate, channels uint32, loop LoopInfo, index uint16) *Sample {
	s := &Sample{
		Index:      clampIndex(index, MaxSamples),
		Name:       NormalizeName(name),
		SampleRate: units.Clamp(sampleRate, MinSampleRate, MaxSampleRate),
		Channels:   units.Clamp(channels, 1, 2),
		Loop:       loop,
		Data:       data,
	}
	s.Params = NewSampleParams(uint32(len(data)), s.Channels, loop.Start, loop.End)
	return s
}

func (s *Sample) SetName(name string) { s.Name = NormalizeName(name) }
func (s *Sample) SetIndex(index uint16) { s.Index = clampIndex(index, MaxSamples) }

func (s *Sample) SetSampleRate(rate uint32) {
	s.SampleRate = units.Clamp(rate, MinSampleRate, MaxSampleRate)
}

func (s *Sample) SetChannels(channels uint32) {
	s.Channels = units.Clamp(channels, 1, 2)
}

// ChannelData は指定チャンネルの PCM を返します。
// モノラルサンプルに ChannelRight を指定した場合は左 (唯一の) チャンネルを返します。
func (s *Sample) ChannelData(ch Channel) []int16 {
	total := uint32(len(s.Data))
	if ch == ChannelRight && s.Channels == 2 {
		start := min(s.Params.SampleStartR(), total)
		end := min(s.Params.SampleEndR(), total)
		if start > end {
			return nil
		}
		return s.Data[start:end]
	}
	return s.Data[:min(s.Params.SampleEndL(), total)]
}

// Frames はチャンネルあたりのサンプル数です。
func (s *Sample) Frames() int {
	if s.Channels == 2 {
		return len(s.Data) / 2
	}
	return len(s.Data)
}

func (s *Sample) format() uint32 {
	format := uint32(formatMonoLeft)
	if s.Channels == 2 {
		format = formatStereo
	}
	if s.Loop.Enabled {
		format |= formatLoop
	}
	if s.Loop.InRelease {
		format |= formatLoopRelease
	}
	return format
}

func channelsFromFormat(format uint32) uint32 {
	if format&formatStereo == formatStereo {
		return 2
	}
	return 1
}

// Encode はサンプルのペイロードを node に書き込みます。
// index と名前以外のフィールドは実機の仕様に合わせてリトルエンディアンで格納されます。
func (s *Sample) Encode(n *chunk.Node) error {
	if len(s.Data) == 0 {
		return errors.Wrapf(ErrEmptyPayload, "sample %d %q", s.Index, DisplayName(s.Name))
	}

	channels := units.Clamp(s.Channels, 1, 2)
	params := NewSampleParams(uint32(len(s.Data)), channels, s.Loop.Start, s.Loop.End)
	params.Unknown = s.Params.Unknown

	n.Uint16(s.Index)
	n.Bytes(encodeName(s.Name))
	params.encode(n)
	n.Uint32LE(units.Clamp(s.SampleRate, MinSampleRate, MaxSampleRate))
	n.Uint32LE(s.format())
	for _, e := range s.Extra {
		n.Uint32LE(e)
	}
	n.Int16sLE(s.Data)
	return nil
}

// Decode はペイロードからサンプルを復元します。PCM の長さはペイロード長から求めます。
func (s *Sample) Decode(b []byte) error {
	d := newDecoder(b)

	s.Index = d.u16()
	s.Name = d.name()
	s.Params = decodeSampleParams(d)
	s.SampleRate = d.u32le()
	format := d.u32le()
	for i := range s.Extra {
		s.Extra[i] = d.u32le()
	}
	if d.err != nil {
		return d.err
	}

	s.Channels = channelsFromFormat(format)
	s.Loop = LoopInfo{
		Enabled:   format&formatLoop != 0,
		InRelease: format&formatLoopRelease != 0,
		Start:     s.Params.LoopStart(),
		End:       s.Params.LoopEnd(),
	}
	s.Data = d.int16sLE(d.remaining() / 2)
	return d.err
}

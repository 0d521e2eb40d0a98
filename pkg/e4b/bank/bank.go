package bank

import (
	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// Bank はプリセット・サンプル・シーケンスと起動時設定をまとめたメモリ上のバンクです。
// 各コレクションはインデックスで一意になり、上限は 1000 件です。
type Bank struct {
	presets   store[*record.Preset]
	samples   store[*record.Sample]
	sequences store[*record.Sequence]

	startupPreset uint16
	startup       *record.Startup
}

// New は空のバンクを作成します。
func New() *Bank {
	return &Bank{
		presets: store[*record.Preset]{
			kind:     "preset",
			max:      record.MaxPresets,
			index:    func(p *record.Preset) uint16 { return p.Index },
			setIndex: func(p *record.Preset, i uint16) { p.Index = i },
		},
		samples: store[*record.Sample]{
			kind:     "sample",
			max:      record.MaxSamples,
			index:    func(s *record.Sample) uint16 { return s.Index },
			setIndex: func(s *record.Sample, i uint16) { s.Index = i },
		},
		sequences: store[*record.Sequence]{
			kind:     "sequence",
			max:      record.MaxSequences,
			index:    func(s *record.Sequence) uint16 { return s.Index },
			setIndex: func(s *record.Sequence, i uint16) { s.Index = i },
		},
	}
}

// ----------------------------------------------------------------------
// プリセット
// ----------------------------------------------------------------------

// AddPreset はプリセットを追加します。上限到達・インデックス重複時は false を返します。
func (b *Bank) AddPreset(p *record.Preset) bool {
	if p == nil {
		return false
	}
	return b.presets.add(p)
}

// RemovePreset はインデックスが一致するプリセットを取り除きます。
func (b *Bank) RemovePreset(index uint16) bool { return b.presets.remove(index) }

// Preset はインデックスでプリセットを検索します。
func (b *Bank) Preset(index uint16) (*record.Preset, bool) { return b.presets.get(index) }

// Presets は追加順のプリセット一覧です。返されたスライスを変更しないでください。
func (b *Bank) Presets() []*record.Preset { return b.presets.items }

// ----------------------------------------------------------------------
// サンプル
// ----------------------------------------------------------------------

func (b *Bank) AddSample(s *record.Sample) bool {
	if s == nil {
		return false
	}
	return b.samples.add(s)
}

func (b *Bank) RemoveSample(index uint16) bool { return b.samples.remove(index) }

func (b *Bank) Sample(index uint16) (*record.Sample, bool) { return b.samples.get(index) }

func (b *Bank) Samples() []*record.Sample { return b.samples.items }

// ZoneSample はゾーンが参照するサンプルを返します。
func (b *Bank) ZoneSample(z *record.Zone) (*record.Sample, bool) {
	if z == nil {
		return nil, false
	}
	return b.samples.get(z.SampleIndex)
}

// ----------------------------------------------------------------------
// シーケンス
// ----------------------------------------------------------------------

func (b *Bank) AddSequence(s *record.Sequence) bool {
	if s == nil {
		return false
	}
	return b.sequences.add(s)
}

func (b *Bank) RemoveSequence(index uint16) bool { return b.sequences.remove(index) }

func (b *Bank) Sequence(index uint16) (*record.Sequence, bool) { return b.sequences.get(index) }

func (b *Bank) Sequences() []*record.Sequence { return b.sequences.items }

// ----------------------------------------------------------------------
// 起動時設定
// ----------------------------------------------------------------------

// SetStartupPreset は起動時に選択されるプリセットを設定します。
// プリセットが1つもない場合は何もしません。NoPreset は「なし」として受け付け、
// 存在しないインデックスは先頭プリセットのインデックスに置き換えます。
func (b *Bank) SetStartupPreset(index uint16) {
	if len(b.presets.items) == 0 {
		return
	}
	if index == record.NoPreset {
		b.startupPreset = index
		return
	}
	if _, ok := b.presets.get(index); ok {
		b.startupPreset = index
		return
	}
	b.startupPreset = b.presets.items[0].Index
}

// StartupPreset は起動時に選択されるプリセットのインデックスです。
func (b *Bank) StartupPreset() uint16 { return b.startupPreset }

// SetStartup は読み込んだ EMSt レコードを保持し、その現在プリセットを起動プリセットにします。
func (b *Bank) SetStartup(s *record.Startup) {
	if s == nil {
		return
	}
	b.startup = s
	b.SetStartupPreset(s.CurrentPreset)
}

// Startup は書き込み用の EMSt レコードを返します。
// 読み込み済みのレコードがあればチャンネル設定を引き継ぎ、現在プリセットだけを最新にします。
func (b *Bank) Startup() *record.Startup {
	if b.startup == nil {
		return record.NewStartup(record.DefaultStartupName, b.startupPreset)
	}
	s := *b.startup
	s.CurrentPreset = b.startupPreset
	return &s
}

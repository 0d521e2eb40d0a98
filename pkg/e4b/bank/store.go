package bank

import (
	"log/slog"

	"github.com/shouni/go-e4b/pkg/e4b/record"
)

// store はインデックスで一意なレコードの順序付き集合です。
type store[T any] struct {
	kind     string
	max      int
	items    []T
	index    func(T) uint16
	setIndex func(T, uint16)
}

func (s *store[T]) find(index uint16) int {
	for i, item := range s.items {
		if s.index(item) == index {
			return i
		}
	}
	return -1
}

// add は容量超過・インデックス重複の場合は何もせずに false を返します。
// AutoIndex のレコードには現在の件数から数えて最初の空きインデックスを割り当てます。
func (s *store[T]) add(item T) bool {
	if len(s.items) >= s.max {
		slog.Debug("上限に達しているため追加しません", "kind", s.kind, "max", s.max)
		return false
	}

	index := s.index(item)
	if index == record.AutoIndex {
		next := uint16(len(s.items))
		for s.find(next) >= 0 {
			next++
		}
		s.setIndex(item, next)
	} else if s.find(index) >= 0 {
		slog.Debug("インデックスが重複しているため追加しません", "kind", s.kind, "index", index)
		return false
	}

	s.items = append(s.items, item)
	return true
}

func (s *store[T]) remove(index uint16) bool {
	i := s.find(index)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *store[T]) get(index uint16) (T, bool) {
	if i := s.find(index); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

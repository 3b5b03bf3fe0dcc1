package idmap

import (
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Memory 进程内映射，随进程结束丢弃
type Memory struct {
	kinds cmap.ConcurrentMap[string, cmap.ConcurrentMap[string, string]]
}

func NewMemory() *Memory {
	return &Memory{kinds: cmap.New[cmap.ConcurrentMap[string, string]]()}
}

func (m *Memory) table(kind Kind) cmap.ConcurrentMap[string, string] {
	return m.kinds.Upsert(string(kind), cmap.ConcurrentMap[string, string]{},
		func(exist bool, valueInMap, _ cmap.ConcurrentMap[string, string]) cmap.ConcurrentMap[string, string] {
			if exist {
				return valueInMap
			}
			return cmap.New[string]()
		})
}

func (m *Memory) Put(_ context.Context, kind Kind, sourceID, storeID string) error {
	m.table(kind).Set(sourceID, storeID)
	return nil
}

func (m *Memory) Get(_ context.Context, kind Kind, sourceID string) (string, bool, error) {
	v, ok := m.table(kind).Get(sourceID)
	return v, ok, nil
}

func (m *Memory) Len(_ context.Context, kind Kind) (int, error) {
	return m.table(kind).Count(), nil
}

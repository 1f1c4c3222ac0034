package stats

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// MemoryRecorder keeps counters in process memory. Counts are lost on restart
// and not shared between replicas.
type MemoryRecorder struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{counters: make(map[string]int64)}
}

func (m *MemoryRecorder) Record(_ context.Context, ua useragent.UserAgent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range fields(ua) {
		m.counters[f]++
	}
	return nil
}

func (m *MemoryRecorder) Snapshot(context.Context) (Snapshot, error) {
	m.mu.Lock()
	counters := maps.Clone(m.counters)
	m.mu.Unlock()
	return buildSnapshot(counters), nil
}

func (m *MemoryRecorder) Ping(context.Context) error { return nil }

func (m *MemoryRecorder) Close() error { return nil }

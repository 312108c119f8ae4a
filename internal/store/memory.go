package store

import (
	"bitwise74/visitor-api/internal/model"
	"context"
	"slices"
	"sync"
	"time"
)

// Memory keeps visitors in RAM. Meant for tests and local development.
type Memory struct {
	mu       sync.RWMutex
	visitors []model.Visitor
	now      func() time.Time

	// FailWith makes every operation return the given error
	FailWith error
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) Insert(_ context.Context, v *model.Visitor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if err := prepare(v, m.now); err != nil {
		return err
	}

	m.visitors = append(m.visitors, *v)
	return nil
}

func (m *Memory) List(context.Context) ([]model.Visitor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	out := make([]model.Visitor, len(m.visitors))
	copy(out, m.visitors)

	// Later inserts win ties
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b model.Visitor) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return out, nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.visitors)
}

func (m *Memory) Close(context.Context) error { return nil }

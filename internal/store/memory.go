package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is a map-backed Store. It is the default backend and the test
// double; values do not survive a restart.
type Memory struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append(json.RawMessage(nil), raw...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append(json.RawMessage(nil), value...)
	return nil
}

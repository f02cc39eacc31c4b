// Package tokenstore persists the client's authentication state between
// requests, and between processes when backed by Redis.
//
// A store holds one string mapping per storage name. The client keeps its
// token, scopes and issuing base URL there, so several clients sharing a
// store (and a storage name) also share one token.
package tokenstore

import (
	"context"
	"sync"
)

// Store is a named string-to-string mapping with partial updates. Merge and
// Delete touch only the keys they are given; other keys under the same name
// are left as they are.
type Store interface {
	Get(ctx context.Context, name string) (map[string]string, error)
	Merge(ctx context.Context, name string, values map[string]string) error
	Delete(ctx context.Context, name string, keys ...string) error
}

// Memory is the default in-process store.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, name string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data[name]))
	for k, v := range m.data[name] {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Merge(_ context.Context, name string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[name] == nil {
		m.data[name] = make(map[string]string, len(values))
	}
	for k, v := range values {
		m.data[name][k] = v
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, name string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data[name], k)
	}
	return nil
}

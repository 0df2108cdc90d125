package blobstore

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is a thread-safe, in-memory Store for tests and local runs.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns a ready-to-use Memory store.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]map[string][]byte)}
}

// Put stores a copy of data under bucket/key.
func (m *Memory) Put(bucket, key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects[bucket] == nil {
		m.objects[bucket] = make(map[string][]byte)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[bucket][key] = buf
}

func (m *Memory) Get(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[bucket][key]
	if !ok {
		return nil, ErrNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// List returns the keys under prefix in lexical order.
func (m *Memory) List(_ context.Context, bucket, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for key := range m.objects[bucket] {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

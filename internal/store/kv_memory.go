// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueStore returns a process-local [KeyValueStore]. Nothing
// survives a restart; it backs tests and STORAGE_BACKEND=memory.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{data: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *memoryKeyValueStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memoryKeyValueStore) Close() error {
	return nil
}

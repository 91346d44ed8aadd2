// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

// MemoryValueStore is a [ClientValueStore] kept in process memory.
type MemoryValueStore struct {
	name string

	mu    sync.RWMutex
	value *string
}

func NewMemoryValueStore(name string) *MemoryValueStore {
	return &MemoryValueStore{name: name}
}

func (m *MemoryValueStore) Store(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = &value
	return nil
}

func (m *MemoryValueStore) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.value == nil {
		return "", autherr.ErrNotFound.With("value", m.name)
	}
	return *m.value, nil
}

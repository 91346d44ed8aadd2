// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
)

// MemoryVerificationKeyStore maps server identities to response keys.
type MemoryVerificationKeyStore struct {
	mu   sync.RWMutex
	keys map[string]crypto.VerificationKey
}

func NewMemoryVerificationKeyStore() *MemoryVerificationKeyStore {
	return &MemoryVerificationKeyStore{keys: make(map[string]crypto.VerificationKey)}
}

// Add registers key under the identity hash(key.public).
func (m *MemoryVerificationKeyStore) Add(hasher crypto.Hasher, key crypto.VerificationKey) (string, error) {
	identity, err := crypto.PublicKeyHash(hasher, key)
	if err != nil {
		return "", err
	}
	m.Put(identity, key)
	return identity, nil
}

// Put registers key under an explicit identity.
func (m *MemoryVerificationKeyStore) Put(identity string, key crypto.VerificationKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[identity] = key
}

func (m *MemoryVerificationKeyStore) Get(ctx context.Context, identity string) (crypto.VerificationKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	key, ok := m.keys[identity]
	if !ok {
		return nil, autherr.ErrNotFound.With("serverIdentity", identity)
	}
	return key, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore implements the in-memory rotating key chain used for both
// authentication and access keys.
package keystore

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
)

// State is the lifecycle phase of a [RotatingKeyStore].
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateStaged
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateStaged:
		return "staged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a [RotatingKeyStore].
type Option func(*RotatingKeyStore)

// WithReinitialize allows Initialize on a store that already holds keys. The
// old chain is discarded.
func WithReinitialize() Option {
	return func(s *RotatingKeyStore) {
		s.reinitialize = true
	}
}

// RotatingKeyStore implements [KeyStore]. It is safe for concurrent use.
type RotatingKeyStore struct {
	mu sync.Mutex

	hasher    crypto.Hasher
	generator crypto.KeyGenerator

	state   State
	current crypto.SigningKey
	next    crypto.SigningKey
	future  crypto.SigningKey

	// rotated is set once a rotation is committed on the current chain.
	rotated bool

	reinitialize bool
}

func New(hasher crypto.Hasher, generator crypto.KeyGenerator, opts ...Option) *RotatingKeyStore {
	s := &RotatingKeyStore{
		hasher:    hasher,
		generator: generator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the current lifecycle phase.
func (s *RotatingKeyStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *RotatingKeyStore) Initialize(ctx context.Context, extraData *string) (string, string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized && !s.reinitialize {
		return "", "", "", autherr.InvalidState("initialize", s.state.String())
	}

	current, err := s.generator.Generate()
	if err != nil {
		return "", "", "", fmt.Errorf("generate current key: %w", err)
	}
	next, err := s.generator.Generate()
	if err != nil {
		return "", "", "", fmt.Errorf("generate next key: %w", err)
	}

	publicKey, err := current.Public()
	if err != nil {
		return "", "", "", fmt.Errorf("current public key: %w", err)
	}
	rotationHash, err := s.hashPublic(next)
	if err != nil {
		return "", "", "", err
	}

	suffix := ""
	if extraData != nil {
		suffix = *extraData
	}
	identity, err := s.hasher.Sum(publicKey + rotationHash + suffix)
	if err != nil {
		return "", "", "", fmt.Errorf("derive identity: %w", err)
	}

	s.current, s.next, s.future = current, next, nil
	s.state = StateInitialized
	s.rotated = false

	return identity, publicKey, rotationHash, nil
}

// Resume returns what Initialize returned for the chain the store holds, so a
// registration whose reply was lost can be sent again with the same keys. It
// fails with InvalidState when the store is uninitialized or has rotated.
func (s *RotatingKeyStore) Resume(ctx context.Context, extraData *string) (string, string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized || s.rotated {
		return "", "", "", autherr.InvalidState("resume", s.resumeState())
	}

	publicKey, err := s.current.Public()
	if err != nil {
		return "", "", "", fmt.Errorf("current public key: %w", err)
	}
	rotationHash, err := s.hashPublic(s.next)
	if err != nil {
		return "", "", "", err
	}

	suffix := ""
	if extraData != nil {
		suffix = *extraData
	}
	identity, err := s.hasher.Sum(publicKey + rotationHash + suffix)
	if err != nil {
		return "", "", "", fmt.Errorf("derive identity: %w", err)
	}

	return identity, publicKey, rotationHash, nil
}

func (s *RotatingKeyStore) resumeState() string {
	if s.rotated {
		return "rotated"
	}
	return s.state.String()
}

func (s *RotatingKeyStore) Next(ctx context.Context) (crypto.SigningKey, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return nil, "", autherr.InvalidState("next", s.state.String())
	}

	if s.future == nil {
		future, err := s.generator.Generate()
		if err != nil {
			return nil, "", fmt.Errorf("generate future key: %w", err)
		}
		s.future = future
		s.state = StateStaged
	}

	rotationHash, err := s.hashPublic(s.future)
	if err != nil {
		return nil, "", err
	}
	return s.next, rotationHash, nil
}

func (s *RotatingKeyStore) Rotate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStaged {
		return autherr.InvalidState("rotate", s.state.String())
	}

	s.current, s.next, s.future = s.next, s.future, nil
	s.state = StateInitialized
	s.rotated = true
	return nil
}

func (s *RotatingKeyStore) Signer(ctx context.Context) (crypto.SigningKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return nil, autherr.InvalidState("signer", s.state.String())
	}
	return s.current, nil
}

func (s *RotatingKeyStore) hashPublic(key crypto.SigningKey) (string, error) {
	public, err := key.Public()
	if err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	digest, err := s.hasher.Sum(public)
	if err != nil {
		return "", fmt.Errorf("hash public key: %w", err)
	}
	return digest, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var ErrEmptyPassphrase = errors.New("empty passphrase")

// KeyChain derives recovery keys from a passphrase so the key itself never
// has to be stored. The same passphrase and salt always produce the same
// Ed25519 key.
type KeyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyChain() *KeyChain {
	return &KeyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG.
func (k *KeyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveRecoveryKey stretches passphrase with Argon2id into an Ed25519 seed.
func (k *KeyChain) DeriveRecoveryKey(passphrase string, salt []byte) (*Ed25519, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	seed := argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, 32)
	return NewEd25519FromSeed(seed)
}

// PublicKeyHash is hash(key.public). It is the recovery hash committed at
// account creation and the identity of a server response key.
func PublicKeyHash(hasher Hasher, key VerificationKey) (string, error) {
	public, err := key.Public()
	if err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	return hasher.Sum(public)
}

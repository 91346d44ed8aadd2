// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Ed25519Verifier checks Ed25519 signatures.
type Ed25519Verifier struct{}

func (Ed25519Verifier) SignatureLength() int {
	return ed25519SigLength
}

func (Ed25519Verifier) Verify(message, signature, publicKey string) error {
	raw, err := unqualify(codeEd25519Key, 1, publicKey)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: want %d key bytes, got %d", ErrMalformedQualifiedValue, ed25519.PublicKeySize, len(raw))
	}

	sig, err := unqualify(codeEd25519Sig, 2, signature)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	if !ed25519.Verify(ed25519.PublicKey(raw), []byte(message), sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Ed25519 is an in-memory Ed25519 signing key.
type Ed25519 struct {
	private  ed25519.PrivateKey
	verifier Ed25519Verifier
}

func NewEd25519() (*Ed25519, error) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return &Ed25519{private: private}, nil
}

// NewEd25519FromSeed derives the key deterministically from a 32-byte seed.
func NewEd25519FromSeed(seed []byte) (*Ed25519, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Ed25519{private: ed25519.NewKeyFromSeed(seed)}, nil
}

func (k *Ed25519) Public() (string, error) {
	public := k.private.Public().(ed25519.PublicKey)
	return qualify(codeEd25519Key, 1, public), nil
}

func (k *Ed25519) Verifier() Verifier {
	return k.verifier
}

func (k *Ed25519) Verify(message, signature string) error {
	public, err := k.Public()
	if err != nil {
		return err
	}
	return k.verifier.Verify(message, signature, public)
}

func (k *Ed25519) Sign(message string) (string, error) {
	return qualify(codeEd25519Sig, 2, ed25519.Sign(k.private, []byte(message))), nil
}

// Ed25519Generator implements [KeyGenerator].
type Ed25519Generator struct{}

func (Ed25519Generator) Generate() (SigningKey, error) {
	return NewEd25519()
}

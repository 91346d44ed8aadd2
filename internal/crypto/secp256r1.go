// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Secp256r1Verifier checks ECDSA P-256 signatures over SHA-256. Signatures are
// the 64-byte r||s concatenation; public keys are SEC1 compressed points.
type Secp256r1Verifier struct{}

// SignatureLength implements [Verifier].
func (Secp256r1Verifier) SignatureLength() int {
	return secp256r1SigLength
}

// Verify implements [Verifier].
func (Secp256r1Verifier) Verify(message, signature, publicKey string) error {
	raw, err := unqualify(codeSecp256r1Key, 3, publicKey)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), raw)
	if x == nil {
		return fmt.Errorf("%w: public key is not a P-256 point", ErrMalformedQualifiedValue)
	}

	sig, err := unqualify(codeSecp256r1Sig, 2, signature)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != 64 {
		return fmt.Errorf("%w: want 64 bytes, got %d", ErrInvalidSignature, len(sig))
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	digest := sha256.Sum256([]byte(message))

	pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}
	if !ecdsa.Verify(pub, digest[:], r, s) {
		return ErrInvalidSignature
	}
	return nil
}

// Secp256r1 is an in-memory P-256 signing key.
type Secp256r1 struct {
	private  *ecdsa.PrivateKey
	verifier Secp256r1Verifier
}

// NewSecp256r1 generates a fresh keypair.
func NewSecp256r1() (*Secp256r1, error) {
	private, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate p-256 key: %w", err)
	}
	return &Secp256r1{private: private}, nil
}

func (k *Secp256r1) Public() (string, error) {
	compressed := elliptic.MarshalCompressed(elliptic.P256(), k.private.X, k.private.Y)
	return qualify(codeSecp256r1Key, 3, compressed), nil
}

func (k *Secp256r1) Verifier() Verifier {
	return k.verifier
}

func (k *Secp256r1) Verify(message, signature string) error {
	public, err := k.Public()
	if err != nil {
		return err
	}
	return k.verifier.Verify(message, signature, public)
}

// Sign returns the qualified r||s signature of SHA-256(message).
func (k *Secp256r1) Sign(message string) (string, error) {
	digest := sha256.Sum256([]byte(message))
	r, s, err := ecdsa.Sign(rand.Reader, k.private, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	sig := make([]byte, 64)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])

	return qualify(codeSecp256r1Sig, 2, sig), nil
}

// Secp256r1Generator implements [KeyGenerator].
type Secp256r1Generator struct{}

func (Secp256r1Generator) Generate() (SigningKey, error) {
	return NewSecp256r1()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// StaticVerificationKey is a known public key, typically a server's response
// key distributed out of band.
type StaticVerificationKey struct {
	public   string
	verifier Verifier
}

func NewStaticVerificationKey(public string, verifier Verifier) *StaticVerificationKey {
	return &StaticVerificationKey{public: public, verifier: verifier}
}

func (k *StaticVerificationKey) Public() (string, error) {
	return k.public, nil
}

func (k *StaticVerificationKey) Verifier() Verifier {
	return k.verifier
}

func (k *StaticVerificationKey) Verify(message, signature string) error {
	return k.verifier.Verify(message, signature, k.public)
}

// MultiVerifier picks a verifier by the public key's type code, so a server
// can accept P-256 device keys and Ed25519 recovery keys side by side.
type MultiVerifier struct {
	byCode map[string]Verifier
	length int
}

// NewMultiVerifier accepts both built-in schemes. Their signatures share a
// length, which is reported by SignatureLength.
func NewMultiVerifier() *MultiVerifier {
	return &MultiVerifier{
		byCode: map[string]Verifier{
			codeSecp256r1Key: Secp256r1Verifier{},
			codeEd25519Key:   Ed25519Verifier{},
		},
		length: secp256r1SigLength,
	}
}

func (m *MultiVerifier) SignatureLength() int {
	return m.length
}

func (m *MultiVerifier) Verify(message, signature, publicKey string) error {
	for code, verifier := range m.byCode {
		if strings.HasPrefix(publicKey, code) {
			return verifier.Verify(message, signature, publicKey)
		}
	}
	return fmt.Errorf("%w: unknown key type", ErrMalformedQualifiedValue)
}

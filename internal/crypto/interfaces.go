// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto declares the cryptographic capabilities consumed by the
// protocol engine and ships the default implementations.
//
// The engine never depends on a concrete algorithm: hashing, nonce
// generation, signing and verification are all reached through the
// interfaces below, so an EC or post-quantum scheme can be substituted
// without touching protocol logic.
//
// All values crossing these interfaces are qualified base64url strings: a
// short type code followed by the padded encoding of the raw bytes, e.g.
// "E..." for a BLAKE3-256 digest or "1AAI..." for a compressed P-256 key.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Hasher produces a content-addressed digest with a fixed output encoding.
type Hasher interface {
	Sum(message string) (string, error)
}

// Noncer produces single-use 128-bit random values.
type Noncer interface {
	Generate128() (string, error)
}

// Verifier checks a signature over message against publicKey. A failed check
// is an error, never a silent false.
type Verifier interface {
	Verify(message, signature, publicKey string) error

	// SignatureLength is the length of an encoded signature in characters.
	// Bearer tokens are split at this offset.
	SignatureLength() int
}

// VerificationKey is a public key bound to the verifier able to check it.
type VerificationKey interface {
	Public() (string, error)
	Verifier() Verifier
	Verify(message, signature string) error
}

// SigningKey is a keypair able to sign.
type SigningKey interface {
	VerificationKey
	Sign(message string) (string, error)
}

// KeyGenerator creates fresh signing keys. Rotating key stores use it for
// every key in the chain.
type KeyGenerator interface {
	Generate() (SigningKey, error)
}

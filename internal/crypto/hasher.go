// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Blake3Hasher digests messages with BLAKE3-256.
type Blake3Hasher struct{}

// NewBlake3Hasher returns the default protocol hasher.
func NewBlake3Hasher() Blake3Hasher {
	return Blake3Hasher{}
}

// Sum implements [Hasher].
func (Blake3Hasher) Sum(message string) (string, error) {
	digest := blake3.Sum256([]byte(message))
	return qualify(codeBlake3Digest, 1, digest[:]), nil
}

// SHA3Hasher digests messages with SHA3-256.
type SHA3Hasher struct{}

func NewSHA3Hasher() SHA3Hasher {
	return SHA3Hasher{}
}

// Sum implements [Hasher].
func (SHA3Hasher) Sum(message string) (string, error) {
	digest := sha3.Sum256([]byte(message))
	return qualify(codeSHA3Digest, 1, digest[:]), nil
}

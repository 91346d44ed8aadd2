// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomNoncer draws nonces from the OS CSPRNG.
type RandomNoncer struct {
	random io.Reader
}

func NewNoncer() *RandomNoncer {
	return &RandomNoncer{random: rand.Reader}
}

// Generate128 implements [Noncer]. The result is 24 characters long
// and starts with "0A".
func (n *RandomNoncer) Generate128() (string, error) {
	entropy := make([]byte, 16)
	if _, err := io.ReadFull(n.random, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return qualify(codeSalt128, 2, entropy), nil
}

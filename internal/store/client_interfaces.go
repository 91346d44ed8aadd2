// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ClientValueStore holds a single string value, such as the device
// identifier or the current access token.
type ClientValueStore interface {
	Store(ctx context.Context, value string) error
	// Get fails with autherr.ErrNotFound when nothing was stored yet.
	Get(ctx context.Context) (string, error)
}

// VerificationKeyStore resolves a server identity to the key that signs its
// responses.
type VerificationKeyStore interface {
	// Get fails with autherr.ErrNotFound for an unknown identity.
	Get(ctx context.Context, identity string) (crypto.VerificationKey, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// KeyStore is the rotating key chain consumed by the protocol engine.
//
// The chain is current → next → future. Only hashes of keys that have not
// been used yet ever leave the store, which is what makes a stolen current
// key useless after the next rotation.
type KeyStore interface {
	// Initialize generates current and next and returns the identity derived
	// from them: hash(publicKey + rotationHash + extraData).
	Initialize(ctx context.Context, extraData *string) (identity, publicKey, rotationHash string, err error)

	// Resume repeats the result of Initialize for the held chain as long as
	// no rotation has been committed on it.
	Resume(ctx context.Context, extraData *string) (identity, publicKey, rotationHash string, err error)

	// Next stages a future key (once) and returns the next key together with
	// hash(future.public). Calling it again without Rotate returns the same
	// pair.
	Next(ctx context.Context) (key crypto.SigningKey, rotationHash string, err error)

	// Rotate commits the staged rotation. It fails if Next was not called.
	Rotate(ctx context.Context) error

	// Signer returns the current key.
	Signer(ctx context.Context) (crypto.SigningKey, error)
}

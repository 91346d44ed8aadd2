// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client side of the better-auth protocol.
//
// Every flow has the same shape: build the request body, attach a fresh
// nonce, sign with the right key, send, then parse the reply, verify the
// server signature and the echoed nonce, and only then apply side effects.
// Flows that rotate a key stage it with Next before sending and commit it
// with Rotate once the verified reply is in, so a retried request is safe.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the protocol engine of one client installation.
// Failures are returned unchanged from the collaborator or verification step
// that produced them. Nothing is retried internally.
type ClientAuthService interface {
	// Identity returns the stored identity.
	Identity(ctx context.Context) (string, error)

	// Device returns the stored device identifier.
	Device(ctx context.Context) (string, error)

	// CreateAccount initializes the authentication key chain bound to
	// recoveryHash and registers the identity. On success the identity and
	// device are stored.
	CreateAccount(ctx context.Context, recoveryHash string) error

	// GenerateLinkContainer initializes a key chain on a new device and returns
	// the self-signed container an already linked device submits. Identity and
	// device are stored before anything is sent, so the call is not
	// idempotent.
	GenerateLinkContainer(ctx context.Context, identity string) (string, error)

	// LinkDevice endorses container with this device's authentication key.
	LinkDevice(ctx context.Context, container string) error

	// UnlinkDevice removes device from the identity. Unlinking the calling
	// device poisons its rotation hash so it can never rotate again.
	UnlinkDevice(ctx context.Context, device string) error

	// RotateDevice advances the authentication key.
	RotateDevice(ctx context.Context) error

	// CreateSession runs the two-step session handshake and stores the issued
	// access token.
	CreateSession(ctx context.Context) error

	// RefreshSession advances the access key and exchanges the stored token
	// for a new one.
	RefreshSession(ctx context.Context) error

	// RecoverAccount replaces the authentication key chain of identity. The
	// request is signed with recoveryKey, whose public key must hash to the
	// recovery hash registered before. recoveryHash commits to the next
	// recovery key.
	RecoverAccount(ctx context.Context, identity string, recoveryKey crypto.SigningKey, recoveryHash string) error

	// ChangeRecoveryKey registers a new recovery hash.
	ChangeRecoveryKey(ctx context.Context, recoveryHash string) error

	// DeleteAccount deletes the identity on the server.
	DeleteAccount(ctx context.Context) error

	// MakeAccessRequest sends request to path under the current access token
	// and returns the verified raw reply for caller-specific parsing.
	MakeAccessRequest(ctx context.Context, path string, request any) (string, error)

	// AccessToken parses the stored token and checks its server signature.
	AccessToken(ctx context.Context) (*models.SignedAccessToken, error)
}

// SessionRefreshJob keeps the session alive in the background by calling
// RefreshSession on a ticker.
type SessionRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context) error
}

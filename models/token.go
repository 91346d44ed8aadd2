// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

// AccessToken is the server-signed grant exchanged for a bearer token string.
//
// The client treats it as opaque except for the timing fields, which it uses
// to decide whether a refresh is due. Timestamps are kept in the wire format
// produced by the server's timestamper and parsed on demand.
type AccessToken struct {
	ServerIdentity string          `json:"serverIdentity"`
	Device         string          `json:"device"`
	Identity       string          `json:"identity"`
	PublicKey      string          `json:"publicKey"`
	RotationHash   string          `json:"rotationHash"`
	IssuedAt       string          `json:"issuedAt"`
	Expiry         string          `json:"expiry"`
	RefreshExpiry  string          `json:"refreshExpiry"`
	Attributes     json.RawMessage `json:"attributes,omitempty"`
}

// VerifyTiming fails with ExpiredToken once now passes Expiry and with
// FutureToken when IssuedAt lies more than tolerance ahead of now.
func (t AccessToken) VerifyTiming(now time.Time, tolerance time.Duration) error {
	expiry, err := time.Parse(time.RFC3339Nano, t.Expiry)
	if err != nil {
		return autherr.Deserialization("token expiry", err)
	}
	if now.After(expiry) {
		return autherr.ExpiredToken(t.Expiry, now.UTC().Format(time.RFC3339Nano), "access")
	}

	if t.IssuedAt != "" {
		issuedAt, err := time.Parse(time.RFC3339Nano, t.IssuedAt)
		if err != nil {
			return autherr.Deserialization("token issuedAt", err)
		}
		if diff := issuedAt.Sub(now); diff > tolerance {
			return autherr.FutureToken(t.IssuedAt, now.UTC().Format(time.RFC3339Nano), diff.Seconds())
		}
	}

	return nil
}

// Refreshable reports whether the refresh window is still open at now.
func (t AccessToken) Refreshable(now time.Time) bool {
	if t.RefreshExpiry == "" {
		return true
	}
	refreshExpiry, err := time.Parse(time.RFC3339Nano, t.RefreshExpiry)
	if err != nil {
		return false
	}
	return !now.After(refreshExpiry)
}

// SignedAccessToken is an [AccessToken] together with the server signature
// that prefixes it in the bearer string, and the exact JSON that was signed.
type SignedAccessToken struct {
	AccessToken
	Signature string
	Raw       string
}

// TokenVerifier is the subset of a signature verifier needed to check a token.
type TokenVerifier interface {
	Verify(message, signature, publicKey string) error
}

// Verify checks the server signature over the raw token JSON.
func (s SignedAccessToken) Verify(verifier TokenVerifier, serverPublicKey string) error {
	if err := verifier.Verify(s.Raw, s.Signature, serverPublicKey); err != nil {
		return autherr.SignatureInvalid(err)
	}
	return nil
}

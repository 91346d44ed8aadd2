// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-better-auth/internal/adapter"
	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/stretchr/testify/assert"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server rejected", autherr.ErrProtocolViolation.With("status", 401), MsgServerRejected},
		{"server reported hash", autherr.ErrInvalidHash.Wrap(adapter.ErrServerRejected), MsgServerRejected},
		{"device revoked", autherr.ErrDeviceRevoked.With("status", 401), MsgDeviceRevoked},
		{"identity deleted", autherr.ErrIdentityDeleted, MsgDeviceRevoked},
		{"mismatched identities", autherr.MismatchedIdentities("Ea", "Eb"), MsgNotLinked},
		{"incorrect nonce", autherr.IncorrectNonce("0Aa", "0Ab"), MsgServerNotTrusted},
		{"bad signature", autherr.SignatureInvalid(errors.New("bad")), MsgServerNotTrusted},
		{"invalid message", autherr.InvalidMessage("access.token", "empty"), MsgInvalidMessage},
		{"expired token", autherr.ErrExpiredToken, MsgSessionExpired},
		{"stale request", autherr.ErrStaleRequest, MsgClockSkew},
		{"nothing stored", fmt.Errorf("identity: %w", autherr.ErrNotFound), MsgNothingStored},
		{"deserialization", autherr.ErrDeserialization, MsgEncoding},
		{"timeout", autherr.ErrTimeout, MsgServerUnreachable},
		{"invalid state", autherr.InvalidState("rotate", "initialized"), MsgWrongState},
		{"plain", errors.New("boom"), MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.err))
		})
	}
}

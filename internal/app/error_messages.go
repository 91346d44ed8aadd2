// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable wording the client prints when a
// flow fails. Messages are keyed by error category so the same wording is
// used whatever the flow.
package app

import (
	"errors"

	"github.com/MKhiriev/go-better-auth/internal/adapter"
	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

const (
	// MsgInvalidMessage is printed when a message could not be parsed or
	// misses required fields.
	MsgInvalidMessage = "message is malformed"

	// MsgServerNotTrusted is printed when a response signature or nonce does
	// not check out. The reply must not be trusted.
	MsgServerNotTrusted = "server response failed verification"

	// MsgNotLinked is printed when a link container names another identity.
	MsgNotLinked = "link container belongs to another identity"

	// MsgSessionExpired is printed when the access token can no longer be
	// used or refreshed.
	MsgSessionExpired = "session expired, create a new session"

	// MsgClockSkew is printed when timestamps disagree with the server.
	MsgClockSkew = "local clock disagrees with the server"

	// MsgNothingStored is printed when a flow needs an identity, device or
	// token that was never stored.
	MsgNothingStored = "no account or session on this device"

	// MsgEncoding is printed when a value could not be encoded or decoded.
	MsgEncoding = "encoding failure"

	// MsgServerUnreachable is printed on connection failures and timeouts.
	MsgServerUnreachable = "auth server unreachable"

	// MsgServerRejected is printed when the server refused the request.
	MsgServerRejected = "auth server rejected the request"

	// MsgDeviceRevoked is printed when the server no longer knows this
	// device or its account.
	MsgDeviceRevoked = "device is no longer linked to the account"

	// MsgWrongState is printed when keys are not in the state the flow needs,
	// e.g. a session refresh before any session exists.
	MsgWrongState = "operation not possible in the current state"

	// MsgUnexpected is printed for everything else.
	MsgUnexpected = "unexpected error"
)

// MessageFor picks the wording for err.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, autherr.ErrDeviceRevoked), errors.Is(err, autherr.ErrIdentityDeleted):
		return MsgDeviceRevoked
	case errors.Is(err, autherr.ErrProtocolViolation), errors.Is(err, adapter.ErrServerRejected):
		return MsgServerRejected
	case errors.Is(err, autherr.ErrMismatchedIdentities):
		return MsgNotLinked
	}

	switch autherr.CategoryOf(err) {
	case autherr.CategoryValidation:
		return MsgInvalidMessage
	case autherr.CategoryCryptographic:
		return MsgServerNotTrusted
	case autherr.CategoryAuthorization:
		return MsgNotLinked
	case autherr.CategoryToken:
		return MsgSessionExpired
	case autherr.CategoryTemporal:
		return MsgClockSkew
	case autherr.CategoryStorage:
		return MsgNothingStored
	case autherr.CategoryEncoding:
		return MsgEncoding
	case autherr.CategoryNetwork:
		return MsgServerUnreachable
	case autherr.CategoryProtocol:
		return MsgWrongState
	default:
		return MsgUnexpected
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autherr

// Sentinels. Compare with errors.Is; build contextual values with the
// constructor functions below.
var (
	ErrInvalidMessage  = newError("BA101", CategoryValidation, "message structure is invalid or malformed")
	ErrInvalidIdentity = newError("BA102", CategoryValidation, "identity verification failed")
	ErrInvalidDevice   = newError("BA103", CategoryValidation, "device hash does not match public key hash")
	ErrInvalidHash     = newError("BA104", CategoryValidation, "hash validation failed")

	ErrSignatureInvalid = newError("BA201", CategoryCryptographic, "signature verification failed")
	ErrIncorrectNonce   = newError("BA203", CategoryCryptographic, "response nonce does not match request nonce")
	ErrExpiredNonce     = newError("BA204", CategoryCryptographic, "nonce has expired")
	ErrNonceReplay      = newError("BA205", CategoryCryptographic, "nonce has already been used")

	ErrMismatchedIdentities = newError("BA302", CategoryAuthorization, "link container identity does not match request identity")
	ErrPermissionDenied     = newError("BA303", CategoryAuthorization, "insufficient permission")

	ErrExpiredToken = newError("BA401", CategoryToken, "token has expired")
	ErrInvalidToken = newError("BA402", CategoryToken, "token is malformed")
	ErrFutureToken  = newError("BA403", CategoryToken, "token issued_at timestamp is in the future")

	ErrStaleRequest  = newError("BA501", CategoryTemporal, "request timestamp is too old")
	ErrFutureRequest = newError("BA502", CategoryTemporal, "request timestamp is in the future")
	ErrClockSkew     = newError("BA503", CategoryTemporal, "clock skew exceeds tolerance")

	ErrNotFound           = newError("BA601", CategoryStorage, "value not found")
	ErrAlreadyExists      = newError("BA602", CategoryStorage, "value already exists")
	ErrStorageUnavailable = newError("BA603", CategoryStorage, "storage backend unavailable")
	ErrStorageCorruption  = newError("BA604", CategoryStorage, "stored data is corrupted")

	ErrSerialization   = newError("BA701", CategoryEncoding, "failed to serialize message")
	ErrDeserialization = newError("BA702", CategoryEncoding, "failed to deserialize message")
	ErrCompression     = newError("BA703", CategoryEncoding, "compression failure")

	ErrConnectionFailed  = newError("BA801", CategoryNetwork, "connection failed")
	ErrTimeout           = newError("BA802", CategoryNetwork, "request timed out")
	ErrProtocolViolation = newError("BA803", CategoryNetwork, "protocol violation")

	ErrInvalidState    = newError("BA901", CategoryProtocol, "operation invalid in current state")
	ErrRotationFailed  = newError("BA902", CategoryProtocol, "key rotation failed")
	ErrRecoveryFailed  = newError("BA903", CategoryProtocol, "account recovery failed")
	ErrDeviceRevoked   = newError("BA904", CategoryProtocol, "device has been revoked")
	ErrIdentityDeleted = newError("BA905", CategoryProtocol, "identity has been deleted")
)

const nonceDisplayLength = 16

func truncate(s string) string {
	if len(s) > nonceDisplayLength {
		return s[:nonceDisplayLength] + "..."
	}
	return s
}

// InvalidMessage reports a malformed message; field names the offending part.
func InvalidMessage(field, details string) *Error {
	e := ErrInvalidMessage
	if field != "" {
		e = e.With("field", field)
	}
	if details != "" {
		e = e.With("details", details)
	}
	return e
}

// IncorrectNonce reports a nonce echo mismatch. Both values are truncated.
func IncorrectNonce(expected, actual string) *Error {
	return ErrIncorrectNonce.
		With("expected", truncate(expected)).
		With("actual", truncate(actual))
}

// InvalidHash reports a hash commitment mismatch.
func InvalidHash(expected, actual, hashType string) *Error {
	e := ErrInvalidHash.With("expected", expected).With("actual", actual)
	if hashType != "" {
		e = e.With("hashType", hashType)
	}
	return e
}

// MismatchedIdentities reports a link container for a foreign identity.
func MismatchedIdentities(containerIdentity, requestIdentity string) *Error {
	return ErrMismatchedIdentities.
		With("linkContainerIdentity", containerIdentity).
		With("requestIdentity", requestIdentity)
}

// SignatureInvalid wraps a verifier failure.
func SignatureInvalid(cause error) *Error {
	return ErrSignatureInvalid.Wrap(cause)
}

// InvalidState reports an operation attempted in the wrong key-store state.
func InvalidState(operation, state string) *Error {
	return ErrInvalidState.With("operation", operation).With("state", state)
}

// Deserialization reports a message that could not be decoded as messageType.
func Deserialization(messageType string, cause error) *Error {
	return ErrDeserialization.With("messageType", messageType).Wrap(cause)
}

// Serialization reports a payload that could not be encoded.
func Serialization(cause error) *Error {
	return ErrSerialization.Wrap(cause)
}

// ExpiredToken reports a token past its expiry.
func ExpiredToken(expiry, now, tokenType string) *Error {
	return ErrExpiredToken.With("expiryTime", expiry).With("currentTime", now).With("tokenType", tokenType)
}

// FutureToken reports a token issued after now.
func FutureToken(issuedAt, now string, diffSeconds float64) *Error {
	return ErrFutureToken.With("issuedAt", issuedAt).With("currentTime", now).With("timeDifference", diffSeconds)
}

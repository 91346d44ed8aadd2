// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the protocol engine to
// reach the auth server.
//
// The engine only sees [Network]: it hands over a serialized message and a
// route and gets the raw reply back. The package ships an HTTP implementation
// ([NewHTTPNetwork]) that POSTs every message as JSON.
//
// Transport failures are mapped by mapTransportError and mapHTTPError onto
// the network category of autherr ([autherr.ErrConnectionFailed],
// [autherr.ErrTimeout], [autherr.ErrProtocolViolation]), so callers can use
// [errors.Is] without knowing the transport.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_mock.go -package=mock

// Network sends one serialized message to the server and returns the reply
// body unchanged. Implementations must not alter either side: signatures
// cover the exact bytes.
type Network interface {
	SendRequest(ctx context.Context, path, message string) (string, error)
}

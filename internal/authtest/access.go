// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/message"
)

// EchoRequest is the body accepted at EchoPath.
type EchoRequest struct {
	Foo string `json:"foo"`
	Bar string `json:"bar"`
}

// EchoResponse reports back what EchoPath received.
type EchoResponse struct {
	WasFoo string `json:"wasFoo"`
	WasBar string `json:"wasBar"`
}

// echo accepts an access request signed by the key its token names, from a
// device still linked, fresh within the clock tolerance and with a nonce
// never seen before.
func (s *Server) echo(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseAccessRequest[EchoRequest](body)
	if err != nil {
		return "", nil, err
	}

	token, err := s.verifyToken(request.Token())
	if err != nil {
		return "", nil, err
	}
	now := s.timestamper.Now()
	if err = token.VerifyTiming(now, s.tolerance); err != nil {
		return "", nil, err
	}

	timestamp, err := s.timestamper.Parse(request.Timestamp())
	if err != nil {
		return "", nil, autherr.InvalidMessage("access.timestamp", err.Error())
	}
	switch skew := now.Sub(timestamp); {
	case skew > s.tolerance:
		return "", nil, autherr.ErrStaleRequest.With("timestamp", request.Timestamp())
	case -skew > s.tolerance:
		return "", nil, autherr.ErrFutureRequest.With("timestamp", request.Timestamp())
	}

	if err = request.Verify(s.verifier, token.PublicKey); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[token.Identity]
	if !ok {
		return "", nil, autherr.ErrIdentityDeleted.With("identity", token.Identity)
	}
	if _, ok = acc.devices[token.Device]; !ok {
		return "", nil, autherr.ErrDeviceRevoked.With("device", token.Device)
	}
	if _, ok := s.seenNonces[request.Nonce()]; ok {
		return "", nil, autherr.ErrNonceReplay.Wrap(ErrNonceReused)
	}
	s.seenNonces[request.Nonce()] = struct{}{}

	echo := request.Request()
	return request.Nonce(), EchoResponse{WasFoo: echo.Foo, WasBar: echo.Bar}, nil
}

func (s *Server) badNonce(ctx context.Context, body string) (string, any, error) {
	_, response, err := s.echo(ctx, body)
	if err != nil {
		return "", nil, err
	}
	nonce, err := s.noncer.Generate128()
	if err != nil {
		return "", nil, err
	}
	return nonce, response, nil
}

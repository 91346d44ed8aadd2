// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

// exchange signs body under a fresh nonce, sends it to path and returns the
// verified response.
func exchange[Req, Resp any](ctx context.Context, s *clientAuthService, path string, body Req, signer message.Signer) (*message.ServerResponse[Resp], error) {
	nonce, err := s.noncer.Generate128()
	if err != nil {
		return nil, err
	}

	request := message.NewClientRequest(body, nonce)
	if err = request.Sign(signer); err != nil {
		return nil, err
	}
	serialized, err := request.Serialize()
	if err != nil {
		return nil, err
	}

	reply, err := s.network.SendRequest(ctx, path, serialized)
	if err != nil {
		return nil, err
	}

	return verifyResponse[Resp](ctx, s, reply, nonce)
}

// verifyResponse parses reply, checks its signature against the key of the
// server identity it names and then checks the echoed nonce. The signature is
// checked over the payload bytes exactly as received.
func verifyResponse[Resp any](ctx context.Context, s *clientAuthService, reply, nonce string) (*message.ServerResponse[Resp], error) {
	response, err := message.ParseServerResponse[Resp](reply)
	if err != nil {
		return nil, err
	}

	key, err := s.verificationKeys.Get(ctx, response.ServerIdentity())
	if err != nil {
		return nil, err
	}
	publicKey, err := key.Public()
	if err != nil {
		return nil, err
	}
	if err = response.Verify(key.Verifier(), publicKey); err != nil {
		return nil, err
	}

	if response.Nonce() != nonce {
		return nil, autherr.IncorrectNonce(nonce, response.Nonce())
	}

	return response, nil
}

// stageAuthentication stages the next authentication key and returns it with
// the authentication block announcing it. The caller must hold authMu and
// commit with Rotate after a verified reply.
func (s *clientAuthService) stageAuthentication(ctx context.Context) (crypto.SigningKey, models.Authentication, error) {
	identity, err := s.identities.Get(ctx)
	if err != nil {
		return nil, models.Authentication{}, err
	}
	device, err := s.devices.Get(ctx)
	if err != nil {
		return nil, models.Authentication{}, err
	}

	key, rotationHash, err := s.authenticationKeys.Next(ctx)
	if err != nil {
		return nil, models.Authentication{}, err
	}
	publicKey, err := key.Public()
	if err != nil {
		return nil, models.Authentication{}, err
	}

	return key, models.Authentication{
		Device:       device,
		Identity:     identity,
		PublicKey:    publicKey,
		RotationHash: rotationHash,
	}, nil
}

// rotateAuthentication runs a flow that advances the authentication key:
// stage, let build derive the body from the announced block, exchange, commit.
func rotateAuthentication[Req any](ctx context.Context, s *clientAuthService, path string, build func(models.Authentication) (Req, error)) error {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	key, auth, err := s.stageAuthentication(ctx)
	if err != nil {
		return err
	}
	body, err := build(auth)
	if err != nil {
		return err
	}

	if _, err = exchange[Req, models.EmptyResult](ctx, s, path, body, key); err != nil {
		return err
	}

	return s.authenticationKeys.Rotate(ctx)
}

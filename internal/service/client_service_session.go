// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

// CreateSession first asks for a session nonce bound to the identity with an
// unsigned request, then registers a fresh access key chain and proves
// possession of the authentication key by signing that nonce. The running
// session keeps its keys until the new token is stored.
func (s *clientAuthService) CreateSession(ctx context.Context) (err error) {
	log := s.logger.WithOp("CreateSession")
	defer func() { logResult(log, err) }()

	identity, err := s.identities.Get(ctx)
	if err != nil {
		return err
	}
	device, err := s.devices.Get(ctx)
	if err != nil {
		return err
	}

	challenge, err := s.requestSession(ctx, identity)
	if err != nil {
		return err
	}

	s.authMu.Lock()
	defer s.authMu.Unlock()
	s.accessMu.Lock()
	defer s.accessMu.Unlock()

	accessKeys := s.newAccessKeys()
	_, accessPublicKey, accessRotationHash, err := accessKeys.Initialize(ctx, nil)
	if err != nil {
		return err
	}
	signer, err := s.authenticationKeys.Signer(ctx)
	if err != nil {
		return err
	}

	body := models.CreateSessionBody{
		Access: models.AccessKey{
			PublicKey:    accessPublicKey,
			RotationHash: accessRotationHash,
		},
		Authentication: models.Authentication{
			Device: device,
			Nonce:  challenge,
		},
	}
	response, err := exchange[models.CreateSessionBody, models.SessionResult](ctx, s, s.paths.Session.Create, body, signer)
	if err != nil {
		return err
	}

	token := response.Response().Access.Token
	if token == "" {
		return autherr.ErrInvalidMessage.Wrap(ErrEmptyAccessToken)
	}
	if err = s.accessTokens.Store(ctx, token); err != nil {
		return err
	}
	s.accessKeys = accessKeys
	return nil
}

func (s *clientAuthService) requestSession(ctx context.Context, identity string) (string, error) {
	nonce, err := s.noncer.Generate128()
	if err != nil {
		return "", err
	}

	request := message.NewUnsignedRequest(models.RequestSessionBody{
		Authentication: models.Authentication{Identity: identity},
	}, nonce)
	serialized, err := request.Serialize()
	if err != nil {
		return "", err
	}

	reply, err := s.network.SendRequest(ctx, s.paths.Session.Request, serialized)
	if err != nil {
		return "", err
	}
	response, err := verifyResponse[models.RequestSessionResult](ctx, s, reply, nonce)
	if err != nil {
		return "", err
	}

	challenge := response.Response().Authentication.Nonce
	if challenge == "" {
		return "", autherr.ErrInvalidMessage.Wrap(ErrEmptySessionNonce)
	}
	return challenge, nil
}

// RefreshSession announces the staged access key, signs with it and commits
// the rotation only once the verified reply is in. The server accepts it
// because the stored token already commits to that key's hash.
func (s *clientAuthService) RefreshSession(ctx context.Context) (err error) {
	log := s.logger.WithOp("RefreshSession")
	defer func() { logResult(log, err) }()

	s.accessMu.Lock()
	defer s.accessMu.Unlock()

	token, err := s.accessTokens.Get(ctx)
	if err != nil {
		return err
	}

	key, rotationHash, err := s.accessKeys.Next(ctx)
	if err != nil {
		return err
	}
	publicKey, err := key.Public()
	if err != nil {
		return err
	}

	body := models.RefreshSessionBody{Access: models.AccessKey{
		PublicKey:    publicKey,
		RotationHash: rotationHash,
		Token:        token,
	}}
	response, err := exchange[models.RefreshSessionBody, models.SessionResult](ctx, s, s.paths.Session.Refresh, body, key)
	if err != nil {
		return err
	}

	refreshed := response.Response().Access.Token
	if refreshed == "" {
		return autherr.ErrInvalidMessage.Wrap(ErrEmptyAccessToken)
	}
	if err = s.accessKeys.Rotate(ctx); err != nil {
		return err
	}
	return s.accessTokens.Store(ctx, refreshed)
}

func (s *clientAuthService) AccessToken(ctx context.Context) (*models.SignedAccessToken, error) {
	raw, err := s.accessTokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	token, err := encoding.ParseAccessToken(raw, s.verifier.SignatureLength(), s.tokenEncoder)
	if err != nil {
		return nil, err
	}

	key, err := s.verificationKeys.Get(ctx, token.ServerIdentity)
	if err != nil {
		return nil, err
	}
	publicKey, err := key.Public()
	if err != nil {
		return nil, err
	}
	if err = token.Verify(key.Verifier(), publicKey); err != nil {
		return nil, err
	}

	return token, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

// requestSession hands out a single-use challenge bound to the identity.
func (s *Server) requestSession(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseUnsignedRequest[models.RequestSessionBody](body)
	if err != nil {
		return "", nil, err
	}
	identity := request.Request().Authentication.Identity

	challenge, err := s.noncer.Generate128()
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[identity]; !ok {
		return "", nil, autherr.ErrNotFound.With("identity", identity)
	}
	s.challenges[challenge] = identity

	var result models.RequestSessionResult
	result.Authentication.Nonce = challenge
	return request.Nonce(), result, nil
}

func (s *Server) createSession(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.CreateSessionBody](body)
	if err != nil {
		return "", nil, err
	}
	access := request.Request().Access
	auth := request.Request().Authentication

	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.challenges[auth.Nonce]
	if !ok {
		return "", nil, autherr.ErrExpiredNonce.Wrap(ErrUnknownChallenge)
	}
	delete(s.challenges, auth.Nonce)

	acc, ok := s.accounts[identity]
	if !ok {
		return "", nil, autherr.ErrNotFound.With("identity", identity)
	}
	dev, ok := acc.devices[auth.Device]
	if !ok {
		return "", nil, autherr.ErrDeviceRevoked.With("device", auth.Device)
	}
	if err = request.Verify(s.verifier, dev.publicKey); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(identity, auth.Device, access)
	if err != nil {
		return "", nil, err
	}

	s.logger.Debug().Str("identity", identity).Str("device", auth.Device).Msg("session created")
	return request.Nonce(), sessionResult(token), nil
}

// refreshSession exchanges a token for a new one bound to the access key its
// rotation hash committed to. Each access key may be rotated away only once;
// presenting the same successor again re-issues the token.
func (s *Server) refreshSession(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.RefreshSessionBody](body)
	if err != nil {
		return "", nil, err
	}
	access := request.Request().Access

	token, err := s.verifyToken(access.Token)
	if err != nil {
		return "", nil, err
	}
	now := s.timestamper.Now()
	if !token.Refreshable(now) {
		return "", nil, autherr.ExpiredToken(token.RefreshExpiry, s.timestamper.Format(now), "refresh")
	}

	hash, err := s.hasher.Sum(access.PublicKey)
	if err != nil {
		return "", nil, err
	}
	if hash != token.RotationHash {
		return "", nil, autherr.InvalidHash(token.RotationHash, hash, "access rotation")
	}
	if err = request.Verify(s.verifier, access.PublicKey); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if successor, ok := s.refreshed[token.PublicKey]; ok && successor != access.PublicKey {
		return "", nil, autherr.ErrPermissionDenied.Wrap(ErrAlreadyRefreshed)
	}
	acc, ok := s.accounts[token.Identity]
	if !ok {
		return "", nil, autherr.ErrIdentityDeleted.With("identity", token.Identity)
	}
	if _, ok = acc.devices[token.Device]; !ok {
		return "", nil, autherr.ErrDeviceRevoked.With("device", token.Device)
	}

	issued, err := s.issueTokenWithin(token.Identity, token.Device, access, token.RefreshExpiry)
	if err != nil {
		return "", nil, err
	}
	s.refreshed[token.PublicKey] = access.PublicKey

	return request.Nonce(), sessionResult(issued), nil
}

func sessionResult(token string) models.SessionResult {
	var result models.SessionResult
	result.Access.Token = token
	return result
}

func (s *Server) issueToken(identity, device string, access models.AccessKey) (string, error) {
	refreshExpiry := s.timestamper.Format(s.timestamper.Now().Add(s.refreshLifetime))
	return s.issueTokenWithin(identity, device, access, refreshExpiry)
}

// issueTokenWithin signs a token whose refresh window ends at refreshExpiry,
// so refreshing never extends a session.
func (s *Server) issueTokenWithin(identity, device string, access models.AccessKey, refreshExpiry string) (string, error) {
	now := s.timestamper.Now()
	token := models.AccessToken{
		ServerIdentity: s.identity,
		Device:         device,
		Identity:       identity,
		PublicKey:      access.PublicKey,
		RotationHash:   access.RotationHash,
		IssuedAt:       s.timestamper.Format(now),
		Expiry:         s.timestamper.Format(now.Add(s.accessLifetime)),
		RefreshExpiry:  refreshExpiry,
	}

	object, err := message.ComposePayload(token)
	if err != nil {
		return "", err
	}
	signature, err := s.responseKey.Sign(object)
	if err != nil {
		return "", err
	}
	return encoding.SerializeAccessToken(object, signature, s.tokenEncoder)
}

func (s *Server) verifyToken(raw string) (*models.SignedAccessToken, error) {
	token, err := encoding.ParseAccessToken(raw, s.verifier.SignatureLength(), s.tokenEncoder)
	if err != nil {
		return nil, err
	}
	if err = token.Verify(s.verifier, s.responsePublic); err != nil {
		return nil, err
	}
	return token, nil
}

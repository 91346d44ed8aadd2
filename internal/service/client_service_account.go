// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/models"
)

func (s *clientAuthService) CreateAccount(ctx context.Context, recoveryHash string) (err error) {
	log := s.logger.WithOp("CreateAccount")
	defer func() { logResult(log, err) }()

	s.authMu.Lock()
	defer s.authMu.Unlock()

	identity, publicKey, rotationHash, err := s.initializeAuthentication(ctx, &recoveryHash, "")
	if err != nil {
		return err
	}
	device, err := s.hasher.Sum(publicKey)
	if err != nil {
		return err
	}
	signer, err := s.authenticationKeys.Signer(ctx)
	if err != nil {
		return err
	}

	body := models.CreateAccountBody{Authentication: models.Authentication{
		Device:       device,
		Identity:     identity,
		PublicKey:    publicKey,
		RecoveryHash: recoveryHash,
		RotationHash: rotationHash,
	}}
	if _, err = exchange[models.CreateAccountBody, models.EmptyResult](ctx, s, s.paths.Account.Create, body, signer); err != nil {
		return err
	}

	return s.storeIdentifiers(ctx, identity, device)
}

func (s *clientAuthService) RecoverAccount(ctx context.Context, identity string, recoveryKey crypto.SigningKey, recoveryHash string) (err error) {
	log := s.logger.WithOp("RecoverAccount")
	defer func() { logResult(log, err) }()

	if recoveryKey == nil {
		return ErrNilRecoveryKey
	}

	s.authMu.Lock()
	defer s.authMu.Unlock()

	_, publicKey, rotationHash, err := s.initializeAuthentication(ctx, nil, "")
	if err != nil {
		return err
	}
	device, err := s.hasher.Sum(publicKey)
	if err != nil {
		return err
	}
	recoveryPublicKey, err := recoveryKey.Public()
	if err != nil {
		return err
	}

	body := models.RecoverAccountBody{Authentication: models.Authentication{
		Device:       device,
		Identity:     identity,
		PublicKey:    publicKey,
		RecoveryHash: recoveryHash,
		RecoveryKey:  recoveryPublicKey,
		RotationHash: rotationHash,
	}}
	if _, err = exchange[models.RecoverAccountBody, models.EmptyResult](ctx, s, s.paths.Account.Recover, body, recoveryKey); err != nil {
		return err
	}

	return s.storeIdentifiers(ctx, identity, device)
}

func (s *clientAuthService) ChangeRecoveryKey(ctx context.Context, recoveryHash string) (err error) {
	log := s.logger.WithOp("ChangeRecoveryKey")
	defer func() { logResult(log, err) }()

	return rotateAuthentication(ctx, s, s.paths.Recovery.Change, func(auth models.Authentication) (models.ChangeRecoveryKeyBody, error) {
		auth.RecoveryHash = recoveryHash
		return models.ChangeRecoveryKeyBody{Authentication: auth}, nil
	})
}

func (s *clientAuthService) DeleteAccount(ctx context.Context) (err error) {
	log := s.logger.WithOp("DeleteAccount")
	defer func() { logResult(log, err) }()

	return rotateAuthentication(ctx, s, s.paths.Account.Delete, func(auth models.Authentication) (models.DeleteAccountBody, error) {
		return models.DeleteAccountBody{Authentication: auth}, nil
	})
}

func (s *clientAuthService) storeIdentifiers(ctx context.Context, identity, device string) error {
	if err := s.identities.Store(ctx, identity); err != nil {
		return err
	}
	return s.devices.Store(ctx, device)
}

// initializeAuthentication starts the authentication chain. A chain that is
// already held and never rotated is resumed when the stored identity is the
// expected one: none for a registration, the target for a link container.
// The earlier attempt lost its reply, so the same keys are announced again.
func (s *clientAuthService) initializeAuthentication(ctx context.Context, extraData *string, expectedIdentity string) (string, string, string, error) {
	identity, publicKey, rotationHash, err := s.authenticationKeys.Initialize(ctx, extraData)
	if !errors.Is(err, autherr.ErrInvalidState) {
		return identity, publicKey, rotationHash, err
	}

	stored, getErr := s.identities.Get(ctx)
	switch {
	case expectedIdentity == "" && errors.Is(getErr, autherr.ErrNotFound):
	case expectedIdentity != "" && getErr == nil && stored == expectedIdentity:
	default:
		return "", "", "", err
	}

	s.logger.Debug().Msg("resuming authentication chain")
	return s.authenticationKeys.Resume(ctx, extraData)
}

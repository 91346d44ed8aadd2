// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

func (s *clientAuthService) GenerateLinkContainer(ctx context.Context, identity string) (container string, err error) {
	log := s.logger.WithOp("GenerateLinkContainer")
	defer func() { logResult(log, err) }()

	s.authMu.Lock()
	defer s.authMu.Unlock()

	_, publicKey, rotationHash, err := s.initializeAuthentication(ctx, nil, identity)
	if err != nil {
		return "", err
	}
	device, err := s.hasher.Sum(publicKey)
	if err != nil {
		return "", err
	}

	if err = s.storeIdentifiers(ctx, identity, device); err != nil {
		return "", err
	}

	signer, err := s.authenticationKeys.Signer(ctx)
	if err != nil {
		return "", err
	}

	linkContainer := message.NewLinkContainer(models.Authentication{
		Device:       device,
		Identity:     identity,
		PublicKey:    publicKey,
		RotationHash: rotationHash,
	})
	if err = linkContainer.Sign(signer); err != nil {
		return "", err
	}

	return linkContainer.Serialize()
}

// LinkDevice checks the container before anything is staged: it must be
// signed by the key it announces, that key must hash to the announced device
// and the identity must be ours.
func (s *clientAuthService) LinkDevice(ctx context.Context, container string) (err error) {
	log := s.logger.WithOp("LinkDevice")
	defer func() { logResult(log, err) }()

	linkContainer, err := message.ParseLinkContainer(container)
	if err != nil {
		return err
	}
	link, err := s.checkLinkContainer(ctx, linkContainer)
	if err != nil {
		return err
	}

	return rotateAuthentication(ctx, s, s.paths.Device.Link, func(auth models.Authentication) (models.LinkDeviceBody, error) {
		return models.LinkDeviceBody{Authentication: auth, Link: link}, nil
	})
}

func (s *clientAuthService) checkLinkContainer(ctx context.Context, container *message.LinkContainer) (json.RawMessage, error) {
	auth := container.Authentication()

	if err := container.Verify(s.verifier, auth.PublicKey); err != nil {
		return nil, err
	}

	device, err := s.hasher.Sum(auth.PublicKey)
	if err != nil {
		return nil, err
	}
	if device != auth.Device {
		return nil, autherr.ErrInvalidDevice.With("device", auth.Device)
	}

	identity, err := s.identities.Get(ctx)
	if err != nil {
		return nil, err
	}
	if auth.Identity != identity {
		return nil, autherr.MismatchedIdentities(auth.Identity, identity)
	}

	return container.Embed()
}

func (s *clientAuthService) UnlinkDevice(ctx context.Context, device string) (err error) {
	log := s.logger.WithOp("UnlinkDevice")
	defer func() { logResult(log, err) }()

	return rotateAuthentication(ctx, s, s.paths.Device.Unlink, func(auth models.Authentication) (models.UnlinkDeviceBody, error) {
		if device == auth.Device {
			poisoned, err := s.hasher.Sum(auth.RotationHash)
			if err != nil {
				return models.UnlinkDeviceBody{}, err
			}
			auth.RotationHash = poisoned
		}
		return models.UnlinkDeviceBody{Authentication: auth, Link: models.LinkedDevice{Device: device}}, nil
	})
}

func (s *clientAuthService) RotateDevice(ctx context.Context) (err error) {
	log := s.logger.WithOp("RotateDevice")
	defer func() { logResult(log, err) }()

	return rotateAuthentication(ctx, s, s.paths.Device.Rotate, func(auth models.Authentication) (models.RotateDeviceBody, error) {
		return models.RotateDeviceBody{Authentication: auth}, nil
	})
}

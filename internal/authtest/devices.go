// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

func (s *Server) rotateDevice(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.RotateDeviceBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication

	s.mu.Lock()
	defer s.mu.Unlock()

	_, dev, replay, err := s.checkRotation(request, auth)
	if err != nil {
		return "", nil, err
	}
	if !replay {
		rotate(dev, auth)
	}

	return request.Nonce(), models.EmptyResult{}, nil
}

// linkDevice admits the device described by the embedded container. The
// container must be self-signed, name our identity and carry a device id
// derived from its key.
func (s *Server) linkDevice(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.LinkDeviceBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication

	container, err := message.ParseLinkContainer(string(request.Request().Link))
	if err != nil {
		return "", nil, err
	}
	linked := container.Authentication()
	if err = container.Verify(s.verifier, linked.PublicKey); err != nil {
		return "", nil, err
	}
	if err = s.checkDevice(linked); err != nil {
		return "", nil, err
	}
	if linked.Identity != auth.Identity {
		return "", nil, autherr.MismatchedIdentities(linked.Identity, auth.Identity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, dev, replay, err := s.checkRotation(request, auth)
	if err != nil {
		return "", nil, err
	}
	if existing, ok := acc.devices[linked.Device]; ok {
		if replay && existing.publicKey == linked.PublicKey {
			return request.Nonce(), models.EmptyResult{}, nil
		}
		return "", nil, autherr.ErrAlreadyExists.With("device", linked.Device)
	}

	if !replay {
		rotate(dev, auth)
	}
	acc.devices[linked.Device] = &device{publicKey: linked.PublicKey, rotationHash: linked.RotationHash}

	s.logger.Debug().Str("identity", auth.Identity).Str("device", linked.Device).Msg("device linked")
	return request.Nonce(), models.EmptyResult{}, nil
}

func (s *Server) unlinkDevice(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.UnlinkDeviceBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication
	target := request.Request().Link.Device

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, dev, replay, err := s.checkRotation(request, auth)
	if err != nil {
		return "", nil, err
	}
	if _, ok := acc.devices[target]; !ok {
		if replay {
			return request.Nonce(), models.EmptyResult{}, nil
		}
		return "", nil, autherr.ErrNotFound.With("device", target)
	}

	if !replay {
		rotate(dev, auth)
	}
	delete(acc.devices, target)

	s.logger.Debug().Str("identity", auth.Identity).Str("device", target).Msg("device unlinked")
	return request.Nonce(), models.EmptyResult{}, nil
}

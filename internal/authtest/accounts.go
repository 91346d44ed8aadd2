// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"context"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/models"
)

// account is the server view of one identity. Each linked device holds its
// current authentication key and the hash committing to the next one.
type account struct {
	recoveryHash string
	devices      map[string]*device
}

type device struct {
	publicKey    string
	rotationHash string
}

type verifiable interface {
	Verify(verifier message.Verifier, publicKey string) error
}

func (s *Server) checkDevice(auth models.Authentication) error {
	device, err := s.hasher.Sum(auth.PublicKey)
	if err != nil {
		return err
	}
	if device != auth.Device {
		return autherr.ErrInvalidDevice.With("device", auth.Device)
	}
	return nil
}

// checkRotation proves the request comes from a linked device holding the
// key its previous rotation hash committed to. The caller holds s.mu and
// applies the rotation once every other check has passed.
//
// A request signed by the device's current key that names its current
// rotation hash is a retry of a rotation already applied. It is verified and
// reported as a replay so the caller answers without rotating twice.
func (s *Server) checkRotation(request verifiable, auth models.Authentication) (*account, *device, bool, error) {
	acc, ok := s.accounts[auth.Identity]
	if !ok {
		return nil, nil, false, autherr.ErrNotFound.With("identity", auth.Identity)
	}
	dev, ok := acc.devices[auth.Device]
	if !ok {
		return nil, nil, false, autherr.ErrDeviceRevoked.With("device", auth.Device)
	}

	if auth.PublicKey == dev.publicKey && auth.RotationHash == dev.rotationHash {
		if err := request.Verify(s.verifier, auth.PublicKey); err != nil {
			return nil, nil, false, err
		}
		return acc, dev, true, nil
	}

	hash, err := s.hasher.Sum(auth.PublicKey)
	if err != nil {
		return nil, nil, false, err
	}
	if hash != dev.rotationHash {
		return nil, nil, false, autherr.InvalidHash(dev.rotationHash, hash, "rotation")
	}

	if err = request.Verify(s.verifier, auth.PublicKey); err != nil {
		return nil, nil, false, err
	}
	return acc, dev, false, nil
}

// settledBy reports whether the account is exactly what a create or recover
// request carrying auth leaves behind.
func (acc *account) settledBy(auth models.Authentication) bool {
	if acc.recoveryHash != auth.RecoveryHash || len(acc.devices) != 1 {
		return false
	}
	dev, ok := acc.devices[auth.Device]
	return ok && dev.publicKey == auth.PublicKey && dev.rotationHash == auth.RotationHash
}

func rotate(dev *device, auth models.Authentication) {
	dev.publicKey = auth.PublicKey
	dev.rotationHash = auth.RotationHash
}

func (s *Server) createAccount(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.CreateAccountBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication

	if err = request.Verify(s.verifier, auth.PublicKey); err != nil {
		return "", nil, err
	}
	if err = s.checkDevice(auth); err != nil {
		return "", nil, err
	}

	identity, err := s.hasher.Sum(auth.PublicKey + auth.RotationHash + auth.RecoveryHash)
	if err != nil {
		return "", nil, err
	}
	if identity != auth.Identity {
		return "", nil, autherr.ErrInvalidIdentity.With("identity", auth.Identity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.accounts[identity]; ok {
		if acc.settledBy(auth) {
			return request.Nonce(), models.EmptyResult{}, nil
		}
		return "", nil, autherr.ErrAlreadyExists.With("identity", identity)
	}
	s.accounts[identity] = &account{
		recoveryHash: auth.RecoveryHash,
		devices: map[string]*device{
			auth.Device: {publicKey: auth.PublicKey, rotationHash: auth.RotationHash},
		},
	}

	s.logger.Debug().Str("identity", identity).Msg("account created")
	return request.Nonce(), models.EmptyResult{}, nil
}

// recoverAccount replaces every device with the one in the request and moves
// the recovery commitment forward. Create and recover both answer a repeat of
// the request that already settled the account.
func (s *Server) recoverAccount(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.RecoverAccountBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication

	if err = request.Verify(s.verifier, auth.RecoveryKey); err != nil {
		return "", nil, err
	}
	if err = s.checkDevice(auth); err != nil {
		return "", nil, err
	}
	recoveryHash, err := s.hasher.Sum(auth.RecoveryKey)
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[auth.Identity]
	if !ok {
		return "", nil, autherr.ErrNotFound.With("identity", auth.Identity)
	}
	if recoveryHash != acc.recoveryHash {
		if acc.settledBy(auth) {
			return request.Nonce(), models.EmptyResult{}, nil
		}
		return "", nil, autherr.InvalidHash(acc.recoveryHash, recoveryHash, "recovery")
	}

	acc.recoveryHash = auth.RecoveryHash
	acc.devices = map[string]*device{
		auth.Device: {publicKey: auth.PublicKey, rotationHash: auth.RotationHash},
	}

	s.logger.Debug().Str("identity", auth.Identity).Msg("account recovered")
	return request.Nonce(), models.EmptyResult{}, nil
}

func (s *Server) deleteAccount(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.DeleteAccountBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, _, err = s.checkRotation(request, auth); err != nil {
		return "", nil, err
	}
	delete(s.accounts, auth.Identity)

	s.logger.Debug().Str("identity", auth.Identity).Msg("account deleted")
	return request.Nonce(), models.EmptyResult{}, nil
}

func (s *Server) changeRecoveryKey(_ context.Context, body string) (string, any, error) {
	request, err := message.ParseClientRequest[models.ChangeRecoveryKeyBody](body)
	if err != nil {
		return "", nil, err
	}
	auth := request.Request().Authentication
	if auth.RecoveryHash == "" {
		return "", nil, autherr.InvalidMessage("authentication.recoveryHash", "missing")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, dev, replay, err := s.checkRotation(request, auth)
	if err != nil {
		return "", nil, err
	}
	if !replay {
		rotate(dev, auth)
	}
	acc.recoveryHash = auth.RecoveryHash

	return request.Nonce(), models.EmptyResult{}, nil
}

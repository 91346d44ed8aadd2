// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-better-auth/internal/adapter"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/keystore"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/store"
	"github.com/MKhiriev/go-better-auth/models"
)

// Deps are the collaborators of [NewClientAuthService]. Every field except
// Logger is required.
type Deps struct {
	Hasher      crypto.Hasher
	Noncer      crypto.Noncer
	Timestamper encoding.Timestamper

	// Verifier checks link container self-signatures and gives the server
	// signature length used to split access tokens.
	Verifier     crypto.Verifier
	TokenEncoder encoding.TokenEncoder

	// VerificationKeys resolves the serverIdentity named in every response.
	VerificationKeys store.VerificationKeyStore
	Network          adapter.Network
	Paths            models.Paths

	Identities   store.ClientValueStore
	Devices      store.ClientValueStore
	AccessTokens store.ClientValueStore

	AuthenticationKeys keystore.KeyStore
	// NewAccessKeys builds an empty access key store. Every session gets a
	// chain of its own, swapped in once the server has accepted it.
	NewAccessKeys func() keystore.KeyStore

	Logger *logger.Logger
}

type clientAuthService struct {
	hasher       crypto.Hasher
	noncer       crypto.Noncer
	timestamper  encoding.Timestamper
	verifier     crypto.Verifier
	tokenEncoder encoding.TokenEncoder

	verificationKeys store.VerificationKeyStore
	network          adapter.Network
	paths            models.Paths

	identities   store.ClientValueStore
	devices      store.ClientValueStore
	accessTokens store.ClientValueStore

	// authMu and accessMu serialize flows per key store. A flow needing both
	// takes authMu first.
	authMu             sync.Mutex
	authenticationKeys keystore.KeyStore
	accessMu           sync.Mutex
	accessKeys         keystore.KeyStore
	newAccessKeys      func() keystore.KeyStore

	logger *logger.Logger
}

// NewClientAuthService validates deps and builds the protocol engine.
func NewClientAuthService(deps Deps) (ClientAuthService, error) {
	required := []struct {
		name string
		dep  any
	}{
		{"Hasher", deps.Hasher},
		{"Noncer", deps.Noncer},
		{"Timestamper", deps.Timestamper},
		{"Verifier", deps.Verifier},
		{"TokenEncoder", deps.TokenEncoder},
		{"VerificationKeys", deps.VerificationKeys},
		{"Network", deps.Network},
		{"Identities", deps.Identities},
		{"Devices", deps.Devices},
		{"AccessTokens", deps.AccessTokens},
		{"AuthenticationKeys", deps.AuthenticationKeys},
	}
	for _, r := range required {
		if r.dep == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilDependency, r.name)
		}
	}
	if deps.NewAccessKeys == nil {
		return nil, fmt.Errorf("%w: NewAccessKeys", ErrNilDependency)
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &clientAuthService{
		hasher:             deps.Hasher,
		noncer:             deps.Noncer,
		timestamper:        deps.Timestamper,
		verifier:           deps.Verifier,
		tokenEncoder:       deps.TokenEncoder,
		verificationKeys:   deps.VerificationKeys,
		network:            deps.Network,
		paths:              deps.Paths,
		identities:         deps.Identities,
		devices:            deps.Devices,
		accessTokens:       deps.AccessTokens,
		authenticationKeys: deps.AuthenticationKeys,
		accessKeys:         deps.NewAccessKeys(),
		newAccessKeys:      deps.NewAccessKeys,
		logger:             log.GetChildLogger(),
	}, nil
}

func (s *clientAuthService) Identity(ctx context.Context) (string, error) {
	return s.identities.Get(ctx)
}

func (s *clientAuthService) Device(ctx context.Context) (string, error) {
	return s.devices.Get(ctx)
}

// logResult closes a flow's log. Only the outcome is logged: keys, signatures
// and tokens never reach the log.
func logResult(log *logger.Logger, err error) {
	if err != nil {
		log.Error().Err(err).Msg("flow failed")
		return
	}
	log.Debug().Msg("flow completed")
}

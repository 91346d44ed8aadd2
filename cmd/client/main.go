// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-better-auth/internal/adapter"
	"github.com/MKhiriev/go-better-auth/internal/app"
	"github.com/MKhiriev/go-better-auth/internal/client"
	"github.com/MKhiriev/go-better-auth/internal/config"
	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/keystore"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/service"
	"github.com/MKhiriev/go-better-auth/internal/store"
	"github.com/MKhiriev/go-better-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, app.MessageFor(err))
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("go-better-auth-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	network, err := adapter.NewHTTPNetwork(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create network adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	hasher := crypto.NewBlake3Hasher()
	verifier := crypto.NewMultiVerifier()

	responseKey := cfg.Adapter.ResponseKey
	if responseKey == "" {
		if responseKey, err = network.FetchResponseKey(ctx, cfg.Adapter.ResponseKeyPath); err != nil {
			return fmt.Errorf("fetch response key: %w", err)
		}
	}
	verificationKeys := store.NewMemoryVerificationKeyStore()
	serverIdentity, err := verificationKeys.Add(hasher, crypto.NewStaticVerificationKey(responseKey, verifier))
	if err != nil {
		return fmt.Errorf("register response key: %w", err)
	}
	log.Debug().Str("server_identity", serverIdentity).Msg("response key registered")

	services, err := service.NewClientServices(service.Deps{
		Hasher:             hasher,
		Noncer:             crypto.NewNoncer(),
		Timestamper:        encoding.NewRfc3339Nano(),
		Verifier:           verifier,
		TokenEncoder:       encoding.NewGzipTokenEncoder(),
		VerificationKeys:   verificationKeys,
		Network:            network,
		Paths:              cfg.Paths,
		Identities:         storages.Identity,
		Devices:            storages.Device,
		AccessTokens:       storages.AccessToken,
		AuthenticationKeys: keystore.New(hasher, crypto.Secp256r1Generator{}),
		NewAccessKeys:      func() keystore.KeyStore {
			return keystore.New(hasher, crypto.Secp256r1Generator{})
		},
		Logger:             log,
	}, cfg.Workers.RefreshInterval)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	return client.NewApp(services, hasher, os.Stdout, log).Run(ctx, cfg.Command)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-better-auth/models"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the auth server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RequestsPerSecond paces outbound requests; zero disables pacing.
	RequestsPerSecond float64
	// ResponseKey is the pinned server response key, if any.
	ResponseKey string
	// ResponseKeyPath serves the response key when it is not pinned.
	ResponseKeyPath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path; empty selects in-memory stores.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the session refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Paths   models.Paths
	Workers ClientWorkers

	// Command holds the positional arguments: the command name followed by
	// its operands.
	Command []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the process arguments without
// the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.client()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) client() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			RequestsPerSecond: cfg.Adapter.RequestsPerSecond,
			ResponseKey:       cfg.Adapter.ResponseKey,
			ResponseKeyPath:   cfg.Adapter.ResponseKeyPath,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Paths:   cfg.Paths.model(),
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Command: cfg.Args,
	}
}

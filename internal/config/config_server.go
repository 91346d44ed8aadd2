// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-better-auth/models"
)

// ServerConfig is the reference server view of [StructuredConfig]. The server
// serves the same route table the client is configured with.
type ServerConfig struct {
	LogLevel        string
	ListenAddress   string
	AccessLifetime  time.Duration
	RefreshLifetime time.Duration
	Paths           models.Paths
}

// GetServerConfig builds and validates the reference server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		LogLevel:        cfg.App.LogLevel,
		ListenAddress:   cfg.Server.ListenAddress,
		AccessLifetime:  cfg.Server.AccessLifetime,
		RefreshLifetime: cfg.Server.RefreshLifetime,
		Paths:           cfg.Paths.model(),
	}
	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.ListenAddress == "" || cfg.AccessLifetime <= 0 || cfg.RefreshLifetime < cfg.AccessLifetime {
		return ErrInvalidServerConfigs
	}
	if missing := cfg.Paths.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidPathsConfigs, strings.Join(missing, ", "))
	}
	return nil
}

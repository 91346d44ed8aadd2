// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-better-auth/internal/authtest"
	"github.com/MKhiriev/go-better-auth/internal/config"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/server"
	"github.com/MKhiriev/go-better-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("go-better-auth-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	srv, err := authtest.NewServer(log,
		authtest.WithPaths(cfg.Paths),
		authtest.WithLifetimes(cfg.AccessLifetime, cfg.RefreshLifetime),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth server")
	}
	log.Info().
		Str("identity", srv.Identity()).
		Str("response_key", srv.ResponseKey()).
		Msg("response key generated")

	httpServer, err := server.NewServer(srv.Init(), cfg.ListenAddress, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http server")
	}

	if err = httpServer.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-better-auth/internal/logger"
)

type server struct {
	httpServer *httpServer

	mu   sync.Mutex
	stop context.CancelFunc

	logger *logger.Logger
}

func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errEmptyAddress
	}
	if handler == nil {
		return nil, errNilHandler
	}

	logger.Info().Str("address", address).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, address, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or Shutdown is
// called, then drains open connections.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() { serveErr <- s.httpServer.RunServer() }()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.httpServer.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return <-serveErr
}

// Shutdown makes a running RunServer return. It is a no-op before RunServer.
func (s *server) Shutdown() {
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

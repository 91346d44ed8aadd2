// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authtest is an in-memory better-auth server. It verifies every
// client message the way a production deployment would and signs its replies
// with a P-256 response key, so client flows can be exercised end to end
// against httptest or the cmd/server binary.
package authtest

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/crypto"
	"github.com/MKhiriev/go-better-auth/internal/encoding"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// ResponseKeyPath serves the public response key.
	ResponseKeyPath = "/key/response"
	// EchoPath is the sample resource guarded by access tokens.
	EchoPath = "/foo/bar"
	// BadNoncePath behaves like EchoPath but answers with a fresh nonce.
	BadNoncePath = "/bad/nonce"

	defaultAccessLifetime  = 15 * time.Minute
	defaultRefreshLifetime = 12 * time.Hour
	defaultClockTolerance  = 5 * time.Second
)

type Server struct {
	hasher       crypto.Hasher
	verifier     crypto.Verifier
	noncer       crypto.Noncer
	timestamper  encoding.Timestamper
	tokenEncoder encoding.TokenEncoder

	responseKey    crypto.SigningKey
	responsePublic string
	identity       string

	paths           models.Paths
	accessLifetime  time.Duration
	refreshLifetime time.Duration
	tolerance       time.Duration

	mu         sync.Mutex
	accounts   map[string]*account
	challenges map[string]string
	refreshed  map[string]string
	seenNonces map[string]struct{}

	logger *logger.Logger
}

type Option func(*Server)

// WithPaths replaces the default route table.
func WithPaths(paths models.Paths) Option {
	return func(s *Server) { s.paths = paths }
}

// WithLifetimes sets how long access tokens stay valid and how long a session
// may be refreshed.
func WithLifetimes(access, refresh time.Duration) Option {
	return func(s *Server) {
		s.accessLifetime = access
		s.refreshLifetime = refresh
	}
}

// WithClock replaces the wall clock used for tokens and request freshness.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) { s.timestamper = encoding.NewFixedRfc3339Nano(clock) }
}

// NewServer generates a fresh response key. The server identity is the
// Blake3 digest of its public half.
func NewServer(log *logger.Logger, opts ...Option) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}

	responseKey, err := crypto.NewSecp256r1()
	if err != nil {
		return nil, err
	}

	s := &Server{
		hasher:          crypto.NewBlake3Hasher(),
		verifier:        crypto.NewMultiVerifier(),
		noncer:          crypto.NewNoncer(),
		timestamper:     encoding.NewRfc3339Nano(),
		tokenEncoder:    encoding.NewGzipTokenEncoder(),
		responseKey:     responseKey,
		paths:           models.DefaultPaths(),
		accessLifetime:  defaultAccessLifetime,
		refreshLifetime: defaultRefreshLifetime,
		tolerance:       defaultClockTolerance,
		accounts:        make(map[string]*account),
		challenges:      make(map[string]string),
		refreshed:       make(map[string]string),
		seenNonces:      make(map[string]struct{}),
		logger:          log.GetChildLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.responsePublic, err = responseKey.Public(); err != nil {
		return nil, err
	}
	if s.identity, err = s.hasher.Sum(s.responsePublic); err != nil {
		return nil, err
	}

	s.logger.Info().Str("server_identity", s.identity).Msg("reference server created")
	return s, nil
}

// ResponseKey returns the public key that signs every reply.
func (s *Server) ResponseKey() string {
	return s.responsePublic
}

func (s *Server) Identity() string {
	return s.identity
}

// VerificationKey returns the response key in the form clients store it.
func (s *Server) VerificationKey() crypto.VerificationKey {
	return crypto.NewStaticVerificationKey(s.responsePublic, crypto.Secp256r1Verifier{})
}

// Init builds the router. Every protocol route accepts POST only.
func (s *Server) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID, s.withLogging, withGZip)

	router.Post(ResponseKeyPath, s.responseKeyHandler)

	router.Post(s.paths.Account.Create, s.handle(s.createAccount))
	router.Post(s.paths.Account.Recover, s.handle(s.recoverAccount))
	router.Post(s.paths.Account.Delete, s.handle(s.deleteAccount))

	router.Post(s.paths.Session.Request, s.handle(s.requestSession))
	router.Post(s.paths.Session.Create, s.handle(s.createSession))
	router.Post(s.paths.Session.Refresh, s.handle(s.refreshSession))

	router.Post(s.paths.Device.Rotate, s.handle(s.rotateDevice))
	router.Post(s.paths.Device.Link, s.handle(s.linkDevice))
	router.Post(s.paths.Device.Unlink, s.handle(s.unlinkDevice))

	router.Post(s.paths.Recovery.Change, s.handle(s.changeRecoveryKey))

	router.Post(EchoPath, s.handle(s.echo))
	router.Post(BadNoncePath, s.handle(s.badNonce))

	router.MethodNotAllowed(checkHTTPMethod(router))

	return router
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/adapter"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withRequestID attaches a request-scoped logger tagged with the client's
// request id, generating one when the header is absent, and echoes it back.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(adapter.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := utils.WithRequestID(l.WithContext(r.Context()), requestID)

		w.Header().Set(adapter.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

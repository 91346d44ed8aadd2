// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/message"
	"github.com/MKhiriev/go-better-auth/internal/utils"
)

// protocolHandler verifies one client message and returns the request nonce
// to echo with the response body.
type protocolHandler func(ctx context.Context, body string) (nonce string, response any, err error)

func (s *Server) handle(h protocolHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("error reading request body")
			http.Error(w, "error reading request body", http.StatusBadRequest)
			return
		}

		nonce, response, err := h(r.Context(), string(body))
		if err != nil {
			log.Err(err).Msg("request rejected")
			utils.WriteJSON(w, errorBody{Code: autherr.CodeOf(err), Message: err.Error()}, statusOf(err))
			return
		}

		reply, err := s.respond(nonce, response)
		if err != nil {
			log.Err(err).Msg("error signing response")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		utils.WriteMessage(w, reply, http.StatusOK)
	}
}

func (s *Server) respond(nonce string, response any) (string, error) {
	reply := message.NewServerResponse(response, s.identity, nonce)
	if err := reply.Sign(s.responseKey); err != nil {
		return "", err
	}
	return reply.Serialize()
}

func (s *Server) responseKeyHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, s.responsePublic, http.StatusOK)
}

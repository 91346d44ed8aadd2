// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-better-auth/internal/message"
)

// MakeAccessRequest signs request with the current access key under the
// stored token. The access lock covers signing only: nothing is staged, so
// the network round-trip runs unlocked.
func (s *clientAuthService) MakeAccessRequest(ctx context.Context, path string, request any) (reply string, err error) {
	log := s.logger.WithOp("MakeAccessRequest")
	defer func() { logResult(log, err) }()
	log.Debug().Str("path", path).Msg("sending access request")

	serialized, nonce, err := s.signAccessRequest(ctx, request)
	if err != nil {
		return "", err
	}

	reply, err = s.network.SendRequest(ctx, path, serialized)
	if err != nil {
		return "", err
	}
	if _, err = verifyResponse[json.RawMessage](ctx, s, reply, nonce); err != nil {
		return "", err
	}

	return reply, nil
}

func (s *clientAuthService) signAccessRequest(ctx context.Context, request any) (string, string, error) {
	token, err := s.accessTokens.Get(ctx)
	if err != nil {
		return "", "", err
	}
	nonce, err := s.noncer.Generate128()
	if err != nil {
		return "", "", err
	}
	timestamp := s.timestamper.Format(s.timestamper.Now())

	s.accessMu.Lock()
	defer s.accessMu.Unlock()

	signer, err := s.accessKeys.Signer(ctx)
	if err != nil {
		return "", "", err
	}

	accessRequest := message.NewAccessRequest(request, nonce, timestamp, token)
	if err = accessRequest.Sign(signer); err != nil {
		return "", "", err
	}
	serialized, err := accessRequest.Serialize()
	if err != nil {
		return "", "", err
	}
	return serialized, nonce, nil
}

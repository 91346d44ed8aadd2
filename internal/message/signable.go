// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package message

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

// Signer produces a signature over a composed payload.
type Signer interface {
	Sign(message string) (string, error)
}

// Verifier checks a signature against a public key.
type Verifier interface {
	Verify(message, signature, publicKey string) error
}

// Signable is a payload with an optional signature.
type Signable[P any] struct {
	Payload   P
	Signature *string

	// raw holds the payload bytes exactly as received, when parsed.
	raw string
}

// ComposePayload returns the text a signature covers.
func (s *Signable[P]) ComposePayload() (string, error) {
	if s.raw != "" {
		return s.raw, nil
	}
	return ComposePayload(s.Payload)
}

// Sign signs the composed payload and stores the signature.
func (s *Signable[P]) Sign(signer Signer) error {
	payload, err := s.ComposePayload()
	if err != nil {
		return err
	}

	signature, err := signer.Sign(payload)
	if err != nil {
		return fmt.Errorf("sign payload: %w", err)
	}

	s.Signature = &signature
	return nil
}

// Serialize emits {"payload":<payload>,"signature":"<sig>"}.
func (s *Signable[P]) Serialize() (string, error) {
	if s.Signature == nil {
		return "", autherr.InvalidMessage("signature", "message is not signed")
	}

	payload, err := s.ComposePayload()
	if err != nil {
		return "", err
	}
	signature, err := json.Marshal(*s.Signature)
	if err != nil {
		return "", autherr.Serialization(err)
	}

	var b strings.Builder
	b.Grow(len(payload) + len(signature) + 26)
	b.WriteString(`{"payload":`)
	b.WriteString(payload)
	b.WriteString(`,"signature":`)
	b.Write(signature)
	b.WriteByte('}')

	return b.String(), nil
}

// Verify checks the signature over the composed payload against publicKey.
func (s *Signable[P]) Verify(verifier Verifier, publicKey string) error {
	if s.Signature == nil {
		return autherr.InvalidMessage("signature", "message is not signed")
	}

	payload, err := s.ComposePayload()
	if err != nil {
		return err
	}

	if err = verifier.Verify(payload, *s.Signature, publicKey); err != nil {
		return autherr.SignatureInvalid(err)
	}
	return nil
}

// envelope is the wire shape of every message.
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	Signature *string         `json:"signature"`
}

// parseSignable decodes the envelope and the typed payload, keeping the raw
// payload bytes for verification.
func parseSignable[P any](messageType, message string) (*Signable[P], error) {
	var env envelope
	if err := json.Unmarshal([]byte(message), &env); err != nil {
		return nil, autherr.Deserialization(messageType, err)
	}
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return nil, autherr.Deserialization(messageType, errMissing("payload"))
	}

	var payload P
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return nil, autherr.Deserialization(messageType, err)
	}

	return &Signable[P]{
		Payload:   payload,
		Signature: env.Signature,
		raw:       string(env.Payload),
	}, nil
}

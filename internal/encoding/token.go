// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoding

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/models"
)

// MaxTokenSize caps the decompressed size of a token body.
const MaxTokenSize = 64 << 10

// ErrTokenTooLarge is wrapped when a token body inflates past MaxTokenSize.
var ErrTokenTooLarge = fmt.Errorf("token exceeds %d bytes", MaxTokenSize)

// GzipTokenEncoder gzips token JSON and encodes it as unpadded base64url.
type GzipTokenEncoder struct {
	level int
}

func NewGzipTokenEncoder() *GzipTokenEncoder {
	return &GzipTokenEncoder{level: gzip.BestCompression}
}

// Encode implements [TokenEncoder].
func (g *GzipTokenEncoder) Encode(object string) (string, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, g.level)
	if err != nil {
		return "", autherr.ErrCompression.Wrap(err)
	}
	if _, err = w.Write([]byte(object)); err != nil {
		return "", autherr.ErrCompression.Wrap(err)
	}
	if err = w.Close(); err != nil {
		return "", autherr.ErrCompression.Wrap(err)
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode implements [TokenEncoder].
func (g *GzipTokenEncoder) Decode(raw string) (string, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", autherr.Deserialization("token", err)
	}

	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", autherr.ErrCompression.Wrap(err)
	}
	defer r.Close()

	object, err := io.ReadAll(io.LimitReader(r, MaxTokenSize+1))
	if err != nil {
		return "", autherr.ErrCompression.Wrap(err)
	}
	if len(object) > MaxTokenSize {
		return "", autherr.ErrCompression.Wrap(ErrTokenTooLarge)
	}
	return string(object), nil
}

// ParseAccessToken splits a bearer string into the server signature (the
// first signatureLength characters) and the encoded token body, then decodes
// the body.
func ParseAccessToken(raw string, signatureLength int, encoder TokenEncoder) (*models.SignedAccessToken, error) {
	if len(raw) <= signatureLength {
		return nil, autherr.ErrInvalidToken.With("reason", "token shorter than signature")
	}

	signature, encoded := raw[:signatureLength], raw[signatureLength:]
	object, err := encoder.Decode(encoded)
	if err != nil {
		return nil, err
	}

	var token models.AccessToken
	if err = json.Unmarshal([]byte(object), &token); err != nil {
		return nil, autherr.Deserialization("access token", err)
	}
	if token.Identity == "" || token.PublicKey == "" || token.Expiry == "" {
		return nil, autherr.ErrInvalidToken.With("reason", "missing required fields")
	}

	return &models.SignedAccessToken{
		AccessToken: token,
		Signature:   signature,
		Raw:         object,
	}, nil
}

// SerializeAccessToken signs the token JSON and produces the bearer string.
// It is the inverse of [ParseAccessToken] and is used by servers.
func SerializeAccessToken(object string, signature string, encoder TokenEncoder) (string, error) {
	encoded, err := encoder.Encode(object)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return signature + encoded, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package message implements the signed envelope exchanged between client and
// server: {"payload": <canonical JSON>, "signature": "<sig>"}.
//
// Signatures always cover the canonical payload text. When a message is parsed
// from the wire, the exact received payload bytes are kept and used for
// verification, so a peer with a slightly different encoder still verifies.
package message

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

// ComposePayload renders v as canonical JSON: object keys sorted at every
// depth, no insignificant whitespace, HTML characters left unescaped and
// numbers kept exactly as written.
func ComposePayload(v any) (string, error) {
	first, err := json.Marshal(v)
	if err != nil {
		return "", autherr.Serialization(err)
	}

	dec := json.NewDecoder(bytes.NewReader(first))
	dec.UseNumber()

	var tree any
	if err = dec.Decode(&tree); err != nil {
		return "", autherr.Serialization(err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err = enc.Encode(tree); err != nil {
		return "", autherr.Serialization(err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Type codes of qualified values.
const (
	codeBlake3Digest   = "E"
	codeSHA3Digest     = "H"
	codeEd25519Key     = "D"
	codeSecp256r1Key   = "1AAI"
	codeSalt128        = "0A"
	codeEd25519Sig     = "0B"
	codeSecp256r1Sig   = "0I"
	secp256r1SigLength = 88
	ed25519SigLength   = 88
)

var ErrMalformedQualifiedValue = errors.New("malformed qualified value")

// qualify prepends lead zero bytes to raw, base64url-encodes the result and
// replaces the leading characters (which encode only zero bits) with code.
func qualify(code string, lead int, raw []byte) string {
	padded := make([]byte, lead+len(raw))
	copy(padded[lead:], raw)

	encoded := base64.URLEncoding.EncodeToString(padded)
	return code + encoded[len(code):]
}

// unqualify reverses qualify. It checks the code, restores the zero prefix
// and strips the lead bytes.
func unqualify(code string, lead int, value string) ([]byte, error) {
	if !strings.HasPrefix(value, code) {
		return nil, fmt.Errorf("%w: expected code %q", ErrMalformedQualifiedValue, code)
	}

	decoded, err := base64.URLEncoding.DecodeString(strings.Repeat("A", len(code)) + value[len(code):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQualifiedValue, err)
	}
	if len(decoded) < lead || !bytes.Equal(decoded[:lead], make([]byte, lead)) {
		return nil, fmt.Errorf("%w: bad lead bytes", ErrMalformedQualifiedValue)
	}

	return decoded[lead:], nil
}

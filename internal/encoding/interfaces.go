// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoding holds the timestamp and token codecs shared by the client
// engine and the reference server.
package encoding

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/encoding_mock.go -package=mock

// Timestamper formats and parses the wall-clock values carried in access
// requests and tokens.
type Timestamper interface {
	Format(when time.Time) string
	Parse(when string) (time.Time, error)
	Now() time.Time
}

// TokenEncoder converts token JSON to its compact bearer form and back.
type TokenEncoder interface {
	Encode(object string) (string, error)
	Decode(raw string) (string, error)
}

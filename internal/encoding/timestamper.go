// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoding

import (
	"time"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

// rfc3339Nano always prints nine fractional digits so timestamps sort
// lexicographically.
const rfc3339Nano = "2006-01-02T15:04:05.000000000Z07:00"

// Rfc3339Nano renders UTC timestamps with nanosecond precision.
type Rfc3339Nano struct {
	clock func() time.Time
}

func NewRfc3339Nano() *Rfc3339Nano {
	return &Rfc3339Nano{clock: time.Now}
}

// NewFixedRfc3339Nano returns a timestamper whose Now is driven by clock.
func NewFixedRfc3339Nano(clock func() time.Time) *Rfc3339Nano {
	return &Rfc3339Nano{clock: clock}
}

func (r *Rfc3339Nano) Format(when time.Time) string {
	return when.UTC().Format(rfc3339Nano)
}

// Parse accepts any RFC 3339 timestamp, with or without fractional seconds.
func (r *Rfc3339Nano) Parse(when string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, when)
	if err != nil {
		return time.Time{}, autherr.Deserialization("timestamp", err)
	}
	return parsed, nil
}

func (r *Rfc3339Nano) Now() time.Time {
	return r.clock()
}

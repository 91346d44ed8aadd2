// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package autherr defines the categorized error type surfaced by every layer
// of the better-auth client.
//
// Each [Error] carries a stable code (e.g. "BA203"), a [Category], a
// human-readable message, and optional structured context. Two errors are
// considered equal by [errors.Is] when their codes match, so callers can test
// against the package-level sentinels regardless of context:
//
//	if errors.Is(err, autherr.ErrIncorrectNonce) {
//	    // stale or spliced response
//	}
package autherr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category groups error codes by the layer that produces them.
type Category int

const (
	CategoryValidation Category = iota + 1
	CategoryCryptographic
	CategoryAuthorization
	CategoryToken
	CategoryTemporal
	CategoryStorage
	CategoryEncoding
	CategoryNetwork
	CategoryProtocol
)

var categoryNames = map[Category]string{
	CategoryValidation:    "validation",
	CategoryCryptographic: "cryptographic",
	CategoryAuthorization: "authorization",
	CategoryToken:         "token",
	CategoryTemporal:      "temporal",
	CategoryStorage:       "storage",
	CategoryEncoding:      "encoding",
	CategoryNetwork:       "network",
	CategoryProtocol:      "protocol",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Error is a categorized protocol error.
type Error struct {
	Code     string
	Category Category
	Message  string
	Context  map[string]any

	// Err is the underlying cause, if any. It is reachable via errors.Unwrap.
	Err error
}

// Error renders "BA203 response nonce does not match request nonce (actual=..., expected=...): cause".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteByte(' ')
	b.WriteString(e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Context[k])
		}
		b.WriteByte(')')
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// With returns a copy of e with key=value added to its context.
func (e *Error) With(key string, value any) *Error {
	out := *e
	out.Context = make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		out.Context[k] = v
	}
	out.Context[key] = value
	return &out
}

// Wrap returns a copy of e whose cause is err.
func (e *Error) Wrap(err error) *Error {
	out := *e
	out.Err = err
	return &out
}

// CategoryOf returns the category of the first *Error in err's chain, or 0.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return 0
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// registry maps every sentinel code to its sentinel.
var registry = map[string]*Error{}

// Lookup returns the sentinel registered under code.
func Lookup(code string) (*Error, bool) {
	e, ok := registry[code]
	return e, ok
}

func newError(code string, category Category, message string) *Error {
	e := &Error{Code: code, Category: category, Message: message}
	registry[code] = e
	return e
}

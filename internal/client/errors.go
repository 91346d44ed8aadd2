// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingOperands = errors.New("missing operands")
	ErrInvalidJSON     = errors.New("request body is not valid JSON")
	ErrInvalidSalt     = errors.New("salt is not valid base64url")
)

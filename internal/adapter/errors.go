// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyAddress     = errors.New("empty address")
	ErrInvalidAddress   = errors.New("address must include host and scheme")
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrEmptyReply       = errors.New("empty reply")
	ErrServerRejected   = errors.New("rejected by server")
)

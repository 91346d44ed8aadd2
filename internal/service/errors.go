// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyAccessToken  = errors.New("response carries no access token")
	ErrEmptySessionNonce = errors.New("response carries no session nonce")
	ErrNilRecoveryKey    = errors.New("recovery key is required")
	ErrNilDependency     = errors.New("missing service dependency")
)

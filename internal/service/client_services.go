// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-better-auth/internal/logger"
)

type ClientServices struct {
	AuthService ClientAuthService
	RefreshJob  SessionRefreshJob
}

func NewClientServices(deps Deps, refreshInterval time.Duration) (*ClientServices, error) {
	authSvc, err := NewClientAuthService(deps)
	if err != nil {
		return nil, err
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &ClientServices{
		AuthService: authSvc,
		RefreshJob:  NewSessionRefreshJob(authSvc, refreshInterval, log),
	}, nil
}

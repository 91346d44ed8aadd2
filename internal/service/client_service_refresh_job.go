// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type sessionRefreshJob struct {
	authService ClientAuthService
	interval    time.Duration
	now         func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionRefreshJob creates a job that calls authService.RefreshSession on
// a ticker. The job is idle until Start or Run is called; interval is the one
// Run uses.
func NewSessionRefreshJob(authService ClientAuthService, interval time.Duration, logger *logger.Logger) SessionRefreshJob {
	return &sessionRefreshJob{
		authService: authService,
		interval:    interval,
		now:         time.Now,
		logger:      logger.WithOp("SessionRefreshJob"),
	}
}

// Start implements SessionRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *sessionRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// refresh skips the tick when there is no session yet or the refresh window
// has closed; a failed refresh is logged and retried on the next tick.
func (j *sessionRefreshJob) refresh(ctx context.Context) {
	token, err := j.authService.AccessToken(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("no usable access token, skipping refresh")
		return
	}
	if !token.Refreshable(j.now()) {
		j.logger.Warn().Str("refresh_expiry", token.RefreshExpiry).Msg("refresh window closed, create a new session")
		return
	}

	if err = j.authService.RefreshSession(ctx); err != nil {
		j.logger.Error().Err(err).Msg("session refresh failed")
		return
	}
	j.logger.Info().Msg("session refreshed")
}

// Stop implements SessionRefreshJob. Safe to call when the job is not
// running.
func (j *sessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements SessionRefreshJob.
func (j *sessionRefreshJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/config"
	"github.com/MKhiriev/go-better-auth/internal/logger"
	"github.com/MKhiriev/go-better-auth/internal/utils"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the id correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// HTTPNetwork is the HTTP implementation of [Network].
type HTTPNetwork struct {
	client     *utils.HTTPClient
	limiter    *rate.Limiter
	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPNetwork normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. A positive
// adapterCfg.RequestsPerSecond paces outbound requests.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPNetwork(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPNetwork, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	var limiter *rate.Limiter
	if adapterCfg.RequestsPerSecond > 0 {
		burst := int(math.Max(1, adapterCfg.RequestsPerSecond))
		limiter = rate.NewLimiter(rate.Limit(adapterCfg.RequestsPerSecond), burst)
	}

	return &HTTPNetwork{
		client:     client,
		limiter:    limiter,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendRequest implements [Network]. It POSTs message to path and returns the
// reply body. An empty 2xx reply is a protocol violation.
func (h *HTTPNetwork) SendRequest(ctx context.Context, path, message string) (string, error) {
	body, err := h.post(ctx, path, message)
	if err != nil {
		return "", err
	}
	if body == "" {
		return "", autherr.ErrProtocolViolation.With("path", path).Wrap(ErrEmptyReply)
	}
	return body, nil
}

// FetchResponseKey asks the server for the public key it signs responses
// with. The reply is the bare qualified key.
func (h *HTTPNetwork) FetchResponseKey(ctx context.Context, path string) (string, error) {
	body, err := h.post(ctx, path, "")
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(body)
	if key == "" {
		return "", autherr.ErrProtocolViolation.With("path", path).Wrap(ErrEmptyReply)
	}
	return key, nil
}

func (h *HTTPNetwork) post(ctx context.Context, path, message string) (string, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return "", autherr.ErrTimeout.With("path", path).Wrap(fmt.Errorf("rate limit: %w", err))
		}
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestIDs.Generate()
	}
	log := h.logger.With().Str("path", path).Str("request_id", requestID).Logger()

	log.Debug().Msg("sending request")
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetBody(message).
		Post(path)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return "", mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg("server rejected request")
		return "", err
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("elapsed", resp.Time()).Msg("received reply")
	return string(resp.Body()), nil
}

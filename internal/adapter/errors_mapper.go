// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLength = 256

// errorBody is the body a server sends with a rejected request.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapHTTPError classifies a completed exchange. A body naming a known error
// code yields that error. Otherwise the status decides: gateway timeouts are
// timeouts, other gateway failures mean the server could not be reached and
// anything else outside 2xx is a protocol violation.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if rejected, ok := decodeErrorBody(resp.Body()); ok {
		return rejected.With("status", status)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength]
	}
	cause := fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, body)

	switch status {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return autherr.ErrTimeout.With("status", status).Wrap(cause)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return autherr.ErrConnectionFailed.With("status", status).Wrap(cause)
	default:
		return autherr.ErrProtocolViolation.With("status", status).Wrap(cause)
	}
}

func decodeErrorBody(raw []byte) (*autherr.Error, bool) {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		return nil, false
	}
	sentinel, ok := autherr.Lookup(body.Code)
	if !ok {
		return nil, false
	}

	message := body.Message
	if len(message) > maxErrorBodyLength {
		message = message[:maxErrorBodyLength]
	}
	return sentinel.Wrap(fmt.Errorf("%w: %s", ErrServerRejected, message)), true
}

// mapTransportError classifies an exchange that produced no response.
func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return autherr.ErrTimeout.Wrap(err)
	}
	return autherr.ErrConnectionFailed.Wrap(err)
}

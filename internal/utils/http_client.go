// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client to the auth server.
const UserAgent = "go-better-auth"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that sends JSON and
// identifies itself with [UserAgent]. Base URL, timeout and middleware are
// left to the caller.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(message).Post("/session/create")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authtest

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

var (
	ErrUnknownChallenge = errors.New("unknown session challenge")
	ErrAlreadyRefreshed = errors.New("access key already rotated")
	ErrNonceReused      = errors.New("access nonce already used")
)

// errorBody is the JSON body of a rejected request.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, autherr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, autherr.ErrAlreadyExists):
		return http.StatusConflict
	}

	switch autherr.CategoryOf(err) {
	case autherr.CategoryValidation, autherr.CategoryEncoding:
		return http.StatusBadRequest
	case autherr.CategoryCryptographic, autherr.CategoryAuthorization,
		autherr.CategoryToken, autherr.CategoryTemporal, autherr.CategoryProtocol:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

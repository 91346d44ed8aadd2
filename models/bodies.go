// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CreateAccountBody is the request body of account creation.
type CreateAccountBody struct {
	Authentication Authentication `json:"authentication"`
}

// RecoverAccountBody is the request body of account recovery. The request is
// signed with the recovery key, not the authentication key.
type RecoverAccountBody struct {
	Authentication Authentication `json:"authentication"`
}

// DeleteAccountBody is the request body of account deletion.
type DeleteAccountBody struct {
	Authentication Authentication `json:"authentication"`
}

// RotateDeviceBody is the request body of an authentication key rotation.
type RotateDeviceBody struct {
	Authentication Authentication `json:"authentication"`
}

// ChangeRecoveryKeyBody is the request body of a recovery hash change.
type ChangeRecoveryKeyBody struct {
	Authentication Authentication `json:"authentication"`
}

// LinkDeviceBody carries the endorsing device's rotation plus the new
// device's signed link container, embedded as a JSON object.
type LinkDeviceBody struct {
	Authentication Authentication  `json:"authentication"`
	Link           json.RawMessage `json:"link"`
}

// UnlinkDeviceBody carries the caller's rotation plus the device to remove.
type UnlinkDeviceBody struct {
	Authentication Authentication `json:"authentication"`
	Link           LinkedDevice   `json:"link"`
}

// RequestSessionBody starts a session: the server answers with a nonce bound
// to the identity.
type RequestSessionBody struct {
	Authentication Authentication `json:"authentication"`
}

// CreateSessionBody finishes a session: it registers the first access key and
// proves possession of the authentication key over the server nonce.
type CreateSessionBody struct {
	Access         AccessKey      `json:"access"`
	Authentication Authentication `json:"authentication"`
}

// RefreshSessionBody rotates the access key and exchanges the current token.
type RefreshSessionBody struct {
	Access AccessKey `json:"access"`
}

// LinkContainerPayload is the self-signed statement of a device that wants to
// join an identity.
type LinkContainerPayload struct {
	Authentication Authentication `json:"authentication"`
}

// RequestSessionResult is the server's answer to a session request.
type RequestSessionResult struct {
	Authentication struct {
		Nonce string `json:"nonce"`
	} `json:"authentication"`
}

// SessionResult is returned by session creation and refresh.
type SessionResult struct {
	Access struct {
		Token string `json:"token"`
	} `json:"access"`
}

// EmptyResult is the body of responses that only acknowledge a request.
type EmptyResult struct{}

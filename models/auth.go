// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Authentication is the "authentication" block carried by every request that
// is signed with an authentication key. Fields that a particular operation
// does not use are omitted from the wire.
type Authentication struct {
	Device       string `json:"device,omitempty"`
	Identity     string `json:"identity,omitempty"`
	PublicKey    string `json:"publicKey,omitempty"`
	RecoveryHash string `json:"recoveryHash,omitempty"`
	RecoveryKey  string `json:"recoveryKey,omitempty"`
	RotationHash string `json:"rotationHash,omitempty"`
	Nonce        string `json:"nonce,omitempty"`
}

// AccessKey is the inner "access" block of session requests. It announces
// the access public key and the hash of the key that will follow it.
type AccessKey struct {
	PublicKey    string `json:"publicKey"`
	RotationHash string `json:"rotationHash"`
	Token        string `json:"token,omitempty"`
}

// LinkedDevice names the device targeted by an unlink request.
type LinkedDevice struct {
	Device string `json:"device"`
}

// RequestAccess is the outer "access" block of every client request.
type RequestAccess struct {
	Nonce string `json:"nonce"`
}

// ResponseAccess is the outer "access" block of every server response. It
// echoes the request nonce and names the identity whose key signed the
// response.
type ResponseAccess struct {
	Nonce          string `json:"nonce"`
	ServerIdentity string `json:"serverIdentity"`
}

// TokenAccess is the outer "access" block of an access request.
type TokenAccess struct {
	Nonce     string `json:"nonce"`
	Timestamp string `json:"timestamp"`
	Token     string `json:"token"`
}

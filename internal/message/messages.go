// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package message

import (
	"encoding/json"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/models"
)

// ClientPayload is the payload of a client request.
type ClientPayload[T any] struct {
	Access  models.RequestAccess `json:"access"`
	Request T                    `json:"request"`
}

// ClientRequest is a signed request carrying a fresh nonce.
type ClientRequest[T any] struct {
	Signable[ClientPayload[T]]
}

func NewClientRequest[T any](request T, nonce string) *ClientRequest[T] {
	return &ClientRequest[T]{Signable[ClientPayload[T]]{
		Payload: ClientPayload[T]{
			Access:  models.RequestAccess{Nonce: nonce},
			Request: request,
		},
	}}
}

func (r *ClientRequest[T]) Nonce() string {
	return r.Payload.Access.Nonce
}

func (r *ClientRequest[T]) Request() T {
	return r.Payload.Request
}

// ParseClientRequest is used by servers to decode an incoming request.
func ParseClientRequest[T any](message string) (*ClientRequest[T], error) {
	s, err := parseSignable[ClientPayload[T]]("ClientRequest", message)
	if err != nil {
		return nil, err
	}
	if s.Payload.Access.Nonce == "" {
		return nil, autherr.Deserialization("ClientRequest", errMissing("access.nonce"))
	}
	return &ClientRequest[T]{*s}, nil
}

// ServerPayload is the payload of a server response.
type ServerPayload[T any] struct {
	Access   models.ResponseAccess `json:"access"`
	Response T                     `json:"response"`
}

// ServerResponse is a signed reply echoing the request nonce.
type ServerResponse[T any] struct {
	Signable[ServerPayload[T]]
}

func NewServerResponse[T any](response T, serverIdentity, nonce string) *ServerResponse[T] {
	return &ServerResponse[T]{Signable[ServerPayload[T]]{
		Payload: ServerPayload[T]{
			Access:   models.ResponseAccess{Nonce: nonce, ServerIdentity: serverIdentity},
			Response: response,
		},
	}}
}

func (r *ServerResponse[T]) Nonce() string {
	return r.Payload.Access.Nonce
}

func (r *ServerResponse[T]) ServerIdentity() string {
	return r.Payload.Access.ServerIdentity
}

func (r *ServerResponse[T]) Response() T {
	return r.Payload.Response
}

// ParseServerResponse decodes a reply. Both access.nonce and
// access.serverIdentity are required.
func ParseServerResponse[T any](message string) (*ServerResponse[T], error) {
	s, err := parseSignable[ServerPayload[T]]("ServerResponse", message)
	if err != nil {
		return nil, err
	}
	switch {
	case s.Payload.Access.Nonce == "":
		return nil, autherr.Deserialization("ServerResponse", errMissing("access.nonce"))
	case s.Payload.Access.ServerIdentity == "":
		return nil, autherr.Deserialization("ServerResponse", errMissing("access.serverIdentity"))
	}
	return &ServerResponse[T]{*s}, nil
}

// AccessPayload is the payload of an access request.
type AccessPayload[T any] struct {
	Access  models.TokenAccess `json:"access"`
	Request T                  `json:"request"`
}

// AccessRequest is a resource request signed with the current access key and
// carrying the bearer token.
type AccessRequest[T any] struct {
	Signable[AccessPayload[T]]
}

func NewAccessRequest[T any](request T, nonce, timestamp, token string) *AccessRequest[T] {
	return &AccessRequest[T]{Signable[AccessPayload[T]]{
		Payload: AccessPayload[T]{
			Access:  models.TokenAccess{Nonce: nonce, Timestamp: timestamp, Token: token},
			Request: request,
		},
	}}
}

func (r *AccessRequest[T]) Nonce() string {
	return r.Payload.Access.Nonce
}

func (r *AccessRequest[T]) Token() string {
	return r.Payload.Access.Token
}

func (r *AccessRequest[T]) Timestamp() string {
	return r.Payload.Access.Timestamp
}

func (r *AccessRequest[T]) Request() T {
	return r.Payload.Request
}

func ParseAccessRequest[T any](message string) (*AccessRequest[T], error) {
	s, err := parseSignable[AccessPayload[T]]("AccessRequest", message)
	if err != nil {
		return nil, err
	}
	err = requireFields("AccessRequest",
		requiredField{"access.nonce", s.Payload.Access.Nonce},
		requiredField{"access.timestamp", s.Payload.Access.Timestamp},
		requiredField{"access.token", s.Payload.Access.Token},
	)
	if err != nil {
		return nil, err
	}
	return &AccessRequest[T]{*s}, nil
}

// LinkContainer is the self-signed statement a new device hands to an
// already linked one.
type LinkContainer struct {
	Signable[models.LinkContainerPayload]
}

func NewLinkContainer(auth models.Authentication) *LinkContainer {
	return &LinkContainer{Signable[models.LinkContainerPayload]{
		Payload: models.LinkContainerPayload{Authentication: auth},
	}}
}

func (c *LinkContainer) Authentication() models.Authentication {
	return c.Payload.Authentication
}

// Embed returns the serialized container as a JSON value suitable for
// nesting inside another request body.
func (c *LinkContainer) Embed() (json.RawMessage, error) {
	serialized, err := c.Serialize()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(serialized), nil
}

func ParseLinkContainer(message string) (*LinkContainer, error) {
	s, err := parseSignable[models.LinkContainerPayload]("LinkContainer", message)
	if err != nil {
		return nil, err
	}
	auth := s.Payload.Authentication
	err = requireFields("LinkContainer",
		requiredField{"authentication.device", auth.Device},
		requiredField{"authentication.identity", auth.Identity},
		requiredField{"authentication.publicKey", auth.PublicKey},
		requiredField{"authentication.rotationHash", auth.RotationHash},
	)
	if err != nil {
		return nil, err
	}
	return &LinkContainer{*s}, nil
}

// UnsignedRequest is a client request that carries no signature. Only the
// session request step uses it.
type UnsignedRequest[T any] struct {
	Payload ClientPayload[T]
}

func NewUnsignedRequest[T any](request T, nonce string) *UnsignedRequest[T] {
	return &UnsignedRequest[T]{Payload: ClientPayload[T]{
		Access:  models.RequestAccess{Nonce: nonce},
		Request: request,
	}}
}

func (r *UnsignedRequest[T]) Nonce() string {
	return r.Payload.Access.Nonce
}

func (r *UnsignedRequest[T]) Request() T {
	return r.Payload.Request
}

// Serialize emits {"payload":<payload>}.
func (r *UnsignedRequest[T]) Serialize() (string, error) {
	payload, err := ComposePayload(r.Payload)
	if err != nil {
		return "", err
	}
	return `{"payload":` + payload + `}`, nil
}

func ParseUnsignedRequest[T any](message string) (*UnsignedRequest[T], error) {
	s, err := parseSignable[ClientPayload[T]]("UnsignedRequest", message)
	if err != nil {
		return nil, err
	}
	if s.Payload.Access.Nonce == "" {
		return nil, autherr.Deserialization("UnsignedRequest", errMissing("access.nonce"))
	}
	return &UnsignedRequest[T]{Payload: s.Payload}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs an HTTP handler until the process is asked to stop.
//
// It owns startup, signal handling and graceful shutdown, and is used by
// cmd/server to host the reference auth server.
package server

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the auth client.
//
// Positional arguments form a chain of commands, each followed by a fixed
// number of operands, executed in order within one process:
//
//	create-account Erecovery... session access /foo/bar '{"foo":"bar"}' whoami
//
// Signing keys live in process memory only, so flows that depend on each
// other must run in the same chain.
package client

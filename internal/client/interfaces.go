// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the command runtime.
type Client interface {
	// Run executes the command chain in args and returns the first error.
	Run(ctx context.Context, args []string) error
}

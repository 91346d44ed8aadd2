// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RequestsPerSecond < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.ResponseKey == "" && cfg.Adapter.ResponseKeyPath == "" {
		return fmt.Errorf("%w: response key or its path is required", ErrInvalidAdapterConfigs)
	}

	if missing := cfg.Paths.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidPathsConfigs, strings.Join(missing, ", "))
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-better-auth client. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the transport settings used to reach the auth server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local identifier store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Paths is the server route table.
	Paths Paths `envPrefix:"PATHS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds settings of the reference server binary.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional arguments left after flag parsing.
	Args []string
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its logs. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the auth server base address, either "host:port" or a
	// full URL (e.g. "https://auth.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request round trip (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	// Env: ADAPTER_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// ResponseKey is the server's response verification key. When empty it
	// is fetched from ResponseKeyPath at startup.
	// Env: ADAPTER_RESPONSE_KEY
	ResponseKey string `env:"RESPONSE_KEY"`

	// ResponseKeyPath is the route serving the response verification key.
	// Env: ADAPTER_RESPONSE_KEY_PATH
	ResponseKeyPath string `env:"RESPONSE_KEY_PATH"`
}

// Storage groups the configuration of the local stores.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path. Empty keeps identifiers in memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Paths mirrors models.Paths with env bindings.
type Paths struct {
	Account struct {
		Create  string `env:"CREATE"`
		Recover string `env:"RECOVER"`
		Delete  string `env:"DELETE"`
	} `envPrefix:"ACCOUNT_"`

	Session struct {
		Request string `env:"REQUEST"`
		Create  string `env:"CREATE"`
		Refresh string `env:"REFRESH"`
	} `envPrefix:"SESSION_"`

	Device struct {
		Rotate string `env:"ROTATE"`
		Link   string `env:"LINK"`
		Unlink string `env:"UNLINK"`
	} `envPrefix:"DEVICE_"`

	Recovery struct {
		Change string `env:"CHANGE"`
	} `envPrefix:"RECOVERY_"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the session refresh job runs.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Server holds settings of the local reference server.
type Server struct {
	// ListenAddress is where the reference server listens.
	// Env: SERVER_LISTEN_ADDRESS
	ListenAddress string `env:"LISTEN_ADDRESS"`

	// AccessLifetime is how long an issued access token stays valid.
	// Env: SERVER_ACCESS_LIFETIME
	AccessLifetime time.Duration `env:"ACCESS_LIFETIME"`

	// RefreshLifetime is how long a session may be refreshed.
	// Env: SERVER_REFRESH_LIFETIME
	RefreshLifetime time.Duration `env:"REFRESH_LIFETIME"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

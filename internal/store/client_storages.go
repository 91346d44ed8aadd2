// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-better-auth/internal/config"
	"github.com/MKhiriev/go-better-auth/internal/logger"
)

// Names of the rows backing each client value.
const (
	IdentityValue    = "identity"
	DeviceValue      = "device"
	AccessTokenValue = "access_token"
)

// ClientStorages groups the client-side value stores used by the protocol
// engine.
type ClientStorages struct {
	Identity    ClientValueStore
	Device      ClientValueStore
	AccessToken ClientValueStore

	db *DB
}

// NewClientStorages initialises the client storage layer. With an empty DSN
// every value lives in memory. Otherwise it:
//  1. Opens an SQLite connection to the file at cfg.DB.DSN, creating the
//     database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Binds one [SQLiteValueStore] per value.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("using in-memory client storages")
		return NewMemoryClientStorages(), nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Identity:    NewSQLiteValueStore(db, IdentityValue, logger),
		Device:      NewSQLiteValueStore(db, DeviceValue, logger),
		AccessToken: NewSQLiteValueStore(db, AccessTokenValue, logger),
		db:          db,
	}, nil
}

// NewMemoryClientStorages keeps every value in process memory.
func NewMemoryClientStorages() *ClientStorages {
	return &ClientStorages{
		Identity:    NewMemoryValueStore(IdentityValue),
		Device:      NewMemoryValueStore(DeviceValue),
		AccessToken: NewMemoryValueStore(AccessTokenValue),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

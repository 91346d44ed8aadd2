// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
	"github.com/MKhiriev/go-better-auth/internal/logger"
)

// SQLiteValueStore is a [ClientValueStore] persisted as one row of the
// client_values table.
type SQLiteValueStore struct {
	*DB
	name   string
	now    func() time.Time
	logger *logger.Logger
}

func NewSQLiteValueStore(db *DB, name string, logger *logger.Logger) *SQLiteValueStore {
	return &SQLiteValueStore{
		DB:     db,
		name:   name,
		now:    time.Now,
		logger: logger,
	}
}

func (s *SQLiteValueStore) Store(ctx context.Context, value string) error {
	query, args, err := buildUpsertValueQuery(s.name, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteValueStore.Store").
			Str("name", s.name).
			Msg("failed to upsert client value")
		return autherr.ErrStorageUnavailable.With("value", s.name).Wrap(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (s *SQLiteValueStore) Get(ctx context.Context) (string, error) {
	query, args, err := buildSelectValueQuery(s.name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", autherr.ErrNotFound.With("value", s.name)
	case err != nil:
		s.logger.Err(err).
			Str("func", "SQLiteValueStore.Get").
			Str("name", s.name).
			Msg("failed to read client value")
		return "", autherr.ErrStorageUnavailable.With("value", s.name).Wrap(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return value, nil
}

// Clear removes the stored value. Clearing an unset value is not an error.
func (s *SQLiteValueStore) Clear(ctx context.Context) error {
	query, args, err := buildDeleteValueQuery(s.name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		return autherr.ErrStorageUnavailable.With("value", s.name).Wrap(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	return nil
}

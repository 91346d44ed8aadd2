// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const clientValuesTable = "client_values"

// buildUpsertValueQuery inserts or replaces the value stored under name.
func buildUpsertValueQuery(name, value string, now time.Time) (string, []any, error) {
	return sq.Insert(clientValuesTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSelectValueQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(clientValuesTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteValueQuery(name string) (string, []any, error) {
	return sq.Delete(clientValuesTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

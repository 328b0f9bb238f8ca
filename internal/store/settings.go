// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// GetSettings returns all site settings as a key/value map.
func (q *Queries) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := q.query(ctx, `SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// UpsertSettings inserts or overwrites each key in values.
func (q *Queries) UpsertSettings(ctx context.Context, values map[string]string, now time.Time) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, err := q.exec(ctx,
			`INSERT INTO site_settings (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			k, values[k], now,
		)
		if err != nil {
			return fmt.Errorf("saving setting %q: %w", k, err)
		}
	}
	return nil
}

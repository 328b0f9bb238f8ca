// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strings"

	"github.com/Sumit9819/digital-marketing-cms/internal/store"
)

// Setting limits.
const (
	MaxSettingKeyLength   = 100
	MaxSettingValueLength = 10000
)

// GetSettings returns the site settings as a key/value map.
func (s *ContentService) GetSettings(ctx context.Context) (map[string]string, error) {
	return s.store.GetSettings(ctx)
}

// UpdateSettings upserts values and returns the resulting settings.
func (s *ContentService) UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error) {
	fields := make(map[string]string)
	clean := make(map[string]string, len(values))
	for k, v := range values {
		key := strings.TrimSpace(k)
		switch {
		case key == "":
			fields["key"] = "must not be empty"
		case len(key) > MaxSettingKeyLength:
			fields[key] = "key is too long"
		case len(v) > MaxSettingValueLength:
			fields[key] = "value is too long"
		default:
			clean[key] = v
		}
	}
	if len(fields) > 0 {
		return nil, invalid(fields)
	}
	if len(clean) == 0 {
		return s.store.GetSettings(ctx)
	}

	var out map[string]string
	err := s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		if err := q.UpsertSettings(ctx, clean, s.now()); err != nil {
			return err
		}
		var err error
		out, err = q.GetSettings(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

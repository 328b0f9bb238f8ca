// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Contact submission statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusClosed    = "closed"
)

// IsValidContactStatus reports whether s is a known contact submission status.
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusClosed:
		return true
	}
	return false
}

// ContactSubmission represents a message sent through the public contact form.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteSetting is a single key/value site setting.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

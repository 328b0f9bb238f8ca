// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

// hasItemTest defines a test case for checking item membership.
type hasItemTest struct {
	item string
	want bool
}

// runHasItemTests runs membership test cases with the provided check function.
func runHasItemTests(t *testing.T, tests []hasItemTest, checkFn func(string) bool) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			if got := checkFn(tt.item); got != tt.want {
				t.Errorf("check(%q) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

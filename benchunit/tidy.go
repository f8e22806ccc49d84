// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates measurement units for display.
package benchunit

import "strings"

// Tidy returns the display form of a measurement unit. Per-operation
// units drop their "/op" suffix: report tables already have one row
// per operation, so "0.52 us/op" reads better as "0.52 us". Units
// without the suffix pass through unchanged.
func Tidy(unit string) string {
	// Fast path for the units the harness emits.
	switch unit {
	case "ns/op":
		return "ns"
	case "us/op":
		return "us"
	case "ms/op":
		return "ms"
	case "s/op":
		return "s"
	}
	return strings.TrimSuffix(unit, "/op")
}

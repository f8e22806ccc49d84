// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestTidy(t *testing.T) {
	tests := []struct {
		unit, want string
	}{
		{"us/op", "us"},
		{"ns/op", "ns"},
		{"ms/op", "ms"},
		{"s/op", "s"},
		{"ops/op", "ops"},
		{"MB/s", "MB/s"},
		{"", ""},
	}
	for _, test := range tests {
		if got := Tidy(test.unit); got != test.want {
			t.Errorf("Tidy(%q) = %q, want %q", test.unit, got, test.want)
		}
	}
}

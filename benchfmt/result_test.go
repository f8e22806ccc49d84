// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import "testing"

func TestVariantsClassify(t *testing.T) {
	tests := []struct {
		op   string
		want Variant
	}{
		{"addFirstArrayList", VariantA},
		{"addFirstLinkedList", VariantB},
		{"iterate", VariantB}, // no tag defaults to B
	}
	for _, test := range tests {
		if got := DefaultVariants.Classify(test.op); got != test.want {
			t.Errorf("Classify(%q) = %v, want %v", test.op, got, test.want)
		}
	}
}

func TestVariantsFamily(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"addFirstArrayList", "addFirst"},
		{"addFirstLinkedList", "addFirst"},
		{"randomAccessArrayList", "randomAccess"},
		{"iterate", "iterate"},
	}
	for _, test := range tests {
		if got := DefaultVariants.Family(test.op); got != test.want {
			t.Errorf("Family(%q) = %q, want %q", test.op, got, test.want)
		}
	}
}

func TestVariantsZeroValue(t *testing.T) {
	var vs Variants
	if got := vs.Name(VariantA); got != "ArrayList" {
		t.Errorf("zero Variants Name(A) = %q, want ArrayList", got)
	}
	if got := vs.Family("getLinkedList"); got != "get" {
		t.Errorf("zero Variants Family = %q, want get", got)
	}
}

func TestSimpleClass(t *testing.T) {
	r := &Result{Class: "de.bytewright.ListBenchmark"}
	if got := r.SimpleClass(); got != "ListBenchmark" {
		t.Errorf("SimpleClass = %q, want ListBenchmark", got)
	}
	r = &Result{Class: "ListBenchmark"}
	if got := r.SimpleClass(); got != "ListBenchmark" {
		t.Errorf("SimpleClass without package = %q, want ListBenchmark", got)
	}
}

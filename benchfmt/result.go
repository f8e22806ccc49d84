// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads raw list-benchmark measurement lines.
//
// The input is the tabular result format emitted by the external
// measurement harness: one line per measurement, carrying a
// class-qualified operation name (with the container variant embedded
// in it), the measurement mode, the input size parameter, a score with
// an error margin, and a unit. The Reader is structured as a streaming
// operation in the manner of bufio.Scanner so callers can impose their
// own data model; parse errors on well-shaped lines are delivered as
// records rather than terminating the stream.
package benchfmt

import "strings"

// A Variant identifies which of the two compared container
// implementations produced a measurement.
type Variant int

const (
	// VariantA is the contiguous-array-backed container.
	VariantA Variant = iota
	// VariantB is the linked-node-backed container.
	VariantB
)

func (v Variant) String() string {
	if v == VariantA {
		return "A"
	}
	return "B"
}

// Variants gives the names of the two compared container variants as
// they appear embedded in operation names, e.g. "insertArrayList" vs
// "insertLinkedList".
type Variants struct {
	A string
	B string
}

// DefaultVariants matches the operation naming used by the list
// benchmark suite.
var DefaultVariants = Variants{A: "ArrayList", B: "LinkedList"}

// orDefault returns vs, or DefaultVariants if vs is the zero value.
func (vs Variants) orDefault() Variants {
	if vs == (Variants{}) {
		return DefaultVariants
	}
	return vs
}

// Name returns the display name of v.
func (vs Variants) Name(v Variant) string {
	vs = vs.orDefault()
	if v == VariantA {
		return vs.A
	}
	return vs.B
}

// Classify returns the variant encoded in the operation name op.
// An operation that does not name variant A belongs to variant B.
func (vs Variants) Classify(op string) Variant {
	if strings.Contains(op, vs.orDefault().A) {
		return VariantA
	}
	return VariantB
}

// Family returns op with both variant names removed. Two operations
// that differ only in their embedded variant name map to the same
// family, which is what pairs them for comparison.
func (vs Variants) Family(op string) string {
	vs = vs.orDefault()
	op = strings.ReplaceAll(op, vs.A, "")
	return strings.ReplaceAll(op, vs.B, "")
}

// A Result is a single parsed measurement. It is immutable once
// parsed; the Reader allocates a fresh Result per line, so callers may
// retain them.
type Result struct {
	// Class is the fully qualified benchmark class name.
	Class string
	// Op is the raw operation name, variant tag included.
	Op string
	// Family is Op with the variant names stripped.
	Family string
	// Variant is the container variant encoded in Op.
	Variant Variant
	// Mode is the harness measurement mode (e.g. "avgt"). It is
	// carried for the archive but plays no role in comparison.
	Mode string
	// Size is the input size parameter.
	Size int
	// Score and Error are the measured score and its error margin.
	Score float64
	Error float64
	// Unit is the raw measurement unit (e.g. "us/op").
	Unit string

	fileName string
	line     int
}

// Pos returns the file name and line number of a Result that was read
// by a Reader. For Results that were not read from a file, it returns
// "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// SimpleClass returns the class name without its package qualifier.
func (r *Result) SimpleClass() string {
	if i := strings.LastIndexByte(r.Class, '.'); i >= 0 {
		return r.Class[i+1:]
	}
	return r.Class
}

// A Record is a single record read from a results file. It is either a
// *Result or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file.
	Pos() (fileName string, line int)
}

var _ Record = (*Result)(nil)
var _ Record = (*SyntaxError)(nil)

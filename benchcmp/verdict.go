// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import "github.com/bytewright/listbench/benchfmt"

// A Winner says which variant a verdict favors. Lower score means
// faster, so a positive percent difference (B slower than A) favors A.
type Winner int

const (
	WinnerA Winner = iota
	WinnerB
	Tie
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	}
	return "tie"
}

// A Verdict is the comparison of one comparable group. It is derived,
// never stored: verdicts are recomputed on each call.
type Verdict struct {
	Key Key
	// ScoreA and ScoreB are the two variants' scores.
	ScoreA, ScoreB float64
	// UnitA and UnitB are each record's own measurement unit. They
	// normally agree, but a score is always rendered with the unit it
	// was measured in.
	UnitA, UnitB string
	// PctDiff is (ScoreB - ScoreA) / ScoreA * 100.
	PctDiff float64
	Winner  Winner
}

// Verdict computes the comparison for g. ok is false if g is not
// comparable.
func (g *Group) Verdict() (v Verdict, ok bool) {
	if !g.Comparable() {
		return Verdict{}, false
	}
	a, b := g.A[0], g.B[0]
	pct := (b.Score - a.Score) / a.Score * 100
	w := Tie
	switch {
	case pct > 0:
		w = WinnerA
	case pct < 0:
		w = WinnerB
	}
	return Verdict{
		Key:     g.Key,
		ScoreA:  a.Score,
		ScoreB:  b.Score,
		UnitA:   a.Unit,
		UnitB:   b.Unit,
		PctDiff: pct,
		Winner:  w,
	}, true
}

// Verdicts returns one verdict per comparable group, ordered by class,
// then family, then ascending size.
func (c *Collection) Verdicts() []Verdict {
	var verdicts []Verdict
	for _, class := range c.Classes() {
		for _, family := range c.Families(class) {
			for _, size := range c.Sizes(class, family) {
				g := c.groups[Key{class, family, size}]
				if v, ok := g.Verdict(); ok {
					verdicts = append(verdicts, v)
				}
			}
		}
	}
	return verdicts
}

// variants returns the collection's variant names, defaulted.
func (c *Collection) variants() benchfmt.Variants {
	if c.Variants == (benchfmt.Variants{}) {
		return benchfmt.DefaultVariants
	}
	return c.Variants
}

// WinnerName returns the display name for w: a variant name, or "Tie".
func (c *Collection) WinnerName(w Winner) string {
	switch w {
	case WinnerA:
		return c.variants().Name(benchfmt.VariantA)
	case WinnerB:
		return c.variants().Name(benchfmt.VariantB)
	}
	return "Tie"
}

// VariantNames returns the display names of the A and B variants.
func (c *Collection) VariantNames() (a, b string) {
	vs := c.variants()
	return vs.Name(benchfmt.VariantA), vs.Name(benchfmt.VariantB)
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcmp pairs measurements of the two container variants
// and computes comparison verdicts and winner rankings.
//
// Results are grouped by (class, operation family, input size); a
// group holding exactly one measurement per variant is comparable and
// yields a Verdict. Groups with a missing or duplicated variant are
// kept but excluded from comparison: partial data is never averaged or
// guessed.
package benchcmp

import (
	"sort"

	"github.com/bytewright/listbench/benchfmt"
)

// A Key identifies one paired comparison group.
type Key struct {
	// Class is the fully qualified benchmark class name.
	Class string
	// Family is the operation family (variant names stripped).
	Family string
	// Size is the input size parameter.
	Size int
}

// A Group holds every result recorded for one Key, split by variant.
type Group struct {
	Key  Key
	A, B []*benchfmt.Result
}

// Comparable reports whether g holds exactly one result per variant.
func (g *Group) Comparable() bool {
	return len(g.A) == 1 && len(g.B) == 1
}

// A Collection accumulates parsed results into comparison groups.
// The zero value is ready to use. Accessors return deterministic
// orders regardless of insertion order: classes and families
// lexicographic, sizes ascending.
type Collection struct {
	// Variants gives the display names of the two variants.
	// The zero value means benchfmt.DefaultVariants.
	Variants benchfmt.Variants

	groups map[Key]*Group
	n      int
}

// Add adds one result to the collection. No result is ever dropped
// here; pairing and exclusion happen when verdicts are computed.
func (c *Collection) Add(r *benchfmt.Result) {
	if c.groups == nil {
		c.groups = make(map[Key]*Group)
	}
	key := Key{Class: r.Class, Family: r.Family, Size: r.Size}
	g := c.groups[key]
	if g == nil {
		g = &Group{Key: key}
		c.groups[key] = g
	}
	if r.Variant == benchfmt.VariantA {
		g.A = append(g.A, r)
	} else {
		g.B = append(g.B, r)
	}
	c.n++
}

// Len returns the number of results added.
func (c *Collection) Len() int {
	return c.n
}

// Group returns the group for key, or nil if no result was recorded
// for it.
func (c *Collection) Group(key Key) *Group {
	return c.groups[key]
}

// Classes returns the benchmark class names in lexicographic order.
func (c *Collection) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for key := range c.groups {
		if !seen[key.Class] {
			seen[key.Class] = true
			classes = append(classes, key.Class)
		}
	}
	sort.Strings(classes)
	return classes
}

// Families returns the operation families recorded for class in
// lexicographic order.
func (c *Collection) Families(class string) []string {
	seen := make(map[string]bool)
	var families []string
	for key := range c.groups {
		if key.Class == class && !seen[key.Family] {
			seen[key.Family] = true
			families = append(families, key.Family)
		}
	}
	sort.Strings(families)
	return families
}

// Sizes returns the input sizes recorded for (class, family) in
// ascending order.
func (c *Collection) Sizes(class, family string) []int {
	var sizes []int
	for key := range c.groups {
		if key.Class == class && key.Family == family {
			sizes = append(sizes, key.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

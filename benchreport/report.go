// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport renders comparison reports from paired
// benchmark results.
//
// Build assembles a renderer-neutral Report from a benchcmp
// Collection; FormatMarkdown and FormatHTML emit it. Rendering is
// deterministic: the same collection always produces byte-identical
// output.
package benchreport

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/bytewright/listbench/benchcmp"
	"github.com/bytewright/listbench/benchunit"
)

// Options configures report building.
type Options struct {
	// Title overrides the default "<A> vs <B> Performance
	// Comparison" title.
	Title string
}

// A Report is the fully assembled comparison report.
type Report struct {
	Title      string
	Intro      string
	VariantA   string
	VariantB   string
	Classes    []ClassSection
	Summary    Summary
	Conclusion []string
}

// A ClassSection holds the comparison tables of one benchmark class.
type ClassSection struct {
	Name     string
	Families []FamilySection
}

// A FamilySection is one operation family's comparison table.
// Rows may be empty if no group of the family was comparable.
type FamilySection struct {
	Name string
	Rows []Row
}

// A Row is one comparable group: both scores, the absolute percent
// difference, and the winner label, preformatted for rendering.
type Row struct {
	Size   int
	ScoreA string
	ScoreB string
	Diff   string
	Winner string
}

// A Summary holds the two favorable-operations rankings.
type Summary struct {
	A, B RankTable
}

// A RankTable lists the operations favoring one variant.
type RankTable struct {
	Variant string
	Rows    []RankRow
	// GeoMean is the formatted geometric mean advantage, or "" when
	// there are no rows.
	GeoMean string
}

// A RankRow is one ranked (operation, size) measurement.
type RankRow struct {
	Operation string
	Size      int
	Diff      string
}

// Build assembles the report for c: one section per class, one table
// per operation family with a row per comparable group in ascending
// size order, and the summary rankings.
func Build(c *benchcmp.Collection, opts Options) *Report {
	a, b := c.VariantNames()
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s vs %s Performance Comparison", a, b)
	}
	rep := &Report{
		Title:    title,
		Intro:    fmt.Sprintf("This report compares the performance of %s and %s across various operations and data sizes.", a, b),
		VariantA: a,
		VariantB: b,
		Conclusion: []string{
			fmt.Sprintf("This benchmark comparison helps illustrate the strengths and weaknesses of %s and %s implementations.", a, b),
			"When choosing between them, consider your specific use case and the most frequent operations you'll perform.",
		},
	}

	for _, class := range c.Classes() {
		cs := ClassSection{Name: simpleClass(class)}
		for _, family := range c.Families(class) {
			fs := FamilySection{Name: humanizeOp(family)}
			for _, size := range c.Sizes(class, family) {
				v, ok := c.Group(benchcmp.Key{Class: class, Family: family, Size: size}).Verdict()
				if !ok {
					continue
				}
				fs.Rows = append(fs.Rows, Row{
					Size:   size,
					ScoreA: fmt.Sprintf("%.2f %s", v.ScoreA, benchunit.Tidy(v.UnitA)),
					ScoreB: fmt.Sprintf("%.2f %s", v.ScoreB, benchunit.Tidy(v.UnitB)),
					Diff:   fmt.Sprintf("%.2f%%", math.Abs(v.PctDiff)),
					Winner: c.WinnerName(v.Winner),
				})
			}
			cs.Families = append(cs.Families, fs)
		}
		rep.Classes = append(rep.Classes, cs)
	}

	ranks := benchcmp.Rank(c.Verdicts())
	rep.Summary = Summary{
		A: rankTable(a, ranks.A),
		B: rankTable(b, ranks.B),
	}
	return rep
}

func rankTable(variant string, r benchcmp.Ranking) RankTable {
	t := RankTable{Variant: variant}
	for _, e := range r.Entries {
		t.Rows = append(t.Rows, RankRow{
			Operation: humanizeOp(e.Family),
			Size:      e.Size,
			Diff:      fmt.Sprintf("%.2f%%", e.AbsPct),
		})
	}
	if r.GeoMeanRatio > 0 {
		t.GeoMean = fmt.Sprintf("%.2fx", r.GeoMeanRatio)
	}
	return t
}

// humanizeOp makes an operation family human readable: the first
// letter is capitalized and a space is inserted before each internal
// uppercase letter, so "addFirst" becomes "Add First".
func humanizeOp(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// simpleClass returns the class name without its package qualifier.
func simpleClass(class string) string {
	if i := strings.LastIndexByte(class, '.'); i >= 0 {
		return class[i+1:]
	}
	return class
}

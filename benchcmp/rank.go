// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A RankEntry is one (family, size) measurement in a
// favorable-operations ranking.
type RankEntry struct {
	Family string
	Size   int
	// AbsPct is the absolute percent difference.
	AbsPct float64
	// Ratio is slower score over faster score, >= 1.
	Ratio float64
}

// A Ranking lists the operations favoring one variant, strongest
// first: families ordered by their maximum absolute percent difference
// descending (ties by family name), sizes within a family by absolute
// percent difference descending (ties by size).
type Ranking struct {
	Winner  Winner
	Entries []RankEntry
	// GeoMeanRatio is the geometric mean of the entries' ratios,
	// or 0 if there are no entries.
	GeoMeanRatio float64
}

// Rankings holds the two favorable-operations rankings. Tied verdicts
// appear in neither.
type Rankings struct {
	A, B Ranking
}

// Rank partitions verdicts by winner and orders each partition.
// Families are merged across benchmark classes; if the same (family,
// size) appears in several classes, the later verdict wins.
func Rank(verdicts []Verdict) Rankings {
	return Rankings{
		A: rankFor(verdicts, WinnerA),
		B: rankFor(verdicts, WinnerB),
	}
}

func rankFor(verdicts []Verdict, w Winner) Ranking {
	bySize := make(map[string]map[int]RankEntry)
	for _, v := range verdicts {
		if v.Winner != w {
			continue
		}
		ratio := v.ScoreB / v.ScoreA
		if w == WinnerB {
			ratio = v.ScoreA / v.ScoreB
		}
		sizes := bySize[v.Key.Family]
		if sizes == nil {
			sizes = make(map[int]RankEntry)
			bySize[v.Key.Family] = sizes
		}
		sizes[v.Key.Size] = RankEntry{
			Family: v.Key.Family,
			Size:   v.Key.Size,
			AbsPct: math.Abs(v.PctDiff),
			Ratio:  ratio,
		}
	}

	maxPct := make(map[string]float64)
	var families []string
	for family, sizes := range bySize {
		families = append(families, family)
		for _, e := range sizes {
			if e.AbsPct > maxPct[family] {
				maxPct[family] = e.AbsPct
			}
		}
	}
	sort.Slice(families, func(i, j int) bool {
		fi, fj := families[i], families[j]
		if maxPct[fi] != maxPct[fj] {
			return maxPct[fi] > maxPct[fj]
		}
		return fi < fj
	})

	r := Ranking{Winner: w}
	var ratios []float64
	for _, family := range families {
		sizes := bySize[family]
		entries := make([]RankEntry, 0, len(sizes))
		for _, e := range sizes {
			entries = append(entries, e)
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].AbsPct != entries[j].AbsPct {
				return entries[i].AbsPct > entries[j].AbsPct
			}
			return entries[i].Size < entries[j].Size
		})
		for _, e := range entries {
			r.Entries = append(r.Entries, e)
			ratios = append(ratios, e.Ratio)
		}
	}
	if len(ratios) > 0 {
		if gm := stats.GeoMean(ratios); !math.IsNaN(gm) {
			r.GeoMeanRatio = gm
		}
	}
	return r
}

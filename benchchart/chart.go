// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders score-versus-size charts for paired
// benchmark results, one PNG per (class, operation family).
package benchchart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bytewright/listbench/benchcmp"
	"github.com/bytewright/listbench/benchunit"
)

// Options configures chart rendering.
type Options struct {
	// LogScale plots both axes logarithmically. Useful when sizes
	// span orders of magnitude.
	LogScale bool
	// Width and Height are the chart dimensions.
	// Zero means 6x4 inches.
	Width, Height vg.Length
}

// Render writes one chart per (class, family) with at least one
// comparable group into dir, creating it if necessary. Incomparable
// groups contribute no points.
func Render(c *benchcmp.Collection, dir string, opts Options) error {
	if opts.Width == 0 {
		opts.Width = 6 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 4 * vg.Inch
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	nameA, nameB := c.VariantNames()
	for _, class := range c.Classes() {
		for _, family := range c.Families(class) {
			var ptsA, ptsB plotter.XYs
			unit := ""
			for _, size := range c.Sizes(class, family) {
				v, ok := c.Group(benchcmp.Key{Class: class, Family: family, Size: size}).Verdict()
				if !ok {
					continue
				}
				ptsA = append(ptsA, plotter.XY{X: float64(size), Y: v.ScoreA})
				ptsB = append(ptsB, plotter.XY{X: float64(size), Y: v.ScoreB})
				unit = v.UnitA
			}
			if len(ptsA) == 0 {
				continue
			}

			p := plot.New()
			p.Title.Text = fmt.Sprintf("%s: %s", simpleClass(class), family)
			p.X.Label.Text = "input size"
			p.Y.Label.Text = "score (" + benchunit.Tidy(unit) + ")"
			p.Legend.Top = true
			if opts.LogScale {
				p.X.Scale = plot.LogScale{}
				p.X.Tick.Marker = plot.LogTicks{Prec: -1}
				p.Y.Scale = plot.LogScale{}
				p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
			}
			if err := plotutil.AddLinePoints(p, nameA, ptsA, nameB, ptsB); err != nil {
				return fmt.Errorf("plotting %s.%s: %w", class, family, err)
			}

			name := sanitize(simpleClass(class)+"_"+family) + ".png"
			if err := p.Save(opts.Width, opts.Height, filepath.Join(dir, name)); err != nil {
				return fmt.Errorf("saving chart %s: %w", name, err)
			}
		}
	}
	return nil
}

// sanitize maps a chart name to a safe file name.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return '_'
	}, s)
}

func simpleClass(class string) string {
	if i := strings.LastIndexByte(class, '.'); i >= 0 {
		return class[i+1:]
	}
	return class
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"fmt"
	"strings"
)

// FormatMarkdown appends a markdown rendering of the report to buf.
func FormatMarkdown(buf *bytes.Buffer, r *Report) {
	fmt.Fprintf(buf, "# %s\n\n%s\n\n", r.Title, r.Intro)

	for _, cs := range r.Classes {
		fmt.Fprintf(buf, "## %s\n\n", cs.Name)
		for _, fs := range cs.Families {
			fmt.Fprintf(buf, "### %s\n\n", fs.Name)
			fmt.Fprintf(buf, "| Size | %s | %s | Difference | Winner |\n", r.VariantA, r.VariantB)
			fmt.Fprintf(buf, "|------|%s|%s|------------|--------|\n", dashes(r.VariantA), dashes(r.VariantB))
			for _, row := range fs.Rows {
				fmt.Fprintf(buf, "| %d | %s | %s | %s | %s |\n",
					row.Size, row.ScoreA, row.ScoreB, row.Diff, row.Winner)
			}
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("## Summary\n\n")
	formatRankTable(buf, &r.Summary.A)
	buf.WriteByte('\n')
	formatRankTable(buf, &r.Summary.B)
	buf.WriteByte('\n')

	buf.WriteString("## Conclusion\n\n")
	for _, line := range r.Conclusion {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func formatRankTable(buf *bytes.Buffer, t *RankTable) {
	fmt.Fprintf(buf, "### Operations where %s performs better\n\n", t.Variant)
	if len(t.Rows) == 0 {
		buf.WriteString("No clear winner found in any operation.\n")
		return
	}
	buf.WriteString("| Operation | Size | Performance Difference |\n")
	buf.WriteString("|-----------|------|------------------------|\n")
	for _, row := range t.Rows {
		fmt.Fprintf(buf, "| %s | %d | %s |\n", row.Operation, row.Size, row.Diff)
	}
	if t.GeoMean != "" {
		fmt.Fprintf(buf, "\nGeometric mean advantage: %s.\n", t.GeoMean)
	}
}

// dashes sizes a separator cell to its header label, ' label ' wide.
func dashes(label string) string {
	return strings.Repeat("-", len(label)+2)
}

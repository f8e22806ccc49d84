// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bytewright/listbench/benchchart"
	"github.com/bytewright/listbench/benchcmp"
	"github.com/bytewright/listbench/benchfmt"
	"github.com/bytewright/listbench/benchreport"
	"github.com/bytewright/listbench/storage"
)

var generateFlags struct {
	output   string
	format   string
	title    string
	charts   bool
	chartDir string
	archive  bool
	preview  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate [inputs...]",
	Short: "Generate a comparison report from benchmark output",
	Long: `Generate parses benchmark output files, pairs the two container
variants per operation and input size, and writes a comparison report.

With no inputs, or with an input of "-", generate reads standard input.
A malformed measurement line aborts the report so a partial comparison
is never mistaken for a complete one.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.output, "output", "o", "", "output file (default list-comparison-report.<format>)")
	f.StringVar(&generateFlags.format, "format", "", "report format, markdown or html (default from config)")
	f.StringVar(&generateFlags.title, "title", "", "report title")
	f.BoolVar(&generateFlags.charts, "charts", false, "render per-operation PNG charts")
	f.StringVar(&generateFlags.chartDir, "chart-dir", "charts", "directory for chart PNGs")
	f.BoolVar(&generateFlags.archive, "archive", false, "archive this run in the results database")
	f.BoolVar(&generateFlags.preview, "preview", false, "render the markdown report to the terminal")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	results, err := readInputs(args)
	if err != nil {
		return err
	}

	if generateFlags.archive {
		id, err := archiveRun(cmd.Context(), results)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s run %s (%d results)\n", statusStyle.Render("archived"), id, len(results))
	}

	return writeReport(cmd.OutOrStdout(), collect(results), reportOptions{
		Format:   generateFlags.format,
		Output:   generateFlags.output,
		Title:    generateFlags.title,
		Charts:   generateFlags.charts,
		ChartDir: generateFlags.chartDir,
		Preview:  generateFlags.preview,
	})
}

// readInputs parses every input file. A *SyntaxError anywhere is
// fatal: a report built from partially parsed data would silently
// misrepresent the comparison.
func readInputs(paths []string) ([]*benchfmt.Result, error) {
	files := benchfmt.Files{
		Paths:      paths,
		AllowStdin: true,
		Variants:   cfg.BenchVariants(),
	}
	var results []*benchfmt.Result
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *benchfmt.Result:
			results = append(results, rec)
		case *benchfmt.SyntaxError:
			return nil, rec
		}
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	// Zero results is not an error: the report still states that no
	// clear winner was found.
	return results, nil
}

func collect(results []*benchfmt.Result) *benchcmp.Collection {
	c := &benchcmp.Collection{Variants: cfg.BenchVariants()}
	for _, r := range results {
		c.Add(r)
	}
	return c
}

func archiveRun(ctx context.Context, results []*benchfmt.Result) (string, error) {
	db, err := storage.OpenSQL(cfg.Archive.Driver, cfg.Archive.DSN)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()

	run, err := db.NewRun(ctx)
	if err != nil {
		return "", fmt.Errorf("archiving run: %w", err)
	}
	for _, r := range results {
		if err := run.InsertResult(ctx, r); err != nil {
			return "", fmt.Errorf("archiving run %s: %w", run.ID, err)
		}
	}
	return run.ID, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

// reportOptions selects how writeReport renders and where it writes.
// Zero fields fall back to the configuration.
type reportOptions struct {
	Format   string
	Output   string
	Title    string
	Charts   bool
	ChartDir string
	Preview  bool
}

// writeReport builds the report from c and writes it to the output
// path, defaulting the format and path from the configuration.
// Status and any preview go to out.
func writeReport(out io.Writer, c *benchcmp.Collection, opts reportOptions) error {
	format := opts.Format
	if format == "" {
		format = cfg.Report.Format
	}
	title := opts.Title
	if title == "" {
		title = cfg.Title
	}
	rep := benchreport.Build(c, benchreport.Options{Title: title})

	output := opts.Output
	var buf bytes.Buffer
	switch format {
	case "markdown":
		benchreport.FormatMarkdown(&buf, rep)
		if output == "" {
			output = "list-comparison-report.md"
		}
	case "html":
		benchreport.FormatHTML(&buf, rep)
		if output == "" {
			output = "list-comparison-report.html"
		}
	default:
		return fmt.Errorf("unknown report format %q", format)
	}

	if err := os.WriteFile(output, buf.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", statusStyle.Render("wrote"), output)

	if opts.Charts || cfg.Report.Charts {
		chartDir := opts.ChartDir
		if chartDir == "" {
			chartDir = "charts"
		}
		if err := benchchart.Render(c, chartDir, benchchart.Options{}); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s charts to %s/\n", statusStyle.Render("wrote"), chartDir)
	}

	if opts.Preview && format == "markdown" {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		rendered, err := r.Render(buf.String())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}
	return nil
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bytewright/listbench/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the archived run database",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsReportFlags struct {
	output string
	format string
}

var runsReportCmd = &cobra.Command{
	Use:   "report RUN_ID",
	Short: "Regenerate a report from an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsReport,
}

func init() {
	f := runsReportCmd.Flags()
	f.StringVarP(&runsReportFlags.output, "output", "o", "", "output file (default list-comparison-report.<format>)")
	f.StringVar(&runsReportFlags.format, "format", "", "report format, markdown or html (default from config)")
	runsCmd.AddCommand(runsListCmd, runsReportCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	db, err := storage.OpenSQL(cfg.Archive.Driver, cfg.Archive.DSN)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no archived runs")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCREATED\tRESULTS")
	for _, ri := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\n", ri.ID, ri.CreatedAt, ri.Results)
	}
	return w.Flush()
}

func runRunsReport(cmd *cobra.Command, args []string) error {
	db, err := storage.OpenSQL(cfg.Archive.Driver, cfg.Archive.DSN)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()

	results, err := db.LoadRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), collect(results), reportOptions{
		Format: runsReportFlags.format,
		Output: runsReportFlags.output,
	})
}

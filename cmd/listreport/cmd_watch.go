// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bytewright/listbench/internal/watch"
)

var watchFlags struct {
	output   string
	format   string
	debounce time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch INPUT",
	Short: "Regenerate the report whenever a benchmark output file changes",
	Long: `Watch renders a report from INPUT, then re-renders it each time the
file is written. Stop it with Ctrl-C.

Unlike generate, a malformed line does not stop the watch; the error
is logged and the previous report is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVarP(&watchFlags.output, "output", "o", "", "output file (default list-comparison-report.<format>)")
	f.StringVar(&watchFlags.format, "format", "", "report format, markdown or html (default from config)")
	f.DurationVar(&watchFlags.debounce, "debounce", 500*time.Millisecond, "delay after the last write before regenerating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	render := func() error {
		results, err := readInputs([]string{input})
		if err != nil {
			log.Printf("skipping render: %v", err)
			return nil
		}
		opts := reportOptions{Format: watchFlags.format, Output: watchFlags.output}
		if err := writeReport(cmd.OutOrStdout(), collect(results), opts); err != nil {
			log.Printf("skipping render: %v", err)
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", input)
	return watch.Watch(ctx, input, watchFlags.debounce, render)
}

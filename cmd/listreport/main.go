// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Listreport turns raw list-benchmark output into comparison reports.
//
// It parses measurement lines of the form
//
//	bench.ListBenchmark.appendArrayList  avgt  100  0.52 ± 0.01  us/op
//
// pairs the two container variants per operation family and input
// size, and renders a markdown or HTML report with per-size verdicts,
// win rankings, and optional charts. Runs can be archived in a SQL
// database and reports regenerated from the archive later.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytewright/listbench/internal/config"

	// Archive database drivers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "listreport",
	Short:         "Compare list-container benchmark results",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "listbench.toml", "configuration file")
}

func main() {
	log.SetPrefix("listreport: ")
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

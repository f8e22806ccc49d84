// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads listreport configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bytewright/listbench/benchfmt"
)

// Config is the top-level listreport configuration.
type Config struct {
	// Title is the report title. Empty means a title derived from
	// the variant names.
	Title string `toml:"title"`

	Variants VariantsConfig `toml:"variants"`
	Report   ReportConfig   `toml:"report"`
	Archive  ArchiveConfig  `toml:"archive"`
}

// VariantsConfig names the two container variants as they appear in
// operation names.
type VariantsConfig struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	// Format is "markdown" or "html".
	Format string `toml:"format"`
	// Charts enables per-operation PNG charts alongside the report.
	Charts bool `toml:"charts"`
}

// ArchiveConfig controls the run archive database.
type ArchiveConfig struct {
	// Driver is a database/sql driver name, "sqlite3" or "mysql".
	Driver string `toml:"driver"`
	// DSN is the data source name passed to sql.Open.
	DSN string `toml:"dsn"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Variants: VariantsConfig{
			A: benchfmt.DefaultVariants.A,
			B: benchfmt.DefaultVariants.B,
		},
		Report:  ReportConfig{Format: "markdown"},
		Archive: ArchiveConfig{Driver: "sqlite3", DSN: "listbench.db"},
	}
}

// Load reads the configuration from path. A missing file is not an
// error; defaults are returned. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	switch cfg.Report.Format {
	case "markdown", "html":
	default:
		return nil, fmt.Errorf("config %s: unknown report format %q", path, cfg.Report.Format)
	}
	return cfg, nil
}

// BenchVariants returns the variant names in benchfmt form.
func (c *Config) BenchVariants() benchfmt.Variants {
	return benchfmt.Variants{A: c.Variants.A, B: c.Variants.B}
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytewright/listbench/benchcmp"
	"github.com/bytewright/listbench/benchfmt"
)

func collect(t *testing.T, lines ...string) *benchcmp.Collection {
	t.Helper()
	results, err := benchfmt.ParseAll(strings.NewReader(strings.Join(lines, "\n")), "test", benchfmt.Variants{})
	require.NoError(t, err)
	c := new(benchcmp.Collection)
	for _, r := range results {
		c.Add(r)
	}
	return c
}

func line(class, op string, size int, score float64) string {
	return fmt.Sprintf("%s.%s  avgt  %d  %.3f ± 0.001  us/op", class, op, size, score)
}

func TestRenderWritesOneChartPerFamily(t *testing.T) {
	c := collect(t,
		line("bench.ListBenchmark", "appendArrayList", 100, 0.52),
		line("bench.ListBenchmark", "appendLinkedList", 100, 0.68),
		line("bench.ListBenchmark", "appendArrayList", 1000, 5.1),
		line("bench.ListBenchmark", "appendLinkedList", 1000, 7.2),
		line("bench.ListBenchmark", "insertArrayList", 100, 1.9),
		line("bench.ListBenchmark", "insertLinkedList", 100, 1.4),
	)

	dir := t.TempDir()
	require.NoError(t, Render(c, dir, Options{}))

	for _, name := range []string{"ListBenchmark_append.png", "ListBenchmark_insert.png"} {
		st, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected chart %s", name)
		require.Greater(t, st.Size(), int64(0))
	}
}

func TestRenderSkipsIncomparableGroups(t *testing.T) {
	// Only one variant measured, so no chart should be produced.
	c := collect(t, line("bench.ListBenchmark", "appendArrayList", 100, 0.52))

	dir := t.TempDir()
	require.NoError(t, Render(c, dir, Options{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRenderLogScale(t *testing.T) {
	c := collect(t,
		line("bench.ListBenchmark", "appendArrayList", 10, 0.1),
		line("bench.ListBenchmark", "appendLinkedList", 10, 0.2),
		line("bench.ListBenchmark", "appendArrayList", 100000, 120),
		line("bench.ListBenchmark", "appendLinkedList", 100000, 310),
	)

	dir := t.TempDir()
	require.NoError(t, Render(c, dir, Options{LogScale: true}))

	_, err := os.Stat(filepath.Join(dir, "ListBenchmark_append.png"))
	require.NoError(t, err)
}

func TestSanitize(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"ListBenchmark_append", "ListBenchmark_append"},
		{"a b/c", "a_b_c"},
		{"x.y-z", "x.y-z"},
	} {
		require.Equal(t, test.want, sanitize(test.in))
	}
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))
	return path
}

func TestFilesSequence(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt",
		"pkg.Bench.getArrayList  avgt  10  0.10 ± 0.01  us/op\n")
	b := writeFile(t, dir, "b.txt",
		"pkg.Bench.getLinkedList  avgt  10  0.20 ± 0.01  us/op\n")

	f := &Files{Paths: []string{a, b}}
	var got []*Result
	for f.Scan() {
		r, ok := f.Result().(*Result)
		require.True(t, ok)
		got = append(got, r)
	}
	require.NoError(t, f.Err())
	require.Len(t, got, 2)
	assert.Equal(t, VariantA, got[0].Variant)
	assert.Equal(t, VariantB, got[1].Variant)

	file, _ := got[1].Pos()
	assert.Equal(t, b, file)
}

func TestFilesMissingFile(t *testing.T) {
	f := &Files{Paths: []string{filepath.Join(t.TempDir(), "nope.txt")}}
	assert.False(t, f.Scan())
	assert.Error(t, f.Err())
}

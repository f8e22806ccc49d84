// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/bytewright/listbench/benchfmt"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	// A file-backed database: in-memory sqlite gives each pooled
	// connection its own empty database.
	db, err := OpenSQL("sqlite3", filepath.Join(t.TempDir(), "archive.db")+"?_busy_timeout=10000")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func result(op string, size int, score float64) *benchfmt.Result {
	return &benchfmt.Result{
		Class:   "bench.ListBenchmark",
		Op:      op,
		Family:  benchfmt.DefaultVariants.Family(op),
		Variant: benchfmt.DefaultVariants.Classify(op),
		Mode:    "avgt",
		Size:    size,
		Score:   score,
		Error:   0.01,
		Unit:    "us/op",
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	run, err := db.NewRun(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	want := []*benchfmt.Result{
		result("appendArrayList", 100, 0.52),
		result("appendLinkedList", 100, 0.68),
	}
	for _, r := range want {
		require.NoError(t, run.InsertResult(ctx, r))
	}

	got, err := db.LoadRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, r := range got {
		require.Equal(t, want[i].Op, r.Op)
		require.Equal(t, want[i].Family, r.Family)
		require.Equal(t, want[i].Variant, r.Variant)
		require.Equal(t, want[i].Size, r.Size)
		require.InDelta(t, want[i].Score, r.Score, 1e-9)
		require.Equal(t, want[i].Unit, r.Unit)
	}
}

func TestListRuns(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	run1, err := db.NewRun(ctx)
	require.NoError(t, err)
	require.NoError(t, run1.InsertResult(ctx, result("appendArrayList", 100, 0.52)))

	run2, err := db.NewRun(ctx)
	require.NoError(t, err)

	runs, err := db.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byID := make(map[string]*RunInfo)
	for _, ri := range runs {
		require.NotEmpty(t, ri.CreatedAt)
		byID[ri.ID] = ri
	}
	require.Equal(t, 1, byID[run1.ID].Results)
	require.Equal(t, 0, byID[run2.ID].Results)
}

func TestConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	run, err := db.NewRun(ctx)
	require.NoError(t, err)

	const workers, perWorker = 4, 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := run.InsertResult(ctx, result("appendArrayList", 100, 0.52)); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := db.LoadRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, workers*perWorker)
}

func TestLoadUnknownRun(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadRun(context.Background(), "no-such-run")
	require.Error(t, err)
}

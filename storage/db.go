// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage archives benchmark runs in a SQL database so
// reports can be regenerated without re-parsing the raw output.
// It's safe for concurrent use by multiple goroutines.
package storage

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/bytewright/listbench/benchfmt"
)

// DB is a high-level interface to the run archive.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID VARCHAR(36) PRIMARY KEY,
	CreatedAt VARCHAR(64)
);
CREATE TABLE IF NOT EXISTS Results (
	RunID VARCHAR(36),
	Seq BIGINT UNSIGNED,
	Class VARCHAR(255),
	Op VARCHAR(255),
	Family VARCHAR(255),
	Variant VARCHAR(255),
	Mode VARCHAR(64),
	Size BIGINT,
	Score DOUBLE,
	Error DOUBLE,
	Unit VARCHAR(64),
	PRIMARY KEY (RunID, Seq),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ResultsClassFamily ON Results(Class, Family);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(RunID, CreatedAt) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare(
		"INSERT INTO Results(RunID, Seq, Class, Op, Family, Variant, Mode, Size, Score, Error, Unit) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// A Run is a set of results that share a run ID.
type Run struct {
	// ID identifies the run. It is unique across the archive.
	ID string

	// seq numbers results within the run. Incremented atomically so
	// concurrent inserts get distinct sequence numbers.
	seq atomic.Int64
	// db is the underlying database that this run is going to.
	db *DB
}

// NewRun returns a run for storing new results.
// All results written to the Run will have the same run ID.
func (db *DB) NewRun(ctx context.Context) (*Run, error) {
	id := uuid.NewString()
	_, err := db.insertRun.ExecContext(ctx, id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return &Run{ID: id, db: db}, nil
}

// InsertResult inserts a single result in an existing run.
func (u *Run) InsertResult(ctx context.Context, r *benchfmt.Result) error {
	seq := u.seq.Add(1) - 1
	_, err := u.db.insertResult.ExecContext(ctx, u.ID, seq,
		r.Class, r.Op, r.Family, r.Variant.String(), r.Mode, r.Size, r.Score, r.Error, r.Unit)
	return err
}

// A RunInfo summarizes one archived run.
type RunInfo struct {
	ID        string
	CreatedAt string
	Results   int
}

// ListRuns returns all archived runs, newest first.
func (db *DB) ListRuns(ctx context.Context) ([]*RunInfo, error) {
	rows, err := db.sql.QueryContext(ctx, `
SELECT r.RunID, r.CreatedAt, COUNT(s.RunID)
FROM Runs r LEFT JOIN Results s ON r.RunID = s.RunID
GROUP BY r.RunID, r.CreatedAt
ORDER BY r.CreatedAt DESC, r.RunID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []*RunInfo
	for rows.Next() {
		ri := new(RunInfo)
		if err := rows.Scan(&ri.ID, &ri.CreatedAt, &ri.Results); err != nil {
			return nil, err
		}
		runs = append(runs, ri)
	}
	return runs, rows.Err()
}

// LoadRun returns the results of an archived run in insertion order.
func (db *DB) LoadRun(ctx context.Context, id string) ([]*benchfmt.Result, error) {
	rows, err := db.sql.QueryContext(ctx, `
SELECT Class, Op, Family, Variant, Mode, Size, Score, Error, Unit
FROM Results WHERE RunID = ? ORDER BY Seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []*benchfmt.Result
	for rows.Next() {
		r := new(benchfmt.Result)
		var variant string
		if err := rows.Scan(&r.Class, &r.Op, &r.Family, &variant, &r.Mode, &r.Size, &r.Score, &r.Error, &r.Unit); err != nil {
			return nil, err
		}
		if variant == benchfmt.VariantA.String() {
			r.Variant = benchfmt.VariantA
		} else {
			r.Variant = benchfmt.VariantB
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if results == nil {
		return nil, fmt.Errorf("unknown run %q", id)
	}
	return results, nil
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if db.insertRun != nil {
		if err := db.insertRun.Close(); err != nil {
			return err
		}
	}
	if db.insertResult != nil {
		if err := db.insertResult.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}

// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// resultLine is the shape of one measurement line:
//
//	<class>.<op>  <mode>  <size>  <score> ± <error>  <unit>/op
//
// The numeric groups are deliberately loose: a line can match the
// shape and still fail numeric conversion, in which case the Reader
// yields a *SyntaxError record instead of silently skipping the line.
var resultLine = regexp.MustCompile(`([\w.]+)\.(\w+)\s+(\w+)\s+(\d+)\s+([0-9.]+)\s+±\s+([0-9.]+)\s+(\w+/op)`)

// A SyntaxError reports a measurement line that matched the expected
// shape but could not be parsed.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

// Pos returns the position of the malformed line.
func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called"}

// A Reader reads measurement results from raw harness output.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next
// record, Result returns it, and Err reports I/O errors after Scan
// returns false. Lines that do not match the measurement shape are
// skipped. Lines that match the shape but carry unparseable numbers
// yield a *SyntaxError record; the caller decides whether that is
// fatal.
//
// To construct a new Reader, either call NewReader, or call Reset on a
// zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	variants Variants
	fileName string
	line     int

	rec Record
	err error // current I/O error
}

// NewReader constructs a Reader parsing measurement lines from r.
// fileName is used in error messages; it is purely diagnostic.
// If variants is the zero value, DefaultVariants is used.
func NewReader(r io.Reader, fileName string, variants Variants) *Reader {
	reader := new(Reader)
	reader.variants = variants
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the Reader to begin reading from a new input.
// It keeps the configured variant names.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.rec = nil
	r.err = nil
}

// Scan advances the Reader to the next record and reports whether one
// was read. The caller should use the Result method to get the record.
// If Scan reaches EOF or an I/O error occurs, it returns false, in
// which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		m := resultLine.FindStringSubmatch(r.s.Text())
		if m == nil {
			// Not a measurement line.
			continue
		}
		r.rec = r.parseMatch(m)
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// parseMatch converts one shape-matched line into a *Result, or a
// *SyntaxError if a numeric field does not convert.
func (r *Reader) parseMatch(m []string) Record {
	size, err := strconv.Atoi(m[4])
	if err != nil {
		return r.newSyntaxError("parsing size: " + numErr(err))
	}
	score, err := strconv.ParseFloat(m[5], 64)
	if err != nil {
		return r.newSyntaxError("parsing score: " + numErr(err))
	}
	margin, err := strconv.ParseFloat(m[6], 64)
	if err != nil {
		return r.newSyntaxError("parsing error margin: " + numErr(err))
	}
	op := m[2]
	return &Result{
		Class:    m[1],
		Op:       op,
		Family:   r.variants.Family(op),
		Variant:  r.variants.Classify(op),
		Mode:     m[3],
		Size:     size,
		Score:    score,
		Error:    margin,
		Unit:     m[7],
		fileName: r.fileName,
		line:     r.line,
	}
}

// newSyntaxError returns a *SyntaxError at the Reader's current position.
func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// numErr unwraps strconv errors to their cause for terser messages.
func numErr(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}
	return err.Error()
}

// Result returns the record that was just read by Scan: either a
// *Result or a *SyntaxError.
func (r *Reader) Result() Record {
	if r.rec == nil {
		// This should only happen if Scan has never been called.
		return noResult
	}
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

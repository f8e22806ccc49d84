// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"os"
)

// A Files reads measurement results from a sequence of input files
// with the same Scan/Result/Err API as Reader.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and that an empty Paths should be treated as consisting
	// of stdin. This is generally the desired behavior when the
	// file list comes from command-line arguments.
	AllowStdin bool

	// Variants configures variant detection for all files.
	// The zero value means DefaultVariants.
	Variants Variants

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []string

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

func (f *Files) init() {
	f.inputs = []string{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, "-")
	}
	f.inputs = append(f.inputs, f.Paths...)
	f.reader.variants = f.Variants
}

// Scan advances to the next record in the sequence of files and
// reports whether one was read. If Scan reaches the end of the file
// sequence, or if an I/O error occurs, it returns false; the caller
// should then use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
				f.reader.Reset(os.Stdin, "<stdin>")
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
				f.reader.Reset(file, path)
			}
		}

		if f.reader.Scan() {
			return true
		}
		if err := f.reader.Err(); err != nil {
			f.err = err
			return false
		}
		// Just an EOF. Close this file and open the next.
		if !f.isStdin {
			f.file.Close()
		}
		f.file = nil
	}
}

// Result returns the record that was just read by Scan.
// See Reader.Result.
func (f *Files) Result() Record {
	return f.reader.Result()
}

// Err returns the I/O error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}

// ParseAll reads every record from r and returns the parsed results.
// The first *SyntaxError record encountered is returned as an error
// along with the results parsed so far; this is the fail-fast policy
// for shape-matching lines with unparseable numbers.
func ParseAll(r io.Reader, fileName string, variants Variants) ([]*Result, error) {
	reader := NewReader(r, fileName, variants)
	var results []*Result
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *Result:
			results = append(results, rec)
		case *SyntaxError:
			return results, rec
		}
	}
	return results, reader.Err()
}

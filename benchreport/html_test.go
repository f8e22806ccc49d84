// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytewright/listbench/benchcmp"
	"github.com/bytewright/listbench/benchfmt"
)

func html(c *benchcmp.Collection, opts Options) string {
	var buf bytes.Buffer
	FormatHTML(&buf, Build(c, opts))
	return buf.String()
}

func TestHTMLStructure(t *testing.T) {
	c := collect(t, benchfmt.Variants{},
		"pkg.Bench.appendArrayList   avgt  100  0.52 ± 0.01  us/op",
		"pkg.Bench.appendLinkedList  avgt  100  0.68 ± 0.02  us/op",
	)
	out := html(c, Options{})

	assert.Contains(t, out, "<title>ArrayList vs LinkedList Performance Comparison</title>")
	assert.Contains(t, out, "<h2>Bench</h2>")
	assert.Contains(t, out, "<h3>Append</h3>")
	assert.Contains(t, out, "<td>0.52 us</td><td>0.68 us</td><td>30.77%</td><td>ArrayList</td>")
	assert.Contains(t, out, "<h3>Operations where ArrayList performs better</h3>")
	assert.Contains(t, out, "<p>Geometric mean advantage: 1.31x.</p>")
	assert.Contains(t, out, "<h2>Conclusion</h2>")
}

func TestHTMLNoWinner(t *testing.T) {
	out := html(new(benchcmp.Collection), Options{})
	assert.Contains(t, out, "<p>No clear winner found in any operation.</p>")
	assert.NotContains(t, out, "<h3>Append</h3>")
}

func TestHTMLEscapesTitle(t *testing.T) {
	out := html(new(benchcmp.Collection), Options{Title: "a <b> & c"})
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;b&gt;")
}

func TestHTMLIdempotent(t *testing.T) {
	c := collect(t, benchfmt.Variants{},
		"pkg.Bench.getArrayList   avgt  10  0.10 ± 0.01  us/op",
		"pkg.Bench.getLinkedList  avgt  10  0.20 ± 0.01  us/op",
	)
	assert.Equal(t, html(c, Options{}), html(c, Options{}))
}

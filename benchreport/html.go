// Copyright 2026 The ListBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"

	"github.com/google/safehtml/template"
)

const reportSrc = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.listbench { border-collapse: collapse; margin-bottom: 1em; }
.listbench th, .listbench td { border: 1px solid #ccc; padding: 0.25em 0.75em; }
.listbench th:first-child, .listbench td:first-child { text-align: left; }
.listbench td { text-align: right; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Intro}}</p>
{{range .Classes}}<h2>{{.Name}}</h2>
{{range .Families}}<h3>{{.Name}}</h3>
<table class="listbench">
<tr><th>Size</th><th>{{$.VariantA}}</th><th>{{$.VariantB}}</th><th>Difference</th><th>Winner</th></tr>
{{range .Rows}}<tr><td>{{.Size}}</td><td>{{.ScoreA}}</td><td>{{.ScoreB}}</td><td>{{.Diff}}</td><td>{{.Winner}}</td></tr>
{{end}}</table>
{{end}}{{end}}<h2>Summary</h2>
{{template "ranking" .Summary.A}}{{template "ranking" .Summary.B}}<h2>Conclusion</h2>
{{range .Conclusion}}<p>{{.}}</p>
{{end}}</body>
</html>
{{define "ranking"}}<h3>Operations where {{.Variant}} performs better</h3>
{{if .Rows}}<table class="listbench">
<tr><th>Operation</th><th>Size</th><th>Performance Difference</th></tr>
{{range .Rows}}<tr><td>{{.Operation}}</td><td>{{.Size}}</td><td>{{.Diff}}</td></tr>
{{end}}</table>
{{if .GeoMean}}<p>Geometric mean advantage: {{.GeoMean}}.</p>
{{end}}{{else}}<p>No clear winner found in any operation.</p>
{{end}}{{end}}`

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(
	template.MakeTrustedTemplate(reportSrc)))

// FormatHTML appends an HTML rendering of the report to buf.
func FormatHTML(buf *bytes.Buffer, r *Report) {
	if err := htmlTemplate.Execute(buf, r); err != nil {
		// Only possible errors here are template not matching the
		// data structure. Don't make the caller check - it's our
		// fault.
		panic(err)
	}
}

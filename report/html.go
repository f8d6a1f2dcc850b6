// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"strings"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
}).Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Messaging Benchmark Summary</title>
<style>
.msgstat { border-collapse: collapse; margin-bottom: 2em; }
.msgstat th { border-bottom: 1px solid #666; padding: 0em 1em; }
.msgstat td { padding: 0em 1em; text-align: right; }
.msgstat td:first-child { text-align: left; }
</style>
</head>
<body>
{{- range .Sections}}
<h2>{{upper .Title}}</h2>
<table class="msgstat">
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

// HTML writes r as an HTML page with one table per section.
func (r *Report) HTML(w io.Writer) error {
	return htmlTemplate.Execute(w, r)
}

package webui

import (
	"html/template"

	"github.com/hazyhaar/docroute/catalog"
)

type indexData struct {
	Docs  []*catalog.Document
	Query string
	Tag   string
	Lang  string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>docroute</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
.tag { background: #e8f0fe; border-radius: 3px; padding: 0 0.3rem; margin-right: 0.2rem; }
form.filters input, form.filters select { margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>docroute</h1>

<form class="filters" method="get" action="/">
  <input type="text" name="q" placeholder="search title or file" value="{{.Query}}">
  <input type="text" name="tag" placeholder="tag" value="{{.Tag}}">
  <select name="lang">
    <option value="" {{if eq .Lang ""}}selected{{end}}>any language</option>
    <option value="en" {{if eq .Lang "en"}}selected{{end}}>English</option>
    <option value="ml" {{if eq .Lang "ml"}}selected{{end}}>Malayalam</option>
    <option value="unknown" {{if eq .Lang "unknown"}}selected{{end}}>Unknown</option>
  </select>
  <button type="submit">Filter</button>
</form>

<form method="post" action="/upload" enctype="multipart/form-data">
  <input type="file" name="document" accept=".pdf,.docx,.txt" required>
  <button type="submit">Upload</button>
</form>

<table>
<tr><th>File</th><th>Title</th><th>Language</th><th>Tags</th><th>First seen</th></tr>
{{range .Docs}}
<tr>
  <td><a href="/detail/{{.ContentHash}}">{{.FileName}}</a></td>
  <td>{{.Title}}</td>
  <td>{{.Language}}</td>
  <td>{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</td>
  <td>{{.FirstSeenAt}}</td>
</tr>
{{else}}
<tr><td colspan="5">No documents yet.</td></tr>
{{end}}
</table>
</body>
</html>
`))

var detailTmpl = template.Must(template.New("detail").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.FileName}} — docroute</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 60rem; }
dt { font-weight: bold; margin-top: 0.8rem; }
.tag { background: #e8f0fe; border-radius: 3px; padding: 0 0.3rem; margin-right: 0.2rem; }
code { background: #f4f4f4; padding: 0 0.2rem; }
</style>
</head>
<body>
<p><a href="/">&larr; back</a></p>
<h1>{{.Title}}</h1>
<dl>
  <dt>File</dt><dd>{{.FileName}} (<code>{{.SourcePath}}</code>)</dd>
  <dt>SHA-256</dt><dd><code>{{.ContentHash}}</code></dd>
  <dt>Language</dt><dd>{{.Language}}</dd>
  <dt>Tags</dt><dd>{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</dd>
  <dt>Summary</dt>
  <dd><ul>{{range .Summary}}<li>{{.}}</li>{{else}}<li><em>empty document</em></li>{{end}}</ul></dd>
  <dt>Action items</dt>
  <dd><ul>{{range .ActionItems}}<li>{{.}}</li>{{else}}<li><em>none detected</em></li>{{end}}</ul></dd>
  <dt>Dates</dt><dd>{{range $i, $d := .Dates}}{{if $i}}; {{end}}{{$d}}{{else}}&mdash;{{end}}</dd>
  <dt>Amounts</dt><dd>{{range $i, $a := .Amounts}}{{if $i}}; {{end}}{{$a}}{{else}}&mdash;{{end}}</dd>
  <dt>First seen</dt><dd>{{.FirstSeenAt}}</dd>
  <dt>Updated</dt><dd>{{.UpdatedAt}}</dd>
</dl>
</body>
</html>
`))

package docs

import (
	"fmt"
	"html/template"
	"io"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/audit"
	"github.com/tyltnine/schemascope/graph"
)

// printPage is the template input for the print export.
type printPage struct {
	Title    string
	Tables   []printTable
	Enums    []*schemascope.Object
	Views    []*schemascope.Object
	Routines []*schemascope.Object
	Glossary []GlossaryEntry
}

type printTable struct {
	Object       *schemascope.Object
	ReferencedBy []string
	Warnings     []string
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; margin: 2rem auto; max-width: 60rem; }
h1 { border-bottom: 2px solid #333; }
h2 { page-break-before: auto; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 0.25rem 0.5rem; text-align: left; }
.warning { color: #92400e; }
.muted { color: #666; }
@media print { h2 { page-break-inside: avoid; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Tables}}
<h2>{{.Object.Name}}</h2>
{{with .Object.Comment}}<p>{{.}}</p>{{end}}
<table>
<tr><th>Column</th><th>Type</th><th>Constraints</th><th>References</th></tr>
{{range .Object.Columns}}
<tr>
<td>{{.Name}}</td>
<td>{{.DataType}}</td>
<td>{{if .PrimaryKey}}PK {{end}}{{if .Unique}}UNIQUE {{end}}{{if not .Nullable}}NOT NULL{{end}}</td>
<td>{{with .ForeignKey}}{{.Table}}.{{.Column}}{{end}}</td>
</tr>
{{end}}
</table>
{{with .ReferencedBy}}<p class="muted">Referenced by: {{range $i, $r := .}}{{if $i}}, {{end}}{{$r}}{{end}}</p>{{end}}
{{range .Warnings}}<p class="warning">⚠ {{.}}</p>{{end}}
{{end}}
{{with .Enums}}
<h2>Enums</h2>
<ul>{{range .}}<li><strong>{{.Name}}</strong>: {{range $i, $v := .Values}}{{if $i}}, {{end}}{{$v}}{{end}}</li>{{end}}</ul>
{{end}}
{{with .Views}}
<h2>Views</h2>
<ul>{{range .}}<li><strong>{{.Name}}</strong>: {{.Comment}}</li>{{end}}</ul>
{{end}}
{{with .Routines}}
<h2>Functions &amp; Triggers</h2>
<ul>{{range .}}<li><strong>{{.Name}}</strong> ({{.Type}}): {{.Comment}}</li>{{end}}</ul>
{{end}}
<h2>Glossary</h2>
<ul>{{range .Glossary}}<li><strong>{{.Term}}</strong>: {{.Definition}}</li>{{end}}</ul>
</body>
</html>
`))

// WritePrintHTML renders the print-ready standalone HTML export.
func WritePrintHTML(w io.Writer, model *schemascope.Model, edges []graph.Edge, findings []audit.Finding) error {
	page := printPage{
		Title:    "Database Schema Reference",
		Enums:    model.ByType(schemascope.TypeEnum),
		Views:    model.ByType(schemascope.TypeView),
		Glossary: Glossary(),
	}

	page.Routines = append(page.Routines, model.ByType(schemascope.TypeFunction)...)
	page.Routines = append(page.Routines, model.ByType(schemascope.TypeTrigger)...)

	for _, t := range model.Tables() {
		pt := printTable{Object: t}

		for _, e := range graph.Incoming(edges, t.Key) {
			if src, ok := model.ByKey(e.From); ok {
				pt.ReferencedBy = append(pt.ReferencedBy, src.Name+"."+e.Label)
			}
		}

		for _, finding := range findings {
			if finding.Table == t.Name {
				pt.Warnings = append(pt.Warnings, finding.Detail)
			}
		}

		page.Tables = append(page.Tables, pt)
	}

	if err := printTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("rendering print export: %w", err)
	}

	return nil
}

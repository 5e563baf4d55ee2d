// Package docs assembles documentation content from the schema model, the
// relationship graph, and the audit findings. Generators here are pure
// content assembly; they never mutate their inputs.
package docs

import (
	"fmt"
	"io"
	"strings"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/audit"
	"github.com/tyltnine/schemascope/graph"
)

// MarkdownFormatter writes schema documentation as Markdown.
type MarkdownFormatter struct {
	writer       io.Writer
	model        *schemascope.Model
	edges        []graph.Edge
	findings     []audit.Finding
	descriptions *schemascope.LookupChain
}

// NewMarkdownFormatter creates a markdown formatter over a built model.
func NewMarkdownFormatter(w io.Writer, model *schemascope.Model, edges []graph.Edge, findings []audit.Finding) *MarkdownFormatter {
	return &MarkdownFormatter{
		writer:       w,
		model:        model,
		edges:        edges,
		findings:     findings,
		descriptions: schemascope.NewLookupChain(BusinessDescriptions),
	}
}

// Format writes the full documentation: tables first, then enums, views,
// functions, and triggers, each in dataset order.
func (f *MarkdownFormatter) Format() error {
	_, _ = fmt.Fprintln(f.writer, "# Database Schema")
	_, _ = fmt.Fprintln(f.writer)
	_, _ = fmt.Fprintf(f.writer, "%d objects: %d tables, %d enums, %d views, %d functions, %d triggers.\n",
		f.model.Len(),
		len(f.model.ByType(schemascope.TypeTable)),
		len(f.model.ByType(schemascope.TypeEnum)),
		len(f.model.ByType(schemascope.TypeView)),
		len(f.model.ByType(schemascope.TypeFunction)),
		len(f.model.ByType(schemascope.TypeTrigger)))
	_, _ = fmt.Fprintln(f.writer)

	for _, t := range f.model.Tables() {
		f.formatTable(t)
	}

	f.formatEnums()
	f.formatViews()
	f.formatRoutines(schemascope.TypeFunction, "Functions")
	f.formatRoutines(schemascope.TypeTrigger, "Triggers")

	return nil
}

// FormatObject writes the documentation section for a single object.
func (f *MarkdownFormatter) FormatObject(obj *schemascope.Object) {
	switch obj.Type {
	case schemascope.TypeTable:
		f.formatTable(obj)
	case schemascope.TypeEnum:
		_, _ = fmt.Fprintf(f.writer, "## %s (enum)\n\nValues: %s\n\n", obj.Name, strings.Join(obj.Values, ", "))
	case schemascope.TypeView:
		_, _ = fmt.Fprintf(f.writer, "## %s (view)\n\n%s\n\nReads from: %s\n\n",
			obj.Name, obj.Comment, strings.Join(obj.BaseTables, ", "))
	case schemascope.TypeFunction, schemascope.TypeTrigger:
		_, _ = fmt.Fprintf(f.writer, "## %s (%s)\n\n%s\n\n", obj.Name, obj.Type, obj.Comment)
	}
}

func (f *MarkdownFormatter) formatTable(table *schemascope.Object) {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", table.Name)

	if table.Comment != "" {
		_, _ = fmt.Fprintf(f.writer, "%s\n\n", table.Comment)
	}

	_, _ = fmt.Fprintln(f.writer, "### Columns")
	_, _ = fmt.Fprintln(f.writer)

	for _, col := range table.Columns {
		constraints := columnConstraints(col)

		line := fmt.Sprintf("- **%s:** %s", col.Name, col.DataType)
		if constraints != "" {
			line += ", " + constraints
		}

		if desc := f.describe(table, col); desc != "" {
			line += " — " + desc
		}

		_, _ = fmt.Fprintln(f.writer, line)
	}

	_, _ = fmt.Fprintln(f.writer)

	f.formatReferences(table)
	f.formatReferencedBy(table)
	f.formatIndexes(table)
	f.formatWarnings(table)
}

// describe resolves a column description: explicit comment first, then the
// business-description lookup chain.
func (f *MarkdownFormatter) describe(table *schemascope.Object, col schemascope.Column) string {
	if col.Comment != "" {
		return col.Comment
	}

	return f.descriptions.Describe(table.Name, col)
}

func columnConstraints(col schemascope.Column) string {
	var constraints []string

	if col.PrimaryKey {
		constraints = append(constraints, "PK")
	}

	if col.Unique {
		constraints = append(constraints, "UNIQUE")
	}

	if !col.Nullable && !col.PrimaryKey {
		constraints = append(constraints, "NOT NULL")
	}

	return strings.Join(constraints, ", ")
}

func (f *MarkdownFormatter) formatReferences(table *schemascope.Object) {
	var lines []string

	for _, col := range table.Columns {
		if col.ForeignKey == nil {
			continue
		}

		lines = append(lines, fmt.Sprintf("- %s → %s.%s",
			col.Name, col.ForeignKey.Table, col.ForeignKey.Column))
	}

	if len(lines) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "### References")
	_, _ = fmt.Fprintln(f.writer)

	for _, line := range lines {
		_, _ = fmt.Fprintln(f.writer, line)
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatReferencedBy(table *schemascope.Object) {
	incoming := graph.Incoming(f.edges, table.Key)
	if len(incoming) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "### Referenced by")
	_, _ = fmt.Fprintln(f.writer)

	for _, e := range incoming {
		if src, ok := f.model.ByKey(e.From); ok {
			_, _ = fmt.Fprintf(f.writer, "- %s.%s\n", src.Name, e.Label)
		}
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatIndexes(table *schemascope.Object) {
	if len(table.Indexes) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "### Indexes")
	_, _ = fmt.Fprintln(f.writer)

	for _, idx := range table.Indexes {
		line := fmt.Sprintf("- %s on (%s)", idx.Name, strings.Join(idx.Columns, ", "))

		if idx.Unique {
			line += ", unique"
		}

		if idx.Partial != "" {
			line += ", where " + idx.Partial
		}

		_, _ = fmt.Fprintln(f.writer, line)
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatWarnings(table *schemascope.Object) {
	var lines []string

	for _, finding := range f.findings {
		if finding.Table == table.Name {
			lines = append(lines, "- ⚠ "+finding.Detail)
		}
	}

	if len(lines) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "### Warnings")
	_, _ = fmt.Fprintln(f.writer)

	for _, line := range lines {
		_, _ = fmt.Fprintln(f.writer, line)
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatEnums() {
	enums := f.model.ByType(schemascope.TypeEnum)
	if len(enums) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "## Enums")
	_, _ = fmt.Fprintln(f.writer)

	for _, e := range enums {
		_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", e.Name, strings.Join(e.Values, ", "))
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatViews() {
	views := f.model.ByType(schemascope.TypeView)
	if len(views) == 0 {
		return
	}

	_, _ = fmt.Fprintln(f.writer, "## Views")
	_, _ = fmt.Fprintln(f.writer)

	for _, v := range views {
		_, _ = fmt.Fprintf(f.writer, "- **%s:** %s Reads from: %s.\n",
			v.Name, v.Comment, strings.Join(v.BaseTables, ", "))
	}

	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatRoutines(t schemascope.ObjectType, heading string) {
	objs := f.model.ByType(t)
	if len(objs) == 0 {
		return
	}

	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", heading)

	for _, obj := range objs {
		_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", obj.Name, obj.Comment)
	}

	_, _ = fmt.Fprintln(f.writer)
}

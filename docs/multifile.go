package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/audit"
	"github.com/tyltnine/schemascope/graph"
)

// MultiFileFormatter writes one Markdown file per table plus an overview,
// for docs sites that want a page per object.
type MultiFileFormatter struct {
	OutputDir string
	model     *schemascope.Model
	edges     []graph.Edge
	findings  []audit.Finding
}

// NewMultiFileFormatter creates a multi-file formatter.
func NewMultiFileFormatter(outputDir string, model *schemascope.Model, edges []graph.Edge, findings []audit.Finding) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir: outputDir,
		model:     model,
		edges:     edges,
		findings:  findings,
	}
}

// Format writes the overview and per-table files.
func (f *MultiFileFormatter) Format() error {
	if err := os.MkdirAll(f.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := f.writeOverview(); err != nil {
		return err
	}

	for _, t := range f.model.Tables() {
		if err := f.writeTableFile(t); err != nil {
			return err
		}
	}

	return nil
}

func (f *MultiFileFormatter) writeOverview() error {
	var buf bytes.Buffer

	_, _ = fmt.Fprintln(&buf, "# Schema Overview")
	_, _ = fmt.Fprintln(&buf)

	for _, t := range f.model.Tables() {
		_, _ = fmt.Fprintf(&buf, "- [%s](%s.md)", t.Name, t.Name)

		if t.Comment != "" {
			_, _ = fmt.Fprintf(&buf, " — %s", t.Comment)
		}

		_, _ = fmt.Fprintln(&buf)
	}

	_, _ = fmt.Fprintln(&buf)
	WriteGlossary(&buf)

	return f.write("_overview.md", buf.Bytes())
}

func (f *MultiFileFormatter) writeTableFile(table *schemascope.Object) error {
	var buf bytes.Buffer

	md := NewMarkdownFormatter(&buf, f.model, f.edges, f.findings)
	md.FormatObject(table)

	return f.write(table.Name+".md", buf.Bytes())
}

func (f *MultiFileFormatter) write(name string, data []byte) error {
	path := filepath.Join(f.OutputDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

package docs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyltnine/schemascope/docs"
)

func TestWritePrintHTML(t *testing.T) {
	t.Parallel()

	model, edges, findings := docsFixture(t)

	var buf bytes.Buffer
	require.NoError(t, docs.WritePrintHTML(&buf, model, edges, findings))

	out := buf.String()

	require.Contains(t, out, "<!DOCTYPE html>")
	require.Contains(t, out, "<h2>clients</h2>")
	require.Contains(t, out, "<td>client_id</td>")
	require.Contains(t, out, "clients.id")
	require.Contains(t, out, "Referenced by: locations.client_id")
	require.Contains(t, out, "has no covering index")
	require.Contains(t, out, "<h2>Glossary</h2>")
	require.Contains(t, out, "@media print")
}

func TestMultiFileFormatter(t *testing.T) {
	t.Parallel()

	model, edges, findings := docsFixture(t)
	dir := t.TempDir()

	f := docs.NewMultiFileFormatter(filepath.Join(dir, "out"), model, edges, findings)
	require.NoError(t, f.Format())

	overview, err := os.ReadFile(filepath.Join(dir, "out", "_overview.md"))
	require.NoError(t, err)
	require.Contains(t, string(overview), "[clients](clients.md)")
	require.Contains(t, string(overview), "# Glossary")

	page, err := os.ReadFile(filepath.Join(dir, "out", "locations.md"))
	require.NoError(t, err)
	require.Contains(t, string(page), "## locations")
	require.Contains(t, string(page), "client_id → clients.id")
}

package docs_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyltnine/schemascope/docs"
)

func TestGlossary_SortedAndStable(t *testing.T) {
	t.Parallel()

	entries := docs.Glossary()
	require.NotEmpty(t, entries)

	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	}), "glossary must be alphabetical")

	again := docs.Glossary()
	assert.Equal(t, entries, again)
}

func TestGlossary_CoreTerms(t *testing.T) {
	t.Parallel()

	terms := make(map[string]bool)
	for _, e := range docs.Glossary() {
		terms[e.Term] = true
	}

	for _, want := range []string{
		"Foreign key (FK)",
		"Covering index",
		"1-hop neighborhood",
		"Isolation mode",
		"Edge-visibility mode",
	} {
		assert.True(t, terms[want], "missing term %q", want)
	}
}

func TestWriteGlossary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	docs.WriteGlossary(&buf)

	out := buf.String()

	require.Contains(t, out, "# Glossary")
	require.Contains(t, out, "**Covering index:**")
}

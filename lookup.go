package schemascope

import "strings"

// LookupStrategy derives a candidate key for a column. Returning "" means
// the strategy does not apply.
type LookupStrategy func(table string, col Column) string

// LookupChain resolves descriptive text for a column by trying an ordered
// sequence of strategies against a key-to-text table, falling back to a
// generic default. The chain makes the fallback behavior a named, testable
// policy instead of ad-hoc string manipulation at call sites.
type LookupChain struct {
	entries    map[string]string
	strategies []LookupStrategy
	fallback   func(table string, col Column) string
}

// NewLookupChain builds a chain over the given entries using the default
// strategy order: exact "table.column", exact column name, FK-suffix base
// name (client_id -> client, created_by -> created).
func NewLookupChain(entries map[string]string) *LookupChain {
	return &LookupChain{
		entries: entries,
		strategies: []LookupStrategy{
			QualifiedColumnKey,
			ColumnNameKey,
			SuffixBaseKey,
		},
		fallback: genericDescription,
	}
}

// QualifiedColumnKey keys on "table.column".
func QualifiedColumnKey(table string, col Column) string {
	return table + "." + col.Name
}

// ColumnNameKey keys on the bare column name.
func ColumnNameKey(_ string, col Column) string {
	return col.Name
}

// SuffixBaseKey strips a reference suffix (_id, _by) from the column name.
func SuffixBaseKey(_ string, col Column) string {
	for _, suffix := range []string{"_id", "_by"} {
		if base, ok := strings.CutSuffix(col.Name, suffix); ok && base != "" {
			return base
		}
	}

	return ""
}

// Describe resolves the description for a column.
func (c *LookupChain) Describe(table string, col Column) string {
	for _, strategy := range c.strategies {
		key := strategy(table, col)
		if key == "" {
			continue
		}

		if text, ok := c.entries[key]; ok {
			return text
		}
	}

	return c.fallback(table, col)
}

func genericDescription(_ string, col Column) string {
	if col.ForeignKey != nil {
		return "References " + col.ForeignKey.Table + "." + col.ForeignKey.Column + "."
	}

	return ""
}

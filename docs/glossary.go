package docs

import (
	"fmt"
	"io"
	"sort"
)

// GlossaryEntry is one term with its definition.
type GlossaryEntry struct {
	Term       string
	Definition string
}

// Glossary returns the built-in glossary in alphabetical order.
func Glossary() []GlossaryEntry {
	entries := []GlossaryEntry{
		{"Foreign key (FK)", "A column-level reference from one table to a row-identifying column of another table."},
		{"Covering index", "An index whose leading column matches a given column, usable to accelerate lookups and joins on that column."},
		{"1-hop neighborhood", "A node plus all nodes connected to it by exactly one edge, direction-agnostic."},
		{"Isolation mode", "A view filter that visually suppresses all graph elements outside the 1-hop neighborhood of the current selection."},
		{"Edge-visibility mode", "A tri-state policy (focus/all/off) controlling which relationship edges are rendered and at what emphasis."},
		{"Primary key (PK)", "The column or columns that uniquely identify a row."},
		{"Partial index", "An index restricted by a predicate to a subset of rows."},
		{"Work order", "A job to perform at a client location; the central entity of the work domain."},
		{"Domain", "A grouping tag on schema objects used for filtering (directory, work, billing, inventory, audit)."},
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Term < entries[j].Term })

	return entries
}

// WriteGlossary renders the glossary as Markdown.
func WriteGlossary(w io.Writer) {
	_, _ = fmt.Fprintln(w, "# Glossary")
	_, _ = fmt.Fprintln(w)

	for _, e := range Glossary() {
		_, _ = fmt.Fprintf(w, "- **%s:** %s\n", e.Term, e.Definition)
	}
}

// BusinessDescriptions backs the column-description lookup chain. Keys are
// tried in chain order: qualified "table.column" names first, then bare
// column names, then the base name with its reference suffix stripped.
var BusinessDescriptions = map[string]string{
	"work_orders.status":   "Lifecycle state; completed and cancelled orders are terminal.",
	"invoices.status":      "Billing state; only sent invoices accrue toward the overdue view.",
	"client":               "The customer account this row belongs to.",
	"location":             "The service address this row applies to.",
	"work_order":           "The job this row is part of.",
	"invoice":              "The bill this row settles or details.",
	"inventory_item":       "The stocked part involved.",
	"technician":           "The staff member performing the visit.",
	"assigned_to":          "Technician currently responsible for the job.",
	"created":              "The staff member who created this row.",
	"author":               "The staff member who wrote this row.",
	"actor":                "The staff member who performed the recorded action.",
	"quantity_on_hand":     "Current stock level, maintained by stock_movements.",
	"legacy_job_id":        "Identifier from the retired jobs system; kept for old rows only.",
}

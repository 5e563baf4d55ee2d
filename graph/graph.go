// Package graph derives the relationship graph and diagram layout from a
// schema model, and computes the visibility decisions the diagram renderer
// applies. Everything here is a pure function of its inputs: rebuilding with
// the same model yields identical edges and positions.
package graph

import (
	schemascope "github.com/tyltnine/schemascope"
)

// Edge is a directed foreign-key relationship between two tables, labeled
// with the source column name. From and To are node keys, not table names.
// Two FKs between the same pair of tables produce two distinct edges.
type Edge struct {
	From  string
	To    string
	Label string
}

// BuildEdges derives the edge set from the model's tables. A column whose FK
// target does not resolve to an existing table contributes no edge; dangling
// references are a documentation-data concern, not a graph error.
func BuildEdges(model *schemascope.Model) []Edge {
	var edges []Edge

	for _, table := range model.Tables() {
		for _, col := range table.Columns {
			if col.ForeignKey == nil {
				continue
			}

			target, ok := model.TableByName(col.ForeignKey.Table)
			if !ok {
				continue
			}

			edges = append(edges, Edge{
				From:  table.Key,
				To:    target.Key,
				Label: col.Name,
			})
		}
	}

	return edges
}

// Incoming returns the edges pointing at the given node key, in edge-list
// order. Documentation renderers use this for "referenced by" sections.
func Incoming(edges []Edge, key string) []Edge {
	var in []Edge

	for _, e := range edges {
		if e.To == key {
			in = append(in, e)
		}
	}

	return in
}

// Outgoing returns the edges originating at the given node key.
func Outgoing(edges []Edge, key string) []Edge {
	var out []Edge

	for _, e := range edges {
		if e.From == key {
			out = append(out, e)
		}
	}

	return out
}

// Touching reports whether the edge has key as either endpoint.
func (e Edge) Touching(key string) bool {
	return e.From == key || e.To == key
}

package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/graph"
)

// fixtureModel builds the clients/locations scenario plus an unrelated
// third table and a dangling reference.
func fixtureModel(t *testing.T) *schemascope.Model {
	t.Helper()

	m, err := schemascope.NewModel([]*schemascope.Object{
		{
			Name: "clients",
			Type: schemascope.TypeTable,
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
			},
		},
		{
			Name: "locations",
			Type: schemascope.TypeTable,
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
				{Name: "client_id", DataType: "bigint", ForeignKey: &schemascope.ForeignKey{Table: "clients", Column: "id"}},
			},
		},
		{
			Name: "inventory_items",
			Type: schemascope.TypeTable,
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
				{Name: "legacy_id", DataType: "bigint", ForeignKey: &schemascope.ForeignKey{Table: "legacy_items", Column: "id"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	return m
}

func TestBuildEdges(t *testing.T) {
	t.Parallel()

	m := fixtureModel(t)

	got := graph.BuildEdges(m)

	// Exactly one edge: the dangling legacy_items reference contributes
	// nothing.
	want := []graph.Edge{
		{From: "table:locations", To: "table:clients", Label: "client_id"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildEdges mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEdges_Deterministic(t *testing.T) {
	t.Parallel()

	m := fixtureModel(t)

	first := graph.BuildEdges(m)
	second := graph.BuildEdges(m)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("BuildEdges not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildEdges_PreservesParallelEdges(t *testing.T) {
	t.Parallel()

	m, err := schemascope.NewModel([]*schemascope.Object{
		{
			Name: "users",
			Type: schemascope.TypeTable,
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
			},
		},
		{
			Name: "work_orders",
			Type: schemascope.TypeTable,
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
				{Name: "assigned_to", DataType: "bigint", ForeignKey: &schemascope.ForeignKey{Table: "users", Column: "id"}},
				{Name: "created_by", DataType: "bigint", ForeignKey: &schemascope.ForeignKey{Table: "users", Column: "id"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	edges := graph.BuildEdges(m)

	// Two FKs to the same table stay two distinct edges, each with its own
	// label.
	want := []graph.Edge{
		{From: "table:work_orders", To: "table:users", Label: "assigned_to"},
		{From: "table:work_orders", To: "table:users", Label: "created_by"},
	}

	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("parallel edges mismatch (-want +got):\n%s", diff)
	}
}

func TestIncomingOutgoing(t *testing.T) {
	t.Parallel()

	edges := []graph.Edge{
		{From: "table:locations", To: "table:clients", Label: "client_id"},
		{From: "table:contacts", To: "table:clients", Label: "client_id"},
		{From: "table:contacts", To: "table:locations", Label: "location_id"},
	}

	in := graph.Incoming(edges, "table:clients")
	if len(in) != 2 {
		t.Fatalf("Incoming(clients) = %d edges, want 2", len(in))
	}

	out := graph.Outgoing(edges, "table:contacts")
	if len(out) != 2 {
		t.Fatalf("Outgoing(contacts) = %d edges, want 2", len(out))
	}

	if graph.Incoming(edges, "table:contacts") != nil {
		t.Error("Incoming(contacts) should be empty")
	}
}

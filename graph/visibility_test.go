package graph_test

import (
	"testing"

	"github.com/tyltnine/schemascope/graph"
)

var scenarioEdges = []graph.Edge{
	{From: "table:locations", To: "table:clients", Label: "client_id"},
}

var scenarioNodes = []string{"table:clients", "table:locations", "table:payments"}

func TestEdgeMode_CycleReturnsToStart(t *testing.T) {
	t.Parallel()

	mode := graph.ModeFocus

	mode = mode.Next()
	if mode != graph.ModeAll {
		t.Fatalf("after one step: %v, want all", mode)
	}

	mode = mode.Next()
	if mode != graph.ModeOff {
		t.Fatalf("after two steps: %v, want off", mode)
	}

	mode = mode.Next()
	if mode != graph.ModeFocus {
		t.Fatalf("after three steps: %v, want focus", mode)
	}
}

func TestNeighbors_SymmetryAndSelfInclusion(t *testing.T) {
	t.Parallel()

	for _, a := range scenarioNodes {
		na := graph.Neighbors(scenarioEdges, a)

		if !na[a] {
			t.Errorf("neighbors(%s) must include the node itself", a)
		}

		for _, b := range scenarioNodes {
			nb := graph.Neighbors(scenarioEdges, b)

			if na[b] != nb[a] {
				t.Errorf("neighbor symmetry broken: %s in n(%s)=%v, %s in n(%s)=%v",
					b, a, na[b], a, b, nb[a])
			}
		}
	}
}

func TestNeighbors_OneHopOnly(t *testing.T) {
	t.Parallel()

	// chain a -> b -> c: neighbors(a) must not reach c.
	edges := []graph.Edge{
		{From: "a", To: "b", Label: "b_id"},
		{From: "b", To: "c", Label: "c_id"},
	}

	n := graph.Neighbors(edges, "a")

	if !n["a"] || !n["b"] {
		t.Error("neighbors(a) should contain a and b")
	}

	if n["c"] {
		t.Error("neighbors(a) must not contain the two-hop node c")
	}
}

func TestIsolationVisibility(t *testing.T) {
	t.Parallel()

	edges := []graph.Edge{
		{From: "table:locations", To: "table:clients", Label: "client_id"},
		{From: "table:payments", To: "table:invoices", Label: "invoice_id"},
	}
	nodes := []string{"table:clients", "table:locations", "table:payments", "table:invoices"}

	t.Run("disabled dims nothing", func(t *testing.T) {
		t.Parallel()

		dim := graph.IsolationVisibility(edges, nodes, "table:locations", false)
		if len(dim.Nodes) != 0 || len(dim.Edges) != 0 {
			t.Errorf("disabled isolation dimmed %d nodes, %d edges", len(dim.Nodes), len(dim.Edges))
		}
	})

	t.Run("no selection dims nothing", func(t *testing.T) {
		t.Parallel()

		dim := graph.IsolationVisibility(edges, nodes, "", true)
		if len(dim.Nodes) != 0 || len(dim.Edges) != 0 {
			t.Error("isolation without selection should dim nothing")
		}
	})

	t.Run("selection dims non-neighbors", func(t *testing.T) {
		t.Parallel()

		dim := graph.IsolationVisibility(edges, nodes, "table:locations", true)

		if dim.Nodes["table:clients"] {
			t.Error("clients is a neighbor of locations and must not be dimmed")
		}

		if dim.Nodes["table:locations"] {
			t.Error("the selection is in its own neighborhood and must not be dimmed")
		}

		if !dim.Nodes["table:payments"] || !dim.Nodes["table:invoices"] {
			t.Error("unrelated tables must be dimmed")
		}

		if dim.Edges[0] {
			t.Error("the locations->clients edge has both endpoints in the neighborhood")
		}

		if !dim.Edges[1] {
			t.Error("the payments->invoices edge is outside the neighborhood")
		}
	})
}

func TestEdgeVisibility(t *testing.T) {
	t.Parallel()

	edges := []graph.Edge{
		{From: "table:locations", To: "table:clients", Label: "client_id"},
		{From: "table:payments", To: "table:invoices", Label: "invoice_id"},
	}

	tests := []struct {
		name      string
		activeKey string
		mode      graph.EdgeMode
		want      []graph.EdgeVisual
	}{
		{
			name:      "focus shows only touching edges",
			activeKey: "table:clients",
			mode:      graph.ModeFocus,
			want: []graph.EdgeVisual{
				{Opacity: 1, Highlighted: true},
				{Opacity: 0, Highlighted: false},
			},
		},
		{
			name:      "all keeps the rest dimmed",
			activeKey: "table:clients",
			mode:      graph.ModeAll,
			want: []graph.EdgeVisual{
				{Opacity: 1, Highlighted: true},
				{Opacity: 0.4, Highlighted: false},
			},
		},
		{
			name:      "off hides everything even when highlighted",
			activeKey: "table:clients",
			mode:      graph.ModeOff,
			want: []graph.EdgeVisual{
				{Opacity: 0, Highlighted: true},
				{Opacity: 0, Highlighted: false},
			},
		},
		{
			name:      "focus with no active key hides all",
			activeKey: "",
			mode:      graph.ModeFocus,
			want: []graph.EdgeVisual{
				{Opacity: 0, Highlighted: false},
				{Opacity: 0, Highlighted: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := graph.EdgeVisibility(edges, tt.activeKey, tt.mode)

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("edge %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestComposeOpacity_StrongerConstraintWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode   float64
		dimmed bool
		want   float64
	}{
		{1.0, false, 1.0},
		{1.0, true, 0.4},
		{0.4, true, 0.4},
		{0.0, true, 0.0}, // mode-hidden stays hidden under isolation
		{0.0, false, 0.0},
	}

	for _, tt := range tests {
		if got := graph.ComposeOpacity(tt.mode, tt.dimmed); got != tt.want {
			t.Errorf("ComposeOpacity(%v, %v) = %v, want %v", tt.mode, tt.dimmed, got, tt.want)
		}
	}
}

package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/graph"
)

func tables(names ...string) []*schemascope.Object {
	objs := make([]*schemascope.Object, len(names))
	for i, name := range names {
		objs[i] = &schemascope.Object{
			Key:  "table:" + name,
			Name: name,
			Type: schemascope.TypeTable,
		}
	}

	return objs
}

func TestComputeLayout_Grid(t *testing.T) {
	t.Parallel()

	params := graph.LayoutParams{
		Columns:     2,
		NodeWidth:   100,
		NodePadding: 20,
		RowHeight:   80,
		MarginX:     10,
		MarginY:     5,
	}

	got := graph.ComputeLayout(tables("a", "b", "c", "d", "e"), params)

	// column = i mod 2, row = i div 2, x = col*(100+20)+10, y = row*80+5.
	want := map[string]graph.Point{
		"table:a": {X: 10, Y: 5},
		"table:b": {X: 130, Y: 5},
		"table:c": {X: 10, Y: 85},
		"table:d": {X: 130, Y: 85},
		"table:e": {X: 10, Y: 165},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayout_Deterministic(t *testing.T) {
	t.Parallel()

	objs := tables("a", "b", "c", "d", "e", "f", "g")
	params := graph.DefaultLayoutParams()

	first := graph.ComputeLayout(objs, params)
	second := graph.ComputeLayout(objs, params)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("layout not deterministic:\n%s", diff)
	}
}

func TestComputeLayout_ZeroColumnsFallsBack(t *testing.T) {
	t.Parallel()

	got := graph.ComputeLayout(tables("a"), graph.LayoutParams{})
	if len(got) != 1 {
		t.Fatalf("got %d positions, want 1", len(got))
	}
}

func TestControlPoint_OffsetFromMidpoint(t *testing.T) {
	t.Parallel()

	a := graph.Point{X: 0, Y: 0}
	b := graph.Point{X: 100, Y: 0}

	ctrl := graph.ControlPoint(a, b)

	if ctrl.X != 50 {
		t.Errorf("ctrl.X = %v, want midpoint 50", ctrl.X)
	}

	if ctrl.Y == 0 {
		t.Error("control point should be offset perpendicular to the segment")
	}

	// Swapping endpoints bows the arc to the other side, which keeps
	// opposite-direction parallel edges visually distinct.
	rev := graph.ControlPoint(b, a)
	if rev.Y == ctrl.Y {
		t.Error("reversed edge should bow to the opposite side")
	}
}

package graph

import schemascope "github.com/tyltnine/schemascope"

// Point is a 2D diagram position.
type Point struct {
	X float64
	Y float64
}

// LayoutParams configure the diagram grid.
type LayoutParams struct {
	Columns     int
	NodeWidth   float64
	NodePadding float64
	RowHeight   float64
	MarginX     float64
	MarginY     float64
}

// DefaultLayoutParams returns the standard grid.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Columns:     4,
		NodeWidth:   220,
		NodePadding: 60,
		RowHeight:   180,
		MarginX:     40,
		MarginY:     40,
	}
}

// ComputeLayout assigns each table a fixed grid position in table-list
// order. The layout is a pure function of that order and the grid
// parameters; there is no physics simulation and no edge-crossing
// minimization. The diagram is a documentation aid, not a precision layout
// tool, so the simple grid is the deliberate choice.
func ComputeLayout(tables []*schemascope.Object, params LayoutParams) map[string]Point {
	if params.Columns <= 0 {
		params.Columns = DefaultLayoutParams().Columns
	}

	positions := make(map[string]Point, len(tables))

	for i, table := range tables {
		col := i % params.Columns
		row := i / params.Columns

		positions[table.Key] = Point{
			X: float64(col)*(params.NodeWidth+params.NodePadding) + params.MarginX,
			Y: float64(row)*params.RowHeight + params.MarginY,
		}
	}

	return positions
}

// ControlPoint returns the midpoint of a and b offset perpendicular to the
// segment, so an edge renders as a directed arc rather than a straight line.
// Rendering aid only; direction stays from -> to.
func ControlPoint(a, b Point) Point {
	midX := (a.X + b.X) / 2
	midY := (a.Y + b.Y) / 2

	// Perpendicular of (dx, dy) is (-dy, dx); a fixed fraction keeps the
	// bow proportional to edge length.
	dx := b.X - a.X
	dy := b.Y - a.Y

	const bow = 0.15

	return Point{
		X: midX - dy*bow,
		Y: midY + dx*bow,
	}
}

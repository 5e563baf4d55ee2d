package explorer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/graph"
)

// Cell scale: how many layout units one terminal cell covers at zoom 1.
// Terminal cells are roughly twice as tall as wide, so the vertical scale is
// larger to keep node spacing visually square.
const (
	unitsPerCellX = 14.0
	unitsPerCellY = 28.0
)

// Diagram renders the entity-relationship diagram onto a text canvas. The
// graph and layout are computed once; Render applies the interaction state
// (selection, hover, isolation, edge mode, pan/zoom) on every call.
type Diagram struct {
	model  *schemascope.Model
	edges  []graph.Edge
	layout map[string]graph.Point
	styles *Styles
}

// NewDiagram creates a diagram over a prebuilt graph.
func NewDiagram(model *schemascope.Model, edges []graph.Edge, layout map[string]graph.Point, styles *Styles) *Diagram {
	return &Diagram{
		model:  model,
		edges:  edges,
		layout: layout,
		styles: styles,
	}
}

// canvas is a fixed-size grid of styled runes.
type canvas struct {
	width  int
	height int
	runes  []rune
	styles []*lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		styles: make([]*lipgloss.Style, width*height),
	}

	for i := range c.runes {
		c.runes[i] = ' '
	}

	return c
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}

	i := y*c.width + x
	c.runes[i] = r
	c.styles[i] = style
}

func (c *canvas) text(x, y int, s string, style *lipgloss.Style) {
	for i, r := range s {
		c.set(x+i, y, r, style)
	}
}

// String renders the canvas, merging consecutive same-style runes into one
// lipgloss call per run.
func (c *canvas) String() string {
	var b strings.Builder

	for y := 0; y < c.height; y++ {
		var (
			run      strings.Builder
			runStyle *lipgloss.Style
		)

		flush := func() {
			if run.Len() == 0 {
				return
			}

			if runStyle != nil {
				b.WriteString(runStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}

			run.Reset()
		}

		for x := 0; x < c.width; x++ {
			i := y*c.width + x
			if c.styles[i] != runStyle {
				flush()

				runStyle = c.styles[i]
			}

			run.WriteRune(c.runes[i])
		}

		flush()
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// project maps a layout point to canvas cell coordinates under the current
// pan/zoom.
func project(p graph.Point, st *State) (int, int) {
	x := (p.X*st.Zoom + st.PanX) / unitsPerCellX
	y := (p.Y*st.Zoom + st.PanY) / unitsPerCellY

	return int(x), int(y)
}

// nodeBox is the on-canvas rectangle for a table node.
type nodeBox struct {
	x, y, w, h int
}

func (b nodeBox) center() (int, int) {
	return b.x + b.w/2, b.y + b.h/2
}

// Render draws the diagram for the given state into a width x height cell
// area. Derived state (edge visibility, isolation dimming) is computed from
// the state snapshot, so the output always reflects a single consistent
// interaction state.
func (d *Diagram) Render(st *State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	c := newCanvas(width, height)

	tables := d.model.Tables()

	keys := make([]string, len(tables))
	for i, t := range tables {
		keys[i] = t.Key
	}

	dim := graph.IsolationVisibility(d.edges, keys, st.SelectedKey, st.IsolationEnabled)
	visuals := graph.EdgeVisibility(d.edges, st.ActiveKey(), st.EdgeMode)

	boxes := make(map[string]nodeBox, len(tables))

	for _, t := range tables {
		pos, ok := d.layout[t.Key]
		if !ok {
			continue
		}

		x, y := project(pos, st)
		boxes[t.Key] = nodeBox{x: x, y: y, w: len(t.Name) + 4, h: 3}
	}

	// Edges render under nodes.
	for i, e := range d.edges {
		opacity := graph.ComposeOpacity(visuals[i].Opacity, dim.Edges[i])
		if opacity == 0 {
			continue
		}

		var style *lipgloss.Style

		switch {
		case opacity < 1:
			style = &d.styles.EdgeDim
		case visuals[i].Highlighted:
			style = &d.styles.EdgeHot
		default:
			style = &d.styles.Edge
		}

		d.drawEdge(c, boxes, e, visuals[i].Highlighted, style)
	}

	for _, t := range tables {
		box, ok := boxes[t.Key]
		if !ok {
			continue
		}

		style := &d.styles.Normal

		switch {
		case dim.Nodes[t.Key]:
			style = &d.styles.Dim
		case t.Key == st.SelectedKey:
			style = &d.styles.Selected
		case t.Key == st.HoveredKey:
			style = &d.styles.Hovered
		}

		d.drawNode(c, box, t.Name, style)
	}

	return c.String()
}

func (d *Diagram) drawNode(c *canvas, box nodeBox, name string, style *lipgloss.Style) {
	top := "┌" + strings.Repeat("─", box.w-2) + "┐"
	mid := "│ " + name + " │"
	bot := "└" + strings.Repeat("─", box.w-2) + "┘"

	c.text(box.x, box.y, top, style)
	c.text(box.x, box.y+1, mid, style)
	c.text(box.x, box.y+2, bot, style)
}

// drawEdge samples a quadratic arc from the source box center to the target
// box center so the FK direction reads as a bow. The head marker sits near
// the target; the label is drawn at the apex for highlighted edges only.
func (d *Diagram) drawEdge(c *canvas, boxes map[string]nodeBox, e graph.Edge, highlighted bool, style *lipgloss.Style) {
	from, okFrom := boxes[e.From]
	to, okTo := boxes[e.To]

	if !okFrom || !okTo {
		return
	}

	fx, fy := from.center()
	tx, ty := to.center()

	a := graph.Point{X: float64(fx), Y: float64(fy)}
	b := graph.Point{X: float64(tx), Y: float64(ty)}
	ctrl := graph.ControlPoint(a, b)

	steps := abs(tx-fx) + abs(ty-fy)
	if steps < 2 {
		steps = 2
	}

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)

		// Quadratic bezier through the control point.
		mt := 1 - t
		x := mt*mt*a.X + 2*mt*t*ctrl.X + t*t*b.X
		y := mt*mt*a.Y + 2*mt*t*ctrl.Y + t*t*b.Y

		r := '·'
		if i == steps*4/5 {
			r = '▶'
			if tx < fx {
				r = '◀'
			}
		}

		c.set(int(x), int(y), r, style)
	}

	if highlighted {
		// Arc apex at t = 0.5.
		x := 0.25*a.X + 0.5*ctrl.X + 0.25*b.X
		y := 0.25*a.Y + 0.5*ctrl.Y + 0.25*b.Y

		c.text(int(x)-len(e.Label)/2, int(y), e.Label, style)
	}
}

// HitTest returns the key of the table whose box contains the canvas cell
// (x, y) under the given state, for mouse hover and click.
func (d *Diagram) HitTest(st *State, x, y int) (string, bool) {
	for _, t := range d.model.Tables() {
		pos, ok := d.layout[t.Key]
		if !ok {
			continue
		}

		bx, by := project(pos, st)
		w := len(t.Name) + 4

		if x >= bx && x < bx+w && y >= by && y < by+3 {
			return t.Key, true
		}
	}

	return "", false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

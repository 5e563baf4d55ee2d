// Package explorer holds the interaction state machine and the terminal UI
// that renders the schema diagram, documentation, and glossary views.
package explorer

import "github.com/tyltnine/schemascope/graph"

// View identifies the active screen.
type View int

// Views, switchable with the 1/2/3 shortcuts.
const (
	ViewDiagram View = iota
	ViewDocs
	ViewGlossary
)

func (v View) String() string {
	switch v {
	case ViewDiagram:
		return "diagram"
	case ViewDocs:
		return "docs"
	case ViewGlossary:
		return "glossary"
	default:
		return "unknown"
	}
}

// Zoom clamp range. Values outside it render degenerately, so SetZoom
// refuses them.
const (
	MinZoom = 0.25
	MaxZoom = 3.0
)

// State is the single source of truth for UI interaction. The axes are
// independent: any combination of view, selection, edge mode, isolation, and
// pan/zoom is valid. All mutation funnels through the methods below so every
// visual subsystem reacts deterministically. A State is owned by exactly one
// event-handling context; it is passed by reference rather than kept as a
// package-level singleton so multiple explorers can coexist and tests need
// no global reset.
type State struct {
	SelectedKey      string
	HoveredKey       string
	EdgeMode         graph.EdgeMode
	IsolationEnabled bool
	PanX             float64
	PanY             float64
	Zoom             float64
	ActiveView       View
}

// NewState returns the session defaults. Interaction state has no
// persistence; every session starts here.
func NewState() *State {
	return &State{
		EdgeMode:   graph.ModeFocus,
		Zoom:       1.0,
		ActiveView: ViewDiagram,
	}
}

// Select sets the selection. Selecting "" (Escape) also clears the hover;
// nothing else is touched.
func (s *State) Select(key string) {
	s.SelectedKey = key

	if key == "" {
		s.HoveredKey = ""
	}
}

// Hover sets the hover target without affecting the selection.
func (s *State) Hover(key string) {
	s.HoveredKey = key
}

// CycleEdgeMode advances focus -> all -> off -> focus.
func (s *State) CycleEdgeMode() {
	s.EdgeMode = s.EdgeMode.Next()
}

// ToggleIsolation sets isolation mode.
func (s *State) ToggleIsolation(enabled bool) {
	s.IsolationEnabled = enabled
}

// PanBy offsets the viewport. Panning is unconstrained.
func (s *State) PanBy(dx, dy float64) {
	s.PanX += dx
	s.PanY += dy
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (s *State) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}

	if zoom > MaxZoom {
		zoom = MaxZoom
	}

	s.Zoom = zoom
}

// SetView switches the active view. Selection and hover survive the switch:
// returning to the diagram after reading docs keeps the context.
func (s *State) SetView(v View) {
	s.ActiveView = v
}

// ActiveKey is the key the renderer highlights relationships for: the
// selection when present, else the hover. Hovering a different node while
// something is selected must not change the highlighted relationships.
func (s *State) ActiveKey() string {
	if s.SelectedKey != "" {
		return s.SelectedKey
	}

	return s.HoveredKey
}

package graph

// EdgeMode is the tri-state edge-visibility policy.
type EdgeMode int

// Edge-visibility modes. Focus is the default: it hides every edge not
// touching the active node, which keeps the diagram readable.
const (
	ModeFocus EdgeMode = iota
	ModeAll
	ModeOff
)

// Next advances through the fixed cycle focus -> all -> off -> focus.
func (m EdgeMode) Next() EdgeMode {
	switch m {
	case ModeFocus:
		return ModeAll
	case ModeAll:
		return ModeOff
	default:
		return ModeFocus
	}
}

func (m EdgeMode) String() string {
	switch m {
	case ModeFocus:
		return "focus"
	case ModeAll:
		return "all"
	case ModeOff:
		return "off"
	default:
		return "unknown"
	}
}

// Neighbors returns the undirected 1-hop neighborhood of key: the node
// itself plus every node one edge away in either direction. FK direction is
// semantically asymmetric, but "related to" is symmetric for documentation
// purposes, so isolation treats the graph as undirected.
func Neighbors(edges []Edge, key string) map[string]bool {
	set := map[string]bool{key: true}

	for _, e := range edges {
		switch key {
		case e.From:
			set[e.To] = true
		case e.To:
			set[e.From] = true
		}
	}

	return set
}

// Dimming holds the isolation result: which nodes and which edge indexes
// (into the edge list) render dimmed.
type Dimming struct {
	Nodes map[string]bool
	Edges map[int]bool
}

// IsolationVisibility computes dimming for isolation mode. With isolation
// disabled or nothing selected, nothing is dimmed. Otherwise nodes outside
// the selection's neighborhood are dimmed, and an edge is dimmed unless both
// endpoints are inside it.
func IsolationVisibility(edges []Edge, nodeKeys []string, selectedKey string, enabled bool) Dimming {
	dim := Dimming{
		Nodes: make(map[string]bool),
		Edges: make(map[int]bool),
	}

	if !enabled || selectedKey == "" {
		return dim
	}

	keep := Neighbors(edges, selectedKey)

	for _, key := range nodeKeys {
		if !keep[key] {
			dim.Nodes[key] = true
		}
	}

	for i, e := range edges {
		if !keep[e.From] || !keep[e.To] {
			dim.Edges[i] = true
		}
	}

	return dim
}

// EdgeVisual is the rendered state of one edge.
type EdgeVisual struct {
	Opacity     float64
	Highlighted bool
}

// Opacity levels per mode.
const (
	opacityFull   = 1.0
	opacityDimmed = 0.4
	opacityHidden = 0.0
)

// EdgeVisibility computes per-edge opacity and highlight for the given mode.
// An edge is highlighted iff activeKey is one of its endpoints. The result
// ignores isolation dimming; callers compose the two by taking the minimum
// opacity (see ComposeOpacity).
func EdgeVisibility(edges []Edge, activeKey string, mode EdgeMode) []EdgeVisual {
	visuals := make([]EdgeVisual, len(edges))

	for i, e := range edges {
		highlighted := activeKey != "" && e.Touching(activeKey)

		var opacity float64

		switch mode {
		case ModeFocus:
			if highlighted {
				opacity = opacityFull
			} else {
				opacity = opacityHidden
			}
		case ModeAll:
			if highlighted {
				opacity = opacityFull
			} else {
				opacity = opacityDimmed
			}
		case ModeOff:
			opacity = opacityHidden
		}

		visuals[i] = EdgeVisual{Opacity: opacity, Highlighted: highlighted}
	}

	return visuals
}

// ComposeOpacity combines the mode opacity with isolation dimming. The
// stronger constraint wins: a mode-hidden edge stays hidden even when not
// dimmed, and a dimmed edge never renders brighter than dimmed.
func ComposeOpacity(modeOpacity float64, isolationDimmed bool) float64 {
	if !isolationDimmed {
		return modeOpacity
	}

	return min(modeOpacity, opacityDimmed)
}

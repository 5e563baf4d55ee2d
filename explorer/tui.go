package explorer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	schemascope "github.com/tyltnine/schemascope"
	"github.com/tyltnine/schemascope/audit"
	"github.com/tyltnine/schemascope/docs"
	"github.com/tyltnine/schemascope/graph"
)

const (
	headerHeight   = 1
	footerHeight   = 2
	inspectorWidth = 38
)

// UI is the bubbletea model for the explorer. All interaction state lives in
// an injected *State; bubbletea delivers events on a single goroutine, so
// every state mutation is fully reflected in the derived visuals before the
// next event is processed.
type UI struct {
	schema   *schemascope.Model
	edges    []graph.Edge
	layout   map[string]graph.Point
	findings []audit.Finding
	diagram  *Diagram
	state    *State
	styles   *Styles

	tables      []*schemascope.Object
	cursor      int
	gridColumns int

	filterInput textinput.Model
	filtering   bool
	filter      *schemascope.Filter
	filterErr   string

	docView   viewport.Model
	glossView viewport.Model

	width  int
	height int
	ready  bool
}

// NewUI creates the explorer over a prebuilt model and graph. The State is
// injected so callers (and tests) own the lifecycle.
func NewUI(model *schemascope.Model, edges []graph.Edge, layout map[string]graph.Point, findings []audit.Finding, state *State, gridColumns int) *UI {
	styles := DefaultStyles()

	input := textinput.New()
	input.Placeholder = `type == "table" && domain == "billing"`
	input.Prompt = "/ "

	return &UI{
		schema:      model,
		edges:       edges,
		layout:      layout,
		findings:    findings,
		diagram:     NewDiagram(model, edges, layout, styles),
		state:       state,
		styles:      styles,
		tables:      model.Tables(),
		gridColumns: gridColumns,
		filterInput: input,
	}
}

// State exposes the interaction state, mainly for tests.
func (u *UI) State() *State {
	return u.state
}

// Init implements tea.Model.
func (u *UI) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (u *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.width = msg.Width
		u.height = msg.Height

		if !u.ready {
			u.ready = true
			u.docView = viewport.New(u.width, 1)
			u.glossView = viewport.New(u.width, 1)

			u.glossView.SetContent(glossaryContent())
			u.refreshDocs()
		}

		u.layoutViews()

		return u, nil

	case tea.KeyMsg:
		if u.filtering {
			return u.handleFilterKey(msg)
		}

		return u.handleKey(msg)

	case tea.MouseMsg:
		return u.handleMouse(msg)
	}

	return u, nil
}

func (u *UI) layoutViews() {
	body := u.height - headerHeight - footerHeight
	if body < 1 {
		body = 1
	}

	u.docView.Width = u.width
	u.docView.Height = body
	u.glossView.Width = u.width
	u.glossView.Height = body
}

func (u *UI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return u, tea.Quit

	case "1":
		u.state.SetView(ViewDiagram)
	case "2":
		u.state.SetView(ViewDocs)
		u.refreshDocs()
	case "3":
		u.state.SetView(ViewGlossary)

	case "esc":
		u.state.Select("")
		u.refreshDocs()

	case "e":
		u.state.CycleEdgeMode()

	case "i":
		u.state.ToggleIsolation(!u.state.IsolationEnabled)
	}

	switch u.state.ActiveView {
	case ViewDiagram:
		return u.handleDiagramKey(msg)
	case ViewDocs:
		return u.handleDocsKey(msg)
	case ViewGlossary:
		var cmd tea.Cmd
		u.glossView, cmd = u.glossView.Update(msg)

		return u, cmd
	}

	return u, nil
}

func (u *UI) handleDiagramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		u.moveCursor(-1)
	case "right", "l":
		u.moveCursor(1)
	case "up", "k":
		u.moveCursor(-u.gridColumns)
	case "down", "j":
		u.moveCursor(u.gridColumns)

	case "enter", " ":
		if len(u.tables) > 0 {
			u.state.Select(u.tables[u.cursor].Key)
			u.refreshDocs()
		}

	case "+", "=":
		u.state.SetZoom(u.state.Zoom * 1.2)
	case "-", "_":
		u.state.SetZoom(u.state.Zoom / 1.2)
	case "0":
		u.state.SetZoom(1.0)
		u.state.PanX = 0
		u.state.PanY = 0

	case "shift+left", "H":
		u.state.PanBy(unitsPerCellX*2, 0)
	case "shift+right", "L":
		u.state.PanBy(-unitsPerCellX*2, 0)
	case "shift+up", "K":
		u.state.PanBy(0, unitsPerCellY)
	case "shift+down", "J":
		u.state.PanBy(0, -unitsPerCellY)
	}

	return u, nil
}

func (u *UI) moveCursor(delta int) {
	if len(u.tables) == 0 {
		return
	}

	next := u.cursor + delta
	if next < 0 || next >= len(u.tables) {
		return
	}

	u.cursor = next
	u.state.Hover(u.tables[next].Key)
}

func (u *UI) handleDocsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "/" {
		u.filtering = true
		u.filterErr = ""
		u.filterInput.Focus()

		return u, textinput.Blink
	}

	var cmd tea.Cmd
	u.docView, cmd = u.docView.Update(msg)

	return u, cmd
}

func (u *UI) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		u.filtering = false
		u.filter = nil
		u.filterErr = ""
		u.filterInput.Reset()
		u.refreshDocs()

		return u, nil

	case "enter":
		src := strings.TrimSpace(u.filterInput.Value())
		u.filtering = false

		if src == "" {
			u.filter = nil
			u.refreshDocs()

			return u, nil
		}

		filter, err := schemascope.CompileFilter(src)
		if err != nil {
			u.filterErr = err.Error()
			u.filter = nil
		} else {
			u.filterErr = ""
			u.filter = filter
		}

		u.refreshDocs()

		return u, nil
	}

	var cmd tea.Cmd
	u.filterInput, cmd = u.filterInput.Update(msg)

	return u, cmd
}

func (u *UI) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if u.state.ActiveView != ViewDiagram {
		return u, nil
	}

	x := msg.X
	y := msg.Y - headerHeight

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		u.state.SetZoom(u.state.Zoom * 1.1)

		return u, nil
	case tea.MouseButtonWheelDown:
		u.state.SetZoom(u.state.Zoom / 1.1)

		return u, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		key, _ := u.diagram.HitTest(u.state, x, y)
		u.state.Hover(key)

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			key, ok := u.diagram.HitTest(u.state, x, y)
			if ok {
				u.state.Select(key)
			} else {
				u.state.Select("")
			}

			u.refreshDocs()
		}
	}

	return u, nil
}

// refreshDocs rebuilds the docs viewport content from the current selection
// and filter. Scroll position survives content updates.
func (u *UI) refreshDocs() {
	var buf bytes.Buffer

	md := docs.NewMarkdownFormatter(&buf, u.schema, u.edges, u.findings)

	switch {
	case u.state.ActiveKey() != "":
		if obj, ok := u.schema.ByKey(u.state.ActiveKey()); ok {
			md.FormatObject(obj)
		}
	case u.filter != nil:
		for _, obj := range u.filter.Apply(u.schema.Objects()) {
			md.FormatObject(obj)
		}
	default:
		_ = md.Format()
	}

	u.docView.SetContent(buf.String())
}

func glossaryContent() string {
	var buf bytes.Buffer

	docs.WriteGlossary(&buf)

	return buf.String()
}

// View implements tea.Model.
func (u *UI) View() string {
	if !u.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(u.renderHeader())
	b.WriteString("\n")

	body := u.height - headerHeight - footerHeight
	if body < 1 {
		body = 1
	}

	switch u.state.ActiveView {
	case ViewDiagram:
		diagramWidth := u.width - inspectorWidth
		if diagramWidth < 20 {
			diagramWidth = u.width
		}

		canvas := u.diagram.Render(u.state, diagramWidth, body)

		if diagramWidth < u.width {
			panel := u.renderInspector(body)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, panel))
		} else {
			b.WriteString(canvas)
		}

	case ViewDocs:
		if u.filtering {
			b.WriteString(u.filterInput.View())
			b.WriteString("\n")
		} else if u.filterErr != "" {
			b.WriteString(u.styles.Warning.Render("filter: " + u.filterErr))
			b.WriteString("\n")
		}

		b.WriteString(u.docView.View())

	case ViewGlossary:
		b.WriteString(u.glossView.View())
	}

	b.WriteString("\n")
	b.WriteString(u.renderHelp())

	return b.String()
}

func (u *UI) renderHeader() string {
	title := u.styles.Title.Render("schemascope")

	var tabs []string

	for v := ViewDiagram; v <= ViewGlossary; v++ {
		label := fmt.Sprintf("%d %s", int(v)+1, v)

		if v == u.state.ActiveView {
			tabs = append(tabs, u.styles.Bold.Render(label))
		} else {
			tabs = append(tabs, u.styles.Muted.Render(label))
		}
	}

	isolation := "off"
	if u.state.IsolationEnabled {
		isolation = "on"
	}

	status := u.styles.Status.Render(fmt.Sprintf(
		"edges:%s  isolation:%s  zoom:%d%%",
		u.state.EdgeMode, isolation, int(u.state.Zoom*100)))

	return title + "  " + strings.Join(tabs, "  ") + "  " + status
}

func (u *UI) renderInspector(height int) string {
	var b strings.Builder

	key := u.state.ActiveKey()

	obj, ok := u.schema.ByKey(key)
	if !ok {
		// No selection, or a stale key; degrade to the summary.
		b.WriteString(u.styles.Bold.Render("Schema"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%d objects\n%d relationships\n%d audit findings\n",
			u.schema.Len(), len(u.edges), len(u.findings))
		b.WriteString("\n")
		b.WriteString(u.styles.Muted.Render("Move the cursor over a table,\nor click, to inspect it."))
	} else {
		u.renderObjectInspector(&b, obj)
	}

	return u.styles.Panel.Width(inspectorWidth - 2).Height(height - 2).Render(b.String())
}

func (u *UI) renderObjectInspector(b *strings.Builder, obj *schemascope.Object) {
	marker := u.styles.Hovered
	if obj.Key == u.state.SelectedKey {
		marker = u.styles.Selected
	}

	b.WriteString(marker.Render(" " + obj.Name + " "))
	b.WriteString(u.styles.Muted.Render(" " + string(obj.Type)))

	if obj.Domain != "" {
		b.WriteString(u.styles.Muted.Render(" · " + obj.Domain))
	}

	b.WriteString("\n")

	if obj.Comment != "" {
		b.WriteString(u.styles.Muted.Render(obj.Comment))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	for _, col := range obj.Columns {
		line := col.Name

		if col.PrimaryKey {
			line += " PK"
		}

		if col.ForeignKey != nil {
			line += " → " + col.ForeignKey.Table
		}

		b.WriteString(u.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	if incoming := graph.Incoming(u.edges, obj.Key); len(incoming) > 0 {
		b.WriteString("\n")
		b.WriteString(u.styles.Bold.Render("Referenced by"))
		b.WriteString("\n")

		for _, e := range incoming {
			if src, ok := u.schema.ByKey(e.From); ok {
				b.WriteString(u.styles.Normal.Render(src.Name + "." + e.Label))
				b.WriteString("\n")
			}
		}
	}

	var warnings []string

	for _, finding := range u.findings {
		if finding.Table == obj.Name {
			warnings = append(warnings, finding.Detail)
		}
	}

	if len(warnings) > 0 {
		b.WriteString("\n")

		for _, w := range warnings {
			b.WriteString(u.styles.Warning.Render("⚠ " + w))
			b.WriteString("\n")
		}
	}
}

func (u *UI) renderHelp() string {
	var help string

	if u.filtering {
		help = "enter: apply filter | esc: cancel"
	} else {
		switch u.state.ActiveView {
		case ViewDiagram:
			help = "hjkl: move | enter: select | esc: deselect | e: edge mode | i: isolate | +/-: zoom | shift+arrows: pan | 1/2/3: view | q: quit"
		case ViewDocs:
			help = "j/k: scroll | /: filter | esc: clear selection | 1/2/3: view | q: quit"
		case ViewGlossary:
			help = "j/k: scroll | 1/2/3: view | q: quit"
		}
	}

	return u.styles.Help.Render(help)
}

// Run starts the interactive explorer.
func Run(ui *UI) error {
	p := tea.NewProgram(ui,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	return err
}

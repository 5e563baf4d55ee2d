package explorer

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the explorer views.
type Styles struct {
	Title    lipgloss.Style
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Hovered  lipgloss.Style
	Edge     lipgloss.Style
	EdgeHot  lipgloss.Style
	EdgeDim  lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1),
		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB")),
		Hovered: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA")),
		Edge:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		EdgeHot: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		EdgeDim: lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B3B3B")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	}
}

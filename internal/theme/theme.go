package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	PanelTitle   *lipgloss.Style
	PanelHeader  *lipgloss.Style
	Waiting      *lipgloss.Style
	Row          *lipgloss.Style
	RowSelected  *lipgloss.Style
	ScrollHint   *lipgloss.Style
	Button       *lipgloss.Style
	ButtonAccent *lipgloss.Style
	NodeTitle    *lipgloss.Style
	NodeBorder   *lipgloss.Style
	NodeFocused  *lipgloss.Style
	Footer       *lipgloss.Style
	SearchPrompt *lipgloss.Style
	SearchText   *lipgloss.Style
	Progress     *lipgloss.Style

	// Confidence holds the four band styles for scores >=90, >=80, >=70 and
	// everything below, in that order.
	Confidence [4]*lipgloss.Style
}

var defaultStyles = Styles{
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Waiting: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	RowSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ScrollHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	ButtonAccent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	NodeTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	NodeBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	NodeFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Progress: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Confidence: [4]*lipgloss.Style{
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("42"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("148"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("178"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

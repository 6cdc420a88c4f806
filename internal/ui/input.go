package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modelsweep/modelsweep/internal/host"
	"github.com/modelsweep/modelsweep/internal/panel"
)

type keyMap struct {
	Quit       key.Binding
	CancelScan key.Binding
	Search     key.Binding
	NextNode   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
		CancelScan: key.NewBinding(key.WithKeys("esc", "ctrl+g")),
		Search:     key.NewBinding(key.WithKeys("/")),
		NextNode:   key.NewBinding(key.WithKeys("tab")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// While the search field has focus every key belongs to it, including
	// the bindings that would otherwise cancel a scan.
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.CancelScan):
		return m.cancelScan()
	case key.Matches(keyMsg, m.keys.Search):
		if m.focusedNode() != nil {
			m.searching = true
			m.searchQuery = ""
		}
	case key.Matches(keyMsg, m.keys.NextNode):
		if len(m.nodes) > 0 {
			m.focus = (m.focus + 1) % len(m.nodes)
		}
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.scrollFocused(host.WheelUp)
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.scrollFocused(host.WheelDown)
	}
	return nil
}

func (m *Model) handleSearchKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEscape, tea.KeyCtrlG:
		m.searching = false
		m.searchQuery = ""
	case tea.KeyEnter:
		m.submitSearch()
	case tea.KeyBackspace:
		if runes := []rune(m.searchQuery); len(runes) > 0 {
			m.searchQuery = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.searchQuery += " "
	case tea.KeyRunes:
		m.searchQuery += string(keyMsg.Runes)
	}
	return nil
}

func (m *Model) submitSearch() {
	if nb := m.focusedNode(); nb != nil && m.searchQuery != "" {
		m.controller.Search(nb.id, m.searchQuery, nb.body.W, nb.body.H)
	}
	m.searching = false
	m.searchQuery = ""
}

// scrollFocused routes a keyboard scroll through the same delegation path a
// wheel gesture takes, so the panel applies identical clamping.
func (m *Model) scrollFocused(button host.PointerButton) {
	nb := m.focusedNode()
	if nb == nil {
		return
	}
	m.adapter.DispatchPointer(nb.id, host.PointerEvent{
		Width:  nb.body.W,
		Height: nb.body.H,
		Button: button,
	})
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress {
		return nil
	}

	var button host.PointerButton
	switch mouse.Button {
	case tea.MouseButtonLeft:
		button = host.ButtonLeft
	case tea.MouseButtonWheelUp:
		button = host.WheelUp
	case tea.MouseButtonWheelDown:
		button = host.WheelDown
	default:
		return nil
	}

	p := panel.Point{X: mouse.X, Y: mouse.Y}
	for _, nb := range m.nodes {
		if !nb.box.Contains(p) {
			continue
		}
		// Coordinates go node-local relative to the drawable body; border
		// and title clicks land outside it and only reach the chrome.
		m.adapter.DispatchPointer(nb.id, host.PointerEvent{
			X:      p.X - nb.body.X,
			Y:      p.Y - nb.body.Y,
			Width:  nb.body.W,
			Height: nb.body.H,
			Button: button,
		})
		break
	}
	return nil
}

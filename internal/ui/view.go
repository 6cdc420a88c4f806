package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/notify"
	"github.com/modelsweep/modelsweep/internal/panel"
	"github.com/modelsweep/modelsweep/internal/session"
)

// Fixed-locale operator diagnostic, shown when no node surface exists yet.
const canvasIdleMessage = "waiting for pipeline engine..."

const meterWidth = 18

// progressMeter renders scan progress without animation; the value is pushed
// by the engine, so there is nothing to tween locally.
type progressMeter struct {
	model progress.Model
}

func newProgressMeter() progressMeter {
	return progressMeter{
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(meterWidth)),
	}
}

func (p progressMeter) view(percent float64) string {
	return p.model.ViewAs(percent / 100)
}

func formatSavings(megabytes float64) string {
	if megabytes < 0 {
		megabytes = 0
	}
	return humanize.IBytes(uint64(megabytes * 1024 * 1024))
}

// View renders the whole canvas: stacked node boxes, notices, and the footer.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	footer := m.footerLines()
	var lines []string
	if len(m.nodes) == 0 {
		lines = m.emptyCanvas(m.height - len(footer))
	} else {
		frame := m.frameHeight(len(footer))
		for i, nb := range m.nodes {
			lines = append(lines, m.renderNode(i, nb, len(lines), frame)...)
		}
	}

	body := m.height - len(footer)
	if body < 0 {
		body = 0
	}
	if len(lines) > body {
		lines = lines[:body]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// frameHeight picks the per-node box height: the full panel by default,
// shrinking evenly when the terminal cannot fit every node.
func (m *Model) frameHeight(footerRows int) int {
	avail := m.height - footerRows
	frame := panel.HeaderRows + panel.DefaultMaxVisible + 2 + 2
	if n := len(m.nodes); n > 0 && frame*n > avail {
		frame = avail / n
	}
	if min := panel.HeaderRows + 2 + 2; frame < min {
		frame = min
	}
	return frame
}

// renderNode draws one node box at the given canvas row and records its
// geometry for pointer translation.
func (m *Model) renderNode(index int, nb *nodeBox, y, frame int) []string {
	width := m.width
	if width < 6 {
		width = 6
	}
	bodyHeight := frame - 2
	innerWidth := width - 4

	nb.box = panel.Rect{X: 0, Y: y, W: width, H: frame}
	nb.body = panel.Rect{X: 2, Y: y + 1, W: innerWidth, H: bodyHeight}

	border := styles.NodeBorder
	if index == m.focus {
		border = styles.NodeFocused
	}

	head := border.Render("╭─ ") + styles.NodeTitle.Render(nb.id)
	if m.registry.State(nb.id) == session.Scanning {
		head += " " + m.spin.View()
		if nb.progress > 0 {
			head += " " + m.meter.view(nb.progress)
		}
	}
	fill := width - lipgloss.Width(head) - 1
	if fill < 0 {
		fill = 0
	}
	out := make([]string, 0, frame)
	out = append(out, head+border.Render(strings.Repeat("─", fill)+"╮"))

	bodyLines := m.adapter.Draw(nb.id, innerWidth, bodyHeight)
	for i := 0; i < bodyHeight; i++ {
		line := strings.Repeat(" ", innerWidth)
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		out = append(out, border.Render("│ ")+line+border.Render(" │"))
	}

	out = append(out, border.Render("╰"+strings.Repeat("─", width-2)+"╯"))
	return out
}

func (m *Model) emptyCanvas(rows int) []string {
	if rows < 1 {
		return nil
	}
	msg := truncate.StringWithTail(canvasIdleMessage, uint(maxInt(m.width, 1)), "…")
	left := (m.width - lipgloss.Width(msg)) / 2
	if left < 0 {
		left = 0
	}
	lines := make([]string, rows)
	lines[rows/2] = strings.Repeat(" ", left) + styles.Waiting.Render(msg)
	return lines
}

func (m *Model) footerLines() []string {
	var out []string
	for _, notice := range m.notices.Active() {
		msg := truncate.StringWithTail("• "+notice.Message, uint(maxInt(m.width, 1)), "…")
		out = append(out, noticeStyleFor(notice.Severity).Render(msg))
	}
	switch {
	case m.searching:
		out = append(out,
			styles.SearchPrompt.Render(i18n.T("search.prompt"))+
				styles.SearchText.Render(m.searchQuery)+
				styles.SearchPrompt.Render("█"))
	case m.showFooter:
		out = append(out, styles.Footer.Render(i18n.T("footer.hints")))
	}
	return out
}

func noticeStyleFor(severity notify.Severity) *lipgloss.Style {
	switch severity {
	case notify.Success:
		return styles.Confidence[0]
	case notify.Warning:
		return styles.Confidence[2]
	case notify.Error:
		return styles.Confidence[3]
	default:
		return styles.Waiting
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

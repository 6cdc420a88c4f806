package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/session"
	"github.com/modelsweep/modelsweep/internal/theme"
)

var styles = theme.Default()

// Operator diagnostics are deliberately fixed-locale: they point at wiring
// problems during workflow debugging and are not end-user copy. Everything
// else in the panel body resolves through i18n.
const (
	waitingMessage = "waiting for scan results..."
	unwiredMessage = "connect pipeline first"
)

const (
	scrollUpGlyph   = " ▲ "
	scrollDownGlyph = " ▼ "
	selectedMarker  = "▌"
)

// ConfidenceBand maps a confidence score onto one of the four fixed visual
// bands: >=90, >=80, >=70 and everything below.
func ConfidenceBand(score int) int {
	switch {
	case score >= 90:
		return 0
	case score >= 80:
		return 1
	case score >= 70:
		return 2
	default:
		return 3
	}
}

// Render produces the panel body for one node as a slice of styled lines,
// one per surface row. It draws nothing outside the given size and never
// mutates session state; the host paints the lines inside the node bounds.
func Render(state session.RunState, sess *session.Session, regions RegionMap, size Size) []string {
	width := size.Width
	if width < 1 {
		width = 1
	}
	height := size.Height
	if height < HeaderRows+2 {
		height = HeaderRows + 2
	}

	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}

	lines[0] = padLine(styles.PanelTitle.Render(truncPlain(i18n.T("panel.title"), width)), i18n.T("panel.title"), width)
	lines[1] = headerLine(sess, regions, width)

	if sess == nil || len(sess.Candidates) == 0 {
		msg := waitingMessage
		if state == session.Idle && sess == nil {
			msg = unwiredMessage
		}
		lines[HeaderRows] = padLine(styles.Waiting.Render(truncPlain(msg, width)), msg, width)
	} else {
		for _, row := range regions.Rows {
			if row.Bounds.Y >= 0 && row.Bounds.Y < height {
				lines[row.Bounds.Y] = candidateLine(sess, row.Index, width)
			}
		}
		if regions.ScrollDown != nil && regions.ScrollDown.Y < height {
			lines[regions.ScrollDown.Y] = scrollHintLine(scrollDownGlyph, width)
		}
	}

	lines[height-1] = buttonLine(regions, width)
	return lines
}

// headerLine renders the count/mode summary with the scroll-up control
// overlaid at its region when present.
func headerLine(sess *session.Session, regions RegionMap, width int) string {
	var plain string
	if sess != nil && len(sess.Candidates) > 0 {
		plain = i18n.Tf("panel.header", len(sess.Candidates), len(sess.Selected))
		plain += "  " + i18n.Tf("panel.mode", i18n.T(sess.Mode.LabelKey()))
		if sess.Mode == session.ModeBackup && sess.BackupFolder != "" {
			plain += "  " + i18n.Tf("panel.backup_folder", sess.BackupFolder)
		}
	}
	budget := width
	if regions.ScrollUp != nil {
		budget -= scrollControlWidth
	}
	if budget < 0 {
		budget = 0
	}
	plain = truncPlain(plain, budget)
	line := styles.PanelHeader.Render(plain)
	pad := budget - runewidth.StringWidth(plain)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if regions.ScrollUp != nil {
		line += styles.ScrollHint.Render(scrollUpGlyph)
	}
	return line
}

// candidateLine renders one candidate row: selection marker, truncated name,
// match tag, size, and the confidence score in its band colour. Truncation
// is display-only; decisions are sent by index.
func candidateLine(sess *session.Session, index int, width int) string {
	if index < 0 || index >= len(sess.Candidates) {
		return strings.Repeat(" ", width)
	}
	cand := sess.Candidates[index]
	selected := sess.IsSelected(index)

	marker := "  "
	if selected {
		marker = selectedMarker + " "
	}

	conf := i18n.Tf("panel.confidence", session.ClampConfidence(cand.Confidence))
	match := i18n.T("match." + cand.Match.String())
	size := cand.DisplaySize()

	right := fmt.Sprintf("%-8s %9s %5s", match, size, conf)
	nameWidth := width - runewidth.StringWidth(marker) - runewidth.StringWidth(right) - 1
	if nameWidth > nameBudget {
		nameWidth = nameBudget
	}
	if nameWidth < 1 {
		nameWidth = 1
	}
	name := truncPlain(cand.Name, nameWidth)
	name += strings.Repeat(" ", nameWidth-runewidth.StringWidth(name))

	plain := marker + name + " " + right
	plain = truncPlain(plain, width)
	pad := width - runewidth.StringWidth(plain)

	band := styles.Confidence[ConfidenceBand(cand.Confidence)]
	rowStyle := styles.Row
	confStyle := *band
	if selected {
		rowStyle = styles.RowSelected
		confStyle = selectedBandStyle(band)
	}
	prefix := marker + name + " "
	var line string
	if remaining := width - runewidth.StringWidth(prefix); remaining > 0 {
		line = rowStyle.Render(prefix) + confStyle.Render(truncPlain(right, remaining))
	} else {
		line = rowStyle.Render(truncPlain(prefix, width))
	}
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// selectedBandStyle keeps the confidence colour on a selected row: the band
// foreground stays, the selection background and weight come through.
func selectedBandStyle(band *lipgloss.Style) lipgloss.Style {
	return band.Inherit(*styles.RowSelected)
}

func scrollHintLine(glyph string, width int) string {
	pad := width - runewidth.StringWidth(glyph)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + styles.ScrollHint.Render(glyph)
}

// buttonLine places the cancel/confirm buttons exactly over their hit
// regions so clicks land on what is drawn.
func buttonLine(regions RegionMap, width int) string {
	cancel := buttonLabel(i18n.T("button.cancel"))
	confirm := buttonLabel(i18n.T("button.confirm"))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", clampNonNegative(regions.Cancel.X)))
	b.WriteString(styles.Button.Render(cancel))
	b.WriteString(strings.Repeat(" ", buttonGap))
	b.WriteString(styles.ButtonAccent.Render(confirm))

	used := regions.Cancel.X + buttonWidth + buttonGap + buttonWidth
	if pad := width - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// buttonLabel centers a label inside the fixed button width, minus the
// style's own horizontal padding.
func buttonLabel(label string) string {
	inner := buttonWidth - 2
	label = truncPlain(label, inner)
	gap := inner - runewidth.StringWidth(label)
	left := gap / 2
	right := gap - left
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", right)
}

func truncPlain(s string, width int) string {
	if width < 1 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func padLine(styled, plain string, width int) string {
	pad := width - runewidth.StringWidth(truncPlain(plain, width))
	if pad <= 0 {
		return styled
	}
	return styled + strings.Repeat(" ", pad)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

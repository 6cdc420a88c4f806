package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/session"
)

func renderLines(t *testing.T, state session.RunState, sess *session.Session, size Size) []string {
	t.Helper()
	i18n.SetLocale(i18n.DefaultLocale)
	return Render(state, sess, Layout(sess, size), size)
}

func TestRenderUnwiredDiagnostic(t *testing.T) {
	size := Size{Width: 50, Height: 16}
	lines := renderLines(t, session.Idle, nil, size)
	if len(lines) != 16 {
		t.Fatalf("expected one line per surface row, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "connect pipeline first") {
		t.Fatalf("expected unwired diagnostic, got %q", lines[2])
	}
}

func TestRenderWaitingDuringScan(t *testing.T) {
	lines := renderLines(t, session.Scanning, nil, Size{Width: 50, Height: 16})
	if !strings.Contains(lines[2], "waiting for scan results...") {
		t.Fatalf("expected waiting message, got %q", lines[2])
	}
}

func TestRenderCandidateRows(t *testing.T) {
	sess := newPanelSession(t, 3)
	sess.Toggle(1)
	lines := renderLines(t, session.AwaitingDecision, sess, Size{Width: 60, Height: 16})

	if !strings.Contains(lines[1], "3 candidates") || !strings.Contains(lines[1], "1 selected") {
		t.Fatalf("expected header counts, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "model-00.safetensors") {
		t.Fatalf("expected first candidate name, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "▌") {
		t.Fatalf("expected selection marker on selected row, got %q", lines[3])
	}
	if strings.Contains(lines[2], "▌") {
		t.Fatalf("expected no marker on unselected row, got %q", lines[2])
	}
	if !strings.Contains(lines[15], "Confirm") || !strings.Contains(lines[15], "Cancel") {
		t.Fatalf("expected buttons on bottom row, got %q", lines[15])
	}
}

func TestRenderScrollHints(t *testing.T) {
	sess := newPanelSession(t, 30)
	sess.ScrollOffset = 9
	lines := renderLines(t, session.AwaitingDecision, sess, Size{Width: 50, Height: 16})
	if !strings.Contains(lines[1], "▲") {
		t.Fatalf("expected scroll-up hint overlaid on header, got %q", lines[1])
	}
	if !strings.Contains(lines[14], "▼") {
		t.Fatalf("expected scroll-down hint, got %q", lines[14])
	}
}

func TestRenderLinesFillWidth(t *testing.T) {
	sess := newPanelSession(t, 3)
	size := Size{Width: 44, Height: 16}
	lines := renderLines(t, session.AwaitingDecision, sess, size)
	for i, line := range lines {
		if got := lipgloss.Width(line); got != size.Width {
			t.Fatalf("line %d has display width %d, want %d: %q", i, got, size.Width, line)
		}
	}
}

func TestConfidenceBands(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{100, 0}, {90, 0}, {89, 1}, {80, 1}, {79, 2}, {70, 2}, {69, 3}, {0, 3},
	}
	for _, c := range cases {
		if got := ConfidenceBand(c.score); got != c.want {
			t.Fatalf("ConfidenceBand(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestSelectedRowKeepsConfidenceBand(t *testing.T) {
	for i, band := range styles.Confidence {
		merged := selectedBandStyle(band)
		if merged.GetForeground() != band.GetForeground() {
			t.Fatalf("band %d: expected the band foreground to survive selection", i)
		}
		if merged.GetBackground() != styles.RowSelected.GetBackground() {
			t.Fatalf("band %d: expected the selection background on the confidence cell", i)
		}
		if !merged.GetBold() {
			t.Fatalf("band %d: expected the selection weight on the confidence cell", i)
		}
	}
}

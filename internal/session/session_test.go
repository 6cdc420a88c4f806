package session

import (
	"reflect"
	"testing"
)

func testCandidates(n int) []Candidate {
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate{Name: "model", SizeBytes: int64(i+1) * 1024, Confidence: 90, Match: MatchExact}
	}
	return out
}

func TestToggleFlipsSelection(t *testing.T) {
	sess := newSession("s1", testCandidates(3), ModeDryRun, "")
	if !sess.Toggle(1) {
		t.Fatalf("expected toggle to apply")
	}
	if !sess.IsSelected(1) {
		t.Fatalf("expected index 1 selected")
	}
	if !sess.Toggle(1) {
		t.Fatalf("expected second toggle to apply")
	}
	if sess.IsSelected(1) {
		t.Fatalf("expected double toggle to restore the original state")
	}
}

func TestToggleOutOfRangeIsNoOp(t *testing.T) {
	sess := newSession("s1", testCandidates(2), ModeDryRun, "")
	if sess.Toggle(-1) {
		t.Fatalf("expected toggle below range to be rejected")
	}
	if sess.Toggle(2) {
		t.Fatalf("expected toggle past range to be rejected")
	}
	if len(sess.Selected) != 0 {
		t.Fatalf("expected no selection, got %d", len(sess.Selected))
	}
}

func TestSelectedIndicesAscending(t *testing.T) {
	sess := newSession("s1", testCandidates(5), ModeDryRun, "")
	for _, i := range []int{4, 0, 2} {
		sess.Toggle(i)
	}
	got := sess.SelectedIndices()
	want := []int{0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScrollClampsToBounds(t *testing.T) {
	sess := newSession("s1", testCandidates(30), ModeDryRun, "")
	sess.Scroll(-5, 12)
	if sess.ScrollOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", sess.ScrollOffset)
	}
	sess.Scroll(100, 12)
	if sess.ScrollOffset != 18 {
		t.Fatalf("expected offset clamped to 18, got %d", sess.ScrollOffset)
	}
	if max := sess.MaxScroll(12); max != 18 {
		t.Fatalf("expected max scroll 18, got %d", max)
	}
}

func TestScrollWhenEverythingFits(t *testing.T) {
	sess := newSession("s1", testCandidates(5), ModeDryRun, "")
	sess.Scroll(3, 12)
	if sess.ScrollOffset != 0 {
		t.Fatalf("expected no scrolling when all rows fit, got offset %d", sess.ScrollOffset)
	}
}

func TestEndClearsSelectionAndGate(t *testing.T) {
	sess := newSession("s1", testCandidates(3), ModeDryRun, "")
	sess.Toggle(0)
	sess.end()
	if sess.Paused {
		t.Fatalf("expected gate released")
	}
	if len(sess.Selected) != 0 {
		t.Fatalf("expected selection cleared")
	}
}

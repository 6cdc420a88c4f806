package session

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidSession reports a session identifier the registry cannot accept.
var ErrInvalidSession = errors.New("invalid session id")

// Session tracks one pending human decision tied to one visual node. It
// exists only in UI memory and is destroyed on confirm or cancel.
type Session struct {
	ID           string
	Paused       bool
	Candidates   []Candidate
	Selected     map[int]struct{}
	ScrollOffset int
	Mode         ActionMode
	BackupFolder string

	// InFlight guards the one-shot decision/cancel send. It blocks a second
	// send while one is pending and is reset on transport failure so the
	// user can retry.
	InFlight bool
}

// newSession builds a paused session around a received candidate list.
func newSession(id string, candidates []Candidate, mode ActionMode, backupFolder string) *Session {
	return &Session{
		ID:           id,
		Paused:       true,
		Candidates:   append([]Candidate(nil), candidates...),
		Selected:     make(map[int]struct{}),
		Mode:         mode,
		BackupFolder: backupFolder,
	}
}

// Toggle flips selection membership for the given candidate index. Out of
// bounds indices are a no-op, never an error.
func (s *Session) Toggle(index int) bool {
	if s == nil || index < 0 || index >= len(s.Candidates) {
		return false
	}
	if _, ok := s.Selected[index]; ok {
		delete(s.Selected, index)
	} else {
		s.Selected[index] = struct{}{}
	}
	return true
}

// IsSelected reports whether the candidate at index is selected.
func (s *Session) IsSelected(index int) bool {
	if s == nil {
		return false
	}
	_, ok := s.Selected[index]
	return ok
}

// MaxScroll returns the largest valid scroll offset for the given window.
func (s *Session) MaxScroll(maxVisible int) int {
	if s == nil || maxVisible <= 0 {
		return 0
	}
	max := len(s.Candidates) - maxVisible
	if max < 0 {
		return 0
	}
	return max
}

// Scroll moves the scroll offset by delta, clamped into [0, MaxScroll].
// Out-of-range requests are clamped, not rejected.
func (s *Session) Scroll(delta, maxVisible int) int {
	if s == nil {
		return 0
	}
	s.ScrollOffset += delta
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if max := s.MaxScroll(maxVisible); s.ScrollOffset > max {
		s.ScrollOffset = max
	}
	return s.ScrollOffset
}

// SelectedIndices returns the selection in ascending index order, the order
// the decision payload requires.
func (s *Session) SelectedIndices() []int {
	if s == nil || len(s.Selected) == 0 {
		return []int{}
	}
	indices := make([]int, 0, len(s.Selected))
	for i := range s.Selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// end clears all per-session state so nothing leaks into the next session.
func (s *Session) end() {
	s.Paused = false
	s.Candidates = nil
	s.Selected = make(map[int]struct{})
	s.ScrollOffset = 0
}

func validSessionID(id string) bool {
	return strings.TrimSpace(id) != ""
}

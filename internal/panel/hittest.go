package panel

import "github.com/modelsweep/modelsweep/internal/session"

// ActionKind is the logical action a pointer position resolves to.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionToggle
	ActionScrollUp
	ActionScrollDown
	ActionCancel
	ActionConfirm
)

func (k ActionKind) String() string {
	switch k {
	case ActionToggle:
		return "toggle"
	case ActionScrollUp:
		return "scroll_up"
	case ActionScrollDown:
		return "scroll_down"
	case ActionCancel:
		return "cancel"
	case ActionConfirm:
		return "confirm"
	default:
		return "none"
	}
}

// Action pairs an action kind with the candidate index it applies to
// (meaningful for ActionToggle only).
type Action struct {
	Kind  ActionKind
	Index int
}

// Resolve maps a pointer position onto a logical action. The priority order
// rows > scroll-up > scroll-down > cancel > confirm is a deliberate
// tie-break for overlapping regions. The second return value reports whether
// the event is consumed: true exactly when an action was produced, so the
// host's own interactions keep working everywhere else.
func Resolve(p Point, regions RegionMap, sess *session.Session) (Action, bool) {
	if sess != nil && sess.Paused && len(sess.Candidates) > 0 {
		for _, row := range regions.Rows {
			if row.Bounds.Contains(p) {
				return Action{Kind: ActionToggle, Index: row.Index}, true
			}
		}
	}
	if regions.ScrollUp != nil && regions.ScrollUp.Contains(p) {
		return Action{Kind: ActionScrollUp}, true
	}
	if regions.ScrollDown != nil && regions.ScrollDown.Contains(p) {
		return Action{Kind: ActionScrollDown}, true
	}
	if regions.Cancel.Contains(p) {
		return Action{Kind: ActionCancel}, true
	}
	if regions.Confirm.Contains(p) {
		return Action{Kind: ActionConfirm}, true
	}
	return Action{Kind: ActionNone}, false
}

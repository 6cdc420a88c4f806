package session

import (
	"sort"

	"github.com/modelsweep/modelsweep/internal/logging/events"
)

// RunState models one node's position in a single engine run.
type RunState int

const (
	Idle RunState = iota
	Scanning
	AwaitingDecision
	Completed
	Cancelled
)

func (s RunState) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case AwaitingDecision:
		return "awaiting_decision"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Registry keys session state by visual node so multiple gated nodes can
// coexist without cross-talk.
type Registry struct {
	sessions map[string]*Session
	states   map[string]RunState
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		states:   make(map[string]RunState),
	}
}

// Begin opens (or wholesale replaces) the session for a node. The previous
// selection is discarded, never merged.
func (r *Registry) Begin(node, id string, candidates []Candidate, mode ActionMode, backupFolder string) (*Session, error) {
	if !validSessionID(id) {
		return nil, ErrInvalidSession
	}
	if prev, ok := r.sessions[node]; ok {
		events.Session.Replace(node, len(prev.Candidates), len(candidates))
	}
	sess := newSession(id, candidates, mode, backupFolder)
	r.sessions[node] = sess
	r.setState(node, AwaitingDecision)
	events.Session.Begin(node, len(candidates))
	return sess, nil
}

// Session returns the active session for a node, or nil.
func (r *Registry) Session(node string) *Session {
	return r.sessions[node]
}

// End clears the node's session and returns it to Idle. Ending a node with
// no session is a no-op, which keeps cancellation idempotent.
func (r *Registry) End(node string) {
	sess, ok := r.sessions[node]
	if !ok {
		return
	}
	sess.end()
	delete(r.sessions, node)
	r.setState(node, Idle)
	events.Session.End(node)
}

// State reports the node's run state; unknown nodes are Idle.
func (r *Registry) State(node string) RunState {
	return r.states[node]
}

// BeginRun marks a node as Scanning at the start of an engine run.
func (r *Registry) BeginRun(node string) {
	r.setState(node, Scanning)
}

// Complete records a finished scan with no pending decision. The Completed
// state is transient; Settle returns the node to Idle once the running
// decoration has been cleared.
func (r *Registry) Complete(node string) {
	if r.states[node] == Scanning {
		r.setState(node, Completed)
	}
}

// Interrupt moves a node to Cancelled and reports whether a paused session
// had to be abandoned (in which case the caller owes the engine a cancel).
func (r *Registry) Interrupt(node string) bool {
	sess := r.sessions[node]
	pending := sess != nil && sess.Paused
	if pending {
		sess.end()
		delete(r.sessions, node)
	}
	r.setState(node, Cancelled)
	return pending
}

// Settle collapses the transient Completed/Cancelled states back to Idle.
func (r *Registry) Settle(node string) {
	switch r.states[node] {
	case Completed, Cancelled:
		r.setState(node, Idle)
	}
}

// AnyScanning reports whether any node is mid-scan. The global cancel
// shortcut is derived from this rather than tracked separately.
func (r *Registry) AnyScanning() bool {
	for _, state := range r.states {
		if state == Scanning {
			return true
		}
	}
	return false
}

// Nodes lists every node the registry has seen, sorted for stable iteration.
func (r *Registry) Nodes() []string {
	seen := make(map[string]struct{}, len(r.states)+len(r.sessions))
	for node := range r.states {
		seen[node] = struct{}{}
	}
	for node := range r.sessions {
		seen[node] = struct{}{}
	}
	nodes := make([]string, 0, len(seen))
	for node := range seen {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

func (r *Registry) setState(node string, state RunState) {
	if r.states[node] == state {
		return
	}
	r.states[node] = state
	events.Session.RunState(node, state.String())
}

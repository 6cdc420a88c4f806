package host

import "sort"

// Chrome bundles the host's own handlers. They always run before any
// participant: the host's behaviour is composed with, never replaced.
type Chrome struct {
	// Pointer is the host's default pointer handling for a node. May be nil.
	Pointer func(node string, ev PointerEvent) bool
	// Lifecycle observes lifecycle callbacks before participants do. May be nil.
	Lifecycle func(ev Lifecycle)
}

// Invalidate is the host's repaint primitive. The adapter treats it as
// opaque; callers must not assume the repaint happens synchronously.
type Invalidate func(node string)

// Adapter intercepts host callbacks and forwards them to participating
// nodes without altering host behaviour for everything else.
type Adapter struct {
	chrome       Chrome
	invalidate   Invalidate
	participants map[string]Participant
}

// NewAdapter builds an adapter around the host's chrome handlers.
func NewAdapter(chrome Chrome, invalidate Invalidate) *Adapter {
	return &Adapter{
		chrome:       chrome,
		invalidate:   invalidate,
		participants: make(map[string]Participant),
	}
}

// Register marks a node as participating.
func (a *Adapter) Register(node string, p Participant) {
	if node == "" || p == nil {
		return
	}
	a.participants[node] = p
}

// Unregister removes a node's participation.
func (a *Adapter) Unregister(node string) {
	delete(a.participants, node)
}

// Participating reports whether the node opted into delegation.
func (a *Adapter) Participating(node string) bool {
	_, ok := a.participants[node]
	return ok
}

// Nodes lists participating nodes in stable order.
func (a *Adapter) Nodes() []string {
	nodes := make([]string, 0, len(a.participants))
	for node := range a.participants {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// Draw returns the participant's body lines for a node, or nil for
// non-participating nodes (the host then draws its default body).
func (a *Adapter) Draw(node string, width, height int) []string {
	p, ok := a.participants[node]
	if !ok {
		return nil
	}
	return p.Draw(node, width, height)
}

// DispatchPointer runs the host handler first, then the participant's, and
// reports whether either side consumed the event. Both always run; each side
// toggles its own consumed flag independently.
func (a *Adapter) DispatchPointer(node string, ev PointerEvent) bool {
	consumed := false
	if a.chrome.Pointer != nil {
		consumed = a.chrome.Pointer(node, ev)
	}
	if p, ok := a.participants[node]; ok {
		if p.HandlePointer(node, ev) {
			consumed = true
		}
	}
	return consumed
}

// DispatchLifecycle forwards a lifecycle callback to the host chrome and
// then to participants. Run-wide events (empty node) reach each distinct
// participant exactly once.
func (a *Adapter) DispatchLifecycle(ev Lifecycle) {
	if a.chrome.Lifecycle != nil {
		a.chrome.Lifecycle(ev)
	}
	if ev.Node != "" {
		if p, ok := a.participants[ev.Node]; ok {
			p.Lifecycle(ev)
		}
		return
	}
	seen := make(map[Participant]struct{}, len(a.participants))
	for _, node := range a.Nodes() {
		p := a.participants[node]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		p.Lifecycle(ev)
	}
}

// RequestRepaint asks the host to schedule a repaint for a node.
func (a *Adapter) RequestRepaint(node string) {
	if a.invalidate != nil {
		a.invalidate(node)
	}
}

// Package host is the seam between the canvas shell and the cleanup panel.
// The shell keeps its own chrome handlers; participating nodes additionally
// receive pointer and lifecycle callbacks through ordered delegation. The
// package deliberately knows nothing about sessions or rendering.
package host

// PointerButton identifies the pointer gesture being delegated.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	WheelUp
	WheelDown
)

// PointerEvent is a pointer gesture translated into node-local coordinates.
// Width and Height describe the node's drawable body so the participant can
// lay itself out without asking the host back.
type PointerEvent struct {
	X      int
	Y      int
	Width  int
	Height int
	Button PointerButton
}

// LifecycleKind enumerates the host callbacks a participant may observe.
type LifecycleKind int

const (
	NodeCreated LifecycleKind = iota
	NodeRemoved
	RunStart
	RunInterrupted
)

// Lifecycle is a host lifecycle callback. Node is empty for run-wide events.
type Lifecycle struct {
	Kind LifecycleKind
	Node string
}

// Participant is the capability a node opts into. The host checks for it via
// registration instead of patching its own handlers.
type Participant interface {
	// Draw returns the node body lines for the given size. It must not draw
	// outside those bounds; the host owns everything else on the surface.
	Draw(node string, width, height int) []string

	// HandlePointer reacts to a node-local pointer event and reports whether
	// it consumed the event. Unconsumed events fall through to the host's
	// default interactions.
	HandlePointer(node string, ev PointerEvent) bool

	// Lifecycle observes host lifecycle callbacks.
	Lifecycle(ev Lifecycle)
}

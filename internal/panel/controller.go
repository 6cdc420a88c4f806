package panel

import (
	"sort"

	"github.com/modelsweep/modelsweep/internal/host"
	"github.com/modelsweep/modelsweep/internal/logging/events"
	"github.com/modelsweep/modelsweep/internal/session"
)

// EffectKind names an outbound engine message the controller wants sent.
// The controller never talks to the transport itself; the shell drains
// effects and runs them through the bridge off the render path.
type EffectKind int

const (
	EffectStartAck EffectKind = iota
	EffectDecision
	EffectCancel
)

func (k EffectKind) String() string {
	switch k {
	case EffectDecision:
		return "decision"
	case EffectCancel:
		return "cancel"
	default:
		return "start_ack"
	}
}

// Effect is one queued outbound message.
type Effect struct {
	Kind      EffectKind
	Node      string
	SessionID string
	Indices   []int
}

// Controller drives the cleanup panel for every participating node. It
// implements host.Participant and owns no transport or rendering loop of
// its own; all mutation happens synchronously inside a single host event.
type Controller struct {
	registry   *session.Registry
	nodes      map[string]struct{}
	effects    []Effect
	invalidate func(node string)
}

// NewController wires a controller around a session registry and the host's
// repaint primitive.
func NewController(registry *session.Registry, invalidate func(node string)) *Controller {
	if invalidate == nil {
		invalidate = func(string) {}
	}
	return &Controller{
		registry:   registry,
		nodes:      make(map[string]struct{}),
		invalidate: invalidate,
	}
}

// Registry exposes the underlying session registry.
func (c *Controller) Registry() *session.Registry {
	return c.registry
}

// AddNode starts tracking a participating node.
func (c *Controller) AddNode(node string) {
	if node == "" {
		return
	}
	c.nodes[node] = struct{}{}
}

// RemoveNode stops tracking a node and drops any session it held.
func (c *Controller) RemoveNode(node string) {
	delete(c.nodes, node)
	c.registry.End(node)
}

// Nodes lists tracked nodes in stable order.
func (c *Controller) Nodes() []string {
	nodes := make([]string, 0, len(c.nodes))
	for node := range c.nodes {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// FallbackNode returns a tracked node without an active session, the
// recovery target when an event references a node that cannot be located.
func (c *Controller) FallbackNode() (string, bool) {
	for _, node := range c.Nodes() {
		if c.registry.Session(node) == nil {
			return node, true
		}
	}
	return "", false
}

// OpenSession installs a fresh session for a node, replacing any prior one
// wholesale, and schedules a repaint.
func (c *Controller) OpenSession(node, id string, candidates []session.Candidate, mode session.ActionMode, backupFolder string) error {
	if _, err := c.registry.Begin(node, id, candidates, mode, backupFolder); err != nil {
		return err
	}
	c.nodes[node] = struct{}{}
	c.invalidate(node)
	return nil
}

// TakeEffects drains the queued outbound messages.
func (c *Controller) TakeEffects() []Effect {
	effects := c.effects
	c.effects = nil
	return effects
}

// ResolveSend reports the outcome of a previously queued decision or cancel.
// Success destroys the session; failure re-arms it so the user can retry.
func (c *Controller) ResolveSend(node string, kind EffectKind, err error) {
	sess := c.registry.Session(node)
	if err != nil {
		if sess != nil {
			sess.InFlight = false
		}
		c.invalidate(node)
		return
	}
	switch kind {
	case EffectDecision, EffectCancel:
		c.registry.End(node)
		c.registry.Settle(node)
		c.invalidate(node)
	}
}

// Draw implements host.Participant.
func (c *Controller) Draw(node string, width, height int) []string {
	size := Size{Width: width, Height: height}
	sess := c.registry.Session(node)
	regions := Layout(sess, size)
	return Render(c.registry.State(node), sess, regions, size)
}

// HandlePointer implements host.Participant. All session mutation happens
// here, synchronously, before the next paint.
func (c *Controller) HandlePointer(node string, ev host.PointerEvent) bool {
	size := Size{Width: ev.Width, Height: ev.Height}
	sess := c.registry.Session(node)

	switch ev.Button {
	case host.WheelUp:
		return c.scroll(node, sess, -1, size)
	case host.WheelDown:
		return c.scroll(node, sess, +1, size)
	}

	regions := Layout(sess, size)
	action, consumed := Resolve(Point{X: ev.X, Y: ev.Y}, regions, sess)
	if !consumed {
		return false
	}
	events.Panel.Hit(node, action.Kind.String(), action.Index)

	switch action.Kind {
	case ActionToggle:
		if sess.Toggle(action.Index) {
			events.Session.Toggle(node, action.Index, sess.IsSelected(action.Index))
		}
	case ActionScrollUp:
		sess.Scroll(-1, MaxVisible(size))
		events.Panel.Scroll(node, sess.ScrollOffset)
	case ActionScrollDown:
		sess.Scroll(+1, MaxVisible(size))
		events.Panel.Scroll(node, sess.ScrollOffset)
	case ActionCancel:
		c.queueCancel(node)
	case ActionConfirm:
		c.queueDecision(node)
	}
	c.invalidate(node)
	return true
}

// Lifecycle implements host.Participant.
func (c *Controller) Lifecycle(ev host.Lifecycle) {
	switch ev.Kind {
	case host.NodeCreated:
		c.AddNode(ev.Node)
	case host.NodeRemoved:
		c.RemoveNode(ev.Node)
	case host.RunStart:
		for _, node := range c.Nodes() {
			c.registry.Settle(node)
			c.registry.BeginRun(node)
			c.invalidate(node)
		}
		c.effects = append(c.effects, Effect{Kind: EffectStartAck})
	case host.RunInterrupted:
		c.interrupt(ev.Node)
	}
}

// Search jumps the node's scroll offset to the best match for a query.
func (c *Controller) Search(node, query string, width, height int) int {
	sess := c.registry.Session(node)
	idx := JumpTo(sess, query, MaxVisible(Size{Width: width, Height: height}))
	events.Panel.Search(node, query, idx)
	if idx >= 0 {
		c.invalidate(node)
	}
	return idx
}

func (c *Controller) scroll(node string, sess *session.Session, delta int, size Size) bool {
	if sess == nil || !sess.Paused || len(sess.Candidates) == 0 {
		return false
	}
	before := sess.ScrollOffset
	sess.Scroll(delta, MaxVisible(size))
	if sess.ScrollOffset != before {
		events.Panel.Scroll(node, sess.ScrollOffset)
		c.invalidate(node)
	}
	return true
}

// queueDecision emits exactly one decision for the node's session. With no
// session open it still emits an empty decision carrying no session id; the
// engine stashes such a decision against the next gate it opens, which then
// resolves as "proceed without changes". A node id is never a session id,
// so none is invented here.
func (c *Controller) queueDecision(node string) {
	sess := c.registry.Session(node)
	if sess == nil {
		c.effects = append(c.effects, Effect{Kind: EffectDecision, Node: node, Indices: []int{}})
		return
	}
	if !sess.Paused || sess.InFlight {
		return
	}
	sess.InFlight = true
	indices := sess.SelectedIndices()
	events.Session.Confirm(node, indices)
	c.effects = append(c.effects, Effect{Kind: EffectDecision, Node: node, SessionID: sess.ID, Indices: indices})
}

// queueCancel emits the cancel for a pending gate. Cancelling with nothing
// pending still notifies the engine, matching the plugin-wide abort.
func (c *Controller) queueCancel(node string) {
	sess := c.registry.Session(node)
	if sess == nil {
		c.effects = append(c.effects, Effect{Kind: EffectCancel, Node: node})
		return
	}
	if sess.InFlight {
		return
	}
	sess.InFlight = true
	events.Session.Cancel(node, events.SessionReasonUser)
	c.effects = append(c.effects, Effect{Kind: EffectCancel, Node: node, SessionID: sess.ID})
}

// interrupt runs the automatic cancel path for an interrupted run: a gate
// that can no longer be honored is cancelled on the user's behalf.
func (c *Controller) interrupt(node string) {
	nodes := []string{node}
	if node == "" {
		nodes = c.Nodes()
	}
	for _, n := range nodes {
		if c.registry.Interrupt(n) {
			events.Session.Cancel(n, events.SessionReasonInterrupted)
			c.effects = append(c.effects, Effect{Kind: EffectCancel, Node: n})
		}
		c.registry.Settle(n)
		c.invalidate(n)
	}
}

package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modelsweep/modelsweep/internal/bridge"
	"github.com/modelsweep/modelsweep/internal/engine"
	"github.com/modelsweep/modelsweep/internal/host"
	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/logging"
	"github.com/modelsweep/modelsweep/internal/logging/events"
	"github.com/modelsweep/modelsweep/internal/notify"
	"github.com/modelsweep/modelsweep/internal/panel"
	"github.com/modelsweep/modelsweep/internal/session"
	"github.com/modelsweep/modelsweep/internal/theme"
)

var styles = theme.Default()

// freshCanvasNode is the surface materialised when a run starts before any
// node exists, so the scan has somewhere to live until data-ready binds it.
const freshCanvasNode = "sweep"

type msgHandler func(tea.Msg) tea.Cmd

// nodeBox is one node surface on the canvas. Geometry is refreshed every
// frame; pointer events are translated against the last drawn frame.
type nodeBox struct {
	id       string
	box      panel.Rect
	body     panel.Rect
	progress float64
}

// Model is the Bubble Tea model for the canvas shell. It owns the node
// surfaces and the event loop; everything inside a node body is delegated
// through the host adapter to the panel controller.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	registry   *session.Registry
	controller *panel.Controller
	adapter    *host.Adapter
	bridge     *bridge.Bridge
	feed       *engine.Feed
	router     *engine.Router
	notices    *notify.Manager

	nodes []*nodeBox
	focus int

	spin        spinner.Model
	meter       progressMeter
	keys        keyMap
	spinning    bool
	noticeTimer bool

	searching   bool
	searchQuery string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the shell around a running feed and a bridge.
func NewModel(width, height int, showFooter, verbose bool, feed *engine.Feed, br *bridge.Bridge) *Model {
	m := &Model{
		showFooter: showFooter,
		verbose:    verbose,
		registry:   session.NewRegistry(),
		bridge:     br,
		feed:       feed,
		notices:    notify.NewManager(),
		keys:       newKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	// Bubble Tea repaints after every Update, so the host repaint primitive
	// has nothing extra to schedule here.
	m.adapter = host.NewAdapter(host.Chrome{
		Pointer:   m.chromePointer,
		Lifecycle: m.chromeLifecycle,
	}, func(string) {})
	m.controller = panel.NewController(m.registry, m.adapter.RequestRepaint)
	m.router = engine.NewRouter(engine.Handlers{
		DataReady:       m.applyDataReady,
		ScanProgress:    m.applyScanProgress,
		ScanComplete:    m.applyScanComplete,
		CleanupComplete: m.applyCleanupComplete,
		RunStart:        m.applyRunStart,
		RunInterrupted:  m.applyRunInterrupted,
	})

	m.spin = spinner.New(spinner.WithSpinner(spinner.MiniDot))
	m.spin.Style = *styles.Progress
	m.meter = newProgressMeter()

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.feed != nil {
		return waitForFeedEvent(m.feed)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(feedEventMsg{}):      m.handleFeedEventMsg,
		reflect.TypeOf(feedDoneMsg{}):       m.handleFeedDoneMsg,
		reflect.TypeOf(bridgeResultMsg{}):   m.handleBridgeResultMsg,
		reflect.TypeOf(scannerCancelMsg{}):  m.handleScannerCancelMsg,
		reflect.TypeOf(noticeTickMsg{}):     m.handleNoticeTickMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate drains controller effects and keeps the spinner and notice
// timers aligned with current state, whatever message triggered the update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.drainEffects()...)
	if cmd := m.syncSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.armNoticeTimer(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	return nil
}

// chromePointer is the host's own pointer behaviour: a left click focuses the
// node it landed on. It never consumes, so delegation still reaches the panel.
func (m *Model) chromePointer(node string, ev host.PointerEvent) bool {
	if ev.Button != host.ButtonLeft {
		return false
	}
	for i, nb := range m.nodes {
		if nb.id == node {
			m.focus = i
			break
		}
	}
	return false
}

func (m *Model) chromeLifecycle(ev host.Lifecycle) {
	switch ev.Kind {
	case host.RunStart:
		for _, nb := range m.nodes {
			nb.progress = 0
		}
	case host.NodeRemoved:
		m.dropNode(ev.Node)
	}
}

func (m *Model) findNode(id string) *nodeBox {
	for _, nb := range m.nodes {
		if nb.id == id {
			return nb
		}
	}
	return nil
}

func (m *Model) focusedNode() *nodeBox {
	if m.focus < 0 || m.focus >= len(m.nodes) {
		return nil
	}
	return m.nodes[m.focus]
}

// ensureNode materialises a canvas surface for a node id, registering it for
// delegation before the lifecycle callback can reach it.
func (m *Model) ensureNode(id string) *nodeBox {
	if nb := m.findNode(id); nb != nil {
		return nb
	}
	nb := &nodeBox{id: id}
	m.nodes = append(m.nodes, nb)
	m.adapter.Register(id, m.controller)
	m.adapter.DispatchLifecycle(host.Lifecycle{Kind: host.NodeCreated, Node: id})
	return nb
}

func (m *Model) dropNode(id string) {
	for i, nb := range m.nodes {
		if nb.id != id {
			continue
		}
		m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
		if m.focus >= len(m.nodes) && m.focus > 0 {
			m.focus = len(m.nodes) - 1
		}
		break
	}
	m.adapter.Unregister(id)
}

func (m *Model) applyDataReady(ev engine.DataReady) {
	if ev.Locale != "" {
		from := i18n.Locale()
		if to := i18n.Normalize(ev.Locale); to != "" && to != from {
			i18n.SetLocale(to)
			events.Router.Locale(from, to)
		}
	}

	node := ev.SessionID
	if m.findNode(node) == nil {
		if fallback, ok := m.controller.FallbackNode(); ok && m.findNode(fallback) != nil {
			events.Router.NodeFallback(ev.SessionID, fallback)
			node = fallback
		} else {
			// No surface can show this gate yet; the canvas grows one so the
			// decision is never stranded.
			m.ensureNode(node)
		}
	}

	if nb := m.findNode(node); nb != nil {
		nb.progress = 0
	}
	if err := m.controller.OpenSession(node, ev.SessionID, ev.Candidates, ev.Mode, ev.BackupFolder); err != nil {
		logging.Error(err)
	}
}

func (m *Model) applyScanProgress(ev engine.ScanProgress) {
	for _, nb := range m.nodes {
		if m.registry.State(nb.id) == session.Scanning {
			nb.progress = ev.Progress
		}
	}
}

func (m *Model) applyScanComplete(ev engine.ScanComplete) {
	for _, nb := range m.nodes {
		if m.registry.State(nb.id) == session.Scanning {
			m.registry.Complete(nb.id)
			m.registry.Settle(nb.id)
			nb.progress = 0
		}
	}
	m.notices.Info(i18n.Tf("notify.scan_complete",
		ev.TotalCandidates, ev.FlaggedCandidates, formatSavings(ev.PotentialSavings)))
}

func (m *Model) applyCleanupComplete(ev engine.CleanupComplete) {
	m.notices.Success(i18n.Tf("notify.cleanup_done", ev.ProcessedCount))
}

func (m *Model) applyRunStart() {
	// A fresh canvas has no surfaces yet. The run still needs one, or the
	// scan state, its progress and the scanner-cancel gate stay unreachable
	// until data-ready.
	if len(m.nodes) == 0 {
		m.ensureNode(freshCanvasNode)
	}
	m.adapter.DispatchLifecycle(host.Lifecycle{Kind: host.RunStart})
}

func (m *Model) applyRunInterrupted() {
	m.adapter.DispatchLifecycle(host.Lifecycle{Kind: host.RunInterrupted})
	for _, nb := range m.nodes {
		nb.progress = 0
	}
	m.notices.Warning(i18n.T("notify.run_interrupted"))
}

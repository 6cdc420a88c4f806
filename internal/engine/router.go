package engine

import (
	"encoding/json"
	"strings"

	"github.com/modelsweep/modelsweep/internal/logging/events"
	"github.com/modelsweep/modelsweep/internal/session"
)

// Handlers binds each pushed event to exactly one recipient. Nil handlers
// drop their events silently.
type Handlers struct {
	DataReady       func(ev DataReady)
	ScanProgress    func(ev ScanProgress)
	ScanComplete    func(ev ScanComplete)
	CleanupComplete func(ev CleanupComplete)
	RunStart        func()
	RunInterrupted  func()
}

// Router validates and coerces the engine's dynamic payloads into the typed
// structures the rest of the client consumes. Malformed events are logged
// and dropped at this boundary; nothing downstream sees them.
type Router struct {
	handlers Handlers
}

// NewRouter builds a router over the given handlers.
func NewRouter(handlers Handlers) *Router {
	return &Router{handlers: handlers}
}

// Route dispatches one raw event.
func (r *Router) Route(evt Event) {
	switch evt.Name {
	case EventDataReady:
		r.routeDataReady(evt)
	case EventScanProgress:
		r.routeScanProgress(evt)
	case EventScanComplete:
		r.routeScanComplete(evt)
	case EventCleanupComplete:
		r.routeCleanupComplete(evt)
	case EventRunStart:
		events.Router.Event(evt.Name, "")
		if r.handlers.RunStart != nil {
			r.handlers.RunStart()
		}
	case EventRunInterrupted:
		events.Router.Event(evt.Name, "")
		if r.handlers.RunInterrupted != nil {
			r.handlers.RunInterrupted()
		}
	default:
		events.Router.Dropped(evt.Name, "unknown event")
	}
}

func (r *Router) routeDataReady(evt Event) {
	var wire wireDataReady
	if err := json.Unmarshal(evt.Data, &wire); err != nil {
		events.Router.Dropped(evt.Name, "malformed payload: "+err.Error())
		return
	}
	if strings.TrimSpace(wire.SessionID) == "" {
		events.Router.Dropped(evt.Name, session.ErrInvalidSession.Error())
		return
	}

	candidates := make([]session.Candidate, 0, len(wire.Candidates))
	for _, w := range wire.Candidates {
		candidates = append(candidates, w.toCandidate())
	}

	events.Router.Event(evt.Name, wire.SessionID)
	if r.handlers.DataReady != nil {
		r.handlers.DataReady(DataReady{
			SessionID:    wire.SessionID,
			Candidates:   candidates,
			Mode:         session.ParseActionMode(wire.ActionMode),
			BackupFolder: wire.BackupFolder,
			Locale:       wire.Locale,
		})
	}
}

func (r *Router) routeScanProgress(evt Event) {
	var wire struct {
		Progress float64 `json:"progress"`
	}
	if err := json.Unmarshal(evt.Data, &wire); err != nil {
		events.Router.Dropped(evt.Name, "malformed payload: "+err.Error())
		return
	}
	if wire.Progress < 0 {
		wire.Progress = 0
	}
	if wire.Progress > 100 {
		wire.Progress = 100
	}
	events.Router.Event(evt.Name, "")
	if r.handlers.ScanProgress != nil {
		r.handlers.ScanProgress(ScanProgress{Progress: wire.Progress})
	}
}

func (r *Router) routeScanComplete(evt Event) {
	var wire ScanComplete
	if err := json.Unmarshal(evt.Data, &wire); err != nil {
		events.Router.Dropped(evt.Name, "malformed payload: "+err.Error())
		return
	}
	events.Router.Event(evt.Name, "")
	if r.handlers.ScanComplete != nil {
		r.handlers.ScanComplete(wire)
	}
}

func (r *Router) routeCleanupComplete(evt Event) {
	var wire CleanupComplete
	if err := json.Unmarshal(evt.Data, &wire); err != nil {
		events.Router.Dropped(evt.Name, "malformed payload: "+err.Error())
		return
	}
	events.Router.Event(evt.Name, "")
	if r.handlers.CleanupComplete != nil {
		r.handlers.CleanupComplete(wire)
	}
}

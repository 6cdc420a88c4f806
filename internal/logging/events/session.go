package events

import "github.com/modelsweep/modelsweep/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonUser        sessionReason = "user"
	SessionReasonInterrupted sessionReason = "interrupted"
)

var Session = SessionTracer{}

func (SessionTracer) Begin(node string, candidates int) {
	logging.Trace("session.begin", map[string]interface{}{"node": node, "candidates": candidates})
}

func (SessionTracer) Replace(node string, previous, next int) {
	logging.Trace("session.replace", map[string]interface{}{"node": node, "previous": previous, "next": next})
}

func (SessionTracer) Toggle(node string, index int, selected bool) {
	logging.Trace("session.toggle", map[string]interface{}{"node": node, "index": index, "selected": selected})
}

func (SessionTracer) Confirm(node string, indices []int) {
	logging.Trace("session.confirm", map[string]interface{}{"node": node, "indices": indices})
}

func (SessionTracer) Cancel(node string, reason sessionReason) {
	logging.Trace("session.cancel", map[string]interface{}{"node": node, "reason": string(reason)})
}

func (SessionTracer) End(node string) {
	logging.Trace("session.end", map[string]interface{}{"node": node})
}

func (SessionTracer) RunState(node, state string) {
	logging.Trace("session.runstate", map[string]interface{}{"node": node, "state": state})
}

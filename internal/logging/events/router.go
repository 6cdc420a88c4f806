package events

import "github.com/modelsweep/modelsweep/internal/logging"

type RouterTracer struct{}

var Router = RouterTracer{}

func (RouterTracer) Event(name, session string) {
	logging.Trace("router.event", map[string]interface{}{"name": name, "session": session})
}

func (RouterTracer) Dropped(name, reason string) {
	logging.Trace("router.dropped", map[string]interface{}{"name": name, "reason": reason})
}

func (RouterTracer) NodeFallback(session, node string) {
	logging.Trace("router.node_fallback", map[string]interface{}{"session": session, "node": node})
}

func (RouterTracer) Locale(from, to string) {
	logging.Trace("router.locale", map[string]interface{}{"from": from, "to": to})
}

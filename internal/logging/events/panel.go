package events

import "github.com/modelsweep/modelsweep/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Hit(node, action string, index int) {
	logging.Trace("panel.hit", map[string]interface{}{"node": node, "action": action, "index": index})
}

func (PanelTracer) Scroll(node string, offset int) {
	logging.Trace("panel.scroll", map[string]interface{}{"node": node, "offset": offset})
}

func (PanelTracer) Search(node, query string, jumped int) {
	logging.Trace("panel.search", map[string]interface{}{"node": node, "query": query, "jumped": jumped})
}

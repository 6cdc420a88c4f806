package events

import "github.com/modelsweep/modelsweep/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) FeedConnected(url string) {
	logging.Trace("app.feed.connected", map[string]interface{}{"url": url})
}

func (AppTracer) FeedLost(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.feed.lost", payload)
}

package events

import "github.com/modelsweep/modelsweep/internal/logging"

type BridgeTracer struct{}

var Bridge = BridgeTracer{}

func (BridgeTracer) StartAck(client string) {
	logging.Trace("bridge.start_ack", map[string]interface{}{"client": client})
}

func (BridgeTracer) Cancel() {
	logging.Trace("bridge.cancel", nil)
}

func (BridgeTracer) ScannerCancel() {
	logging.Trace("bridge.scanner_cancel", nil)
}

func (BridgeTracer) Decision(session string, indices []int) {
	logging.Trace("bridge.decision", map[string]interface{}{"session": session, "indices": indices})
}

func (BridgeTracer) Failure(endpoint string, err error) {
	payload := map[string]interface{}{"endpoint": endpoint}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("bridge.failure", payload)
}

// Package bridge sends the UI's outbound messages to the pipeline engine.
// Every request is one-shot and fire-and-forget: no retries, no blocking of
// the render loop, and failures surface as notifications rather than state
// changes so the user can simply retry the action.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/modelsweep/modelsweep/internal/logging/events"
)

const requestTimeout = 5 * time.Second

// Engine endpoints. The engine blocks its execution graph on the decision
// endpoint; start/cancel manage the plugin-wide gate and the scanner
// endpoint aborts a long-running upstream analysis.
const (
	pathStart         = "/api/sweep/start"
	pathCancel        = "/api/sweep/cancel"
	pathScannerCancel = "/api/sweep/scanner/cancel"
	pathDecision      = "/api/sweep/decision"
)

// Bridge is an HTTP client for the engine's gate endpoints.
type Bridge struct {
	baseURL string
	client  *http.Client
	token   string
}

// New builds a bridge for the given engine base URL. Each process carries a
// stable client token so the engine can tell reconnecting clients apart.
func New(baseURL string) *Bridge {
	return &Bridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		token:   uuid.NewString(),
	}
}

// ClientToken returns the per-process client identifier.
func (b *Bridge) ClientToken() string {
	return b.token
}

type startPayload struct {
	Client string `json:"client"`
}

type decisionPayload struct {
	SessionID string `json:"sessionId"`
	Selected  []int  `json:"selected"`
}

// StartAck tells the engine this UI is ready to gate a run.
func (b *Bridge) StartAck(ctx context.Context) error {
	events.Bridge.StartAck(b.token)
	return b.post(ctx, pathStart, startPayload{Client: b.token})
}

// Cancel aborts the pending gate for the whole plugin.
func (b *Bridge) Cancel(ctx context.Context) error {
	events.Bridge.Cancel()
	return b.post(ctx, pathCancel, nil)
}

// ScannerCancel aborts a long-running upstream analysis step.
func (b *Bridge) ScannerCancel(ctx context.Context) error {
	events.Bridge.ScannerCancel()
	return b.post(ctx, pathScannerCancel, nil)
}

// Decision resumes a gated run with the chosen subset. An empty list means
// "proceed, delete nothing". Indices are already in ascending order.
func (b *Bridge) Decision(ctx context.Context, sessionID string, indices []int) error {
	if indices == nil {
		indices = []int{}
	}
	events.Bridge.Decision(sessionID, indices)
	return b.post(ctx, pathDecision, decisionPayload{SessionID: sessionID, Selected: indices})
}

func (b *Bridge) post(ctx context.Context, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		events.Bridge.Failure(path, err)
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("post %s: engine returned %s", path, resp.Status)
		events.Bridge.Failure(path, err)
		return err
	}
	return nil
}

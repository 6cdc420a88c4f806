package bridge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
)

type capture struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
}

type capturedRequest struct {
	path string
	body string
}

func (c *capture) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.requests = append(c.requests, capturedRequest{path: r.URL.Path, body: string(body)})
		c.mu.Unlock()
		if c.status != 0 {
			w.WriteHeader(c.status)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (c *capture) last(t *testing.T) capturedRequest {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		t.Fatalf("no requests captured")
	}
	return c.requests[len(c.requests)-1]
}

func TestStartAckSendsClientToken(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler())
	defer srv.Close()

	b := New(srv.URL)
	if err := b.StartAck(context.Background()); err != nil {
		t.Fatalf("start ack: %v", err)
	}

	req := c.last(t)
	if req.path != "/api/sweep/start" {
		t.Fatalf("unexpected path %q", req.path)
	}
	var payload struct {
		Client string `json:"client"`
	}
	if err := json.Unmarshal([]byte(req.body), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Client != b.ClientToken() {
		t.Fatalf("expected client token %q, got %q", b.ClientToken(), payload.Client)
	}
}

func TestDecisionPayload(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler())
	defer srv.Close()

	b := New(srv.URL)
	if err := b.Decision(context.Background(), "42", []int{0, 2, 5}); err != nil {
		t.Fatalf("decision: %v", err)
	}

	req := c.last(t)
	if req.path != "/api/sweep/decision" {
		t.Fatalf("unexpected path %q", req.path)
	}
	var payload struct {
		SessionID string `json:"sessionId"`
		Selected  []int  `json:"selected"`
	}
	if err := json.Unmarshal([]byte(req.body), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.SessionID != "42" {
		t.Fatalf("expected session 42, got %q", payload.SessionID)
	}
	if !reflect.DeepEqual(payload.Selected, []int{0, 2, 5}) {
		t.Fatalf("expected ascending indices, got %v", payload.Selected)
	}
}

func TestDecisionNilSelectionEncodesEmptyList(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler())
	defer srv.Close()

	b := New(srv.URL)
	if err := b.Decision(context.Background(), "42", nil); err != nil {
		t.Fatalf("decision: %v", err)
	}
	if body := c.last(t).body; body != `{"sessionId":"42","selected":[]}` {
		t.Fatalf("expected empty selected list, got %s", body)
	}
}

func TestCancelEndpoints(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler())
	defer srv.Close()

	b := New(srv.URL)
	if err := b.Cancel(context.Background()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if req := c.last(t); req.path != "/api/sweep/cancel" || req.body != "" {
		t.Fatalf("unexpected cancel request %+v", req)
	}

	if err := b.ScannerCancel(context.Background()); err != nil {
		t.Fatalf("scanner cancel: %v", err)
	}
	if req := c.last(t); req.path != "/api/sweep/scanner/cancel" {
		t.Fatalf("unexpected scanner cancel path %q", req.path)
	}
}

func TestNonSuccessStatusIsAnError(t *testing.T) {
	c := &capture{status: http.StatusBadGateway}
	srv := httptest.NewServer(c.handler())
	defer srv.Close()

	b := New(srv.URL)
	if err := b.Cancel(context.Background()); err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
}

func TestUnreachableEngineIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := New(url)
	if err := b.StartAck(context.Background()); err == nil {
		t.Fatalf("expected an error when the engine is unreachable")
	}
}

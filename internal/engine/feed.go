// Package engine receives the pipeline engine's pushed events and routes
// them into typed session transitions. The feed owns the wire; the router
// owns validation and dispatch.
package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/modelsweep/modelsweep/internal/logging/events"
)

const eventsPath = "/api/sweep/events"

const (
	reconnectMinDelay = time.Second
	reconnectMaxDelay = 30 * time.Second
)

// Event is one raw pushed event: a name plus an undecoded payload.
type Event struct {
	Name string
	Data json.RawMessage
}

// Feed holds the server-sent-events stream open and publishes raw events on
// a channel. It reconnects with exponential backoff until stopped.
type Feed struct {
	url    string
	client *http.Client

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewFeed starts a feed against the engine's event stream.
func NewFeed(baseURL string) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		url: strings.TrimRight(baseURL, "/") + eventsPath,
		// No client timeout: the stream is long-lived and cancellation goes
		// through the context.
		client: &http.Client{},
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	f.wg.Add(1)
	go f.run()

	go func() {
		f.wg.Wait()
		close(f.events)
	}()

	return f
}

// Events returns the channel of raw pushed events.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Stop cancels the feed. The reader exits after its current read completes;
// use Wait if a clean drain is required (e.g. in tests).
func (f *Feed) Stop() {
	f.cancel()
}

// Wait blocks until the reader goroutine has exited and the events channel
// is closed.
func (f *Feed) Wait() {
	f.wg.Wait()
}

func (f *Feed) run() {
	defer f.wg.Done()

	delay := reconnectMinDelay
	for {
		if f.ctx.Err() != nil {
			return
		}
		err := f.consume()
		if f.ctx.Err() != nil {
			return
		}
		events.App.FeedLost(err)

		select {
		case <-f.ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}

// consume opens the stream and reads events until it breaks. A successful
// connect resets nothing here; backoff growth is the caller's concern.
func (f *Feed) consume() error {
	req, err := http.NewRequestWithContext(f.ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("connect feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed returned %s", resp.Status)
	}
	events.App.FeedConnected(f.url)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var name string
	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if name != "" || data.Len() > 0 {
				f.emit(Event{Name: name, Data: json.RawMessage(data.String())})
			}
			name = ""
			data.Reset()
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		case strings.HasPrefix(line, ":"):
			// Comment/keepalive line.
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read feed: %w", err)
	}
	return fmt.Errorf("feed stream closed")
}

func (f *Feed) emit(evt Event) {
	select {
	case <-f.ctx.Done():
	case f.events <- evt:
	}
}

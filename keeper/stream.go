package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/keeperctl/internal/ctxlog"
)

// eventStreamPath is where the keeper service mounts its socket.io endpoint.
const eventStreamPath = "/v1/events"

// EventsSubscribeRequest is the builder for the event stream operation.
// Unlike the HTTP builders it holds a connection open: Send subscribes to a
// channel and returns once the requested number of events has arrived, the
// context is done, or the connection fails.
type EventsSubscribeRequest struct {
	client  *Client
	channel *string
	count   *int64
}

// EventsSubscribe returns a fresh builder for the event stream operation.
func (c *Client) EventsSubscribe() *EventsSubscribeRequest {
	return &EventsSubscribeRequest{client: c}
}

// Channel sets the channel to subscribe to.
func (r *EventsSubscribeRequest) Channel(v string) *EventsSubscribeRequest {
	r.channel = &v
	return r
}

// Count sets how many events to collect before returning.
func (r *EventsSubscribeRequest) Count(v int64) *EventsSubscribeRequest {
	r.count = &v
	return r
}

// Send connects to the event stream and blocks until enough events arrived
// or the context is done.
func (r *EventsSubscribeRequest) Send(ctx context.Context) ([]Event, error) {
	logger := ctxlog.FromContext(ctx)

	channel := "global"
	if r.channel != nil {
		channel = *r.channel
	}
	want := int64(1)
	if r.count != nil {
		want = *r.count
	}
	if want < 1 {
		return nil, fmt.Errorf("keeper: event count must be positive, got %d", want)
	}

	parsedURL, err := url.Parse(r.client.host)
	if err != nil {
		return nil, fmt.Errorf("keeper: invalid host %q: %w", r.client.host, err)
	}
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)

	opts := socket.DefaultOptions()
	opts.SetPath(eventStreamPath)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)
	defer io.Disconnect()

	var (
		mu     sync.Mutex
		events []Event
	)

	// Handlers keep firing after the collection target is met; the
	// completion signal must be one-shot so late handlers never block.
	done := make(chan error, 1)
	var once sync.Once
	finish := func(err error) {
		once.Do(func() { done <- err })
	}

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Event stream connected.", "channel", channel, "sid", io.Id())
		io.Emit("subscribe", map[string]any{"channel": channel})
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if connErr, ok := errs[0].(error); ok {
				finish(fmt.Errorf("keeper: event stream connection failed: %w", connErr))
				return
			}
		}
		finish(fmt.Errorf("keeper: event stream connection failed"))
	})

	io.On(types.EventName("event"), func(data ...any) {
		if len(data) == 0 {
			return
		}
		ev, err := decodeEvent(data[0])
		if err != nil {
			logger.Warn("Dropping undecodable event.", "error", err)
			return
		}
		mu.Lock()
		events = append(events, ev)
		collected := int64(len(events))
		mu.Unlock()
		if collected >= want {
			finish(nil)
		}
	})

	io.Connect()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("keeper: event stream interrupted: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return nil, err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	// A burst can arrive between the threshold check and the select waking
	// up; the caller asked for exactly want events.
	if int64(len(events)) > want {
		events = events[:want]
	}
	return events, nil
}

// decodeEvent converts a raw socket.io payload into an Event through a JSON
// round trip, which tolerates both map payloads and pre-decoded structs.
func decodeEvent(raw any) (Event, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event payload: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(buf, &ev); err != nil {
		return Event{}, fmt.Errorf("unmarshal event payload: %w", err)
	}
	return ev, nil
}

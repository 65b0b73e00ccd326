// Package testutil provides shared helpers for keeperctl tests: a recording
// fake of the keeper HTTP API and a thread-safe output buffer.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RecordedRequest captures one request the fake keeper server received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

// cannedResponse is what the fake serves for one path.
type cannedResponse struct {
	status  int
	payload any
}

// KeeperServer is an in-process fake of the keeper HTTP API. It records
// every request and serves canned JSON responses configured per path. Paths
// without a canned response get 200 with an empty object.
type KeeperServer struct {
	srv *httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]cannedResponse
}

// NewKeeperServer starts a fake keeper server that shuts down with the test.
func NewKeeperServer(t *testing.T) *KeeperServer {
	t.Helper()

	s := &KeeperServer{
		responses: make(map[string]cannedResponse),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the base URL clients should be pointed at.
func (s *KeeperServer) URL() string {
	return s.srv.URL
}

// Respond configures the JSON payload and status served for a path.
func (s *KeeperServer) Respond(path string, status int, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = cannedResponse{status: status, payload: payload}
}

// Requests returns a copy of every recorded request so far.
func (s *KeeperServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent recorded request and fails the test
// when none arrived.
func (s *KeeperServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests, "fake keeper server received no requests")
	return s.requests[len(s.requests)-1]
}

// RequestCount returns how many requests arrived.
func (s *KeeperServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *KeeperServer) handle(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}
	if r.Body != nil {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			rec.Body = body
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	resp, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusOK, payload: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.payload)
}

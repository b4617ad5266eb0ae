// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package testutil provides common test helpers for get_subscribers_for_component
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

// TestToken is the token NewStatuspageServer accepts.
const TestToken = "test-token"

// FixtureComponent is a component as the server reports it.
type FixtureComponent struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GroupID string `json:"group_id,omitempty"`
	Group   bool   `json:"group"`
}

// FixtureSubscriber is a subscriber as the server reports it. A nil
// Components list is omitted from the payload entirely.
type FixtureSubscriber struct {
	ID          string   `json:"id"`
	Mode        string   `json:"mode"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Endpoint    string   `json:"endpoint,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	Components  []string `json:"components,omitempty"`
}

// Fixture is the content of one page served by NewStatuspageServer.
type Fixture struct {
	PageID      string
	Components  []FixtureComponent
	Subscribers []FixtureSubscriber
}

// DefaultFixture returns page_x with a grouped "Checkout API" component and
// subscribers on the component, the page and a sibling component.
func DefaultFixture() Fixture {
	return Fixture{
		PageID: "page_x",
		Components: []FixtureComponent{
			{ID: "cmp_1", Name: "Checkout API", GroupID: "grp_a"},
			{ID: "cmp_2", Name: "Search", GroupID: "grp_a"},
			{ID: "grp_a", Name: "Storefront", Group: true},
		},
		Subscribers: []FixtureSubscriber{
			{ID: "s1", Mode: "email", Email: "alice@example.com", CreatedAt: "2024-01-15T10:30:00Z", Components: []string{"cmp_1"}},
			{ID: "s2", Mode: "email", Email: "bob@example.com", CreatedAt: "2024-01-16T08:00:00Z"},
			{ID: "s3", Mode: "email", Email: "carol@example.com", Components: []string{"cmp_2"}},
		},
	}
}

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server

	requestCount atomic.Int32

	mu       sync.Mutex
	requests []string
}

// RequestCount returns how many requests reached the server.
func (m *MockServer) RequestCount() int {
	return int(m.requestCount.Load())
}

// Requests returns the request URIs received so far, in order.
func (m *MockServer) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockServer) record(r *http.Request) {
	m.requestCount.Add(1)
	m.mu.Lock()
	m.requests = append(m.requests, r.URL.RequestURI())
	m.mu.Unlock()
}

// NewMockServer creates a mock server that counts requests before handing
// them to handler. The server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// NewStatuspageServer creates a mock server emulating the component and
// subscriber endpoints of the Statuspage API for a single page. It checks
// the OAuth token and honours page and per_page the way the vendor does.
func NewStatuspageServer(t *testing.T, fixture Fixture) *MockServer {
	t.Helper()

	mux := http.NewServeMux()
	base := "/pages/" + fixture.PageID

	mux.HandleFunc("GET "+base+"/components/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, c := range fixture.Components {
			if c.ID == id {
				writeJSON(w, http.StatusOK, c)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	mux.HandleFunc("GET "+base+"/components", func(w http.ResponseWriter, r *http.Request) {
		items, ok := paginate(w, r, fixture.Components)
		if ok {
			writeJSON(w, http.StatusOK, items)
		}
	})
	mux.HandleFunc("GET "+base+"/subscribers", func(w http.ResponseWriter, r *http.Request) {
		items, ok := paginate(w, r, fixture.Subscribers)
		if ok {
			writeJSON(w, http.StatusOK, items)
		}
	})

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "OAuth "+TestToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Could not authenticate"})
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// paginate slices items by the page and per_page query parameters. The
// vendor default page size is 100 and the maximum is 100.
func paginate[T any](w http.ResponseWriter, r *http.Request, items []T) ([]T, bool) {
	page, perPage := 1, 100
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid page"})
			return nil, false
		}
		page = n
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid per_page"})
			return nil, false
		}
		perPage = n
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, true
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

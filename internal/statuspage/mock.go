// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package statuspage

import (
	"context"
	"fmt"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

// MockClient is a mock implementation of the Statuspage Client interface for testing.
type MockClient struct {
	// Page and its contents
	Page        string
	Components  []Component
	Subscribers []Subscriber

	// Errors to return
	ComponentError  error
	ListError       error
	SubscriberError error

	// FailSubscriberPage makes ListSubscribers fail on that page (1-based)
	// with SubscriberError.
	FailSubscriberPage int

	// Track calls for verification
	GetComponentCalls    int
	ListComponentsCalls  int
	ListSubscribersCalls int
	LastPerPage          int
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Page:        "page_x",
		Components:  generateTestComponents(),
		Subscribers: generateTestSubscribers(),
	}
}

// PageID implements the Client interface
func (m *MockClient) PageID() string {
	return m.Page
}

// GetComponent implements the Client interface
func (m *MockClient) GetComponent(ctx context.Context, id string) (*Component, error) {
	m.GetComponentCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ComponentError != nil {
		return nil, m.ComponentError
	}

	for _, c := range m.Components {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, &spgerrors.APIError{Operation: "get component", StatusCode: 404, Body: `{"error":"Not found"}`}
}

// ListComponents implements the Client interface
func (m *MockClient) ListComponents(ctx context.Context, page, perPage int) ([]Component, error) {
	m.ListComponentsCalls++
	m.LastPerPage = perPage

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListError != nil {
		return nil, m.ListError
	}
	return slicePage(m.Components, page, perPage), nil
}

// ListSubscribers implements the Client interface
func (m *MockClient) ListSubscribers(ctx context.Context, page, perPage int) ([]Subscriber, error) {
	m.ListSubscribersCalls++
	m.LastPerPage = perPage

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.SubscriberError != nil && (m.FailSubscriberPage == 0 || m.FailSubscriberPage == page) {
		return nil, m.SubscriberError
	}
	return slicePage(m.Subscribers, page, perPage), nil
}

func slicePage[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		panic(fmt.Sprintf("mock: invalid per page %d", perPage))
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// generateTestComponents creates sample component data for testing
func generateTestComponents() []Component {
	return []Component{
		{ID: "cmp_1", Name: "Checkout API", GroupID: "grp_a"},
		{ID: "cmp_2", Name: "Search", GroupID: "grp_a"},
		{ID: "grp_a", Name: "Storefront", Group: true},
		{ID: "cmp_3", Name: "Billing"},
	}
}

// generateTestSubscribers creates sample subscriber data for testing
func generateTestSubscribers() []Subscriber {
	return []Subscriber{
		{ID: "s1", Mode: ModeEmail, Email: "alice@example.com", Targets: []string{"cmp_1"}},
		{ID: "s2", Mode: ModeSMS, PhoneNumber: "5550100", PhoneCountry: "US", Targets: []string{"page_x"}},
		{ID: "s3", Mode: ModeEmail, Email: "carol@example.com", Targets: []string{"cmp_2"}},
		{ID: "s4", Mode: ModeWebhook, Endpoint: "https://hooks.example.com/sp", Targets: []string{"grp_a"}},
		{ID: "s5", Mode: ModeEmail, Email: "erin@example.com", Targets: []string{"cmp_3", "cmp_1"}},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithComponents sets specific components to return
func WithComponents(components []Component) MockClientOption {
	return func(m *MockClient) {
		m.Components = components
	}
}

// WithSubscribers sets specific subscribers to return
func WithSubscribers(subscribers []Subscriber) MockClientOption {
	return func(m *MockClient) {
		m.Subscribers = subscribers
	}
}

// WithSubscriberError makes ListSubscribers fail with err on the given page,
// or on every page when page is 0.
func WithSubscriberError(err error, page int) MockClientOption {
	return func(m *MockClient) {
		m.SubscriberError = err
		m.FailSubscriberPage = page
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}

// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package statuspage

import "context"

// Client defines the interface for interacting with the Statuspage API.
// This interface allows for easy mocking in tests.
type Client interface {
	// PageID returns the page every call is scoped to.
	PageID() string

	// GetComponent retrieves a single component of the page by id.
	GetComponent(ctx context.Context, id string) (*Component, error)

	// ListComponents retrieves one page (1-based) of the page's components.
	ListComponents(ctx context.Context, page, perPage int) ([]Component, error)

	// ListSubscribers retrieves one page (1-based) of the page's subscribers.
	ListSubscribers(ctx context.Context, page, perPage int) ([]Subscriber, error)
}

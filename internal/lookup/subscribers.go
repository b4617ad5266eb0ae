// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package lookup

import (
	"context"

	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/output"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/statuspage"
)

// FetchSubscribers pulls every subscriber of the page, following pagination
// until a short or empty page. A subscriber id seen on an earlier page is
// not repeated; order is preserved.
func FetchSubscribers(ctx context.Context, client statuspage.Client, perPage int) ([]statuspage.Subscriber, error) {
	seen := make(map[string]struct{})
	var all []statuspage.Subscriber

	for page, err := range statuspage.Pages(ctx, client.ListSubscribers, perPage) {
		if err != nil {
			return nil, err
		}
		for _, s := range page {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			all = append(all, s)
		}
	}
	return all, nil
}

// Filter returns the subscribers whose targets include the component, the
// component's group, or the page. It has no side effects and keeps the
// input order.
func Filter(component statuspage.Component, pageID string, subscribers []statuspage.Subscriber) []statuspage.Subscriber {
	wanted := map[string]struct{}{component.ID: {}}
	if component.GroupID != "" {
		wanted[component.GroupID] = struct{}{}
	}
	if pageID != "" {
		wanted[pageID] = struct{}{}
	}

	matched := make([]statuspage.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		for _, target := range s.Targets {
			if _, ok := wanted[target]; ok {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// Rows converts matched subscribers into output rows for component.
func Rows(component statuspage.Component, subscribers []statuspage.Subscriber) []output.Row {
	rows := make([]output.Row, 0, len(subscribers))
	for _, s := range subscribers {
		rows = append(rows, output.Row{
			SubscriberID: s.ID,
			Mode:         s.Mode,
			Contact:      s.Contact(),
			Component:    component.Name,
			CreatedAt:    s.CreatedAt,
		})
	}
	return rows
}

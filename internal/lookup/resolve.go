// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package lookup relates Statuspage subscribers to a single component. It
// resolves the component from a name or an id, pulls every subscriber of the
// page and keeps those subscribed to the component, its group or the whole
// page.
package lookup

import (
	"context"
	"strings"

	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/apierror"
	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/statuspage"
)

// Query identifies the component to resolve. Exactly one field must be set.
type Query struct {
	Name string
	ID   string
}

// Validate checks that exactly one of Name and ID is set.
func (q Query) Validate() error {
	hasName := strings.TrimSpace(q.Name) != ""
	hasID := strings.TrimSpace(q.ID) != ""

	switch {
	case hasName && hasID:
		return spgerrors.Usagef("--component-name and --component-id are mutually exclusive")
	case !hasName && !hasID:
		return spgerrors.Usagef("exactly one of --component-name or --component-id must be provided")
	}
	return nil
}

// String returns what the user asked for, for logs and errors.
func (q Query) String() string {
	if q.ID != "" {
		return q.ID
	}
	return q.Name
}

// Resolve returns the single component matching q. Lookups by id use the
// component endpoint directly; lookups by name scan every component of the
// page and compare names case-insensitively. No match, or more than one,
// is a ResolutionError.
func Resolve(ctx context.Context, client statuspage.Client, q Query, perPage int) (*statuspage.Component, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if id := strings.TrimSpace(q.ID); id != "" {
		return resolveByID(ctx, client, id)
	}
	return resolveByName(ctx, client, strings.TrimSpace(q.Name), perPage)
}

func resolveByID(ctx context.Context, client statuspage.Client, id string) (*statuspage.Component, error) {
	component, err := client.GetComponent(ctx, id)
	if err != nil {
		if apierror.NewInspector().IsNotFoundError(err) {
			return nil, &spgerrors.ResolutionError{Input: id, Reason: "not found"}
		}
		return nil, err
	}
	return component, nil
}

func resolveByName(ctx context.Context, client statuspage.Client, name string, perPage int) (*statuspage.Component, error) {
	components, err := statuspage.Collect(statuspage.Pages(ctx, client.ListComponents, perPage))
	if err != nil {
		return nil, err
	}

	var matches []statuspage.Component
	for _, c := range components {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &spgerrors.ResolutionError{Input: name, Reason: "not found"}
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return nil, &spgerrors.ResolutionError{Input: name, Reason: "is ambiguous", Matches: ids}
	}
}

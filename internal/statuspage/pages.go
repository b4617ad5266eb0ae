// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package statuspage

import (
	"context"
	"fmt"
	"iter"
)

// maxPages bounds a single traversal in case the server ignores the page
// parameter and keeps answering with full pages.
const maxPages = 10000

// Pages returns the sequence of pages produced by fetch, which retrieves one
// page (1-based) of a paged list endpoint, starting at page 1
// every time the sequence is ranged over. Nothing is fetched until the
// sequence is consumed. The sequence ends after an empty page, after a page
// shorter than perPage, or after yielding the first error.
func Pages[T any](ctx context.Context, fetch func(ctx context.Context, page, perPage int) ([]T, error), perPage int) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for page := 1; ; page++ {
			if page > maxPages {
				yield(nil, fmt.Errorf("pagination did not terminate after %d pages", maxPages))
				return
			}

			items, err := fetch(ctx, page, perPage)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(items) == 0 {
				return
			}
			if !yield(items, nil) {
				return
			}
			if len(items) < perPage {
				return
			}
		}
	}
}

// Collect consumes every page into a single slice.
func Collect[T any](pages iter.Seq2[[]T, error]) ([]T, error) {
	var all []T
	for items, err := range pages {
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}

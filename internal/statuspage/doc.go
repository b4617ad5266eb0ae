// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package statuspage provides a client for the Atlassian Statuspage REST API
// covering the three calls needed to relate subscribers to components:
// single component lookup, component listing and subscriber listing.
//
// The package includes:
//   - A Client interface for the paged list calls and the component lookup
//   - A REST implementation over net/http with OAuth token authentication
//   - Pages, a lazy iterator over any paged list call
//   - Mock client for testing
//
// Basic usage:
//
//	client := statuspage.NewRESTClient(cfg)
//	for subs, err := range statuspage.Pages(ctx, client.ListSubscribers, 100) {
//	    if err != nil {
//	        // Handle error
//	    }
//	    for _, s := range subs {
//	        // Process subscriber
//	    }
//	}
package statuspage

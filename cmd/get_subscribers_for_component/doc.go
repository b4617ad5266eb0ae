// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package main implements the get_subscribers_for_component command-line
// interface. It looks up one component of a Statuspage page, either by name
// or by id, and lists the subscribers notified about it: subscribers of the
// component itself, of its group, and of the whole page.
//
// Usage:
//
//	get_subscribers_for_component (--component-name NAME | --component-id ID) [flags]
//
// Example:
//
//	export STATUSPAGE_TOKEN=your_token
//	export STATUSPAGE_PAGE_ID=your_page
//	get_subscribers_for_component --component-name "Checkout API" --out-csv subscribers.csv
//
// Without --out-csv or --out-json the subscribers are printed as a table.
//
// Exit codes:
//   - 0: Success
//   - 1: API or general error
//   - 2: Usage error
//   - 3: Configuration error
//   - 4: Component not found or ambiguous
//   - 5: Output file error
package main

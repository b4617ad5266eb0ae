// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package version holds the build version, set at link time with
// -ldflags "-X github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/version.Version=v1.2.3".
package version

// Version is the release version of the binary.
var Version = "dev"

// UserAgent returns the User-Agent sent to the Statuspage API.
func UserAgent() string {
	return "get_subscribers_for_component/" + Version
}

// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package errors defines the error taxonomy for get_subscribers_for_component.
// Every failure the tool reports belongs to exactly one class, and each class
// maps to a distinct exit code in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for consistent error handling and exit code mapping.
// The typed errors below match their sentinel with errors.Is.
var (
	// ErrUsage indicates invalid, missing or conflicting command-line arguments.
	// Maps to exit code 2.
	ErrUsage = errors.New("usage error")

	// ErrConfig indicates required configuration is missing or invalid.
	// Maps to exit code 3.
	ErrConfig = errors.New("configuration error")

	// ErrResolution indicates the requested component could not be resolved
	// to exactly one component. Maps to exit code 4.
	ErrResolution = errors.New("component resolution failed")

	// ErrAPI indicates the Statuspage API answered with a non-success status
	// or could not be reached. Maps to exit code 1.
	ErrAPI = errors.New("statuspage api error")

	// ErrOutput indicates the requested output file could not be written.
	// Maps to exit code 5.
	ErrOutput = errors.New("output error")
)

// UsageError reports a command-line problem detected before any network call.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// Is reports whether target is ErrUsage.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError reports missing or invalid configuration. Missing lists every
// required setting that was absent so they can be fixed in one go.
type ConfigError struct {
	Missing []string
	Message string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// ResolutionError reports a component lookup that did not yield exactly one
// component. Input echoes what the user asked for; Matches holds the ids of
// the candidates when the name was ambiguous.
type ResolutionError struct {
	Input   string
	Reason  string
	Matches []string
}

func (e *ResolutionError) Error() string {
	if len(e.Matches) > 0 {
		return fmt.Sprintf("component %q %s: matching ids %s", e.Input, e.Reason, strings.Join(e.Matches, ", "))
	}
	return fmt.Sprintf("component %q %s", e.Input, e.Reason)
}

// Is reports whether target is ErrResolution.
func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// APIError reports a failed call to the Statuspage API. StatusCode is zero
// when no response was received, in which case Err holds the transport error.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
	Hint       string
	Err        error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to %s", e.Operation)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
		if body := strings.TrimSpace(e.Body); body != "" {
			fmt.Fprintf(&b, " - %s", body)
		}
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, " (%s)", e.Hint)
	}
	return b.String()
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool { return target == ErrAPI }

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error { return e.Err }

// OutputError reports a failure creating, writing or closing an output file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Is reports whether target is ErrOutput.
func (e *OutputError) Is(target error) bool { return target == ErrOutput }

// Unwrap returns the underlying OS error.
func (e *OutputError) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errors.Is(err, ErrConfig):
		return 3
	case errors.Is(err, ErrResolution):
		return 4
	case errors.Is(err, ErrOutput):
		return 5
	default:
		return 1
	}
}

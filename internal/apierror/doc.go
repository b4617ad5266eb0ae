// Package apierror provides error inspection capabilities for Statuspage API
// errors. It centralizes the logic for classifying failed API calls so the
// client and the CLI do not need string-based checks of their own.
package apierror

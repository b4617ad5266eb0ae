package apierror

import (
	"errors"
	"net"
	"net/http"
	"strings"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

// Inspector provides methods for analyzing Statuspage API errors.
type Inspector interface {
	// IsAuthError returns true if the API rejected the token.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the requested resource does not exist.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the API throttled the request.
	IsRateLimitError(err error) bool

	// IsServerError returns true if the API failed on its side (5xx).
	IsServerError(err error) bool

	// IsNetworkError returns true if no response was received at all.
	IsNetworkError(err error) bool
}

// StatusInspector implements Inspector by reading the status code of an
// APIError in the chain, and the transport error when there is none.
type StatusInspector struct{}

// NewInspector creates a new StatusInspector.
func NewInspector() Inspector {
	return &StatusInspector{}
}

func statusOf(err error) int {
	var apiErr *spgerrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsAuthError checks for 401 and 403 responses.
func (i *StatusInspector) IsAuthError(err error) bool {
	code := statusOf(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsNotFoundError checks for 404 responses.
func (i *StatusInspector) IsNotFoundError(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsRateLimitError checks for 429 responses.
func (i *StatusInspector) IsRateLimitError(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

// IsServerError checks for 5xx responses.
func (i *StatusInspector) IsServerError(err error) bool {
	code := statusOf(err)
	return code >= 500 && code <= 599
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *StatusInspector) IsNetworkError(err error) bool {
	if err == nil || statusOf(err) != 0 {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// Hint returns a short user action for a classified error, or "" when the
// error needs no extra explanation.
func Hint(i Inspector, err error, tokenEnv string) string {
	switch {
	case i.IsAuthError(err):
		return "check the API key in " + tokenEnv
	case i.IsRateLimitError(err):
		return "rate limited by Statuspage, wait before running again"
	case i.IsNetworkError(err):
		return "could not reach the Statuspage API, check the API URL and your connection"
	case i.IsServerError(err):
		return "Statuspage reported an internal error"
	default:
		return ""
	}
}

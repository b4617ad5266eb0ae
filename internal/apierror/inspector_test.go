package apierror

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

func apiErr(code int) error {
	return &spgerrors.APIError{Operation: "list subscribers", StatusCode: code}
}

func TestStatusInspector(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name      string
		err       error
		auth      bool
		notFound  bool
		rateLimit bool
		server    bool
		network   bool
	}{
		{name: "401 unauthorized", err: apiErr(401), auth: true},
		{name: "403 forbidden", err: apiErr(403), auth: true},
		{name: "404 not found", err: apiErr(404), notFound: true},
		{name: "429 throttled", err: apiErr(429), rateLimit: true},
		{name: "500 internal", err: apiErr(500), server: true},
		{name: "503 unavailable", err: apiErr(503), server: true},
		{name: "wrapped 401", err: fmt.Errorf("resolve: %w", apiErr(401)), auth: true},
		{name: "400 bad request", err: apiErr(400)},
		{
			name:    "transport failure",
			err:     &spgerrors.APIError{Operation: "get component", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
			network: true,
		},
		{name: "plain dial error", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), network: true},
		{name: "unrelated", err: errors.New("something else")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.auth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.auth)
			}
			if got := inspector.IsNotFoundError(tt.err); got != tt.notFound {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.notFound)
			}
			if got := inspector.IsRateLimitError(tt.err); got != tt.rateLimit {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.rateLimit)
			}
			if got := inspector.IsServerError(tt.err); got != tt.server {
				t.Errorf("IsServerError() = %v, want %v", got, tt.server)
			}
			if got := inspector.IsNetworkError(tt.err); got != tt.network {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.network)
			}
		})
	}
}

func TestHint(t *testing.T) {
	inspector := NewInspector()

	if got := Hint(inspector, apiErr(401), "STATUSPAGE_TOKEN"); !strings.Contains(got, "STATUSPAGE_TOKEN") {
		t.Errorf("auth hint %q does not name the token variable", got)
	}
	if got := Hint(inspector, apiErr(429), "X"); !strings.Contains(got, "rate limited") {
		t.Errorf("rate limit hint = %q", got)
	}
	if got := Hint(inspector, apiErr(404), "X"); got != "" {
		t.Errorf("404 hint = %q, want empty", got)
	}
	if got := Hint(inspector, apiErr(502), "X"); got == "" {
		t.Error("server error should have a hint")
	}
}

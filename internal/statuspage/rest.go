// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package statuspage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/apierror"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/config"
	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/version"
)

const (
	// maxResponseSize caps a single response body.
	maxResponseSize = 10 * 1024 * 1024 // 10MB

	// maxErrorBody caps how much of an error body is echoed back.
	maxErrorBody = 1024
)

// RESTClient implements the Client interface using the Statuspage REST API.
// Requests are issued one at a time with the http package defaults; there
// are no retries.
type RESTClient struct {
	http      *http.Client
	pageURL   string
	pageID    string
	tokenEnv  string
	inspector apierror.Inspector
	log       *logrus.Entry
}

// NewRESTClient creates a client for the page configured in cfg. The client
// is configured with:
//   - OAuth token authentication
//   - JSON content negotiation and a User-Agent header
//   - Response size limiting to prevent memory issues
func NewRESTClient(cfg *config.Config) *RESTClient {
	return NewRESTClientWithTransport(cfg, http.DefaultTransport)
}

// NewRESTClientWithTransport is NewRESTClient with a caller-supplied base
// transport.
func NewRESTClientWithTransport(cfg *config.Config, base http.RoundTripper) *RESTClient {
	return &RESTClient{
		http: &http.Client{
			Transport: &authTransport{
				token: cfg.Statuspage.Token,
				base:  base,
				limit: maxResponseSize,
			},
		},
		pageURL:   cfg.PageURL(),
		pageID:    cfg.Statuspage.PageID,
		tokenEnv:  cfg.Statuspage.TokenEnv,
		inspector: apierror.NewInspector(),
		log:       logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithLogger sets the logger request and response details are written to
// at debug level.
func (c *RESTClient) WithLogger(log *logrus.Entry) *RESTClient {
	c.log = log
	return c
}

// PageID returns the configured page id.
func (c *RESTClient) PageID() string {
	return c.pageID
}

// GetComponent fetches a single component. A missing component surfaces as
// an APIError with status 404.
func (c *RESTClient) GetComponent(ctx context.Context, id string) (*Component, error) {
	var raw componentJSON
	if err := c.get(ctx, "get component", "/components/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}

	component, err := raw.toComponent()
	if err != nil {
		return nil, &spgerrors.APIError{Operation: "get component", Err: fmt.Errorf("invalid component: %w", err)}
	}
	return &component, nil
}

// ListComponents fetches one page of components.
func (c *RESTClient) ListComponents(ctx context.Context, page, perPage int) ([]Component, error) {
	var raw []componentJSON
	if err := c.get(ctx, "list components", "/components", pageQuery(page, perPage), &raw); err != nil {
		return nil, err
	}

	components := make([]Component, 0, len(raw))
	for i, item := range raw {
		component, err := item.toComponent()
		if err != nil {
			return nil, &spgerrors.APIError{
				Operation: "list components",
				Err:       fmt.Errorf("invalid component at index %d of page %d: %w", i, page, err),
			}
		}
		components = append(components, component)
	}
	return components, nil
}

// ListSubscribers fetches one page of subscribers.
func (c *RESTClient) ListSubscribers(ctx context.Context, page, perPage int) ([]Subscriber, error) {
	var raw []subscriberJSON
	if err := c.get(ctx, "list subscribers", "/subscribers", pageQuery(page, perPage), &raw); err != nil {
		return nil, err
	}

	subscribers := make([]Subscriber, 0, len(raw))
	for i, item := range raw {
		subscriber, err := item.toSubscriber(c.pageID)
		if err != nil {
			return nil, &spgerrors.APIError{
				Operation: "list subscribers",
				Err:       fmt.Errorf("invalid subscriber at index %d of page %d: %w", i, page, err),
			}
		}
		subscribers = append(subscribers, subscriber)
	}
	return subscribers, nil
}

func pageQuery(page, perPage int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
}

// get issues a GET below the page URL and decodes a JSON response into out.
func (c *RESTClient) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	target := c.pageURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &spgerrors.APIError{Operation: op, Err: err}
	}

	c.log.WithFields(logrus.Fields{"operation": op, "url": target}).Debug("statuspage request")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(&spgerrors.APIError{Operation: op, Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapError(&spgerrors.APIError{Operation: op, Err: fmt.Errorf("failed to read response: %w", err)})
	}

	c.log.WithFields(logrus.Fields{"operation": op, "status": resp.StatusCode, "bytes": len(body)}).Debug("statuspage response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(&spgerrors.APIError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		})
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &spgerrors.APIError{Operation: op, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return nil
}

// mapError attaches an actionable hint to an API error.
func (c *RESTClient) mapError(err *spgerrors.APIError) error {
	err.Hint = apierror.Hint(c.inspector, err, c.tokenEnv)
	return err
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication headers and safety limits to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
	limit int64
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "OAuth "+t.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      t.limit,
		}
	}

	return resp, nil
}

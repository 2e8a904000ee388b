// Package api talks to the grape-challenge backend on behalf of the browser.
//
// Every method issues exactly one request and reduces the response to a
// Result. Transport failures and non-2xx responses never surface as errors;
// the Result carries the empty value and OK=false instead.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
)

// Client handles communication with the grape-challenge backend
type Client struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

// NewClient creates a new backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			// Redirects from the backend are returned to the caller, not followed
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		Timeout: timeout,
	}
}

// Result is the tagged outcome of one backend call
type Result[T any] struct {
	Value   T
	OK      bool
	Status  int
	Message string
	// Cookies are the Set-Cookie values the backend returned
	Cookies []*http.Cookie
}

// call describes one backend request
type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
}

// errorBody is the failure payload shape; FastAPI validation errors use detail
type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

func (e errorBody) text() string {
	if e.Message != "" {
		return e.Message
	}
	var s string
	if len(e.Detail) > 0 && json.Unmarshal(e.Detail, &s) == nil {
		return s
	}
	return ""
}

// response is a fully read backend reply
type response struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

// send issues the request with the session cookies from ctx and reads the reply
func (c *Client) send(ctx context.Context, cl call) (*response, error) {
	var reqBody io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	target := c.BaseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, cl.method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)
	if reqBody != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	for _, ck := range SessionCookies(ctx) {
		req.AddCookie(ck)
	}
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		req.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return &response{status: resp.StatusCode, body: body, cookies: resp.Cookies()}, nil
}

// do performs the request and decodes a 2xx body into T. accept rejects
// decoded bodies that lack a required field; nil accepts everything.
func do[T any](ctx context.Context, c *Client, cl call, accept func(*T) bool) Result[T] {
	var res Result[T]
	log := logger.FromContext(ctx)
	start := time.Now()

	outcome, err := fill(ctx, c, cl, &res, accept)
	metrics.RecordBackendCall(cl.endpoint, outcome, time.Since(start))

	if err != nil {
		var zero T
		res.Value = zero
		res.OK = false
		log.Warn("Backend call failed",
			"endpoint", cl.endpoint,
			"status", res.Status,
			"outcome", outcome,
			"error", err)
		return res
	}
	res.OK = true
	log.Debug("Backend call succeeded", "endpoint", cl.endpoint, "status", res.Status)
	return res
}

func fill[T any](ctx context.Context, c *Client, cl call, res *Result[T], accept func(*T) bool) (string, error) {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return metrics.OutcomeTransport, err
	}
	res.Status = resp.status
	res.Cookies = resp.cookies

	if resp.status < 200 || resp.status >= 300 {
		var eb errorBody
		if json.Unmarshal(resp.body, &eb) == nil {
			res.Message = eb.text()
		}
		return metrics.OutcomeHTTPError, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.status)
	}

	if len(bytes.TrimSpace(resp.body)) > 0 {
		if err := json.Unmarshal(resp.body, &res.Value); err != nil {
			return metrics.OutcomeDecode, fmt.Errorf("failed to decode response: %w", err)
		}
		var eb errorBody
		if json.Unmarshal(resp.body, &eb) == nil {
			res.Message = eb.text()
		}
	}

	if accept != nil && !accept(&res.Value) {
		return metrics.OutcomeRejected, ErrIncompleteResponse
	}
	return metrics.OutcomeSuccess, nil
}

// Sentinel errors used for logging; they never leave the package
var (
	ErrUnexpectedStatus   = errors.New("unexpected backend status")
	ErrIncompleteResponse = errors.New("backend response missing required field")
)

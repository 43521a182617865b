package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/peersphere/peersphere/internal/common"
	"github.com/peersphere/peersphere/internal/logging"
)

// DefaultBaseURL is the backend used when nothing is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// RequestOptions describes one call to Request. An empty Method means GET.
// Header values replace the defaults set by the client.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   any
}

// RESTClient talks to the PeerSphere REST API. It is stateless apart from
// its base URL.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

type Option func(*RESTClient)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RESTClient) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) { c.log = l }
}

func NewRESTClient(baseURL string, opts ...Option) *RESTClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

// Request performs an HTTP request against baseURL+endpoint and returns the
// resolved response body.
//
// A structured opts.Body is JSON-encoded; requests with a body default to
// Content-Type application/json. Failure statuses come back as *APIError,
// transport failures wrap ErrUnavailable. Every failure is logged before
// it is returned.
func (c *RESTClient) Request(ctx context.Context, endpoint string, opts RequestOptions) (Body, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "method", method, "endpoint", endpoint)

	fail := func(err error) (Body, error) {
		log.Error(ctx, "API request failed", "error", err)
		return nil, err
	}

	payload, err := encodeBody(opts.Body)
	if err != nil {
		return fail(fmt.Errorf("encode request body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return fail(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range opts.Header {
		req.Header[http.CanonicalHeaderKey(k)] = vs
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fail(err)
		}
		return fail(fmt.Errorf("%w: %w", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	body, ok, err := readBody(resp.Header.Get("Content-Type"), resp.Body)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrMalformedResponse, err))
	}

	failed := resp.StatusCode < 200 || resp.StatusCode > 299

	if !ok {
		if failed {
			return fail(&APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode), Body: body.String()})
		}
		return fail(fmt.Errorf("%w: invalid JSON from %s %s", ErrMalformedResponse, method, endpoint))
	}

	if failed {
		return fail(newAPIError(resp.StatusCode, body))
	}

	log.Debug(ctx, "API request completed", "status", resp.StatusCode)
	return body, nil
}

// call runs Request and, when out is non-nil, decodes a JSON body into it.
func (c *RESTClient) call(ctx context.Context, method, endpoint string, in, out any) error {
	body, err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: in})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	jb, ok := body.(JSONBody)
	if !ok {
		return fmt.Errorf("%w: expected JSON from %s %s", ErrMalformedResponse, method, endpoint)
	}
	if err := jb.Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// IsAPIError reports whether err carries an *APIError with the given status.
func IsAPIError(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peersphere/peersphere/internal/common"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL + "/api/")
}

func respond(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewRESTClient_BaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewRESTClient("").BaseURL())
	assert.Equal(t, "http://h/api", NewRESTClient("http://h/api/").BaseURL())
}

func TestRequest_JSONSuccess(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "application/json; charset=utf-8", `{"userId":1,"name":"Ana"}`))

	body, err := c.Request(context.Background(), "/auth/login", RequestOptions{Method: http.MethodPost, Body: map[string]string{"email": "a@b.c"}})
	require.NoError(t, err)

	jb, ok := body.(JSONBody)
	require.True(t, ok, "expected JSONBody, got %T", body)

	var got map[string]any
	require.NoError(t, jb.Decode(&got))
	assert.Equal(t, "Ana", got["name"])
}

func TestRequest_TextSuccess(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "text/plain", "OK"))

	body, err := c.Request(context.Background(), "/health", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, TextBody{Text: "OK"}, body)
}

func TestRequest_EmptyJSONIsNull(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "application/json", ""))

	body, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "null", body.String())
}

func TestRequest_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMsg     string
	}{
		{
			name:        "server error field",
			status:      http.StatusUnauthorized,
			contentType: "application/json",
			body:        `{"error":"Invalid credentials"}`,
			wantMsg:     "Invalid credentials",
		},
		{
			name:        "json without error field",
			status:      http.StatusServiceUnavailable,
			contentType: "application/json",
			body:        `{"status":"down"}`,
			wantMsg:     "HTTP 503",
		},
		{
			name:        "non-string error field",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"error":{"code":7}}`,
			wantMsg:     "HTTP 400",
		},
		{
			name:        "text body",
			status:      http.StatusInternalServerError,
			contentType: "text/plain",
			body:        "Internal Server Error",
			wantMsg:     "HTTP 500: Internal Server Error",
		},
		{
			name:        "problem json is text",
			status:      http.StatusBadRequest,
			contentType: "application/problem+json",
			body:        `{"error":"bad"}`,
			wantMsg:     `HTTP 400: {"error":"bad"}`,
		},
		{
			name:        "malformed json on failure",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        "<html>bad gateway</html>",
			wantMsg:     "HTTP 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, respond(tt.status, tt.contentType, tt.body))

			_, err := c.Request(context.Background(), "/x", RequestOptions{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
			assert.True(t, IsAPIError(err, tt.status))
		})
	}
}

func TestRequest_MalformedJSONOnSuccess(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "application/json", "{not json"))

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.False(t, IsAPIError(err, http.StatusOK))
}

func TestRequest_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewRESTClient(url)
	_, err := c.Request(context.Background(), "/health", RequestOptions{})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRequest_CancelledContext(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "text/plain", "OK"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Request(ctx, "/health", RequestOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestRequest_Headers(t *testing.T) {
	var got http.Header
	var gotBody string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusNoContent)
	})

	_, err := c.Request(context.Background(), "/x", RequestOptions{Method: http.MethodPost, Body: map[string]int{"a": 1}})
	require.NoError(t, err)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.JSONEq(t, `{"a":1}`, gotBody)

	_, err = uuid.Parse(got.Get(common.RequestIDHeaderName))
	assert.NoError(t, err, "request id must be a uuid")
}

func TestRequest_CallerHeaderWins(t *testing.T) {
	var got http.Header
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	})

	h := http.Header{}
	h.Set("Content-Type", "text/plain")
	_, err := c.Request(context.Background(), "/x", RequestOptions{Method: http.MethodPost, Header: h, Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got.Get("Content-Type"))
}

func TestRequest_NoBodyNoContentType(t *testing.T) {
	var got http.Header
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.Request(context.Background(), "/x", RequestOptions{})
	require.NoError(t, err)
	assert.Empty(t, got.Get("Content-Type"))
}

func TestRequest_StringBodyVerbatim(t *testing.T) {
	var gotBody string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.Request(context.Background(), "/x", RequestOptions{Method: http.MethodPut, Body: `{"raw":true}`})
	require.NoError(t, err)
	assert.Equal(t, `{"raw":true}`, gotBody)
}

func TestCall_TextWhereJSONExpected(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "text/plain", "hello"))

	var out map[string]any
	err := c.call(context.Background(), http.MethodGet, "/x", nil, &out)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCall_DecodeMismatch(t *testing.T) {
	c := newTestServer(t, respond(http.StatusOK, "application/json", `"a string"`))

	var out struct{ ID int64 }
	err := c.call(context.Background(), http.MethodGet, "/x", nil, &out)
	require.ErrorIs(t, err, ErrMalformedResponse)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

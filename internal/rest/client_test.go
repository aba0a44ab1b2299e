package rest

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/orderclient/internal/endpoint"
	"github.com/rookgm/orderclient/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

type captured struct {
	method      string
	path        string
	rawQuery    string
	contentType string
	requestID   string
	body        string
}

func newBackend(t *testing.T, got *captured) *httptest.Server {
	t.Helper()

	record := func(r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = captured{
			method:      r.Method,
			path:        r.URL.EscapedPath(),
			rawQuery:    r.URL.RawQuery,
			contentType: r.Header.Get("Content-Type"),
			requestID:   r.Header.Get(HeaderRequestID),
			body:        string(body),
		}
	}

	router := chi.NewRouter()
	router.Get("/api/things", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.Header().Set("X-Total-Count", "1")
		w.Write([]byte(`[{"id":"1"}]`))
	})
	router.Post("/api/things", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"1"}`))
	})
	router.Delete("/api/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if chi.URLParam(r, "id") == "missing" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	resolver, err := endpoint.NewStatic(serverURL)
	require.NoError(t, err)
	c, err := NewClient(resolver, "api/things", time.Second, nil)
	require.NoError(t, err)
	return c
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name            string
		ctx             context.Context
		req             Request
		wantMethod      string
		wantPath        string
		wantQuery       string
		wantContentType string
		wantBody        string
		wantStatusCode  int
		wantRespBody    string
		wantRequestID   string
	}{
		{
			name: "get_with_query",
			ctx:  context.Background(),
			req: Request{
				Method: http.MethodGet,
				Query:  url.Values{"sort": {"id,asc"}, "page": {"1"}},
			},
			wantMethod:     http.MethodGet,
			wantPath:       "/api/things",
			wantQuery:      "page=1&sort=id%2Casc",
			wantStatusCode: http.StatusOK,
			wantRespBody:   `[{"id":"1"}]`,
		},
		{
			name: "post_json_body_with_request_id",
			ctx:  WithRequestID(context.Background(), "req-1"),
			req: Request{
				Method: http.MethodPost,
				Body:   map[string]string{"status": "NEW"},
			},
			wantMethod:      http.MethodPost,
			wantPath:        "/api/things",
			wantContentType: ContentTypeJSON,
			wantBody:        `{"status":"NEW"}`,
			wantStatusCode:  http.StatusCreated,
			wantRespBody:    `{"id":"1"}`,
			wantRequestID:   "req-1",
		},
		{
			name: "delete_by_id",
			ctx:  context.Background(),
			req: Request{
				Method: http.MethodDelete,
				ID:     "42",
			},
			wantMethod:     http.MethodDelete,
			wantPath:       "/api/things/42",
			wantStatusCode: http.StatusNoContent,
			wantRespBody:   "",
		},
		{
			name: "id_is_one_escaped_segment",
			ctx:  context.Background(),
			req: Request{
				Method: http.MethodDelete,
				ID:     "a/b c",
			},
			wantMethod:     http.MethodDelete,
			wantPath:       "/api/things/a%2Fb%20c",
			wantStatusCode: http.StatusNoContent,
			wantRespBody:   "",
		},
		{
			name: "dots_inside_id_are_kept",
			ctx:  context.Background(),
			req: Request{
				Method: http.MethodDelete,
				ID:     "v1..2",
			},
			wantMethod:     http.MethodDelete,
			wantPath:       "/api/things/v1..2",
			wantStatusCode: http.StatusNoContent,
			wantRespBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got captured
			srv := newBackend(t, &got)
			c := newTestClient(t, srv.URL)

			resp, err := c.Do(tt.ctx, tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, tt.wantPath, got.path)
			assert.Equal(t, tt.wantQuery, got.rawQuery)
			assert.Equal(t, tt.wantContentType, got.contentType)
			assert.Equal(t, tt.wantBody, got.body)
			assert.NotEmpty(t, got.requestID)
			if tt.wantRequestID != "" {
				assert.Equal(t, tt.wantRequestID, got.requestID)
			}

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
			assert.Equal(t, tt.wantRespBody, string(resp.Body))
		})
	}
}

func TestClient_Do_StatusError(t *testing.T) {
	var got captured
	srv := newBackend(t, &got)
	c := newTestClient(t, srv.URL)

	resp, err := c.Do(context.Background(), Request{Method: http.MethodDelete, ID: "missing"})
	require.Error(t, err)
	assert.Nil(t, resp)

	var statusErr models.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, http.MethodDelete, statusErr.Method)
	assert.Equal(t, srv.URL+"/api/things/missing", statusErr.URL)
}

func TestClient_Do_DotSegmentID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "current_dir", id: "."},
		{name: "parent_dir", id: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got captured
			srv := newBackend(t, &got)
			c := newTestClient(t, srv.URL)

			resp, err := c.Do(context.Background(), Request{Method: http.MethodDelete, ID: tt.id})
			assert.ErrorIs(t, err, models.ErrInvalidID)
			assert.Nil(t, resp)
			assert.Empty(t, got.method)
		})
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet})
	require.Error(t, err)

	var statusErr models.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr bool
	}{
		{
			name: "array",
			body: `["a","b"]`,
			want: []string{"a", "b"},
		},
		{
			name: "null_body",
			body: `null`,
			want: nil,
		},
		{
			name: "empty_body",
			body: ``,
			want: nil,
		},
		{
			name:    "broken_body",
			body:    `[`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &models.Response[[]byte]{
				StatusCode: http.StatusOK,
				Header:     http.Header{"X-Total-Count": {"2"}},
				Body:       []byte(tt.body),
			}

			got, err := Decode[[]string](raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Body)
			assert.Equal(t, http.StatusOK, got.StatusCode)
			assert.Equal(t, "2", got.Header.Get("X-Total-Count"))
		})
	}
}

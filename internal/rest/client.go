package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/rookgm/orderclient/internal/endpoint"
	"github.com/rookgm/orderclient/internal/logger"
	"github.com/rookgm/orderclient/internal/metrics"
	"github.com/rookgm/orderclient/internal/models"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	HeaderRequestID = "X-Request-ID"

	ContentTypeJSON       = "application/json"
	ContentTypeMergePatch = "application/merge-patch+json"
)

type contextKey int

const (
	contextKeyRequestID contextKey = iota
)

// WithRequestID returns context that makes outbound requests carry requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Client performs JSON requests against one resource
type Client struct {
	client      *http.Client
	resourceURL string
}

// NewClient creates new Client for resource path resolved by resolver.
// Requests are instrumented by m when it is not nil.
func NewClient(resolver endpoint.Resolver, resource string, timeout time.Duration, m *metrics.ClientMetrics) (*Client, error) {
	resourceURL, err := resolver.Resolve(resource)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: &http.Client{
			Timeout:   timeout,
			Transport: m.InstrumentTransport(resource, http.DefaultTransport),
		},
		resourceURL: strings.TrimSuffix(resourceURL, "/"),
	}, nil
}

// Request describes one call against the resource
type Request struct {
	Method      string
	ID          string
	Query       url.Values
	Body        any
	ContentType string
}

// Do sends request and returns raw response envelope.
// Transport errors are returned as is, non-2xx responses as models.StatusError.
func (c *Client) Do(ctx context.Context, r Request) (*models.Response[[]byte], error) {
	u, err := c.requestURL(r.ID)
	if err != nil {
		return nil, err
	}
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}

	requestID := requestIDFromContext(ctx)
	req.Header.Set("Accept", ContentTypeJSON)
	req.Header.Set(HeaderRequestID, requestID)
	if body != nil {
		contentType := r.ContentType
		if contentType == "" {
			contentType = ContentTypeJSON
		}
		req.Header.Set("Content-Type", contentType)
	}

	logger.Log.Debug("sending request",
		zap.String("method", r.Method),
		zap.String("url", u),
		zap.String("request_id", requestID))

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("url", u),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Error("request returned error",
			zap.String("method", r.Method),
			zap.String("url", u),
			zap.String("request_id", requestID),
			zap.Int("status_code", resp.StatusCode))
		return nil, models.NewStatusError(r.Method, u, resp.StatusCode, data)
	}

	return &models.Response[[]byte]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// requestURL appends escaped id to the resource url as one segment.
// The path is not cleaned, dot segments are rejected.
func (c *Client) requestURL(id string) (string, error) {
	if id == "" {
		return c.resourceURL, nil
	}
	if id == "." || id == ".." {
		return "", models.ErrInvalidID
	}
	return c.resourceURL + "/" + url.PathEscape(id), nil
}

// Decode decodes JSON body of raw response into new envelope
func Decode[T any](raw *models.Response[[]byte]) (*models.Response[T], error) {
	var body T
	if len(bytes.TrimSpace(raw.Body)) > 0 {
		if err := json.Unmarshal(raw.Body, &body); err != nil {
			return nil, err
		}
	}

	return &models.Response[T]{
		StatusCode: raw.StatusCode,
		Header:     raw.Header,
		Body:       body,
	}, nil
}

// Package backend is the REST client for the STREET API. Every call takes the
// signed-in admin's access token explicitly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"streetadmin/apperr"
	"streetadmin/models"
)

// DefaultMaxBody caps how much of a response body is read.
const DefaultMaxBody int64 = 10 << 20

// Client talks to one STREET API base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     logrus.FieldLogger
	MaxBody int64
}

// New returns a client with the given request timeout.
func New(baseURL string, timeout time.Duration, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Log:     log,
		MaxBody: DefaultMaxBody,
	}
}

// do sends one request and returns the raw body of a 2xx response.
// Failures are returned as apperr values.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body any) ([]byte, error) {
	start := time.Now()
	raw, err := c.roundTrip(ctx, method, path, query, token, body)

	entry := c.Log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("backend request failed")
		return nil, toAppError(err)
	}
	entry.Debug("backend request")
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, token string, body any) ([]byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	limit := c.MaxBody
	if limit <= 0 {
		limit = DefaultMaxBody
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("response body exceeds %d bytes", limit)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: parseErrorMessage(raw)}
	}
	return raw, nil
}

// getOne fetches a single resource, enveloped or bare.
func getOne[T any](ctx context.Context, c *Client, path, token string) (T, error) {
	var out T
	raw, err := c.do(ctx, http.MethodGet, path, nil, token, nil)
	if err != nil {
		return out, err
	}
	return out, decodeOne(raw, &out)
}

// send issues a write and decodes the returned resource, if any.
func send[T any](ctx context.Context, c *Client, method, path, token string, body any) (T, error) {
	var out T
	raw, err := c.do(ctx, method, path, nil, token, body)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	return out, decodeOne(raw, &out)
}

// getPage fetches one page of a list endpoint.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values, token string) (models.Page[T], error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, token, nil)
	if err != nil {
		return models.Page[T]{}, err
	}
	page, err := decodePage[T](raw)
	if err != nil {
		return page, apperr.UnavailableErr("The STREET service sent an unexpected response.", err)
	}
	if page.Meta.Page == 0 {
		page.Meta.Page = intParam(query, "page")
	}
	if page.Meta.Limit == 0 {
		page.Meta.Limit = intParam(query, "limit")
	}
	return page, nil
}

func decodeOne(raw []byte, out any) error {
	if err := json.Unmarshal(unwrapData(raw), out); err != nil {
		return apperr.UnavailableErr("The STREET service sent an unexpected response.",
			fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func decodePage[T any](raw []byte) (models.Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []T
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return models.Page[T]{}, fmt.Errorf("failed to decode list: %w", err)
		}
		return models.Page[T]{Data: rows, Meta: models.Meta{Total: len(rows)}}, nil
	}

	var env listEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return models.Page[T]{}, fmt.Errorf("failed to decode list: %w", err)
	}
	page := models.Page[T]{Data: env.Data}
	switch {
	case env.Meta != nil:
		page.Meta = models.Meta(*env.Meta)
	default:
		page.Meta = models.Meta{
			Total:      deref(env.Total, len(env.Data)),
			Page:       deref(env.Page, 0),
			Limit:      deref(env.Limit, 0),
			TotalPages: deref(env.TotalPages, 0),
		}
	}
	return page, nil
}

func deref(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func intParam(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return n
}

// unwrapData returns the "data" member of a {"data": ...} envelope, or the
// body itself when it is not enveloped.
func unwrapData(raw []byte) []byte {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if data, ok := env["data"]; ok {
		return data
	}
	return raw
}

// listEnvelope covers {data, meta}, {data, total, page, limit} and a bare
// array.
type listEnvelope[T any] struct {
	Data       []T           `json:"data"`
	Meta       *pageMetaWire `json:"meta"`
	Total      *int          `json:"total"`
	Page       *int          `json:"page"`
	Limit      *int          `json:"limit"`
	TotalPages *int          `json:"totalPages"`
}

type pageMetaWire struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gateway is the HTTP client for the remote content API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/olegiv/merwah-go/internal/cache"
	"github.com/olegiv/merwah-go/internal/model"
)

// FalconsPath is the falcon collection endpoint.
const FalconsPath = "/api/falcons"

const (
	falconListCacheKey = "gateway:falcons:list"
	maxResponseBytes   = 10 << 20
)

// Client talks to the remote content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the timeout of the default HTTP client. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCache caches the falcon list for ttl. Creating a falcon invalidates it.
func WithCache(cc cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cc
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListFalcons fetches every falcon.
func (c *Client) ListFalcons(ctx context.Context) ([]model.Falcon, error) {
	const op = "list falcons"

	if body, ok := c.cached(ctx); ok {
		var falcons []model.Falcon
		if err := json.Unmarshal(body, &falcons); err == nil {
			return falcons, nil
		}
		c.logger.Warn("discarding unreadable cached falcon list")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+FalconsPath, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	var falcons []model.Falcon
	if err := json.Unmarshal(body, &falcons); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	if falcons == nil {
		falcons = []model.Falcon{}
	}

	c.store(ctx, body)
	return falcons, nil
}

// CreateFalcon posts a new falcon with its image as a multipart form:
// "data" carries the JSON fields and "image" the file.
func (c *Client) CreateFalcon(ctx context.Context, in model.FalconInput, image *model.Upload) (model.Falcon, error) {
	const op = "create falcon"

	if image == nil {
		return model.Falcon{}, &NetworkError{Op: op, Err: errors.New("image is required")}
	}

	payload, contentType, err := encodeFalcon(in, image)
	if err != nil {
		return model.Falcon{}, &NetworkError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+FalconsPath, payload)
	if err != nil {
		return model.Falcon{}, &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return model.Falcon{}, err
	}

	var falcon model.Falcon
	if err := json.Unmarshal(body, &falcon); err != nil {
		return model.Falcon{}, &DecodeError{Op: op, Err: err}
	}

	c.invalidate(ctx)
	c.logger.Info("falcon created", "id", falcon.ID, "name", falcon.NameAr)
	return falcon, nil
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("reading body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SubmissionError{Op: op, StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}
	return body, nil
}

func encodeFalcon(in model.FalconInput, image *model.Upload) (io.Reader, string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("encoding data: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("data", string(data)); err != nil {
		return nil, "", fmt.Errorf("writing data field: %w", err)
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(image.Filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating image part: %w", err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, "", fmt.Errorf("writing image part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (c *Client) cached(ctx context.Context) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, err := c.cache.Get(ctx, falconListCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn("falcon cache read failed", "error", err)
		}
		return nil, false
	}
	return body, true
}

func (c *Client) store(ctx context.Context, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, falconListCacheKey, body, c.cacheTTL); err != nil {
		c.logger.Warn("falcon cache write failed", "error", err)
	}
}

func (c *Client) invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, falconListCacheKey); err != nil {
		c.logger.Warn("falcon cache invalidation failed", "error", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

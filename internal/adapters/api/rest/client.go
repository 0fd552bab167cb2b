package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/uuid"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

const (
	maxResponseBytes   = 1 << 20
	defaultTimeout     = 15 * time.Second
	defaultReadRetries = 3
	defaultRetryDelay  = 250 * time.Millisecond
	requestIDHeader    = "X-Request-Id"
)

type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	// Tokens supplies the bearer token stored under ports.SessionTokenKey.
	Tokens ports.SecretStore
	Logger *slog.Logger

	ReadAttempts uint
	RetryDelay   time.Duration
}

// Client is the REST implementation of ports.API.
type Client struct {
	baseURL      *url.URL
	userAgent    string
	http         *http.Client
	tokens       ports.SecretStore
	logger       *slog.Logger
	readAttempts uint
	retryDelay   time.Duration
}

var _ ports.API = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must be http or https", cfg.BaseURL)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	attempts := cfg.ReadAttempts
	if attempts == 0 {
		attempts = defaultReadRetries
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "chirp"
	}

	return &Client{
		baseURL:      base,
		userAgent:    userAgent,
		http:         httpClient,
		tokens:       cfg.Tokens,
		logger:       logger,
		readAttempts: attempts,
		retryDelay:   delay,
	}, nil
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	// idempotent requests are retried on transport errors and 5xx responses.
	idempotent bool
}

func jsonRequest(method, path string, payload any) (request, error) {
	req := request{method: method, path: path}
	if payload == nil {
		return req, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode %s %s body: %w", method, path, err)
	}
	req.body = body
	req.contentType = "application/json"

	return req, nil
}

func pageQuery(page domain.PageRequest) url.Values {
	query := url.Values{}
	query.Set("page", fmt.Sprint(page.Page))
	query.Set("per_page", fmt.Sprint(page.PerPage))
	return query
}

// do sends req and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if !req.idempotent {
		return c.once(ctx, req, out)
	}

	var lastErr error
	err := retry.Do(
		func() error {
			lastErr = c.once(ctx, req, out)
			if lastErr != nil && !isTransient(lastErr) {
				return retry.Unrecoverable(lastErr)
			}
			return lastErr
		},
		retry.Attempts(c.readAttempts),
		retry.Delay(c.retryDelay),
		retry.MaxDelay(4*c.retryDelay),
		retry.MaxJitter(c.retryDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying request", "method", req.method, "path", req.path, "attempt", n+1, "error", err)
		}),
	)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if lastErr != nil {
		return lastErr
	}

	return err
}

func (c *Client) once(ctx context.Context, req request, out any) error {
	endpoint := c.endpoint(req.path, req.query)

	var body io.Reader = http.NoBody
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeader, requestID)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token := c.token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed", "request_id", requestID, "method", req.method, "path", req.path, "error", err)
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", req.method, req.path, err)
	}

	c.logger.Debug("request completed",
		"request_id", requestID,
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.method, req.path, err)
	}

	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := *c.baseURL
	target.Path = c.baseURL.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	return target.String()
}

func (c *Client) token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}

	token, err := c.tokens.Get(ctx, ports.SessionTokenKey)
	if err != nil {
		if !errors.Is(err, ports.ErrSecretNotFound) {
			c.logger.Debug("session token unavailable", "error", err)
		}
		return ""
	}

	return strings.TrimSpace(token)
}

func apiError(status int, body []byte) error {
	var payload errorJSON
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Error
		}
	}

	return &domain.APIError{Status: status, Message: strings.TrimSpace(message)}
}

func isTransient(err error) bool {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError || apiErr.Status == http.StatusTooManyRequests
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr)
}

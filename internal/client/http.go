package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Rorical/RoriSense/internal/models"
)

const defaultUserAgent = "rorisense"

// HTTPClient posts texts to a /predict style endpoint.
type HTTPClient struct {
	endpoint  string
	healthURL string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithHealthURL overrides the URL derived from the endpoint.
func WithHealthURL(u string) Option {
	return func(c *HTTPClient) { c.healthURL = u }
}

func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.userAgent = ua }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient builds a client for endpoint. No client-side timeout is set;
// the caller's context is the only bound on a request.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoint:  endpoint,
		userAgent: defaultUserAgent,
		http:      &http.Client{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.healthURL == "" {
		if u, err := DeriveHealthURL(endpoint); err == nil {
			c.healthURL = u
		}
	}
	return c
}

func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

func (c *HTTPClient) HealthURL() string {
	return c.healthURL
}

// Analyze sends req and decodes the classification.
func (c *HTTPClient) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	start := time.Now()
	log := c.logger.With(slog.String("request_id", req.ID), slog.String("endpoint", c.endpoint))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &RequestError{Message: RetryMessage, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Message: RetryMessage, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.ID != "" {
		httpReq.Header.Set("X-Request-ID", req.ID)
	}

	log.Debug("[HTTPClient] Sending analysis request", slog.Int("text_length", len(req.Text)))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error("[HTTPClient] Request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, &RequestError{Message: RetryMessage, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("[HTTPClient] Failed to read response", slog.String("error", err.Error()))
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: RetryMessage, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorField(respBody)
		if msg == "" {
			msg = FallbackMessage
		}
		log.Warn("[HTTPClient] Endpoint returned an error",
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
			getPreview(respBody))
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msg, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Error("[HTTPClient] Failed to unmarshal response",
			slog.String("error", err.Error()),
			getPreview(respBody))
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: RetryMessage, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if result.Sentiment == "" {
		log.Error("[HTTPClient] Response carries no sentiment", getPreview(respBody))
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: RetryMessage, Err: errors.New("response carries no sentiment")}
	}

	log.Info("[HTTPClient] Analysis request successful",
		slog.String("sentiment", result.Sentiment),
		slog.Duration("elapsed", time.Since(start)))
	return &result, nil
}

// Health queries the endpoint's health route.
func (c *HTTPClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	if c.healthURL == "" {
		return nil, fmt.Errorf("no health url for endpoint %q", c.endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	var status models.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &status, nil
}

// DeriveHealthURL swaps the endpoint's path for /health.
func DeriveHealthURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q is not an absolute url", endpoint)
	}
	u.Path = "/health"
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// errorField extracts a usable "error" value from a JSON body.
func errorField(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	field := gjson.GetBytes(body, "error")
	switch field.Type {
	case gjson.Null, gjson.False:
		return ""
	}
	return field.String()
}

const previewLength = 50

// getPreview cuts body to previewLength runes for logging.
func getPreview(body []byte) slog.Attr {
	raw := []rune(string(body))
	if len(raw) > previewLength {
		raw = raw[:previewLength]
	}
	return slog.String("raw_response", string(raw))
}

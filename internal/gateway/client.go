// File: internal/gateway/client.go

// Package gateway is the client for the upstream commerce core. It owns the
// legacy envelope contract and the response shape adapter: resource-named
// payload keys and field aliases are resolved here so the rest of the service
// only ever sees normalized types.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"huglu_mobile_backend/internal/config"

	"go.uber.org/zap"
)

// ErrUnavailable marks transport-level failures (connection refused, timeout,
// undecodable body). Sources with a synthetic fallback substitute canned data
// on this class of error.
var ErrUnavailable = errors.New("commerce gateway unavailable")

const genericGatewayMessage = "The operation could not be completed. Please try again."

// UpstreamError is a failure the commerce core reported itself, either as a
// non-2xx status or a success=false envelope.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

// UpstreamMessage extracts a user-presentable message from a gateway error
// using the fallback chain: upstream message, then the generic fallback.
func UpstreamMessage(err error) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}
	return genericGatewayMessage
}

// Client talks to the commerce core over its REST envelope API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a gateway client from the application config.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GatewayBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.GatewayTimeout,
		},
		logger: logger.Named("gateway"),
	}
}

// do executes a request and decodes the response envelope. Any ctx passed in
// is honored, so responses arriving after the caller has gone away are
// discarded rather than acted on.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Gateway request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var envelope Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := http.StatusText(resp.StatusCode)
		if decodeErr == nil && envelope.Message != "" {
			message = envelope.Message
		}
		if message == "" {
			message = genericGatewayMessage
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		c.logger.Warn("Gateway returned an undecodable body",
			zap.String("method", method), zap.String("path", path), zap.Error(decodeErr))
		return nil, fmt.Errorf("%w: invalid envelope: %v", ErrUnavailable, decodeErr)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = genericGatewayMessage
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	return &envelope, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil)
}

func userQuery(userID string) url.Values {
	return url.Values{"userId": []string{userID}}
}

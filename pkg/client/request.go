package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// do dispatches one authenticated API call and decodes the response into
// out (skipped when out is nil). It returns the response headers so callers
// can pick up values like the kuverta-objkey key of a created resource.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) (http.Header, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: operation, URL: path, Err: err}
		}
	}

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if state, ok := c.currentToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+state.AccessToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return nil, &TransportError{Op: operation, URL: target, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		requestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return nil, &TransportError{Op: operation, URL: target, Err: err}
	}

	requestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("request",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, apiErrorFrom(resp.StatusCode, path, respBytes)
	}

	if out != nil && len(respBytes) > 0 {
		if err := decodeScrubbed(respBytes, out); err != nil {
			return resp.Header, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}

// apiErrorFrom builds an *APIError from an error response. The platform's
// error payloads carry a numeric code plus messages; when the messages are
// absent the published code table fills them in.
func apiErrorFrom(status int, path string, body []byte) *APIError {
	apiErr := &APIError{Status: status, Path: path}

	var payload struct {
		Code        json.Number `json:"code"`
		Message     string      `json:"message"`
		LongMessage string      `json:"long_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if n, err := payload.Code.Int64(); err == nil {
			apiErr.Code = int(n)
		}
		apiErr.Message = payload.Message
		apiErr.LongMessage = payload.LongMessage
	}

	if entry, ok := catalogLookup(apiErr.Code); ok {
		if apiErr.Message == "" {
			apiErr.Message = entry.message
		}
		if apiErr.LongMessage == "" {
			apiErr.LongMessage = entry.longMessage
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// decodeScrubbed unmarshals data into out after dropping the platform's
// "no value" sentinels. Upstream encodes absent fields as the string "[]"
// or as an empty array, both of which break typed decoding.
func decodeScrubbed(data []byte, out any) error {
	var loose any
	if err := json.Unmarshal(data, &loose); err != nil {
		return err
	}
	cleaned, err := json.Marshal(scrub(loose))
	if err != nil {
		return err
	}
	return json.Unmarshal(cleaned, out)
}

func scrub(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isEmptySentinel(val) {
				continue
			}
			out[k] = scrub(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, scrub(val))
		}
		return out
	}
	return v
}

func isEmptySentinel(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "[]"
	case []any:
		return len(t) == 0
	}
	return false
}

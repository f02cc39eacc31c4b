package client

import (
	"fmt"
	"strings"
)

// ConfigError reports credentials or settings missing from the Config.
// Raised before any network activity.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "client: configuration incomplete: missing " + strings.Join(e.Missing, ", ")
}

// AuthError reports a rejected authentication attempt. The previously cached
// token state, if any, is left untouched.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("client: authentication rejected with HTTP %d: %s", e.Status, e.Body)
}

// ScopeError reports an operation whose required scope is not covered by the
// granted token.
type ScopeError struct {
	Required string
	Granted  []string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("client: scope %q not granted (have %s)", e.Required, strings.Join(e.Granted, " "))
}

// TransportError wraps a network-level failure: connection refused, timeout,
// DNS. The request never produced an HTTP response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("client: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the platform. Code is the platform's
// numeric error code when the response carried one, otherwise zero; Message
// and LongMessage fall back to the published code table.
type APIError struct {
	Status      int
	Code        int
	Message     string
	LongMessage string
	Path        string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("client: %s: HTTP %d code %d: %s", e.Path, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("client: %s: HTTP %d: %s", e.Path, e.Status, e.Message)
}

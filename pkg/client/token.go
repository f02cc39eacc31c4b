package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Storage keys for the persisted token state.
const (
	keyAccessToken = "access_token"
	keyTokenType   = "token_type"
	keyScope       = "scope"
	keyExpiresAt   = "expires_at"
	keyBaseURL     = "base_url"
)

var authKeys = []string{keyAccessToken, keyTokenType, keyScope, keyExpiresAt, keyBaseURL}

// TokenState is the cached outcome of an authentication, as persisted in the
// token store. The base URL pins the token to the endpoint that issued it; a
// token from one environment is never replayed against another.
type TokenState struct {
	oauth2.Token
	Scopes  []string
	BaseURL string
}

// validFor reports whether the state can authenticate calls to baseURL.
func (s *TokenState) validFor(baseURL string) bool {
	return s.BaseURL == baseURL && s.Token.Valid()
}

func (s *TokenState) toMap() map[string]string {
	return map[string]string{
		keyAccessToken: s.AccessToken,
		keyTokenType:   s.TokenType,
		keyScope:       strings.Join(s.Scopes, " "),
		keyExpiresAt:   s.Expiry.UTC().Format(time.RFC3339),
		keyBaseURL:     s.BaseURL,
	}
}

// tokenStateFromMap rebuilds a TokenState from stored values. A missing
// access token or an unparseable expiry yields (nil, false), which callers
// treat as "no cached token".
func tokenStateFromMap(m map[string]string) (*TokenState, bool) {
	if m[keyAccessToken] == "" {
		return nil, false
	}
	expiry, err := time.Parse(time.RFC3339, m[keyExpiresAt])
	if err != nil {
		return nil, false
	}
	s := &TokenState{
		Token: oauth2.Token{
			AccessToken: m[keyAccessToken],
			TokenType:   m[keyTokenType],
			Expiry:      expiry,
		},
		BaseURL: m[keyBaseURL],
	}
	if m[keyScope] != "" {
		s.Scopes = strings.Fields(m[keyScope])
	}
	return s, true
}

// EnsureAuthenticated makes sure a valid token is cached, authenticating if
// the cache is empty, expired, or issued against a different base URL. With
// a valid cached token it performs no network calls.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	return c.ensureAuthenticated(ctx, false)
}

// ForceAuthenticate discards any cached token and authenticates again.
func (c *Client) ForceAuthenticate(ctx context.Context) error {
	return c.ensureAuthenticated(ctx, true)
}

func (c *Client) ensureAuthenticated(ctx context.Context, force bool) error {
	if err := c.cfg.valid(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if force {
		if err := c.store.Delete(ctx, c.cfg.StorageName, authKeys...); err != nil {
			return fmt.Errorf("clear cached token: %w", err)
		}
	} else {
		stored, err := c.store.Get(ctx, c.cfg.StorageName)
		if err != nil {
			return fmt.Errorf("read cached token: %w", err)
		}
		if state, ok := tokenStateFromMap(stored); ok && state.validFor(c.cfg.BaseURL) {
			return nil
		}
	}

	state, err := c.authenticate(ctx)
	if err != nil {
		tokenRefreshTotal.WithLabelValues("failure").Inc()
		return err
	}
	if err := c.store.Merge(ctx, c.cfg.StorageName, state.toMap()); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	tokenRefreshTotal.WithLabelValues("success").Inc()
	c.logger.Info("authenticated",
		zap.String("base_url", c.cfg.BaseURL),
		zap.Time("expires_at", state.Expiry),
		zap.Int("scopes", len(state.Scopes)),
	)
	return nil
}

// authenticate runs the client-credentials flow against /v2/auth. It never
// touches the store; the caller persists the result, so a failed attempt
// leaves any previously cached state as it was.
func (c *Client) authenticate(ctx context.Context) (*TokenState, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	endpoint := c.cfg.BaseURL + "/v2/auth"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "authenticate", URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, &TransportError{Op: "authenticate", URL: endpoint, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Scope       string `json:"scope"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &AuthError{Status: resp.StatusCode, Body: "undecodable token response"}
	}
	if payload.AccessToken == "" {
		return nil, &AuthError{Status: resp.StatusCode, Body: "token response without access_token"}
	}

	state := &TokenState{
		Token: oauth2.Token{
			AccessToken: payload.AccessToken,
			TokenType:   payload.TokenType,
			Expiry:      time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
		},
		BaseURL: c.cfg.BaseURL,
	}
	if payload.Scope != "" {
		state.Scopes = strings.Fields(payload.Scope)
	}
	return state, nil
}

// currentToken returns the cached token state, or (nil, false) when nothing
// usable is stored.
func (c *Client) currentToken(ctx context.Context) (*TokenState, bool) {
	stored, err := c.store.Get(ctx, c.cfg.StorageName)
	if err != nil {
		return nil, false
	}
	return tokenStateFromMap(stored)
}

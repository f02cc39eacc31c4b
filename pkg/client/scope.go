package client

import (
	"context"
	"strings"
)

// RequireScope authenticates if needed and verifies that the granted scopes
// cover the required one. Every operation calls this before dispatching.
func (c *Client) RequireScope(ctx context.Context, scope string) error {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return err
	}
	state, ok := c.currentToken(ctx)
	if !ok {
		return &ScopeError{Required: scope}
	}
	if !scopeGranted(state.Scopes, scope) {
		return &ScopeError{Required: scope, Granted: state.Scopes}
	}
	return nil
}

func scopeGranted(granted []string, required string) bool {
	for _, g := range granted {
		if scopeMatches(g, required) {
			return true
		}
	}
	return false
}

// scopeMatches reports whether one granted scope covers the required one.
// Scopes are method:segment.segment...; the method must match exactly, and
// within the segments a granted "*" matches exactly one required segment
// while "**" matches all remaining ones.
func scopeMatches(granted, required string) bool {
	gm, gp, ok := strings.Cut(granted, ":")
	if !ok {
		return false
	}
	rm, rp, ok := strings.Cut(required, ":")
	if !ok || gm != rm {
		return false
	}

	gs := strings.Split(gp, ".")
	rs := strings.Split(rp, ".")
	for i, seg := range gs {
		if seg == "**" {
			return true
		}
		if i >= len(rs) {
			return false
		}
		if seg != "*" && seg != rs[i] {
			return false
		}
	}
	return len(gs) == len(rs)
}

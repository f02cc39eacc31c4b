package client

import (
	"context"
	"net/http"
	"net/url"
)

// User is a recipient eligible for content from a tenant. SSN is only
// populated when the listing asked for it via include.
type User struct {
	Key string `json:"key"`
	SSN string `json:"ssn,omitempty"`
}

// ListUsers lists the users eligible for receiving content from the tenant.
// ssn narrows the listing to one recipient; include selects extra fields per
// user, e.g. "ssn".
func (c *Client) ListUsers(ctx context.Context, tenantKey, ssn, include string) ([]User, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v1.tenant."+tenantKey+".user"); err != nil {
		return nil, err
	}
	query := url.Values{}
	if ssn != "" {
		query.Set("ssn", ssn)
	}
	if include != "" {
		query.Set("include", include)
	}
	var users []User
	if _, err := c.do(ctx, "list_users", http.MethodGet, "/v1/tenant/"+tenantKey+"/user", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MatchUsers returns the subset of the given SSNs that can receive content
// from the tenant.
func (c *Client) MatchUsers(ctx context.Context, tenantKey string, ssns []string) ([]string, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v1.tenant."+tenantKey+".usermatch"); err != nil {
		return nil, err
	}
	body := map[string][]string{"ssns": ssns}
	var matched []string
	if _, err := c.do(ctx, "match_users", http.MethodPost, "/v1/tenant/"+tenantKey+"/usermatch", nil, body, &matched); err != nil {
		return nil, err
	}
	return matched, nil
}

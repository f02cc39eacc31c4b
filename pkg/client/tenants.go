package client

import (
	"context"
	"net/http"
	"net/url"
)

// Tenant is one sender organisation accessible to the client.
type Tenant struct {
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	CompanyIDs []CompanyID `json:"company_id,omitempty"`
}

// CompanyID ties a tenant to a legal company.
type CompanyID struct {
	Name  string `json:"name"`
	OrgNr string `json:"orgnr"`
}

// TenantRequest is the payload for CreateTenant.
type TenantRequest struct {
	Name       string      `json:"name"`
	CompanyIDs []CompanyID `json:"company_id,omitempty"`
}

// AccessRequest is the state of a tenant access request. Key identifies the
// request for later status polling.
type AccessRequest struct {
	Key    string `json:"key,omitempty"`
	Status string `json:"status,omitempty"`
}

// ListTenants returns the tenants accessible to the client, optionally
// filtered by organisation number.
func (c *Client) ListTenants(ctx context.Context, orgnr string) ([]Tenant, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v2.tenant"); err != nil {
		return nil, err
	}
	query := url.Values{}
	if orgnr != "" {
		query.Set("orgnr", orgnr)
	}
	var tenants []Tenant
	if _, err := c.do(ctx, "list_tenants", http.MethodGet, "/v2/tenant", query, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// CreateTenant registers a new tenant. A conflict (HTTP 409) means a tenant
// already owns one of the organisation numbers; RequestAccess is the way
// forward in that case.
func (c *Client) CreateTenant(ctx context.Context, req TenantRequest) (*Tenant, error) {
	if err := c.RequireScope(ctx, "post:kuverta.v2.tenant"); err != nil {
		return nil, err
	}
	var tenant Tenant
	if _, err := c.do(ctx, "create_tenant", http.MethodPost, "/v2/tenant", nil, req, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetTenant fetches one tenant by key.
func (c *Client) GetTenant(ctx context.Context, key string) (*Tenant, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v2.tenant."+key); err != nil {
		return nil, err
	}
	var tenant Tenant
	if _, err := c.do(ctx, "get_tenant", http.MethodGet, "/v2/tenant/"+key, nil, nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// RequestAccess asks for access to an existing tenant owning the given VAT
// number. The returned key, taken from the kuverta-objkey response header,
// is used with RequestAccessStatus to poll the outcome. Granted access only
// takes effect after re-authenticating, since it widens the client's scope.
func (c *Client) RequestAccess(ctx context.Context, vatNumber string) (*AccessRequest, error) {
	if err := c.RequireScope(ctx, "post:kuverta.v2.tenant.request_access"); err != nil {
		return nil, err
	}
	body := map[string]string{"vat_number": vatNumber}
	var req AccessRequest
	header, err := c.do(ctx, "request_access", http.MethodPost, "/v2/tenant/request_access", nil, body, &req)
	if err != nil {
		return nil, err
	}
	if key := header.Get("kuverta-objkey"); key != "" {
		req.Key = key
	}
	return &req, nil
}

// RequestAccessStatus polls an access request created by RequestAccess.
func (c *Client) RequestAccessStatus(ctx context.Context, key string) (*AccessRequest, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v2.tenant.request_access."+key); err != nil {
		return nil, err
	}
	var req AccessRequest
	if _, err := c.do(ctx, "request_access_status", http.MethodGet, "/v2/tenant/request_access/"+key, nil, nil, &req); err != nil {
		return nil, err
	}
	if req.Key == "" {
		req.Key = key
	}
	return &req, nil
}

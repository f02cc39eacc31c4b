package client

import (
	"context"
	"net/http"
	"net/url"
)

// Company is a company recipient reachable from a tenant.
type Company struct {
	Key       string `json:"key"`
	Name      string `json:"name,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
}

// ListCompanies lists the companies eligible for receiving content from the
// tenant, optionally narrowed to one VAT number.
func (c *Client) ListCompanies(ctx context.Context, tenantKey, vatNumber string) ([]Company, error) {
	if err := c.RequireScope(ctx, "get:kuverta.v1.tenant."+tenantKey+".company"); err != nil {
		return nil, err
	}
	query := url.Values{}
	if vatNumber != "" {
		query.Set("vat_number", vatNumber)
	}
	var companies []Company
	if _, err := c.do(ctx, "list_companies", http.MethodGet, "/v1/tenant/"+tenantKey+"/company", query, nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

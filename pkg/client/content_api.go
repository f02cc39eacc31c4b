package client

import (
	"context"
	"net/http"

	"github.com/kuverta/kuverta-go/pkg/content"
)

// SendReceipt acknowledges an accepted content delivery. Key comes from the
// kuverta-objkey response header.
type SendReceipt struct {
	Key string `json:"key,omitempty"`
}

// SendContent delivers a content item through the tenant. The content is
// validated locally first; an invalid content returns the
// *content.ValidationError without any network call.
func (c *Client) SendContent(ctx context.Context, tenantKey string, ct *content.Content) (*SendReceipt, error) {
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	if err := c.RequireScope(ctx, "post:kuverta.v2.tenant."+tenantKey+".content"); err != nil {
		return nil, err
	}
	var receipt SendReceipt
	header, err := c.do(ctx, "send_content", http.MethodPost, "/v2/tenant/"+tenantKey+"/content", nil, ct.Wire(), &receipt)
	if err != nil {
		return nil, err
	}
	if key := header.Get("kuverta-objkey"); key != "" {
		receipt.Key = key
	}
	return &receipt, nil
}

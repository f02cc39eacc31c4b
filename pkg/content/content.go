package content

import (
	"encoding/json"
	"net/mail"

	"github.com/kuverta/kuverta-go/pkg/validate"
)

// Content is one item to deliver to a single recipient: metadata, at least
// one file part, and optionally an invoice/booking context or a direct
// multi-amount payment block. A Content addresses exactly one recipient;
// SetRecipient replaces any previously chosen identifier.
type Content struct {
	Subject       string
	GeneratedAt   string // ISO 8601, used for inbox ordering
	Type          Type
	Retain        bool
	RetentionTime RetentionTime
	TenantInfo    string
	Payment       *PaymentOptions

	sendTo    SendTo
	recipient string
	parts     []File
	context   Context
}

// SetRecipient chooses how the content is addressed. Calling it again
// replaces the previous identifier, keeping the union invariant.
func (c *Content) SetRecipient(kind SendTo, id string) *Content {
	c.sendTo = kind
	c.recipient = id
	return c
}

// Recipient returns the identifier kind and value set by SetRecipient.
func (c *Content) Recipient() (SendTo, string) {
	return c.sendTo, c.recipient
}

// AddPart appends a file part. Parts keep their insertion order on the wire.
// No validation happens here; Validate checks all parts.
func (c *Content) AddPart(f File) *Content {
	c.parts = append(c.parts, f)
	return c
}

// Parts returns the file parts in insertion order.
func (c *Content) Parts() []File {
	return c.parts
}

// SetContext attaches an invoice or booking block. A content item carries
// either a context or a direct Payment block, not both.
func (c *Content) SetContext(ctx Context) *Content {
	c.context = ctx
	return c
}

// Context returns the block set by SetContext, or nil.
func (c *Content) Context() Context {
	return c.context
}

// Validate reports the first inconsistency found, or nil if the content is
// ready to send.
func (c *Content) Validate() error {
	switch c.sendTo {
	case SendToSSN:
		if !validate.NationalID(c.recipient) {
			return invalid("content", "ssn", "not a valid national identity number")
		}
	case SendToVAT:
		if !validate.OrgNumber(c.recipient) {
			return invalid("content", "vat_number", "not a valid VAT number")
		}
	case SendToEmail:
		if _, err := mail.ParseAddress(c.recipient); err != nil {
			return invalid("content", "email", "not a valid email address")
		}
	default:
		return invalid("content", "recipient", "required")
	}
	if c.Subject == "" {
		return invalid("content", "subject", "required")
	}
	if c.Type == "" {
		return invalid("content", "type", "required")
	}
	if len(c.parts) == 0 {
		return invalid("content", "parts", "at least one part required")
	}
	for i := range c.parts {
		if err := c.parts[i].Validate(); err != nil {
			return err
		}
	}
	if c.context != nil && c.Payment != nil {
		return invalid("content", "context", "cannot combine a context with payment options")
	}
	if c.context != nil {
		if err := c.context.Validate(); err != nil {
			return err
		}
	}
	if c.Payment != nil {
		if err := c.Payment.Validate(); err != nil {
			return err
		}
	}
	if c.Retain && c.payable() {
		return invalid("content", "retain", "must not be set for payable content")
	}
	return nil
}

// payable reports whether any attached payment block has payable set.
func (c *Content) payable() bool {
	if c.Payment != nil && c.Payment.Payable != nil && *c.Payment.Payable {
		return true
	}
	if inv, ok := c.context.(*Invoice); ok {
		switch p := inv.Payment.(type) {
		case *Payment:
			return p.Payable != nil && *p.Payable
		case *PaymentOptions:
			return p.Payable != nil && *p.Payable
		}
	}
	return false
}

// Wire renders the content into the map shape the platform expects. Unset
// fields are omitted; Wire never fails, so an incomplete content serializes
// to a partial map.
func (c *Content) Wire() map[string]any {
	m := map[string]any{}
	switch c.sendTo {
	case SendToSSN:
		put(m, "ssn", c.recipient)
	case SendToVAT:
		put(m, "vat_number", c.recipient)
	case SendToEmail:
		put(m, "email", c.recipient)
	}
	put(m, "subject", c.Subject)
	put(m, "generated_at", c.GeneratedAt)
	put(m, "type", string(c.Type))
	put(m, "retain", c.Retain)
	put(m, "retention_time", string(c.RetentionTime))
	put(m, "tenant_info", c.TenantInfo)
	if len(c.parts) > 0 {
		parts := make([]any, 0, len(c.parts))
		for i := range c.parts {
			parts = append(parts, c.parts[i].Wire())
		}
		m["parts"] = parts
	}
	if c.context != nil {
		put(m, "context", c.context.Wire())
	}
	if c.Payment != nil {
		put(m, "payment_multiple_options", c.Payment.Wire())
	}
	return m
}

// MarshalJSON serializes the Wire form. Map keys marshal in sorted order, so
// the same unmodified content always produces identical bytes.
func (c *Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Wire())
}

package content

import (
	"strconv"
	"time"
)

// Bool is a convenience for the optional boolean fields on payments, which
// distinguish "unset" from "false".
func Bool(v bool) *bool { return &v }

// Payment describes a single payable amount attached to an invoice. Money
// fields are decimal strings, as the platform represents them.
type Payment struct {
	Payable        *bool
	Currency       string
	DueDate        string // YYYY-MM-DD
	TotalOwed      string
	Type           ReferenceType
	Method         PaymentMethod
	Account        string
	Reference      string
	VariableAmount *bool
	MinAmount      string
}

func (p *Payment) paymentSpec() {}

func (p *Payment) Validate() error {
	if p.Payable == nil {
		return invalid("payment", "payable", "required")
	}
	if p.Currency == "" {
		return invalid("payment", "currency", "required")
	}
	if !dateValid(p.DueDate) {
		return invalid("payment", "due_date", "must be a YYYY-MM-DD date")
	}
	total, ok := parseMoney(p.TotalOwed)
	if !ok {
		return invalid("payment", "total_owed", "must be a decimal number")
	}
	if *p.Payable && total < 0 {
		return invalid("payment", "total_owed", "must not be negative when payable")
	}
	if p.Type == "" {
		return invalid("payment", "type", "required")
	}
	if p.Method == "" {
		return invalid("payment", "method", "required")
	}
	if p.Account == "" {
		return invalid("payment", "account", "required")
	}
	if p.Reference == "" {
		return invalid("payment", "reference", "required")
	}
	if len(p.Reference) > 25 {
		return invalid("payment", "reference", "longer than 25 characters")
	}
	if p.VariableAmount != nil && *p.VariableAmount {
		min, ok := parseMoney(p.MinAmount)
		if !ok {
			return invalid("payment", "min_amount", "must be a decimal number")
		}
		if min < 0 || min > total {
			return invalid("payment", "min_amount", "must be between 0 and total_owed")
		}
	}
	return nil
}

func (p *Payment) Wire() map[string]any {
	m := map[string]any{}
	put(m, "payable", p.Payable)
	put(m, "currency", p.Currency)
	put(m, "due_date", p.DueDate)
	put(m, "total_owed", p.TotalOwed)
	put(m, "type", string(p.Type))
	put(m, "method", string(p.Method))
	put(m, "account", p.Account)
	put(m, "reference", p.Reference)
	put(m, "variable_amount", p.VariableAmount)
	put(m, "min_amount", p.MinAmount)
	return m
}

// PaymentOptions describes a payment with several selectable amounts, for
// example a minimum and a full card payment. All options share the method
// and account.
type PaymentOptions struct {
	Payable  *bool
	Method   PaymentMethod
	Account  string
	Currency string

	options []Option
}

// NewPaymentOptions returns a PaymentOptions with the currency defaulted to
// SEK, the only currency the platform accepts today.
func NewPaymentOptions() *PaymentOptions {
	return &PaymentOptions{Currency: "SEK"}
}

func (p *PaymentOptions) paymentSpec() {}

// AddOption validates the option and appends it. An invalid option is not
// appended and the validation failure is returned.
func (p *PaymentOptions) AddOption(o Option) error {
	if err := o.Validate(); err != nil {
		return err
	}
	p.options = append(p.options, o)
	return nil
}

// Options returns the accepted options in insertion order.
func (p *PaymentOptions) Options() []Option {
	return p.options
}

func (p *PaymentOptions) Validate() error {
	if p.Payable == nil {
		return invalid("payment_options", "payable", "required")
	}
	if p.Method == "" {
		return invalid("payment_options", "method", "required")
	}
	if p.Account == "" {
		return invalid("payment_options", "account", "required")
	}
	if p.Currency == "" {
		return invalid("payment_options", "currency", "required")
	}
	for i := range p.options {
		if err := p.options[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *PaymentOptions) Wire() map[string]any {
	m := map[string]any{}
	put(m, "payable", p.Payable)
	put(m, "method", string(p.Method))
	put(m, "account", p.Account)
	put(m, "currency", p.Currency)
	if len(p.options) > 0 {
		opts := make([]any, 0, len(p.options))
		for i := range p.options {
			opts = append(opts, p.options[i].Wire())
		}
		m["options"] = opts
	}
	return m
}

// Option is one selectable amount within a PaymentOptions block.
type Option struct {
	DueDate     string // YYYY-MM-DD
	Amount      float64
	Type        ReferenceType
	Reference   string
	Title       string
	Description string
	Icon        *Icon
}

func (o *Option) Validate() error {
	if !dateValid(o.DueDate) {
		return invalid("option", "due_date", "must be a YYYY-MM-DD date")
	}
	if o.Amount <= 0 {
		return invalid("option", "amount", "must be positive")
	}
	if o.Type == "" {
		return invalid("option", "type", "required")
	}
	if o.Reference == "" {
		return invalid("option", "reference", "required")
	}
	if len(o.Reference) > 25 {
		return invalid("option", "reference", "longer than 25 characters")
	}
	if o.Title == "" {
		return invalid("option", "title", "required")
	}
	if o.Description == "" {
		return invalid("option", "description", "required")
	}
	if o.Icon != nil {
		if err := o.Icon.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Option) Wire() map[string]any {
	m := map[string]any{}
	put(m, "due_date", o.DueDate)
	put(m, "amount", o.Amount)
	put(m, "type", string(o.Type))
	put(m, "reference", o.Reference)
	put(m, "title", o.Title)
	put(m, "description", o.Description)
	if o.Icon != nil {
		put(m, "icon", o.Icon.Wire())
	}
	return m
}

func dateValid(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func parseMoney(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

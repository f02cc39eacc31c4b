package content

import (
	"errors"
	"testing"
)

func validPayment() *Payment {
	return &Payment{
		Payable:   Bool(true),
		Currency:  "SEK",
		DueDate:   "2026-09-30",
		TotalOwed: "1200.50",
		Type:      RefSEOCR,
		Method:    MethodBankgiro,
		Account:   "5393-9484",
		Reference: "1212121212",
	}
}

func TestPaymentValidate(t *testing.T) {
	if err := validPayment().Validate(); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Payment)
		field  string
	}{
		{"payable unset", func(p *Payment) { p.Payable = nil }, "payable"},
		{"bad due date", func(p *Payment) { p.DueDate = "30/09/2026" }, "due_date"},
		{"total owed not a number", func(p *Payment) { p.TotalOwed = "a lot" }, "total_owed"},
		{"negative while payable", func(p *Payment) { p.TotalOwed = "-5" }, "total_owed"},
		{"missing account", func(p *Payment) { p.Account = "" }, "account"},
		{"reference too long", func(p *Payment) { p.Reference = "12345678901234567890123456" }, "reference"},
		{"min above total", func(p *Payment) {
			p.VariableAmount = Bool(true)
			p.MinAmount = "2000"
		}, "min_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(p)
			var verr *ValidationError
			err := p.Validate()
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("failed field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestPaymentWire_variableAmount(t *testing.T) {
	p := validPayment()
	p.VariableAmount = Bool(true)
	p.MinAmount = "100"

	m := p.Wire()
	if m["variable_amount"] != true {
		t.Errorf("variable_amount = %v, want true", m["variable_amount"])
	}
	if m["min_amount"] != "100" {
		t.Errorf("min_amount = %v, want 100", m["min_amount"])
	}
}

func TestPaymentWire_falsePayableKept(t *testing.T) {
	p := validPayment()
	p.Payable = Bool(false)

	m := p.Wire()
	if v, ok := m["payable"]; !ok || v != false {
		t.Errorf("payable = %v (present %v), want explicit false", v, ok)
	}
}

func TestPaymentOptions_AddOption(t *testing.T) {
	po := NewPaymentOptions()
	if po.Currency != "SEK" {
		t.Fatalf("default currency = %q, want SEK", po.Currency)
	}

	bad := Option{DueDate: "2026-09-30", Amount: 0}
	if err := po.AddOption(bad); err == nil {
		t.Fatal("AddOption accepted an option with zero amount")
	}
	if len(po.Options()) != 0 {
		t.Fatal("invalid option was appended")
	}

	good := Option{
		DueDate:     "2026-09-30",
		Amount:      150,
		Type:        RefSEOCR,
		Reference:   "1212121212",
		Title:       "Minimum",
		Description: "Minimum payment",
	}
	if err := po.AddOption(good); err != nil {
		t.Fatalf("AddOption rejected a valid option: %v", err)
	}
	if len(po.Options()) != 1 {
		t.Fatalf("options = %d, want 1", len(po.Options()))
	}
}

func TestPaymentOptionsWire(t *testing.T) {
	po := NewPaymentOptions()
	po.Payable = Bool(true)
	po.Method = MethodBankgiro
	po.Account = "5393-9484"
	if err := po.AddOption(Option{
		DueDate: "2026-09-30", Amount: 150, Type: RefSEOCR,
		Reference: "1212121212", Title: "Minimum", Description: "Minimum payment",
	}); err != nil {
		t.Fatal(err)
	}

	m := po.Wire()
	if m["currency"] != "SEK" || m["method"] != "1" {
		t.Errorf("unexpected wire values: %v", m)
	}
	opts, ok := m["options"].([]any)
	if !ok || len(opts) != 1 {
		t.Fatalf("options = %v, want one entry", m["options"])
	}
	opt := opts[0].(map[string]any)
	if opt["amount"] != 150.0 || opt["type"] != "SE_OCR" {
		t.Errorf("unexpected option wire: %v", opt)
	}
	if _, ok := opt["icon"]; ok {
		t.Error("icon emitted for an option without one")
	}
}

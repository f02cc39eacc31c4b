package content

import "time"

// Context is the invoice or booking block of a content item. The two
// implementations are *Invoice and *Booking; the interface is sealed so the
// wire shape stays under this package's control.
type Context interface {
	Validate() error
	Wire() map[string]any

	context()
}

// PaymentSpec is the payment block of an Invoice, either a single *Payment
// or a multi-amount *PaymentOptions.
type PaymentSpec interface {
	Validate() error
	Wire() map[string]any

	paymentSpec()
}

// Invoice is the context for invoice-typed content.
type Invoice struct {
	Payment          PaymentSpec
	InvoiceReference string
}

func (*Invoice) context() {}

func (i *Invoice) Validate() error {
	if i.Payment == nil {
		return invalid("invoice", "payment", "required")
	}
	if err := i.Payment.Validate(); err != nil {
		return err
	}
	if i.InvoiceReference == "" {
		return invalid("invoice", "invoice_reference", "required")
	}
	return nil
}

func (i *Invoice) Wire() map[string]any {
	inner := map[string]any{}
	if i.Payment != nil {
		put(inner, "payment", i.Payment.Wire())
	}
	put(inner, "invoice_reference", i.InvoiceReference)
	return map[string]any{"invoice": inner}
}

// Booking is the context for booking-typed content, e.g. an appointment
// reminder. StartTime is required; EndTime, when set, must not precede it.
type Booking struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Description string
	InfoURL     string
}

func (*Booking) context() {}

func (b *Booking) Validate() error {
	if b.Title == "" {
		return invalid("booking", "title", "required")
	}
	if b.StartTime.IsZero() {
		return invalid("booking", "start_time", "required")
	}
	if !b.EndTime.IsZero() && b.EndTime.Before(b.StartTime) {
		return invalid("booking", "end_time", "must not precede start_time")
	}
	return nil
}

func (b *Booking) Wire() map[string]any {
	inner := map[string]any{}
	put(inner, "title", b.Title)
	if !b.StartTime.IsZero() {
		inner["start_time"] = b.StartTime.Format(time.RFC3339)
	}
	if !b.EndTime.IsZero() {
		inner["end_time"] = b.EndTime.Format(time.RFC3339)
	}
	put(inner, "location", b.Location)
	put(inner, "description", b.Description)
	put(inner, "info_url", b.InfoURL)
	return map[string]any{"booking": inner}
}

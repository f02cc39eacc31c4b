package content

// Type classifies a content item. The value influences how the recipient is
// notified and how the item is presented in their inbox.
type Type string

const (
	TypeLetter                Type = "letter"
	TypeLetterSalary          Type = "letter.salary"
	TypeLetterCreditNotice    Type = "letter.creditnotice"
	TypeLetterForm            Type = "letter.form"
	TypeInvoice               Type = "invoice"
	TypeInvoiceReminder       Type = "invoice.reminder"
	TypeInvoiceDebtCampaign   Type = "invoice.debtcampaign"
	TypeInvoiceRenewal        Type = "invoice.renewal"
	TypeInvoiceDebtCollection Type = "invoice.debtcollection"
	TypeBooking               Type = "booking"
)

// RetentionTime is how long the platform keeps an undeliverable content
// item, in days.
type RetentionTime string

const (
	Retention30  RetentionTime = "30"
	Retention390 RetentionTime = "390"
)

// PaymentMethod selects the bank transfer route.
type PaymentMethod string

const (
	MethodBankgiro PaymentMethod = "1"
	MethodPostgiro PaymentMethod = "2"
)

// ReferenceType is the format of a payment reference.
type ReferenceType string

const (
	RefSEOCR     ReferenceType = "SE_OCR"
	RefTenantRef ReferenceType = "TENANT_REF"
)

// SendTo selects which kind of identifier addresses the recipient.
type SendTo string

const (
	SendToSSN   SendTo = "SSN"
	SendToVAT   SendTo = "VAT_NUMBER"
	SendToEmail SendTo = "EMAIL"
)

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusViewed  InvoiceStatus = "viewed"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	// InvoiceStatusOverdue is only ever computed at read time; it is never stored.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// Invoice is a billing document with a flat list of line items.
//
// Subtotal, TaxAmount, Total, AmountPaid, BalanceDue and the paid/partial
// statuses are owned by the derivation engine (see package finance).
type Invoice struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	JobID      *string         `json:"job_id,omitempty"`
	EstimateID *string         `json:"estimate_id,omitempty"`
	DueDate    time.Time       `json:"due_date"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	Status     InvoiceStatus   `json:"status"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
	ViewedAt   *time.Time      `json:"viewed_at,omitempty"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	VoidedAt   *time.Time      `json:"voided_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	LineItems []LineItem `json:"line_items"`
	Payments  []Payment  `json:"payments,omitempty"`
}

func (inv *Invoice) illegal(to InvoiceStatus) error {
	return &TransitionError{Entity: "invoice", From: string(inv.Status), To: string(to)}
}

// Send is only legal from draft.
func (inv *Invoice) Send(now time.Time) error {
	if inv.Status != InvoiceStatusDraft {
		return inv.illegal(InvoiceStatusSent)
	}
	inv.Status = InvoiceStatusSent
	inv.SentAt = stamp(now)
	inv.UpdatedAt = now
	return nil
}

// MarkViewed moves a sent invoice to viewed. Repeating it is a no-op.
func (inv *Invoice) MarkViewed(now time.Time) error {
	switch inv.Status {
	case InvoiceStatusViewed:
		return nil
	case InvoiceStatusSent:
		inv.Status = InvoiceStatusViewed
		inv.ViewedAt = stamp(now)
		inv.UpdatedAt = now
		return nil
	}
	return inv.illegal(InvoiceStatusViewed)
}

// Void is one-way and refused once the invoice is paid or already void.
func (inv *Invoice) Void(now time.Time) error {
	switch inv.Status {
	case InvoiceStatusPaid:
		return ErrInvoicePaid
	case InvoiceStatusVoid:
		return ErrInvoiceVoided
	}
	inv.Status = InvoiceStatusVoid
	inv.VoidedAt = stamp(now)
	inv.UpdatedAt = now
	return nil
}

// AcceptsChanges reports whether line items and payments may still be applied.
func (inv *Invoice) AcceptsChanges() error {
	if inv.Status == InvoiceStatusVoid {
		return ErrInvoiceVoided
	}
	return nil
}

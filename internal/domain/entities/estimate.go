package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusViewed   EstimateStatus = "viewed"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusDeclined EstimateStatus = "declined"
	EstimateStatusExpired  EstimateStatus = "expired"
)

// EstimateOption is one alternative offered to the customer. Subtotal, TaxAmount
// and Total are derived from LineItems with the owning estimate's tax rate.
type EstimateOption struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	EstimateID  string          `json:"estimate_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SortOrder   int             `json:"sort_order"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
	LineItems   []LineItem      `json:"line_items"`
}

// Estimate is a proposal with one or more options.
//
// TotalAmount stays nil until an option is approved.
type Estimate struct {
	ID               string           `json:"id"`
	TenantID         string           `json:"tenant_id"`
	Number           string           `json:"number"`
	CustomerID       string           `json:"customer_id"`
	PropertyID       string           `json:"property_id"`
	JobID            *string          `json:"job_id,omitempty"`
	Title            string           `json:"title,omitempty"`
	TaxRate          decimal.Decimal  `json:"tax_rate"`
	Status           EstimateStatus   `json:"status"`
	SentAt           *time.Time       `json:"sent_at,omitempty"`
	ViewedAt         *time.Time       `json:"viewed_at,omitempty"`
	ApprovedAt       *time.Time       `json:"approved_at,omitempty"`
	DeclinedAt       *time.Time       `json:"declined_at,omitempty"`
	ExpiredAt        *time.Time       `json:"expired_at,omitempty"`
	ApprovedOptionID *string          `json:"approved_option_id,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	Options []EstimateOption `json:"options"`
}

func (e *Estimate) illegal(to EstimateStatus) error {
	return &TransitionError{Entity: "estimate", From: string(e.Status), To: string(to)}
}

// Send is only legal from draft.
func (e *Estimate) Send(now time.Time) error {
	if e.Status != EstimateStatusDraft {
		return e.illegal(EstimateStatusSent)
	}
	e.Status = EstimateStatusSent
	e.SentAt = stamp(now)
	e.UpdatedAt = now
	return nil
}

// MarkViewed records the customer opening a sent estimate. Repeating it is a no-op.
func (e *Estimate) MarkViewed(now time.Time) error {
	switch e.Status {
	case EstimateStatusViewed:
		return nil
	case EstimateStatusSent:
		e.Status = EstimateStatusViewed
		e.ViewedAt = stamp(now)
		e.UpdatedAt = now
		return nil
	}
	return e.illegal(EstimateStatusViewed)
}

func (e *Estimate) awaitingAnswer() bool {
	return e.Status == EstimateStatusSent || e.Status == EstimateStatusViewed
}

// Option returns the option with the given id, if it belongs to this estimate.
func (e *Estimate) Option(optionID string) (*EstimateOption, bool) {
	for i := range e.Options {
		if e.Options[i].ID == optionID {
			return &e.Options[i], true
		}
	}
	return nil, false
}

// Approve accepts optionID. The option lookup runs first, so a foreign option
// fails with ErrOptionNotFound and leaves ApprovedOptionID unset.
func (e *Estimate) Approve(optionID string, now time.Time) error {
	opt, ok := e.Option(optionID)
	if !ok {
		return ErrOptionNotFound
	}
	if !e.awaitingAnswer() {
		return e.illegal(EstimateStatusApproved)
	}
	id := opt.ID
	total := opt.Total
	e.Status = EstimateStatusApproved
	e.ApprovedOptionID = &id
	e.ApprovedAt = stamp(now)
	e.TotalAmount = &total
	e.UpdatedAt = now
	return nil
}

func (e *Estimate) Decline(now time.Time) error {
	if !e.awaitingAnswer() {
		return e.illegal(EstimateStatusDeclined)
	}
	e.Status = EstimateStatusDeclined
	e.DeclinedAt = stamp(now)
	e.UpdatedAt = now
	return nil
}

func (e *Estimate) Expire(now time.Time) error {
	if !e.awaitingAnswer() {
		return e.illegal(EstimateStatusExpired)
	}
	e.Status = EstimateStatusExpired
	e.ExpiredAt = stamp(now)
	e.UpdatedAt = now
	return nil
}

// Editable reports whether options and line items may still change.
// Declined and expired estimates are closed; every other state stays editable.
func (e *Estimate) Editable() bool {
	return e.Status != EstimateStatusDeclined && e.Status != EstimateStatusExpired
}

func stamp(now time.Time) *time.Time {
	t := now
	return &t
}

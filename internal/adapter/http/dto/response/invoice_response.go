package response

import (
	"encoding/json"
	"time"

	"fieldops/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string          `json:"id"`
	InvoiceID       string          `json:"invoice_id"`
	Amount          string          `json:"amount"`
	Method          string          `json:"method"`
	Reference       string          `json:"reference,omitempty"`
	Status          string          `json:"status"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
	RecordedBy      string          `json:"recorded_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		InvoiceID:       p.InvoiceID,
		Amount:          money(p.Amount),
		Method:          string(p.Method),
		Reference:       p.Reference,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
		RecordedBy:      p.RecordedBy,
		CreatedAt:       p.CreatedAt,
	}
}

// InvoiceResponse reports Status as readers see it, so an unpaid invoice past
// its due date reads as overdue.
type InvoiceResponse struct {
	ID         string             `json:"id"`
	Number     string             `json:"number"`
	CustomerID string             `json:"customer_id"`
	JobID      *string            `json:"job_id,omitempty"`
	EstimateID *string            `json:"estimate_id,omitempty"`
	DueDate    time.Time          `json:"due_date"`
	TaxRate    string             `json:"tax_rate"`
	Subtotal   string             `json:"subtotal"`
	TaxAmount  string             `json:"tax_amount"`
	Total      string             `json:"total"`
	AmountPaid string             `json:"amount_paid"`
	BalanceDue string             `json:"balance_due"`
	Status     string             `json:"status"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
	ViewedAt   *time.Time         `json:"viewed_at,omitempty"`
	PaidAt     *time.Time         `json:"paid_at,omitempty"`
	VoidedAt   *time.Time         `json:"voided_at,omitempty"`
	LineItems  []LineItemResponse `json:"line_items"`
	Payments   []PaymentResponse  `json:"payments,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		CustomerID: inv.CustomerID,
		JobID:      inv.JobID,
		EstimateID: inv.EstimateID,
		DueDate:    inv.DueDate,
		TaxRate:    inv.TaxRate.String(),
		Subtotal:   money(inv.Subtotal),
		TaxAmount:  money(inv.TaxAmount),
		Total:      money(inv.Total),
		AmountPaid: money(inv.AmountPaid),
		BalanceDue: money(inv.BalanceDue),
		Status:     string(inv.Status),
		SentAt:     inv.SentAt,
		ViewedAt:   inv.ViewedAt,
		PaidAt:     inv.PaidAt,
		VoidedAt:   inv.VoidedAt,
		LineItems:  FromLineItems(inv.LineItems),
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
	if len(inv.Payments) > 0 {
		res.Payments = Mapped(inv.Payments, FromPayment)
	}
	return res
}

// PaymentResultResponse is returned by operations that apply a payment.
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}

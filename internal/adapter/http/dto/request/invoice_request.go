package request

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type InvoiceRequest struct {
	CustomerID string            `json:"customer_id"`
	JobID      *string           `json:"job_id"`
	EstimateID *string           `json:"estimate_id"`
	DueDate    time.Time         `json:"due_date"`
	TaxRate    decimal.Decimal   `json:"tax_rate"`
	LineItems  []LineItemRequest `json:"line_items"`
}

func (r InvoiceRequest) ToInput() usecase.InvoiceInput {
	return usecase.InvoiceInput{
		CustomerID: r.CustomerID,
		JobID:      blankToNil(r.JobID),
		EstimateID: blankToNil(r.EstimateID),
		DueDate:    r.DueDate,
		TaxRate:    r.TaxRate,
		LineItems:  lineInputs(r.LineItems),
	}
}

type PaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
}

func (r PaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		Amount:    r.Amount,
		Method:    entities.PaymentMethod(r.Method),
		Reference: r.Reference,
	}
}

// ChargeRequest carries an optional amount (defaults to the balance due) and
// the Mercado Pago payment payload, forwarded as-is apart from the fields the
// charge fills in itself.
type ChargeRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	MPPayload json.RawMessage  `json:"mp_payload"`
}

func (r ChargeRequest) ToInput() usecase.ChargeInput {
	return usecase.ChargeInput{Amount: r.Amount, ProviderPayload: r.MPPayload}
}

package request

import (
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/usecase"
)

type EstimateOptionRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
}

func (r EstimateOptionRequest) ToInput() usecase.EstimateOptionInput {
	return usecase.EstimateOptionInput{
		Name:        r.Name,
		Description: r.Description,
		LineItems:   lineInputs(r.LineItems),
	}
}

type EstimateRequest struct {
	CustomerID string                  `json:"customer_id"`
	PropertyID string                  `json:"property_id"`
	JobID      *string                 `json:"job_id"`
	Title      string                  `json:"title"`
	TaxRate    decimal.Decimal         `json:"tax_rate"`
	Options    []EstimateOptionRequest `json:"options"`
}

func (r EstimateRequest) ToInput() usecase.EstimateInput {
	in := usecase.EstimateInput{
		CustomerID: r.CustomerID,
		PropertyID: r.PropertyID,
		JobID:      blankToNil(r.JobID),
		Title:      r.Title,
		TaxRate:    r.TaxRate,
	}
	for _, o := range r.Options {
		in.Options = append(in.Options, o.ToInput())
	}
	return in
}

type ApproveEstimateRequest struct {
	OptionID string `json:"option_id"`
}

type ConvertEstimateRequest struct {
	DueDate time.Time `json:"due_date"`
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

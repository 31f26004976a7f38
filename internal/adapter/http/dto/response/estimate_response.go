package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type EstimateOptionResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	SortOrder   int                `json:"sort_order"`
	Subtotal    string             `json:"subtotal"`
	TaxAmount   string             `json:"tax_amount"`
	Total       string             `json:"total"`
	LineItems   []LineItemResponse `json:"line_items"`
}

type EstimateResponse struct {
	ID               string                   `json:"id"`
	Number           string                   `json:"number"`
	CustomerID       string                   `json:"customer_id"`
	PropertyID       string                   `json:"property_id"`
	JobID            *string                  `json:"job_id,omitempty"`
	Title            string                   `json:"title,omitempty"`
	TaxRate          string                   `json:"tax_rate"`
	Status           string                   `json:"status"`
	ApprovedOptionID *string                  `json:"approved_option_id,omitempty"`
	TotalAmount      *string                  `json:"total_amount"`
	SentAt           *time.Time               `json:"sent_at,omitempty"`
	ViewedAt         *time.Time               `json:"viewed_at,omitempty"`
	ApprovedAt       *time.Time               `json:"approved_at,omitempty"`
	DeclinedAt       *time.Time               `json:"declined_at,omitempty"`
	ExpiredAt        *time.Time               `json:"expired_at,omitempty"`
	Options          []EstimateOptionResponse `json:"options"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		Number:           e.Number,
		CustomerID:       e.CustomerID,
		PropertyID:       e.PropertyID,
		JobID:            e.JobID,
		Title:            e.Title,
		TaxRate:          e.TaxRate.String(),
		Status:           string(e.Status),
		ApprovedOptionID: e.ApprovedOptionID,
		TotalAmount:      optionalMoney(e.TotalAmount),
		SentAt:           e.SentAt,
		ViewedAt:         e.ViewedAt,
		ApprovedAt:       e.ApprovedAt,
		DeclinedAt:       e.DeclinedAt,
		ExpiredAt:        e.ExpiredAt,
		Options: Mapped(e.Options, func(o entities.EstimateOption) EstimateOptionResponse {
			return EstimateOptionResponse{
				ID:          o.ID,
				Name:        o.Name,
				Description: o.Description,
				SortOrder:   o.SortOrder,
				Subtotal:    money(o.Subtotal),
				TaxAmount:   money(o.TaxAmount),
				Total:       money(o.Total),
				LineItems:   FromLineItems(o.LineItems),
			}
		}),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

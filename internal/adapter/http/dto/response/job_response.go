package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type JobResponse struct {
	ID             string                  `json:"id"`
	Number         string                  `json:"number"`
	CustomerID     string                  `json:"customer_id"`
	PropertyID     string                  `json:"property_id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description,omitempty"`
	Status         string                  `json:"status"`
	Priority       string                  `json:"priority"`
	ScheduledStart *time.Time              `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time              `json:"scheduled_end,omitempty"`
	AssignedTo     *string                 `json:"assigned_to,omitempty"`
	DispatchedAt   *time.Time              `json:"dispatched_at,omitempty"`
	CompletedAt    *time.Time              `json:"completed_at,omitempty"`
	TotalAmount    string                  `json:"total_amount"`
	LineItems      []LineItemResponse      `json:"line_items"`
	Notes          []entities.JobNote      `json:"notes"`
	Photos         []entities.JobPhoto     `json:"photos"`
	Signatures     []entities.JobSignature `json:"signatures"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		Number:         j.Number,
		CustomerID:     j.CustomerID,
		PropertyID:     j.PropertyID,
		Title:          j.Title,
		Description:    j.Description,
		Status:         string(j.Status),
		Priority:       string(j.Priority),
		ScheduledStart: j.ScheduledStart,
		ScheduledEnd:   j.ScheduledEnd,
		AssignedTo:     j.AssignedTo,
		DispatchedAt:   j.DispatchedAt,
		CompletedAt:    j.CompletedAt,
		TotalAmount:    money(j.TotalAmount),
		LineItems:      FromLineItems(j.LineItems),
		Notes:          orEmpty(j.Notes),
		Photos:         orEmpty(j.Photos),
		Signatures:     orEmpty(j.Signatures),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

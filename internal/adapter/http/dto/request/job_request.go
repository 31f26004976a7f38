package request

import (
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type JobRequest struct {
	CustomerID     string            `json:"customer_id"`
	PropertyID     string            `json:"property_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Priority       string            `json:"priority"`
	ScheduledStart *time.Time        `json:"scheduled_start"`
	ScheduledEnd   *time.Time        `json:"scheduled_end"`
	AssignedTo     *string           `json:"assigned_to"`
	LineItems      []LineItemRequest `json:"line_items"`
}

func (r JobRequest) ToInput() usecase.JobInput {
	return usecase.JobInput{
		CustomerID:     r.CustomerID,
		PropertyID:     r.PropertyID,
		Title:          r.Title,
		Description:    r.Description,
		Priority:       entities.JobPriority(r.Priority),
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		AssignedTo:     r.AssignedTo,
		LineItems:      lineInputs(r.LineItems),
	}
}

type JobStatusRequest struct {
	Status string `json:"status"`
}

// AssignJobRequest with a null or missing technician_id unassigns the job.
type AssignJobRequest struct {
	TechnicianID *string `json:"technician_id"`
}

type JobNoteRequest struct {
	Body string `json:"body"`
}

// JobAttachmentRequest references a blob already uploaded to the object store.
type JobAttachmentRequest struct {
	Path       string `json:"path"`
	Caption    string `json:"caption"`
	SignerName string `json:"signer_name"`
}

type InvoiceFromJobRequest struct {
	DueDate time.Time       `json:"due_date"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

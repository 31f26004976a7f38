package interfaces

import (
	"context"
	"time"
)

const (
	NotificationJobAssigned      = "job.assigned"
	NotificationEstimateApproved = "estimate.approved"
	NotificationInvoicePaid      = "invoice.paid"
)

// Notification is a push message handed to the delivery collaborator.
type Notification struct {
	Kind        string            `json:"kind"`
	TenantID    string            `json:"tenant_id"`
	RecipientID string            `json:"recipient_id,omitempty"`
	EntityType  string            `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	Title       string            `json:"title"`
	Data        map[string]string `json:"data,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// INotifier delivers notifications. Callers treat it as fire-and-forget.
type INotifier interface {
	Notify(ctx context.Context, n Notification) error
}

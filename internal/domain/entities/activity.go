package entities

import "time"

type EntityType string

const (
	EntityCustomer  EntityType = "customer"
	EntityProperty  EntityType = "property"
	EntityEquipment EntityType = "equipment"
	EntityJob       EntityType = "job"
	EntityEstimate  EntityType = "estimate"
	EntityInvoice   EntityType = "invoice"
	EntityPayment   EntityType = "payment"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityCustomer, EntityProperty, EntityEquipment, EntityJob, EntityEstimate, EntityInvoice, EntityPayment:
		return true
	}
	return false
}

// ActivityLogEntry is a write-once audit record of a mutating action.
type ActivityLogEntry struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	ActorUserID string            `json:"actor_user_id"`
	EntityType  EntityType        `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	Action      string            `json:"action"`
	Detail      map[string]string `json:"detail,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

type ActivityFilter struct {
	EntityType entities.EntityType
	EntityID   string
	Limit      int
}

// IActivityLogRepository is the append-only audit trail. Entries are never updated or deleted.
type IActivityLogRepository interface {
	Append(ctx context.Context, e entities.ActivityLogEntry) error
	// List returns the tenant's entries newest first.
	List(ctx context.Context, tenantID string, f ActivityFilter) ([]entities.ActivityLogEntry, error)
}

package usecase

import (
	"context"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/usecase/interfaces"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

type IActivityUseCase interface {
	ListActivity(ctx context.Context, f interfaces.ActivityFilter) ([]entities.ActivityLogEntry, error)
}

type ActivityUseCase struct {
	lifecycle
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(d Dependencies) *ActivityUseCase {
	return &ActivityUseCase{lifecycle: newLifecycle(d)}
}

// ListActivity returns the caller's tenant history, newest first.
func (u *ActivityUseCase) ListActivity(ctx context.Context, f interfaces.ActivityFilter) ([]entities.ActivityLogEntry, error) {
	id, err := u.begin(ctx, permissions.ResourceReports, permissions.ActionRead)
	if err != nil {
		return nil, err
	}
	if f.EntityType != "" && !f.EntityType.Valid() {
		return nil, invalidField("entity_type", "unknown entity type")
	}
	if f.EntityID != "" && f.EntityType == "" {
		return nil, invalidField("entity_type", "required when entity_id is set")
	}
	switch {
	case f.Limit <= 0:
		f.Limit = defaultActivityLimit
	case f.Limit > maxActivityLimit:
		f.Limit = maxActivityLimit
	}
	if u.activity == nil {
		return []entities.ActivityLogEntry{}, nil
	}
	entries, err := u.activity.List(ctx, id.TenantID, f)
	if err != nil {
		return nil, u.fail("list activity", id, err)
	}
	return entries, nil
}

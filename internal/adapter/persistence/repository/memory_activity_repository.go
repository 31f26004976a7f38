package repository

import (
	"context"
	"sort"
	"sync"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

// MemoryActivityRepository keeps the activity log in process memory.
type MemoryActivityRepository struct {
	mu      sync.RWMutex
	entries []entities.ActivityLogEntry
}

var _ interfaces.IActivityLogRepository = (*MemoryActivityRepository)(nil)

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{}
}

func (r *MemoryActivityRepository) Append(_ context.Context, e entities.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *MemoryActivityRepository) List(_ context.Context, tenantID string, f interfaces.ActivityFilter) ([]entities.ActivityLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entities.ActivityLogEntry{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.TenantID != tenantID {
			continue
		}
		if f.EntityType != "" && e.EntityType != f.EntityType {
			continue
		}
		if f.EntityID != "" && e.EntityID != f.EntityID {
			continue
		}
		out = append(out, e)
	}
	// walked in reverse commit order, so equal timestamps stay newest first
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

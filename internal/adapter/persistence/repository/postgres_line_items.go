package repository

import (
	"context"
	"fmt"

	"fieldops/internal/domain/entities"
)

func (r *pgRepo) AddLineItem(ctx context.Context, l entities.LineItem) error {
	_, err := r.exec(ctx, "insert line item", `
		INSERT INTO line_items (id, tenant_id, parent_type, parent_id, description, quantity, unit_price, type, total, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.TenantID, string(l.ParentType), l.ParentID, l.Description, l.Quantity, l.UnitPrice, string(l.Type),
		l.Total, l.SortOrder, l.CreatedAt)
	return err
}

func (r *pgRepo) DeleteLineItem(ctx context.Context, tenantID, id string) error {
	_, err := r.exec(ctx, "delete line item", `DELETE FROM line_items WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return err
}

func (r *pgRepo) lineItems(ctx context.Context, tenantID string, parent entities.LineParent, parentID string) ([]entities.LineItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, parent_type, parent_id, description, quantity, unit_price, type, total, sort_order, created_at
		FROM line_items
		WHERE tenant_id = $1 AND parent_type = $2 AND parent_id = $3
		ORDER BY sort_order, created_at, id`, tenantID, string(parent), parentID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	out := []entities.LineItem{}
	for rows.Next() {
		var l entities.LineItem
		if err := rows.Scan(&l.ID, &l.TenantID, &l.ParentType, &l.ParentID, &l.Description, &l.Quantity, &l.UnitPrice,
			&l.Type, &l.Total, &l.SortOrder, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// NextNumber bumps the tenant's counter for kind. The upsert row lock
// serializes concurrent allocations until the transaction ends.
func (r *pgRepo) NextNumber(ctx context.Context, tenantID, kind string) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO document_sequences (tenant_id, kind, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, kind) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`, tenantID, kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next %s number: %w", kind, err)
	}
	return n, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const estimateColumns = `id, tenant_id, number, customer_id, property_id, job_id, title, tax_rate, status,
	sent_at, viewed_at, approved_at, declined_at, expired_at, approved_option_id, total_amount, created_at, updated_at`

func scanEstimate(sc interface{ Scan(...any) error }) (entities.Estimate, error) {
	var e entities.Estimate
	err := sc.Scan(&e.ID, &e.TenantID, &e.Number, &e.CustomerID, &e.PropertyID, &e.JobID, &e.Title, &e.TaxRate, &e.Status,
		&e.SentAt, &e.ViewedAt, &e.ApprovedAt, &e.DeclinedAt, &e.ExpiredAt, &e.ApprovedOptionID, &e.TotalAmount,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *pgRepo) CreateEstimate(ctx context.Context, e entities.Estimate) error {
	_, err := r.exec(ctx, "insert estimate", `
		INSERT INTO estimates (`+estimateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		e.ID, e.TenantID, e.Number, e.CustomerID, e.PropertyID, e.JobID, e.Title, e.TaxRate, string(e.Status),
		e.SentAt, e.ViewedAt, e.ApprovedAt, e.DeclinedAt, e.ExpiredAt, e.ApprovedOptionID, e.TotalAmount,
		e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *pgRepo) GetEstimate(ctx context.Context, tenantID, id string, lock bool) (entities.Estimate, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE tenant_id = $1 AND id = $2`+r.forUpdate(lock), tenantID, id)
	e, err := scanEstimate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("get estimate: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, estimate_id, name, description, sort_order, subtotal, tax_amount, total
		FROM estimate_options
		WHERE tenant_id = $1 AND estimate_id = $2
		ORDER BY sort_order, id`, tenantID, id)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("list estimate options: %w", err)
	}
	defer rows.Close()

	e.Options = []entities.EstimateOption{}
	for rows.Next() {
		var o entities.EstimateOption
		if err := rows.Scan(&o.ID, &o.TenantID, &o.EstimateID, &o.Name, &o.Description, &o.SortOrder,
			&o.Subtotal, &o.TaxAmount, &o.Total); err != nil {
			return entities.Estimate{}, fmt.Errorf("scan estimate option: %w", err)
		}
		e.Options = append(e.Options, o)
	}
	if err := rows.Err(); err != nil {
		return entities.Estimate{}, fmt.Errorf("list estimate options: %w", err)
	}
	rows.Close()

	for i := range e.Options {
		if e.Options[i].LineItems, err = r.lineItems(ctx, tenantID, entities.LineParentEstimateOption, e.Options[i].ID); err != nil {
			return entities.Estimate{}, err
		}
	}
	return e, nil
}

func (r *pgRepo) ListEstimates(ctx context.Context, tenantID string, f interfaces.EstimateFilter) ([]entities.Estimate, error) {
	w := tenantWhere(tenantID)
	if f.Status != "" {
		w.add("status = $%d", string(f.Status))
	}
	if f.CustomerID != "" {
		w.add("customer_id = $%d", f.CustomerID)
	}
	if f.JobID != "" {
		w.add("job_id = $%d", f.JobID)
	}
	query, args := paging(`SELECT `+estimateColumns+` FROM estimates`+w.String()+` ORDER BY created_at DESC, id DESC`, w.args, f.Limit, f.Offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	out := []entities.Estimate{}
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *pgRepo) UpdateEstimate(ctx context.Context, e entities.Estimate) error {
	return r.update(ctx, "update estimate", `
		UPDATE estimates
		SET title = $3, tax_rate = $4, status = $5, sent_at = $6, viewed_at = $7, approved_at = $8, declined_at = $9,
			expired_at = $10, approved_option_id = $11, total_amount = $12, updated_at = $13
		WHERE tenant_id = $1 AND id = $2`,
		e.TenantID, e.ID, e.Title, e.TaxRate, string(e.Status), e.SentAt, e.ViewedAt, e.ApprovedAt, e.DeclinedAt,
		e.ExpiredAt, e.ApprovedOptionID, e.TotalAmount, e.UpdatedAt)
}

func (r *pgRepo) CreateEstimateOption(ctx context.Context, o entities.EstimateOption) error {
	_, err := r.exec(ctx, "insert estimate option", `
		INSERT INTO estimate_options (id, tenant_id, estimate_id, name, description, sort_order, subtotal, tax_amount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.TenantID, o.EstimateID, o.Name, o.Description, o.SortOrder, o.Subtotal, o.TaxAmount, o.Total)
	return err
}

func (r *pgRepo) UpdateEstimateOption(ctx context.Context, o entities.EstimateOption) error {
	return r.update(ctx, "update estimate option", `
		UPDATE estimate_options
		SET name = $3, description = $4, sort_order = $5, subtotal = $6, tax_amount = $7, total = $8
		WHERE tenant_id = $1 AND id = $2`,
		o.TenantID, o.ID, o.Name, o.Description, o.SortOrder, o.Subtotal, o.TaxAmount, o.Total)
}

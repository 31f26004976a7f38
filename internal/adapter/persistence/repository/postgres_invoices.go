package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/usecase/interfaces"
)

const invoiceColumns = `id, tenant_id, number, customer_id, job_id, estimate_id, due_date, tax_rate,
	subtotal, tax_amount, total, amount_paid, balance_due, status,
	sent_at, viewed_at, paid_at, voided_at, created_at, updated_at`

func scanInvoice(sc interface{ Scan(...any) error }) (entities.Invoice, error) {
	var inv entities.Invoice
	err := sc.Scan(&inv.ID, &inv.TenantID, &inv.Number, &inv.CustomerID, &inv.JobID, &inv.EstimateID, &inv.DueDate, &inv.TaxRate,
		&inv.Subtotal, &inv.TaxAmount, &inv.Total, &inv.AmountPaid, &inv.BalanceDue, &inv.Status,
		&inv.SentAt, &inv.ViewedAt, &inv.PaidAt, &inv.VoidedAt, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func (r *pgRepo) CreateInvoice(ctx context.Context, inv entities.Invoice) error {
	_, err := r.exec(ctx, "insert invoice", `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		inv.ID, inv.TenantID, inv.Number, inv.CustomerID, inv.JobID, inv.EstimateID, inv.DueDate, inv.TaxRate,
		inv.Subtotal, inv.TaxAmount, inv.Total, inv.AmountPaid, inv.BalanceDue, string(inv.Status),
		inv.SentAt, inv.ViewedAt, inv.PaidAt, inv.VoidedAt, inv.CreatedAt, inv.UpdatedAt)
	return err
}

func (r *pgRepo) GetInvoice(ctx context.Context, tenantID, id string, lock bool) (entities.Invoice, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE tenant_id = $1 AND id = $2`+r.forUpdate(lock), tenantID, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	if inv.LineItems, err = r.lineItems(ctx, tenantID, entities.LineParentInvoice, id); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *pgRepo) ListInvoices(ctx context.Context, tenantID string, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	w := tenantWhere(tenantID)
	invoiceStatusFilter(w, f)
	if f.CustomerID != "" {
		w.add("customer_id = $%d", f.CustomerID)
	}
	if f.JobID != "" {
		w.add("job_id = $%d", f.JobID)
	}
	if f.EstimateID != "" {
		w.add("estimate_id = $%d", f.EstimateID)
	}
	query, args := paging(`SELECT `+invoiceColumns+` FROM invoices`+w.String()+` ORDER BY created_at DESC, id DESC`, w.args, f.Limit, f.Offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	out := []entities.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *pgRepo) UpdateInvoice(ctx context.Context, inv entities.Invoice) error {
	return r.update(ctx, "update invoice", `
		UPDATE invoices
		SET due_date = $3, tax_rate = $4, subtotal = $5, tax_amount = $6, total = $7, amount_paid = $8, balance_due = $9,
			status = $10, sent_at = $11, viewed_at = $12, paid_at = $13, voided_at = $14, updated_at = $15
		WHERE tenant_id = $1 AND id = $2`,
		inv.TenantID, inv.ID, inv.DueDate, inv.TaxRate, inv.Subtotal, inv.TaxAmount, inv.Total, inv.AmountPaid, inv.BalanceDue,
		string(inv.Status), inv.SentAt, inv.ViewedAt, inv.PaidAt, inv.VoidedAt, inv.UpdatedAt)
}

func (r *pgRepo) CreatePayment(ctx context.Context, p entities.Payment) error {
	_, err := r.exec(ctx, "insert payment", `
		INSERT INTO payments (id, tenant_id, invoice_id, amount, method, reference, status, provider_payload, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.TenantID, p.InvoiceID, p.Amount, string(p.Method), p.Reference, string(p.Status),
		jsonText(p.ProviderPayload), p.RecordedBy, p.CreatedAt)
	return err
}

func (r *pgRepo) ListPayments(ctx context.Context, tenantID, invoiceID string) ([]entities.Payment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, invoice_id, amount, method, reference, status, provider_payload, recorded_by, created_at
		FROM payments
		WHERE tenant_id = $1 AND invoice_id = $2
		ORDER BY created_at, id`, tenantID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := []entities.Payment{}
	for rows.Next() {
		var (
			p       entities.Payment
			payload []byte
		)
		if err := rows.Scan(&p.ID, &p.TenantID, &p.InvoiceID, &p.Amount, &p.Method, &p.Reference, &p.Status,
			&payload, &p.RecordedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if len(payload) > 0 {
			p.ProviderPayload = payload
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// overdueSQL matches rows that read as overdue at the bound instant.
const overdueSQL = `(status IN ('sent', 'viewed', 'partial') AND balance_due > 0 AND due_date < $%d)`

// invoiceStatusFilter mirrors finance.EffectiveInvoiceStatus when AsOf is set.
func invoiceStatusFilter(w *where, f interfaces.InvoiceFilter) {
	switch {
	case f.Status == "":
	case f.AsOf.IsZero():
		w.add("status = $%d", string(f.Status))
	case f.Status == entities.InvoiceStatusOverdue:
		w.add(overdueSQL, f.AsOf)
	case finance.OverdueCandidate(f.Status):
		w.add("status = $%d", string(f.Status))
		w.add("NOT "+overdueSQL, f.AsOf)
	default:
		w.add("status = $%d", string(f.Status))
	}
}

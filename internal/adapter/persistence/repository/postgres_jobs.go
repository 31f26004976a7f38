package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const jobColumns = `id, tenant_id, number, customer_id, property_id, title, description, status, priority,
	scheduled_start, scheduled_end, assigned_to, dispatched_at, completed_at, total_amount, created_at, updated_at`

func scanJob(sc interface{ Scan(...any) error }) (entities.Job, error) {
	var j entities.Job
	err := sc.Scan(&j.ID, &j.TenantID, &j.Number, &j.CustomerID, &j.PropertyID, &j.Title, &j.Description, &j.Status, &j.Priority,
		&j.ScheduledStart, &j.ScheduledEnd, &j.AssignedTo, &j.DispatchedAt, &j.CompletedAt, &j.TotalAmount, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

func (r *pgRepo) CreateJob(ctx context.Context, j entities.Job) error {
	_, err := r.exec(ctx, "insert job", `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.TenantID, j.Number, j.CustomerID, j.PropertyID, j.Title, j.Description, string(j.Status), string(j.Priority),
		j.ScheduledStart, j.ScheduledEnd, j.AssignedTo, j.DispatchedAt, j.CompletedAt, j.TotalAmount, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *pgRepo) GetJob(ctx context.Context, tenantID, id string, lock bool) (entities.Job, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE tenant_id = $1 AND id = $2`+r.forUpdate(lock), tenantID, id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, fmt.Errorf("get job: %w", err)
	}

	if j.LineItems, err = r.lineItems(ctx, tenantID, entities.LineParentJob, id); err != nil {
		return entities.Job{}, err
	}
	if j.Notes, err = r.jobNotes(ctx, tenantID, id); err != nil {
		return entities.Job{}, err
	}
	if j.Photos, err = r.jobPhotos(ctx, tenantID, id); err != nil {
		return entities.Job{}, err
	}
	if j.Signatures, err = r.jobSignatures(ctx, tenantID, id); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *pgRepo) ListJobs(ctx context.Context, tenantID string, f interfaces.JobFilter) ([]entities.Job, error) {
	w := tenantWhere(tenantID)
	if f.Status != "" {
		w.add("status = $%d", string(f.Status))
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = $%d", f.AssignedTo)
	}
	if f.CustomerID != "" {
		w.add("customer_id = $%d", f.CustomerID)
	}
	if f.ScheduledFrom != nil {
		w.add("scheduled_start >= $%d", *f.ScheduledFrom)
	}
	if f.ScheduledTo != nil {
		w.add("scheduled_start < $%d", *f.ScheduledTo)
	}
	query, args := paging(`SELECT `+jobColumns+` FROM jobs`+w.String()+` ORDER BY created_at DESC, id DESC`, w.args, f.Limit, f.Offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := []entities.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *pgRepo) UpdateJob(ctx context.Context, j entities.Job) error {
	return r.update(ctx, "update job", `
		UPDATE jobs
		SET title = $3, description = $4, status = $5, priority = $6, scheduled_start = $7, scheduled_end = $8,
			assigned_to = $9, dispatched_at = $10, completed_at = $11, total_amount = $12, updated_at = $13
		WHERE tenant_id = $1 AND id = $2`,
		j.TenantID, j.ID, j.Title, j.Description, string(j.Status), string(j.Priority), j.ScheduledStart, j.ScheduledEnd,
		j.AssignedTo, j.DispatchedAt, j.CompletedAt, j.TotalAmount, j.UpdatedAt)
}

func (r *pgRepo) AddJobNote(ctx context.Context, n entities.JobNote) error {
	_, err := r.exec(ctx, "insert job note", `
		INSERT INTO job_notes (id, tenant_id, job_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.TenantID, n.JobID, n.AuthorID, n.Body, n.CreatedAt)
	return err
}

func (r *pgRepo) AddJobPhoto(ctx context.Context, p entities.JobPhoto) error {
	_, err := r.exec(ctx, "insert job photo", `
		INSERT INTO job_photos (id, tenant_id, job_id, path, caption, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.TenantID, p.JobID, p.Path, p.Caption, p.UploadedBy, p.CreatedAt)
	return err
}

func (r *pgRepo) AddJobSignature(ctx context.Context, s entities.JobSignature) error {
	_, err := r.exec(ctx, "insert job signature", `
		INSERT INTO job_signatures (id, tenant_id, job_id, path, signer_name, captured_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.TenantID, s.JobID, s.Path, s.SignerName, s.CapturedBy, s.CreatedAt)
	return err
}

func (r *pgRepo) jobNotes(ctx context.Context, tenantID, jobID string) ([]entities.JobNote, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, job_id, author_id, body, created_at FROM job_notes
		WHERE tenant_id = $1 AND job_id = $2 ORDER BY created_at, id`, tenantID, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job notes: %w", err)
	}
	defer rows.Close()

	out := []entities.JobNote{}
	for rows.Next() {
		var n entities.JobNote
		if err := rows.Scan(&n.ID, &n.TenantID, &n.JobID, &n.AuthorID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *pgRepo) jobPhotos(ctx context.Context, tenantID, jobID string) ([]entities.JobPhoto, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, job_id, path, caption, uploaded_by, created_at FROM job_photos
		WHERE tenant_id = $1 AND job_id = $2 ORDER BY created_at, id`, tenantID, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job photos: %w", err)
	}
	defer rows.Close()

	out := []entities.JobPhoto{}
	for rows.Next() {
		var p entities.JobPhoto
		if err := rows.Scan(&p.ID, &p.TenantID, &p.JobID, &p.Path, &p.Caption, &p.UploadedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job photo: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pgRepo) jobSignatures(ctx context.Context, tenantID, jobID string) ([]entities.JobSignature, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tenant_id, job_id, path, signer_name, captured_by, created_at FROM job_signatures
		WHERE tenant_id = $1 AND job_id = $2 ORDER BY created_at, id`, tenantID, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job signatures: %w", err)
	}
	defer rows.Close()

	out := []entities.JobSignature{}
	for rows.Next() {
		var s entities.JobSignature
		if err := rows.Scan(&s.ID, &s.TenantID, &s.JobID, &s.Path, &s.SignerName, &s.CapturedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job signature: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

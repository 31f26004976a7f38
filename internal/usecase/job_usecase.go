package usecase

import (
	"context"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

type JobInput struct {
	CustomerID     string
	PropertyID     string
	Title          string
	Description    string
	Priority       entities.JobPriority
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	AssignedTo     *string
	LineItems      []LineItemInput
}

// IJobUseCase drives work orders through their status table.
type IJobUseCase interface {
	CreateJob(ctx context.Context, in JobInput) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error)
	ChangeJobStatus(ctx context.Context, id string, target entities.JobStatus) (entities.Job, error)
	AssignJob(ctx context.Context, id string, technicianID *string) (entities.Job, error)
	AddJobLineItem(ctx context.Context, id string, in LineItemInput) (entities.Job, error)
	RemoveJobLineItem(ctx context.Context, id, lineID string) (entities.Job, error)
	AddJobNote(ctx context.Context, id, body string) (entities.JobNote, error)
	AddJobPhoto(ctx context.Context, id, path, caption string) (entities.JobPhoto, error)
	AddJobSignature(ctx context.Context, id, path, signerName string) (entities.JobSignature, error)
	TransitionTable() map[entities.JobStatus][]entities.JobStatus
}

type JobUseCase struct {
	lifecycle
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(d Dependencies) *JobUseCase {
	return &JobUseCase{lifecycle: newLifecycle(d)}
}

func jobExists(ctx context.Context, jobID string) func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
	return func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		j, err := r.GetJob(ctx, tenantID, jobID, false)
		return j.ID != "", err
	}
}

func lockedJob(ctx context.Context, tx interfaces.IDocumentRepository, tenantID, jobID string) (entities.Job, error) {
	j, err := tx.GetJob(ctx, tenantID, jobID, true)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// mutate runs the standard sequence on one job: existence probe, permission,
// input validation, then a locked read-modify-write in one transaction.
func (u *JobUseCase) mutate(
	ctx context.Context,
	op string,
	jobID string,
	act permissions.Action,
	invalidInput error,
	fn func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error,
) (tenant.Identity, entities.Job, error) {
	id, err := u.beginOn(ctx, permissions.ResourceJobs, act, jobExists(ctx, jobID), ErrJobNotFound)
	if err != nil {
		return tenant.Identity{}, entities.Job{}, err
	}
	if invalidInput != nil {
		return tenant.Identity{}, entities.Job{}, invalidInput
	}
	var job entities.Job
	err = u.tx(ctx, op, id, func(tx interfaces.IDocumentRepository) error {
		var err error
		job, err = lockedJob(ctx, tx, id.TenantID, jobID)
		if err != nil {
			return err
		}
		return fn(tx, id, &job)
	})
	if err != nil {
		return tenant.Identity{}, entities.Job{}, err
	}
	return id, job, nil
}

func (u *JobUseCase) CreateJob(ctx context.Context, in JobInput) (entities.Job, error) {
	id, err := u.begin(ctx, permissions.ResourceJobs, permissions.ActionCreate)
	if err != nil {
		return entities.Job{}, err
	}
	if in.Priority == "" {
		in.Priority = entities.JobPriorityNormal
	}
	fields := validateLines(in.LineItems, "line_items")
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "required"
	}
	if strings.TrimSpace(in.PropertyID) == "" {
		fields["property_id"] = "required"
	}
	if !in.Priority.Valid() {
		fields["priority"] = "must be low, normal, high or urgent"
	}
	if in.ScheduledStart != nil && in.ScheduledEnd != nil && in.ScheduledEnd.Before(*in.ScheduledStart) {
		fields["scheduled_end"] = "must not be before scheduled_start"
	}
	if len(fields) > 0 {
		return entities.Job{}, invalid(fields)
	}

	now := u.now()
	job := entities.Job{
		ID:             u.newID(),
		TenantID:       id.TenantID,
		CustomerID:     in.CustomerID,
		PropertyID:     in.PropertyID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Status:         entities.JobStatusNew,
		Priority:       in.Priority,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		AssignedTo:     in.AssignedTo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i, l := range in.LineItems {
		job.LineItems = append(job.LineItems, u.newLine(l, id.TenantID, entities.LineParentJob, job.ID, i, now))
	}
	job = finance.DeriveJob(job)

	err = u.tx(ctx, "create job", id, func(tx interfaces.IDocumentRepository) error {
		if _, err := activeCustomer(ctx, tx, id.TenantID, in.CustomerID); err != nil {
			return err
		}
		if err := ownedProperty(ctx, tx, id.TenantID, in.CustomerID, in.PropertyID); err != nil {
			return err
		}
		number, err := nextNumber(ctx, tx, id.TenantID, interfaces.SequenceJob, "JOB")
		if err != nil {
			return err
		}
		job.Number = number
		if err := tx.CreateJob(ctx, job); err != nil {
			return err
		}
		for _, l := range job.LineItems {
			if err := tx.AddLineItem(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Job{}, err
	}
	u.record(ctx, id, entities.EntityJob, job.ID, "created", map[string]string{"number": job.Number})
	if job.AssignedTo != nil {
		u.notifyAssigned(ctx, id, job)
	}
	return job, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	var job entities.Job
	err = u.read(ctx, "get job", id, func(r interfaces.IDocumentRepository) error {
		var err error
		job, err = r.GetJob(ctx, id.TenantID, jobID, false)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if err := u.authorize(id, permissions.ResourceJobs, permissions.ActionRead); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

// ListJobs doubles as the schedule view when ScheduledFrom/ScheduledTo are set.
func (u *JobUseCase) ListJobs(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
	id, err := u.begin(ctx, permissions.ResourceJobs, permissions.ActionRead)
	if err != nil {
		return nil, err
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalidField("status", "unknown job status")
	}
	var out []entities.Job
	err = u.read(ctx, "list jobs", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListJobs(ctx, id.TenantID, f)
		return err
	})
	return out, err
}

func (u *JobUseCase) ChangeJobStatus(ctx context.Context, jobID string, target entities.JobStatus) (entities.Job, error) {
	var bad error
	if !target.Valid() {
		bad = invalidField("status", "unknown job status")
	}
	var from entities.JobStatus
	id, job, err := u.mutate(ctx, "change job status", jobID, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, _ tenant.Identity, job *entities.Job) error {
			from = job.Status
			if err := job.TransitionTo(target, u.now()); err != nil {
				return err
			}
			return tx.UpdateJob(ctx, *job)
		})
	if err != nil {
		return entities.Job{}, err
	}
	u.record(ctx, id, entities.EntityJob, job.ID, "status_changed", map[string]string{
		"from": string(from),
		"to":   string(job.Status),
	})
	return job, nil
}

// AssignJob sets or clears the technician. A non-nil technician is notified after commit.
func (u *JobUseCase) AssignJob(ctx context.Context, jobID string, technicianID *string) (entities.Job, error) {
	var bad error
	if technicianID != nil && strings.TrimSpace(*technicianID) == "" {
		bad = invalidField("technician_id", "must not be blank")
	}
	id, job, err := u.mutate(ctx, "assign job", jobID, permissions.ActionManage, bad,
		func(tx interfaces.IDocumentRepository, _ tenant.Identity, job *entities.Job) error {
			job.AssignedTo = technicianID
			job.UpdatedAt = u.now()
			return tx.UpdateJob(ctx, *job)
		})
	if err != nil {
		return entities.Job{}, err
	}

	detail := map[string]string{"assigned_to": ""}
	if technicianID != nil {
		detail["assigned_to"] = *technicianID
	}
	u.record(ctx, id, entities.EntityJob, job.ID, "assigned", detail)
	if technicianID != nil {
		u.notifyAssigned(ctx, id, job)
	}
	return job, nil
}

func (u *JobUseCase) notifyAssigned(ctx context.Context, id tenant.Identity, job entities.Job) {
	u.notify(ctx, interfaces.Notification{
		Kind:        interfaces.NotificationJobAssigned,
		TenantID:    id.TenantID,
		RecipientID: *job.AssignedTo,
		EntityType:  string(entities.EntityJob),
		EntityID:    job.ID,
		Title:       "New job assigned: " + job.Title,
		Data:        map[string]string{"number": job.Number},
	})
}

func (u *JobUseCase) AddJobLineItem(ctx context.Context, jobID string, in LineItemInput) (entities.Job, error) {
	var bad error
	if fields := validateLine(in, ""); len(fields) > 0 {
		bad = invalid(fields)
	}
	var added entities.LineItem
	id, job, err := u.mutate(ctx, "add job line item", jobID, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error {
			now := u.now()
			added = u.newLine(in, id.TenantID, entities.LineParentJob, job.ID, len(job.LineItems), now)
			if err := tx.AddLineItem(ctx, added); err != nil {
				return err
			}
			job.LineItems = append(job.LineItems, added)
			*job = finance.DeriveJob(*job)
			job.UpdatedAt = now
			return tx.UpdateJob(ctx, *job)
		})
	if err != nil {
		return entities.Job{}, err
	}
	u.record(ctx, id, entities.EntityJob, job.ID, "line_item_added", map[string]string{
		"line_item_id": added.ID,
		"total_amount": job.TotalAmount.StringFixed(2),
	})
	return job, nil
}

func (u *JobUseCase) RemoveJobLineItem(ctx context.Context, jobID, lineID string) (entities.Job, error) {
	id, job, err := u.mutate(ctx, "remove job line item", jobID, permissions.ActionUpdate, nil,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error {
			lines, found := removeLine(job.LineItems, lineID)
			if !found {
				return ErrLineItemNotFound
			}
			if err := tx.DeleteLineItem(ctx, id.TenantID, lineID); err != nil {
				return err
			}
			job.LineItems = lines
			*job = finance.DeriveJob(*job)
			job.UpdatedAt = u.now()
			return tx.UpdateJob(ctx, *job)
		})
	if err != nil {
		return entities.Job{}, err
	}
	u.record(ctx, id, entities.EntityJob, job.ID, "line_item_removed", map[string]string{
		"line_item_id": lineID,
		"total_amount": job.TotalAmount.StringFixed(2),
	})
	return job, nil
}

func (u *JobUseCase) AddJobNote(ctx context.Context, jobID, body string) (entities.JobNote, error) {
	var bad error
	if strings.TrimSpace(body) == "" {
		bad = invalidField("body", "required")
	}
	var note entities.JobNote
	id, _, err := u.mutate(ctx, "add job note", jobID, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error {
			note = entities.JobNote{
				ID:        u.newID(),
				TenantID:  id.TenantID,
				JobID:     job.ID,
				AuthorID:  id.UserID,
				Body:      strings.TrimSpace(body),
				CreatedAt: u.now(),
			}
			return tx.AddJobNote(ctx, note)
		})
	if err != nil {
		return entities.JobNote{}, err
	}
	u.record(ctx, id, entities.EntityJob, jobID, "note_added", map[string]string{"note_id": note.ID})
	return note, nil
}

// AddJobPhoto stores the object-store path of an uploaded photo.
func (u *JobUseCase) AddJobPhoto(ctx context.Context, jobID, path, caption string) (entities.JobPhoto, error) {
	var bad error
	if strings.TrimSpace(path) == "" {
		bad = invalidField("path", "required")
	}
	var photo entities.JobPhoto
	id, _, err := u.mutate(ctx, "add job photo", jobID, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error {
			photo = entities.JobPhoto{
				ID:         u.newID(),
				TenantID:   id.TenantID,
				JobID:      job.ID,
				Path:       strings.TrimSpace(path),
				Caption:    caption,
				UploadedBy: id.UserID,
				CreatedAt:  u.now(),
			}
			return tx.AddJobPhoto(ctx, photo)
		})
	if err != nil {
		return entities.JobPhoto{}, err
	}
	u.record(ctx, id, entities.EntityJob, jobID, "photo_added", map[string]string{"path": photo.Path})
	return photo, nil
}

func (u *JobUseCase) AddJobSignature(ctx context.Context, jobID, path, signerName string) (entities.JobSignature, error) {
	fields := map[string]string{}
	if strings.TrimSpace(path) == "" {
		fields["path"] = "required"
	}
	if strings.TrimSpace(signerName) == "" {
		fields["signer_name"] = "required"
	}
	var bad error
	if len(fields) > 0 {
		bad = invalid(fields)
	}
	var sig entities.JobSignature
	id, _, err := u.mutate(ctx, "add job signature", jobID, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, job *entities.Job) error {
			sig = entities.JobSignature{
				ID:         u.newID(),
				TenantID:   id.TenantID,
				JobID:      job.ID,
				Path:       strings.TrimSpace(path),
				SignerName: strings.TrimSpace(signerName),
				CapturedBy: id.UserID,
				CreatedAt:  u.now(),
			}
			return tx.AddJobSignature(ctx, sig)
		})
	if err != nil {
		return entities.JobSignature{}, err
	}
	u.record(ctx, id, entities.EntityJob, jobID, "signature_added", map[string]string{"signer_name": sig.SignerName})
	return sig, nil
}

// TransitionTable exposes the job status rules for client-side mirrors.
func (u *JobUseCase) TransitionTable() map[entities.JobStatus][]entities.JobStatus {
	return entities.JobTransitionTable()
}

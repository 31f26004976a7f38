package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobStatusNew        JobStatus = "new"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusDispatched JobStatus = "dispatched"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCanceled   JobStatus = "canceled"
)

// JobStatuses lists every job status in lifecycle order.
func JobStatuses() []JobStatus {
	return []JobStatus{
		JobStatusNew, JobStatusScheduled, JobStatusDispatched,
		JobStatusInProgress, JobStatusCompleted, JobStatusCanceled,
	}
}

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// jobTransitions is the single table of legal job status changes.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusNew:        {JobStatusScheduled, JobStatusCanceled},
	JobStatusScheduled:  {JobStatusDispatched, JobStatusNew, JobStatusCanceled},
	JobStatusDispatched: {JobStatusInProgress, JobStatusScheduled, JobStatusCanceled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusDispatched},
	JobStatusCompleted:  {},
	JobStatusCanceled:   {JobStatusNew},
}

func CanTransitionJob(from, to JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// JobTransitionTable returns a copy of the transition table for client mirrors.
func JobTransitionTable() map[JobStatus][]JobStatus {
	out := make(map[JobStatus][]JobStatus, len(jobTransitions))
	for from, targets := range jobTransitions {
		out[from] = append([]JobStatus{}, targets...)
	}
	return out
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityNormal JobPriority = "normal"
	JobPriorityHigh   JobPriority = "high"
	JobPriorityUrgent JobPriority = "urgent"
)

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityNormal, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}

// Job is a unit of field work owned by one customer and property.
//
// DispatchedAt and CompletedAt are set the first time the job enters the
// matching status and are kept across any later regression.
type Job struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	Number         string          `json:"number"`
	CustomerID     string          `json:"customer_id"`
	PropertyID     string          `json:"property_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Status         JobStatus       `json:"status"`
	Priority       JobPriority     `json:"priority"`
	ScheduledStart *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time      `json:"scheduled_end,omitempty"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	DispatchedAt   *time.Time      `json:"dispatched_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	LineItems  []LineItem     `json:"line_items"`
	Notes      []JobNote      `json:"notes"`
	Photos     []JobPhoto     `json:"photos"`
	Signatures []JobSignature `json:"signatures"`
}

// TransitionTo moves the job to target, stamping dispatch/completion times.
// On an illegal pair the job is left untouched and a *TransitionError is returned.
func (j *Job) TransitionTo(target JobStatus, now time.Time) error {
	if !CanTransitionJob(j.Status, target) {
		return &TransitionError{Entity: "job", From: string(j.Status), To: string(target)}
	}
	j.Status = target
	switch target {
	case JobStatusDispatched:
		if j.DispatchedAt == nil {
			j.DispatchedAt = stamp(now)
		}
	case JobStatusCompleted:
		if j.CompletedAt == nil {
			j.CompletedAt = stamp(now)
		}
	}
	j.UpdatedAt = now
	return nil
}

type JobNote struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	JobID     string    `json:"job_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// JobPhoto references a blob in the object store; only its path is kept here.
type JobPhoto struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	JobID      string    `json:"job_id"`
	Path       string    `json:"path"`
	Caption    string    `json:"caption,omitempty"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobSignature struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	JobID      string    `json:"job_id"`
	Path       string    `json:"path"`
	SignerName string    `json:"signer_name"`
	CapturedBy string    `json:"captured_by"`
	CreatedAt  time.Time `json:"created_at"`
}

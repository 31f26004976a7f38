package entities

import (
	"errors"
	"testing"
	"time"
)

func TestJobTransitions_Exhaustive(t *testing.T) {
	legal := map[[2]JobStatus]bool{
		{JobStatusNew, JobStatusScheduled}:         true,
		{JobStatusNew, JobStatusCanceled}:          true,
		{JobStatusScheduled, JobStatusDispatched}:  true,
		{JobStatusScheduled, JobStatusNew}:         true,
		{JobStatusScheduled, JobStatusCanceled}:    true,
		{JobStatusDispatched, JobStatusInProgress}: true,
		{JobStatusDispatched, JobStatusScheduled}:  true,
		{JobStatusDispatched, JobStatusCanceled}:   true,
		{JobStatusInProgress, JobStatusCompleted}:  true,
		{JobStatusInProgress, JobStatusDispatched}: true,
		{JobStatusCanceled, JobStatusNew}:          true,
	}

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, from := range JobStatuses() {
		for _, to := range JobStatuses() {
			j := Job{ID: "job-1", Status: from}
			err := j.TransitionTo(to, now)

			if legal[[2]JobStatus{from, to}] {
				if err != nil {
					t.Fatalf("%s -> %s: unexpected error %v", from, to, err)
				}
				if j.Status != to {
					t.Fatalf("%s -> %s: status not applied", from, to)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
			}
			if j.Status != from {
				t.Fatalf("%s -> %s: status changed to %s on rejection", from, to, j.Status)
			}
			var te *TransitionError
			if !errors.As(err, &te) || te.Pair() != string(from)+" -> "+string(to) {
				t.Fatalf("%s -> %s: unexpected transition error %v", from, to, err)
			}
		}
	}
}

func TestJob_CompletedRejectsInProgress(t *testing.T) {
	j := Job{Status: JobStatusCompleted}
	if err := j.TransitionTo(JobStatusInProgress, time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if j.Status != JobStatusCompleted {
		t.Fatalf("status must stay completed, got %s", j.Status)
	}
}

func TestJob_StampsAreMonotonic(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	j := Job{Status: JobStatusScheduled}

	if err := j.TransitionTo(JobStatusDispatched, t0); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if j.DispatchedAt == nil || !j.DispatchedAt.Equal(t0) {
		t.Fatalf("expected dispatchedAt stamped at %v, got %v", t0, j.DispatchedAt)
	}

	if err := j.TransitionTo(JobStatusScheduled, t0.Add(time.Hour)); err != nil {
		t.Fatalf("regress: %v", err)
	}
	if j.DispatchedAt == nil || !j.DispatchedAt.Equal(t0) {
		t.Fatalf("regression must keep dispatchedAt, got %v", j.DispatchedAt)
	}

	if err := j.TransitionTo(JobStatusDispatched, t0.Add(2*time.Hour)); err != nil {
		t.Fatalf("re-dispatch: %v", err)
	}
	if !j.DispatchedAt.Equal(t0) {
		t.Fatalf("re-dispatch must keep first stamp, got %v", j.DispatchedAt)
	}

	_ = j.TransitionTo(JobStatusInProgress, t0.Add(3*time.Hour))
	done := t0.Add(4 * time.Hour)
	if err := j.TransitionTo(JobStatusCompleted, done); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if j.CompletedAt == nil || !j.CompletedAt.Equal(done) {
		t.Fatalf("expected completedAt %v, got %v", done, j.CompletedAt)
	}
}

func TestJobTransitionTable_IsACopy(t *testing.T) {
	table := JobTransitionTable()
	table[JobStatusCompleted] = append(table[JobStatusCompleted], JobStatusNew)

	if CanTransitionJob(JobStatusCompleted, JobStatusNew) {
		t.Fatalf("mutating the returned table must not change the rules")
	}
	if len(table) != len(JobStatuses()) {
		t.Fatalf("expected %d statuses, got %d", len(JobStatuses()), len(table))
	}
}

func TestJobStatus_Valid(t *testing.T) {
	if !JobStatusInProgress.Valid() {
		t.Fatalf("in_progress must be valid")
	}
	if JobStatus("paused").Valid() {
		t.Fatalf("paused must be invalid")
	}
}

package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newEstimate(status EstimateStatus) Estimate {
	return Estimate{
		ID:     "est-1",
		Status: status,
		Options: []EstimateOption{
			{ID: "opt-a", EstimateID: "est-1", Total: decimal.RequireFromString("100.00")},
			{ID: "opt-b", EstimateID: "est-1", Total: decimal.RequireFromString("250.50")},
		},
	}
}

func TestEstimate_Send(t *testing.T) {
	now := time.Now().UTC()

	e := newEstimate(EstimateStatusDraft)
	if err := e.Send(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != EstimateStatusSent || e.SentAt == nil {
		t.Fatalf("expected sent with sentAt, got %s %v", e.Status, e.SentAt)
	}

	if err := e.Send(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second send must fail, got %v", err)
	}
}

func TestEstimate_Approve(t *testing.T) {
	now := time.Now().UTC()

	t.Run("sent", func(t *testing.T) {
		e := newEstimate(EstimateStatusSent)
		if err := e.Approve("opt-b", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != EstimateStatusApproved || e.ApprovedAt == nil {
			t.Fatalf("expected approved, got %s", e.Status)
		}
		if e.ApprovedOptionID == nil || *e.ApprovedOptionID != "opt-b" {
			t.Fatalf("unexpected approved option %v", e.ApprovedOptionID)
		}
		if e.TotalAmount == nil || !e.TotalAmount.Equal(decimal.RequireFromString("250.50")) {
			t.Fatalf("unexpected total %v", e.TotalAmount)
		}
	})

	t.Run("viewed", func(t *testing.T) {
		e := newEstimate(EstimateStatusViewed)
		if err := e.Approve("opt-a", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("foreign option", func(t *testing.T) {
		e := newEstimate(EstimateStatusSent)
		if err := e.Approve("opt-other", now); !errors.Is(err, ErrOptionNotFound) {
			t.Fatalf("expected ErrOptionNotFound, got %v", err)
		}
		if e.ApprovedOptionID != nil || e.TotalAmount != nil || e.Status != EstimateStatusSent {
			t.Fatalf("estimate must be untouched: %+v", e)
		}
	})

	t.Run("draft", func(t *testing.T) {
		e := newEstimate(EstimateStatusDraft)
		if err := e.Approve("opt-a", now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestEstimate_DeclineExpireViewed(t *testing.T) {
	now := time.Now().UTC()

	e := newEstimate(EstimateStatusSent)
	if err := e.MarkViewed(now); err != nil || e.Status != EstimateStatusViewed {
		t.Fatalf("mark viewed: %v %s", err, e.Status)
	}
	if err := e.MarkViewed(now); err != nil {
		t.Fatalf("repeat mark viewed must be a no-op, got %v", err)
	}
	if err := e.Decline(now); err != nil || e.DeclinedAt == nil {
		t.Fatalf("decline: %v", err)
	}
	if e.Editable() {
		t.Fatalf("declined estimate must not be editable")
	}
	if err := e.Expire(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expire after decline must fail, got %v", err)
	}

	d := newEstimate(EstimateStatusDraft)
	if err := d.MarkViewed(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft cannot be viewed, got %v", err)
	}
	if err := d.Decline(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft cannot be declined, got %v", err)
	}

	x := newEstimate(EstimateStatusViewed)
	if err := x.Expire(now); err != nil || x.Status != EstimateStatusExpired {
		t.Fatalf("expire: %v", err)
	}
}

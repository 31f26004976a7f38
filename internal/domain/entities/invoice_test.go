package entities

import (
	"errors"
	"testing"
	"time"
)

func TestInvoice_SendAndView(t *testing.T) {
	now := time.Now().UTC()
	inv := Invoice{Status: InvoiceStatusDraft}

	if err := inv.MarkViewed(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft cannot be viewed, got %v", err)
	}
	if err := inv.Send(now); err != nil || inv.SentAt == nil {
		t.Fatalf("send: %v", err)
	}
	if err := inv.Send(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("send twice must fail, got %v", err)
	}
	if err := inv.MarkViewed(now); err != nil || inv.Status != InvoiceStatusViewed {
		t.Fatalf("viewed: %v %s", err, inv.Status)
	}
}

func TestInvoice_Void(t *testing.T) {
	now := time.Now().UTC()

	for _, s := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusViewed, InvoiceStatusPartial} {
		inv := Invoice{Status: s}
		if err := inv.Void(now); err != nil {
			t.Fatalf("void from %s: %v", s, err)
		}
		if inv.Status != InvoiceStatusVoid || inv.VoidedAt == nil {
			t.Fatalf("void from %s not applied", s)
		}
		if !errors.Is(inv.AcceptsChanges(), ErrInvoiceVoided) {
			t.Fatalf("voided invoice must reject changes")
		}
	}

	paid := Invoice{Status: InvoiceStatusPaid}
	if err := paid.Void(now); !errors.Is(err, ErrInvoicePaid) {
		t.Fatalf("expected ErrInvoicePaid, got %v", err)
	}
	if paid.Status != InvoiceStatusPaid || paid.VoidedAt != nil {
		t.Fatalf("paid invoice must be untouched")
	}

	void := Invoice{Status: InvoiceStatusVoid}
	if err := void.Void(now); !errors.Is(err, ErrInvoiceVoided) {
		t.Fatalf("expected ErrInvoiceVoided, got %v", err)
	}
}

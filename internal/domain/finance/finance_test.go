package finance

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(qty, price string) entities.LineItem {
	return entities.LineItem{Quantity: d(qty), UnitPrice: d(price), Type: entities.LineItemService}
}

func succeeded(amount string) entities.Payment {
	return entities.Payment{Amount: d(amount), Status: entities.PaymentStatusSucceeded}
}

func assertMoney(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Fatalf("%s: expected %s, got %s", name, want, got.StringFixed(2))
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	cases := map[string]string{
		"1.005":  "1.01",
		"1.004":  "1.00",
		"-1.005": "-1.01",
		"2.675":  "2.68",
		"10":     "10.00",
	}
	for in, want := range cases {
		assertMoney(t, in, Round2(d(in)), want)
	}
}

func TestSummarize_RoundsPerLine(t *testing.T) {
	lines := []entities.LineItem{line("3", "0.335"), line("3", "0.335")}
	got := Summarize(lines, d("0"))
	// 3 * 0.335 = 1.005 -> 1.01 per line
	assertMoney(t, "subtotal", got.Subtotal, "2.02")
}

func TestDeriveInvoice_Scenario(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		Status:    entities.InvoiceStatusSent,
		TaxRate:   d("0.08"),
		DueDate:   now.Add(30 * 24 * time.Hour),
		LineItems: []entities.LineItem{line("2", "50.00"), line("1", "25.00")},
	}

	inv = DeriveInvoice(inv, nil, now)
	assertMoney(t, "subtotal", inv.Subtotal, "125.00")
	assertMoney(t, "tax", inv.TaxAmount, "10.00")
	assertMoney(t, "total", inv.Total, "135.00")
	assertMoney(t, "balance", inv.BalanceDue, "135.00")
	if inv.Status != entities.InvoiceStatusSent {
		t.Fatalf("expected sent, got %s", inv.Status)
	}
	assertMoney(t, "line 0", inv.LineItems[0].Total, "100.00")

	payments := []entities.Payment{succeeded("60.00")}
	inv = DeriveInvoice(inv, payments, now)
	assertMoney(t, "paid", inv.AmountPaid, "60.00")
	assertMoney(t, "balance", inv.BalanceDue, "75.00")
	if inv.Status != entities.InvoiceStatusPartial {
		t.Fatalf("expected partial, got %s", inv.Status)
	}
	if inv.PaidAt != nil {
		t.Fatalf("partial invoice must not carry paidAt")
	}

	payments = append(payments, succeeded("75.00"))
	inv = DeriveInvoice(inv, payments, now)
	assertMoney(t, "balance", inv.BalanceDue, "0.00")
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", inv.Status)
	}
	if inv.PaidAt == nil || !inv.PaidAt.Equal(now) {
		t.Fatalf("expected paidAt stamped, got %v", inv.PaidAt)
	}
}

func TestDeriveInvoice_Idempotent(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		Status:    entities.InvoiceStatusViewed,
		TaxRate:   d("0.0725"),
		LineItems: []entities.LineItem{line("1.5", "19.99"), line("4", "3.333")},
	}
	payments := []entities.Payment{succeeded("10.00")}

	once := DeriveInvoice(inv, payments, now)
	twice := DeriveInvoice(once, payments, now.Add(time.Hour))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("derivation not idempotent:\n%+v\n%+v", once, twice)
	}
}

func TestDeriveInvoice_DoesNotMutateInput(t *testing.T) {
	lines := []entities.LineItem{line("2", "10")}
	inv := entities.Invoice{Status: entities.InvoiceStatusSent, LineItems: lines}

	_ = DeriveInvoice(inv, nil, time.Now())
	if !lines[0].Total.IsZero() {
		t.Fatalf("input line items were mutated")
	}
}

func TestDeriveInvoice_PaymentOrderIndependent(t *testing.T) {
	now := time.Now().UTC()
	inv := entities.Invoice{
		Status:    entities.InvoiceStatusSent,
		TaxRate:   d("0.08"),
		LineItems: []entities.LineItem{line("2", "50.00"), line("1", "25.00")},
	}
	a := []entities.Payment{succeeded("10.10"), succeeded("20.20"), succeeded("30.30")}
	b := []entities.Payment{a[2], a[0], a[1]}

	x := DeriveInvoice(inv, a, now)
	y := DeriveInvoice(inv, b, now)
	if !x.BalanceDue.Equal(y.BalanceDue) || !x.AmountPaid.Equal(y.AmountPaid) {
		t.Fatalf("order changed result: %s vs %s", x.BalanceDue, y.BalanceDue)
	}
	assertMoney(t, "balance", x.BalanceDue, "74.40")
}

func TestDeriveInvoice_StatusRules(t *testing.T) {
	now := time.Now().UTC()
	base := entities.Invoice{TaxRate: d("0"), LineItems: []entities.LineItem{line("1", "100")}}

	t.Run("draft stays draft with payments", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusDraft
		got := DeriveInvoice(inv, []entities.Payment{succeeded("100")}, now)
		if got.Status != entities.InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", got.Status)
		}
		assertMoney(t, "balance", got.BalanceDue, "0")
	})

	t.Run("void stays void", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusVoid
		if got := DeriveInvoice(inv, []entities.Payment{succeeded("20")}, now); got.Status != entities.InvoiceStatusVoid {
			t.Fatalf("expected void, got %s", got.Status)
		}
	})

	t.Run("only succeeded payments count", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusSent
		payments := []entities.Payment{
			{Amount: d("50"), Status: entities.PaymentStatusPending},
			{Amount: d("50"), Status: entities.PaymentStatusFailed},
			{Amount: d("50"), Status: entities.PaymentStatusRefunded},
		}
		got := DeriveInvoice(inv, payments, now)
		assertMoney(t, "paid", got.AmountPaid, "0")
		if got.Status != entities.InvoiceStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("overpayment goes negative", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusSent
		got := DeriveInvoice(inv, []entities.Payment{succeeded("120")}, now)
		assertMoney(t, "balance", got.BalanceDue, "-20")
		if got.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("paid reverts to partial when a line is added", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusPaid
		paidAt := now
		inv.PaidAt = &paidAt
		inv.LineItems = append(entities.CloneLines(base.LineItems), line("1", "10"))
		got := DeriveInvoice(inv, []entities.Payment{succeeded("100")}, now)
		if got.Status != entities.InvoiceStatusPartial || got.PaidAt != nil {
			t.Fatalf("expected partial without paidAt, got %s %v", got.Status, got.PaidAt)
		}
	})

	t.Run("partial with no payments reverts to sent", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusPartial
		if got := DeriveInvoice(inv, nil, now); got.Status != entities.InvoiceStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("paid with no payments reverts to viewed once viewed", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusPaid
		viewedAt := now.Add(-time.Hour)
		inv.ViewedAt = &viewedAt
		got := DeriveInvoice(inv, []entities.Payment{{Amount: d("100"), Status: entities.PaymentStatusRefunded}}, now)
		if got.Status != entities.InvoiceStatusViewed || got.PaidAt != nil {
			t.Fatalf("expected viewed without paidAt, got %s %v", got.Status, got.PaidAt)
		}
	})

	t.Run("viewed without payments stays viewed", func(t *testing.T) {
		inv := base
		inv.Status = entities.InvoiceStatusViewed
		if got := DeriveInvoice(inv, nil, now); got.Status != entities.InvoiceStatusViewed {
			t.Fatalf("expected viewed, got %s", got.Status)
		}
	})
}

func TestEffectiveInvoiceStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name    string
		status  entities.InvoiceStatus
		due     time.Time
		balance string
		want    entities.InvoiceStatus
	}{
		{"sent past due", entities.InvoiceStatusSent, past, "10", entities.InvoiceStatusOverdue},
		{"viewed past due", entities.InvoiceStatusViewed, past, "10", entities.InvoiceStatusOverdue},
		{"partial past due", entities.InvoiceStatusPartial, past, "10", entities.InvoiceStatusOverdue},
		{"sent not due", entities.InvoiceStatusSent, future, "10", entities.InvoiceStatusSent},
		{"paid past due", entities.InvoiceStatusPaid, past, "0", entities.InvoiceStatusPaid},
		{"draft past due", entities.InvoiceStatusDraft, past, "10", entities.InvoiceStatusDraft},
		{"void past due", entities.InvoiceStatusVoid, past, "10", entities.InvoiceStatusVoid},
		{"sent zero balance", entities.InvoiceStatusSent, past, "0", entities.InvoiceStatusSent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := entities.Invoice{Status: tc.status, DueDate: tc.due, BalanceDue: d(tc.balance)}
			if got := EffectiveInvoiceStatus(inv, now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDeriveJob(t *testing.T) {
	job := entities.Job{LineItems: []entities.LineItem{line("2", "12.50"), line("0.5", "80")}}
	got := DeriveJob(job)
	assertMoney(t, "total", got.TotalAmount, "65.00")
	if !job.LineItems[0].Total.IsZero() {
		t.Fatalf("input job was mutated")
	}
}

func TestDeriveEstimate(t *testing.T) {
	approved := "opt-b"
	est := entities.Estimate{
		TaxRate: d("0.10"),
		Options: []entities.EstimateOption{
			{ID: "opt-a", LineItems: []entities.LineItem{line("1", "100")}},
			{ID: "opt-b", LineItems: []entities.LineItem{line("2", "100")}},
		},
	}

	pre := DeriveEstimate(est)
	if pre.TotalAmount != nil {
		t.Fatalf("total must be nil before approval")
	}
	assertMoney(t, "opt-a total", pre.Options[0].Total, "110.00")
	assertMoney(t, "opt-b tax", pre.Options[1].TaxAmount, "20.00")

	est.ApprovedOptionID = &approved
	post := DeriveEstimate(est)
	if post.TotalAmount == nil {
		t.Fatalf("expected total after approval")
	}
	assertMoney(t, "estimate total", *post.TotalAmount, "220.00")
	if est.Options[0].Total.IsPositive() {
		t.Fatalf("input estimate options were mutated")
	}
}

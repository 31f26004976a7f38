package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"
)

var dueLater = testNow.Add(14 * 24 * time.Hour)

func cash(amount string) PaymentInput {
	return PaymentInput{Amount: dec(amount), Method: entities.PaymentMethodCash}
}

func TestInvoiceUseCase_PaymentScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	f := newFixture(t, nil, withNotifier(notifier))
	ctx := as(tenant.RoleCSR)
	inv := f.seedSentInvoice(t, ctx, dueLater)

	expectMoney(t, "subtotal", inv.Subtotal, "125")
	expectMoney(t, "tax", inv.TaxAmount, "10")
	expectMoney(t, "total", inv.Total, "135")
	if inv.Status != entities.InvoiceStatusSent || inv.SentAt == nil {
		t.Fatalf("expected sent invoice, got %s", inv.Status)
	}

	p, inv, err := f.invoices.RecordPayment(ctx, inv.ID, cash("60"))
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if p.Status != entities.PaymentStatusSucceeded || p.RecordedBy != "user-csr" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if inv.Status != entities.InvoiceStatusPartial {
		t.Fatalf("expected partial, got %s", inv.Status)
	}
	expectMoney(t, "amount paid", inv.AmountPaid, "60")
	expectMoney(t, "balance", inv.BalanceDue, "75")

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n interfaces.Notification) error {
		if n.Kind != interfaces.NotificationInvoicePaid || n.EntityID != inv.ID {
			t.Fatalf("unexpected notification: %+v", n)
		}
		return nil
	}).Times(1)

	_, inv, err = f.invoices.RecordPayment(ctx, inv.ID, cash("75"))
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid || inv.PaidAt == nil {
		t.Fatalf("expected paid with paid_at, got %s %v", inv.Status, inv.PaidAt)
	}
	expectMoney(t, "balance", inv.BalanceDue, "0")

	got, err := f.invoices.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Payments) != 2 {
		t.Fatalf("expected two payments, got %d", len(got.Payments))
	}

	// still paid after an overpayment: no second notification
	_, inv, err = f.invoices.RecordPayment(ctx, inv.ID, cash("5"))
	if err != nil {
		t.Fatalf("overpayment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", inv.Status)
	}
	expectMoney(t, "balance", inv.BalanceDue, "-5")
}

func TestInvoiceUseCase_LineItemOnPaidInvoice(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)
	inv := f.seedSentInvoice(t, ctx, dueLater)
	if _, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("135")); err != nil {
		t.Fatalf("pay: %v", err)
	}

	inv, err := f.invoices.AddInvoiceLineItem(ctx, inv.ID, line("Callout fee", "1", "10"))
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	expectMoney(t, "total", inv.Total, "145.80")
	expectMoney(t, "balance", inv.BalanceDue, "10.80")
	if inv.Status != entities.InvoiceStatusPartial || inv.PaidAt != nil {
		t.Fatalf("expected partial without paid_at, got %s %v", inv.Status, inv.PaidAt)
	}

	inv, err = f.invoices.RemoveInvoiceLineItem(ctx, inv.ID, inv.LineItems[2].ID)
	if err != nil {
		t.Fatalf("remove line: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid again, got %s", inv.Status)
	}
}

func TestInvoiceUseCase_Void(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleOfficeManager)

	t.Run("paid invoices cannot be voided", func(t *testing.T) {
		inv := f.seedSentInvoice(t, ctx, dueLater)
		if _, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("100")); err != nil {
			t.Fatalf("pay: %v", err)
		}
		if _, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("35")); err != nil {
			t.Fatalf("pay: %v", err)
		}
		if _, err := f.invoices.VoidInvoice(ctx, inv.ID); !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected already paid, got %v", err)
		}
		payments, err := f.invoices.ListPayments(ctx, inv.ID)
		if err != nil {
			t.Fatalf("list payments: %v", err)
		}
		if len(payments) != 2 {
			t.Fatalf("payments must be untouched, got %d", len(payments))
		}
		got, _ := f.invoices.GetInvoice(ctx, inv.ID)
		if got.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("void is final", func(t *testing.T) {
		inv := f.seedSentInvoice(t, ctx, dueLater)
		if _, err := f.invoices.VoidInvoice(as(tenant.RoleCSR), inv.ID); KindOf(err) != KindForbidden {
			t.Fatalf("expected forbidden for csr, got %v", err)
		}
		voided, err := f.invoices.VoidInvoice(ctx, inv.ID)
		if err != nil {
			t.Fatalf("void: %v", err)
		}
		if voided.Status != entities.InvoiceStatusVoid || voided.VoidedAt == nil {
			t.Fatalf("expected void, got %s", voided.Status)
		}
		if _, err := f.invoices.VoidInvoice(ctx, inv.ID); !errors.Is(err, ErrInvoiceVoid) {
			t.Fatalf("expected void conflict, got %v", err)
		}
		if _, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("10")); !errors.Is(err, ErrInvoiceVoid) {
			t.Fatalf("expected void conflict on payment, got %v", err)
		}
		if _, err := f.invoices.AddInvoiceLineItem(ctx, inv.ID, line("X", "1", "1")); !errors.Is(err, ErrInvoiceVoid) {
			t.Fatalf("expected void conflict on line item, got %v", err)
		}
		if _, err := f.invoices.SendInvoice(ctx, inv.ID); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected illegal transition, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Overdue(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)
	late := f.seedSentInvoice(t, ctx, testNow.Add(-24*time.Hour))
	onTime := f.seedSentInvoice(t, ctx, dueLater)

	got, err := f.invoices.GetInvoice(ctx, late.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != entities.InvoiceStatusOverdue {
		t.Fatalf("expected overdue, got %s", got.Status)
	}

	// overdue is never stored
	err = f.store.Read(context.Background(), func(r interfaces.IDocumentRepository) error {
		stored, err := r.GetInvoice(context.Background(), "tenant-a", late.ID, false)
		if err != nil {
			return err
		}
		if stored.Status != entities.InvoiceStatusSent {
			t.Fatalf("expected stored status sent, got %s", stored.Status)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	overdue, err := f.invoices.ListInvoices(ctx, interfaces.InvoiceFilter{Status: entities.InvoiceStatusOverdue})
	if err != nil {
		t.Fatalf("list overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Fatalf("expected only the late invoice, got %+v", overdue)
	}
	sent, err := f.invoices.ListInvoices(ctx, interfaces.InvoiceFilter{Status: entities.InvoiceStatusSent})
	if err != nil {
		t.Fatalf("list sent: %v", err)
	}
	if len(sent) != 1 || sent[0].ID != onTime.ID {
		t.Fatalf("expected only the on-time invoice as sent, got %+v", sent)
	}

	// a partial payment keeps it overdue; settling it clears the view
	_, partial, err := f.invoices.RecordPayment(ctx, late.ID, cash("35"))
	if err != nil {
		t.Fatalf("partial payment: %v", err)
	}
	if partial.Status != entities.InvoiceStatusOverdue {
		t.Fatalf("expected overdue after partial payment, got %s", partial.Status)
	}
	_, paid, err := f.invoices.RecordPayment(ctx, late.ID, cash("100"))
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if paid.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}
}

func TestInvoiceUseCase_ConcurrentPayments(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleCSR)
	inv := f.seedSentInvoice(t, ctx, dueLater)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("13.50"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("payment: %v", err)
		}
	}

	got, err := f.invoices.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Payments) != n {
		t.Fatalf("expected %d payments, got %d", n, len(got.Payments))
	}
	expectMoney(t, "amount paid", got.AmountPaid, "135")
	if got.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", got.Status)
	}
}

func TestInvoiceUseCase_RecordPaymentChecks(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleCSR)
	inv := f.seedSentInvoice(t, ctx, dueLater)
	dispatcher := as(tenant.RoleDispatcher)

	if _, _, err := f.invoices.RecordPayment(dispatcher, "missing", cash("1")); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected not found before permission, got %v", err)
	}
	if _, _, err := f.invoices.RecordPayment(dispatcher, inv.ID, cash("1")); KindOf(err) != KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, _, err := f.invoices.RecordPayment(ctx, inv.ID, cash("0")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	_, _, err := f.invoices.RecordPayment(ctx, inv.ID, PaymentInput{Amount: dec("1"), Method: "barter"})
	expectKind(t, err, KindValidation)
	if FieldsOf(err)["method"] == "" {
		t.Fatalf("expected method field, got %v", FieldsOf(err))
	}
	if _, _, err := f.invoices.RecordPayment(asTenant("tenant-b", tenant.RoleAdmin), inv.ID, cash("1")); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected not found across tenants, got %v", err)
	}

	if _, err := f.invoices.ListPayments(dispatcher, inv.ID); err != nil {
		t.Fatalf("dispatcher can read payments: %v", err)
	}
}

func TestInvoiceUseCase_DraftPayments(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)
	c, _ := f.seedCustomer(t, ctx)
	inv, err := f.invoices.CreateInvoice(ctx, InvoiceInput{CustomerID: c.ID, DueDate: dueLater, LineItems: []LineItemInput{line("Deposit", "1", "50")}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, inv, err = f.invoices.RecordPayment(ctx, inv.ID, cash("50"))
	if err != nil {
		t.Fatalf("pay draft: %v", err)
	}
	if inv.Status != entities.InvoiceStatusDraft {
		t.Fatalf("draft must stay draft, got %s", inv.Status)
	}
	expectMoney(t, "balance", inv.BalanceDue, "0")

	// sending a settled draft lands in paid on the next derivation
	inv, err = f.invoices.SendInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid after send, got %s", inv.Status)
	}
}

func TestInvoiceUseCase_CreateInvoice(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)
	c, _ := f.seedCustomer(t, ctx)

	_, err := f.invoices.CreateInvoice(ctx, InvoiceInput{CustomerID: c.ID, TaxRate: dec("-0.1")})
	expectKind(t, err, KindValidation)
	if fields := FieldsOf(err); fields["due_date"] == "" || fields["tax_rate"] == "" {
		t.Fatalf("expected due_date and tax_rate fields, got %v", fields)
	}

	missing := "nope"
	_, err = f.invoices.CreateInvoice(ctx, InvoiceInput{CustomerID: c.ID, DueDate: dueLater, JobID: &missing})
	expectKind(t, err, KindValidation)
	if FieldsOf(err)["job_id"] == "" {
		t.Fatalf("expected job_id field, got %v", FieldsOf(err))
	}

	if _, err := f.invoices.CreateInvoice(as(tenant.RoleTechnician), InvoiceInput{CustomerID: c.ID, DueDate: dueLater}); err != nil {
		t.Fatalf("technician may create invoices: %v", err)
	}
	if _, err := f.invoices.CreateInvoice(as(tenant.RoleDispatcher), InvoiceInput{CustomerID: c.ID, DueDate: dueLater}); KindOf(err) != KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestInvoiceUseCase_CreateInvoiceFromJob(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)
	j := f.seedJob(t, ctx, line("Labor", "2", "37.50"), line("Filter", "1", "12.35"))

	if _, err := f.invoices.CreateInvoiceFromJob(ctx, "missing", dueLater, dec("0")); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected job not found, got %v", err)
	}
	if _, err := f.invoices.CreateInvoiceFromJob(ctx, j.ID, time.Time{}, dec("0")); KindOf(err) != KindValidation {
		t.Fatalf("expected validation, got %v", err)
	}

	inv, err := f.invoices.CreateInvoiceFromJob(ctx, j.ID, dueLater, dec("0.05"))
	if err != nil {
		t.Fatalf("invoice job: %v", err)
	}
	if inv.JobID == nil || *inv.JobID != j.ID || inv.CustomerID != j.CustomerID {
		t.Fatalf("unexpected links: %+v", inv)
	}
	if len(inv.LineItems) != 2 {
		t.Fatalf("expected copied lines, got %d", len(inv.LineItems))
	}
	expectMoney(t, "subtotal", inv.Subtotal, "87.35")
	expectMoney(t, "tax", inv.TaxAmount, "4.37")
	expectMoney(t, "total", inv.Total, "91.72")

	byJob, err := f.invoices.ListInvoices(ctx, interfaces.InvoiceFilter{JobID: j.ID})
	if err != nil || len(byJob) != 1 {
		t.Fatalf("expected one invoice for the job, got %d (%v)", len(byJob), err)
	}
}

func TestInvoiceUseCase_ListEffectiveStatusPages(t *testing.T) {
	f := newFixture(t, nil)
	ctx := as(tenant.RoleAdmin)

	onTime := f.seedSentInvoice(t, ctx, dueLater)
	f.now = testNow.Add(time.Minute)
	late := f.seedSentInvoice(t, ctx, testNow.Add(-24*time.Hour))
	f.now = testNow.Add(2 * time.Minute)
	c, _ := f.seedCustomer(t, ctx)
	if _, err := f.invoices.CreateInvoice(ctx, InvoiceInput{
		CustomerID: c.ID,
		DueDate:    testNow.Add(-time.Hour),
		LineItems:  []LineItemInput{line("Draft work", "1", "10")},
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	overdue, err := f.invoices.ListInvoices(ctx, interfaces.InvoiceFilter{Status: entities.InvoiceStatusOverdue, Limit: 1})
	if err != nil {
		t.Fatalf("list overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Fatalf("expected the late invoice on the first overdue page, got %+v", overdue)
	}

	sent, err := f.invoices.ListInvoices(ctx, interfaces.InvoiceFilter{Status: entities.InvoiceStatusSent, Limit: 1})
	if err != nil {
		t.Fatalf("list sent: %v", err)
	}
	if len(sent) != 1 || sent[0].ID != onTime.ID {
		t.Fatalf("expected the on-time invoice on the first sent page, got %+v", sent)
	}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

type InvoiceInput struct {
	CustomerID string
	JobID      *string
	EstimateID *string
	DueDate    time.Time
	TaxRate    decimal.Decimal
	LineItems  []LineItemInput
}

// IInvoiceUseCase owns invoices and the payments applied to them.
//
// paid and partial are never set by callers; they follow from the payments
// through finance.DeriveInvoice. overdue is only ever a read-time view.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, in InvoiceInput) (entities.Invoice, error)
	CreateInvoiceFromJob(ctx context.Context, jobID string, dueDate time.Time, taxRate decimal.Decimal) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListInvoices(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error)
	AddInvoiceLineItem(ctx context.Context, id string, in LineItemInput) (entities.Invoice, error)
	RemoveInvoiceLineItem(ctx context.Context, id, lineID string) (entities.Invoice, error)
	SendInvoice(ctx context.Context, id string) (entities.Invoice, error)
	MarkInvoiceViewed(ctx context.Context, id string) (entities.Invoice, error)
	VoidInvoice(ctx context.Context, id string) (entities.Invoice, error)
	RecordPayment(ctx context.Context, id string, in PaymentInput) (entities.Payment, entities.Invoice, error)
	ListPayments(ctx context.Context, id string) ([]entities.Payment, error)
	ChargeInvoice(ctx context.Context, id string, in ChargeInput) (entities.Payment, entities.Invoice, error)
}

type InvoiceUseCase struct {
	lifecycle
	gateway interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(d Dependencies, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{lifecycle: newLifecycle(d), gateway: gateway}
}

func invoiceExists(ctx context.Context, invoiceID string) func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
	return func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		inv, err := r.GetInvoice(ctx, tenantID, invoiceID, false)
		return inv.ID != "", err
	}
}

// insertInvoice allocates a number, derives totals and writes the invoice with its lines.
func insertInvoice(ctx context.Context, tx interfaces.IDocumentRepository, inv entities.Invoice, now time.Time) (entities.Invoice, error) {
	number, err := nextNumber(ctx, tx, inv.TenantID, interfaces.SequenceInvoice, "INV")
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Number = number
	inv = finance.DeriveInvoice(inv, nil, now)
	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}
	for _, l := range inv.LineItems {
		if err := tx.AddLineItem(ctx, l); err != nil {
			return entities.Invoice{}, err
		}
	}
	return inv, nil
}

// present applies the read-time overdue view.
func (u *InvoiceUseCase) present(inv entities.Invoice) entities.Invoice {
	inv.Status = finance.EffectiveInvoiceStatus(inv, u.now())
	return inv
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, in InvoiceInput) (entities.Invoice, error) {
	id, err := u.begin(ctx, permissions.ResourceInvoices, permissions.ActionCreate)
	if err != nil {
		return entities.Invoice{}, err
	}
	fields := validateLines(in.LineItems, "line_items")
	for k, v := range validateTaxRate(in.TaxRate) {
		fields[k] = v
	}
	if in.DueDate.IsZero() {
		fields["due_date"] = "required"
	}
	if len(fields) > 0 {
		return entities.Invoice{}, invalid(fields)
	}

	now := u.now()
	inv := entities.Invoice{
		ID:         u.newID(),
		TenantID:   id.TenantID,
		CustomerID: in.CustomerID,
		JobID:      in.JobID,
		EstimateID: in.EstimateID,
		DueDate:    in.DueDate.UTC(),
		TaxRate:    in.TaxRate,
		Status:     entities.InvoiceStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, l := range in.LineItems {
		inv.LineItems = append(inv.LineItems, u.newLine(l, id.TenantID, entities.LineParentInvoice, inv.ID, i, now))
	}

	err = u.tx(ctx, "create invoice", id, func(tx interfaces.IDocumentRepository) error {
		if _, err := activeCustomer(ctx, tx, id.TenantID, in.CustomerID); err != nil {
			return err
		}
		if err := linkedDocuments(ctx, tx, id.TenantID, in.JobID, in.EstimateID); err != nil {
			return err
		}
		var err error
		inv, err = insertInvoice(ctx, tx, inv, now)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.record(ctx, id, entities.EntityInvoice, inv.ID, "created", map[string]string{
		"number": inv.Number,
		"total":  inv.Total.StringFixed(2),
	})
	return u.present(inv), nil
}

// linkedDocuments checks the informational job and estimate links exist.
func linkedDocuments(ctx context.Context, r interfaces.IDocumentRepository, tenantID string, jobID, estimateID *string) error {
	fields := map[string]string{}
	if jobID != nil {
		j, err := r.GetJob(ctx, tenantID, *jobID, false)
		if err != nil {
			return err
		}
		if j.ID == "" {
			fields["job_id"] = "must reference an existing job"
		}
	}
	if estimateID != nil {
		e, err := r.GetEstimate(ctx, tenantID, *estimateID, false)
		if err != nil {
			return err
		}
		if e.ID == "" {
			fields["estimate_id"] = "must reference an existing estimate"
		}
	}
	if len(fields) > 0 {
		return invalid(fields)
	}
	return nil
}

// CreateInvoiceFromJob bills a job's line items on a new draft invoice.
func (u *InvoiceUseCase) CreateInvoiceFromJob(ctx context.Context, jobID string, dueDate time.Time, taxRate decimal.Decimal) (entities.Invoice, error) {
	id, err := u.beginOn(ctx, permissions.ResourceInvoices, permissions.ActionCreate, jobExists(ctx, jobID), ErrJobNotFound)
	if err != nil {
		return entities.Invoice{}, err
	}
	fields := validateTaxRate(taxRate)
	if dueDate.IsZero() {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["due_date"] = "required"
	}
	if len(fields) > 0 {
		return entities.Invoice{}, invalid(fields)
	}

	var inv entities.Invoice
	err = u.tx(ctx, "invoice job", id, func(tx interfaces.IDocumentRepository) error {
		job, err := lockedJob(ctx, tx, id.TenantID, jobID)
		if err != nil {
			return err
		}
		if _, err := activeCustomer(ctx, tx, id.TenantID, job.CustomerID); err != nil {
			return err
		}
		now := u.now()
		jid := job.ID
		inv = entities.Invoice{
			ID:         u.newID(),
			TenantID:   id.TenantID,
			CustomerID: job.CustomerID,
			JobID:      &jid,
			DueDate:    dueDate.UTC(),
			TaxRate:    taxRate,
			Status:     entities.InvoiceStatusDraft,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		inv.LineItems = u.copyLines(job.LineItems, id.TenantID, entities.LineParentInvoice, inv.ID, now)
		inv, err = insertInvoice(ctx, tx, inv, now)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.record(ctx, id, entities.EntityInvoice, inv.ID, "created", map[string]string{
		"number": inv.Number,
		"job_id": jobID,
	})
	return u.present(inv), nil
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	var inv entities.Invoice
	err = u.read(ctx, "get invoice", id, func(r interfaces.IDocumentRepository) error {
		var err error
		inv, err = r.GetInvoice(ctx, id.TenantID, invoiceID, false)
		if err != nil || inv.ID == "" {
			return err
		}
		inv.Payments, err = r.ListPayments(ctx, id.TenantID, invoiceID)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if err := u.authorize(id, permissions.ResourceInvoices, permissions.ActionRead); err != nil {
		return entities.Invoice{}, err
	}
	return u.present(inv), nil
}

// ListInvoices filters on the status readers see: an overdue invoice matches
// overdue and no longer matches its stored status. The store applies the
// filter before paging.
func (u *InvoiceUseCase) ListInvoices(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	id, err := u.begin(ctx, permissions.ResourceInvoices, permissions.ActionRead)
	if err != nil {
		return nil, err
	}
	f.AsOf = u.now()
	var stored []entities.Invoice
	err = u.read(ctx, "list invoices", id, func(r interfaces.IDocumentRepository) error {
		var err error
		stored, err = r.ListInvoices(ctx, id.TenantID, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(stored))
	for _, inv := range stored {
		out = append(out, u.present(inv))
	}
	return out, nil
}

// mutate runs the existence probe, permission and input checks, then locked.
func (u *InvoiceUseCase) mutate(
	ctx context.Context,
	op string,
	invoiceID string,
	res permissions.Resource,
	act permissions.Action,
	invalidInput error,
	fn func(tx interfaces.IDocumentRepository, id tenant.Identity, inv *entities.Invoice) error,
) (tenant.Identity, entities.Invoice, entities.InvoiceStatus, error) {
	id, err := u.beginOn(ctx, res, act, invoiceExists(ctx, invoiceID), ErrInvoiceNotFound)
	if err != nil {
		return tenant.Identity{}, entities.Invoice{}, "", err
	}
	if invalidInput != nil {
		return tenant.Identity{}, entities.Invoice{}, "", invalidInput
	}
	inv, from, err := u.locked(ctx, op, id, invoiceID, fn)
	if err != nil {
		return tenant.Identity{}, entities.Invoice{}, "", err
	}
	return id, inv, from, nil
}

// locked loads the invoice with a row lock, runs fn, re-derives totals against
// the payments read inside the same transaction and persists the header.
// It also returns the status the invoice had before fn ran.
func (u *InvoiceUseCase) locked(
	ctx context.Context,
	op string,
	id tenant.Identity,
	invoiceID string,
	fn func(tx interfaces.IDocumentRepository, id tenant.Identity, inv *entities.Invoice) error,
) (entities.Invoice, entities.InvoiceStatus, error) {
	var (
		inv  entities.Invoice
		from entities.InvoiceStatus
	)
	err := u.tx(ctx, op, id, func(tx interfaces.IDocumentRepository) error {
		var err error
		inv, err = tx.GetInvoice(ctx, id.TenantID, invoiceID, true)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		from = inv.Status
		if err := fn(tx, id, &inv); err != nil {
			return err
		}
		payments, err := tx.ListPayments(ctx, id.TenantID, invoiceID)
		if err != nil {
			return err
		}
		now := u.now()
		inv = finance.DeriveInvoice(inv, payments, now)
		inv.Payments = payments
		inv.UpdatedAt = now
		return tx.UpdateInvoice(ctx, inv)
	})
	return inv, from, err
}

func (u *InvoiceUseCase) AddInvoiceLineItem(ctx context.Context, invoiceID string, in LineItemInput) (entities.Invoice, error) {
	var bad error
	if fields := validateLine(in, ""); len(fields) > 0 {
		bad = invalid(fields)
	}
	var added entities.LineItem
	id, inv, from, err := u.mutate(ctx, "add invoice line item", invoiceID, permissions.ResourceInvoices, permissions.ActionUpdate, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, inv *entities.Invoice) error {
			if err := inv.AcceptsChanges(); err != nil {
				return err
			}
			added = u.newLine(in, id.TenantID, entities.LineParentInvoice, inv.ID, len(inv.LineItems), u.now())
			if err := tx.AddLineItem(ctx, added); err != nil {
				return err
			}
			inv.LineItems = append(inv.LineItems, added)
			return nil
		})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.recordTotals(ctx, id, inv, from, "line_item_added", map[string]string{"line_item_id": added.ID})
	return u.present(inv), nil
}

func (u *InvoiceUseCase) RemoveInvoiceLineItem(ctx context.Context, invoiceID, lineID string) (entities.Invoice, error) {
	id, inv, from, err := u.mutate(ctx, "remove invoice line item", invoiceID, permissions.ResourceInvoices, permissions.ActionUpdate, nil,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, inv *entities.Invoice) error {
			if err := inv.AcceptsChanges(); err != nil {
				return err
			}
			lines, found := removeLine(inv.LineItems, lineID)
			if !found {
				return ErrLineItemNotFound
			}
			if err := tx.DeleteLineItem(ctx, id.TenantID, lineID); err != nil {
				return err
			}
			inv.LineItems = lines
			return nil
		})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.recordTotals(ctx, id, inv, from, "line_item_removed", map[string]string{"line_item_id": lineID})
	return u.present(inv), nil
}

// recordTotals logs the action with the derived money and notifies when the invoice became paid.
func (u *InvoiceUseCase) recordTotals(ctx context.Context, id tenant.Identity, inv entities.Invoice, from entities.InvoiceStatus, action string, detail map[string]string) {
	if detail == nil {
		detail = map[string]string{}
	}
	detail["total"] = inv.Total.StringFixed(2)
	detail["amount_paid"] = inv.AmountPaid.StringFixed(2)
	detail["balance_due"] = inv.BalanceDue.StringFixed(2)
	detail["status"] = string(inv.Status)
	u.record(ctx, id, entities.EntityInvoice, inv.ID, action, detail)

	if inv.Status == entities.InvoiceStatusPaid && from != entities.InvoiceStatusPaid {
		u.notify(ctx, interfaces.Notification{
			Kind:       interfaces.NotificationInvoicePaid,
			TenantID:   id.TenantID,
			EntityType: string(entities.EntityInvoice),
			EntityID:   inv.ID,
			Title:      "Invoice " + inv.Number + " paid",
			Data:       map[string]string{"total": inv.Total.StringFixed(2)},
		})
	}
}

func (u *InvoiceUseCase) transition(ctx context.Context, invoiceID, action string, act permissions.Action, apply func(inv *entities.Invoice, now time.Time) error) (entities.Invoice, error) {
	id, inv, from, err := u.mutate(ctx, action+" invoice", invoiceID, permissions.ResourceInvoices, act, nil,
		func(_ interfaces.IDocumentRepository, _ tenant.Identity, inv *entities.Invoice) error {
			return apply(inv, u.now())
		})
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != from {
		u.record(ctx, id, entities.EntityInvoice, inv.ID, action, map[string]string{
			"from": string(from),
			"to":   string(inv.Status),
		})
	}
	return u.present(inv), nil
}

func (u *InvoiceUseCase) SendInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	return u.transition(ctx, invoiceID, "sent", permissions.ActionUpdate, (*entities.Invoice).Send)
}

func (u *InvoiceUseCase) MarkInvoiceViewed(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	return u.transition(ctx, invoiceID, "viewed", permissions.ActionUpdate, (*entities.Invoice).MarkViewed)
}

// VoidInvoice is refused with CONFLICT once the invoice is paid; payments are never touched.
func (u *InvoiceUseCase) VoidInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	return u.transition(ctx, invoiceID, "voided", permissions.ActionDelete, (*entities.Invoice).Void)
}

type PaymentInput struct {
	Amount    decimal.Decimal
	Method    entities.PaymentMethod
	Reference string
}

// RecordPayment appends a succeeded payment and recomputes the invoice in the same transaction.
func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID string, in PaymentInput) (entities.Payment, entities.Invoice, error) {
	id, err := u.beginOn(ctx, permissions.ResourcePayments, permissions.ActionCreate, invoiceExists(ctx, invoiceID), ErrInvoiceNotFound)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, entities.Invoice{}, &Error{
			Kind:    KindValidation,
			Message: ErrInvalidAmount.Message,
			Fields:  map[string]string{"amount": "must be greater than zero"},
		}
	}
	if !in.Method.Valid() {
		return entities.Payment{}, entities.Invoice{}, invalidField("method", "must be cash, check, card, bank_transfer or other")
	}
	p := entities.Payment{
		Amount:    finance.Round2(in.Amount),
		Method:    in.Method,
		Reference: strings.TrimSpace(in.Reference),
		Status:    entities.PaymentStatusSucceeded,
	}
	return u.apply(ctx, id, invoiceID, p)
}

// apply writes p against the locked invoice and re-derives it.
func (u *InvoiceUseCase) apply(ctx context.Context, id tenant.Identity, invoiceID string, p entities.Payment) (entities.Payment, entities.Invoice, error) {
	inv, from, err := u.locked(ctx, "record payment", id, invoiceID,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, inv *entities.Invoice) error {
			if err := inv.AcceptsChanges(); err != nil {
				return err
			}
			p.ID = u.newID()
			p.TenantID = id.TenantID
			p.InvoiceID = inv.ID
			p.RecordedBy = id.UserID
			p.CreatedAt = u.now()
			return tx.CreatePayment(ctx, p)
		})
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	u.record(ctx, id, entities.EntityPayment, p.ID, "created", map[string]string{
		"invoice_id": inv.ID,
		"amount":     p.Amount.StringFixed(2),
		"method":     string(p.Method),
		"status":     string(p.Status),
	})
	u.recordTotals(ctx, id, inv, from, "payment_recorded", map[string]string{"payment_id": p.ID})
	return p, u.present(inv), nil
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	id, err := u.beginOn(ctx, permissions.ResourcePayments, permissions.ActionRead, invoiceExists(ctx, invoiceID), ErrInvoiceNotFound)
	if err != nil {
		return nil, err
	}
	var out []entities.Payment
	err = u.read(ctx, "list payments", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListPayments(ctx, id.TenantID, invoiceID)
		return err
	})
	return out, err
}

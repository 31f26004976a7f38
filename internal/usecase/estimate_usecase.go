package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

type EstimateOptionInput struct {
	Name        string
	Description string
	LineItems   []LineItemInput
}

type EstimateInput struct {
	CustomerID string
	PropertyID string
	JobID      *string
	Title      string
	TaxRate    decimal.Decimal
	Options    []EstimateOptionInput
}

// IEstimateUseCase exposes the proposal lifecycle.
//
// Status moves only through explicit actions (send, viewed, approve, decline,
// expire); there is no generic status setter.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in EstimateInput) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ListEstimates(ctx context.Context, f interfaces.EstimateFilter) ([]entities.Estimate, error)
	AddEstimateOption(ctx context.Context, id string, in EstimateOptionInput) (entities.Estimate, error)
	AddEstimateLineItem(ctx context.Context, id, optionID string, in LineItemInput) (entities.Estimate, error)
	RemoveEstimateLineItem(ctx context.Context, id, optionID, lineID string) (entities.Estimate, error)
	SendEstimate(ctx context.Context, id string) (entities.Estimate, error)
	MarkEstimateViewed(ctx context.Context, id string) (entities.Estimate, error)
	ApproveEstimate(ctx context.Context, id, optionID string) (entities.Estimate, error)
	DeclineEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ExpireEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ConvertToInvoice(ctx context.Context, id string, dueDate time.Time) (entities.Invoice, error)
}

type EstimateUseCase struct {
	lifecycle
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(d Dependencies) *EstimateUseCase {
	return &EstimateUseCase{lifecycle: newLifecycle(d)}
}

func estimateExists(ctx context.Context, estimateID string) func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
	return func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		e, err := r.GetEstimate(ctx, tenantID, estimateID, false)
		return e.ID != "", err
	}
}

func validateTaxRate(rate decimal.Decimal) map[string]string {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return map[string]string{"tax_rate": "must be between 0 and 1"}
	}
	return nil
}

func validateOption(in EstimateOptionInput, prefix string) map[string]string {
	fields := validateLines(in.LineItems, prefix+"line_items")
	if len(in.LineItems) == 0 {
		fields[prefix+"line_items"] = "at least one line item is required"
	}
	return fields
}

func (u *EstimateUseCase) buildOption(in EstimateOptionInput, tenantID, estimateID string, sortOrder int, now time.Time) entities.EstimateOption {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = fmt.Sprintf("Option %d", sortOrder+1)
	}
	opt := entities.EstimateOption{
		ID:          u.newID(),
		TenantID:    tenantID,
		EstimateID:  estimateID,
		Name:        name,
		Description: in.Description,
		SortOrder:   sortOrder,
	}
	for i, l := range in.LineItems {
		opt.LineItems = append(opt.LineItems, u.newLine(l, tenantID, entities.LineParentEstimateOption, opt.ID, i, now))
	}
	return opt
}

func persistOption(ctx context.Context, tx interfaces.IDocumentRepository, opt entities.EstimateOption) error {
	if err := tx.CreateEstimateOption(ctx, opt); err != nil {
		return err
	}
	for _, l := range opt.LineItems {
		if err := tx.AddLineItem(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// CreateEstimate writes the estimate, its options and their line items in one transaction.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in EstimateInput) (entities.Estimate, error) {
	id, err := u.begin(ctx, permissions.ResourceEstimates, permissions.ActionCreate)
	if err != nil {
		return entities.Estimate{}, err
	}
	fields := map[string]string{}
	if strings.TrimSpace(in.PropertyID) == "" {
		fields["property_id"] = "required"
	}
	if len(in.Options) == 0 {
		fields["options"] = "at least one option is required"
	}
	for k, v := range validateTaxRate(in.TaxRate) {
		fields[k] = v
	}
	for i, o := range in.Options {
		for k, v := range validateOption(o, fmt.Sprintf("options[%d].", i)) {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		return entities.Estimate{}, invalid(fields)
	}

	now := u.now()
	est := entities.Estimate{
		ID:         u.newID(),
		TenantID:   id.TenantID,
		CustomerID: in.CustomerID,
		PropertyID: in.PropertyID,
		JobID:      in.JobID,
		Title:      strings.TrimSpace(in.Title),
		TaxRate:    in.TaxRate,
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, o := range in.Options {
		est.Options = append(est.Options, u.buildOption(o, id.TenantID, est.ID, i, now))
	}
	est = finance.DeriveEstimate(est)

	err = u.tx(ctx, "create estimate", id, func(tx interfaces.IDocumentRepository) error {
		if _, err := activeCustomer(ctx, tx, id.TenantID, in.CustomerID); err != nil {
			return err
		}
		if err := ownedProperty(ctx, tx, id.TenantID, in.CustomerID, in.PropertyID); err != nil {
			return err
		}
		if in.JobID != nil {
			job, err := tx.GetJob(ctx, id.TenantID, *in.JobID, false)
			if err != nil {
				return err
			}
			if job.ID == "" {
				return invalidField("job_id", "must reference an existing job")
			}
		}
		number, err := nextNumber(ctx, tx, id.TenantID, interfaces.SequenceEstimate, "EST")
		if err != nil {
			return err
		}
		est.Number = number
		if err := tx.CreateEstimate(ctx, est); err != nil {
			return err
		}
		for _, opt := range est.Options {
			if err := persistOption(ctx, tx, opt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.record(ctx, id, entities.EntityEstimate, est.ID, "created", map[string]string{
		"number":  est.Number,
		"options": fmt.Sprintf("%d", len(est.Options)),
	})
	return est, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	var est entities.Estimate
	err = u.read(ctx, "get estimate", id, func(r interfaces.IDocumentRepository) error {
		var err error
		est, err = r.GetEstimate(ctx, id.TenantID, estimateID, false)
		return err
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if err := u.authorize(id, permissions.ResourceEstimates, permissions.ActionRead); err != nil {
		return entities.Estimate{}, err
	}
	return est, nil
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context, f interfaces.EstimateFilter) ([]entities.Estimate, error) {
	id, err := u.begin(ctx, permissions.ResourceEstimates, permissions.ActionRead)
	if err != nil {
		return nil, err
	}
	var out []entities.Estimate
	err = u.read(ctx, "list estimates", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListEstimates(ctx, id.TenantID, f)
		return err
	})
	return out, err
}

func (u *EstimateUseCase) mutate(
	ctx context.Context,
	op string,
	estimateID string,
	invalidInput error,
	fn func(tx interfaces.IDocumentRepository, id tenant.Identity, est *entities.Estimate) error,
) (tenant.Identity, entities.Estimate, error) {
	id, err := u.beginOn(ctx, permissions.ResourceEstimates, permissions.ActionUpdate, estimateExists(ctx, estimateID), ErrEstimateNotFound)
	if err != nil {
		return tenant.Identity{}, entities.Estimate{}, err
	}
	if invalidInput != nil {
		return tenant.Identity{}, entities.Estimate{}, invalidInput
	}
	var est entities.Estimate
	err = u.tx(ctx, op, id, func(tx interfaces.IDocumentRepository) error {
		var err error
		est, err = tx.GetEstimate(ctx, id.TenantID, estimateID, true)
		if err != nil {
			return err
		}
		if est.ID == "" {
			return ErrEstimateNotFound
		}
		return fn(tx, id, &est)
	})
	if err != nil {
		return tenant.Identity{}, entities.Estimate{}, err
	}
	return id, est, nil
}

// rederive recomputes option totals and persists the option and, when it is
// the approved one, the estimate's total.
func rederive(ctx context.Context, tx interfaces.IDocumentRepository, est *entities.Estimate, optionID string, now time.Time) error {
	*est = finance.DeriveEstimate(*est)
	opt, ok := est.Option(optionID)
	if !ok {
		return ErrOptionNotFound
	}
	if err := tx.UpdateEstimateOption(ctx, *opt); err != nil {
		return err
	}
	est.UpdatedAt = now
	return tx.UpdateEstimate(ctx, *est)
}

func (u *EstimateUseCase) AddEstimateOption(ctx context.Context, estimateID string, in EstimateOptionInput) (entities.Estimate, error) {
	var bad error
	if fields := validateOption(in, ""); len(fields) > 0 {
		bad = invalid(fields)
	}
	var opt entities.EstimateOption
	id, est, err := u.mutate(ctx, "add estimate option", estimateID, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, est *entities.Estimate) error {
			if !est.Editable() {
				return ErrEstimateClosed
			}
			now := u.now()
			opt = finance.DeriveOption(u.buildOption(in, id.TenantID, est.ID, len(est.Options), now), est.TaxRate)
			if err := persistOption(ctx, tx, opt); err != nil {
				return err
			}
			est.Options = append(est.Options, opt)
			est.UpdatedAt = now
			return tx.UpdateEstimate(ctx, *est)
		})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.record(ctx, id, entities.EntityEstimate, est.ID, "option_added", map[string]string{"option_id": opt.ID})
	return est, nil
}

// AddEstimateLineItem is allowed in every state except declined and expired.
// Editing the approved option moves the estimate total with it.
func (u *EstimateUseCase) AddEstimateLineItem(ctx context.Context, estimateID, optionID string, in LineItemInput) (entities.Estimate, error) {
	var bad error
	if fields := validateLine(in, ""); len(fields) > 0 {
		bad = invalid(fields)
	}
	var added entities.LineItem
	id, est, err := u.mutate(ctx, "add estimate line item", estimateID, bad,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, est *entities.Estimate) error {
			opt, ok := est.Option(optionID)
			if !ok {
				return ErrOptionNotFound
			}
			if !est.Editable() {
				return ErrEstimateClosed
			}
			now := u.now()
			added = u.newLine(in, id.TenantID, entities.LineParentEstimateOption, opt.ID, len(opt.LineItems), now)
			if err := tx.AddLineItem(ctx, added); err != nil {
				return err
			}
			opt.LineItems = append(opt.LineItems, added)
			return rederive(ctx, tx, est, optionID, now)
		})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.record(ctx, id, entities.EntityEstimate, est.ID, "line_item_added", map[string]string{
		"option_id":    optionID,
		"line_item_id": added.ID,
	})
	return est, nil
}

func (u *EstimateUseCase) RemoveEstimateLineItem(ctx context.Context, estimateID, optionID, lineID string) (entities.Estimate, error) {
	id, est, err := u.mutate(ctx, "remove estimate line item", estimateID, nil,
		func(tx interfaces.IDocumentRepository, id tenant.Identity, est *entities.Estimate) error {
			opt, ok := est.Option(optionID)
			if !ok {
				return ErrOptionNotFound
			}
			if !est.Editable() {
				return ErrEstimateClosed
			}
			lines, found := removeLine(opt.LineItems, lineID)
			if !found {
				return ErrLineItemNotFound
			}
			if err := tx.DeleteLineItem(ctx, id.TenantID, lineID); err != nil {
				return err
			}
			opt.LineItems = lines
			return rederive(ctx, tx, est, optionID, u.now())
		})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.record(ctx, id, entities.EntityEstimate, est.ID, "line_item_removed", map[string]string{
		"option_id":    optionID,
		"line_item_id": lineID,
	})
	return est, nil
}

// transition applies one state-machine action and persists the header.
func (u *EstimateUseCase) transition(ctx context.Context, estimateID, action string, apply func(est *entities.Estimate, now time.Time) error) (tenant.Identity, entities.Estimate, error) {
	var from entities.EstimateStatus
	id, est, err := u.mutate(ctx, action+" estimate", estimateID, nil,
		func(tx interfaces.IDocumentRepository, _ tenant.Identity, est *entities.Estimate) error {
			from = est.Status
			if err := apply(est, u.now()); err != nil {
				return err
			}
			if est.Status == from {
				return nil
			}
			return tx.UpdateEstimate(ctx, *est)
		})
	if err != nil {
		return tenant.Identity{}, entities.Estimate{}, err
	}
	if est.Status != from {
		u.record(ctx, id, entities.EntityEstimate, est.ID, action, map[string]string{
			"from": string(from),
			"to":   string(est.Status),
		})
	}
	return id, est, nil
}

func (u *EstimateUseCase) SendEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	_, est, err := u.transition(ctx, estimateID, "sent", (*entities.Estimate).Send)
	return est, err
}

func (u *EstimateUseCase) MarkEstimateViewed(ctx context.Context, estimateID string) (entities.Estimate, error) {
	_, est, err := u.transition(ctx, estimateID, "viewed", (*entities.Estimate).MarkViewed)
	return est, err
}

func (u *EstimateUseCase) ApproveEstimate(ctx context.Context, estimateID, optionID string) (entities.Estimate, error) {
	id, est, err := u.transition(ctx, estimateID, "approved", func(est *entities.Estimate, now time.Time) error {
		return est.Approve(optionID, now)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.notify(ctx, interfaces.Notification{
		Kind:       interfaces.NotificationEstimateApproved,
		TenantID:   id.TenantID,
		EntityType: string(entities.EntityEstimate),
		EntityID:   est.ID,
		Title:      "Estimate " + est.Number + " approved",
		Data:       map[string]string{"option_id": optionID, "total_amount": est.TotalAmount.StringFixed(2)},
	})
	return est, nil
}

func (u *EstimateUseCase) DeclineEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	_, est, err := u.transition(ctx, estimateID, "declined", (*entities.Estimate).Decline)
	return est, err
}

func (u *EstimateUseCase) ExpireEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	_, est, err := u.transition(ctx, estimateID, "expired", (*entities.Estimate).Expire)
	return est, err
}

// ConvertToInvoice copies the approved option into a new draft invoice.
func (u *EstimateUseCase) ConvertToInvoice(ctx context.Context, estimateID string, dueDate time.Time) (entities.Invoice, error) {
	id, err := u.beginOn(ctx, permissions.ResourceInvoices, permissions.ActionCreate, estimateExists(ctx, estimateID), ErrEstimateNotFound)
	if err != nil {
		return entities.Invoice{}, err
	}
	if dueDate.IsZero() {
		return entities.Invoice{}, invalidField("due_date", "required")
	}

	var inv entities.Invoice
	err = u.tx(ctx, "convert estimate", id, func(tx interfaces.IDocumentRepository) error {
		est, err := tx.GetEstimate(ctx, id.TenantID, estimateID, true)
		if err != nil {
			return err
		}
		if est.ID == "" {
			return ErrEstimateNotFound
		}
		if est.Status != entities.EstimateStatusApproved || est.ApprovedOptionID == nil {
			return ErrEstimateNotApproved
		}
		opt, ok := est.Option(*est.ApprovedOptionID)
		if !ok {
			return ErrOptionNotFound
		}
		// the estimate row lock serializes concurrent conversions
		existing, err := tx.ListInvoices(ctx, id.TenantID, interfaces.InvoiceFilter{EstimateID: est.ID})
		if err != nil {
			return err
		}
		for _, prior := range existing {
			if prior.Status != entities.InvoiceStatusVoid {
				return ErrEstimateConverted
			}
		}
		if _, err := activeCustomer(ctx, tx, id.TenantID, est.CustomerID); err != nil {
			return err
		}

		now := u.now()
		estID := est.ID
		inv = entities.Invoice{
			ID:         u.newID(),
			TenantID:   id.TenantID,
			CustomerID: est.CustomerID,
			JobID:      est.JobID,
			EstimateID: &estID,
			DueDate:    dueDate.UTC(),
			TaxRate:    est.TaxRate,
			Status:     entities.InvoiceStatusDraft,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		inv.LineItems = u.copyLines(opt.LineItems, id.TenantID, entities.LineParentInvoice, inv.ID, now)
		inv, err = insertInvoice(ctx, tx, inv, now)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.record(ctx, id, entities.EntityEstimate, estimateID, "converted", map[string]string{"invoice_id": inv.ID})
	u.record(ctx, id, entities.EntityInvoice, inv.ID, "created", map[string]string{
		"number":      inv.Number,
		"estimate_id": estimateID,
	})
	return inv, nil
}

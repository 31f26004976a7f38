// Package finance derives the monetary fields of jobs, estimates and invoices.
//
// Every function here is pure: it reads its inputs, returns new values and
// never mutates the documents it is given. Running a derivation twice on the
// same input yields identical output.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
)

// Totals is the derived money of a line-item document.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitPrice))
}

// PriceLines returns a copy of lines with Total recomputed.
func PriceLines(lines []entities.LineItem) []entities.LineItem {
	out := entities.CloneLines(lines)
	for i := range out {
		out[i].Total = LineTotal(out[i].Quantity, out[i].UnitPrice)
	}
	return out
}

// Summarize rounds per line and again at the subtotal and tax boundaries.
func Summarize(lines []entities.LineItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l.Quantity, l.UnitPrice))
	}
	subtotal = Round2(subtotal)
	tax := Round2(subtotal.Mul(taxRate))
	return Totals{Subtotal: subtotal, TaxAmount: tax, Total: subtotal.Add(tax)}
}

// AmountPaid sums succeeded payments only.
func AmountPaid(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == entities.PaymentStatusSucceeded {
			sum = sum.Add(p.Amount)
		}
	}
	return Round2(sum)
}

// DeriveJob recomputes line totals and the job total. Jobs carry no tax.
func DeriveJob(job entities.Job) entities.Job {
	job.LineItems = PriceLines(job.LineItems)
	job.TotalAmount = Summarize(job.LineItems, decimal.Zero).Subtotal
	return job
}

func DeriveOption(opt entities.EstimateOption, taxRate decimal.Decimal) entities.EstimateOption {
	opt.LineItems = PriceLines(opt.LineItems)
	t := Summarize(opt.LineItems, taxRate)
	opt.Subtotal, opt.TaxAmount, opt.Total = t.Subtotal, t.TaxAmount, t.Total
	return opt
}

// DeriveEstimate derives every option with the estimate's tax rate. When an
// option is approved, TotalAmount follows that option's current total.
func DeriveEstimate(est entities.Estimate) entities.Estimate {
	options := make([]entities.EstimateOption, len(est.Options))
	for i, opt := range est.Options {
		options[i] = DeriveOption(opt, est.TaxRate)
	}
	est.Options = options

	est.TotalAmount = nil
	if est.ApprovedOptionID != nil {
		for _, opt := range est.Options {
			if opt.ID == *est.ApprovedOptionID {
				total := opt.Total
				est.TotalAmount = &total
				break
			}
		}
	}
	return est
}

// DeriveInvoice recomputes totals from the invoice's line items and the given
// payments, then applies the payment status rule:
//
//   - draft and void never change here
//   - paid when something was paid and nothing is due
//   - partial when something was paid and a balance remains
//   - back to viewed (or sent if never viewed) when nothing is paid any more
//     but the invoice was paid or partial
//
// PaidAt is stamped on entering paid and cleared when leaving it.
func DeriveInvoice(inv entities.Invoice, payments []entities.Payment, now time.Time) entities.Invoice {
	inv.LineItems = PriceLines(inv.LineItems)
	t := Summarize(inv.LineItems, inv.TaxRate)
	inv.Subtotal, inv.TaxAmount, inv.Total = t.Subtotal, t.TaxAmount, t.Total
	inv.AmountPaid = AmountPaid(payments)
	inv.BalanceDue = inv.Total.Sub(inv.AmountPaid)

	inv.Status = paymentStatus(inv)
	if inv.Status == entities.InvoiceStatusPaid {
		if inv.PaidAt == nil {
			paid := now
			inv.PaidAt = &paid
		}
	} else {
		inv.PaidAt = nil
	}
	return inv
}

func paymentStatus(inv entities.Invoice) entities.InvoiceStatus {
	switch inv.Status {
	case entities.InvoiceStatusDraft, entities.InvoiceStatusVoid:
		return inv.Status
	}
	paid := inv.AmountPaid.IsPositive()
	switch {
	case paid && !inv.BalanceDue.IsPositive():
		return entities.InvoiceStatusPaid
	case paid:
		return entities.InvoiceStatusPartial
	case inv.Status == entities.InvoiceStatusPaid, inv.Status == entities.InvoiceStatusPartial:
		if inv.ViewedAt != nil {
			return entities.InvoiceStatusViewed
		}
		return entities.InvoiceStatusSent
	}
	return inv.Status
}

// EffectiveInvoiceStatus is the status shown to readers: an open invoice past
// its due date with a positive balance reads as overdue.
func EffectiveInvoiceStatus(inv entities.Invoice, now time.Time) entities.InvoiceStatus {
	if OverdueCandidate(inv.Status) && inv.BalanceDue.IsPositive() && !inv.DueDate.IsZero() && inv.DueDate.Before(now) {
		return entities.InvoiceStatusOverdue
	}
	return inv.Status
}

// OverdueCandidate reports whether an invoice stored with status s reads as
// overdue once its due date passes with a balance left.
func OverdueCandidate(s entities.InvoiceStatus) bool {
	switch s {
	case entities.InvoiceStatusSent, entities.InvoiceStatusViewed, entities.InvoiceStatusPartial:
		return true
	}
	return false
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/usecase/interfaces"
)

var errGatewayNotConfigured = errors.New("payment gateway not configured")

// ChargeInput describes a card charge through the payment provider.
// A nil Amount charges the current balance due.
type ChargeInput struct {
	Amount          *decimal.Decimal
	ProviderPayload json.RawMessage
}

// ChargeInvoice charges the provider first and then records the outcome as a
// payment. Only an approved charge counts toward the amount paid; other
// provider outcomes are recorded as pending, failed or refunded payments.
func (u *InvoiceUseCase) ChargeInvoice(ctx context.Context, invoiceID string, in ChargeInput) (entities.Payment, entities.Invoice, error) {
	id, err := u.beginOn(ctx, permissions.ResourcePayments, permissions.ActionCreate, invoiceExists(ctx, invoiceID), ErrInvoiceNotFound)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	log := u.log.With(zap.String("tenant_id", id.TenantID), zap.String("invoice_id", invoiceID))

	req, err := parsePayload(in.ProviderPayload)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return entities.Payment{}, entities.Invoice{}, invalidField("amount", "must be greater than zero")
	}
	if u.gateway == nil {
		return entities.Payment{}, entities.Invoice{}, u.fail("charge invoice", id, errGatewayNotConfigured)
	}

	var (
		inv      entities.Invoice
		customer entities.Customer
	)
	err = u.read(ctx, "charge invoice", id, func(r interfaces.IDocumentRepository) error {
		var err error
		inv, err = r.GetInvoice(ctx, id.TenantID, invoiceID, false)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		customer, err = r.GetCustomer(ctx, id.TenantID, inv.CustomerID)
		return err
	})
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if err := inv.AcceptsChanges(); err != nil {
		return entities.Payment{}, entities.Invoice{}, classify("charge invoice", err)
	}

	amount := inv.BalanceDue
	if in.Amount != nil {
		amount = *in.Amount
	}
	amount = finance.Round2(amount)
	if !amount.IsPositive() {
		return entities.Payment{}, entities.Invoice{}, &Error{
			Kind:    KindValidation,
			Message: ErrInvalidAmount.Message,
			Fields:  map[string]string{"amount": "invoice has no balance due"},
		}
	}

	// The amount always comes from the invoice side, never from the client payload.
	req["transaction_amount"] = amount.InexactFloat64()
	req["external_reference"] = inv.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	ensurePayerDefaults(req, customer.Email)
	payload, err := json.Marshal(req)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, u.fail("charge invoice", id, err)
	}

	log.Info("charging invoice", zap.String("amount", amount.StringFixed(2)))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.Payment{}, entities.Invoice{}, gatewayFailure(err)
	}
	log.Info("payment gateway answered", zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	p := entities.Payment{
		Amount:          amount,
		Method:          entities.PaymentMethodCard,
		Reference:       providerID,
		Status:          MapProviderStatus(providerStatus),
		ProviderPayload: providerResp,
	}
	payment, updated, err := u.apply(ctx, id, invoiceID, p)
	if err != nil {
		log.Error("charge succeeded at provider but could not be recorded",
			zap.String("provider_payment_id", providerID),
			zap.Error(err),
		)
		return entities.Payment{}, entities.Invoice{}, err
	}
	return payment, updated, nil
}

func parsePayload(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, invalidField("provider_payload", "must be a JSON object")
	}
	return m, nil
}

// MapProviderStatus translates a Mercado Pago payment status.
func MapProviderStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.PaymentStatusSucceeded
	case "rejected", "cancelled":
		return entities.PaymentStatusFailed
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	}
	// pending, in_process, authorized, in_mediation
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither payer.id nor payer.email is given, the customer's email.
func ensurePayerDefaults(m map[string]any, email string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(email) != "" {
		payer["email"] = strings.TrimSpace(email)
	}
}

func gatewayFailure(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return &Error{
			Kind:    KindValidation,
			Message: "payment provider rejected the request",
			Fields:  map[string]string{"provider_payload": "rejected by payment provider"},
			Err:     err,
		}
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`),
		strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return &Error{Kind: KindConflict, Message: ErrPaymentProviderError.Message, Err: err}
	}
	return internal("payment gateway", err)
}

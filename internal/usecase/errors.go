package usecase

import (
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

// ErrorKind is the stable failure class every lifecycle operation reports.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindConflict     ErrorKind = "CONFLICT"
	KindInternal     ErrorKind = "INTERNAL_ERROR"
)

// Error is a classified lifecycle failure. Fields carries field-level detail
// for validation failures.
//
// errors.Is matches another *Error of the same kind whose Message is empty
// (the kind sentinels) or equal to this one (the specific sentinels).
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrInternal     = &Error{Kind: KindInternal}
)

var (
	ErrCustomerNotFound  = &Error{Kind: KindNotFound, Message: "customer not found"}
	ErrPropertyNotFound  = &Error{Kind: KindNotFound, Message: "property not found"}
	ErrEquipmentNotFound = &Error{Kind: KindNotFound, Message: "equipment not found"}
	ErrJobNotFound       = &Error{Kind: KindNotFound, Message: "job not found"}
	ErrEstimateNotFound  = &Error{Kind: KindNotFound, Message: "estimate not found"}
	ErrOptionNotFound    = &Error{Kind: KindNotFound, Message: "estimate option not found"}
	ErrInvoiceNotFound   = &Error{Kind: KindNotFound, Message: "invoice not found"}
	ErrLineItemNotFound  = &Error{Kind: KindNotFound, Message: "line item not found"}

	ErrIllegalTransition = &Error{Kind: KindValidation, Message: "illegal status transition"}
	ErrInvalidAmount     = &Error{Kind: KindValidation, Message: "amount must be greater than zero"}

	ErrCustomerDeleted      = &Error{Kind: KindConflict, Message: "customer is deleted"}
	ErrDuplicatePrimary     = &Error{Kind: KindConflict, Message: "customer already has a primary property"}
	ErrInvoiceAlreadyPaid   = &Error{Kind: KindConflict, Message: "invoice is already paid"}
	ErrInvoiceVoid          = &Error{Kind: KindConflict, Message: "invoice is void"}
	ErrEstimateClosed       = &Error{Kind: KindConflict, Message: "estimate no longer accepts changes"}
	ErrEstimateNotApproved  = &Error{Kind: KindConflict, Message: "estimate is not approved"}
	ErrEstimateConverted    = &Error{Kind: KindConflict, Message: "estimate already has an invoice"}
	ErrPaymentProviderError = &Error{Kind: KindConflict, Message: "payment provider rejected the charge"}
)

// KindOf classifies err. Unclassified errors are internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the validation detail carried by err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

func invalid(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input", Fields: fields}
}

func invalidField(field, reason string) *Error {
	return invalid(map[string]string{field: reason})
}

func internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: op, Err: err}
}

// classify converts domain and infrastructure errors into lifecycle errors.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ue *Error
	if errors.As(err, &ue) {
		return err
	}

	var te *entities.TransitionError
	switch {
	case errors.As(err, &te):
		return &Error{
			Kind:    KindValidation,
			Message: ErrIllegalTransition.Message,
			Fields:  map[string]string{"status": te.Pair()},
			Err:     err,
		}
	case errors.Is(err, entities.ErrOptionNotFound):
		return ErrOptionNotFound
	case errors.Is(err, entities.ErrInvoicePaid):
		return ErrInvoiceAlreadyPaid
	case errors.Is(err, entities.ErrInvoiceVoided):
		return ErrInvoiceVoid
	case errors.Is(err, entities.ErrEstimateClosed):
		return ErrEstimateClosed
	case errors.Is(err, interfaces.ErrPrimaryPropertyTaken):
		return ErrDuplicatePrimary
	case errors.Is(err, permissions.ErrForbidden):
		return &Error{Kind: KindForbidden, Message: "forbidden", Err: err}
	case errors.Is(err, tenant.ErrMissingIdentity), errors.Is(err, tenant.ErrInvalidRole), errors.Is(err, tenant.ErrInvalidTenant):
		return &Error{Kind: KindUnauthorized, Message: "unauthorized", Err: err}
	}
	return internal(op, err)
}

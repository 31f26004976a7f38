package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Details != nil {
		t.Fatalf("expected no details, got %+v", body.Details)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	detailed := base.WithDetails(map[string]string{"amount": "must be greater than zero"})

	if base.Details != nil {
		t.Fatalf("base error must not be mutated")
	}
	if detailed.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", detailed.HTTPStatus)
	}
	if got := detailed.ToHTTPError().Details["amount"]; got != "must be greater than zero" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, nil)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	t.Run("approved by default", func(t *testing.T) {
		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":135,"external_reference":"inv-1"}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if status != "approved" || id == "" {
			t.Fatalf("unexpected id=%q status=%q", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["external_reference"] != "inv-1" || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("mock status override", func(t *testing.T) {
		_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"mock_status":"rejected"}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if status != "rejected" {
			t.Fatalf("expected rejected, got %q", status)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if _, ok := body["mock_status"]; ok {
			t.Fatalf("mock_status should not be echoed")
		}
		if _, ok := body["date_approved"]; ok {
			t.Fatalf("rejected payment should not carry date_approved")
		}
	})

	t.Run("non json payload", func(t *testing.T) {
		_, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not-json`))
		if err != nil || status != "approved" {
			t.Fatalf("unexpected status=%q err=%v", status, err)
		}
	})
}

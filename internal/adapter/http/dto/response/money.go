package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
)

// money renders a currency amount with exactly two decimals.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

type LineItemResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Type        string    `json:"type"`
	Total       string    `json:"total"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(lines))
	for i, l := range lines {
		out[i] = LineItemResponse{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity.String(),
			UnitPrice:   money(l.UnitPrice),
			Type:        string(l.Type),
			Total:       money(l.Total),
			SortOrder:   l.SortOrder,
			CreatedAt:   l.CreatedAt,
		}
	}
	return out
}

// Mapped applies fn to every element; a nil slice maps to an empty one so lists encode as [].
func Mapped[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

package request

import (
	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

// LineItemRequest accepts quantity and unit_price as JSON strings or numbers.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Type        string          `json:"type"`
	SortOrder   *int            `json:"sort_order,omitempty"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Type:        entities.LineItemType(r.Type),
		SortOrder:   r.SortOrder,
	}
}

func lineInputs(in []LineItemRequest) []usecase.LineItemInput {
	if len(in) == 0 {
		return nil
	}
	out := make([]usecase.LineItemInput, len(in))
	for i, l := range in {
		out[i] = l.ToInput()
	}
	return out
}

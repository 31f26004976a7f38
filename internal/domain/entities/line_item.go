package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItemType string

const (
	LineItemService  LineItemType = "service"
	LineItemMaterial LineItemType = "material"
	LineItemLabor    LineItemType = "labor"
	LineItemFee      LineItemType = "fee"
	LineItemDiscount LineItemType = "discount"
	LineItemOther    LineItemType = "other"
)

func (t LineItemType) Valid() bool {
	switch t {
	case LineItemService, LineItemMaterial, LineItemLabor, LineItemFee, LineItemDiscount, LineItemOther:
		return true
	}
	return false
}

// LineParent identifies which kind of document owns a line item.
type LineParent string

const (
	LineParentJob            LineParent = "job"
	LineParentEstimateOption LineParent = "estimate_option"
	LineParentInvoice        LineParent = "invoice"
)

// LineItem is a priced unit attached to a job, an estimate option or an invoice.
// Total is derived; callers never set it directly.
type LineItem struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	ParentType  LineParent      `json:"parent_type"`
	ParentID    string          `json:"parent_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Type        LineItemType    `json:"type"`
	Total       decimal.Decimal `json:"total"`
	SortOrder   int             `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CloneLines returns a copy of lines that may be re-parented without touching the source.
func CloneLines(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	out := make([]LineItem, len(lines))
	copy(out, lines)
	return out
}

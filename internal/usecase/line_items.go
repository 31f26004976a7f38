package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
)

type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Type        entities.LineItemType
	SortOrder   *int
}

func validateLine(in LineItemInput, prefix string) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Description) == "" {
		fields[prefix+"description"] = "required"
	}
	if !in.Quantity.IsPositive() {
		fields[prefix+"quantity"] = "must be greater than zero"
	}
	if in.Type != "" && !in.Type.Valid() {
		fields[prefix+"type"] = "unknown line item type"
	}
	return fields
}

func validateLines(lines []LineItemInput, prefix string) map[string]string {
	fields := map[string]string{}
	for i, l := range lines {
		for k, v := range validateLine(l, fmt.Sprintf("%s[%d].", prefix, i)) {
			fields[k] = v
		}
	}
	return fields
}

// newLine builds a priced line item. sortOrder is used unless the input sets its own.
func (l *lifecycle) newLine(in LineItemInput, tenantID string, parent entities.LineParent, parentID string, sortOrder int, now time.Time) entities.LineItem {
	typ := in.Type
	if typ == "" {
		typ = entities.LineItemService
	}
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}
	return entities.LineItem{
		ID:          l.newID(),
		TenantID:    tenantID,
		ParentType:  parent,
		ParentID:    parentID,
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Type:        typ,
		Total:       finance.LineTotal(in.Quantity, in.UnitPrice),
		SortOrder:   sortOrder,
		CreatedAt:   now,
	}
}

// copyLines re-parents priced lines onto a new document.
func (l *lifecycle) copyLines(src []entities.LineItem, tenantID string, parent entities.LineParent, parentID string, now time.Time) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(src))
	for i, s := range src {
		out = append(out, entities.LineItem{
			ID:          l.newID(),
			TenantID:    tenantID,
			ParentType:  parent,
			ParentID:    parentID,
			Description: s.Description,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			Type:        s.Type,
			Total:       finance.LineTotal(s.Quantity, s.UnitPrice),
			SortOrder:   i,
			CreatedAt:   now,
		})
	}
	return out
}

// removeLine drops lineID from lines, reporting whether it was present.
func removeLine(lines []entities.LineItem, lineID string) ([]entities.LineItem, bool) {
	out := make([]entities.LineItem, 0, len(lines))
	found := false
	for _, l := range lines {
		if l.ID == lineID {
			found = true
			continue
		}
		out = append(out, l)
	}
	return out, found
}

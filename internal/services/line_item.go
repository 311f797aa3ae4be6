package services

import "fmt"

// LineItemInput is one raw chargeable item as submitted by the caller.
type LineItemInput struct {
	Description     string
	Category        string
	Quantity        int32
	UnitPrice       float64
	DiscountPercent float64
}

// NormalizedLineItem is a validated item with its money fields computed.
// Line items are immutable once the invoice is created.
type NormalizedLineItem struct {
	Description     string
	Category        string
	Quantity        int32
	UnitPriceCents  int64
	DiscountPercent float64
	LineTotalCents  int64
	DiscountCents   int64
	FinalCents      int64
}

// ValidateLineItem validates and normalizes a single item. Pure function:
// no side effects, no persistence.
func ValidateLineItem(index int, in LineItemInput) (NormalizedLineItem, error) {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", index, name)
	}

	if in.Description == "" {
		return NormalizedLineItem{}, &ValidationError{Field: field("description"), Message: "description is required"}
	}
	if in.Quantity < 1 {
		return NormalizedLineItem{}, &ValidationError{Field: field("quantity"), Message: "quantity must be at least 1"}
	}
	if in.UnitPrice < 0 {
		return NormalizedLineItem{}, &ValidationError{Field: field("unit_price"), Message: "unit price cannot be negative"}
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return NormalizedLineItem{}, &ValidationError{Field: field("discount_percent"), Message: "discount percent must be between 0 and 100"}
	}

	unitCents := ToCents(in.UnitPrice)
	lineTotal := int64(in.Quantity) * unitCents
	discount := PercentOf(lineTotal, in.DiscountPercent)

	return NormalizedLineItem{
		Description:     in.Description,
		Category:        in.Category,
		Quantity:        in.Quantity,
		UnitPriceCents:  unitCents,
		DiscountPercent: in.DiscountPercent,
		LineTotalCents:  lineTotal,
		DiscountCents:   discount,
		FinalCents:      lineTotal - discount,
	}, nil
}

// ValidateLineItems validates all items, rejecting an empty list.
func ValidateLineItems(inputs []LineItemInput) ([]NormalizedLineItem, error) {
	if len(inputs) == 0 {
		return nil, &ValidationError{Field: "items", Message: "at least one line item is required"}
	}

	items := make([]NormalizedLineItem, 0, len(inputs))
	for i, in := range inputs {
		item, err := ValidateLineItem(i, in)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

package types

import "github.com/shopspring/decimal"

// LineItem is one row of the projected order. Line items are derived, never
// stored: a SKU produces a line item exactly when its quantity is positive.
type LineItem struct {
	SKU       SKUID           `json:"sku"`
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Config    string          `json:"config"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"monthly_unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is the ordered sequence of current line items plus the grand total.
// It is recomputed from its inputs on every change and carries no identity.
type Order struct {
	Items      []LineItem      `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Empty reports whether the order has no line items.
func (o Order) Empty() bool {
	return len(o.Items) == 0
}

// Round2 rounds a monetary amount half-up to 2 decimal places. Decimal
// arithmetic keeps cent boundaries exact where float64 would drift.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmount renders a monetary amount with exactly 2 decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

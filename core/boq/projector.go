// Package boq projects catalog prices and chosen quantities into the
// ordered bill of quantities.
package boq

import (
	"github.com/shopspring/decimal"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/selection"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

// Project derives the order from a price catalog and a quantity selection.
//
// The projection is pure: identical inputs always yield an identical order.
// Line items appear for exactly the SKUs with positive quantity, flavors
// first in their declared order, then services in theirs. Each subtotal is
// rounded half-up to cents; the grand total is the rounded sum of those
// rounded subtotals.
func Project(cat catalog.Catalog, sel *selection.Selection) types.Order {
	var items []types.LineItem

	for _, f := range types.Flavors {
		qty := sel.Flavor(f.ID)
		if qty <= 0 {
			continue
		}
		items = append(items, lineItem(f.ID, types.CategoryCompute, types.NameVirtualMachine, f.Label, qty, cat.Get(f.ID)))
	}

	for _, svc := range types.Services {
		qty := sel.Service(svc.ID)
		if qty <= 0 {
			continue
		}
		items = append(items, lineItem(svc.ID, svc.Category, svc.Name, svc.Config, qty, cat.Get(svc.ID)))
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	return types.Order{
		Items:      items,
		GrandTotal: types.Round2(total),
	}
}

func lineItem(id types.SKUID, category, name, config string, qty int, price decimal.Decimal) types.LineItem {
	return types.LineItem{
		SKU:       id,
		Category:  category,
		Name:      name,
		Config:    config,
		Quantity:  qty,
		UnitPrice: price,
		Subtotal:  types.Round2(price.Mul(decimal.NewFromInt(int64(qty)))),
	}
}

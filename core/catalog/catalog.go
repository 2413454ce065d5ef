// Package catalog holds the commercial price catalog: the authoritative
// mapping from every SKU to its monthly unit price.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

// Catalog maps every SKU to a non-negative monthly unit price. A Catalog is
// immutable once built; callers replace it wholesale on save or reset.
type Catalog struct {
	prices map[types.SKUID]decimal.Decimal
}

// New builds a catalog from a price map, validating that every SKU in the
// enumeration is covered and every price is non-negative. The input map is
// copied.
func New(prices map[types.SKUID]decimal.Decimal) (Catalog, error) {
	c := Catalog{prices: make(map[types.SKUID]decimal.Decimal, len(prices))}
	for id, price := range prices {
		if !types.IsSKU(id) {
			return Catalog{}, errors.Newf(errors.TypeInput, "unknown SKU %q", id)
		}
		if price.IsNegative() {
			return Catalog{}, errors.Newf(errors.TypeInput, "negative price for SKU %q", id)
		}
		c.prices[id] = price
	}
	for _, id := range types.AllSKUs() {
		if _, ok := c.prices[id]; !ok {
			return Catalog{}, errors.Newf(errors.TypeInput, "missing price for SKU %q", id)
		}
	}
	return c, nil
}

// Get returns the monthly unit price for a SKU. The SKU enumeration is
// closed, so an unknown id is a programming error and panics rather than
// surfacing a user-facing failure.
func (c Catalog) Get(id types.SKUID) decimal.Decimal {
	price, ok := c.prices[id]
	if !ok {
		panic("catalog: no price for SKU " + string(id))
	}
	return price
}

// Lookup returns the price for a SKU and whether it exists.
func (c Catalog) Lookup(id types.SKUID) (decimal.Decimal, bool) {
	price, ok := c.prices[id]
	return price, ok
}

// Prices returns a copy of the full price map, keyed for serialization and
// draft editing. Mutating the copy never affects the catalog.
func (c Catalog) Prices() map[types.SKUID]decimal.Decimal {
	out := make(map[types.SKUID]decimal.Decimal, len(c.prices))
	for id, price := range c.prices {
		out[id] = price
	}
	return out
}

// Equal reports whether two catalogs carry identical prices.
func (c Catalog) Equal(other Catalog) bool {
	if len(c.prices) != len(other.prices) {
		return false
	}
	for id, price := range c.prices {
		op, ok := other.prices[id]
		if !ok || !price.Equal(op) {
			return false
		}
	}
	return true
}

package boq_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/boq"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/selection"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

func mustSet(t *testing.T, sel *selection.Selection, id types.SKUID, qty int) {
	t.Helper()
	require.NoError(t, sel.Set(id, qty))
}

func TestProjectEmptySelection(t *testing.T) {
	order := boq.Project(catalog.Defaults(), selection.New())
	require.True(t, order.Empty())
	require.Equal(t, "0.00", types.FormatAmount(order.GrandTotal))
}

func TestProjectReferenceScenario(t *testing.T) {
	sel := selection.New()
	mustSet(t, sel, "flavor_1_1", 2)
	mustSet(t, sel, "evs", 100)

	order := boq.Project(catalog.Defaults(), sel)
	require.Len(t, order.Items, 2)

	vm := order.Items[0]
	require.Equal(t, types.SKUID("flavor_1_1"), vm.SKU)
	require.Equal(t, "Compute Services (ECS)", vm.Category)
	require.Equal(t, "Virtual Machine", vm.Name)
	require.Equal(t, "1 vCPU 1 GB RAM", vm.Config)
	require.Equal(t, 2, vm.Quantity)
	require.Equal(t, "15.00", types.FormatAmount(vm.UnitPrice))
	require.Equal(t, "30.00", types.FormatAmount(vm.Subtotal))

	evs := order.Items[1]
	require.Equal(t, types.SKUID("evs"), evs.SKU)
	require.Equal(t, "EVS Disk", evs.Name)
	require.Equal(t, 100, evs.Quantity)
	require.Equal(t, "0.15", types.FormatAmount(evs.UnitPrice))
	require.Equal(t, "15.00", types.FormatAmount(evs.Subtotal))

	require.Equal(t, "45.00", types.FormatAmount(order.GrandTotal))
}

func TestProjectOrderingFlavorsThenServices(t *testing.T) {
	sel := selection.New()
	// Deliberately set in reverse of declared order.
	mustSet(t, sel, "bandwidth", 1)
	mustSet(t, sel, "evs", 1)
	mustSet(t, sel, "flavor_64_256", 1)
	mustSet(t, sel, "flavor_1_1", 1)

	order := boq.Project(catalog.Defaults(), sel)
	require.Len(t, order.Items, 4)
	require.Equal(t, types.SKUID("flavor_1_1"), order.Items[0].SKU)
	require.Equal(t, types.SKUID("flavor_64_256"), order.Items[1].SKU)
	require.Equal(t, types.SKUID("evs"), order.Items[2].SKU)
	require.Equal(t, types.SKUID("bandwidth"), order.Items[3].SKU)
}

func TestProjectSkipsZeroQuantities(t *testing.T) {
	sel := selection.New()
	mustSet(t, sel, "flavor_2_4", 3)
	mustSet(t, sel, "hss", 0)

	order := boq.Project(catalog.Defaults(), sel)
	require.Len(t, order.Items, 1)
	require.Equal(t, types.SKUID("flavor_2_4"), order.Items[0].SKU)
}

func TestProjectIdempotent(t *testing.T) {
	sel := selection.New()
	mustSet(t, sel, "flavor_4_8", 5)
	mustSet(t, sel, "waf", 2)
	cat := catalog.Defaults()

	first := boq.Project(cat, sel)
	second := boq.Project(cat, sel)

	require.Equal(t, len(first.Items), len(second.Items))
	for i := range first.Items {
		require.Equal(t, first.Items[i].SKU, second.Items[i].SKU)
		require.True(t, first.Items[i].Subtotal.Equal(second.Items[i].Subtotal))
	}
	require.True(t, first.GrandTotal.Equal(second.GrandTotal))
}

func TestSubtotalRounding(t *testing.T) {
	tests := []struct {
		name  string
		price string
		qty   int
		want  string
	}{
		{"cents times quantity", "0.15", 3, "0.45"},
		{"whole dollars", "45.00", 3, "135.00"},
		{"repeating binary fraction", "5.005", 2, "10.01"},
		{"half cent rounds up", "0.125", 1, "0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := catalog.Defaults().Prices()
			prices["evs"] = decimal.RequireFromString(tt.price)
			cat, err := catalog.New(prices)
			require.NoError(t, err)

			sel := selection.New()
			mustSet(t, sel, "evs", tt.qty)

			order := boq.Project(cat, sel)
			require.Len(t, order.Items, 1)
			require.Equal(t, tt.want, types.FormatAmount(order.Items[0].Subtotal))
		})
	}
}

func TestGrandTotalSumsRoundedSubtotals(t *testing.T) {
	// Two items at 5.005/unit: each subtotal rounds to 5.01 first, so the
	// grand total is 10.02, not round2(10.01) of the raw sum.
	prices := catalog.Defaults().Prices()
	prices["eip"] = decimal.RequireFromString("5.005")
	prices["hss"] = decimal.RequireFromString("5.005")
	cat, err := catalog.New(prices)
	require.NoError(t, err)

	sel := selection.New()
	mustSet(t, sel, "eip", 1)
	mustSet(t, sel, "hss", 1)

	order := boq.Project(cat, sel)
	require.Equal(t, "5.01", types.FormatAmount(order.Items[0].Subtotal))
	require.Equal(t, "5.01", types.FormatAmount(order.Items[1].Subtotal))
	require.Equal(t, "10.02", types.FormatAmount(order.GrandTotal))
}

func TestNoFloatDriftAcrossManyItems(t *testing.T) {
	// 0.1 + 0.2 style accumulation: 3 EVS units at 0.10 each across many
	// quantities must stay exact.
	prices := catalog.Defaults().Prices()
	prices["evs"] = decimal.RequireFromString("0.10")
	prices["bandwidth"] = decimal.RequireFromString("0.20")
	cat, err := catalog.New(prices)
	require.NoError(t, err)

	sel := selection.New()
	mustSet(t, sel, "evs", 1)
	mustSet(t, sel, "bandwidth", 1)

	order := boq.Project(cat, sel)
	require.Equal(t, "0.30", types.FormatAmount(order.GrandTotal))
}

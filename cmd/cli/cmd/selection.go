package cmd

import (
	"os"
	"strings"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/selection"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

// buildSelection assembles the quantity selection from an optional JSON
// document plus repeated --flavor/--service id=qty flags. Flags override
// document entries for the same SKU.
func buildSelection(selectionFile string, flavorArgs, serviceArgs []string) (*selection.Selection, error) {
	sel := selection.New()

	if selectionFile != "" {
		data, err := os.ReadFile(selectionFile)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "reading selection document", err)
		}
		sel, err = selection.FromJSON(data)
		if err != nil {
			return nil, err
		}
	}

	for _, arg := range flavorArgs {
		id, qty, err := splitQuantityArg(arg)
		if err != nil {
			return nil, err
		}
		if _, ok := types.FlavorByID(id); !ok {
			return nil, errors.NotFound("flavor SKU", string(id))
		}
		if err := sel.Set(id, qty); err != nil {
			return nil, err
		}
	}

	for _, arg := range serviceArgs {
		id, qty, err := splitQuantityArg(arg)
		if err != nil {
			return nil, err
		}
		if _, ok := types.ServiceByID(id); !ok {
			return nil, errors.NotFound("service SKU", string(id))
		}
		if err := sel.Set(id, qty); err != nil {
			return nil, err
		}
	}

	return sel, nil
}

func splitQuantityArg(arg string) (types.SKUID, int, error) {
	id, raw, ok := strings.Cut(arg, "=")
	if !ok || id == "" {
		return "", 0, errors.Newf(errors.TypeInput, "expected sku=quantity, got %q", arg)
	}
	return types.SKUID(id), selection.ParseQuantity(raw), nil
}

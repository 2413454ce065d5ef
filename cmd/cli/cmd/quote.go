package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/adapters/storage"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/boq"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/ui"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/config"
)

var (
	quoteSelectionFile string
	quoteFlavors       []string
	quoteServices      []string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Project the monthly bill of quantities for a selection",
	Long: `Project the current price catalog against a quantity selection and
print the resulting bill of quantities.

Quantities come from a JSON selection document and/or repeated flags:

  hcs-calc quote --flavor flavor_1_1=2 --service evs=100
  hcs-calc quote --selection order.json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteSelectionFile, "selection", "s", "", "JSON selection document")
	quoteCmd.Flags().StringArrayVar(&quoteFlavors, "flavor", nil, "flavor quantity as sku=qty (repeatable)")
	quoteCmd.Flags().StringArrayVar(&quoteServices, "service", nil, "service quantity as sku=qty (repeatable)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	sel, err := buildSelection(quoteSelectionFile, quoteFlavors, quoteServices)
	if err != nil {
		out.Error("%v", err)
		return err
	}

	store := storage.NewCatalogStore(cfg.SnapshotPath)
	order := boq.Project(store.Load(), sel)
	out.RenderOrder(order)
	return nil
}

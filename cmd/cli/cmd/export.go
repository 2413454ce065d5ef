package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/adapters/storage"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/boq"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/export"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/ui"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/config"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

var (
	exportSelectionFile string
	exportFlavors       []string
	exportServices      []string
	exportOutput        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the bill of quantities as a CSV document",
	Long: `Project the selection and write the official BOQ CSV document.

An empty selection exports nothing:

  hcs-calc export --selection order.json
  hcs-calc export --flavor flavor_2_4=3 -o quotes/boq.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportSelectionFile, "selection", "s", "", "JSON selection document")
	exportCmd.Flags().StringArrayVar(&exportFlavors, "flavor", nil, "flavor quantity as sku=qty (repeatable)")
	exportCmd.Flags().StringArrayVar(&exportServices, "service", nil, "service quantity as sku=qty (repeatable)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default: "+export.Filename+" in the export dir)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	sel, err := buildSelection(exportSelectionFile, exportFlavors, exportServices)
	if err != nil {
		out.Error("%v", err)
		return err
	}

	store := storage.NewCatalogStore(cfg.SnapshotPath)
	order := boq.Project(store.Load(), sel)

	doc, err := export.Document(order, time.Now())
	if err != nil {
		if errors.IsType(err, errors.TypeExport) {
			out.Warning("nothing to export: the selection has no line items")
			return nil
		}
		out.Error("%v", err)
		return err
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Output.ExportDir, export.Filename)
	}
	if err := os.WriteFile(path, doc, 0644); err != nil {
		out.Error("writing document: %v", err)
		return err
	}

	out.Success("BOQ exported to %s (%d line items)", path, len(order.Items))
	return nil
}

// Package cmd - operator commands for the commercial price catalog.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/adapters/storage"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/admin"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/ui"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/config"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Commercial price management (operator only)",
	Long: `Inspect and edit the monthly unit-price catalog.

Edits are persisted to the catalog snapshot and apply to every subsequent
quote. Editing commands require the operator password.`,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current price catalog",
	RunE:  runPricingShow,
}

var pricingSetCmd = &cobra.Command{
	Use:   "set <sku> <price>",
	Short: "Update one monthly unit price",
	Args:  cobra.ExactArgs(2),
	RunE:  runPricingSet,
}

var pricingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default prices",
	RunE:  runPricingReset,
}

var pricingPassword string

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingShowCmd)
	pricingCmd.AddCommand(pricingSetCmd)
	pricingCmd.AddCommand(pricingResetCmd)

	pricingSetCmd.Flags().StringVar(&pricingPassword, "password", "", "operator password [REQUIRED]")
	pricingResetCmd.Flags().StringVar(&pricingPassword, "password", "", "operator password [REQUIRED]")
	pricingSetCmd.MarkFlagRequired("password")
	pricingResetCmd.MarkFlagRequired("password")
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	cat := storage.NewCatalogStore(cfg.SnapshotPath).Load()

	flavorRows := make([][2]string, 0, len(types.Flavors))
	for _, f := range types.Flavors {
		flavorRows = append(flavorRows, [2]string{string(f.ID), types.FormatAmount(cat.Get(f.ID))})
	}
	out.RenderRates("ECS Flavor Monthly Rates", flavorRows)

	serviceRows := make([][2]string, 0, len(types.Services))
	for _, svc := range types.Services {
		serviceRows = append(serviceRows, [2]string{string(svc.ID), types.FormatAmount(cat.Get(svc.ID))})
	}
	out.RenderRates("Service Monthly Rates", serviceRows)
	return nil
}

func runPricingSet(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	session := admin.NewSession(storage.NewCatalogStore(cfg.SnapshotPath))
	defer session.Logout()

	if !session.Authenticate(pricingPassword) {
		out.Error("invalid password")
		return errors.New(errors.TypeAuth, "authentication failed")
	}

	sku := types.SKUID(args[0])
	price := admin.ParsePrice(args[1])
	if err := session.Edit(sku, price); err != nil {
		out.Error("%v", err)
		return err
	}
	if _, err := session.Commit(); err != nil {
		out.Error("%v", err)
		return err
	}

	out.Success("%s updated to %s %s/month", sku, types.FormatAmount(price), types.Currency)
	return nil
}

func runPricingReset(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	session := admin.NewSession(storage.NewCatalogStore(cfg.SnapshotPath))
	defer session.Logout()

	if !session.Authenticate(pricingPassword) {
		out.Error("invalid password")
		return errors.New(errors.TypeAuth, "authentication failed")
	}

	if err := session.ResetDraft(); err != nil {
		out.Error("%v", err)
		return err
	}
	if _, err := session.Commit(); err != nil {
		out.Error("%v", err)
		return err
	}

	out.Success("price catalog restored to defaults")
	return nil
}

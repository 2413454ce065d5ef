// Package cmd provides the CLI commands for hcs-calc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/config"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hcs-calc",
	Short: "Compute commercial quotes for Huawei Cloud Stack resources",
	Long: `hcs-calc builds a monthly bill of quantities for HCS compute flavors
and add-on services from a unit-price catalog.

Examples:
  hcs-calc quote --flavor flavor_1_1=2 --service evs=100
  hcs-calc export --selection order.json -o boq.csv
  hcs-calc pricing show`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hcs-calc/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hcs-calc version 0.1.0")
	},
}

// Package main is the entry point for the hcs-calc CLI.
package main

import (
	"os"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "tpctl",
		Short:        "Inspect, validate and export tile property lists",
		SilenceUsage: true,
	}
	addConfigFlags(root)
	root.AddCommand(listCmd())
	root.AddCommand(getCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(runCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/tileprops/script"
)

func runCmd() *cobra.Command {
	var globals []string
	cmd := &cobra.Command{
		Use:   "run <script.tengo>",
		Short: "Run a tengo script against the loaded store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0], globals)
		},
	}
	cmd.Flags().StringSliceVar(&globals, "print", nil, "Script globals to print after the run")
	return cmd
}

func runScript(cmd *cobra.Command, path string, globals []string) error {
	ctx := context.Background()
	_, s, reg, closeFn, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	rt, err := script.CompileFile(path, s, reg)
	if err != nil {
		return err
	}
	if err := rt.Run(ctx); err != nil {
		return err
	}
	for _, name := range globals {
		fmt.Fprintf(os.Stdout, "%s = %v\n", name, rt.Get(name))
	}
	return nil
}

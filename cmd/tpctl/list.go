package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loaded property lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every property")
	return cmd
}

func runList(cmd *cobra.Command, verbose bool) error {
	_, s, _, closeFn, err := openStore(context.Background(), cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	lists := s.Lists()
	if len(lists) == 0 {
		fmt.Fprintln(os.Stdout, "No property lists found.")
		return nil
	}
	for _, l := range lists {
		names := make([]string, 0, len(l.AffectedTiles))
		for _, t := range l.AffectedTiles {
			names = append(names, t.TileName())
		}
		fmt.Fprintf(os.Stdout, "%s [%s] tiles=%s properties=%d\n",
			l.Name, strings.Join(l.Tags, ","), strings.Join(names, ","), l.Len())
		if !verbose {
			continue
		}
		for _, v := range l.Properties {
			fmt.Fprintf(os.Stdout, "  %s\n", v)
		}
	}
	return nil
}

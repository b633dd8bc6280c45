package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/variable"
)

func getCmd() *cobra.Command {
	var listName string
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "get <tile> <property>",
		Short: "Print a property of the list affecting a tile",
		Long:  "Print a property of the list affecting a tile. With --list the first argument is omitted and the list is chosen by name.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args, listName, copyOut)
		},
	}
	cmd.Flags().StringVar(&listName, "list", "", "Resolve the list by name instead of by tile")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the value to the clipboard")
	return cmd
}

func runGet(cmd *cobra.Command, args []string, listName string, copyOut bool) error {
	cfg, s, reg, closeFn, err := openStore(context.Background(), cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	var list *proplist.List
	var prop string
	switch {
	case listName != "" && len(args) == 1:
		list, prop = s.ResolveByName(listName, cfg.Strict), args[0]
	case listName == "" && len(args) == 2:
		tile, ok := reg.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown tile %q", args[0])
		}
		list, prop = s.ResolveByTile(tile, cfg.Strict), args[1]
	default:
		return fmt.Errorf("expected <tile> <property> or --list <name> <property>")
	}
	if list == nil {
		return fmt.Errorf("no property list found")
	}

	v := list.Find(prop)
	if v == nil {
		return fmt.Errorf("list %q has no property %q", list.Name, prop)
	}
	value := s.GetProperty(list, prop, v.Kind(), cfg.Strict)
	out, err := formatValue(value)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)

	if copyOut {
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		holdClipboard(ctx, clipboard.Write(clipboard.FmtText, []byte(out)), os.Stderr)
	}
	return nil
}

// holdClipboard keeps the process alive while it owns the clipboard, until
// another program takes it over or ctx is done.
func holdClipboard(ctx context.Context, changed <-chan struct{}, notice io.Writer) {
	fmt.Fprintln(notice, "Copied to clipboard; holding it until it is overwritten (Ctrl+C to exit).")
	select {
	case <-changed:
	case <-ctx.Done():
	}
}

func formatValue(value any) (string, error) {
	data, err := yaml.Marshal(variable.EncodeValue(value))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

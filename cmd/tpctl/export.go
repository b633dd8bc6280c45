package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/tileprops/content/postgres"
	"github.com/milk9111/tileprops/content/sqlite"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
)

func exportCmd() *cobra.Command {
	var sqliteOut string
	var postgresOut string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the configured property lists into a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, sqliteOut, postgresOut)
		},
	}
	cmd.Flags().StringVar(&sqliteOut, "to-sqlite", "", "SQLite database to write")
	cmd.Flags().StringVar(&postgresOut, "to-postgres", "", "Postgres DSN to write")
	return cmd
}

type listWriter interface {
	PutAll(ctx context.Context, lists []*proplist.List) error
	Close() error
}

func runExport(cmd *cobra.Command, sqliteOut, postgresOut string) error {
	if (sqliteOut == "") == (postgresOut == "") {
		return fmt.Errorf("exactly one of --to-sqlite or --to-postgres is required")
	}

	ctx := context.Background()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src, closeFn, err := cfg.OpenSource(ctx, tiles.NewRegistry())
	if err != nil {
		return err
	}
	defer closeFn()

	lists, err := src.FetchAllTagged(ctx, cfg.Tag)
	if err != nil {
		return err
	}

	var dst listWriter
	if sqliteOut != "" {
		dst, err = sqlite.Open(ctx, sqliteOut, nil)
	} else {
		dst, err = postgres.New(ctx, postgresOut, nil)
	}
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := dst.PutAll(ctx, lists); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Exported %d lists.\n", len(lists))
	return nil
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/tileprops/config"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
)

var flags struct {
	configPath string
	dir        string
	tag        string
	sqlitePath string
	dsn        string
	strict     bool
}

func addConfigFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultFile, "Config file")
	pf.StringVar(&flags.dir, "dir", "", "Property list directory")
	pf.StringVar(&flags.tag, "tag", "", "Tag selecting the lists to load")
	pf.StringVar(&flags.sqlitePath, "sqlite", "", "Read lists from this SQLite database")
	pf.StringVar(&flags.dsn, "postgres", "", "Read lists from this Postgres DSN")
	pf.BoolVar(&flags.strict, "strict", false, "Surface warnings for failed lookups")
}

// loadConfig reads the config file and environment, then applies any flags
// set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("dir") {
		cfg.ContentDir = flags.dir
	}
	if fs.Changed("tag") {
		cfg.Tag = flags.tag
	}
	if fs.Changed("sqlite") {
		cfg.SQLitePath = flags.sqlitePath
	}
	if fs.Changed("postgres") {
		cfg.PostgresDSN = flags.dsn
	}
	if fs.Changed("strict") {
		cfg.Strict = flags.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(ctx context.Context, cmd *cobra.Command) (*config.Config, *store.Store, *tiles.Registry, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	reg := tiles.NewRegistry()
	s, closeFn, err := cfg.LoadStore(ctx, reg, store.Options{
		Logger: log.New(os.Stderr, "", 0),
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return cfg, s, reg, closeFn, nil
}

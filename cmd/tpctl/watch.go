package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/milk9111/tileprops/config"
	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload and validate the list directory whenever a list changes",
		RunE:  runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Backend() != "fs" {
		return fmt.Errorf("watch only supports list directories, not %s", cfg.Backend())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := content.NewWatcher(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.ContentDir, err)
	}
	defer w.Close()

	reload(ctx, cfg)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Printf("tpctl: %s changed", path)
			reload(ctx, cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("tpctl: watch error: %v", err)
		}
	}
}

// reload builds a fresh store from the directory and reports its lists.
func reload(ctx context.Context, cfg *config.Config) {
	s, closeFn, err := cfg.LoadStore(ctx, tiles.NewRegistry(), store.Options{
		Logger: log.New(os.Stderr, "", 0),
	})
	if err != nil {
		log.Printf("tpctl: reload: %v", err)
		return
	}
	defer closeFn()

	lists := s.Lists()
	fmt.Fprintf(os.Stdout, "Loaded %d lists.\n", len(lists))
	if err := report(lists); err != nil {
		log.Printf("tpctl: %v", err)
	}
}

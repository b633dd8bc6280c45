package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report authoring problems in the configured property lists",
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
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
	return report(lists)
}

func report(lists []*proplist.List) error {
	issues := proplist.Validate(lists)
	if len(issues) == 0 {
		fmt.Fprintf(os.Stdout, "No issues found in %d lists.\n", len(lists))
		return nil
	}

	errorCount := 0
	for _, issue := range issues {
		if issue.Severity == proplist.SeverityError {
			errorCount++
		}
		fmt.Fprintln(os.Stdout, issue)
	}
	if errorCount > 0 {
		return fmt.Errorf("%d validation errors", errorCount)
	}
	return nil
}

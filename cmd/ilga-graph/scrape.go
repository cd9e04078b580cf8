// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tylermorales/ilga-graph/internal/etl"
)

func scrapeCmd() *cobra.Command {
	var fast bool
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run a full scrape: members, committees, bills, votes, and witness slips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runETL(cmd.Context(), etl.ModeScrape, fast)
		},
	}
	cmd.Flags().BoolVar(&fast, "fast", false, "reduce inter-request delay (spec §4.1 fast mode)")
	return cmd
}

func incrementalCmd() *cobra.Command {
	var fast bool
	cmd := &cobra.Command{
		Use:   "incremental",
		Short: "Re-scrape only what has changed since the last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runETL(cmd.Context(), etl.ModeIncremental, fast)
		},
	}
	cmd.Flags().BoolVar(&fast, "fast", false, "reduce inter-request delay (spec §4.1 fast mode)")
	return cmd
}

func runETL(ctx context.Context, mode etl.Mode, fast bool) error {
	b, err := newBootstrap(ctx, fast)
	if err != nil {
		return err
	}
	defer b.close()

	result, err := b.orchestrator().Run(ctx, mode)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "run complete",
		"mode", mode,
		"members", len(result.Graph.Members),
		"bills", len(result.Graph.Bills),
		"committees", len(result.Graph.Committees),
	)
	return nil
}

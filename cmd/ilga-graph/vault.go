// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tylermorales/ilga-graph/internal/etl"
	"github.com/tylermorales/ilga-graph/internal/vault"
)

func vaultExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault-export",
		Short: "Render every Member, Bill, and Committee to a Markdown vault directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVaultExport(cmd.Context())
		},
	}
	return cmd
}

func runVaultExport(ctx context.Context) error {
	b, err := newBootstrap(ctx, false)
	if err != nil {
		return err
	}
	defer b.close()

	result, err := b.orchestrator().Run(ctx, etl.ModeLoadOnly)
	if err != nil {
		return err
	}

	exporter := vault.NewMarkdownExporter()
	return exporter.Export(ctx, b.cfg.VaultDir, result.Graph, result.Scorecards, result.Moneyball)
}

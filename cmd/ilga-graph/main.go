// SPDX-License-Identifier: MIT

// ilga-graph scrapes the Illinois General Assembly website, builds the
// legislator/bill/committee/vote/witness-slip graph, computes Scorecard
// and Moneyball analytics, and serves the result over GraphQL and a
// server-rendered advocacy UI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tylermorales/ilga-graph/pkg/log"
)

var version = "0.1.0"

func init() {
	log.InitStructureLogConfig()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ilga-graph",
		Short: "Illinois General Assembly legislative graph and analytics",
		Long: `ilga-graph scrapes www.ilga.gov, builds a legislator/bill/committee/
vote/witness-slip graph, computes Scorecard and Moneyball composite
influence analytics, and serves the result over GraphQL, a
server-rendered advocacy UI, and a Markdown vault export.`,
		Version: version,
	}

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(incrementalCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(vaultExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

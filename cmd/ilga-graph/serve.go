// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tylermorales/ilga-graph/internal/etl"
	"github.com/tylermorales/ilga-graph/internal/geo"
	"github.com/tylermorales/ilga-graph/internal/graphqlapi"
	"github.com/tylermorales/ilga-graph/internal/httpapi"
)

// gracefulShutdownSeconds mirrors the teacher's committee-api: long
// enough to outlast an in-flight GraphQL request, short enough that a
// liveness probe's terminationGracePeriodSeconds still has headroom.
const gracefulShutdownSeconds = 25

func serveCmd() *cobra.Command {
	var (
		addr          string
		crosswalkPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the cache store and serve GraphQL plus the advocacy UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, crosswalkPath)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&crosswalkPath, "crosswalk", "", "path to the ZIP-to-district crosswalk CSV (spec §4.9); when empty the advocacy form is still served but every search returns an error result")
	return cmd
}

func runServe(parentCtx context.Context, addr, crosswalkPath string) error {
	b, err := newBootstrap(parentCtx, false)
	if err != nil {
		return err
	}
	defer b.close()

	result, err := b.orchestrator().Run(parentCtx, etl.ModeLoadOnly)
	if err != nil {
		return err
	}

	resolver := graphqlapi.New(result.Graph, result.Scorecards, result.Moneyball)
	schema, err := graphqlapi.Schema(resolver)
	if err != nil {
		return fmt.Errorf("ilga-graph: parse GraphQL schema: %w", err)
	}

	var crosswalk *geo.Crosswalk
	if crosswalkPath != "" {
		crosswalk, err = geo.LoadCSV(crosswalkPath)
		if err != nil {
			return err
		}
	}

	srv := httpapi.New(b.cfg, schema, crosswalk)
	srv.SetSnapshot(&httpapi.Snapshot{Graph: result.Graph, Scorecards: result.Scorecards, Moneyball: result.Moneyball})

	ctx, cancel := context.WithCancel(parentCtx)
	errc := make(chan error, 1)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	var wg sync.WaitGroup
	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler(), ReadHeaderTimeout: 60 * time.Second}
	wg.Add(1)
	go func() {
		defer wg.Done()
		go func() {
			slog.InfoContext(ctx, "HTTP server listening", "addr", addr)
			errc <- httpSrv.ListenAndServe()
		}()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), (gracefulShutdownSeconds-5)*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "failed to shut down HTTP server", "error", err)
		}
	}()

	slog.InfoContext(ctx, "received shutdown signal, stopping server", "signal", <-errc)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownSeconds*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.InfoContext(ctx, "graceful shutdown completed")
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "graceful shutdown timed out")
	}
	return nil
}

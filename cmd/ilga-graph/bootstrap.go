// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/config"
	"github.com/tylermorales/ilga-graph/internal/etl"
	"github.com/tylermorales/ilga-graph/internal/fetch"
	"github.com/tylermorales/ilga-graph/internal/infrastructure/nats"
)

// bootstrap holds the shared dependencies every subcommand needs:
// resolved config, the cache store, and an HTTP fetcher tuned for
// politeness against ilga.gov (spec §4.1).
type bootstrap struct {
	cfg     *config.Config
	store   *cache.Store
	fetcher *fetch.Fetcher
	events  *nats.Client
}

func newBootstrap(ctx context.Context, fast bool) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.LogStartup(ctx)

	store, err := cache.New(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	opts := fetch.DefaultOptions()
	opts.Fast = fast
	fetcher := fetch.New(opts)

	b := &bootstrap{cfg: cfg, store: store, fetcher: fetcher}

	if cfg.ETLEventsURL != "" {
		client, err := nats.Connect(ctx, nats.DefaultConfig(cfg.ETLEventsURL))
		if err != nil {
			slog.WarnContext(ctx, "ops event bus unavailable, continuing without events", "error", err)
		} else {
			b.events = client
		}
	}

	return b, nil
}

func (b *bootstrap) orchestrator() *etl.Orchestrator {
	var opts []etl.Option
	if b.events != nil {
		opts = append(opts, etl.WithEventPublisher(b.events))
	}
	return etl.New(b.cfg, b.store, b.fetcher, opts...)
}

func (b *bootstrap) close() {
	if b.events != nil {
		b.events.Close()
	}
}

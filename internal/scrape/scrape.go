// SPDX-License-Identifier: MIT

// Package scrape implements the Scrapers (spec §4.4): bounded-concurrency
// orchestration of the Fetcher and Parsers into typed batches. Member and
// vote workers send results over a channel to one collecting goroutine,
// and the ETL Orchestrator saves each finished batch. Bill workers add
// results to a mutex-guarded map instead, and the worker that completes
// each checkpoint interval saves the bill collection itself, so bill
// checkpoints do not pass through a single writer goroutine.
package scrape

import (
	"net/url"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/fetch"
	"github.com/tylermorales/ilga-graph/pkg/concurrent"
)

// defaultWorkerCount is the bounded worker-pool size the spec
// prescribes for a scrape pipeline (spec §4.4 member+committee scrape).
const defaultWorkerCount = 10

// Deps bundles everything a Scraper needs: the shared Fetcher, the
// Cache Store results are eventually persisted to, and the bounded
// worker pool every sub-scrape reuses.
type Deps struct {
	Fetcher *fetch.Fetcher
	Store   *cache.Store
	Pool    *concurrent.WorkerPool
	BaseURL string
}

// NewDeps builds Deps with the spec's default worker concurrency.
func NewDeps(fetcher *fetch.Fetcher, store *cache.Store, baseURL string) *Deps {
	return &Deps{
		Fetcher: fetcher,
		Store:   store,
		Pool:    concurrent.NewWorkerPool(defaultWorkerCount),
		BaseURL: baseURL,
	}
}

func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func idFromURL(rawURL, param string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(param)
}

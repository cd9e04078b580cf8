// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// VoteScanStrategy selects how a resumable vote+witness-slip scan picks
// its next batch of roll-call URLs out of the operator-configured
// VOTE_BILL_URLS list (spec §4.4). ILGA exposes no index of roll-call
// votes; the list of per-bill vote pages to watch is curated out of
// band and fed in as config.
type VoteScanStrategy string

const (
	// StrategyLinear takes the next BatchSize URLs after the cursor, in
	// list order.
	StrategyLinear VoteScanStrategy = "linear"
	// StrategySampling visits every Stride'th URL first (a quick sweep
	// for newly-posted votes across the whole list), then on
	// subsequent runs fills the gaps the sampling pass skipped.
	StrategySampling VoteScanStrategy = "sampling"
)

// VoteScanPlan configures one resumable scan run.
type VoteScanPlan struct {
	Strategy  VoteScanStrategy
	BatchSize int
	Stride    int // only meaningful for StrategySampling; must be > 1
}

// VoteScanResult is what one scan run produces, plus the cursor to
// persist into scrape_metadata.json's vote_scan_cursor for the next run.
type VoteScanResult struct {
	VoteEvents   []*model.VoteEvent
	WitnessSlips []*model.WitnessSlip
	NextCursor   string
}

// VotesAndSlips fetches the roll-call vote page and, when the vote was
// taken in committee, the matching witness-slip page, for one batch of
// urls selected by plan starting after cursor (spec §4.4). Each URL is
// expected to carry DocNum (leg_id) and GA query params identifying the
// bill it belongs to; the bill_number is looked up from legIDToBill.
func VotesAndSlips(ctx context.Context, deps *Deps, urls []string, legIDToBill map[string]string, cursor string, plan VoteScanPlan) (*VoteScanResult, error) {
	batch, nextCursor := selectBatch(urls, cursor, plan)

	results := make(chan struct {
		events []*model.VoteEvent
		slips  []*model.WitnessSlip
	}, len(batch))

	var jobs []func() error
	for _, voteURL := range batch {
		voteURL := voteURL
		jobs = append(jobs, func() error {
			legID := idFromURL(voteURL, "DocNum")
			billNumber := legIDToBill[legID]
			if billNumber == "" {
				slog.WarnContext(ctx, "vote scan: unknown leg_id, skipping", "url", voteURL)
				return nil
			}

			resp, err := deps.Fetcher.Fetch(ctx, voteURL)
			if err != nil {
				slog.WarnContext(ctx, "vote event fetch failed, skipping", "url", voteURL, "error", err)
				return nil
			}
			event, warnings, err := parse.ParseVoteEvent(resp.Body, voteURL, billNumber)
			if err != nil {
				slog.WarnContext(ctx, "vote event parse failed, skipping", "url", voteURL, "error", err)
				return nil
			}
			for _, w := range warnings {
				slog.WarnContext(ctx, "vote event warning", "error", w)
			}

			var slips []*model.WitnessSlip
			if event.Kind == model.VoteCommittee && event.CommitteeCode != "" {
				slipURL := resolveURL(deps.BaseURL, fmt.Sprintf(
					"/legislation/witnesslips.asp?DocNum=%s&CommitteeID=%s", legID, event.CommitteeCode))
				slipResp, err := deps.Fetcher.Fetch(ctx, slipURL)
				if err != nil {
					slog.WarnContext(ctx, "witness slips fetch failed, skipping", "url", slipURL, "error", err)
				} else {
					parsed, warnings, err := parse.ParseWitnessSlips(slipResp.Body, slipURL, billNumber, event.CommitteeCode)
					if err != nil {
						slog.WarnContext(ctx, "witness slips parse failed, skipping", "url", slipURL, "error", err)
					} else {
						for _, w := range warnings {
							slog.WarnContext(ctx, "witness slip warning", "error", w)
						}
						for i := range parsed {
							slips = append(slips, &parsed[i])
						}
					}
				}
			}

			results <- struct {
				events []*model.VoteEvent
				slips  []*model.WitnessSlip
			}{[]*model.VoteEvent{event}, slips}
			return nil
		})
	}

	if err := deps.Pool.Run(ctx, jobs...); err != nil {
		return nil, apperrors.NewFetch(apperrors.FetchTransient, "vote scan batch", 0, err)
	}
	close(results)

	out := &VoteScanResult{NextCursor: nextCursor}
	for r := range results {
		out.VoteEvents = append(out.VoteEvents, r.events...)
		out.WitnessSlips = append(out.WitnessSlips, r.slips...)
	}
	return out, nil
}

// selectBatch picks the next window of urls to fetch and the cursor to
// resume from next time, per plan.Strategy.
func selectBatch(urls []string, cursor string, plan VoteScanPlan) (batch []string, nextCursor string) {
	if len(urls) == 0 {
		return nil, cursor
	}
	switch plan.Strategy {
	case StrategySampling:
		return selectSamplingBatch(urls, cursor, plan)
	default:
		return selectLinearBatch(urls, cursor, plan)
	}
}

func selectLinearBatch(urls []string, cursor string, plan VoteScanPlan) ([]string, string) {
	start := cursorIndex(cursor)
	if start >= len(urls) {
		start = 0
	}
	end := start + plan.BatchSize
	if end > len(urls) {
		end = len(urls)
	}
	return urls[start:end], strconv.Itoa(end % len(urls))
}

// selectSamplingBatch runs a first pass over every Stride'th url
// (cursor values "sample:N"), then once the sample pass exhausts the
// list switches to a linear gap-fill pass over everything it skipped
// (cursor values "fill:N").
func selectSamplingBatch(urls []string, cursor string, plan VoteScanPlan) ([]string, string) {
	stride := plan.Stride
	if stride < 2 {
		stride = 2
	}
	phase, idx := parseSamplingCursor(cursor)

	if phase == "fill" {
		var skipped []string
		for i, u := range urls {
			if i%stride != 0 {
				skipped = append(skipped, u)
			}
		}
		return selectLinearBatch(skipped, strconv.Itoa(idx), plan)
	}

	var sampled []string
	for i := idx; i < len(urls) && len(sampled) < plan.BatchSize; i += stride {
		sampled = append(sampled, urls[i])
	}
	next := idx
	for range sampled {
		next += stride
	}
	if next >= len(urls) {
		return sampled, "fill:0"
	}
	return sampled, fmt.Sprintf("sample:%d", next)
}

func parseSamplingCursor(cursor string) (phase string, idx int) {
	if cursor == "" {
		return "sample", 0
	}
	for _, p := range []string{"sample:", "fill:"} {
		if len(cursor) > len(p) && cursor[:len(p)] == p {
			n, err := strconv.Atoi(cursor[len(p):])
			if err != nil {
				return "sample", 0
			}
			return p[:len(p)-1], n
		}
	}
	return "sample", 0
}

func cursorIndex(cursor string) int {
	n, err := strconv.Atoi(cursor)
	if err != nil {
		return 0
	}
	return n
}

// ApplyResult persists a VoteScanResult's events and slips onto the
// cumulative cached collections, deduping witness slips by their
// natural key (spec §4.4: re-fetching an already-filed slip must not
// duplicate it).
func ApplyResult(cachedEvents []*model.VoteEvent, cachedSlips []*model.WitnessSlip, result *VoteScanResult) ([]*model.VoteEvent, []*model.WitnessSlip) {
	events := append(append([]*model.VoteEvent{}, cachedEvents...), result.VoteEvents...)

	seen := make(map[string]bool, len(cachedSlips))
	slips := append([]*model.WitnessSlip{}, cachedSlips...)
	for _, s := range cachedSlips {
		seen[s.Key()] = true
	}
	for _, s := range result.WitnessSlips {
		if seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		slips = append(slips, s)
	}
	return events, slips
}

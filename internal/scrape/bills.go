// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

func billIndexPath(chamber model.Chamber) string {
	if chamber == model.ChamberSenate {
		return "/legislation/senatebills.asp"
	}
	return "/legislation/housebills.asp"
}

// BillLimits caps how many bill rows of each chamber's index are ever
// fetched to detail level, independent of the incremental cache rule
// (spec §4.4 --sb-limit/--hb-limit).
type BillLimits struct {
	SB int
	HB int
}

// Bills walks the paginated bill index for both chambers, following the
// index page's own "next" link rather than a hard-coded page count, and
// fetches the detail page for a row only when it is not already cached
// or its last_action_date has moved since the cached copy (the
// incremental rule, spec §4.4). Rows within the configured SB/HB limit
// that are already up to date are passed through from cache unchanged.
func Bills(ctx context.Context, deps *Deps, cached map[string]*model.Bill, limits BillLimits) (map[string]*model.Bill, error) {
	out := make(map[string]*model.Bill, len(cached))
	for k, v := range cached {
		out[k] = v
	}

	for _, chamber := range []model.Chamber{model.ChamberSenate, model.ChamberHouse} {
		limit := limits.SB
		if chamber == model.ChamberHouse {
			limit = limits.HB
		}
		if err := scrapeChamberBills(ctx, deps, chamber, limit, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scrapeChamberBills(ctx context.Context, deps *Deps, chamber model.Chamber, limit int, out map[string]*model.Bill) error {
	pageURL := resolveURL(deps.BaseURL, billIndexPath(chamber))
	var rows []parse.BillIndexRow

	for pageURL != "" && (limit <= 0 || len(rows) < limit) {
		resp, err := deps.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return fmt.Errorf("scrape bills: index %s: %w", pageURL, err)
		}
		pageRows, next, warnings, err := parse.ParseBillIndexPage(resp.Body, pageURL)
		if err != nil {
			return fmt.Errorf("scrape bills: parse index %s: %w", pageURL, err)
		}
		for _, w := range warnings {
			slog.WarnContext(ctx, "bill index warning", "error", w)
		}
		rows = append(rows, pageRows...)
		pageURL = next
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	var due []parse.BillIndexRow
	for _, row := range rows {
		if needsFetch(row, out[row.LegID]) {
			due = append(due, row)
		}
	}
	slog.InfoContext(ctx, "bill scrape incremental plan",
		"chamber", chamber, "index_rows", len(rows), "due_for_detail_fetch", len(due))

	var mu sync.Mutex
	completed := 0
	var jobs []func() error
	for _, row := range due {
		row := row
		jobs = append(jobs, func() error {
			detailURL := resolveURL(deps.BaseURL, "/legislation/billstatus.asp?DocNum="+row.LegID+"&GA=")
			resp, err := deps.Fetcher.Fetch(ctx, detailURL)
			if err != nil {
				slog.WarnContext(ctx, "bill detail fetch failed, keeping cached copy", "leg_id", row.LegID, "error", err)
				return nil
			}
			bill, warnings, err := parse.ParseBillDetail(resp.Body, detailURL, row.BillNumber, row.LegID)
			if err != nil {
				slog.WarnContext(ctx, "bill detail parse failed, keeping cached copy", "leg_id", row.LegID, "error", err)
				return nil
			}
			for _, w := range warnings {
				slog.WarnContext(ctx, "bill detail warning", "error", w)
			}
			checkpointBill(ctx, deps, out, &mu, &completed, bill)
			return nil
		})
	}

	if err := deps.Pool.Run(ctx, jobs...); err != nil {
		return apperrors.NewFetch(apperrors.FetchTransient, pageURL, 0, err)
	}
	return nil
}

// checkpointBill records bill into out and, every cache.CheckpointInterval
// completed detail fetches across the chamber's due set, persists the
// accumulated bill collection to disk so an interrupted long scrape
// resumes from the last checkpoint rather than from scratch (spec §4.3,
// §5). out is shared across the worker pool's goroutines, so both the
// map write and the interval check are guarded by mu.
func checkpointBill(ctx context.Context, deps *Deps, out map[string]*model.Bill, mu *sync.Mutex, completed *int, bill *model.Bill) {
	mu.Lock()
	out[bill.LegID] = bill
	*completed++
	due := *completed%cache.CheckpointInterval == 0
	var snapshot map[string]*model.Bill
	if due {
		snapshot = make(map[string]*model.Bill, len(out))
		for k, v := range out {
			snapshot[k] = v
		}
	}
	mu.Unlock()

	if !due {
		return
	}
	if err := deps.Store.SaveBills(ctx, snapshot); err != nil {
		slog.WarnContext(ctx, "bill scrape checkpoint failed", "error", err)
	} else {
		slog.InfoContext(ctx, "bill scrape checkpointed", "records", len(snapshot))
	}
}

// needsFetch is the incremental rule: a row is fetched to detail level
// only if it has never been cached, or the index page now reports a
// last_action_date different from the cached copy's.
func needsFetch(row parse.BillIndexRow, cached *model.Bill) bool {
	if cached == nil {
		return true
	}
	if row.LastActionDate == nil || cached.LastActionDate == nil {
		return true
	}
	return !row.LastActionDate.Equal(*cached.LastActionDate)
}

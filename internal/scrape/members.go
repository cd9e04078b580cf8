// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// memberIndexPath returns the chamber's member index path under
// BaseURL. ILGA exposes one listing per chamber.
func memberIndexPath(chamber model.Chamber) string {
	if chamber == model.ChamberSenate {
		return "/senate/default.asp"
	}
	return "/house/default.asp"
}

// Members fetches both chambers' member index pages and every member's
// detail page in a bounded worker pool (spec §4.4), capped at limit
// members per chamber (0 means unlimited). Fetch errors on an
// individual detail page are logged and that member skipped; a
// catastrophic failure on an index page itself aborts the pipeline.
func Members(ctx context.Context, deps *Deps, limit int) ([]*model.Member, error) {
	var all []*model.Member
	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		members, err := membersForChamber(ctx, deps, chamber, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, members...)
	}
	return all, nil
}

func membersForChamber(ctx context.Context, deps *Deps, chamber model.Chamber, limit int) ([]*model.Member, error) {
	indexURL := resolveURL(deps.BaseURL, memberIndexPath(chamber))
	resp, err := deps.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("scrape members: index %s: %w", indexURL, err)
	}

	rows, warnings, err := parse.ParseMemberIndex(resp.Body, indexURL, chamber)
	if err != nil {
		return nil, fmt.Errorf("scrape members: parse index %s: %w", indexURL, err)
	}
	for _, w := range warnings {
		slog.WarnContext(ctx, "member index warning", "error", w)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	// Single writer: workers send parsed members on this channel; one
	// goroutine (this one) is the sole reader building the result
	// slice, so no two goroutines ever touch shared state concurrently.
	results := make(chan *model.Member, len(rows))
	var jobs []func() error
	for _, row := range rows {
		row := row
		jobs = append(jobs, func() error {
			detailURL := resolveURL(deps.BaseURL, row.MemberURL)
			resp, err := deps.Fetcher.Fetch(ctx, detailURL)
			if err != nil {
				slog.WarnContext(ctx, "member detail fetch failed, skipping", "url", detailURL, "error", err)
				return nil
			}
			member, warnings, err := parse.ParseMemberDetail(resp.Body, detailURL, row.Chamber)
			if err != nil {
				slog.WarnContext(ctx, "member detail parse failed, skipping", "url", detailURL, "error", err)
				return nil
			}
			for _, w := range warnings {
				slog.WarnContext(ctx, "member detail warning", "error", w)
			}
			member.MemberID = idFromURL(detailURL, "MemberID")
			if member.MemberID == "" {
				slog.WarnContext(ctx, "member detail missing MemberID, skipping", "url", detailURL)
				return nil
			}
			results <- member
			return nil
		})
	}

	if err := deps.Pool.Run(ctx, jobs...); err != nil {
		return nil, apperrors.NewFetch(apperrors.FetchTransient, indexURL, 0, err)
	}
	close(results)

	var members []*model.Member
	for m := range results {
		members = append(members, m)
	}
	return members, nil
}

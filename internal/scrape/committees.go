// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
)

func chamberPath(chamber model.Chamber) string {
	if chamber == model.ChamberSenate {
		return "senate"
	}
	return "house"
}

func committeeIndexPath(chamber model.Chamber) string {
	return "/" + chamberPath(chamber) + "/committees/default.asp"
}

// CommitteeResult is the three collections the committee scrape
// produces together, since a committee's roster and bill assignments
// are both derived from the same detail-page fetch.
type CommitteeResult struct {
	Committees []*model.Committee
	Rosters    map[string][]cache.CommitteeRoster
	Bills      map[string][]string
}

// Committees fetches both chambers' committee index pages and then each
// committee's detail page, one at a time (spec §4.4). Roster
// entries are reported by ILGA as plain names, so they are reconciled
// against members (already scraped) using the name-normalization rule
// (spec §4.2), the same rule the Graph Builder applies to vote names.
func Committees(ctx context.Context, deps *Deps, members []*model.Member) (*CommitteeResult, error) {
	byChamber := make(map[model.Chamber][]*model.Member)
	for _, m := range members {
		byChamber[m.Chamber] = append(byChamber[m.Chamber], m)
	}

	result := &CommitteeResult{
		Rosters: make(map[string][]cache.CommitteeRoster),
		Bills:   make(map[string][]string),
	}

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		indexURL := resolveURL(deps.BaseURL, committeeIndexPath(chamber))
		resp, err := deps.Fetcher.Fetch(ctx, indexURL)
		if err != nil {
			return nil, fmt.Errorf("scrape committees: index %s: %w", indexURL, err)
		}
		committees, warnings, err := parse.ParseCommitteeIndex(resp.Body, indexURL, chamber)
		if err != nil {
			return nil, fmt.Errorf("scrape committees: parse index %s: %w", indexURL, err)
		}
		for _, w := range warnings {
			slog.WarnContext(ctx, "committee index warning", "error", w)
		}

		pool := byChamber[chamber]
		for i := range committees {
			c := committees[i]
			detailURL := resolveURL(deps.BaseURL, "/"+chamberPath(chamber)+"/committees/committee.asp?CommitteeID="+c.Code)
			resp, err := deps.Fetcher.Fetch(ctx, detailURL)
			if err != nil {
				slog.WarnContext(ctx, "committee detail fetch failed, skipping roster/bills", "code", c.Code, "error", err)
				result.Committees = append(result.Committees, &c)
				continue
			}
			roleEntries, billIDs, warnings, err := parse.ParseCommitteeDetail(resp.Body, detailURL)
			if err != nil {
				slog.WarnContext(ctx, "committee detail parse failed", "code", c.Code, "error", err)
				result.Committees = append(result.Committees, &c)
				continue
			}
			for _, w := range warnings {
				slog.WarnContext(ctx, "committee detail warning", "error", w)
			}

			result.Rosters[c.Code] = reconcileRoster(roleEntries, pool)
			result.Bills[c.Code] = billIDs
			result.Committees = append(result.Committees, &c)
		}
	}

	return result, nil
}

func reconcileRoster(entries []parse.CommitteeRoleEntry, pool []*model.Member) []cache.CommitteeRoster {
	var roster []cache.CommitteeRoster
	for _, e := range entries {
		var matches []*model.Member
		for _, m := range pool {
			given, surname := parse.SplitFullName(m.Name)
			if parse.MatchReported(e.MemberName, given, surname) {
				matches = append(matches, m)
			}
		}
		if len(matches) != 1 {
			continue
		}
		roster = append(roster, cache.CommitteeRoster{MemberID: matches[0].MemberID, Role: e.Role})
	}
	return roster
}

// SPDX-License-Identifier: MIT

package analytics

import (
	"sort"
	"strings"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// ComputeAll derives every member's Scorecard and MoneyballProfile from
// a hydrated graph's members and bills (spec §4.6-4.7). Component
// normalization is per-chamber: the House and Senate are each their own
// ranking cohort.
func ComputeAll(members []*model.Member, bills map[string]*model.Bill) (map[string]*model.Scorecard, map[string]*model.MoneyballProfile) {
	scorecards := make(map[string]*model.Scorecard, len(members))
	for _, m := range members {
		scorecards[m.MemberID] = ComputeScorecard(m)
	}

	byChamber := make(map[model.Chamber][]*model.Member)
	for _, m := range members {
		byChamber[m.Chamber] = append(byChamber[m.Chamber], m)
	}

	profiles := make(map[string]*model.MoneyballProfile, len(members))
	for _, group := range byChamber {
		for id, p := range computeChamberProfiles(group, bills, scorecards) {
			profiles[id] = p
		}
	}
	return scorecards, profiles
}

func computeChamberProfiles(group []*model.Member, bills map[string]*model.Bill, scorecards map[string]*model.Scorecard) map[string]*model.MoneyballProfile {
	degrees := coSponsorshipDegrees(group, bills)

	effectiveness := make([]float64, len(group))
	pipeline := make([]float64, len(group))
	magnet := make([]float64, len(group))
	bridge := make([]float64, len(group))
	centrality := make([]float64, len(group))

	for i, m := range group {
		sc := scorecards[m.MemberID]
		effectiveness[i] = sc.LawSuccessRate
		pipeline[i] = sc.AvgPipelineDepth / 6
		magnet[i] = sc.MagnetScore
		bridge[i] = sc.BridgeScore
		centrality[i] = float64(degrees[m.MemberID])
	}

	effectiveness = rescale(effectiveness)
	pipeline = rescale(pipeline)
	magnet = rescale(magnet)
	bridge = rescale(bridge)
	centrality = rescale(centrality)

	out := make(map[string]*model.MoneyballProfile, len(group))
	for i, m := range group {
		p := &model.MoneyballProfile{
			MemberID:            m.MemberID,
			Effectiveness:       effectiveness[i],
			Pipeline:            pipeline[i],
			Magnet:              magnet[i],
			Bridge:              bridge[i],
			Centrality:          centrality[i],
			InstitutionalWeight: institutionalWeight(m),
		}
		p.MoneyballScore = 100 * (model.WeightEffectiveness*p.Effectiveness +
			model.WeightPipeline*p.Pipeline +
			model.WeightMagnet*p.Magnet +
			model.WeightBridge*p.Bridge +
			model.WeightCentrality*p.Centrality +
			model.WeightInstitutionalWeight*p.InstitutionalWeight)
		out[m.MemberID] = p
	}
	return out
}

// institutionalWeight assigns the highest-precedence weight (spec
// §4.7) across m's roles list. "caucus chair"/"whip" are checked ahead
// of the bare "chair" keyword so a Caucus Chair role resolves to its
// own 0.25 tier rather than being swallowed by the Chair/Spokesperson
// 0.50 tier's substring match.
func institutionalWeight(m *model.Member) float64 {
	var max float64
	for _, role := range m.Roles {
		if w := roleWeight(role); w > max {
			max = w
		}
	}
	return max
}

func roleWeight(role string) float64 {
	r := strings.ToLower(role)
	switch {
	case containsAny(r, "president", "leader", "speaker"):
		return 1.00
	case containsAny(r, "caucus chair", "whip"):
		return 0.25
	case containsAny(r, "chair", "spokesperson"):
		return 0.50
	default:
		return 0
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// coSponsorshipDegrees computes each group member's degree in the
// undirected co-sponsorship graph, restricted to substantive bills and
// to edges between two members of group's chamber (spec §4.7.5).
func coSponsorshipDegrees(group []*model.Member, bills map[string]*model.Bill) map[string]int {
	inGroup := make(map[string]bool, len(group))
	for _, m := range group {
		inGroup[m.MemberID] = true
	}

	adjacency := make(map[string]map[string]bool)
	addEdge := func(a, b string) {
		if a == b {
			return
		}
		if adjacency[a] == nil {
			adjacency[a] = make(map[string]bool)
		}
		if adjacency[b] == nil {
			adjacency[b] = make(map[string]bool)
		}
		adjacency[a][b] = true
		adjacency[b][a] = true
	}

	for _, b := range bills {
		if b.Kind != model.KindSubstantive {
			continue
		}
		var sponsors []*model.Member
		sponsors = append(sponsors, b.Sponsors...)
		sponsors = append(sponsors, b.HouseSponsors...)

		var inChamber []string
		for _, s := range sponsors {
			if inGroup[s.MemberID] {
				inChamber = append(inChamber, s.MemberID)
			}
		}
		for i := 0; i < len(inChamber); i++ {
			for j := i + 1; j < len(inChamber); j++ {
				addEdge(inChamber[i], inChamber[j])
			}
		}
	}

	degrees := make(map[string]int, len(group))
	for _, m := range group {
		degrees[m.MemberID] = len(adjacency[m.MemberID])
	}
	return degrees
}

// LeaderboardEntry pairs a member with its computed Moneyball profile
// for ranking display.
type LeaderboardEntry struct {
	Member  *model.Member
	Profile *model.MoneyballProfile
}

// Leaderboard ranks members by moneyball_score descending, optionally
// restricted to one chamber (pass "" for overall) and optionally
// excluding leadership (institutional_weight >= 0.50), truncated to
// limit (0 or negative means unlimited).
func Leaderboard(members []*model.Member, profiles map[string]*model.MoneyballProfile, chamber model.Chamber, excludeLeadership bool, limit int) []LeaderboardEntry {
	var entries []LeaderboardEntry
	for _, m := range members {
		if chamber != "" && m.Chamber != chamber {
			continue
		}
		p, ok := profiles[m.MemberID]
		if !ok {
			continue
		}
		if excludeLeadership && p.IsLeadership() {
			continue
		}
		entries = append(entries, LeaderboardEntry{Member: m, Profile: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Profile.MoneyballScore > entries[j].Profile.MoneyballScore
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// MVP returns the highest-scoring non-leadership member of chamber, or
// nil if the chamber has no eligible members (spec §4.7).
func MVP(members []*model.Member, profiles map[string]*model.MoneyballProfile, chamber model.Chamber) *LeaderboardEntry {
	entries := Leaderboard(members, profiles, chamber, true, 1)
	if len(entries) == 0 {
		return nil
	}
	return &entries[0]
}

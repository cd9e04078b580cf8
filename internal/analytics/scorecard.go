// SPDX-License-Identifier: MIT

// Package analytics implements the Analytics Engine (spec §4.6-4.7):
// per-member Scorecards and the composite Moneyball influence ranking
// derived from a hydrated *graph.Graph.
package analytics

import (
	"regexp"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// shellPattern matches "Technical" or "Shell" as a whole word,
// case-insensitive (spec §4.6 shell bill detection).
var shellPattern = regexp.MustCompile(`(?i)\b(technical|shell)\b`)

const shellMinDescriptionLen = 50

// isShellBill reports whether b should be excluded from the scorecard
// denominator: either its description reads too short to be a real
// policy description, or it matches the "Technical"/"Shell" marker.
func isShellBill(b *model.Bill) bool {
	return len(b.Description) < shellMinDescriptionLen || shellPattern.MatchString(b.Description)
}

// resolutionPassedDepth is the pipeline_depth at which a resolution is
// considered adopted. Resolutions (HR/SR/HJR/SJR) almost never reach
// the governor, so "passed" is read off the chamber-passage ordinal
// rather than Signed/Vetoed.
const resolutionPassedDepth = 2 // depthFor[model.StatusPassedChamber]

// ComputeScorecard derives m's Scorecard from its hydrated
// primary_bill_ids (spec §4.6). Bills must already carry a derived
// Status/PipelineDepth (internal/graph.DeriveStatus).
func ComputeScorecard(m *model.Member) *model.Scorecard {
	sc := &model.Scorecard{MemberID: m.MemberID}

	var substantive, resolutions []*model.Bill
	for _, b := range m.PrimaryBills {
		switch b.Kind {
		case model.KindSubstantive:
			substantive = append(substantive, b)
		case model.KindResolution:
			resolutions = append(resolutions, b)
		}
	}

	var eligible []*model.Bill
	for _, b := range substantive {
		if isShellBill(b) {
			sc.ShellBillCount++
			continue
		}
		eligible = append(eligible, b)
	}

	sc.BillsIntroduced = len(substantive)
	for _, b := range eligible {
		if b.Status == model.StatusSigned {
			sc.LawsPassed++
		}
	}
	if len(eligible) > 0 {
		sc.LawSuccessRate = float64(sc.LawsPassed) / float64(len(eligible))
	}
	sc.MagnetScore = meanCoSponsorCount(eligible)
	sc.BridgeScore = bridgeFraction(eligible)
	sc.AvgPipelineDepth = meanPipelineDepth(eligible)

	sc.ResolutionsFiled = len(resolutions)
	for _, b := range resolutions {
		if b.PipelineDepth >= resolutionPassedDepth {
			sc.ResolutionsPassed++
		}
	}
	if sc.ResolutionsFiled > 0 {
		sc.ResolutionPassRate = float64(sc.ResolutionsPassed) / float64(sc.ResolutionsFiled)
	}

	return sc
}

func meanCoSponsorCount(bills []*model.Bill) float64 {
	if len(bills) == 0 {
		return 0
	}
	var sum int
	for _, b := range bills {
		sum += b.CoSponsorCount()
	}
	return float64(sum) / float64(len(bills))
}

// bridgeFraction is the fraction of bills with at least one co-sponsor
// whose party differs from the primary sponsor's.
func bridgeFraction(bills []*model.Bill) float64 {
	if len(bills) == 0 {
		return 0
	}
	var crossParty int
	for _, b := range bills {
		if hasCrossPartyCoSponsor(b) {
			crossParty++
		}
	}
	return float64(crossParty) / float64(len(bills))
}

func hasCrossPartyCoSponsor(b *model.Bill) bool {
	if len(b.Sponsors) < 2 {
		return false
	}
	primaryParty := b.Sponsors[0].Party
	for _, s := range b.Sponsors[1:] {
		if s.Party != primaryParty {
			return true
		}
	}
	return false
}

func meanPipelineDepth(bills []*model.Bill) float64 {
	if len(bills) == 0 {
		return 0
	}
	var sum int
	for _, b := range bills {
		sum += b.PipelineDepth
	}
	return float64(sum) / float64(len(bills))
}

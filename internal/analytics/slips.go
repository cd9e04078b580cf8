// SPDX-License-Identifier: MIT

package analytics

import (
	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// SlipSummary tallies one bill's filed witness slips by position,
// backing the GraphQL `witnessSlipSummary`/`witnessSlipSummaries` root
// fields.
type SlipSummary struct {
	BillNumber        string
	ProponentCount    int
	OpponentCount     int
	NoPositionCount   int
	InformationCount  int
	WillTestifyCount  int
	TotalCount        int
}

// ProponentRatio is the share of position-bearing slips (Proponent or
// Opponent; NoPosition/Information are excluded as non-directional)
// that were Proponent. Returns 0 when no directional slips were filed.
func (s SlipSummary) ProponentRatio() float64 {
	directional := s.ProponentCount + s.OpponentCount
	if directional == 0 {
		return 0
	}
	return float64(s.ProponentCount) / float64(directional)
}

// SummarizeSlips groups slips by bill number into one SlipSummary each.
func SummarizeSlips(slips []*model.WitnessSlip) map[string]SlipSummary {
	out := make(map[string]SlipSummary)
	for _, s := range slips {
		summary := out[s.BillNumber]
		summary.BillNumber = s.BillNumber
		summary.TotalCount++
		if s.WillTestify {
			summary.WillTestifyCount++
		}
		switch s.Position {
		case model.PositionProponent:
			summary.ProponentCount++
		case model.PositionOpponent:
			summary.OpponentCount++
		case model.PositionNoPosition:
			summary.NoPositionCount++
		case model.PositionInformation:
			summary.InformationCount++
		}
		out[s.BillNumber] = summary
	}
	return out
}

// BillSlipAnalytics pairs a bill's slip sentiment with its eventual
// pipeline outcome, the derived metric behind `billSlipAnalytics`: did
// public sentiment (proponent-heavy vs. opponent-heavy) line up with
// the bill advancing.
type BillSlipAnalytics struct {
	Summary        SlipSummary
	PipelineDepth  int
	Status         model.Status
	SentimentAligned bool // proponent-majority and bill advanced past committee, or opponent-majority and it did not
}

// ComputeBillSlipAnalytics derives BillSlipAnalytics for one bill from
// its slip summary and current derived status.
func ComputeBillSlipAnalytics(b *model.Bill, summary SlipSummary) BillSlipAnalytics {
	advanced := b.PipelineDepth >= resolutionPassedDepth
	proponentMajority := summary.ProponentRatio() > 0.5
	return BillSlipAnalytics{
		Summary:          summary,
		PipelineDepth:    b.PipelineDepth,
		Status:           b.Status,
		SentimentAligned: proponentMajority == advanced,
	}
}

// MemberSlipAlignment measures how often a sponsor's bills advanced in
// the direction their witness-slip sentiment predicted, backing
// `memberSlipAlignment(memberName)`.
type MemberSlipAlignment struct {
	MemberID     string
	BillsWithSlips int
	AlignedCount int
}

// AlignmentRate is AlignedCount / BillsWithSlips, or 0 if the member
// sponsored no bill that received any witness slip.
func (a MemberSlipAlignment) AlignmentRate() float64 {
	if a.BillsWithSlips == 0 {
		return 0
	}
	return float64(a.AlignedCount) / float64(a.BillsWithSlips)
}

// ComputeMemberSlipAlignment walks m's primary bills, scoring sentiment
// alignment for every one that has at least one filed witness slip.
func ComputeMemberSlipAlignment(m *model.Member, slipSummaries map[string]SlipSummary) MemberSlipAlignment {
	alignment := MemberSlipAlignment{MemberID: m.MemberID}
	for _, b := range m.PrimaryBills {
		summary, ok := slipSummaries[b.BillNumber]
		if !ok || summary.TotalCount == 0 {
			continue
		}
		alignment.BillsWithSlips++
		analytics := ComputeBillSlipAnalytics(b, summary)
		if analytics.SentimentAligned {
			alignment.AlignedCount++
		}
	}
	return alignment
}

// AdvancementSummary aggregates pipeline outcomes across every bill in
// the graph, backing `billAdvancementAnalyticsSummary`.
type AdvancementSummary struct {
	TotalBills          int
	PassedBothChambers  int
	Signed              int
	Vetoed              int
	Dead                int
	AvgPipelineDepth    float64
}

// ComputeAdvancementSummary derives an AdvancementSummary over bills.
func ComputeAdvancementSummary(bills map[string]*model.Bill) AdvancementSummary {
	var summary AdvancementSummary
	var depthTotal int
	for _, b := range bills {
		summary.TotalBills++
		depthTotal += b.PipelineDepth
		switch b.Status {
		case model.StatusPassedBoth, model.StatusSentToGovernor, model.StatusSigned:
			summary.PassedBothChambers++
		case model.StatusVetoed:
			summary.Vetoed++
		case model.StatusDead:
			summary.Dead++
		}
		if b.Status == model.StatusSigned {
			summary.Signed++
		}
	}
	if summary.TotalBills > 0 {
		summary.AvgPipelineDepth = float64(depthTotal) / float64(summary.TotalBills)
	}
	return summary
}

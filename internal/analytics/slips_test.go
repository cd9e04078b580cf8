// SPDX-License-Identifier: MIT

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

func TestSummarizeSlipsTalliesByPosition(t *testing.T) {
	slips := []*model.WitnessSlip{
		{BillNumber: "SB0001", Position: model.PositionProponent, WillTestify: true},
		{BillNumber: "SB0001", Position: model.PositionProponent},
		{BillNumber: "SB0001", Position: model.PositionOpponent},
	}
	summaries := SummarizeSlips(slips)
	s := summaries["SB0001"]
	assert.Equal(t, 2, s.ProponentCount)
	assert.Equal(t, 1, s.OpponentCount)
	assert.Equal(t, 1, s.WillTestifyCount)
	assert.InDelta(t, 2.0/3.0, s.ProponentRatio(), 0.0001)
}

func TestBillSlipAnalyticsAlignedWhenProponentHeavyAndAdvanced(t *testing.T) {
	b := &model.Bill{BillNumber: "SB0001", PipelineDepth: 3, Status: model.StatusPassedBoth}
	summary := SlipSummary{BillNumber: "SB0001", ProponentCount: 5, OpponentCount: 1}
	analytics := ComputeBillSlipAnalytics(b, summary)
	assert.True(t, analytics.SentimentAligned)
}

func TestBillSlipAnalyticsMisalignedWhenOpponentHeavyButAdvanced(t *testing.T) {
	b := &model.Bill{BillNumber: "SB0002", PipelineDepth: 3, Status: model.StatusPassedBoth}
	summary := SlipSummary{BillNumber: "SB0002", ProponentCount: 1, OpponentCount: 5}
	analytics := ComputeBillSlipAnalytics(b, summary)
	assert.False(t, analytics.SentimentAligned)
}

func TestComputeAdvancementSummaryCountsStatuses(t *testing.T) {
	bills := map[string]*model.Bill{
		"1": {BillNumber: "SB0001", Status: model.StatusSigned, PipelineDepth: 6},
		"2": {BillNumber: "SB0002", Status: model.StatusDead, PipelineDepth: 1},
	}
	summary := ComputeAdvancementSummary(bills)
	assert.Equal(t, 2, summary.TotalBills)
	assert.Equal(t, 1, summary.Signed)
	assert.Equal(t, 1, summary.Dead)
	assert.InDelta(t, 3.5, summary.AvgPipelineDepth, 0.0001)
}

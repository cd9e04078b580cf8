// SPDX-License-Identifier: MIT

package graphqlapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/analytics"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
)

func sampleGraph() *graph.Graph {
	sponsor := &model.Member{MemberID: "M1", Name: "Jane Q. Smith", Chamber: model.ChamberSenate, Party: model.PartyDemocrat, District: 5, Roles: []string{"Chair"}}
	other := &model.Member{MemberID: "M2", Name: "Bob Lee", Chamber: model.ChamberSenate, Party: model.PartyRepublican, District: 9}

	bill := &model.Bill{
		LegID: "1", BillNumber: "SB0001", Chamber: model.ChamberSenate, Kind: model.KindSubstantive,
		Status: model.StatusPassedBoth, PipelineDepth: 3,
		SponsorIDs: []string{"M1"}, Sponsors: []*model.Member{sponsor},
	}
	sponsor.Bills = []*model.Bill{bill}
	sponsor.PrimaryBills = []*model.Bill{bill}

	slip := &model.WitnessSlip{BillNumber: "SB0001", Position: model.PositionProponent, WillTestify: true}

	g := &graph.Graph{
		Members:     []*model.Member{sponsor, other},
		MembersByID: map[string]*model.Member{"M1": sponsor, "M2": other},
		Bills:       map[string]*model.Bill{"1": bill},
		WitnessSlips: []*model.WitnessSlip{slip},
	}
	return g
}

func newTestResolver() *Resolver {
	g := sampleGraph()
	scorecards, moneyball := analytics.ComputeAll(g.Members, g.Bills)
	return New(g, scorecards, moneyball)
}

func TestResolverMemberLooksUpByName(t *testing.T) {
	r := newTestResolver()
	m := r.Member(context.Background(), memberArgs{Name: "jane q. smith"})
	require.NotNil(t, m)
	assert.Equal(t, "Jane Q. Smith", m.Name())
	assert.NotNil(t, m.Scorecard())
}

func TestResolverMemberUnknownReturnsNil(t *testing.T) {
	r := newTestResolver()
	assert.Nil(t, r.Member(context.Background(), memberArgs{Name: "nobody"}))
}

func TestResolverMembersFiltersByChamberAndPaginates(t *testing.T) {
	r := newTestResolver()
	limit := int32(1)
	conn := r.Members(context.Background(), membersArgs{Chamber: strPtr("Senate"), Limit: &limit})
	assert.Len(t, conn.items, 1)
	assert.EqualValues(t, 2, conn.pageInfo.totalCount)
	assert.True(t, conn.pageInfo.hasNextPage)
}

func TestResolverBillLooksUpByNumber(t *testing.T) {
	r := newTestResolver()
	b := r.Bill(context.Background(), billArgs{Number: "sb0001"})
	require.NotNil(t, b)
	assert.Len(t, b.Sponsors(), 1)
	assert.Equal(t, "Jane Q. Smith", b.Sponsors()[0].Name())
}

func TestResolverBillSlipAnalyticsAligned(t *testing.T) {
	r := newTestResolver()
	a := r.BillSlipAnalytics(context.Background(), billNumberArgs{BillNumber: "SB0001"})
	require.NotNil(t, a)
	assert.True(t, a.SentimentAligned())
}

func TestResolverMemberSlipAlignment(t *testing.T) {
	r := newTestResolver()
	a := r.MemberSlipAlignment(context.Background(), memberSlipAlignmentArgs{MemberName: "Jane Q. Smith"})
	require.NotNil(t, a)
	assert.EqualValues(t, 1, a.BillsWithSlips())
	assert.EqualValues(t, 1, a.AlignedCount())
}

func TestResolverBillAdvancementAnalyticsSummary(t *testing.T) {
	r := newTestResolver()
	s := r.BillAdvancementAnalyticsSummary(context.Background())
	assert.EqualValues(t, 1, s.TotalBills())
	assert.EqualValues(t, 1, s.PassedBothChambers())
}

func TestResolverMetricsGlossaryNotEmpty(t *testing.T) {
	r := newTestResolver()
	assert.NotEmpty(t, r.MetricsGlossary(context.Background()))
}

func strPtr(s string) *string { return &s }

// SPDX-License-Identifier: MIT

package graphqlapi

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/tylermorales/ilga-graph/internal/analytics"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// pageInfoResolver backs the Relay-style Connection shape used by the
// paginated list queries (members, bills, allVoteEvents, witnessSlips,
// witnessSlipSummaries); votes, billVoteTimeline, moneyballLeaderboard
// and metricsGlossary return plain lists (spec §4.12).
type pageInfoResolver struct {
	totalCount      int32
	hasNextPage     bool
	hasPreviousPage bool
}

func (p *pageInfoResolver) TotalCount() int32      { return p.totalCount }
func (p *pageInfoResolver) HasNextPage() bool      { return p.hasNextPage }
func (p *pageInfoResolver) HasPreviousPage() bool  { return p.hasPreviousPage }

func newPageInfo(total, offset, returned int) *pageInfoResolver {
	return &pageInfoResolver{
		totalCount:      int32(total),
		hasNextPage:     offset+returned < total,
		hasPreviousPage: offset > 0,
	}
}

// page applies a limit/offset slice over items, clamping out-of-range
// values rather than erroring, matching the teacher's tolerant-of-bad-
// input query-parameter handling.
func page[T any](items []T, limit, offset int) ([]T, int) {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end], offset
}

// scorecardResolver wraps model.Scorecard for the Scorecard GraphQL type.
type scorecardResolver struct{ s *model.Scorecard }

func (r *scorecardResolver) BillsIntroduced() int32      { return int32(r.s.BillsIntroduced) }
func (r *scorecardResolver) LawsPassed() int32           { return int32(r.s.LawsPassed) }
func (r *scorecardResolver) LawSuccessRate() float64     { return r.s.LawSuccessRate }
func (r *scorecardResolver) ResolutionsFiled() int32     { return int32(r.s.ResolutionsFiled) }
func (r *scorecardResolver) ResolutionsPassed() int32    { return int32(r.s.ResolutionsPassed) }
func (r *scorecardResolver) ResolutionPassRate() float64 { return r.s.ResolutionPassRate }
func (r *scorecardResolver) MagnetScore() float64        { return r.s.MagnetScore }
func (r *scorecardResolver) BridgeScore() float64        { return r.s.BridgeScore }
func (r *scorecardResolver) AvgPipelineDepth() float64   { return r.s.AvgPipelineDepth }
func (r *scorecardResolver) ShellBillCount() int32       { return int32(r.s.ShellBillCount) }

// moneyballResolver wraps model.MoneyballProfile for the MoneyballProfile
// GraphQL type.
type moneyballResolver struct{ p *model.MoneyballProfile }

func (r *moneyballResolver) Effectiveness() float64       { return r.p.Effectiveness }
func (r *moneyballResolver) Pipeline() float64            { return r.p.Pipeline }
func (r *moneyballResolver) Magnet() float64              { return r.p.Magnet }
func (r *moneyballResolver) Bridge() float64              { return r.p.Bridge }
func (r *moneyballResolver) Centrality() float64          { return r.p.Centrality }
func (r *moneyballResolver) InstitutionalWeight() float64 { return r.p.InstitutionalWeight }
func (r *moneyballResolver) MoneyballScore() float64      { return r.p.MoneyballScore }
func (r *moneyballResolver) IsLeadership() bool           { return r.p.IsLeadership() }

// memberResolver wraps model.Member, fetching its Scorecard/Moneyball
// through the request's loader.Registry rather than a global map (spec
// §4.11).
type memberResolver struct {
	m   *model.Member
	reg *requestLoaders
}

func (r *memberResolver) MemberID() graphql.ID      { return graphql.ID(r.m.MemberID) }
func (r *memberResolver) Name() string              { return r.m.Name }
func (r *memberResolver) Chamber() string           { return string(r.m.Chamber) }
func (r *memberResolver) Party() string             { return string(r.m.Party) }
func (r *memberResolver) District() int32           { return int32(r.m.District) }
func (r *memberResolver) Role() string              { return r.m.Role }
func (r *memberResolver) CommitteeCodes() []string  { return r.m.CommitteeCodes }

func (r *memberResolver) Scorecard() *scorecardResolver {
	sc, ok := r.reg.loaders.Scorecards.Load(r.m.MemberID)
	if !ok || sc == nil {
		return nil
	}
	return &scorecardResolver{s: sc}
}

func (r *memberResolver) Moneyball() *moneyballResolver {
	mb, ok := r.reg.loaders.Moneyball.Load(r.m.MemberID)
	if !ok || mb == nil {
		return nil
	}
	return &moneyballResolver{p: mb}
}

type membersConnectionResolver struct {
	items    []*memberResolver
	pageInfo *pageInfoResolver
}

func (c *membersConnectionResolver) Items() []*memberResolver { return c.items }
func (c *membersConnectionResolver) PageInfo() *pageInfoResolver { return c.pageInfo }

// billResolver wraps model.Bill, resolving sponsor lists through the
// member loader so a bill with N sponsors costs one batched lookup.
type billResolver struct {
	b   *model.Bill
	reg *requestLoaders
}

func (r *billResolver) LegID() graphql.ID       { return graphql.ID(r.b.LegID) }
func (r *billResolver) BillNumber() string      { return r.b.BillNumber }
func (r *billResolver) Chamber() string         { return string(r.b.Chamber) }
func (r *billResolver) Kind() string            { return string(r.b.Kind) }
func (r *billResolver) Description() string     { return r.b.Description }
func (r *billResolver) Status() string          { return string(r.b.Status) }
func (r *billResolver) PipelineDepth() int32    { return int32(r.b.PipelineDepth) }

func (r *billResolver) LastAction() *string {
	if r.b.LastAction == "" {
		return nil
	}
	return &r.b.LastAction
}

func (r *billResolver) LastActionDate() *string {
	if r.b.LastActionDate == nil {
		return nil
	}
	s := r.b.LastActionDate.Format("2006-01-02")
	return &s
}

func (r *billResolver) Sponsors() []*memberResolver {
	return wrapMembersByID(r.b.SponsorIDs, r.reg)
}

func (r *billResolver) HouseSponsors() []*memberResolver {
	return wrapMembersByID(r.b.HouseSponsorIDs, r.reg)
}

func wrapMembersByID(ids []string, reg *requestLoaders) []*memberResolver {
	values := reg.loaders.Members.LoadMany(ids)
	out := make([]*memberResolver, 0, len(ids))
	for _, id := range ids {
		if m, ok := values[id]; ok {
			out = append(out, &memberResolver{m: m, reg: reg})
		}
	}
	primeMemberAnalytics(reg, membersOf(out))
	return out
}

func membersOf(resolvers []*memberResolver) []*model.Member {
	out := make([]*model.Member, len(resolvers))
	for i, r := range resolvers {
		out[i] = r.m
	}
	return out
}

type billsConnectionResolver struct {
	items    []*billResolver
	pageInfo *pageInfoResolver
}

func (c *billsConnectionResolver) Items() []*billResolver       { return c.items }
func (c *billsConnectionResolver) PageInfo() *pageInfoResolver { return c.pageInfo }

// voteNameResolver wraps model.VoteName, resolving Member through the
// loader when the reported name matched exactly one member.
type voteNameResolver struct {
	n   model.VoteName
	reg *requestLoaders
}

func (r *voteNameResolver) Name() string { return r.n.Name }

func (r *voteNameResolver) Member() *memberResolver {
	if r.n.MemberID == "" {
		return nil
	}
	m, ok := r.reg.loaders.Members.Load(r.n.MemberID)
	if !ok {
		return nil
	}
	return &memberResolver{m: m, reg: r.reg}
}

type voteEventResolver struct {
	v   *model.VoteEvent
	reg *requestLoaders
}

func (r *voteEventResolver) BillNumber() string { return r.v.BillNumber }
func (r *voteEventResolver) Chamber() string    { return string(r.v.Chamber) }
func (r *voteEventResolver) Date() string       { return r.v.Date.Format("2006-01-02") }
func (r *voteEventResolver) Kind() string       { return string(r.v.Kind) }

func (r *voteEventResolver) CommitteeCode() *string {
	if r.v.CommitteeCode == "" {
		return nil
	}
	return &r.v.CommitteeCode
}

func (r *voteEventResolver) MotionText() *string {
	if r.v.MotionText == "" {
		return nil
	}
	return &r.v.MotionText
}

func (r *voteEventResolver) YeaVotes() []*voteNameResolver     { return wrapVoteNames(r.v.YeaVotes, r.reg) }
func (r *voteEventResolver) NayVotes() []*voteNameResolver     { return wrapVoteNames(r.v.NayVotes, r.reg) }
func (r *voteEventResolver) PresentVotes() []*voteNameResolver { return wrapVoteNames(r.v.PresentVotes, r.reg) }
func (r *voteEventResolver) NvVotes() []*voteNameResolver      { return wrapVoteNames(r.v.NVVotes, r.reg) }

func wrapVoteNames(names []model.VoteName, reg *requestLoaders) []*voteNameResolver {
	out := make([]*voteNameResolver, len(names))
	for i, n := range names {
		out[i] = &voteNameResolver{n: n, reg: reg}
	}
	return out
}

type voteEventsConnectionResolver struct {
	items    []*voteEventResolver
	pageInfo *pageInfoResolver
}

func (c *voteEventsConnectionResolver) Items() []*voteEventResolver  { return c.items }
func (c *voteEventsConnectionResolver) PageInfo() *pageInfoResolver { return c.pageInfo }

type witnessSlipResolver struct{ s *model.WitnessSlip }

func (r *witnessSlipResolver) BillNumber() string    { return r.s.BillNumber }
func (r *witnessSlipResolver) Chamber() string       { return string(r.s.Chamber) }
func (r *witnessSlipResolver) CommitteeCode() string { return r.s.CommitteeCode }
func (r *witnessSlipResolver) HearingDate() string   { return r.s.HearingDate.Format("2006-01-02") }
func (r *witnessSlipResolver) FilerName() string     { return r.s.FilerName }
func (r *witnessSlipResolver) Represents() string     { return r.s.Represents }
func (r *witnessSlipResolver) Position() string      { return string(r.s.Position) }
func (r *witnessSlipResolver) WillTestify() bool     { return r.s.WillTestify }

type witnessSlipsConnectionResolver struct {
	items    []*witnessSlipResolver
	pageInfo *pageInfoResolver
}

func (c *witnessSlipsConnectionResolver) Items() []*witnessSlipResolver { return c.items }
func (c *witnessSlipsConnectionResolver) PageInfo() *pageInfoResolver  { return c.pageInfo }

type slipSummaryResolver struct{ s analytics.SlipSummary }

func (r *slipSummaryResolver) BillNumber() string       { return r.s.BillNumber }
func (r *slipSummaryResolver) ProponentCount() int32    { return int32(r.s.ProponentCount) }
func (r *slipSummaryResolver) OpponentCount() int32     { return int32(r.s.OpponentCount) }
func (r *slipSummaryResolver) NoPositionCount() int32   { return int32(r.s.NoPositionCount) }
func (r *slipSummaryResolver) InformationCount() int32  { return int32(r.s.InformationCount) }
func (r *slipSummaryResolver) WillTestifyCount() int32  { return int32(r.s.WillTestifyCount) }
func (r *slipSummaryResolver) TotalCount() int32        { return int32(r.s.TotalCount) }
func (r *slipSummaryResolver) ProponentRatio() float64  { return r.s.ProponentRatio() }

type slipSummariesConnectionResolver struct {
	items    []*slipSummaryResolver
	pageInfo *pageInfoResolver
}

func (c *slipSummariesConnectionResolver) Items() []*slipSummaryResolver { return c.items }
func (c *slipSummariesConnectionResolver) PageInfo() *pageInfoResolver  { return c.pageInfo }

type billSlipAnalyticsResolver struct{ a analytics.BillSlipAnalytics }

func (r *billSlipAnalyticsResolver) Summary() *slipSummaryResolver { return &slipSummaryResolver{s: r.a.Summary} }
func (r *billSlipAnalyticsResolver) PipelineDepth() int32          { return int32(r.a.PipelineDepth) }
func (r *billSlipAnalyticsResolver) Status() string                { return string(r.a.Status) }
func (r *billSlipAnalyticsResolver) SentimentAligned() bool        { return r.a.SentimentAligned }

type memberSlipAlignmentResolver struct{ a analytics.MemberSlipAlignment }

func (r *memberSlipAlignmentResolver) MemberID() graphql.ID      { return graphql.ID(r.a.MemberID) }
func (r *memberSlipAlignmentResolver) BillsWithSlips() int32     { return int32(r.a.BillsWithSlips) }
func (r *memberSlipAlignmentResolver) AlignedCount() int32       { return int32(r.a.AlignedCount) }
func (r *memberSlipAlignmentResolver) AlignmentRate() float64    { return r.a.AlignmentRate() }

type advancementSummaryResolver struct{ s analytics.AdvancementSummary }

func (r *advancementSummaryResolver) TotalBills() int32         { return int32(r.s.TotalBills) }
func (r *advancementSummaryResolver) PassedBothChambers() int32 { return int32(r.s.PassedBothChambers) }
func (r *advancementSummaryResolver) Signed() int32             { return int32(r.s.Signed) }
func (r *advancementSummaryResolver) Vetoed() int32             { return int32(r.s.Vetoed) }
func (r *advancementSummaryResolver) Dead() int32               { return int32(r.s.Dead) }
func (r *advancementSummaryResolver) AvgPipelineDepth() float64  { return r.s.AvgPipelineDepth }

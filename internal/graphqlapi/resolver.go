// SPDX-License-Identifier: MIT

// Package graphqlapi wires the hydrated graph and its derived analytics
// into a github.com/graph-gophers/graphql-go schema (spec §4.12). Every
// Query field method takes a request-scoped loader.Registry off the
// Resolver rather than touching the global graph directly, the same
// separation the teacher's service layer keeps between transport and
// domain logic.
package graphqlapi

import (
	"context"
	_ "embed"
	"sort"
	"strings"

	"github.com/graph-gophers/graphql-go"

	"github.com/tylermorales/ilga-graph/internal/analytics"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
	"github.com/tylermorales/ilga-graph/internal/loader"
)

//go:embed schema.graphql
var schemaSDL string

// Resolver is the root GraphQL Query resolver. One Resolver is built at
// boot and shared across requests; per-request state lives entirely in
// the requestLoaders built fresh inside each method.
type Resolver struct {
	g              *graph.Graph
	scorecards     map[string]*model.Scorecard
	moneyball      map[string]*model.MoneyballProfile
	slipSummaries  map[string]analytics.SlipSummary
	advancement    analytics.AdvancementSummary
}

// New builds a Resolver over a hydrated graph and its precomputed
// analytics. Witness-slip summaries and the advancement summary are
// derived once here rather than per request, since they depend only on
// data that is immutable for this process's lifetime.
func New(g *graph.Graph, scorecards map[string]*model.Scorecard, moneyball map[string]*model.MoneyballProfile) *Resolver {
	return &Resolver{
		g:             g,
		scorecards:    scorecards,
		moneyball:     moneyball,
		slipSummaries: analytics.SummarizeSlips(g.WitnessSlips),
		advancement:   analytics.ComputeAdvancementSummary(g.Bills),
	}
}

// Schema parses the embedded SDL against r, wrapped with the Prometheus
// field-latency tracer (spec §4.12).
func Schema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, r, graphql.Tracer(newFieldTracer()))
}

// requestLoaders bundles a loader.Registry built fresh by each root
// query resolver that calls it; every *Resolver wrapper type returned
// from that root field carries a pointer to it so nested field
// resolution (e.g. a Bill's Sponsors) coalesces against the same member
// loader. Separate root fields of one request get separate registries.
type requestLoaders struct {
	loaders *loader.Registry
}

func (r *Resolver) requestLoaders() *requestLoaders {
	return &requestLoaders{loaders: loader.NewRegistry(r.g, r.scorecards, r.moneyball)}
}

// --- members ---

type memberArgs struct {
	Name string
}

func (r *Resolver) Member(ctx context.Context, args memberArgs) *memberResolver {
	reg := r.requestLoaders()
	for _, m := range r.g.Members {
		if strings.EqualFold(m.Name, args.Name) {
			return &memberResolver{m: m, reg: reg}
		}
	}
	return nil
}

type membersArgs struct {
	SortBy    *string
	SortOrder *string
	Chamber   *string
	Limit     *int32
	Offset    *int32
}

func (r *Resolver) Members(ctx context.Context, args membersArgs) *membersConnectionResolver {
	reg := r.requestLoaders()
	members := make([]*model.Member, len(r.g.Members))
	copy(members, r.g.Members)

	if args.Chamber != nil {
		members = filterMembers(members, model.Chamber(*args.Chamber))
	}
	sortMembers(members, deref(args.SortBy, "name"), deref(args.SortOrder, "asc"))

	limit, offset := intArg(args.Limit), intArg(args.Offset)
	sliced, offset := page(members, limit, offset)

	primeMemberAnalytics(reg, sliced)
	items := make([]*memberResolver, len(sliced))
	for i, m := range sliced {
		items[i] = &memberResolver{m: m, reg: reg}
	}
	return &membersConnectionResolver{items: items, pageInfo: newPageInfo(len(members), offset, len(items))}
}

// primeMemberAnalytics issues one batched Scorecards/Moneyball lookup
// for every member about to be wrapped into a memberResolver, so that a
// query resolving N members with their scorecard/moneyball fields costs
// one LoadMany each rather than N independent Load calls (spec §8
// loader-coalescing property) — the same upfront-LoadMany shape
// wrapMembersByID uses for a bill's sponsor list.
func primeMemberAnalytics(reg *requestLoaders, members []*model.Member) {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.MemberID
	}
	reg.loaders.Scorecards.LoadMany(ids)
	reg.loaders.Moneyball.LoadMany(ids)
}

func filterMembers(members []*model.Member, chamber model.Chamber) []*model.Member {
	out := members[:0]
	for _, m := range members {
		if m.Chamber == chamber {
			out = append(out, m)
		}
	}
	return out
}

func sortMembers(members []*model.Member, sortBy, sortOrder string) {
	less := func(i, j int) bool {
		switch sortBy {
		case "district":
			return members[i].District < members[j].District
		case "chamber":
			return members[i].Chamber < members[j].Chamber
		default:
			return members[i].Name < members[j].Name
		}
	}
	if sortOrder == "desc" {
		base := less
		less = func(i, j int) bool { return base(j, i) }
	}
	sort.SliceStable(members, less)
}

type moneyballLeaderboardArgs struct {
	Chamber           *string
	ExcludeLeadership *bool
	Limit             *int32
	SortBy            *string
	SortOrder         *string
}

func (r *Resolver) MoneyballLeaderboard(ctx context.Context, args moneyballLeaderboardArgs) []*memberResolver {
	reg := r.requestLoaders()
	chamber := model.Chamber(deref(args.Chamber, ""))
	excludeLeadership := args.ExcludeLeadership != nil && *args.ExcludeLeadership
	entries := analytics.Leaderboard(r.g.Members, r.moneyball, chamber, excludeLeadership, intArg(args.Limit))

	members := make([]*model.Member, len(entries))
	for i, e := range entries {
		members[i] = e.Member
	}
	primeMemberAnalytics(reg, members)

	out := make([]*memberResolver, len(entries))
	for i, m := range members {
		out[i] = &memberResolver{m: m, reg: reg}
	}
	return out
}

// --- bills ---

type billArgs struct {
	Number string
}

func (r *Resolver) Bill(ctx context.Context, args billArgs) *billResolver {
	reg := r.requestLoaders()
	for _, b := range r.g.Bills {
		if strings.EqualFold(b.BillNumber, args.Number) {
			return &billResolver{b: b, reg: reg}
		}
	}
	return nil
}

type billsArgs struct {
	SortBy    *string
	SortOrder *string
	DateFrom  *string
	DateTo    *string
	Limit     *int32
	Offset    *int32
}

func (r *Resolver) Bills(ctx context.Context, args billsArgs) *billsConnectionResolver {
	reg := r.requestLoaders()
	bills := make([]*model.Bill, 0, len(r.g.Bills))
	for _, b := range r.g.Bills {
		bills = append(bills, b)
	}
	bills = filterBillsByDate(bills, deref(args.DateFrom, ""), deref(args.DateTo, ""))
	sortBills(bills, deref(args.SortBy, "bill_number"), deref(args.SortOrder, "asc"))

	limit, offset := intArg(args.Limit), intArg(args.Offset)
	sliced, offset := page(bills, limit, offset)

	items := make([]*billResolver, len(sliced))
	for i, b := range sliced {
		items[i] = &billResolver{b: b, reg: reg}
	}
	return &billsConnectionResolver{items: items, pageInfo: newPageInfo(len(bills), offset, len(items))}
}

func filterBillsByDate(bills []*model.Bill, from, to string) []*model.Bill {
	if from == "" && to == "" {
		return bills
	}
	out := bills[:0]
	for _, b := range bills {
		if b.LastActionDate == nil {
			continue
		}
		d := b.LastActionDate.Format("2006-01-02")
		if from != "" && d < from {
			continue
		}
		if to != "" && d > to {
			continue
		}
		out = append(out, b)
	}
	return out
}

func sortBills(bills []*model.Bill, sortBy, sortOrder string) {
	less := func(i, j int) bool {
		switch sortBy {
		case "pipeline_depth":
			return bills[i].PipelineDepth < bills[j].PipelineDepth
		case "status":
			return bills[i].Status < bills[j].Status
		default:
			return bills[i].BillNumber < bills[j].BillNumber
		}
	}
	if sortOrder == "desc" {
		base := less
		less = func(i, j int) bool { return base(j, i) }
	}
	sort.SliceStable(bills, less)
}

// --- votes ---

type billNumberArgs struct {
	BillNumber string
}

// Votes returns a raw list rather than a Connection: vote events per
// bill are bounded to roughly the number of committee-plus-floor votes
// a single bill receives, never large enough to warrant pagination
// (spec §6).
func (r *Resolver) Votes(ctx context.Context, args billNumberArgs) []*voteEventResolver {
	reg := r.requestLoaders()
	return votesForBill(r.g.VoteEvents, args.BillNumber, "", reg)
}

type billVoteTimelineArgs struct {
	BillNumber string
	Chamber    *string
}

func (r *Resolver) BillVoteTimeline(ctx context.Context, args billVoteTimelineArgs) []*voteEventResolver {
	reg := r.requestLoaders()
	return votesForBill(r.g.VoteEvents, args.BillNumber, deref(args.Chamber, ""), reg)
}

func votesForBill(events []*model.VoteEvent, billNumber, chamber string, reg *requestLoaders) []*voteEventResolver {
	var out []*voteEventResolver
	for _, v := range events {
		if !strings.EqualFold(v.BillNumber, billNumber) {
			continue
		}
		if chamber != "" && string(v.Chamber) != chamber {
			continue
		}
		out = append(out, &voteEventResolver{v: v, reg: reg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].v.Less(out[j].v) })
	return out
}

type allVoteEventsArgs struct {
	VoteType *string
	Chamber  *string
	Limit    *int32
	Offset   *int32
}

func (r *Resolver) AllVoteEvents(ctx context.Context, args allVoteEventsArgs) *voteEventsConnectionResolver {
	reg := r.requestLoaders()
	events := make([]*model.VoteEvent, 0, len(r.g.VoteEvents))
	for _, v := range r.g.VoteEvents {
		if args.VoteType != nil && string(v.Kind) != *args.VoteType {
			continue
		}
		if args.Chamber != nil && string(v.Chamber) != *args.Chamber {
			continue
		}
		events = append(events, v)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Less(events[j]) })

	limit, offset := intArg(args.Limit), intArg(args.Offset)
	sliced, offset := page(events, limit, offset)

	items := make([]*voteEventResolver, len(sliced))
	for i, v := range sliced {
		items[i] = &voteEventResolver{v: v, reg: reg}
	}
	return &voteEventsConnectionResolver{items: items, pageInfo: newPageInfo(len(events), offset, len(items))}
}

// --- witness slips ---

type witnessSlipsArgs struct {
	BillNumber string
	Limit      *int32
	Offset     *int32
}

func (r *Resolver) WitnessSlips(ctx context.Context, args witnessSlipsArgs) *witnessSlipsConnectionResolver {
	slips := make([]*model.WitnessSlip, 0)
	for _, s := range r.g.WitnessSlips {
		if strings.EqualFold(s.BillNumber, args.BillNumber) {
			slips = append(slips, s)
		}
	}
	sort.Slice(slips, func(i, j int) bool { return slips[i].HearingDate.Before(slips[j].HearingDate) })

	limit, offset := intArg(args.Limit), intArg(args.Offset)
	sliced, offset := page(slips, limit, offset)

	items := make([]*witnessSlipResolver, len(sliced))
	for i, s := range sliced {
		items[i] = &witnessSlipResolver{s: s}
	}
	return &witnessSlipsConnectionResolver{items: items, pageInfo: newPageInfo(len(slips), offset, len(items))}
}

func (r *Resolver) WitnessSlipSummary(ctx context.Context, args billNumberArgs) *slipSummaryResolver {
	s, ok := r.slipSummaries[args.BillNumber]
	if !ok {
		return nil
	}
	return &slipSummaryResolver{s: s}
}

type limitOffsetArgs struct {
	Limit  *int32
	Offset *int32
}

func (r *Resolver) WitnessSlipSummaries(ctx context.Context, args limitOffsetArgs) *slipSummariesConnectionResolver {
	summaries := make([]analytics.SlipSummary, 0, len(r.slipSummaries))
	for _, s := range r.slipSummaries {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].BillNumber < summaries[j].BillNumber })

	limit, offset := intArg(args.Limit), intArg(args.Offset)
	sliced, offset := page(summaries, limit, offset)

	items := make([]*slipSummaryResolver, len(sliced))
	for i, s := range sliced {
		items[i] = &slipSummaryResolver{s: s}
	}
	return &slipSummariesConnectionResolver{items: items, pageInfo: newPageInfo(len(summaries), offset, len(items))}
}

func (r *Resolver) BillSlipAnalytics(ctx context.Context, args billNumberArgs) *billSlipAnalyticsResolver {
	var b *model.Bill
	for _, candidate := range r.g.Bills {
		if strings.EqualFold(candidate.BillNumber, args.BillNumber) {
			b = candidate
			break
		}
	}
	if b == nil {
		return nil
	}
	summary := r.slipSummaries[b.BillNumber]
	return &billSlipAnalyticsResolver{a: analytics.ComputeBillSlipAnalytics(b, summary)}
}

type memberSlipAlignmentArgs struct {
	MemberName string
}

func (r *Resolver) MemberSlipAlignment(ctx context.Context, args memberSlipAlignmentArgs) *memberSlipAlignmentResolver {
	for _, m := range r.g.Members {
		if strings.EqualFold(m.Name, args.MemberName) {
			a := analytics.ComputeMemberSlipAlignment(m, r.slipSummaries)
			return &memberSlipAlignmentResolver{a: a}
		}
	}
	return nil
}

func (r *Resolver) BillAdvancementAnalyticsSummary(ctx context.Context) *advancementSummaryResolver {
	return &advancementSummaryResolver{s: r.advancement}
}

func (r *Resolver) MetricsGlossary(ctx context.Context) []*metricDefinition {
	return glossary
}

// --- shared arg helpers ---

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func intArg(v *int32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

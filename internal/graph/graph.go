// SPDX-License-Identifier: MIT

// Package graph implements the Graph Builder (spec §4.5): it hydrates
// the Cache Store's normalized JSON collections into an in-memory
// object graph with real pointers in place of bare ID references, the
// same "load flat records, resolve pointers in a second pass" shape
// the teacher's domain layer uses when a committee's roster references
// a member by UID.
package graph

import (
	"context"
	"log/slog"
	"time"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
)

// Graph is the fully hydrated in-memory object graph for one process's
// lifetime of cached data.
type Graph struct {
	Members       []*model.Member
	MembersByID   map[string]*model.Member
	Bills         map[string]*model.Bill
	Committees    []*model.Committee
	CommitteesByCode map[string]*model.Committee
	VoteEvents    []*model.VoteEvent
	WitnessSlips  []*model.WitnessSlip
}

// Build hydrates a Graph from the Cache Store (spec §4.5 steps 1-5).
func Build(ctx context.Context, store *cache.Store, now time.Time) (*Graph, error) {
	bills, err := store.Bills(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		b.Status, b.PipelineDepth = DeriveStatus(b, now)
	}

	members, err := store.Members(ctx)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		Members:          members,
		MembersByID:      make(map[string]*model.Member, len(members)),
		Bills:            bills,
		CommitteesByCode: make(map[string]*model.Committee),
	}
	for _, m := range members {
		g.MembersByID[m.MemberID] = m
		hydrateMemberBillRefs(m, bills)
		seedMemberRoles(m)
	}
	for _, b := range bills {
		hydrateBillSponsorRefs(b, g.MembersByID)
	}

	committees, err := store.Committees(ctx)
	if err != nil {
		return nil, err
	}
	rosters, err := store.CommitteeRosters(ctx)
	if err != nil {
		return nil, err
	}
	committeeBills, err := store.CommitteeBills(ctx)
	if err != nil {
		return nil, err
	}
	g.Committees = committees
	for _, c := range committees {
		g.CommitteesByCode[c.Code] = c
	}
	for _, c := range committees {
		if c.ParentCode != nil {
			c.Parent = g.CommitteesByCode[*c.ParentCode]
		}
		for _, roster := range rosters[c.Code] {
			member := g.MembersByID[roster.MemberID]
			c.Members = append(c.Members, model.CommitteeMembership{
				MemberID: roster.MemberID,
				Role:     roster.Role,
				Member:   member,
			})
			addMemberRole(member, string(roster.Role))
		}
		for _, legID := range committeeBills[c.Code] {
			c.BillIDs = append(c.BillIDs, legID)
			if b, ok := bills[legID]; ok {
				c.Bills = append(c.Bills, b)
			}
		}
	}

	voteEvents, err := store.VoteEvents(ctx)
	if err != nil {
		return nil, err
	}
	g.VoteEvents = voteEvents
	reconcileVoteNames(voteEvents, members)

	slips, err := store.WitnessSlips(ctx)
	if err != nil {
		return nil, err
	}
	g.WitnessSlips = slips

	slog.InfoContext(ctx, "graph hydrated",
		"members", len(members),
		"bills", len(bills),
		"committees", len(committees),
		"vote_events", len(voteEvents),
		"witness_slips", len(slips),
	)

	return g, nil
}

// seedMemberRoles seeds m.Roles from its own detail-page Role title
// (spec §3's "role (leadership title)"), ahead of the committee-roster
// roles added per-committee below, so institutionalWeight (spec §4.7)
// sees both sources aggregated on one field.
func seedMemberRoles(m *model.Member) {
	addMemberRole(m, m.Role)
}

// addMemberRole appends role to m.Roles if non-empty and not already
// present, aggregating every leadership/chair title a member holds
// across their own detail page and every committee roster they sit on
// (spec §3's roles field, consumed by institutionalWeight).
func addMemberRole(m *model.Member, role string) {
	if m == nil || role == "" {
		return
	}
	for _, r := range m.Roles {
		if r == role {
			return
		}
	}
	m.Roles = append(m.Roles, role)
}

func hydrateMemberBillRefs(m *model.Member, bills map[string]*model.Bill) {
	for _, legID := range m.BillIDs {
		if b, ok := bills[legID]; ok {
			m.Bills = append(m.Bills, b)
		}
	}
	for _, legID := range m.PrimaryBillIDs {
		if b, ok := bills[legID]; ok {
			m.PrimaryBills = append(m.PrimaryBills, b)
		}
	}
}

// hydrateBillSponsorRefs resolves b's sponsor_ids/house_sponsor_ids
// (already member_ids, lifted straight off ILGA's sponsor-name anchors
// by the parser) into real *model.Member pointers for scoring.
func hydrateBillSponsorRefs(b *model.Bill, membersByID map[string]*model.Member) {
	for _, id := range b.SponsorIDs {
		if m, ok := membersByID[id]; ok {
			b.Sponsors = append(b.Sponsors, m)
		}
	}
	for _, id := range b.HouseSponsorIDs {
		if m, ok := membersByID[id]; ok {
			b.HouseSponsors = append(b.HouseSponsors, m)
		}
	}
}

// reconcileVoteNames matches each reported vote-list name against the
// current chamber roster using the name-normalization rule (spec
// §4.2). A name matching exactly one member is resolved to its
// member_id; an ambiguous or unmatched name is left as a plain string.
func reconcileVoteNames(events []*model.VoteEvent, members []*model.Member) {
	byChamber := make(map[model.Chamber][]*model.Member)
	for _, m := range members {
		byChamber[m.Chamber] = append(byChamber[m.Chamber], m)
	}

	for _, event := range events {
		pool := byChamber[event.Chamber]
		for _, list := range [][]model.VoteName{event.YeaVotes, event.NayVotes, event.PresentVotes, event.NVVotes} {
			resolveList(list, pool)
		}
	}
}

func resolveList(names []model.VoteName, pool []*model.Member) {
	for i := range names {
		var matches []*model.Member
		for _, m := range pool {
			given, surname := parse.SplitFullName(m.Name)
			if parse.MatchReported(names[i].Name, given, surname) {
				matches = append(matches, m)
			}
		}
		if len(matches) == 1 {
			names[i].MemberID = matches[0].MemberID
		}
	}
}

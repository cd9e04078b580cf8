// SPDX-License-Identifier: MIT

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// buildCohort wires up a small House cohort: one prolific leadership
// member whose signed bill has a cross-party co-sponsor, one Caucus
// Chair, one quiet backbencher, so every component has spread to
// normalize against.
func buildCohort() ([]*model.Member, map[string]*model.Bill) {
	speaker := &model.Member{MemberID: "m1", Chamber: model.ChamberHouse, Party: model.PartyDemocrat, Roles: []string{"Speaker"}}
	bridger := &model.Member{MemberID: "m2", Chamber: model.ChamberHouse, Party: model.PartyDemocrat, Roles: []string{"Caucus Chair"}}
	backbench := &model.Member{MemberID: "m3", Chamber: model.ChamberHouse, Party: model.PartyRepublican}

	bill1 := &model.Bill{LegID: "1", BillNumber: "HB0001", Kind: model.KindSubstantive, Description: "A substantive reform of the school funding formula statewide for all districts",
		Status: model.StatusSigned, PipelineDepth: 6, SponsorIDs: []string{"m1", "m2", "m3"}, Sponsors: []*model.Member{speaker, bridger, backbench}}
	bill2 := &model.Bill{LegID: "2", BillNumber: "HB0002", Kind: model.KindSubstantive, Description: "A substantive reform of unemployment insurance appeals timelines statewide",
		Status: model.StatusInCommittee, PipelineDepth: 1, SponsorIDs: []string{"m2"}, Sponsors: []*model.Member{bridger}}
	bill3 := &model.Bill{LegID: "3", BillNumber: "HB0003", Kind: model.KindSubstantive, Description: "A substantive reform of rural broadband grant eligibility criteria statewide",
		Status: model.StatusFiled, PipelineDepth: 0, SponsorIDs: []string{"m3"}, Sponsors: []*model.Member{backbench}}

	speaker.PrimaryBills = []*model.Bill{bill1}
	bridger.PrimaryBills = []*model.Bill{bill2}
	backbench.PrimaryBills = []*model.Bill{bill3}

	bills := map[string]*model.Bill{"1": bill1, "2": bill2, "3": bill3}
	return []*model.Member{speaker, bridger, backbench}, bills
}

func TestComputeAllMoneyballScoreIsWithinBounds(t *testing.T) {
	members, bills := buildCohort()
	_, profiles := ComputeAll(members, bills)

	require.Len(t, profiles, 3)
	for _, p := range profiles {
		assert.GreaterOrEqual(t, p.MoneyballScore, 0.0)
		assert.LessOrEqual(t, p.MoneyballScore, 100.0)
	}
}

func TestComputeAllInstitutionalWeightPrecedence(t *testing.T) {
	members, bills := buildCohort()
	_, profiles := ComputeAll(members, bills)

	assert.Equal(t, 1.00, profiles["m1"].InstitutionalWeight) // Speaker
	assert.Equal(t, 0.25, profiles["m2"].InstitutionalWeight) // Caucus Chair
	assert.Equal(t, 0.00, profiles["m3"].InstitutionalWeight) // no role
}

func TestLeaderboardNonLeadershipExcludesHighInstitutionalWeight(t *testing.T) {
	members, bills := buildCohort()
	_, profiles := ComputeAll(members, bills)

	entries := Leaderboard(members, profiles, model.ChamberHouse, true, 0)
	for _, e := range entries {
		assert.Less(t, e.Profile.InstitutionalWeight, 0.50)
	}
}

func TestMVPIsHighestScoringNonLeadershipMember(t *testing.T) {
	members, bills := buildCohort()
	_, profiles := ComputeAll(members, bills)

	mvp := MVP(members, profiles, model.ChamberHouse)
	require.NotNil(t, mvp)
	assert.Less(t, mvp.Profile.InstitutionalWeight, 0.50)

	for _, e := range Leaderboard(members, profiles, model.ChamberHouse, true, 0) {
		assert.LessOrEqual(t, e.Profile.MoneyballScore, mvp.Profile.MoneyballScore)
	}
}

func TestRoleWeightDistinguishesCaucusChairFromChair(t *testing.T) {
	assert.Equal(t, 0.25, roleWeight("Caucus Chair"))
	assert.Equal(t, 0.50, roleWeight("Committee Chair"))
	assert.Equal(t, 1.00, roleWeight("Majority Leader"))
	assert.Equal(t, 0.00, roleWeight("Member"))
}

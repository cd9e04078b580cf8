// SPDX-License-Identifier: MIT

package seating

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

const sampleChart = `
seats:
  - member_id: s1
    block_id: A
    ring: inner
    position: 1
  - member_id: s2
    block_id: A
    ring: inner
    position: 2
  - member_id: s3
    block_id: A
    ring: inner
    position: 3
`

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seating.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleChart), 0o644))
	return path
}

func TestAisleRuleEdgeSeatHasOneNeighbor(t *testing.T) {
	chart, err := LoadChart(writeChart(t))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"s2"}, chart.Neighbors("s1"))
	assert.ElementsMatch(t, []string{"s1", "s3"}, chart.Neighbors("s2"))
	assert.ElementsMatch(t, []string{"s2"}, chart.Neighbors("s3"))
}

func TestApplyComputesSeatmateAffinity(t *testing.T) {
	chart, err := LoadChart(writeChart(t))
	require.NoError(t, err)

	s1 := &model.Member{MemberID: "s1", Chamber: model.ChamberSenate}
	s2 := &model.Member{MemberID: "s2", Chamber: model.ChamberSenate, Name: "Neighbor Two"}
	s3 := &model.Member{MemberID: "s3", Chamber: model.ChamberSenate}

	bill := &model.Bill{LegID: "1", Kind: model.KindSubstantive, SponsorIDs: []string{"s1", "s2"}}
	s1.PrimaryBills = []*model.Bill{bill}

	members := []*model.Member{s1, s2, s3}
	byID := map[string]*model.Member{"s1": s1, "s2": s2, "s3": s3}
	Apply(chart, members, byID)

	require.NotNil(t, s1.SeatmateAffinity)
	assert.Equal(t, 1.0, *s1.SeatmateAffinity)
	assert.Equal(t, "A", s1.SeatBlockID)
	assert.Contains(t, s1.SeatmateNames, "Neighbor Two")
}

func TestApplyLeavesHouseMembersUntouched(t *testing.T) {
	chart, err := LoadChart(writeChart(t))
	require.NoError(t, err)

	house := &model.Member{MemberID: "h1", Chamber: model.ChamberHouse}
	Apply(chart, []*model.Member{house}, map[string]*model.Member{"h1": house})

	assert.Empty(t, house.SeatBlockID)
	assert.Nil(t, house.SeatmateAffinity)
}

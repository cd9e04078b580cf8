// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

func TestMissingCacheFileReturnsEmptyCollection(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	members, err := store.Members(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestSaveAndReadMembersRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	members := []*model.Member{
		{MemberID: "m1", Name: "Jane Smith", Chamber: model.ChamberHouse, BillIDs: []string{"1"}},
	}
	require.NoError(t, store.SaveMembers(ctx, members))

	loaded, err := store.Members(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "m1", loaded[0].MemberID)
	assert.Equal(t, []string{"1"}, loaded[0].BillIDs)
}

func TestSaveBillsRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	bills := map[string]*model.Bill{
		"1": {LegID: "1", BillNumber: "HB0001"},
	}
	require.NoError(t, store.SaveBills(ctx, bills))

	loaded, err := store.Bills(ctx)
	require.NoError(t, err)
	require.Contains(t, loaded, "1")
	assert.Equal(t, "HB0001", loaded["1"].BillNumber)
}

func TestIsAnalyticsFreshFalseWhenScorecardsMissing(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveMembers(ctx, []*model.Member{}))
	assert.False(t, store.IsAnalyticsFresh())
}

func TestIsAnalyticsFreshTrueWhenScorecardsNewer(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveMembers(ctx, []*model.Member{}))
	require.NoError(t, store.SaveScorecards(ctx, map[string]*model.Scorecard{}))
	assert.True(t, store.IsAnalyticsFresh())
}

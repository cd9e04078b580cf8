// SPDX-License-Identifier: MIT

package etl

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/config"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

func seedStore(t *testing.T) (*cache.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := cache.New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveMembers(ctx, []*model.Member{
		{MemberID: "m1", Name: "Jane Smith", Chamber: model.ChamberHouse},
	}))
	require.NoError(t, store.SaveBills(ctx, map[string]*model.Bill{}))
	require.NoError(t, store.SaveCommittees(ctx, []*model.Committee{}))
	require.NoError(t, store.SaveCommitteeRosters(ctx, map[string][]cache.CommitteeRoster{}))
	require.NoError(t, store.SaveCommitteeBills(ctx, map[string][]string{}))
	require.NoError(t, store.SaveVoteEvents(ctx, []*model.VoteEvent{}))
	require.NoError(t, store.SaveWitnessSlips(ctx, []*model.WitnessSlip{}))
	return store, dir
}

func TestRunLoadOnlyRecomputesAnalyticsWhenStale(t *testing.T) {
	store, _ := seedStore(t)
	o := New(&config.Config{}, store, nil)

	result, err := o.Run(context.Background(), ModeLoadOnly)
	require.NoError(t, err)
	require.Contains(t, result.Scorecards, "m1")
	require.Contains(t, result.Moneyball, "m1")

	persisted, err := store.Scorecards(context.Background())
	require.NoError(t, err)
	assert.Contains(t, persisted, "m1", "a stale analytics cache must be recomputed and persisted")
}

func TestRunLoadOnlyReusesFreshAnalytics(t *testing.T) {
	store, dir := seedStore(t)
	o := New(&config.Config{}, store, nil)
	ctx := context.Background()

	require.NoError(t, store.SaveScorecards(ctx, map[string]*model.Scorecard{
		"m1": {MemberID: "m1", BillsIntroduced: 99},
	}))
	require.NoError(t, store.SaveMoneyball(ctx, map[string]*model.MoneyballProfile{
		"m1": {MemberID: "m1"},
	}))

	// Backdate members.json relative to scorecards.json so
	// IsAnalyticsFresh reports true without needing real elapsed
	// wall-clock time between the two saves above.
	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(dir+"/members.json", older, older))

	result, err := o.Run(ctx, ModeLoadOnly)
	require.NoError(t, err)
	require.Contains(t, result.Scorecards, "m1")
	assert.Equal(t, 99, result.Scorecards["m1"].BillsIntroduced,
		"fresh analytics on disk must be loaded as-is, not recomputed from the empty hydrated graph")
}

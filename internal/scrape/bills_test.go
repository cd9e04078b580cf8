// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/cache"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/parse"
)

func TestNeedsFetchNewLegIDAlwaysDue(t *testing.T) {
	assert.True(t, needsFetch(billRowWithDate("2026-01-01"), nil))
}

func TestNeedsFetchSameLastActionDateSkipped(t *testing.T) {
	cached := &model.Bill{LegID: "1", LastActionDate: mustDate("2026-01-01")}
	assert.False(t, needsFetch(billRowWithDate("2026-01-01"), cached))
}

func TestNeedsFetchChangedLastActionDateDue(t *testing.T) {
	cached := &model.Bill{LegID: "1", LastActionDate: mustDate("2026-01-01")}
	assert.True(t, needsFetch(billRowWithDate("2026-02-01"), cached))
}

func TestBillsOnlyFetchesDetailForStaleOrNewRows(t *testing.T) {
	client := newStubClient()
	senateIndex := "https://www.ilga.gov/legislation/senatebills.asp"
	client.byURL[senateIndex] = `<table>
		<tr><td><a href="/legislation/billstatus.asp?DocNum=1&GA=104">SB0001</a></td><td>2026-01-15</td></tr>
		<tr><td><a href="/legislation/billstatus.asp?DocNum=2&GA=104">SB0002</a></td><td>2026-01-16</td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/legislation/billstatus.asp?DocNum=1&GA="] = `<html><body></body></html>`
	client.byURL["https://www.ilga.gov/legislation/housebills.asp"] = `<table></table>`

	cached := map[string]*model.Bill{
		"2": {LegID: "2", BillNumber: "SB0002", LastActionDate: mustDate("2026-01-16")},
	}

	deps := NewDeps(fastFetcher(client), nil, "https://www.ilga.gov")
	out, err := Bills(context.Background(), deps, cached, BillLimits{})
	require.NoError(t, err)

	require.Contains(t, out, "1")
	require.Contains(t, out, "2")
	assert.Equal(t, "SB0002", out["2"].BillNumber) // untouched, still the cached copy
	assert.Equal(t, 1, client.calls["https://www.ilga.gov/legislation/billstatus.asp?DocNum=1&GA="])
	assert.Zero(t, client.calls["https://www.ilga.gov/legislation/billstatus.asp?DocNum=2&GA="])
}

func TestScrapeChamberBillsCheckpointsEveryInterval(t *testing.T) {
	client := newStubClient()

	var rows strings.Builder
	rows.WriteString("<table>")
	for i := 1; i <= cache.CheckpointInterval; i++ {
		legID := fmt.Sprintf("%d", i)
		rows.WriteString(fmt.Sprintf(`<tr><td><a href="/legislation/billstatus.asp?DocNum=%s&GA=104">SB%04d</a></td><td>2026-01-15</td></tr>`, legID, i))
		client.byURL["https://www.ilga.gov/legislation/billstatus.asp?DocNum="+legID+"&GA="] = "<html><body></body></html>"
	}
	rows.WriteString("</table>")
	client.byURL["https://www.ilga.gov/legislation/senatebills.asp"] = rows.String()
	client.byURL["https://www.ilga.gov/legislation/housebills.asp"] = `<table></table>`

	store, err := cache.New(t.TempDir())
	require.NoError(t, err)

	deps := NewDeps(fastFetcher(client), store, "https://www.ilga.gov")
	out, err := Bills(context.Background(), deps, map[string]*model.Bill{}, BillLimits{})
	require.NoError(t, err)
	require.Len(t, out, cache.CheckpointInterval)

	persisted, err := store.Bills(context.Background())
	require.NoError(t, err)
	assert.Len(t, persisted, cache.CheckpointInterval, "checkpoint at the interval boundary should have flushed every fetched bill to disk")
}

func billRowWithDate(d string) parse.BillIndexRow {
	return parse.BillIndexRow{LegID: "1", BillNumber: "SB0001", LastActionDate: mustDate(d)}
}

func mustDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

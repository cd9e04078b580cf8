// SPDX-License-Identifier: MIT

package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

func actionsFromTexts(texts ...string) []model.ActionEntry {
	entries := make([]model.ActionEntry, len(texts))
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, t := range texts {
		entries[i] = model.ActionEntry{Date: base.AddDate(0, 0, i), ActionText: t, Chamber: model.ChamberHouse}
	}
	return entries
}

func TestDeriveStatusSignedBillScenario(t *testing.T) {
	bill := &model.Bill{
		ActionHistory: actionsFromTexts(
			"Filed",
			"Assigned to Executive",
			"Third Reading - Passed",
			"Sent to the Governor",
			"Public Act",
		),
	}
	last := bill.ActionHistory[len(bill.ActionHistory)-1].Date
	bill.LastActionDate = &last

	status, depth := DeriveStatus(bill, last.AddDate(0, 1, 0))
	assert.Equal(t, model.StatusSigned, status)
	assert.Equal(t, 6, depth)
}

func TestDeriveStatusVetoed(t *testing.T) {
	bill := &model.Bill{ActionHistory: actionsFromTexts("Filed", "Third Reading - Passed", "Total Veto")}
	status, depth := DeriveStatus(bill, time.Now())
	assert.Equal(t, model.StatusVetoed, status)
	assert.Equal(t, 6, depth)
}

func TestDeriveStatusPassedBothRequiresTwoChambers(t *testing.T) {
	bill := &model.Bill{
		ActionHistory: []model.ActionEntry{
			{ActionText: "Third Reading - Passed", Chamber: model.ChamberHouse},
			{ActionText: "Third Reading - Passed", Chamber: model.ChamberSenate},
		},
	}
	status, depth := DeriveStatus(bill, time.Now())
	assert.Equal(t, model.StatusPassedBoth, status)
	assert.Equal(t, 3, depth)
}

func TestDeriveStatusMarksDeadWhenInactive(t *testing.T) {
	last := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	bill := &model.Bill{
		ActionHistory:  actionsFromTexts("Filed", "Assigned to Executive"),
		LastActionDate: &last,
	}
	status, depth := DeriveStatus(bill, last.AddDate(2, 0, 0))
	assert.Equal(t, model.StatusDead, status)
	assert.Equal(t, 1, depth)
}

func TestDeriveStatusPipelineDepthMonotonicOverPrefix(t *testing.T) {
	texts := []string{"Filed", "Assigned to Executive", "Third Reading - Passed", "Sent to the Governor", "Public Act"}
	prevDepth := -1
	for i := 1; i <= len(texts); i++ {
		bill := &model.Bill{ActionHistory: actionsFromTexts(texts[:i]...)}
		_, depth := DeriveStatus(bill, time.Now())
		require.GreaterOrEqual(t, depth, prevDepth)
		prevDepth = depth
	}
}

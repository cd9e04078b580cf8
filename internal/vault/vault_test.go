// SPDX-License-Identifier: MIT

package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
)

func sampleGraph() *graph.Graph {
	member := &model.Member{MemberID: "M1", Name: "Jane Q. Smith", Chamber: model.ChamberSenate, Party: model.PartyDemocrat, District: 5}
	bill := &model.Bill{LegID: "1", BillNumber: "SB0001", Chamber: model.ChamberSenate, Kind: model.KindSubstantive, Status: model.StatusFiled, SponsorIDs: []string{"M1"}, Sponsors: []*model.Member{member}}
	member.Bills = []*model.Bill{bill}
	member.PrimaryBills = []*model.Bill{bill}

	committee := &model.Committee{
		Code: "EXEC", Name: "Executive Committee", Chamber: model.ChamberSenate,
		Members: []model.CommitteeMembership{{MemberID: "M1", Role: model.RoleChair, Member: member}},
		Bills:   []*model.Bill{bill},
	}

	return &graph.Graph{
		Members:    []*model.Member{member},
		Bills:      map[string]*model.Bill{"1": bill},
		Committees: []*model.Committee{committee},
	}
}

func TestMarkdownExporterWritesOneFilePerEntity(t *testing.T) {
	dir := t.TempDir()
	exporter := NewMarkdownExporter()
	g := sampleGraph()

	err := exporter.Export(context.Background(), dir, g, nil, nil)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "jane-q-smith.md"))
	assert.FileExists(t, filepath.Join(dir, "sb0001.md"))
	assert.FileExists(t, filepath.Join(dir, "executive-committee.md"))

	data, err := os.ReadFile(filepath.Join(dir, "sb0001.md"))
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "---")
	assert.Contains(t, body, "[[Jane Q. Smith]]")
}

func TestMarkdownExporterSweepsStaleNotes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "retired-member.md"), []byte("stale"), 0o644))

	exporter := NewMarkdownExporter()
	err := exporter.Export(context.Background(), dir, sampleGraph(), nil, nil)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "retired-member.md"))
}

func TestMarkdownExporterIncludesScorecardAndMoneyballFields(t *testing.T) {
	dir := t.TempDir()
	g := sampleGraph()
	scorecards := map[string]*model.Scorecard{"M1": {MemberID: "M1", BillsIntroduced: 3, LawsPassed: 1}}
	moneyball := map[string]*model.MoneyballProfile{"M1": {MemberID: "M1", InstitutionalWeight: 0.9, MoneyballScore: 0.7}}

	exporter := NewMarkdownExporter()
	require.NoError(t, exporter.Export(context.Background(), dir, g, scorecards, moneyball))

	data, err := os.ReadFile(filepath.Join(dir, "jane-q-smith.md"))
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "bills_introduced")
	assert.Contains(t, body, "leadership")
}

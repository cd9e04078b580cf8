// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

func TestCommitteesReconcilesRosterNamesAgainstMemberPool(t *testing.T) {
	client := newStubClient()
	senateIndex := "https://www.ilga.gov/senate/committees/default.asp"
	client.byURL[senateIndex] = `<table>
		<tr><td><a href="/committee.asp?CommitteeID=100">Executive</a></td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/senate/committees/committee.asp?CommitteeID=100"] = `<table>
		<tr><td>Smith</td><td>Chair</td></tr>
		<tr><td>Doe</td><td>Member</td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/house/committees/default.asp"] = `<table></table>`

	members := []*model.Member{
		{MemberID: "1", Name: "Jane Smith", Chamber: model.ChamberSenate},
		{MemberID: "2", Name: "John Doe", Chamber: model.ChamberSenate},
	}

	deps := NewDeps(fastFetcher(client), nil, "https://www.ilga.gov")
	result, err := Committees(context.Background(), deps, members)
	require.NoError(t, err)
	require.Len(t, result.Committees, 1)

	roster := result.Rosters["100"]
	require.Len(t, roster, 2)
	assert.Equal(t, "1", roster[0].MemberID)
	assert.Equal(t, model.RoleChair, roster[0].Role)
	assert.Equal(t, "2", roster[1].MemberID)
}

func TestCommitteesSkipsRosterEntryWithAmbiguousName(t *testing.T) {
	client := newStubClient()
	senateIndex := "https://www.ilga.gov/senate/committees/default.asp"
	client.byURL[senateIndex] = `<table>
		<tr><td><a href="/committee.asp?CommitteeID=100">Executive</a></td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/senate/committees/committee.asp?CommitteeID=100"] = `<table>
		<tr><td>Smith</td><td>Member</td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/house/committees/default.asp"] = `<table></table>`

	members := []*model.Member{
		{MemberID: "1", Name: "Jane Smith", Chamber: model.ChamberSenate},
		{MemberID: "2", Name: "Sam Smith", Chamber: model.ChamberSenate},
	}

	deps := NewDeps(fastFetcher(client), nil, "https://www.ilga.gov")
	result, err := Committees(context.Background(), deps, members)
	require.NoError(t, err)
	assert.Empty(t, result.Rosters["100"])
}

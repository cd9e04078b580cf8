// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

const memberIndexHTML = `
<html><body>
<table>
<tr><th>Name</th><th>District</th></tr>
<tr><td><a href="/member?MemberID=101">Jane Smith</a></td><td>5</td></tr>
<tr><td>No link here</td><td>6</td></tr>
<tr><td><a href="/member?MemberID=103">Bob Jones</a></td><td>7</td></tr>
</table>
</body></html>`

func TestParseMemberIndexSkipsRowsWithoutLink(t *testing.T) {
	rows, warnings, err := ParseMemberIndex([]byte(memberIndexHTML), "https://ilga.gov/house/members", model.ChamberHouse)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "/member?MemberID=101", rows[0].MemberURL)
	assert.Equal(t, model.ChamberHouse, rows[0].Chamber)
	assert.Len(t, warnings, 1)
}

const memberDetailHTML = `
<html><body>
<h1>Jane Q. Smith (D)</h1>
<dl>
<dt>District:</dt><dd>District 5</dd>
</dl>
</body></html>`

func TestParseMemberDetailExtractsNameAndParty(t *testing.T) {
	m, _, err := ParseMemberDetail([]byte(memberDetailHTML), "https://ilga.gov/house/member?id=1", model.ChamberHouse)
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Smith", m.Name)
	assert.Equal(t, model.PartyDemocrat, m.Party)
	assert.Equal(t, 5, m.District)
}

func TestSplitYearRangeOpenEnded(t *testing.T) {
	start, end, ok := splitYearRange("2013 - present")
	require.True(t, ok)
	assert.Equal(t, 2013, start)
	assert.Equal(t, 0, end)
}

func TestSplitYearRangeClosed(t *testing.T) {
	start, end, ok := splitYearRange("2001-2012")
	require.True(t, ok)
	assert.Equal(t, 2001, start)
	assert.Equal(t, 2012, end)
}

// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

const committeeIndexHTML = `
<html><body>
<table>
<tr><th>Name</th></tr>
<tr><td><a href="/committee?CommitteeID=CAP">Appropriations</a></td></tr>
<tr class="subcommittee"><td><a href="/committee?CommitteeID=CAPSUB">Appropriations - Capital</a></td></tr>
</table>
</body></html>`

func TestParseCommitteeIndexAssignsParentToSubcommittee(t *testing.T) {
	committees, _, err := ParseCommitteeIndex([]byte(committeeIndexHTML), "https://ilga.gov/house/committees", model.ChamberHouse)
	require.NoError(t, err)
	require.Len(t, committees, 2)
	assert.Equal(t, "CAP", committees[0].Code)
	assert.Nil(t, committees[0].ParentCode)
	require.NotNil(t, committees[1].ParentCode)
	assert.Equal(t, "CAP", *committees[1].ParentCode)
}

const committeeDetailHTML = `
<html><body>
<table class="roster">
<tr><th>Member</th><th>Role</th></tr>
<tr><td>Jane Smith</td><td>Chair</td></tr>
<tr><td>Bob Jones</td><td>Member</td></tr>
</table>
<a href="/bill?DocNum=1234">HB1234</a>
</body></html>`

func TestParseCommitteeDetailExtractsRosterAndBills(t *testing.T) {
	roles, billIDs, _, err := ParseCommitteeDetail([]byte(committeeDetailHTML), "https://ilga.gov/house/committee?id=1")
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Jane Smith", roles[0].MemberName)
	assert.Equal(t, model.RoleChair, roles[0].Role)
	require.Len(t, billIDs, 1)
	assert.Equal(t, "1234", billIDs[0])
}

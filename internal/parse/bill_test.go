// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const billIndexHTML = `
<html><body>
<table>
<tr><th>Bill</th><th>Last Action</th></tr>
<tr><td><a href="/bill?DocNum=1&GA=103">HB0001</a></td><td>1/5/2023</td></tr>
<tr><td><a href="/bill?DocNum=2&GA=103">HB0002</a></td><td>1/6/2023</td></tr>
</table>
<a href="/billindex?start=1001">Next</a>
</body></html>`

func TestParseBillIndexPageExtractsRowsAndNextLink(t *testing.T) {
	rows, next, _, err := ParseBillIndexPage([]byte(billIndexHTML), "https://ilga.gov/house/billindex?start=1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "HB0001", rows[0].BillNumber)
	assert.Equal(t, "1", rows[0].LegID)
	require.NotNil(t, rows[0].LastActionDate)
	assert.NotEmpty(t, next)
}

const billDetailHTML = `
<html><body>
<dl><dt>Synopsis As Introduced:</dt><dd>Amends the School Code.</dd></dl>
<div class="sponsors">
<a href="/member?MemberID=1">Jane Smith</a>
<a href="/member?MemberID=2">Bob Jones</a>
</div>
<table class="actions">
<tr><th>Date</th><th>Chamber</th><th>Action</th></tr>
<tr><td>1/1/2023</td><td>H</td><td>Filed</td></tr>
<tr><td>1/15/2023</td><td>H</td><td>Assigned to Committee</td></tr>
</table>
</body></html>`

func TestParseBillDetailExtractsSynopsisSponsorsAndHistory(t *testing.T) {
	bill, _, err := ParseBillDetail([]byte(billDetailHTML), "https://ilga.gov/house/bill?DocNum=1", "HB0001", "1")
	require.NoError(t, err)
	assert.Equal(t, "Amends the School Code.", bill.Synopsis)
	require.Len(t, bill.SponsorIDs, 2)
	assert.Equal(t, "Jane Smith", bill.PrimarySponsor)
	require.Len(t, bill.ActionHistory, 2)
	assert.Equal(t, "Filed", bill.ActionHistory[0].ActionText)
	require.NotNil(t, bill.LastActionDate)
}

func TestParseDateLooseHandlesMultipleFormats(t *testing.T) {
	assert.NotNil(t, parseDateLoose("1/5/2023"))
	assert.NotNil(t, parseDateLoose("2023-01-05"))
	assert.Nil(t, parseDateLoose(""))
	assert.Nil(t, parseDateLoose("not a date"))
}

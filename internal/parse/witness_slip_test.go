// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

const witnessSlipHTML = `
<html><body>
<dl><dt>Hearing Date:</dt><dd>3/1/2023</dd></dl>
<table>
<tr><th>Filer</th><th>Represents</th><th>Position</th><th>Testify</th></tr>
<tr><td>Jane Advocate</td><td>Illinois PTA</td><td>Proponent</td><td>Yes</td></tr>
<tr><td>Bob Lobbyist</td><td>Self</td><td>Opponent</td><td>No</td></tr>
</table>
</body></html>`

func TestParseWitnessSlipsOneRecordPerRow(t *testing.T) {
	slips, _, err := ParseWitnessSlips([]byte(witnessSlipHTML), "https://ilga.gov/house/witnessslip?id=1", "HB0001", "HAPP")
	require.NoError(t, err)
	require.Len(t, slips, 2)
	assert.Equal(t, "Jane Advocate", slips[0].FilerName)
	assert.Equal(t, model.PositionProponent, slips[0].Position)
	assert.True(t, slips[0].WillTestify)
	assert.Equal(t, model.PositionOpponent, slips[1].Position)
	assert.False(t, slips[1].WillTestify)
	assert.Equal(t, slips[0].HearingDate, slips[1].HearingDate)
}

func TestWitnessSlipKeyDedup(t *testing.T) {
	a := model.WitnessSlip{BillNumber: "HB1", FilerName: "Jane", Position: model.PositionProponent}
	b := model.WitnessSlip{BillNumber: "HB1", FilerName: "Jane", Position: model.PositionProponent}
	assert.Equal(t, a.Key(), b.Key())
}

// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const voteEventHTML = `
<html><body>
<dl>
<dt>Date:</dt><dd>2/1/2023</dd>
<dt>Vote Type:</dt><dd>Committee</dd>
<dt>Committee:</dt><dd>HAPP</dd>
<dt>Motion:</dt><dd>Do Pass</dd>
</dl>
<div>YEAS</div>
<ul class="vote-list"><li>Smith</li><li>Jones</li></ul>
<div>NAYS</div>
<ul class="vote-list"><li>Brown</li></ul>
</body></html>`

func TestParseVoteEventExtractsTallyAndMotion(t *testing.T) {
	event, _, err := ParseVoteEvent([]byte(voteEventHTML), "https://ilga.gov/house/rollcall?id=1", "HB0001")
	require.NoError(t, err)
	assert.Equal(t, "Do Pass", event.MotionText)
	assert.Equal(t, "HAPP", event.CommitteeCode)
	require.Len(t, event.YeaVotes, 2)
	assert.Equal(t, "Smith", event.YeaVotes[0].Name)
	require.Len(t, event.NayVotes, 1)
	assert.Equal(t, "Brown", event.NayVotes[0].Name)
}

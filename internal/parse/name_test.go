// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchReportedPlainSurname(t *testing.T) {
	assert.True(t, MatchReported("Smith", "Jane", "Smith"))
	assert.False(t, MatchReported("Jones", "Jane", "Smith"))
}

func TestMatchReportedWithDisambiguatingInitial(t *testing.T) {
	assert.True(t, MatchReported("Smith, J.", "Jane", "Smith"))
	assert.False(t, MatchReported("Smith, R.", "Jane", "Smith"))
}

func TestMatchReportedHyphenatedCompoundSurname(t *testing.T) {
	assert.True(t, MatchReported("Blair-Sherlock", "Maria", "Blair-Sherlock"))
	assert.True(t, MatchReported("Blair", "Maria", "Blair-Sherlock"))
}

func TestMatchReportedSpaceJoinedCompoundSurname(t *testing.T) {
	assert.True(t, MatchReported("Glowiak Hilton", "Michelle", "Glowiak Hilton"))
	assert.True(t, MatchReported("Glowiak", "Michelle", "Glowiak Hilton"))
}

func TestNameKeyIsCaseFolded(t *testing.T) {
	assert.Equal(t, NameKey("Jane", "Smith"), NameKey("JANE", "SMITH"))
}

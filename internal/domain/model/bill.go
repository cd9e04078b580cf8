// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"time"
)

// BillKind classifies a bill by its number prefix.
type BillKind string

const (
	KindSubstantive           BillKind = "Substantive"
	KindResolution            BillKind = "Resolution"
	KindConstitutionalAmendment BillKind = "Constitutional Amendment"
)

// Status is the bill's derived position in the legislative pipeline.
type Status string

const (
	StatusFiled          Status = "Filed"
	StatusInCommittee    Status = "In Committee"
	StatusPassedChamber  Status = "Passed Chamber"
	StatusPassedBoth     Status = "Passed Both"
	StatusSentToGovernor Status = "Sent to Governor"
	StatusSigned         Status = "Signed"
	StatusVetoed         Status = "Vetoed"
	StatusDead           Status = "Dead"
)

// ActionEntry is one row of a bill's recorded legislative history.
type ActionEntry struct {
	Date       time.Time `json:"date"`
	ActionText string    `json:"action_text"`
	Chamber    Chamber   `json:"chamber"`
}

// Bill is a single piece of legislation, keyed by its stable leg_id.
type Bill struct {
	LegID      string   `json:"leg_id"`
	BillNumber string   `json:"bill_number"`
	Chamber    Chamber  `json:"chamber"`
	Kind       BillKind `json:"kind"`

	Description string `json:"description"`
	Synopsis    string `json:"synopsis,omitempty"`
	StatusURL   string `json:"status_url,omitempty"`

	PrimarySponsor string   `json:"primary_sponsor,omitempty"`
	SponsorIDs     []string `json:"sponsor_ids,omitempty"`
	HouseSponsorIDs []string `json:"house_sponsor_ids,omitempty"`

	LastAction     string     `json:"last_action,omitempty"`
	LastActionDate *time.Time `json:"last_action_date,omitempty"`

	// Status and PipelineDepth are derived by the Graph Builder's state
	// machine (internal/graph) from ActionHistory; they are persisted so
	// that a load-only boot does not need to re-derive them, but are
	// always recomputed whenever ActionHistory changes.
	Status        Status `json:"status"`
	PipelineDepth int    `json:"pipeline_depth"`

	ActionHistory []ActionEntry `json:"action_history,omitempty"`

	// Sponsors/HouseSponsors are populated only in the hydrated graph.
	Sponsors      []*Member `json:"-"`
	HouseSponsors []*Member `json:"-"`
}

// PrimarySponsorID returns the first entry of SponsorIDs, or "" if the
// bill has no recorded sponsors. By invariant this is always the primary
// sponsor.
func (b *Bill) PrimarySponsorID() string {
	if len(b.SponsorIDs) == 0 {
		return ""
	}
	return b.SponsorIDs[0]
}

// CoSponsorCount returns the number of non-primary sponsors.
func (b *Bill) CoSponsorCount() int {
	if len(b.SponsorIDs) == 0 {
		return 0
	}
	return len(b.SponsorIDs) - 1
}

// BillKindFromNumber derives a BillKind from a display bill number such
// as "SB0145", "HR0082" or "HJRCA0001".
func BillKindFromNumber(billNumber string) BillKind {
	switch prefix := billPrefix(billNumber); prefix {
	case "HB", "SB":
		return KindSubstantive
	case "HR", "SR", "HJR", "SJR":
		return KindResolution
	case "HJRCA", "SJRCA", "HCA", "SCA":
		return KindConstitutionalAmendment
	default:
		return KindSubstantive
	}
}

// ChamberFromNumber derives the originating chamber from a bill number's
// leading letter.
func ChamberFromNumber(billNumber string) Chamber {
	if len(billNumber) == 0 {
		return ""
	}
	if billNumber[0] == 'H' || billNumber[0] == 'h' {
		return ChamberHouse
	}
	return ChamberSenate
}

// billPrefix extracts the leading alphabetic run of a bill number, e.g.
// "SB0145" -> "SB", "HJRCA0001" -> "HJRCA".
func billPrefix(billNumber string) string {
	i := 0
	for i < len(billNumber) {
		c := billNumber[i]
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		if !isUpper && !isLower {
			break
		}
		i++
	}
	return strings.ToUpper(billNumber[:i])
}

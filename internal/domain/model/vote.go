// SPDX-License-Identifier: MIT

package model

import "time"

// VoteKind classifies a recorded roll-call vote event.
type VoteKind string

const (
	VoteCommittee       VoteKind = "CommitteeVote"
	VoteFloorThirdReading VoteKind = "FloorThirdReading"
	VoteConcurrence     VoteKind = "Concurrence"
	VoteOverride        VoteKind = "Override"
	VoteOther           VoteKind = "Other"
)

// VoteName is one reported name on a roll-call vote. MemberID is filled
// in by the Graph Builder's name reconciliation step (§4.2); it stays
// empty when the reported name could not be matched to exactly one
// current chamber member, in which case the plain Name is retained for
// display only.
type VoteName struct {
	Name     string `json:"name"`
	MemberID string `json:"member_id,omitempty"`
}

// VoteEvent is a single recorded roll-call vote, in committee or on the
// floor.
type VoteEvent struct {
	BillNumber string   `json:"bill_number"`
	Chamber    Chamber  `json:"chamber"`
	Date       time.Time `json:"date"`
	Kind       VoteKind `json:"kind"`

	CommitteeCode string `json:"committee_code,omitempty"`

	YeaVotes    []VoteName `json:"yea_votes,omitempty"`
	NayVotes    []VoteName `json:"nay_votes,omitempty"`
	PresentVotes []VoteName `json:"present_votes,omitempty"`
	NVVotes     []VoteName `json:"nv_votes,omitempty"`

	MotionText string `json:"motion_text,omitempty"`
}

// Less orders VoteEvents by (date, kind), the ordering §5 requires
// before vote events are handed to the graph.
func (v *VoteEvent) Less(other *VoteEvent) bool {
	if !v.Date.Equal(other.Date) {
		return v.Date.Before(other.Date)
	}
	return v.Kind < other.Kind
}

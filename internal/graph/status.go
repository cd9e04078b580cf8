// SPDX-License-Identifier: MIT

package graph

import (
	"strings"
	"time"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// depthFor gives each named state's pipeline_depth ordinal (spec
// §4.5). The spec fixes both endpoints explicitly (Filed=0,
// Signed/Vetoed=6) while naming only four intermediate states; ordinal 5
// is left unassigned, reserved for the second chamber's own committee
// stage which ILGA's tracked action-text substrings never distinguish
// from the first chamber's.
var depthFor = map[model.Status]int{
	model.StatusFiled:          0,
	model.StatusInCommittee:    1,
	model.StatusPassedChamber:  2,
	model.StatusPassedBoth:     3,
	model.StatusSentToGovernor: 4,
	model.StatusSigned:         6,
	model.StatusVetoed:         6,
}

// deadAfterMonths is the inactivity threshold beyond which a bill that has
// not reached Signed or Vetoed is labelled Dead for display (spec
// §4.5), approximated as 18 months.
const deadAfterMonths = 18

// DeriveStatus runs the bill status state machine over b's recorded
// action history and returns the resulting display status and
// pipeline_depth. Transitions fire on matching action_text substrings,
// case-insensitive; pipeline_depth only ever increases as more history
// is consumed (spec §8 pipeline monotonicity).
func DeriveStatus(b *model.Bill, now time.Time) (model.Status, int) {
	status := model.StatusFiled
	passedChambers := make(map[model.Chamber]bool)

	for _, entry := range b.ActionHistory {
		t := strings.ToLower(entry.ActionText)

		switch {
		case containsAny(t, "public act", "governor approved"):
			status = model.StatusSigned
		case containsAny(t, "total veto", "amendatory veto"):
			if status != model.StatusSigned {
				status = model.StatusVetoed
			}
		case containsAny(t, "sent to the governor"):
			status = advance(status, model.StatusSentToGovernor)
		case containsAny(t, "third reading - passed"):
			passedChambers[entry.Chamber] = true
			if len(passedChambers) >= 2 {
				status = advance(status, model.StatusPassedBoth)
			} else {
				status = advance(status, model.StatusPassedChamber)
			}
		case containsAny(t, "assigned to", "referred to"):
			status = advance(status, model.StatusInCommittee)
		}
	}

	depth := depthFor[status]
	display := status
	if status != model.StatusSigned && status != model.StatusVetoed && isInactive(b, now) {
		display = model.StatusDead
	}
	return display, depth
}

// advance moves to candidate only if doing so would not decrease the
// bill's pipeline_depth, preserving monotonicity even if a page's
// action history is not in strict chronological order.
func advance(current, candidate model.Status) model.Status {
	if depthFor[candidate] > depthFor[current] {
		return candidate
	}
	return current
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isInactive(b *model.Bill, now time.Time) bool {
	if b.LastActionDate == nil {
		return false
	}
	return b.LastActionDate.AddDate(0, deadAfterMonths, 0).Before(now)
}

// SPDX-License-Identifier: MIT

package model

import "time"

// SlipPosition is the filer's stance recorded on a witness slip.
type SlipPosition string

const (
	PositionProponent  SlipPosition = "Proponent"
	PositionOpponent   SlipPosition = "Opponent"
	PositionNoPosition SlipPosition = "NoPosition"
	PositionInformation SlipPosition = "Information"
)

// WitnessSlip is a public record filed at a committee hearing stating a
// position on a bill. One slip exists per (bill, filer, hearing_date,
// position) tuple.
type WitnessSlip struct {
	BillNumber    string       `json:"bill_number"`
	Chamber       Chamber      `json:"chamber"`
	CommitteeCode string       `json:"committee_code"`
	HearingDate   time.Time    `json:"hearing_date"`
	FilerName     string       `json:"filer_name"`
	Represents    string       `json:"represents"`
	Position      SlipPosition `json:"position"`
	WillTestify   bool         `json:"will_testify"`
}

// Key returns the tuple that uniquely identifies this slip, for
// deduplication during scraping.
func (w *WitnessSlip) Key() string {
	return w.BillNumber + "|" + w.FilerName + "|" + w.HearingDate.Format("2006-01-02") + "|" + string(w.Position)
}

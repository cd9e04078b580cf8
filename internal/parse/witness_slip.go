// SPDX-License-Identifier: MIT

package parse

import (
	"strings"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// ParseWitnessSlips extracts one WitnessSlip per table row (spec
// §4.2). Each row is self-contained: bill number, committee, hearing
// date, filer, representation, position, and testify intent.
func ParseWitnessSlips(htmlBytes []byte, sourceURL, billNumber, committeeCode string) ([]model.WitnessSlip, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "witness slips: malformed document", err)
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "witness slips: no table found")
	}

	chamber := model.ChamberFromNumber(billNumber)
	hearingDate := parseDateLoose(findLabeledValue(doc, "Hearing Date"))

	var slips []model.WitnessSlip
	var warnings []apperrors.ParseWarning

	for _, tr := range dataRows(table) {
		filer := cellText(tr, 0)
		if filer == "" {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "witness slip row has no filer name"))
			continue
		}

		slip := model.WitnessSlip{
			BillNumber:    billNumber,
			Chamber:       chamber,
			CommitteeCode: committeeCode,
			FilerName:     filer,
			Represents:    cellText(tr, 1),
			Position:      normalizePosition(cellText(tr, 2)),
			WillTestify:   parseYesNo(cellText(tr, 3)),
		}
		if hearingDate != nil {
			slip.HearingDate = *hearingDate
		} else if rowDate := parseDateLoose(cellText(tr, 4)); rowDate != nil {
			slip.HearingDate = *rowDate
		} else {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "witness slip row has no hearing date: "+filer))
		}

		slips = append(slips, slip)
	}
	return slips, warnings, nil
}

func normalizePosition(raw string) model.SlipPosition {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PROPONENT", "SUPPORT", "PRO":
		return model.PositionProponent
	case "OPPONENT", "OPPOSE", "CON":
		return model.PositionOpponent
	case "INFORMATION", "INFO":
		return model.PositionInformation
	default:
		return model.PositionNoPosition
	}
}

func parseYesNo(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "YES", "Y", "TRUE":
		return true
	default:
		return false
	}
}

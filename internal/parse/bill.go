// SPDX-License-Identifier: MIT

package parse

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// BillIndexRow is one row of the paginated bill index.
type BillIndexRow struct {
	BillNumber     string
	LegID          string
	LastActionDate *time.Time
}

// ParseBillIndexPage extracts the bill rows on one page of the index
// plus, if present, the link to the next page. Pagination is
// discovered from the page's own "next" link, never hard-coded (spec
// §4.2, §4.4).
func ParseBillIndexPage(htmlBytes []byte, sourceURL string) ([]BillIndexRow, string, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, "", nil, apperrors.NewParseError(sourceURL, "bill index: malformed document", err)
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, "", nil, apperrors.NewParseError(sourceURL, "bill index: no table found")
	}

	var rows []BillIndexRow
	var warnings []apperrors.ParseWarning
	for _, tr := range dataRows(table) {
		anchors := links(tr)
		if len(anchors) == 0 {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "bill index row has no detail link"))
			continue
		}
		billNumber := strings.TrimSpace(text(anchors[0]))
		legID := legIDFromBillURL(attr(anchors[0], "href"))
		if legID == "" {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "bill index row has no leg_id: "+billNumber))
			continue
		}

		var lastAction *time.Time
		if t := parseDateLoose(cellText(tr, lastActionColumn(tr))); t != nil {
			lastAction = t
		}

		rows = append(rows, BillIndexRow{BillNumber: billNumber, LegID: legID, LastActionDate: lastAction})
	}

	next := findNextPageURL(doc, sourceURL)
	return rows, next, warnings, nil
}

// lastActionColumn heuristically locates the last-action-date column:
// the last cell in the row, tolerant of pages that add optional
// intermediate columns (spec §4.2).
func lastActionColumn(tr *html.Node) int {
	n := len(cells(tr))
	if n == 0 {
		return 0
	}
	return n - 1
}

func findNextPageURL(doc *html.Node, sourceURL string) string {
	for _, a := range links(doc) {
		t := strings.ToLower(strings.TrimSpace(text(a)))
		if t == "next" || t == "next >" || t == ">" || t == "next page" {
			href := attr(a, "href")
			if href == "" {
				continue
			}
			return resolveURL(sourceURL, href)
		}
	}
	return ""
}

func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// ParseBillDetail extracts the full bill record: synopsis, ordered
// sponsor list, cross-chamber sponsors, and action history.
func ParseBillDetail(htmlBytes []byte, sourceURL, billNumber, legID string) (*model.Bill, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "bill detail: malformed document", err)
	}

	var warnings []apperrors.ParseWarning

	bill := &model.Bill{
		LegID:      legID,
		BillNumber: billNumber,
		Chamber:    model.ChamberFromNumber(billNumber),
		Kind:       model.BillKindFromNumber(billNumber),
		StatusURL:  sourceURL,
	}

	bill.Synopsis = findLabeledValue(doc, "Synopsis As Introduced")
	if bill.Synopsis == "" {
		bill.Synopsis = findLabeledValue(doc, "Synopsis")
	}
	bill.Description = firstNonEmpty(findLabeledValue(doc, "Short Description"), bill.Synopsis)

	sponsorIDs, houseSponsorIDs, primarySponsorName := parseSponsorLists(doc)
	bill.SponsorIDs = sponsorIDs
	bill.HouseSponsorIDs = houseSponsorIDs
	bill.PrimarySponsor = primarySponsorName

	history, historyWarnings := parseActionHistory(doc, sourceURL)
	bill.ActionHistory = history
	warnings = append(warnings, historyWarnings...)

	if len(history) > 0 {
		last := history[len(history)-1]
		bill.LastAction = last.ActionText
		lastDate := last.Date
		bill.LastActionDate = &lastDate
	}

	return bill, warnings, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseSponsorLists returns (same-chamber sponsor member_ids in order,
// cross-chamber sponsor member_ids). ILGA's bill-detail page links each
// sponsor's name straight to their member profile, so the member_id
// comes off the anchor's href directly; no later name reconciliation
// against the member roster is needed for sponsors (unlike vote-event
// name strings, which ILGA renders as plain text).
func parseSponsorLists(doc *html.Node) (sponsors, houseSponsors []string, primaryName string) {
	container := findByClass(doc, "sponsors", "sponsor-list")
	if container == nil {
		container = doc
	}
	for _, a := range links(container) {
		id := memberIDFromURL(attr(a, "href"))
		if id == "" {
			continue
		}
		if hasClass(a, "house-sponsor") {
			houseSponsors = append(houseSponsors, id)
			continue
		}
		sponsors = append(sponsors, id)
		if primaryName == "" {
			primaryName = strings.TrimSpace(text(a))
		}
	}
	return sponsors, houseSponsors, primaryName
}

func memberIDFromURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("MemberID")
}

func parseActionHistory(doc *html.Node, sourceURL string) ([]model.ActionEntry, []apperrors.ParseWarning) {
	var entries []model.ActionEntry
	var warnings []apperrors.ParseWarning

	table := findByClass(doc, "actions", "action-history")
	if table == nil {
		for _, t := range findAll(doc, "table") {
			if len(dataRows(t)) > 0 {
				table = t
				break
			}
		}
	}
	if table == nil {
		return entries, warnings
	}

	for _, tr := range dataRows(table) {
		date := parseDateLoose(cellText(tr, 0))
		chamberText := cellText(tr, 1)
		action := cellText(tr, 2)
		if date == nil || action == "" {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "unparseable action row"))
			continue
		}
		entries = append(entries, model.ActionEntry{
			Date:       *date,
			ActionText: action,
			Chamber:    chamberFromText(chamberText),
		})
	}
	return entries, warnings
}

func chamberFromText(s string) model.Chamber {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HOUSE":
		return model.ChamberHouse
	case "S", "SENATE":
		return model.ChamberSenate
	default:
		return ""
	}
}

func parseDateLoose(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"1/2/2006", "01/02/2006", "2006-01-02", "Jan 2, 2006", "January 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT

package parse

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// MemberIndexRow is one row of the member index page.
type MemberIndexRow struct {
	MemberURL string
	Chamber   model.Chamber
}

// ParseMemberIndex extracts the list of member detail links from an
// index page. Rows without a detail link are skipped (spec §4.2).
func ParseMemberIndex(htmlBytes []byte, sourceURL string, chamber model.Chamber) ([]MemberIndexRow, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "member index: malformed document", err)
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "member index: no table found")
	}

	var rows []MemberIndexRow
	var warnings []apperrors.ParseWarning
	for _, tr := range dataRows(table) {
		anchors := links(tr)
		if len(anchors) == 0 {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "member index row has no detail link"))
			continue
		}
		href := attr(anchors[0], "href")
		if href == "" {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "member index row anchor has no href"))
			continue
		}
		rows = append(rows, MemberIndexRow{MemberURL: href, Chamber: chamber})
	}
	return rows, warnings, nil
}

// ParseMemberDetail extracts a partial Member from a detail page: name,
// party, district, career timeline, offices, and role title if present.
func ParseMemberDetail(htmlBytes []byte, sourceURL string, chamber model.Chamber) (*model.Member, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "member detail: malformed document", err)
	}

	var warnings []apperrors.ParseWarning

	heading := findHeading(doc)
	if heading == "" {
		return nil, nil, apperrors.NewParseError(sourceURL, "member detail: no heading found")
	}
	name, party := splitNameAndParty(heading)
	if party == "" {
		if label := findLabeledValue(doc, "Party"); label != "" {
			party = label
		}
	}
	if name == "" {
		return nil, nil, apperrors.NewParseError(sourceURL, "member detail: could not extract name")
	}

	m := &model.Member{
		Name:     name,
		Chamber:  chamber,
		Party:    normalizeParty(party),
		District: parseDistrict(findLabeledValue(doc, "District")),
		Role:     findLabeledValue(doc, "Title"),
	}

	ranges, rangeWarnings := parseCareerRanges(doc, sourceURL, chamber)
	m.CareerRanges = ranges
	warnings = append(warnings, rangeWarnings...)

	m.Offices = parseOffices(doc)

	return m, warnings, nil
}

func findHeading(doc *html.Node) string {
	for _, tag := range []string{"h1", "h2"} {
		if n := findFirst(doc, tag); n != nil {
			if t := text(n); t != "" {
				return t
			}
		}
	}
	return ""
}

// splitNameAndParty handles a heading of the form "Jane Q. Smith (D)".
func splitNameAndParty(heading string) (name, party string) {
	heading = strings.TrimSpace(heading)
	open := strings.LastIndexByte(heading, '(')
	close := strings.LastIndexByte(heading, ')')
	if open >= 0 && close > open {
		name = strings.TrimSpace(heading[:open])
		party = strings.TrimSpace(heading[open+1 : close])
		return name, party
	}
	return heading, ""
}

func normalizeParty(raw string) model.Party {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "D", "DEM", "DEMOCRAT", "DEMOCRATIC":
		return model.PartyDemocrat
	case "R", "REP", "REPUBLICAN":
		return model.PartyRepublican
	case "":
		return ""
	default:
		return model.PartyOther
	}
}

// findLabeledValue looks for a "Label: value" or <dt>Label</dt><dd>value</dd>
// pair anywhere in the document, tolerant of which markup pattern the
// page uses for a given field.
func findLabeledValue(doc *html.Node, label string) string {
	for _, dt := range findAll(doc, "dt") {
		if strings.EqualFold(strings.TrimSuffix(text(dt), ":"), label) {
			if dd := nextElementSibling(dt); dd != nil {
				return text(dd)
			}
		}
	}
	for _, n := range findAll(doc, "") {
		t := text(n)
		prefix := label + ":"
		if strings.HasPrefix(t, prefix) && len(t) < len(prefix)+60 {
			return strings.TrimSpace(strings.TrimPrefix(t, prefix))
		}
	}
	return ""
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func parseDistrict(raw string) int {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "District"))
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "#"))
	n, _ := strconv.Atoi(raw)
	return n
}

// parseCareerRanges reads a service timeline list, interpreting an open
// end year ("present", "current", or blank) as ongoing service through
// the current session (spec §4.2).
func parseCareerRanges(doc *html.Node, sourceURL string, chamber model.Chamber) ([]model.CareerRange, []apperrors.ParseWarning) {
	var ranges []model.CareerRange
	var warnings []apperrors.ParseWarning

	container := findByClass(doc, "career", "timeline", "service-history")
	if container == nil {
		return ranges, warnings
	}

	for _, li := range findAll(container, "li") {
		t := text(li)
		if t == "" {
			continue
		}
		start, end, ok := splitYearRange(t)
		if !ok {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "unparseable career range: "+t))
			continue
		}
		ranges = append(ranges, model.CareerRange{StartYear: start, EndYear: end, Chamber: chamber})
	}
	return ranges, warnings
}

func findByClass(doc *html.Node, classes ...string) *html.Node {
	for _, n := range findAll(doc, "") {
		for _, c := range classes {
			if hasClass(n, c) {
				return n
			}
		}
	}
	return nil
}

func splitYearRange(s string) (start, end int, ok bool) {
	s = strings.TrimSpace(s)
	sep := "-"
	if strings.Contains(s, "–") {
		sep = "–"
	}
	parts := strings.SplitN(s, sep, 2)
	startYear, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return startYear, 0, true
	}
	rest := strings.ToLower(strings.TrimSpace(parts[1]))
	if rest == "" || rest == "present" || rest == "current" {
		return startYear, 0, true
	}
	endYear, err := strconv.Atoi(rest)
	if err != nil {
		return 0, 0, false
	}
	return startYear, endYear, true
}

func parseOffices(doc *html.Node) []model.Office {
	var offices []model.Office
	for _, kind := range []model.OfficeKind{model.OfficeSpringfield, model.OfficeDistrict} {
		n := findByClass(doc, strings.ToLower(string(kind))+"-office")
		if n == nil {
			continue
		}
		offices = append(offices, model.Office{
			Kind:    kind,
			Address: findByTagText(n, "address"),
			Phone:   findLabeledValue(n, "Phone"),
			Fax:     findLabeledValue(n, "Fax"),
		})
	}
	return offices
}

func findByTagText(n *html.Node, tag string) string {
	if t := findFirst(n, tag); t != nil {
		return text(t)
	}
	return ""
}

// currentSessionEndYear returns the "present" year for an open career
// range: the calendar year of now, with no adjustment for the General
// Assembly's session calendar.
func currentSessionEndYear(now time.Time) int {
	return now.Year()
}

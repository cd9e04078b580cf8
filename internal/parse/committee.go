// SPDX-License-Identifier: MIT

package parse

import (
	"net/url"
	"strings"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// CommitteeRoleEntry is one roster row from a committee detail page,
// keyed by the reported member name rather than member_id: name
// reconciliation against the member list happens in the Graph Builder
// (spec §4.2, §4.5), not in the parser.
type CommitteeRoleEntry struct {
	MemberName string
	Role       model.CommitteeRole
}

// ParseCommitteeIndex extracts committee code, name, and parent code
// (if the page nests subcommittees under a parent).
func ParseCommitteeIndex(htmlBytes []byte, sourceURL string, chamber model.Chamber) ([]model.Committee, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "committee index: malformed document", err)
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "committee index: no table found")
	}

	var committees []model.Committee
	var warnings []apperrors.ParseWarning
	var currentParent *string

	for _, tr := range dataRows(table) {
		anchors := links(tr)
		if len(anchors) == 0 {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "committee index row has no link"))
			continue
		}
		name := text(anchors[0])
		code := committeeCodeFromURL(attr(anchors[0], "href"))
		if code == "" {
			warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "committee index row has no code: "+name))
			continue
		}

		var parentCode *string
		if hasClass(tr, "subcommittee") && currentParent != nil {
			parentCode = currentParent
		} else {
			codeCopy := code
			currentParent = &codeCopy
		}

		committees = append(committees, model.Committee{
			Code:       code,
			Name:       name,
			ParentCode: parentCode,
			Chamber:    chamber,
		})
	}
	return committees, warnings, nil
}

func committeeCodeFromURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("CommitteeID")
}

// ParseCommitteeDetail extracts the roster (name + role) and the list
// of bill_ids currently assigned to the committee.
func ParseCommitteeDetail(htmlBytes []byte, sourceURL string) ([]CommitteeRoleEntry, []string, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, nil, apperrors.NewParseError(sourceURL, "committee detail: malformed document", err)
	}

	var warnings []apperrors.ParseWarning
	var roles []CommitteeRoleEntry

	for _, table := range findAll(doc, "table") {
		rosterRows := dataRows(table)
		if len(rosterRows) == 0 {
			continue
		}
		var candidate []CommitteeRoleEntry
		for _, tr := range rosterRows {
			name := cellText(tr, 0)
			if name == "" {
				continue
			}
			candidate = append(candidate, CommitteeRoleEntry{MemberName: name, Role: normalizeRole(cellText(tr, 1))})
		}
		if len(candidate) > len(roles) {
			roles = candidate
		}
	}

	var billIDs []string
	for _, a := range links(doc) {
		if legID := legIDFromBillURL(attr(a, "href")); legID != "" {
			billIDs = append(billIDs, legID)
		}
	}

	if len(roles) == 0 {
		warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "committee detail: no roster rows found"))
	}

	return roles, billIDs, warnings, nil
}

func normalizeRole(raw string) model.CommitteeRole {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CHAIR", "CHAIRPERSON", "CHAIRMAN", "CHAIRWOMAN":
		return model.RoleChair
	case "VICE-CHAIR", "VICE CHAIR", "VICE-CHAIRPERSON":
		return model.RoleViceChair
	case "MINORITY SPOKESPERSON", "SPOKESPERSON":
		return model.RoleMinoritySpokesperson
	default:
		return model.RoleMember
	}
}

func legIDFromBillURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if legID := u.Query().Get("DocNum"); legID != "" {
		return legID
	}
	return u.Query().Get("LegID")
}

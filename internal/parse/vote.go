// SPDX-License-Identifier: MIT

package parse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// ParseVoteEvent extracts motion text, tally, and the four vote lists
// from a roll-call page, preserving the reported name spelling exactly
// (name reconciliation is a Graph Builder concern, spec §4.2, §4.5).
func ParseVoteEvent(htmlBytes []byte, sourceURL, billNumber string) (*model.VoteEvent, []apperrors.ParseWarning, error) {
	doc, err := parseDoc(htmlBytes)
	if err != nil {
		return nil, nil, apperrors.NewParseError(sourceURL, "vote event: malformed document", err)
	}

	var warnings []apperrors.ParseWarning

	event := &model.VoteEvent{
		BillNumber: billNumber,
		Chamber:    model.ChamberFromNumber(billNumber),
		Kind:       classifyVoteKind(findLabeledValue(doc, "Vote Type")),
	}

	if t := parseDateLoose(findLabeledValue(doc, "Date")); t != nil {
		event.Date = *t
	} else {
		warnings = append(warnings, apperrors.NewParseWarning(sourceURL, "vote event: unparseable date"))
	}

	event.CommitteeCode = findLabeledValue(doc, "Committee")
	event.MotionText = findLabeledValue(doc, "Motion")

	for _, section := range findAll(doc, "") {
		label := strings.ToUpper(text(headingOf(section)))
		switch {
		case strings.Contains(label, "YEA") && !strings.Contains(label, "NAY"):
			event.YeaVotes = append(event.YeaVotes, voteNamesIn(section)...)
		case strings.Contains(label, "NAY"):
			event.NayVotes = append(event.NayVotes, voteNamesIn(section)...)
		case strings.Contains(label, "PRESENT"):
			event.PresentVotes = append(event.PresentVotes, voteNamesIn(section)...)
		case strings.Contains(label, "NV") || strings.Contains(label, "NOT VOTING"):
			event.NVVotes = append(event.NVVotes, voteNamesIn(section)...)
		}
	}

	return event, warnings, nil
}

func classifyVoteKind(raw string) model.VoteKind {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "COMMITTEE":
		return model.VoteCommittee
	case "THIRD READING", "FLOOR", "THIRD_READING":
		return model.VoteFloorThirdReading
	case "CONCURRENCE":
		return model.VoteConcurrence
	case "OVERRIDE":
		return model.VoteOverride
	case "":
		return model.VoteOther
	default:
		return model.VoteOther
	}
}

func headingOf(n *html.Node) *html.Node {
	if hasClass(n, "vote-list") {
		if prev := prevElementSibling(n); prev != nil {
			return prev
		}
	}
	return n
}

func prevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func voteNamesIn(section *html.Node) []model.VoteName {
	if !hasClass(section, "vote-list") {
		return nil
	}
	var names []model.VoteName
	for _, li := range findAll(section, "li") {
		name := strings.TrimSpace(text(li))
		if name != "" {
			names = append(names, model.VoteName{Name: name})
		}
	}
	return names
}

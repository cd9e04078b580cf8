// SPDX-License-Identifier: MIT

package parse

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold performs locale-independent Unicode case folding so that
// reported names with diacritics or non-ASCII letters compare equal
// regardless of the casing ILGA happens to render them in.
var fold = cases.Fold()

// Key is the canonical comparison key used by both the Parsers and the
// Graph Builder to reconcile a reported name (often bare surname, from
// a vote tally or witness slip) against a known chamber member: the
// case-folded surname plus the first letter of the given name.
type Key struct {
	Surname string
	Initial byte
}

// NameKey builds the canonical key for a member's given and surname.
func NameKey(givenName, surname string) Key {
	return Key{Surname: fold.String(strings.TrimSpace(surname)), Initial: firstLetter(givenName)}
}

// MatchReported reports whether a name as it appears in a vote list or
// witness slip (reported) could refer to the chamber member identified
// by givenName/surname, honoring compound-surname variants: a
// hyphenated or space-joined two-token surname matches on either the
// full compound or its first token.
func MatchReported(reported, givenName, surname string) bool {
	reportedSurname, reportedInitial := splitReported(reported)
	if reportedSurname == "" {
		return false
	}
	reportedSurname = fold.String(reportedSurname)

	matched := false
	for _, variant := range surnameVariants(surname) {
		if fold.String(variant) == reportedSurname {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if reportedInitial == 0 {
		return true
	}
	return reportedInitial == firstLetter(givenName)
}

// surnameVariants returns the full surname plus, for compound
// surnames, its first token: "Blair-Sherlock" → ["Blair-Sherlock",
// "Blair"]; "Glowiak Hilton" → ["Glowiak Hilton", "Glowiak"].
func surnameVariants(surname string) []string {
	surname = strings.TrimSpace(surname)
	variants := []string{surname}
	if i := strings.IndexByte(surname, '-'); i > 0 {
		variants = append(variants, surname[:i])
	}
	if i := strings.IndexByte(surname, ' '); i > 0 {
		variants = append(variants, surname[:i])
	}
	return variants
}

// splitReported splits a reported vote-list name of the form "Surname"
// or "Surname, F." into its surname and disambiguating initial.
func splitReported(reported string) (surname string, initial byte) {
	reported = strings.TrimSpace(reported)
	if idx := strings.Index(reported, ","); idx >= 0 {
		surname = strings.TrimSpace(reported[:idx])
		rest := strings.TrimSpace(reported[idx+1:])
		if rest != "" {
			initial = firstLetter(rest)
		}
		return surname, initial
	}
	return reported, 0
}

// SplitFullName splits "Jane Q. Smith" into given="Jane Q." and
// surname="Smith": the last whitespace-separated token is always the
// surname. A hyphenated compound stays one token and reaches
// MatchReported whole, but a space-joined compound does not: for
// "Michelle Glowiak Hilton" the surname is "Hilton", so a reported
// "Glowiak Hilton" or "Glowiak" does not match that member.
func SplitFullName(fullName string) (given, surname string) {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], fields[0]
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}

func firstLetter(s string) byte {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return strings.ToLower(s)[0]
}

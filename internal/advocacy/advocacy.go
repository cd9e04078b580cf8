// SPDX-License-Identifier: MIT

// Package advocacy implements the Advocacy Selector (spec §4.10): given
// a ZIP code and an optional policy category, it picks the Senator,
// Representative, Power Broker, and Potential Ally cards a constituent
// should contact.
package advocacy

import (
	"fmt"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/geo"
)

// CardKind identifies which of the four (or merged Super Ally) card
// types a Card represents.
type CardKind string

const (
	CardYourSenator      CardKind = "YourSenator"
	CardYourRepresentative CardKind = "YourRepresentative"
	CardPowerBroker      CardKind = "PowerBroker"
	CardPotentialAlly    CardKind = "PotentialAlly"
	CardSuperAlly        CardKind = "SuperAlly"
)

// scriptHints are static role-specific talking-point hints keyed by
// card type (spec §4.10).
var scriptHints = map[CardKind]string{
	CardYourSenator:        "Introduce yourself as a constituent and state your ZIP code before making your ask.",
	CardYourRepresentative: "Introduce yourself as a constituent and state your ZIP code before making your ask.",
	CardPowerBroker:        "Lead with the committee's jurisdiction over your issue; this office controls whether the bill gets a hearing.",
	CardPotentialAlly:      "This office has a track record of crossing the aisle on this issue; ask them to co-sponsor or publicly support.",
	CardSuperAlly:          "This office both controls the committee and has a bipartisan track record; ask for both a hearing and public support.",
}

// Card is one rendered advocacy recommendation.
type Card struct {
	Kind     CardKind
	Member   *model.Member
	Why      string
	ScriptHint string
}

// PageRenderer is the out-of-scope external collaborator contract for
// the server-rendered advocacy UI (spec §1, §6 GET /advocacy, POST
// /advocacy/search): a pure function from the selector's output to an
// HTML response body. The selection logic above never imports an HTML
// templating package; only a PageRenderer implementation (internal/httpapi)
// does, the same separation vault.Exporter draws between graph traversal
// and Markdown rendering.
type PageRenderer interface {
	RenderForm(categories []string) ([]byte, error)
	RenderResult(cards []Card, err error) ([]byte, error)
}

// policyCommittees maps each of the ~12 closed-set policy categories to
// the committee codes relevant to it (spec §4.10). A category absent
// from this table (including "") is not an error: Cards then considers
// every senator as a Power Broker / Potential Ally candidate.
var policyCommittees = map[string][]string{
	"Education":            {"HEDL", "SEDU"},
	"Healthcare":            {"HHCA", "SHEA"},
	"Environment":           {"HENV", "SENV"},
	"CriminalJustice":       {"HJUD", "SJUD"},
	"Taxation":              {"HREV", "SREV"},
	"Labor":                 {"HLAB", "SLAB"},
	"Housing":               {"HHSG", "SHSG"},
	"Transportation":        {"HTRN", "STRN"},
	"Agriculture":           {"HAGR", "SAGR"},
	"Energy":                {"HENY", "SENY"},
	"ConsumerProtection":    {"HCNP", "SCNP"},
	"GunPolicy":             {"HJUD", "SJUD"},
}

// PolicyCategories returns the closed set of recognized policy_category
// values, for GraphQL schema enum generation and form rendering.
func PolicyCategories() []string {
	out := make([]string, 0, len(policyCommittees))
	for k := range policyCommittees {
		out = append(out, k)
	}
	return out
}

// Cards resolves the advocacy cards for zipCode and an optional
// policyCategory (spec §4.10). crosswalk resolves districts;
// senatorsByDistrict/repsByDistrict look up the incumbent
// senator/representative;
// committees provides each committee's current roster;
// profiles/scorecards are the precomputed analytics maps.
func Cards(
	zipCode, policyCategory string,
	crosswalk *geo.Crosswalk,
	senatorsByDistrict, repsByDistrict map[int]*model.Member,
	committees map[string]*model.Committee,
	profiles map[string]*model.MoneyballProfile,
	scorecards map[string]*model.Scorecard,
) ([]Card, error) {
	districts, err := crosswalk.Lookup(zipCode)
	if err != nil {
		return nil, err
	}

	var cards []Card

	senator := senatorsByDistrict[districts.SenateDistrict]
	if senator != nil {
		cards = append(cards, Card{
			Kind:       CardYourSenator,
			Member:     senator,
			Why:        fmt.Sprintf("%s represents Senate District %d, which covers %s.", senator.Name, districts.SenateDistrict, zipCode),
			ScriptHint: scriptHints[CardYourSenator],
		})
	}

	rep := repsByDistrict[districts.HouseDistrict]
	if rep != nil {
		cards = append(cards, Card{
			Kind:       CardYourRepresentative,
			Member:     rep,
			Why:        fmt.Sprintf("%s represents House District %d, which covers %s.", rep.Name, districts.HouseDistrict, zipCode),
			ScriptHint: scriptHints[CardYourRepresentative],
		})
	}

	candidates := senatorCandidates(policyCategory, committees, senatorsByDistrict)

	powerBroker := pickPowerBroker(candidates, profiles)
	ally := pickPotentialAlly(candidates, powerBroker, scorecards)

	if powerBroker != nil && ally != nil && powerBroker.MemberID == ally.MemberID {
		cards = append(cards, Card{
			Kind:       CardSuperAlly,
			Member:     powerBroker,
			Why:        fmt.Sprintf("%s chairs a committee with jurisdiction over this issue and has the strongest record of bipartisan co-sponsorship among senators on it.", powerBroker.Name),
			ScriptHint: scriptHints[CardSuperAlly],
		})
		return cards, nil
	}

	if powerBroker != nil {
		cards = append(cards, Card{
			Kind:       CardPowerBroker,
			Member:     powerBroker,
			Why:        fmt.Sprintf("%s holds the highest institutional weight among senators positioned to move this issue.", powerBroker.Name),
			ScriptHint: scriptHints[CardPowerBroker],
		})
	}
	if ally != nil {
		cards = append(cards, Card{
			Kind:       CardPotentialAlly,
			Member:     ally,
			Why:        fmt.Sprintf("%s has the strongest track record of cross-party co-sponsorship among senators matching this issue.", ally.Name),
			ScriptHint: scriptHints[CardPotentialAlly],
		})
	}

	return cards, nil
}

// senatorCandidates returns the senators on a policyCategory's relevant
// committees, falling back to every senator when no category was
// supplied or the category produced no candidates.
func senatorCandidates(policyCategory string, committees map[string]*model.Committee, senatorsByDistrict map[int]*model.Member) []*model.Member {
	codes, hasCategory := policyCommittees[policyCategory]
	if !hasCategory {
		return allSenators(senatorsByDistrict)
	}

	seen := make(map[string]bool)
	var out []*model.Member
	for _, code := range codes {
		c, ok := committees[code]
		if !ok {
			continue
		}
		for _, roster := range c.Members {
			if roster.Member == nil || roster.Member.Chamber != model.ChamberSenate || seen[roster.Member.MemberID] {
				continue
			}
			seen[roster.Member.MemberID] = true
			out = append(out, roster.Member)
		}
	}
	if len(out) == 0 {
		return allSenators(senatorsByDistrict)
	}
	return out
}

func allSenators(senatorsByDistrict map[int]*model.Member) []*model.Member {
	out := make([]*model.Member, 0, len(senatorsByDistrict))
	for _, m := range senatorsByDistrict {
		out = append(out, m)
	}
	return out
}

// pickPowerBroker chooses the candidate with highest institutional
// weight, Moneyball score as tie-breaker.
func pickPowerBroker(candidates []*model.Member, profiles map[string]*model.MoneyballProfile) *model.Member {
	var best *model.Member
	var bestProfile *model.MoneyballProfile
	for _, m := range candidates {
		p, ok := profiles[m.MemberID]
		if !ok {
			continue
		}
		if bestProfile == nil || betterPowerBroker(p, bestProfile) {
			best, bestProfile = m, p
		}
	}
	return best
}

func betterPowerBroker(p, best *model.MoneyballProfile) bool {
	if p.InstitutionalWeight != best.InstitutionalWeight {
		return p.InstitutionalWeight > best.InstitutionalWeight
	}
	return p.MoneyballScore > best.MoneyballScore
}

// pickPotentialAlly chooses the candidate with the highest bridge_score
// among those matching the policy filter; it may resolve to the same
// person as powerBroker, in which case Cards merges them into a single
// Super Ally card.
func pickPotentialAlly(candidates []*model.Member, powerBroker *model.Member, scorecards map[string]*model.Scorecard) *model.Member {
	var best *model.Member
	var bestScore float64
	for _, m := range candidates {
		sc, ok := scorecards[m.MemberID]
		if !ok {
			continue
		}
		if best == nil || sc.BridgeScore > bestScore {
			best, bestScore = m, sc.BridgeScore
		}
	}
	if best == nil {
		return powerBroker
	}
	return best
}

// SPDX-License-Identifier: MIT

package loader

import (
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
)

// Registry is the fixed set of batch loaders (spec §4.11):
// ScorecardLoader, MoneyballProfileLoader, BillLoader, MemberLoader. The
// GraphQL resolvers build a fresh Registry for each root query field and
// hand it to nested resolvers by pointer, not through the request
// context.
type Registry struct {
	Scorecards *Loader[string, *model.Scorecard]
	Moneyball  *Loader[string, *model.MoneyballProfile]
	Bills      *Loader[string, *model.Bill]
	Members    *Loader[string, *model.Member]
}

// NewRegistry builds a fresh Registry backed by g and the precomputed
// analytics maps. Every loader is a simple per-request memo over data
// already resident in memory, so "batch" here is a map lookup rather
// than a further I/O round trip; the coalescing contract (repeated
// load(k) returns the cached value) still holds.
func NewRegistry(g *graph.Graph, scorecards map[string]*model.Scorecard, moneyball map[string]*model.MoneyballProfile) *Registry {
	return &Registry{
		Scorecards: New(func(keys []string) map[string]*model.Scorecard {
			out := make(map[string]*model.Scorecard, len(keys))
			for _, k := range keys {
				if v, ok := scorecards[k]; ok {
					out[k] = v
				}
			}
			return out
		}),
		Moneyball: New(func(keys []string) map[string]*model.MoneyballProfile {
			out := make(map[string]*model.MoneyballProfile, len(keys))
			for _, k := range keys {
				if v, ok := moneyball[k]; ok {
					out[k] = v
				}
			}
			return out
		}),
		Bills: New(func(keys []string) map[string]*model.Bill {
			out := make(map[string]*model.Bill, len(keys))
			for _, k := range keys {
				if v, ok := g.Bills[k]; ok {
					out[k] = v
				}
			}
			return out
		}),
		Members: New(func(keys []string) map[string]*model.Member {
			out := make(map[string]*model.Member, len(keys))
			for _, k := range keys {
				if v, ok := g.MembersByID[k]; ok {
					out[k] = v
				}
			}
			return out
		}),
	}
}

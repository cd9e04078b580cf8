// SPDX-License-Identifier: MIT

package model

// MoneyballProfile is the composite legislative-influence score computed
// by internal/analytics for a single member, plus the normalized
// components that feed it (see spec §4.7).
type MoneyballProfile struct {
	MemberID string `json:"member_id"`

	Effectiveness       float64 `json:"effectiveness"`
	Pipeline            float64 `json:"pipeline"`
	Magnet              float64 `json:"magnet"`
	Bridge              float64 `json:"bridge"`
	Centrality          float64 `json:"centrality"`
	InstitutionalWeight float64 `json:"institutional_weight"`

	MoneyballScore float64 `json:"moneyball_score"`
}

// Component weights for the Moneyball composite (spec §4.7). These sum
// to 1.00.
const (
	WeightEffectiveness       = 0.24
	WeightPipeline            = 0.16
	WeightMagnet              = 0.16
	WeightBridge              = 0.12
	WeightCentrality          = 0.12
	WeightInstitutionalWeight = 0.20
)

// IsLeadership reports whether this profile's institutional weight
// crosses the leaderboard's leadership threshold (≥ 0.50).
func (p *MoneyballProfile) IsLeadership() bool {
	return p.InstitutionalWeight >= 0.50
}

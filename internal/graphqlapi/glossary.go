// SPDX-License-Identifier: MIT

package graphqlapi

// metricDefinition backs the MetricDefinition GraphQL type.
type metricDefinition struct {
	id         string
	label      string
	kind       string
	definition string
	formula    string
}

func (m *metricDefinition) ID() string         { return m.id }
func (m *metricDefinition) Label() string      { return m.label }
func (m *metricDefinition) Kind() string       { return m.kind }
func (m *metricDefinition) Definition() string { return m.definition }
func (m *metricDefinition) Formula() string    { return m.formula }

// glossary is the static metricsGlossary list (spec §4.12): every
// numeric field exposed elsewhere in the schema, documented once so
// clients can build tooltips instead of hardcoding definitions.
var glossary = []*metricDefinition{
	{id: "bills_introduced", label: "Bills Introduced", kind: "empirical",
		definition: "Count of substantive bills where the member is primary sponsor.",
		formula:    "count(bill where bill.kind = Substantive and bill.primary_sponsor = member)"},
	{id: "laws_passed", label: "Laws Passed", kind: "empirical",
		definition: "Count of the member's non-shell primary-sponsored substantive bills that reached Signed status.",
		formula:    "count(non-shell bill where status = Signed)"},
	{id: "law_success_rate", label: "Law Success Rate", kind: "derived",
		definition: "Share of non-shell primary substantive bills that became law.",
		formula:    "laws_passed / (bills_introduced - shell_bill_count)"},
	{id: "resolution_pass_rate", label: "Resolution Pass Rate", kind: "derived",
		definition: "Share of the member's primary resolutions that passed their chamber.",
		formula:    "resolutions_passed / resolutions_filed"},
	{id: "magnet_score", label: "Magnet Score", kind: "derived",
		definition: "Average number of co-sponsors on the member's non-shell primary substantive bills.",
		formula:    "mean(len(sponsor_ids) - 1 for non-shell primary substantive bills)"},
	{id: "bridge_score", label: "Bridge Score", kind: "derived",
		definition: "Share of the member's non-shell primary substantive bills with at least one co-sponsor from a different party.",
		formula:    "count(bill with a cross-party co-sponsor) / count(non-shell primary substantive bills)"},
	{id: "avg_pipeline_depth", label: "Average Pipeline Depth", kind: "derived",
		definition: "Mean derived pipeline depth across the member's non-shell primary substantive bills.",
		formula:    "mean(bill.pipeline_depth for non-shell substantive bill in primary_bills)"},
	{id: "moneyball_score", label: "Moneyball Score", kind: "derived",
		definition: "Composite 0-100 influence score blending effectiveness, pipeline depth, magnet, bridge, centrality, and institutional weight.",
		formula:    "100 * (0.24*effectiveness + 0.16*pipeline + 0.16*magnet + 0.12*bridge + 0.12*centrality + 0.20*institutional_weight)"},
	{id: "institutional_weight", label: "Institutional Weight", kind: "derived",
		definition: "Highest-precedence weight assigned from the member's recorded leadership/chair roles.",
		formula:    "max(role_weight(role) for role in member.roles)"},
	{id: "proponent_ratio", label: "Proponent Ratio", kind: "derived",
		definition: "Share of directional (Proponent or Opponent) witness slips on a bill that were Proponent.",
		formula:    "proponent_count / (proponent_count + opponent_count)"},
	{id: "sentiment_aligned", label: "Sentiment Aligned", kind: "derived",
		definition: "Whether a bill's witness-slip sentiment (proponent-majority vs opponent-majority) matched whether it advanced past committee.",
		formula:    "(proponent_ratio > 0.5) == (pipeline_depth >= passed_chamber_depth)"},
}

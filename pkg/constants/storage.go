// SPDX-License-Identifier: MIT

package constants

// Cache Store file names (spec §4.3). Each is a single JSON document
// written atomically to the configured cache directory.
const (
	// CacheFileMembers holds the full member roster.
	CacheFileMembers = "members.json"

	// CacheFileCommittees holds committee definitions and rosters.
	CacheFileCommittees = "committees.json"

	// CacheFileCommitteeRosters holds the committee-to-member roster index.
	CacheFileCommitteeRosters = "committee_rosters.json"

	// CacheFileCommitteeBills holds the committee-to-bill assignment index.
	CacheFileCommitteeBills = "committee_bills.json"

	// CacheFileBills holds the full bill collection.
	CacheFileBills = "bills.json"

	// CacheFileVoteEvents holds recorded committee and floor vote events.
	CacheFileVoteEvents = "vote_events.json"

	// CacheFileWitnessSlips holds witness slip filings.
	CacheFileWitnessSlips = "witness_slips.json"

	// CacheFileScorecards holds computed member scorecards.
	CacheFileScorecards = "scorecards.json"

	// CacheFileMoneyball holds computed Moneyball profiles.
	CacheFileMoneyball = "moneyball.json"

	// CacheFileSeating holds the chamber seat chart assignment.
	CacheFileSeating = "seating.json"

	// CacheFileZIPCrosswalk holds the ZIP-to-district crosswalk table.
	CacheFileZIPCrosswalk = "zip_crosswalk.json"

	// CacheFileScrapeMetadata holds the scrape metadata record
	// (last_bill_scrape_at, bill_index_count, fetch_counters,
	// vote_scan_cursor).
	CacheFileScrapeMetadata = "scrape_metadata.json"
)

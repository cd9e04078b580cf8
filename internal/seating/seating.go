// SPDX-License-Identifier: MIT

// Package seating implements the Senate seat chart, the Aisle Rule
// neighbor lookup, and the derived whisper-network affinity score
// (spec §4.8).
package seating

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
)

// Seat is one senator's fixed position in the chamber: a contiguous
// row/block identifier, an inner/outer ring, and an ordinal position
// within the block used to find aisle-respecting neighbors.
type Seat struct {
	MemberID string `yaml:"member_id"`
	BlockID  string `yaml:"block_id"`
	Ring     string `yaml:"ring"`
	Position int    `yaml:"position"`
}

// Chart is the static Senate seat chart, loaded once from a YAML seed
// file and held for the lifetime of a scrape/analytics run.
type Chart struct {
	Seats []Seat `yaml:"seats"`
}

// LoadChart reads a seat chart from a YAML seed file under
// CACHE_DIR/MOCK_DIR (spec §4.8 addendum), rather than hard-coding it
// in source, so operators can regenerate the chart after redistricting
// without a rebuild.
func LoadChart(path string) (*Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seating: read chart %s: %w", path, err)
	}
	var chart Chart
	if err := yaml.Unmarshal(raw, &chart); err != nil {
		return nil, fmt.Errorf("seating: parse chart %s: %w", path, err)
	}
	return &chart, nil
}

// blockNeighbors groups chart seats by block, sorted by Position, so
// the Aisle Rule can be applied: neighbors are adjacent seats within
// the same block only, never across a block boundary (an aisle).
func (c *Chart) blockNeighbors() map[string][]Seat {
	byBlock := make(map[string][]Seat)
	for _, s := range c.Seats {
		byBlock[s.BlockID] = append(byBlock[s.BlockID], s)
	}
	for _, block := range byBlock {
		sortByPosition(block)
	}
	return byBlock
}

func sortByPosition(seats []Seat) {
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && seats[j].Position < seats[j-1].Position; j-- {
			seats[j], seats[j-1] = seats[j-1], seats[j]
		}
	}
}

// Neighbors returns the member_ids adjacent to memberID within its
// block, honoring the Aisle Rule: a seat at a block edge has only one
// neighbor. A member absent from the chart has no neighbors.
func (c *Chart) Neighbors(memberID string) []string {
	byBlock := c.blockNeighbors()
	for _, block := range byBlock {
		for i, s := range block {
			if s.MemberID != memberID {
				continue
			}
			var neighbors []string
			if i > 0 {
				neighbors = append(neighbors, block[i-1].MemberID)
			}
			if i < len(block)-1 {
				neighbors = append(neighbors, block[i+1].MemberID)
			}
			return neighbors
		}
	}
	return nil
}

// Apply computes seat_block_id, seat_ring, seatmate_names and
// seatmate_affinity for every senator in members (spec §4.8); House
// members are left with all four fields at their zero value (nil/"").
func Apply(chart *Chart, members []*model.Member, membersByID map[string]*model.Member) {
	seatByMember := make(map[string]Seat, len(chart.Seats))
	for _, s := range chart.Seats {
		seatByMember[s.MemberID] = s
	}

	for _, m := range members {
		if m.Chamber != model.ChamberSenate {
			continue
		}
		seat, ok := seatByMember[m.MemberID]
		if !ok {
			continue
		}
		m.SeatBlockID = seat.BlockID
		m.SeatRing = seat.Ring

		neighborIDs := chart.Neighbors(m.MemberID)
		m.SeatmateNames = make([]string, 0, len(neighborIDs))
		for _, id := range neighborIDs {
			if neighbor, ok := membersByID[id]; ok {
				m.SeatmateNames = append(m.SeatmateNames, neighbor.Name)
			}
		}

		affinity := seatmateAffinity(m, neighborIDs)
		m.SeatmateAffinity = &affinity
	}
}

// seatmateAffinity is the fraction of m's primary substantive bills
// co-sponsored by at least one seatmate.
func seatmateAffinity(m *model.Member, neighborIDs []string) float64 {
	neighborSet := make(map[string]bool, len(neighborIDs))
	for _, id := range neighborIDs {
		neighborSet[id] = true
	}
	if len(neighborSet) == 0 {
		return 0
	}

	var substantive []*model.Bill
	for _, b := range m.PrimaryBills {
		if b.Kind == model.KindSubstantive {
			substantive = append(substantive, b)
		}
	}
	if len(substantive) == 0 {
		return 0
	}

	var withSeatmate int
	for _, b := range substantive {
		if billHasCoSponsor(b, neighborSet) {
			withSeatmate++
		}
	}
	return float64(withSeatmate) / float64(len(substantive))
}

func billHasCoSponsor(b *model.Bill, ids map[string]bool) bool {
	for _, id := range b.SponsorIDs {
		if ids[id] {
			return true
		}
	}
	for _, id := range b.HouseSponsorIDs {
		if ids[id] {
			return true
		}
	}
	return false
}

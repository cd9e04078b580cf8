// SPDX-License-Identifier: MIT

// Package geo implements the ZIP Crosswalk (spec §4.9): a pure,
// network-free lookup from a 5-digit ZIP code to the senate/house
// districts that cover it.
package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// Districts is the pair of district numbers a ZIP code maps to.
type Districts struct {
	SenateDistrict int
	HouseDistrict  int
}

// Crosswalk is the in-memory ZIP → Districts table. It never contacts
// the network at request time; it is loaded once from a bundled CSV
// (production) or a small seed table (dev/test).
type Crosswalk struct {
	byZIP map[string]Districts
}

// NewFromSeed builds a Crosswalk directly from a zip-code-keyed map,
// for development and tests.
func NewFromSeed(seed map[string]Districts) *Crosswalk {
	byZIP := make(map[string]Districts, len(seed))
	for zip, d := range seed {
		byZIP[zip] = d
	}
	return &Crosswalk{byZIP: byZIP}
}

// LoadCSV builds a Crosswalk from a bundled CSV with header
// "zip_code,senate_district,house_district" (spec §4.9 addendum). No
// ecosystem CSV library appears anywhere in the retrieved example pack,
// so this reads with the standard library's encoding/csv.
func LoadCSV(path string) (*Crosswalk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geo: open crosswalk %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	byZIP := make(map[string]Districts)
	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return &Crosswalk{byZIP: byZIP}, nil
		}
		return nil, fmt.Errorf("geo: read crosswalk header: %w", err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("geo: read crosswalk row: %w", err)
		}
		senate, errS := strconv.Atoi(record[1])
		house, errH := strconv.Atoi(record[2])
		if errS != nil || errH != nil {
			continue
		}
		byZIP[record[0]] = Districts{SenateDistrict: senate, HouseDistrict: house}
	}

	return &Crosswalk{byZIP: byZIP}, nil
}

// Lookup resolves zipCode to its covering districts, or a NotFound
// apperrors.NotFound error when the ZIP is absent from the table.
func (c *Crosswalk) Lookup(zipCode string) (Districts, error) {
	d, ok := c.byZIP[zipCode]
	if !ok {
		return Districts{}, apperrors.NewNotFound(fmt.Sprintf("zip_code %q not found in crosswalk", zipCode))
	}
	return d, nil
}

// SPDX-License-Identifier: MIT

package analytics

// rescale linearly maps each value in raw onto [0,1] using the observed
// min/max of the cohort (spec §4.7 component normalization). A
// degenerate cohort (every value equal) rescales to 0 for every
// member — there is no basis to prefer one member over another.
func rescale(raw []float64) []float64 {
	out := make([]float64, len(raw))
	if len(raw) == 0 {
		return out
	}

	min, max := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	for i, v := range raw {
		if span == 0 {
			out[i] = 0
			continue
		}
		out[i] = (v - min) / span
	}
	return out
}

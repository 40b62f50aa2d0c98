package checker

import "sort"

// interval is an inclusive integer range. Used for both integer column
// domains and the ranges appearing in patterns.
type interval struct {
	lo, hi int64
}

func (iv interval) contains(other interval) bool {
	return iv.lo <= other.lo && other.hi <= iv.hi
}

// normalize sorts intervals by low bound and merges overlapping or adjacent
// ones. The result is ascending and pairwise disjoint.
func normalize(ivs []interval) []interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].lo != sorted[j].lo {
			return sorted[i].lo < sorted[j].lo
		}
		return sorted[i].hi < sorted[j].hi
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.lo <= last.hi+1 { // overlap or adjacency
			if iv.hi > last.hi {
				last.hi = iv.hi
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

// complement returns the ascending intervals of domain not covered by ivs.
// Empty when ivs exhausts the domain.
func complement(domain interval, ivs []interval) []interval {
	var out []interval
	next := domain.lo
	for _, iv := range normalize(ivs) {
		if iv.hi < domain.lo || iv.lo > domain.hi {
			continue
		}
		if iv.lo > next {
			out = append(out, interval{next, iv.lo - 1})
		}
		if iv.hi >= next {
			next = iv.hi + 1
		}
		if next > domain.hi {
			return out
		}
	}
	if next <= domain.hi {
		out = append(out, interval{next, domain.hi})
	}
	return out
}

// splitBoundaries cuts the target interval at every bound of the given
// intervals, producing ascending sub-intervals such that each piece is,
// for every input interval, either fully inside or fully outside it. This
// is what lets range specialization compare like-for-like intervals.
func splitBoundaries(target interval, ivs []interval) []interval {
	cuts := []int64{target.lo}
	for _, iv := range ivs {
		if iv.lo > target.lo && iv.lo <= target.hi {
			cuts = append(cuts, iv.lo)
		}
		if iv.hi >= target.lo && iv.hi < target.hi {
			cuts = append(cuts, iv.hi+1)
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })

	var out []interval
	for i, lo := range cuts {
		if i > 0 && lo == cuts[i-1] {
			continue
		}
		hi := target.hi
		for _, next := range cuts[i+1:] {
			if next > lo {
				hi = next - 1
				break
			}
		}
		out = append(out, interval{lo, hi})
	}
	return out
}

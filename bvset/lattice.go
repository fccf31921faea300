package bvset

import "github.com/katalvlaran/theorysat/lit"

// computeEquivBits fills in s.equivBits/s.expected: bit i is equivalent iff
// every member of s.Values agrees on it.
func computeEquivBits(s *Set, width int) {
	s.equivBits = make([]bool, width)
	s.expected = make([]lit.Value, width)
	for i := 0; i < width; i++ {
		first := bitOf(s.Values[0], i)
		same := true
		for _, v := range s.Values[1:] {
			if bitOf(v, i) != first {
				same = false
				break
			}
		}
		s.equivBits[i] = same
		if same {
			if first {
				s.expected[i] = lit.True
			} else {
				s.expected[i] = lit.False
			}
		}
	}
}

// buildLattice computes the pairwise subset/disjoint relationships between
// every pair of sets sharing the same bvID, partial-ordering them by
// containment. sets must already be sorted by SetID so the resulting
// implies/excludes slices are themselves deterministic.
func buildLattice(sets []*Set) {
	for _, s1 := range sets {
		for _, s2 := range sets {
			if s1.ID == s2.ID {
				continue
			}
			if subsetOf(s1.Values, s2.Values) {
				s1.implies = append(s1.implies, s2.ID)
			}
			if disjointFrom(s1.Values, s2.Values) {
				s1.excludes = append(s1.excludes, s2.ID)
			}
		}
	}
}

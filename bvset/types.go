package bvset

import (
	"sort"

	"github.com/katalvlaran/theorysat/lit"
)

// BVID identifies a bitvector owned by the enclosing (out-of-scope)
// bitvector theory; BVSetTheory only ever sees its bit literals.
type BVID uint32

// SetID identifies one (bvID, values, condLit) triple, unique across the
// whole theory instance regardless of which bvID it watches.
type SetID uint32

// interval is the derived (min, max) bound of a Set's values, kept
// alongside the exact sorted slice exactly the way gokando's finite-domain
// constraints keep both an explicit domain and a derived bound — used as a
// cheap containment pre-filter ahead of the exact per-value bit check.
type interval struct {
	min, max uint64
}

func newInterval(values []uint64) interval {
	iv := interval{min: values[0], max: values[0]}
	for _, v := range values[1:] {
		if v < iv.min {
			iv.min = v
		}
		if v > iv.max {
			iv.max = v
		}
	}
	return iv
}

// overlaps reports whether [lo, hi] intersects iv. Used to skip the exact
// per-value scan when the currently-assigned-bit range can't possibly reach
// any member of the set.
func (iv interval) overlaps(lo, hi uint64) bool {
	return lo <= iv.max && hi >= iv.min
}

// bitRef is where a bit-literal variable resolves to: which bitvector, and
// which bit index within it.
type bitRef struct {
	bv  BVID
	bit int
}

// bvInfo is per-bitvector registration state: its width and the literal
// bound to each of its bits, positive polarity, lowest bit first.
type bvInfo struct {
	width int
	bits  []lit.Lit
}

// Set is one (bvID, values, condLit) triple.
type Set struct {
	ID     SetID
	BV     BVID
	Cond   lit.Lit
	Values []uint64 // sorted ascending, deduplicated

	interval interval

	// equivBits[i] is true iff every member of Values shares the same bit
	// at index i, in which case expected[i] holds that shared value.
	// Computed once at Preprocess time.
	equivBits []bool
	expected  []lit.Value

	// implies/excludes record the pairwise lattice relationships
	// established at Preprocess time against every other set sharing BV:
	// implies holds sets this one is a
	// subset of, excludes holds sets whose values are disjoint from this
	// one's.
	implies  []SetID
	excludes []SetID
}

// bitValue reads bit i of the bitvector from value as assigned by the host,
// given that bit's literal.
func bitValue(value func(lit.Lit) lit.Value, bits []lit.Lit, i int) lit.Value {
	return value(bits[i])
}

// bitOf returns bit i (0 = LSB) of v.
func bitOf(v uint64, i int) bool {
	return (v>>uint(i))&1 != 0
}

// consistentWithAssigned reports whether v's bit decomposition agrees with
// every currently-assigned bit of bv, and if not, the lowest index at which
// it first disagrees — an arbitrary but deterministic choice among possibly
// several differing bits.
func consistentWithAssigned(value func(lit.Lit) lit.Value, bits []lit.Lit, v uint64) (ok bool, diffBit int) {
	for i, bl := range bits {
		val := value(bl)
		if val == lit.Undef {
			continue
		}
		want := lit.True
		if !bitOf(v, i) {
			want = lit.False
		}
		if val != want {
			return false, i
		}
	}
	return true, -1
}

// assignedRange derives the [lo, hi] range of values consistent with the
// currently-assigned bits of bv: unassigned bits are free to be 0 (for lo)
// or 1 (for hi).
func assignedRange(value func(lit.Lit) lit.Value, bits []lit.Lit) (lo, hi uint64) {
	for i, bl := range bits {
		val := value(bl)
		if val == lit.True {
			lo |= uint64(1) << uint(i)
			hi |= uint64(1) << uint(i)
		} else if val == lit.Undef {
			hi |= uint64(1) << uint(i)
		}
	}
	return lo, hi
}

// sortUniqueValues sorts v ascending and removes duplicates in place.
func sortUniqueValues(v []uint64) []uint64 {
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	out := v[:0]
	var last uint64
	haveLast := false
	for _, x := range v {
		if haveLast && x == last {
			continue
		}
		out = append(out, x)
		last, haveLast = x, true
	}
	return out
}

// containsValue reports whether sorted contains v.
func containsValue(sorted []uint64, v uint64) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}

// subsetOf reports whether every element of a is present in sorted b.
func subsetOf(a, b []uint64) bool {
	for _, v := range a {
		if !containsValue(b, v) {
			return false
		}
	}
	return true
}

// disjointFrom reports whether a and sorted b share no elements.
func disjointFrom(a, b []uint64) bool {
	for _, v := range a {
		if containsValue(b, v) {
			return false
		}
	}
	return true
}

package bvset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/theorysat/internal/xlog"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/theory"
)

var bvLog = xlog.For("bvset.BVSetTheory")

// BVSetTheory implements theory.Theory: for every declared bitvector, it
// watches a set of (values, condLit) triples and propagates set membership
// as the vector's bits get assigned.
type BVSetTheory struct {
	host theory.SatCore

	bvs     map[BVID]*bvInfo
	bitVar  map[lit.Var]bitRef
	sets    map[SetID]*Set
	byBV    map[BVID][]SetID // sorted by SetID, filled at Preprocess
	condVar map[lit.Var]SetID

	nextSetID SetID
	dirty     map[BVID]bool

	includedMarker, excludedMarker theory.ReasonMarker
}

// NewBVSetTheory constructs an empty theory bound to host. Call DeclareBV
// and AddSet to build the problem, then Preprocess exactly once before the
// first PropagateTheory call.
func NewBVSetTheory(host theory.SatCore) *BVSetTheory {
	t := &BVSetTheory{
		host:    host,
		bvs:     make(map[BVID]*bvInfo),
		bitVar:  make(map[lit.Var]bitRef),
		sets:    make(map[SetID]*Set),
		byBV:    make(map[BVID][]SetID),
		condVar: make(map[lit.Var]SetID),
		dirty:   make(map[BVID]bool),
	}
	t.includedMarker = host.NewReasonMarker(t)
	t.excludedMarker = host.NewReasonMarker(t)
	return t
}

// DeclareBV registers a bitvector's width and its per-bit literals, lowest
// bit first, all positive polarity. Must be called before any AddSet for
// the same bvID.
func (t *BVSetTheory) DeclareBV(bv BVID, bits []lit.Lit) error {
	if len(bits) == 0 {
		return fmt.Errorf("bvset: DeclareBV(%d): %w", bv, ErrBadWidth)
	}
	if _, exists := t.bvs[bv]; exists {
		return fmt.Errorf("bvset: DeclareBV(%d): %w", bv, ErrDuplicateBV)
	}
	info := &bvInfo{width: len(bits), bits: append([]lit.Lit(nil), bits...)}
	t.bvs[bv] = info
	for i, l := range bits {
		t.bitVar[l.Var()] = bitRef{bv: bv, bit: i}
	}
	return nil
}

// AddSet attaches a new (values, condLit) triple to bv and returns its
// SetID. values outside bv's declared width are a construction-time error
//; duplicates are silently collapsed.
func (t *BVSetTheory) AddSet(bv BVID, cond lit.Lit, values []uint64) (SetID, error) {
	info, ok := t.bvs[bv]
	if !ok {
		return 0, fmt.Errorf("bvset: AddSet: %w", ErrUnknownBV)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("bvset: AddSet: %w", ErrEmptyValues)
	}
	limit := uint64(1) << uint(info.width)
	for _, v := range values {
		if v >= limit {
			return 0, fmt.Errorf("bvset: AddSet(bv=%d, v=%d, width=%d): %w", bv, v, info.width, ErrValueOutOfRange)
		}
	}
	vals := sortUniqueValues(append([]uint64(nil), values...))
	s := &Set{
		ID:       t.nextSetID,
		BV:       bv,
		Cond:     cond,
		Values:   vals,
		interval: newInterval(vals),
	}
	t.nextSetID++
	t.sets[s.ID] = s
	t.condVar[cond.Var()] = s.ID
	return s.ID, nil
}

// Preprocess computes equivalentBits, the pairwise subset/disjoint lattice,
// and emits the lattice plus forced-bit clauses to the host. Must run
// exactly once, after every DeclareBV/AddSet call.
func (t *BVSetTheory) Preprocess() error {
	for bv := range t.bvs {
		var ids []SetID
		for id, s := range t.sets {
			if s.BV == bv {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		t.byBV[bv] = ids

		info := t.bvs[bv]
		var setsOfBV []*Set
		for _, id := range ids {
			s := t.sets[id]
			computeEquivBits(s, info.width)
			setsOfBV = append(setsOfBV, s)
		}
		buildLattice(setsOfBV)

		for _, s := range setsOfBV {
			// Implication/exclusion clauses (step 3): S1 subset S2 => ¬c1 v c2;
			// S1 disjoint S2 => ¬c1 v ¬c2.
			for _, otherID := range s.implies {
				other := t.sets[otherID]
				if err := t.host.AddClause([]lit.Lit{s.Cond.Not(), other.Cond}); err != nil {
					return fmt.Errorf("bvset: preprocess implication clause: %w", err)
				}
			}
			for _, otherID := range s.excludes {
				other := t.sets[otherID]
				if err := t.host.AddClause([]lit.Lit{s.Cond.Not(), other.Cond.Not()}); err != nil {
					return fmt.Errorf("bvset: preprocess exclusion clause: %w", err)
				}
			}
			// Forced-bit clauses (step 4): for every equivalent bit i,
			// ¬c v (bit_i = expected).
			for i, eq := range s.equivBits {
				if !eq {
					continue
				}
				bl := info.bits[i]
				if s.expected[i] == lit.False {
					bl = bl.Not()
				}
				if err := t.host.AddClause([]lit.Lit{s.Cond.Not(), bl}); err != nil {
					return fmt.Errorf("bvset: preprocess forced-bit clause: %w", err)
				}
			}
		}
	}
	return nil
}

// EnqueueTheory marks a bitvector dirty when one of its bits, or the
// condition literal of one of its sets, is consumed; Propagate then
// re-reads every value directly from the host.
func (t *BVSetTheory) EnqueueTheory(l lit.Lit) error {
	if ref, ok := t.bitVar[l.Var()]; ok {
		t.dirty[ref.bv] = true
	}
	if id, ok := t.condVar[l.Var()]; ok {
		t.dirty[t.sets[id].BV] = true
	}
	return nil
}

// PropagateTheory processes every dirty bvID in ascending order, and within
// each, every set in ascending SetID order.
func (t *BVSetTheory) PropagateTheory() ([]lit.Lit, bool) {
	var bvs []BVID
	for bv := range t.dirty {
		bvs = append(bvs, bv)
	}
	sort.Slice(bvs, func(i, j int) bool { return bvs[i] < bvs[j] })
	for _, bv := range bvs {
		delete(t.dirty, bv)
		if conflict, ok := t.propagateBV(bv); !ok {
			return conflict, false
		}
	}
	return nil, true
}

// SolveTheory has no extra work beyond PropagateTheory: every propagation
// round already drives every dirty bvID to a full fixpoint.
func (t *BVSetTheory) SolveTheory() ([]lit.Lit, bool) {
	return t.PropagateTheory()
}

func (t *BVSetTheory) propagateBV(bv BVID) ([]lit.Lit, bool) {
	info := t.bvs[bv]
	for _, id := range t.byBV[bv] {
		s := t.sets[id]
		cVal := t.host.Value(s.Cond)

		anyIncluded, diffs := t.analyze(info, s)
		allSet := everyBitAssigned(t.host.Value, info.bits, s.equivBits)

		switch {
		case cVal == lit.True && !anyIncluded:
			bvLog.With("set", s.ID).With("bv", bv).Debugf("conflict: c=true but no value in set remains consistent")
			clause := make([]lit.Lit, 0, len(diffs)+1)
			clause = append(clause, s.Cond.Not())
			for _, d := range diffs {
				bl := info.bits[d]
				switch t.host.Value(bl) {
				case lit.Undef:
					continue
				case lit.True:
					bl = bl.Not()
				}
				clause = append(clause, bl)
			}
			return clause, false

		case cVal == lit.False && anyIncluded && allSet:
			bvLog.With("set", s.ID).With("bv", bv).Debugf("conflict: c=false but bv now equals an excluded value")
			clause := make([]lit.Lit, 0, 1+len(info.bits))
			clause = append(clause, s.Cond)
			for _, bl := range info.bits {
				switch t.host.Value(bl) {
				case lit.Undef:
					continue
				case lit.True:
					bl = bl.Not()
				}
				clause = append(clause, bl)
			}
			return clause, false

		case cVal == lit.Undef && allSet:
			marker := t.excludedMarker
			target := s.Cond.Not()
			if anyIncluded {
				marker = t.includedMarker
				target = s.Cond
			}
			bvLog.With("set", s.ID).With("bv", bv).Debugf("propagate c=%v", anyIncluded)
			if err := t.host.Enqueue(target, marker); err != nil {
				return []lit.Lit{target}, false
			}
		}
	}
	return nil, true
}

// analyze computes anyValsIncluded and the lowest-differing-bit "diffs" set
// for every currently-excluded value of s. The
// interval pre-filter short-circuits the common case where the
// currently-assigned-bit range can't reach s at all.
func (t *BVSetTheory) analyze(info *bvInfo, s *Set) (anyIncluded bool, diffs []int) {
	lo, hi := assignedRange(t.host.Value, info.bits)
	if !s.interval.overlaps(lo, hi) {
		diffs = make([]int, 0, len(s.Values))
		for _, v := range s.Values {
			_, d := consistentWithAssigned(t.host.Value, info.bits, v)
			if d < 0 {
				d = 0
			}
			diffs = append(diffs, d)
		}
		return false, diffs
	}
	seen := make(map[int]bool)
	for _, v := range s.Values {
		ok, d := consistentWithAssigned(t.host.Value, info.bits, v)
		if ok {
			anyIncluded = true
			continue
		}
		if !seen[d] {
			seen[d] = true
			diffs = append(diffs, d)
		}
	}
	sort.Ints(diffs)
	return anyIncluded, diffs
}

// everyBitAssigned reports whether every bit index outside equivBits has a
// definite value.
func everyBitAssigned(value func(lit.Lit) lit.Value, bits []lit.Lit, equivBits []bool) bool {
	for i, bl := range bits {
		if equivBits[i] {
			continue
		}
		if value(bl) == lit.Undef {
			return false
		}
	}
	return true
}

// BuildReason reconstructs the clause explaining a set-included/excluded
// condition literal. MarkerForcedBit has no runtime reconstruction here: its
// clause was already added to the host at Preprocess time (see Marker's
// doc comment).
func (t *BVSetTheory) BuildReason(l lit.Lit, marker theory.ReasonMarker) ([]lit.Lit, error) {
	id, ok := t.condVar[l.Var()]
	if !ok {
		return nil, fmt.Errorf("bvset: literal %s is not a condition literal of this theory", l)
	}
	s := t.sets[id]
	info := t.bvs[s.BV]
	_, diffs := t.analyze(info, s)

	switch marker {
	case t.excludedMarker:
		clause := make([]lit.Lit, 0, len(diffs)+1)
		clause = append(clause, s.Cond.Not())
		for _, d := range diffs {
			bl := info.bits[d]
			switch t.host.Value(bl) {
			case lit.Undef:
				continue
			case lit.True:
				bl = bl.Not()
			}
			clause = append(clause, bl)
		}
		return clause, nil
	case t.includedMarker:
		clause := make([]lit.Lit, 0, 1+len(info.bits))
		clause = append(clause, s.Cond)
		for _, bl := range info.bits {
			switch t.host.Value(bl) {
			case lit.Undef:
				continue
			case lit.True:
				bl = bl.Not()
			}
			clause = append(clause, bl)
		}
		return clause, nil
	default:
		return nil, fmt.Errorf("bvset: marker %v does not belong to this BVSetTheory", marker)
	}
}

// NewDecisionLevel, BacktrackUntil, UndecideTheory are no-ops: BVSetTheory
// carries no state derived incrementally from the trail, only the dirty set
// rebuilt each round from EnqueueTheory (see package doc comment).
func (t *BVSetTheory) NewDecisionLevel()        {}
func (t *BVSetTheory) BacktrackUntil(level int) {}
func (t *BVSetTheory) UndecideTheory(l lit.Lit) {}

// DecideTheory offers no decision heuristic: unlike ReachDetector, BVSetTheory
// has no notion of "guidance toward a useful target".
func (t *BVSetTheory) DecideTheory() (lit.Lit, bool) { return lit.Null, false }

// CheckSolved re-runs propagation as a debug assertion: at a genuine
// fixpoint every dirty bvID must already be clean.
func (t *BVSetTheory) CheckSolved() bool {
	for bv := range t.bvs {
		if conflict, ok := t.propagateBV(bv); conflict != nil || !ok {
			return false
		}
	}
	return true
}

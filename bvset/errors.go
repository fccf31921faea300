package bvset

import "errors"

// Sentinel errors for construction-time misuse: attaching a set with values
// outside the bv's width or with negative values raises a construction-time
// error; values are uint64 here so "negative" reduces to "out of width".
var (
	// ErrUnknownBV indicates a set or bit literal referenced a bvID that was
	// never declared via DeclareBV.
	ErrUnknownBV = errors.New("bvset: unknown bitvector id")

	// ErrValueOutOfRange indicates a value attached to a set does not fit in
	// the bitvector's declared width.
	ErrValueOutOfRange = errors.New("bvset: value out of range for bitvector width")

	// ErrBadWidth indicates DeclareBV was called with an empty bit-literal
	// slice; the width is the slice's length.
	ErrBadWidth = errors.New("bvset: bad bitvector width")

	// ErrDuplicateBV indicates DeclareBV was called twice for the same bvID.
	ErrDuplicateBV = errors.New("bvset: bitvector already declared")

	// ErrEmptyValues indicates a set was constructed with no values at all,
	// which can never be satisfied and is almost certainly a caller bug.
	ErrEmptyValues = errors.New("bvset: set has no values")
)

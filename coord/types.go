package coord

import "github.com/genomekit/nwalign/bitpack"

// Pos is a single point (i, j) in the alignment matrix: i is the column
// (index into A), j is the row (index into B).
type Pos struct {
	I, J int
}

// JRange is a half-open row range [Lo, Hi).
type JRange struct {
	Lo, Hi int
}

// Len returns Hi-Lo, or 0 if the range is empty or inverted.
func (r JRange) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// IsEmpty reports whether the range contains no rows.
func (r JRange) IsEmpty() bool { return r.Hi <= r.Lo }

// Contains reports whether j falls within [Lo, Hi).
func (r JRange) Contains(j int) bool { return j >= r.Lo && j < r.Hi }

// Union returns the smallest range containing both r and other. An empty
// operand is ignored, matching the "ranges only grow" invariant used
// across band-doubling iterations.
func (r JRange) Union(other JRange) JRange {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	lo, hi := r.Lo, r.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return JRange{Lo: lo, Hi: hi}
}

// Clip restricts r to [0, m].
func (r JRange) Clip(m int) JRange {
	lo, hi := r.Lo, r.Hi
	if lo < 0 {
		lo = 0
	}
	if hi > m {
		hi = m
	}
	if hi < lo {
		hi = lo
	}
	return JRange{Lo: lo, Hi: hi}
}

// RoundOutward expands r to the enclosing multiple-of-W range: the
// "rounded range" that is actually allocated in storage.
func RoundOutward(r JRange) JRange {
	lo := floorMultiple(r.Lo, bitpack.W)
	hi := ceilMultiple(r.Hi, bitpack.W)
	return JRange{Lo: lo, Hi: hi}
}

// RoundInward shrinks r to the enclosed multiple-of-W range: rows that
// are fully covered regardless of sub-word boundary effects.
func RoundInward(r JRange) JRange {
	lo := ceilMultiple(r.Lo, bitpack.W)
	hi := floorMultiple(r.Hi, bitpack.W)
	if hi < lo {
		hi = lo
	}
	return JRange{Lo: lo, Hi: hi}
}

func floorMultiple(x, m int) int {
	if x >= 0 {
		return (x / m) * m
	}
	return -ceilMultiple(-x, m)
}

func ceilMultiple(x, m int) int {
	if x >= 0 {
		return ((x + m - 1) / m) * m
	}
	return -floorMultiple(-x, m)
}

// IRange is a half-open column range [Lo, Hi).
type IRange struct {
	Lo, Hi int
}

// Len returns Hi-Lo, or 0 if the range is empty or inverted.
func (r IRange) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

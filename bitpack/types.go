package bitpack

import (
	"errors"
	"math/bits"
)

// W is the number of rows packed into a single machine word.
const W = 64

// Sentinel errors for profile construction.
var (
	// ErrEmptySequence indicates that both A and B must be non-empty to build a Profile.
	ErrEmptySequence = errors.New("bitpack: both sequences must be non-empty")
)

// V is a packed vertical delta word: bit k of P set means row k has a +1
// delta relative to the row above it within the same column; bit k of M
// set means -1; both clear means 0. Both bits set is invalid.
type V struct {
	P uint64
	M uint64
}

// OneV returns a word whose every row has vertical delta +1 — the
// initial state of the first column (top_val=0, bot_val=round_hi).
func OneV() V { return V{P: ^uint64(0)} }

// Value returns popcount(P) - popcount(M), the net delta of the whole word.
func (v V) Value() int {
	return bits.OnesCount64(v.P) - bits.OnesCount64(v.M)
}

// ValueOfPrefix returns the net delta of the first k bits (k in [0, W]).
func (v V) ValueOfPrefix(k int) int {
	mask := lowMask(k)
	return bits.OnesCount64(v.P&mask) - bits.OnesCount64(v.M&mask)
}

// ValueOfSuffix returns the net delta of the last k bits (k in [0, W]).
func (v V) ValueOfSuffix(k int) int {
	mask := lowMask(k) << uint(W-k)
	if k == 0 {
		mask = 0
	}
	return bits.OnesCount64(v.P&mask) - bits.OnesCount64(v.M&mask)
}

// GetDiff returns the delta at bit k (+1, 0 or -1), or false if k is out of [0,W).
func (v V) GetDiff(k int) (int, bool) {
	if k < 0 || k >= W {
		return 0, false
	}
	p := (v.P >> uint(k)) & 1
	m := (v.M >> uint(k)) & 1
	return int(p) - int(m), true
}

func lowMask(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= W {
		return ^uint64(0)
	}
	return (uint64(1) << uint(k)) - 1
}

// H is a horizontal delta at a single column boundary and a single row,
// encoded with the same (p, m) convention as V. It is used as a per-row
// scalar that the kernel carries into and out of a block of columns.
type H struct {
	P bool
	M bool
}

// OneH returns the horizontal delta +1 (the "virtual row above the top").
func OneH() H { return H{P: true} }

// Value returns the signed delta represented by h.
func (h H) Value() int {
	switch {
	case h.P:
		return 1
	case h.M:
		return -1
	default:
		return 0
	}
}

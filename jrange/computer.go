package jrange

import (
	"fmt"

	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
)

// Computer computes j_range and fixed_j_range for a fixed pair of
// sequence lengths n (columns) and m (rows).
type Computer struct {
	Domain Domain
	N, M   int

	// BlockWidth is the number of columns per block, used by the Astar
	// walk's initial downward stride.
	BlockWidth int

	// SparseHCalls enables the exponential-stride walks when computing
	// Astar ranges, valid for column-wise-consistent heuristics.
	SparseHCalls bool
}

// JRange computes the row range to process for a block spanning iRange,
// under the optional cost bound fMax (nil means "no bound": the full
// range regardless of Domain). prev is the previous front — the front
// for column iRange.Lo — consumed by the Astar domain; pass nil for the
// first column (iRange {-1, 0}).
//
// The returned range covers value rows [Lo, Hi]; an empty range (Hi <=
// Lo) signals that no path of cost <= fMax crosses this block.
func (c *Computer) JRange(iRange coord.IRange, fMax *int, prev *front.Front) coord.JRange {
	if fMax == nil {
		return coord.JRange{Lo: 0, Hi: c.M}
	}

	switch c.Domain.Kind {
	case Full:
		return coord.JRange{Lo: 0, Hi: c.M}
	case GapStart:
		// The maximum number of diagonals reachable from the origin
		// with cost fMax: fMax/delCost up, fMax/insCost down.
		return coord.JRange{
			Lo: iRange.Lo + 1 - *fMax/UnitDeleteCost,
			Hi: iRange.Hi + *fMax/UnitInsertCost,
		}.Clip(c.M)
	case GapGap:
		// Subtract the unavoidable gap cost from the origin to (n, m);
		// the remaining budget buys extra diagonals at one insertion
		// plus one deletion each.
		d := c.M - c.N
		s := *fMax - absInt(d)
		if s < 0 {
			return coord.JRange{}
		}
		extra := s / (UnitInsertCost + UnitDeleteCost)
		return coord.JRange{
			Lo: iRange.Lo + 1 + minInt(d, 0) - extra,
			Hi: iRange.Hi + maxInt(d, 0) + extra,
		}.Clip(c.M)
	case Astar:
		return c.astarRange(iRange, *fMax, prev)
	default:
		return coord.JRange{Lo: 0, Hi: c.M}
	}
}

// astarRange implements the Astar domain: the start of the new range is
// the previous front's fixed_j_range.lo; the end is found by walking
// down/right from the deepest fixed state u in the previous front while
// g(u) + extend_cost(u, v) + h(v) <= fMax.
func (c *Computer) astarRange(iRange coord.IRange, fMax int, prev *front.Front) coord.JRange {
	is, ie := iRange.Lo, iRange.Hi

	// The deepest fixed state u = (is, uj) of the previous front, and
	// g(u). For the first column there is no previous front; the origin
	// (with g = 0) stands in for it.
	var start, uj, gu int
	if prev != nil {
		if prev.FixedJRange == nil {
			panic(fmt.Sprintf("jrange: Astar domain requires fixed_j_range on the front for column %d", prev.I))
		}
		fixed := *prev.FixedJRange
		if fixed.IsEmpty() {
			return coord.JRange{}
		}
		start = fixed.Lo
		uj = fixed.Hi - 1
		gu = prev.Index(uj)
	}

	h := c.Domain.H
	// A lower bound on f at states v on or below the diagonal of u: a
	// path of cost <= fMax to v cannot pass below u in column is, so it
	// pays at least the gap cost from u's diagonal, and h(v) bounds the
	// rest.
	f := func(vi, vj int) int {
		extend := (vj - uj) - (vi - is)
		if extend < 0 {
			extend = -extend
		}
		return gu + extend + h.H(coord.Pos{I: vi, J: vj})
	}

	vi, vj := is, uj
	if c.SparseHCalls {
		// Exponential strides, valid when h is column-wise Lipschitz
		// with slope 2 under consistency: start one block below the
		// diagonal of u, go down while in scope, stride right when out
		// of scope, then at the final column walk back up until in
		// scope.
		vi, vj = vi+1, vj+1
		vj += c.BlockWidth
		if vj > c.M {
			vj = c.M
		}
		for vi <= ie && vj < c.M {
			fv := f(vi, vj)
			if fv <= fMax {
				vj++
			} else {
				vi += divCeil(fv-fMax, 2*UnitDeleteCost)
			}
		}
		vi = ie
		for vj > 0 && vj < c.M {
			fv := f(vi, vj)
			if fv <= fMax {
				break
			}
			vj -= divCeil(fv-fMax, 2*UnitInsertCost)
		}
		// The estimate only separates states below the diagonal of u;
		// never shrink past the diagonal itself.
		if floor := uj + (ie - is); vj < floor {
			vj = floor
		}
	} else {
		// One column at a time: extend diagonally, then probe down
		// until the cell below is out of reach.
		for vi < ie {
			vi++
			vj++
			vj++
			for vj <= c.M && f(vi, vj) <= fMax {
				vj++
			}
			vj--
		}
	}

	return coord.JRange{Lo: maxInt(start, 0), Hi: minInt(vj, c.M)}
}

// FixedJRange finds the largest subrange of newFront's j_range on which
// g(i, j) + h(i, j) <= fMax — the states proven optimal under the
// current bound. It returns false for domains other than Astar (only the
// heuristic-guided domain tracks fixed ranges) and when no bound is set.
// An empty returned range is legal and signals "no feasible path with
// this bound".
//
// The same stride shortcut as the range walk applies: if f at the
// current endpoint exceeds fMax by delta, column-wise consistency of h
// means the first in-scope row is at least ceil(delta/2) rows further
// in, so the scan may jump that far before re-querying h.
func (c *Computer) FixedJRange(newFront *front.Front, fMax *int) (coord.JRange, bool) {
	if c.Domain.Kind != Astar || fMax == nil {
		return coord.JRange{}, false
	}

	h := c.Domain.H
	f := func(j int) int {
		return newFront.Index(j) + h.H(coord.Pos{I: newFront.I, J: j})
	}

	start := newFront.JRange.Lo
	end := newFront.JRange.Hi
	for start <= end {
		fv := f(start)
		if fv <= *fMax {
			break
		}
		if c.SparseHCalls {
			start += divCeil(fv-*fMax, 2*UnitInsertCost)
		} else {
			start++
		}
	}
	for end >= start {
		fv := f(end)
		if fv <= *fMax {
			break
		}
		if c.SparseHCalls {
			end -= divCeil(fv-*fMax, 2*UnitInsertCost)
		} else {
			end--
		}
	}
	if start > end {
		return coord.JRange{}, true
	}
	return coord.JRange{Lo: start, Hi: end + 1}, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func divCeil(a, b int) int {
	return (a + b - 1) / b
}

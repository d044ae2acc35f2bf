package front

import (
	"fmt"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/coord"
)

// Front is one column's worth of DP state: its row range, the vertical
// deltas covering that range, anchor costs at the rounded range's top and
// bottom, and an optional fixed subrange proven optimal under the current
// cost bound.
type Front struct {
	I int

	JRange coord.JRange
	V      []bitpack.V
	Offset int

	TopVal int
	BotVal int

	FixedJRange *coord.JRange

	// JH, when set, is the row at which H (stored elsewhere, by
	// blockdrv) was last recorded for this front, enabling incremental
	// doubling reuse across band-doubling iterations.
	JH *int
}

// NewFirstColumn builds the i=0 front directly: top_val=0, every row has
// vertical delta +1, bot_val=round_hi, and fixed_j_range equals the full
// j_range (every value in the first column is trivially optimal).
func NewFirstColumn(jRange coord.JRange) *Front {
	if jRange.Lo != 0 {
		panic("front: first column j_range must start at 0")
	}
	rounded := coord.RoundOutward(jRange)
	v := make([]bitpack.V, rounded.Len()/bitpack.W)
	for i := range v {
		v[i] = bitpack.OneV()
	}
	fixed := jRange
	return &Front{
		I:           0,
		JRange:      jRange,
		V:           v,
		Offset:      0,
		TopVal:      0,
		BotVal:      rounded.Hi,
		FixedJRange: &fixed,
	}
}

// RoundedRange returns the rounded (word-aligned) storage range.
func (f *Front) RoundedRange() coord.JRange { return coord.RoundOutward(f.JRange) }

// Index recovers g(i, j), scanning from whichever of top_val or bot_val
// is closer (the half-scan rule), using word-level and
// prefix/suffix popcount for the boundary word. For j beyond the rounded
// range, values extend by +1 per row (the virtual "below the band"
// extension).
func (f *Front) Index(j int) int {
	rounded := f.RoundedRange()
	if j < rounded.Lo {
		panic(fmt.Sprintf("front: Index(%d) below rounded range %v", j, rounded))
	}
	if j > rounded.Hi {
		return f.BotVal + (j - rounded.Hi)
	}

	if j-rounded.Lo < rounded.Hi-j {
		val := f.TopVal
		j0 := rounded.Lo
		for j0+bitpack.W <= j {
			val += f.V[(j0-f.Offset)/bitpack.W].Value()
			j0 += bitpack.W
		}
		val += f.V[(j0-f.Offset)/bitpack.W].ValueOfPrefix(j - j0)
		return val
	}

	val := f.BotVal
	j1 := rounded.Hi
	for j1-bitpack.W > j {
		val -= f.V[(j1-bitpack.W-f.Offset)/bitpack.W].Value()
		j1 -= bitpack.W
	}
	if j1 > j {
		val -= f.V[(j1-bitpack.W-f.Offset)/bitpack.W].ValueOfSuffix(j1 - j)
	}
	return val
}

// Get is the non-panicking counterpart to Index: it returns false if j is
// outside the rounded range.
func (f *Front) Get(j int) (int, bool) {
	rounded := f.RoundedRange()
	if j < rounded.Lo || j > rounded.Hi {
		return 0, false
	}
	return f.Index(j), true
}

// GetDiff returns the vertical delta from row j to row j+1, or false if j
// falls outside the stored range.
func (f *Front) GetDiff(j int) (int, bool) {
	if j < f.Offset {
		return 0, false
	}
	idx := (j - f.Offset) / bitpack.W
	if idx >= len(f.V) {
		return 0, false
	}
	bit := (j - f.Offset) % bitpack.W
	return f.V[idx].GetDiff(bit)
}

// CheckInvariant asserts top_val + sum(v) == bot_val. It is
// intended for debug builds / tests, not the hot path.
func (f *Front) CheckInvariant() error {
	val := f.TopVal
	for _, w := range f.V {
		val += w.Value()
	}
	if val != f.BotVal {
		return fmt.Errorf("front: invariant violated at column %d: top_val(%d) + sum(v)=%d != bot_val(%d)",
			f.I, f.TopVal, val-f.TopVal, f.BotVal)
	}
	return nil
}

// Clone returns a deep copy, used when a traceback recomputation must not
// disturb the forward-computed front it starts from.
func (f *Front) Clone() *Front {
	cp := *f
	cp.V = append([]bitpack.V(nil), f.V...)
	if f.FixedJRange != nil {
		fr := *f.FixedJRange
		cp.FixedJRange = &fr
	}
	if f.JH != nil {
		jh := *f.JH
		cp.JH = &jh
	}
	return &cp
}

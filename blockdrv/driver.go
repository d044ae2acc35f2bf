package blockdrv

import (
	"fmt"
	"os"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
	"github.com/genomekit/nwalign/kernel"
)

// Driver owns the per-column profile, kernel mode, and (optionally) the
// incremental-doubling H cache, and executes blocks against a
// front.Sequence.
type Driver struct {
	Prof *bitpack.Profile
	Mode kernel.Mode

	// IncrementalDoubling enables the per-column H cache. It only helps
	// the Astar domain, whose fixed_j_range grows monotonically across
	// band-doubling iterations; callers using Full/GapStart/GapGap
	// should leave this off.
	IncrementalDoubling bool

	// h[c] is the horizontal delta entering row j_h for column c,
	// cached across band-doubling iterations. Indexed by absolute
	// column (same domain as Prof.A).
	h []bitpack.H
}

// New constructs a Driver for the given profile.
func New(prof *bitpack.Profile, mode kernel.Mode, incrementalDoubling bool) *Driver {
	d := &Driver{Prof: prof, Mode: mode, IncrementalDoubling: incrementalDoubling}
	if incrementalDoubling {
		d.h = make([]bitpack.H, len(prof.A))
	}
	return d
}

// debugEnabled reports whether NWALIGN_DEBUG is set, gating the
// cross-check of the incremental-doubling path against a full recompute.
func debugEnabled() bool {
	return os.Getenv("NWALIGN_DEBUG") != ""
}

// ComputeNextBlock advances seq by one block: it pushes (or reuses) a
// single front for column iRange.Hi, covering jRange widened to include
// whatever that arena slot already held from the previous band-doubling
// iteration. It returns the delta applied to bot_val.
//
// The reused front's fixed_j_range is left untouched — the caller
// refreshes it after the block; until then it still describes the
// previous iteration, which is exactly what the incremental split here
// consumes.
func (d *Driver) ComputeNextBlock(seq *front.Sequence, iRange coord.IRange, jRange coord.JRange) (int, error) {
	next := seq.NextSlot()
	reused := next.I == iRange.Hi
	if reused {
		jRange = jRange.Union(next.JRange)
	}

	rounded := coord.RoundOutward(jRange)
	prev := seq.LastFront()
	topVal := prev.Index(rounded.Lo)
	cols := d.Prof.A[iRange.Lo:iRange.Hi]

	v := make([]bitpack.V, rounded.Len()/bitpack.W)

	incEligible := d.IncrementalDoubling && d.h != nil && reused &&
		next.FixedJRange != nil &&
		prev.FixedJRange != nil && !prev.FixedJRange.IsEmpty()

	if incEligible {
		d.computeIncremental(prev, next, rounded, iRange, cols, v)
		if debugEnabled() {
			if err := d.crossCheck(prev, rounded, iRange, cols, v); err != nil {
				return 0, err
			}
		}
	} else {
		copyOverlap(v, rounded.Lo, prev.V, prev.Offset, prev.RoundedRange())
		kernel.Advance(d.Prof, cols, rounded.Lo/bitpack.W, v, nil, kernel.HNone, d.Mode)
	}

	newTopVal := topVal + iRange.Len()
	newBotVal := newTopVal + sumValue(v)
	delta := newBotVal - next.BotVal

	next.I = iRange.Hi
	next.JRange = jRange
	next.V = v
	next.Offset = rounded.Lo
	next.TopVal = newTopVal
	next.BotVal = newBotVal

	seq.CommitNext(iRange.Hi)
	return delta, nil
}

func sumValue(v []bitpack.V) int {
	total := 0
	for _, w := range v {
		total += w.Value()
	}
	return total
}

// computeIncremental performs the three-way split (recompute above the
// old fixed range / carry the old fixed interior verbatim / refine the
// cached H below it) when the reused front already has a usable H cache
// row, or the two-way split (fill the cache, then consume it) otherwise
// The new cache row j_h is the bottom of the previous
// front's rounded-inward fixed range, and only ever moves down.
func (d *Driver) computeIncremental(prev, next *front.Front, rounded coord.JRange, iRange coord.IRange, cols []byte, v []bitpack.V) {
	prevFixed := coord.RoundInward(*prev.FixedJRange)
	newJH := clampInt(prevFixed.Hi, rounded.Lo, rounded.Hi)
	hSlice := d.h[iRange.Lo:iRange.Hi]

	threeWay := false
	var oldFixedLo, oldJH int
	if next.JH != nil {
		oldFixed := coord.RoundInward(*next.FixedJRange)
		oldFixedLo = oldFixed.Lo
		oldJH = clampInt(*next.JH, oldFixedLo, rounded.Hi)
		threeWay = oldFixedLo >= rounded.Lo && oldFixedLo < oldJH && oldJH <= newJH
	}

	if threeWay {
		// Initialize from the previous front everywhere, then restore
		// the old front's words over [oldFixedLo, oldJH): that segment
		// was computed from fixed inputs last iteration and stays
		// valid verbatim.
		copyOverlap(v, rounded.Lo, prev.V, prev.Offset, prev.RoundedRange())
		for j := oldFixedLo; j < oldJH; j += bitpack.W {
			v[(j-rounded.Lo)/bitpack.W] = next.V[(j-next.Offset)/bitpack.W]
		}

		d.runSlice(cols, rounded.Lo, rounded.Lo, oldFixedLo, v, nil, kernel.HNone)
		d.runSlice(cols, rounded.Lo, oldJH, newJH, v, hSlice, kernel.HUpdate)
		d.runSlice(cols, rounded.Lo, newJH, rounded.Hi, v, hSlice, kernel.HInput)
	} else {
		// Two-way split: nothing from the old front's interior can be
		// reused, but filling the cache at newJH on the way down saves
		// the next iteration's pass above it.
		copyOverlap(v, rounded.Lo, prev.V, prev.Offset, prev.RoundedRange())
		if newJH == rounded.Lo {
			// Empty upper segment: the carry entering the top of the
			// rounded range is the virtual above-the-band +1.
			for i := range hSlice {
				hSlice[i] = bitpack.OneH()
			}
		}
		d.runSlice(cols, rounded.Lo, rounded.Lo, newJH, v, hSlice, kernel.HOutput)
		d.runSlice(cols, rounded.Lo, newJH, rounded.Hi, v, hSlice, kernel.HInput)
	}

	next.JH = &newJH
}

// runSlice invokes kernel.Advance over the [lo, hi) sub-range of the
// rounded block (row coordinates), translating to the corresponding
// slice of v. It is a no-op for an empty sub-range.
func (d *Driver) runSlice(cols []byte, base, lo, hi int, v []bitpack.V, h []bitpack.H, mode kernel.HMode) {
	if hi <= lo {
		return
	}
	lo0 := (lo - base) / bitpack.W
	hi0 := (hi - base) / bitpack.W
	kernel.Advance(d.Prof, cols, lo/bitpack.W, v[lo0:hi0], h, mode, d.Mode)
}

// FillBlock pushes one front per column across iRange (dense trace).
// Incremental doubling does not apply here: every column sweep starts
// its row range fresh from the current band's top, which is always a
// valid +1 carry regardless of any H cache.
func (d *Driver) FillBlock(seq *front.Sequence, iRange coord.IRange, jRange coord.JRange) {
	if peek := seq.NextSlot(); peek.I == iRange.Hi {
		jRange = jRange.Union(peek.JRange)
	}
	rounded := coord.RoundOutward(jRange)
	prev := seq.LastFront()

	v := make([]bitpack.V, rounded.Len()/bitpack.W)
	copyOverlap(v, rounded.Lo, prev.V, prev.Offset, prev.RoundedRange())

	topVal := prev.Index(rounded.Lo)
	botVal := prev.Index(rounded.Hi)
	cols := d.Prof.A[iRange.Lo:iRange.Hi]

	for col := 0; col < iRange.Len(); col++ {
		delta := kernel.Advance(d.Prof, cols[col:col+1], rounded.Lo/bitpack.W, v, nil, kernel.HNone, d.Mode)
		// Along the top row, horizontal deltas are +1, so bot follows
		// top's increment plus the interior's change.
		topVal++
		botVal += delta + 1

		i := iRange.Lo + col + 1
		next := seq.NextSlot()
		next.I = i
		next.JRange = jRange
		next.V = append(next.V[:0], v...)
		next.Offset = rounded.Lo
		next.TopVal = topVal
		next.BotVal = botVal
		next.FixedJRange = nil
		next.JH = nil
		seq.CommitNext(i)
	}
}

// crossCheck recomputes the block from scratch (ignoring any H cache)
// and compares against the incremental-doubling result, returning an
// error on any mismatch. Only called when NWALIGN_DEBUG is set.
func (d *Driver) crossCheck(prev *front.Front, rounded coord.JRange, iRange coord.IRange, cols []byte, got []bitpack.V) error {
	v2 := make([]bitpack.V, len(got))
	copyOverlap(v2, rounded.Lo, prev.V, prev.Offset, prev.RoundedRange())
	kernel.Advance(d.Prof, cols, rounded.Lo/bitpack.W, v2, nil, kernel.HNone, d.Mode)

	for i := range got {
		if got[i] != v2[i] {
			return fmt.Errorf("blockdrv: cross-check at columns %v: v[%d] incremental %+v != recompute %+v", iRange, i, got[i], v2[i])
		}
	}
	return nil
}

// copyOverlap fills dst (covering rows [dstLo, dstLo+len(dst)*W)) with
// the default +1 vertical delta, then overwrites the rows it shares with
// the given source row-word array.
func copyOverlap(dst []bitpack.V, dstLo int, src []bitpack.V, srcOffset int, srcRounded coord.JRange) {
	for i := range dst {
		dst[i] = bitpack.OneV()
	}
	if src == nil {
		return
	}
	dstHi := dstLo + len(dst)*bitpack.W
	lo := maxInt(dstLo, srcRounded.Lo)
	hi := minInt(dstHi, srcRounded.Hi)
	for j := lo; j < hi; j += bitpack.W {
		dst[(j-dstLo)/bitpack.W] = src[(j-srcOffset)/bitpack.W]
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
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

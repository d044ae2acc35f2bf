package kernel

import "github.com/genomekit/nwalign/bitpack"

// Advance runs the bit-parallel recurrence for len(cols) consecutive
// columns of A (the bytes in cols, in order) across the row-words in v,
// each of which covers bitpack.W consecutive rows of B starting at
// rowWordBase*bitpack.W.
//
// h must have length len(cols). Its semantics depend on mode:
//
//	HNone   - h is treated as all +1 and discarded; the caller's slice,
//	          if any, is left untouched.
//	HInput  - h is read (one entry per column, the carry entering the top
//	          of the row range for that column) but never mutated.
//	HUpdate - h is read and written in place.
//	HOutput - h is initialized to +1 per column and filled in.
//
// Advance returns the total change in cumulative vertical value summed
// over all of v's row-words, so callers can update bot_val without
// rescanning v.
func Advance(prof *bitpack.Profile, cols []byte, rowWordBase int, v []bitpack.V, h []bitpack.H, mode HMode, m Mode) int {
	if len(cols) == 0 {
		return 0
	}

	work := h
	switch mode {
	case HNone:
		work = make([]bitpack.H, len(cols))
		for i := range work {
			work[i] = bitpack.OneH()
		}
	case HInput:
		work = make([]bitpack.H, len(cols))
		copy(work, h)
	case HOutput:
		for i := range h {
			h[i] = bitpack.OneH()
		}
		work = h
	case HUpdate:
		work = h
	}

	stride := 1
	if m == SIMD2 {
		stride = 2
	}

	delta := 0
	for c := 0; c < len(cols); c++ {
		hinP, hinM := work[c].P, work[c].M
		k := 0
		for k < len(v) {
			end := k + stride
			if end > len(v) {
				end = len(v)
			}
			for ; k < end; k++ {
				before := v[k].Value()
				eq := prof.Eq(cols[c], rowWordBase+k)
				hinP, hinM = step(eq, &v[k], hinP, hinM)
				delta += v[k].Value() - before
			}
		}
		if mode == HUpdate || mode == HOutput {
			work[c] = bitpack.H{P: hinP, M: hinM}
		}
	}
	return delta
}

// step advances one (row-word, column) tile by the standard multi-word
// Myers bit-vector recurrence (the same formulas used by edlib's
// calculateBlock), in place on v, and returns the horizontal carry
// leaving the bottom of this word.
func step(eq uint64, v *bitpack.V, hinP, hinM bool) (houtP, houtM bool) {
	pv, mv := v.P, v.M

	xv := eq | mv

	eqIn := eq
	if hinM {
		eqIn |= 1
	}
	sum := (eqIn & pv) + pv
	xh := (sum ^ pv) | eqIn

	ph := mv | ^(xh | pv)
	mh := pv & xh

	houtP = (ph>>63)&1 == 1
	houtM = (mh>>63)&1 == 1

	ph <<= 1
	mh <<= 1
	if hinM {
		mh |= 1
	}
	if hinP {
		ph |= 1
	}

	v.P = mh | ^(xv | ph)
	v.M = ph & xv
	return houtP, houtM
}

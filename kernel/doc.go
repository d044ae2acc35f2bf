// Package kernel implements the block compute kernel (one of the engine's
// hottest loops): given a slice of packed vertical-delta words V for a
// fixed row range, and a slice of per-column horizontal-delta scalars H
// for a run of columns, it advances (H, V) across those columns using
// Myers' bit-parallel edit-distance recurrence.
//
// The recurrence is the standard multi-word extension (as used by e.g.
// edlib's calculateBlock): within one column, a signed horizontal carry
// flows top-to-bottom across the row-words of V; across columns, the
// per-row-range entry carry is the scalar stored in H. Callers choose
// how that H slice is treated per invocation via HMode: scratch (None),
// read-only (Input), refined in place (Update), or produced fresh from
// the virtual +1 row above the band (Output).
package kernel

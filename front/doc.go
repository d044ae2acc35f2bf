// Package front implements the DP engine's per-column state (Front) and
// the ordered arena of fronts (Sequence) that grows forward during
// computation and is truncated/re-grown during traceback.
//
// A Front never destroys its vertical-delta words on re-computation at a
// larger cost bound — it overwrites them in place. Sequence addresses
// fronts by integer index (never by pointer), so traceback can walk
// backwards by decrementing an index with no cyclic references.
package front

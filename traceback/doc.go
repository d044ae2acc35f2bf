// Package traceback walks a computed front.Sequence backward from its
// final state to (0, 0), producing a cigar.CIGAR. It extends matches
// greedily, then falls back to the parent priority Match > Ins > Del >
// Sub, recomputing intermediate blocks on demand when the sequence was
// stored sparsely.
package traceback

// Package cigar defines the alignment path output type: an ordered
// run-length sequence over {Match, Sub, Ins, Del}. "Ins" consumes B only;
// "Del" consumes A only; "Match"/"Sub" consume both.
package cigar

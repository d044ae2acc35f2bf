// Package bitpack encodes byte sequences into per-character bit planes and
// defines the packed vertical/horizontal delta words used by the banded
// bit-parallel DP engine (kernel, front, jrange, blockdrv).
//
// 🧬 Why bit planes?
//
//	Myers' bit-parallel recurrence advances W=64 rows of the alignment
//	matrix per machine word using a constant number of bitwise operations.
//	Profile precomputes, for each of the four nucleotide symbols, which
//	rows of B equal that symbol — so the inner loop never re-scans B.
//
// ✨ Key types:
//   - Profile  — per-character bit planes for B; A is kept as raw bytes
//     and has no bit planes.
//   - V        — packed vertical delta word (one bit per row within a word).
//   - H        — packed horizontal delta, same (p, m) convention, one
//     column-boundary scalar per row of interest.
package bitpack

// Package heuristic defines the abstract lower-bound oracle consumed by
// jrange and align. The DP engine depends only on this capability set —
// h(pos), h_with_hint, is_seed_start_or_end, prune — and never inspects a
// heuristic's internals; concrete seed-based heuristics are an external
// collaborator and are not implemented here. Two trivial, exact-match admissible heuristics are provided so
// the Astar domain can be exercised without a real seed index:
// Zero (used for the non-Astar domains) and Gap (a length-difference
// lower bound).
//
// This package's heuristics are exact-match only: fixed ranges computed
// from them are never adjusted by a seed-potential margin. A heuristic
// meant for use with inexact (approximate) seed matches would need that
// margin; none is provided here.
package heuristic

// Package refdp is a small, deliberately unoptimized reference
// implementation of unit-cost Levenshtein distance with backtrace, used
// only by tests as the ground truth the bit-parallel engine is checked
// against.
package refdp

// Package blockdrv executes one column-block of the DP at a time: given
// a j_range already chosen by jrange, it allocates or reuses the next
// front's storage, runs the kernel over it, and maintains top_val/bot_val.
//
// Two execution plans are supported:
//
//	ComputeNextBlock - pushes a single consolidated front for the whole
//	                   block (cost-only queries, and sparse trace).
//	FillBlock        - pushes one front per column (dense trace), so
//	                   traceback can walk every intermediate column
//	                   without recomputation.
//
// When incremental doubling is enabled, ComputeNextBlock also maintains a
// per-column cache of the horizontal delta entering a reference row
// (j_h), letting a later, wider band-doubling iteration skip re-deriving
// that carry from row 0.
package blockdrv

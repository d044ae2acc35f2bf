// Package jrange computes, for a block of columns and an optional cost
// bound f_max, the row range worth processing (the "j_range") and the
// subrange of that range proven optimal under the bound (the
// "fixed_j_range").
//
// Four domains are supported, selected by Domain.Kind:
//
//	Full     - always the whole [0, m).
//	GapStart - a static band |i-j| <= f_max around the main diagonal.
//	GapGap   - a band around the diagonal that also accounts for the
//	           unavoidable gap cost to reach (n, m), admissible because
//	           |i-j| + |(n-i)-(m-j)| lower-bounds f(i,j) under unit cost
//	           (each term lower-bounds the forward/backward leg).
//	Astar    - heuristic-guided: the range starts at the previous
//	           front's fixed_j_range.lo and extends by walking forward
//	           while g(u) + extend_cost(u,v) + h(v) <= f_max.
package jrange

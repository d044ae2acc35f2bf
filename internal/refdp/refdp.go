package refdp

import "github.com/genomekit/nwalign/cigar"

// Distance computes the unit-cost edit distance between a and b via a
// plain O(n*m) DP table, with no bit-packing, banding or heuristics.
//
// Time complexity:   O(n*m)
// Memory complexity: O(n*m) (the full table is kept; Distance is a test
// oracle, not a production path, so no effort is spent trimming this to
// two rows the way dtw.DTW's NoMemory/TwoRows modes do).
func Distance(a, b []byte) int {
	g := table(a, b)
	return g[len(a)][len(b)]
}

// Align computes the unit-cost edit distance between a and b and the
// CIGAR describing one optimal alignment, using the same parent
// priority (Match > Ins > Del > Sub) the engine's traceback uses, so the
// two can be compared for exact CIGAR equality in tests.
func Align(a, b []byte) (int, cigar.CIGAR) {
	g := table(a, b)
	return g[len(a)][len(b)], backtrack(g, a, b)
}

// table fills the full (n+1)x(m+1) DP matrix: g[i][j] is the edit
// distance between a[:i] and b[:j].
func table(a, b []byte) [][]int {
	n, m := len(a), len(b)
	g := make([][]int, n+1)
	for i := range g {
		g[i] = make([]int, m+1)
	}

	// 1) Boundary rows/columns: aligning a prefix against an empty
	// string costs one op per character.
	for j := 0; j <= m; j++ {
		g[0][j] = j
	}
	for i := 1; i <= n; i++ {
		g[i][0] = i
	}

	// 2) Fill interior cells via the standard match/insert/delete
	// recurrence.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := g[i-1][j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			best := sub
			if v := g[i-1][j] + 1; v < best { // delete a[i-1]
				best = v
			}
			if v := g[i][j-1] + 1; v < best { // insert b[j-1]
				best = v
			}
			g[i][j] = best
		}
	}
	return g
}

// backtrack walks the table backward from (n, m) to (0, 0), applying the
// parent priority Match > Ins > Del > Sub at each step and merging
// consecutive runs of the same kind.
func backtrack(g [][]int, a, b []byte) cigar.CIGAR {
	i, j := len(a), len(b)
	var ops []cigar.Op

	push := func(op cigar.Op) {
		if n := len(ops); n > 0 && ops[n-1].Kind == op.Kind {
			ops[n-1].Len += op.Len
			return
		}
		ops = append(ops, op)
	}

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && g[i][j] == g[i-1][j-1]:
			push(cigar.Op{Kind: cigar.Match, Len: 1})
			i--
			j--
		case j > 0 && g[i][j] == g[i][j-1]+1:
			push(cigar.Op{Kind: cigar.Ins, Len: 1})
			j--
		case i > 0 && g[i][j] == g[i-1][j]+1:
			push(cigar.Op{Kind: cigar.Del, Len: 1})
			i--
		case i > 0 && j > 0 && g[i][j] == g[i-1][j-1]+1:
			push(cigar.Op{Kind: cigar.Sub, Len: 1})
			i--
			j--
		default:
			panic("refdp: backtrack: no valid parent step")
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return cigar.CIGAR(ops)
}

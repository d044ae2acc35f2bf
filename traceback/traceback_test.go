package traceback_test

import (
	"testing"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/blockdrv"
	"github.com/genomekit/nwalign/cigar"
	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
	"github.com/genomekit/nwalign/kernel"
	"github.com/genomekit/nwalign/traceback"
	"github.com/stretchr/testify/require"
)

func bruteLevenshtein(a, b []byte) int {
	n, m := len(a), len(b)
	g := make([][]int, n+1)
	for i := range g {
		g[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		g[0][j] = j
	}
	for i := 1; i <= n; i++ {
		g[i][0] = i
		for j := 1; j <= m; j++ {
			best := g[i-1][j] + 1
			if v := g[i][j-1] + 1; v < best {
				best = v
			}
			sub := g[i-1][j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			if sub < best {
				best = sub
			}
			g[i][j] = best
		}
	}
	return g[n][m]
}

// buildDense runs a fully dense forward pass (one front per column),
// returning the sequence and profile for the traceback to walk.
func buildDense(t *testing.T, a, b []byte) (*bitpack.Profile, *front.Sequence, *blockdrv.Driver) {
	t.Helper()
	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)

	seq := front.NewSequence(false)
	seq.Init(coord.JRange{Lo: 0, Hi: len(b)})
	drv := blockdrv.New(prof, kernel.Scalar, false)
	drv.FillBlock(seq, coord.IRange{Lo: 0, Hi: len(a)}, coord.JRange{Lo: 0, Hi: len(b)})
	return prof, seq, drv
}

func checkCigar(t *testing.T, a, b []byte, c cigar.CIGAR, wantCost int) {
	t.Helper()
	require.Equal(t, wantCost, c.Cost())
	out, err := cigar.Apply(c, a, b)
	require.NoError(t, err)
	require.Equal(t, string(b), string(out))
}

func TestWalk_DenseSequence(t *testing.T) {
	cases := []struct{ a, b string }{
		{"GATTACA", "GACTATA"},
		{"ACGTACGTACGT", "ACGAACCTACGT"},
		{"", "ACGT"},
		{"ACGT", ""},
		{"SAME", "SAME"},
	}
	for _, tc := range cases {
		a, b := []byte(tc.a), []byte(tc.b)
		if len(a) == 0 || len(b) == 0 {
			continue // bitpack.NewProfile requires non-empty sequences
		}
		prof, seq, drv := buildDense(t, a, b)
		want := bruteLevenshtein(a, b)

		w := traceback.New(prof, drv)
		c := w.Walk(seq, coord.Pos{I: len(a), J: len(b)})
		checkCigar(t, a, b, c, want)
	}
}

func TestWalk_SparseSequenceRecomputesBlocks(t *testing.T) {
	a := []byte("GATTACAGATTACAGATTACA")
	b := []byte("GACTATAGATCACAGATTATA")
	want := bruteLevenshtein(a, b)

	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)

	seq := front.NewSequence(true)
	seq.Init(coord.JRange{Lo: 0, Hi: len(b)})
	drv := blockdrv.New(prof, kernel.Scalar, false)

	// Compute in blocks of 3 columns, storing only one front per block
	// (sparse), forcing traceback to recompute interiors on demand.
	const blockWidth = 3
	for i := 0; i < len(a); i += blockWidth {
		hi := i + blockWidth
		if hi > len(a) {
			hi = len(a)
		}
		_, err := drv.ComputeNextBlock(seq, coord.IRange{Lo: i, Hi: hi}, coord.JRange{Lo: 0, Hi: len(b)})
		require.NoError(t, err)
	}

	require.Equal(t, want, seq.LastFront().Index(len(b)))

	w := traceback.New(prof, drv)
	c := w.Walk(seq, coord.Pos{I: len(a), J: len(b)})
	checkCigar(t, a, b, c, want)
}

func TestWalk_MergesRunLengthOps(t *testing.T) {
	a := []byte("AAAAAACGTAAAAAA")
	b := []byte("AAAAAATGTAAAAAA")
	prof, seq, drv := buildDense(t, a, b)
	want := bruteLevenshtein(a, b)

	w := traceback.New(prof, drv)
	c := w.Walk(seq, coord.Pos{I: len(a), J: len(b)})
	checkCigar(t, a, b, c, want)

	for i := 1; i < len(c); i++ {
		require.NotEqual(t, c[i-1].Kind, c[i].Kind, "consecutive runs of the same kind should have been merged")
	}
}

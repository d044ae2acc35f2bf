package blockdrv_test

import (
	"math/rand/v2"
	"testing"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/blockdrv"
	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
	"github.com/genomekit/nwalign/kernel"
	"github.com/stretchr/testify/require"
)

func bruteLevenshtein(a, b []byte) [][]int {
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
	return g
}

func randomSeq(rng *rand.Rand, n int) []byte {
	alphabet := []byte("ACGT")
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return s
}

func TestComputeNextBlock_MatchesBruteForce(t *testing.T) {
	a := []byte("GATTACAGATTACA")
	b := []byte("GACTATAGATCACA")
	oracle := bruteLevenshtein(a, b)

	for _, mode := range []kernel.Mode{kernel.Scalar, kernel.SIMD2} {
		prof, err := bitpack.NewProfile(a, b)
		require.NoError(t, err)

		seq := front.NewSequence(true)
		seq.Init(coord.JRange{Lo: 0, Hi: len(b)})

		drv := blockdrv.New(prof, mode, false)
		for i := 0; i < len(a); i++ {
			_, err := drv.ComputeNextBlock(seq, coord.IRange{Lo: i, Hi: i + 1}, coord.JRange{Lo: 0, Hi: len(b)})
			require.NoError(t, err)
		}

		last := seq.LastFront()
		require.NoError(t, last.CheckInvariant())
		for j := 0; j <= len(b); j++ {
			require.Equal(t, oracle[len(a)][j], last.Index(j), "mode=%v j=%d", mode, j)
		}
	}
}

// Three widening passes over the same sequence/driver exercise the H
// cache: the first seeds nothing, the second takes the two-way
// (output/input) split, the third the three-way split that carries the
// old fixed interior verbatim.
func TestComputeNextBlock_IncrementalDoublingMatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	a := randomSeq(rng, 180)
	b := randomSeq(rng, 200)
	oracle := bruteLevenshtein(a, b)

	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)
	seq := front.NewSequence(true)
	drv := blockdrv.New(prof, kernel.Scalar, true)

	for pass, hi := range []int{130, 200, 200} {
		jr := coord.JRange{Lo: 0, Hi: hi}
		seq.Init(jr)
		for i := 0; i < len(a); i++ {
			_, err := drv.ComputeNextBlock(seq, coord.IRange{Lo: i, Hi: i + 1}, jr)
			require.NoError(t, err, "pass %d col %d", pass, i)
			seq.SetLastFrontFixedJRange(seq.LastFront().JRange)
			require.NoError(t, seq.LastFront().CheckInvariant(), "pass %d col %d", pass, i)
		}
	}

	last := seq.LastFront()
	for j := 0; j <= len(b); j++ {
		require.Equal(t, oracle[len(a)][j], last.Index(j), "incremental j=%d", j)
	}
}

func TestComputeNextBlock_JHOnlyGrows(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	a := randomSeq(rng, 64)
	b := randomSeq(rng, 260)

	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)
	seq := front.NewSequence(true)
	drv := blockdrv.New(prof, kernel.Scalar, true)

	prevJH := make(map[int]int)
	for _, hi := range []int{70, 140, 260} {
		jr := coord.JRange{Lo: 0, Hi: hi}
		seq.Init(jr)
		for i := 0; i < len(a); i++ {
			_, err := drv.ComputeNextBlock(seq, coord.IRange{Lo: i, Hi: i + 1}, jr)
			require.NoError(t, err)
			seq.SetLastFrontFixedJRange(seq.LastFront().JRange)

			f := seq.LastFront()
			if f.JH != nil {
				if old, ok := prevJH[f.I]; ok {
					require.GreaterOrEqual(t, *f.JH, old, "column %d", f.I)
				}
				prevJH[f.I] = *f.JH
			}
		}
	}
}

func TestFillBlock_PushesOneFrontPerColumn(t *testing.T) {
	a := []byte("ACGTACGT")
	b := []byte("ACGAACGT")
	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)

	seq := front.NewSequence(false)
	seq.Init(coord.JRange{Lo: 0, Hi: len(b)})
	drv := blockdrv.New(prof, kernel.Scalar, false)
	drv.FillBlock(seq, coord.IRange{Lo: 0, Hi: len(a)}, coord.JRange{Lo: 0, Hi: len(b)})

	require.Equal(t, len(a), seq.LastIndex())
	for i := 1; i <= len(a); i++ {
		f := seq.FrontAt(i)
		require.Equal(t, i, f.I)
		require.NoError(t, f.CheckInvariant())
	}

	oracle := bruteLevenshtein(a, b)
	require.Equal(t, oracle[len(a)][len(b)], seq.LastFront().Index(len(b)))
}

// Every intermediate front pushed by FillBlock must agree with the DP
// table, not just the final one.
func TestFillBlock_IntermediateFrontsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	a := randomSeq(rng, 40)
	b := randomSeq(rng, 150)
	oracle := bruteLevenshtein(a, b)

	prof, err := bitpack.NewProfile(a, b)
	require.NoError(t, err)
	seq := front.NewSequence(false)
	seq.Init(coord.JRange{Lo: 0, Hi: len(b)})
	drv := blockdrv.New(prof, kernel.Scalar, false)
	drv.FillBlock(seq, coord.IRange{Lo: 0, Hi: len(a)}, coord.JRange{Lo: 0, Hi: len(b)})

	for i := 1; i <= len(a); i++ {
		f := seq.FrontAt(i)
		require.NoError(t, f.CheckInvariant())
		for j := 0; j <= len(b); j++ {
			require.Equal(t, oracle[i][j], f.Index(j), "i=%d j=%d", i, j)
		}
	}
}

package heuristic_test

import (
	"math/rand/v2"
	"testing"

	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/heuristic"
	"github.com/genomekit/nwalign/internal/refdp"
	"github.com/stretchr/testify/assert"
)

func TestZero_AlwaysZero(t *testing.T) {
	var h heuristic.Capability = heuristic.Zero{}
	assert.Equal(t, 0, h.H(coord.Pos{I: 3, J: 7}))
	cost, hint := h.HWithHint(coord.Pos{I: 1, J: 1}, nil)
	assert.Equal(t, 0, cost)
	assert.Nil(t, hint)
	assert.False(t, h.IsSeedStartOrEnd(coord.Pos{}))
	h.Prune(coord.Pos{}, nil) // no-op by contract
}

func TestGap_KnownValues(t *testing.T) {
	h := heuristic.Gap{N: 10, M: 14}
	assert.Equal(t, 4, h.H(coord.Pos{I: 0, J: 0}))
	assert.Equal(t, 0, h.H(coord.Pos{I: 10, J: 14}))
	assert.Equal(t, 2, h.H(coord.Pos{I: 4, J: 10}))
	assert.Equal(t, 3, h.H(coord.Pos{I: 7, J: 8}))
}

// Gap must never overestimate the true remaining edit distance —
// admissibility is what keeps fixed ranges sound.
func TestGap_IsAdmissible(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 34))
	alphabet := []byte("ACGT")
	a := make([]byte, 30)
	b := make([]byte, 40)
	for i := range a {
		a[i] = alphabet[rng.IntN(len(alphabet))]
	}
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}

	h := heuristic.Gap{N: len(a), M: len(b)}
	for i := 0; i <= len(a); i++ {
		for j := 0; j <= len(b); j++ {
			remaining := refdp.Distance(a[i:], b[j:])
			assert.LessOrEqual(t, h.H(coord.Pos{I: i, J: j}), remaining, "i=%d j=%d", i, j)
		}
	}
}

// Column-wise consistency with slope 1: moving one row down changes the
// bound by at most 1. The sparse-h stride walks rely on this.
func TestGap_ColumnwiseLipschitz(t *testing.T) {
	h := heuristic.Gap{N: 50, M: 70}
	for i := 0; i <= 50; i += 7 {
		for j := 0; j < 70; j++ {
			d := h.H(coord.Pos{I: i, J: j + 1}) - h.H(coord.Pos{I: i, J: j})
			assert.LessOrEqual(t, d, 1)
			assert.GreaterOrEqual(t, d, -1)
		}
	}
}

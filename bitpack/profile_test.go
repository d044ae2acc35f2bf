package bitpack_test

import (
	"testing"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV_Value(t *testing.T) {
	assert.Equal(t, bitpack.W, bitpack.OneV().Value())
	assert.Equal(t, 0, bitpack.V{}.Value())

	v := bitpack.V{P: 0b1011, M: 0b0100}
	assert.Equal(t, 2, v.Value())
}

func TestV_PrefixSuffix(t *testing.T) {
	v := bitpack.V{P: 0b1011, M: 0b0100}
	assert.Equal(t, 0, v.ValueOfPrefix(0))
	assert.Equal(t, 1, v.ValueOfPrefix(1))
	assert.Equal(t, 2, v.ValueOfPrefix(2))
	assert.Equal(t, 1, v.ValueOfPrefix(3))
	assert.Equal(t, 2, v.ValueOfPrefix(4))
	assert.Equal(t, v.Value(), v.ValueOfPrefix(bitpack.W))

	assert.Equal(t, 0, v.ValueOfSuffix(0))
	assert.Equal(t, v.Value(), v.ValueOfSuffix(bitpack.W))
	// Prefix k + suffix W-k partition the word.
	for k := 0; k <= bitpack.W; k++ {
		assert.Equal(t, v.Value(), v.ValueOfPrefix(k)+v.ValueOfSuffix(bitpack.W-k), "k=%d", k)
	}
}

func TestV_GetDiff(t *testing.T) {
	v := bitpack.V{P: 0b01, M: 0b10}
	d, ok := v.GetDiff(0)
	require.True(t, ok)
	assert.Equal(t, 1, d)
	d, ok = v.GetDiff(1)
	require.True(t, ok)
	assert.Equal(t, -1, d)
	d, ok = v.GetDiff(2)
	require.True(t, ok)
	assert.Equal(t, 0, d)

	_, ok = v.GetDiff(-1)
	assert.False(t, ok)
	_, ok = v.GetDiff(bitpack.W)
	assert.False(t, ok)
}

func TestH_Value(t *testing.T) {
	assert.Equal(t, 1, bitpack.OneH().Value())
	assert.Equal(t, 0, bitpack.H{}.Value())
	assert.Equal(t, -1, bitpack.H{M: true}.Value())
}

func TestNewProfile_RejectsEmptySequences(t *testing.T) {
	_, err := bitpack.NewProfile(nil, []byte("ACGT"))
	assert.ErrorIs(t, err, bitpack.ErrEmptySequence)
	_, err = bitpack.NewProfile([]byte("ACGT"), nil)
	assert.ErrorIs(t, err, bitpack.ErrEmptySequence)
}

func TestProfile_EqNucleotidePlanes(t *testing.T) {
	b := []byte("ACGTAC")
	prof, err := bitpack.NewProfile([]byte("A"), b)
	require.NoError(t, err)

	require.Equal(t, 1, prof.BWords())
	for _, sym := range []byte("ACGT") {
		mask := prof.Eq(sym, 0)
		for j, c := range b {
			bit := mask>>uint(j)&1 == 1
			assert.Equal(t, c == sym, bit, "sym=%c j=%d", sym, j)
		}
		// Padding rows beyond len(B) never match.
		for j := len(b); j < bitpack.W; j++ {
			assert.Zero(t, mask>>uint(j)&1, "sym=%c padding j=%d", sym, j)
		}
	}
	assert.Zero(t, prof.Eq('A', -1))
	assert.Zero(t, prof.Eq('A', 1))
}

func TestProfile_EqGenericFallback(t *testing.T) {
	// Bytes outside the nucleotide alphabet take the per-byte
	// comparison path and must produce the same kind of mask.
	b := []byte("kitten")
	prof, err := bitpack.NewProfile([]byte("sitting"), b)
	require.NoError(t, err)

	mask := prof.Eq('t', 0)
	for j, c := range b {
		bit := mask>>uint(j)&1 == 1
		assert.Equal(t, c == 't', bit, "j=%d", j)
	}
}

func TestProfile_IsMatch(t *testing.T) {
	prof, err := bitpack.NewProfile([]byte("ACGT"), []byte("AGGT"))
	require.NoError(t, err)

	assert.True(t, prof.IsMatch(0, 0))
	assert.False(t, prof.IsMatch(1, 1))
	assert.True(t, prof.IsMatch(2, 2))
	assert.False(t, prof.IsMatch(-1, 0))
	assert.False(t, prof.IsMatch(0, 4))
}

package bitpack

// nucleotides is the small fixed alphabet given a fast bit-plane path.
// Any byte outside this set still works correctly, it just takes the
// generic per-row comparison fallback in Eq instead of a plane lookup.
var nucleotides = [4]byte{'A', 'C', 'G', 'T'}

// Profile holds the raw sequences plus, for B, one bit plane per
// nucleotide symbol: bit i of planes[sym][k] is set iff B[k*W+i] == sym.
type Profile struct {
	A []byte
	B []byte

	bWords int
	planes map[byte][]uint64
}

// NewProfile builds bit planes for B (indexed by nucleotide symbol and
// word) and retains A and B for direct byte comparisons. Both sequences
// must be non-empty.
func NewProfile(a, b []byte) (*Profile, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}

	bWords := (len(b) + W - 1) / W
	planes := make(map[byte][]uint64, len(nucleotides))
	for _, sym := range nucleotides {
		planes[sym] = make([]uint64, bWords)
	}

	for j, c := range b {
		if plane, ok := planes[c]; ok {
			plane[j/W] |= uint64(1) << uint(j%W)
		}
	}

	return &Profile{A: a, B: b, bWords: bWords, planes: planes}, nil
}

// BWords returns the number of W-wide words needed to cover all of B.
func (p *Profile) BWords() int { return p.bWords }

// Eq returns a bitmask over word index wordIdx (rows [wordIdx*W,
// wordIdx*W+W)) where bit i is set iff B[wordIdx*W+i] == ch. Rows beyond
// len(B) are always unset (the implicit padding never matches anything in
// A, matching the "virtual extension below the band" convention used by
// Front.Index).
func (p *Profile) Eq(ch byte, wordIdx int) uint64 {
	if wordIdx < 0 || wordIdx >= p.bWords {
		return 0
	}
	if plane, ok := p.planes[ch]; ok {
		return plane[wordIdx]
	}
	// Generic fallback for bytes outside the fast nucleotide alphabet:
	// compare directly against B for this word's rows.
	var mask uint64
	lo := wordIdx * W
	hi := lo + W
	if hi > len(p.B) {
		hi = len(p.B)
	}
	for j := lo; j < hi; j++ {
		if p.B[j] == ch {
			mask |= uint64(1) << uint(j-lo)
		}
	}
	return mask
}

// IsMatch reports whether A[i] == B[j], the predicate used by greedy
// match extension during traceback.
func (p *Profile) IsMatch(i, j int) bool {
	if i < 0 || i >= len(p.A) || j < 0 || j >= len(p.B) {
		return false
	}
	return p.A[i] == p.B[j]
}

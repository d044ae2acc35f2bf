package front

import (
	"fmt"

	"github.com/genomekit/nwalign/coord"
)

// Sequence is the ordered, index-addressable arena of fronts for
// consecutive columns. It grows forward during computation and is
// truncated and re-grown during traceback. Indices are integer handles —
// traceback walks backward by decrementing LastIndex(), never by pointer
// so no cyclic references can form.
type Sequence struct {
	fronts   []*Front
	lastIdx  int
	iRange   coord.IRange
	sparse   bool
	capacity int
}

// Option configures a Sequence at construction time.
type Option func(*Sequence)

// WithCapacityHint pre-sizes the arena for the expected number of
// fronts (columns/blockWidth + 1 for sparse storage, columns + 1 for
// dense). It panics on a negative hint.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic("front: WithCapacityHint: hint must be non-negative")
	}
	return func(s *Sequence) { s.capacity = n }
}

// NewSequence constructs an empty front sequence. sparse controls whether
// the caller intends to store only one front per block (true) or one per
// column (false) — Sequence itself just holds whatever is pushed, but
// records the flag for diagnostics/assertions.
func NewSequence(sparse bool, opts ...Option) *Sequence {
	s := &Sequence{iRange: coord.IRange{Lo: -1, Hi: 0}, sparse: sparse}
	for _, opt := range opts {
		opt(s)
	}
	if s.capacity > 0 {
		s.fronts = make([]*Front, 0, s.capacity)
	}
	return s
}

// Init (re)creates the first column's front, unioning with any existing
// first front's j_range so ranges only grow across band-doubling
// iterations.
func (s *Sequence) Init(jRange coord.JRange) {
	s.lastIdx = 0
	s.iRange = coord.IRange{Lo: -1, Hi: 0}

	if len(s.fronts) > 0 && s.fronts[0] != nil {
		jRange = s.fronts[0].JRange.Union(jRange)
	}
	fc := NewFirstColumn(jRange)
	if len(s.fronts) == 0 {
		s.fronts = append(s.fronts, fc)
	} else {
		s.fronts[0] = fc
	}
}

// LastFront returns the most recently finished front.
func (s *Sequence) LastFront() *Front { return s.fronts[s.lastIdx] }

// LastIndex returns the arena index of the most recently finished front.
func (s *Sequence) LastIndex() int { return s.lastIdx }

// IRange returns the column range computed so far.
func (s *Sequence) IRange() coord.IRange { return s.iRange }

// FrontAt returns the front stored at the given arena index.
func (s *Sequence) FrontAt(idx int) *Front { return s.fronts[idx] }

// Len returns the number of fronts currently retained in the arena.
func (s *Sequence) Len() int { return len(s.fronts) }

// Sparse reports whether this sequence was constructed for sparse
// (one-front-per-block) storage.
func (s *Sequence) Sparse() bool { return s.sparse }

// NextSlot returns the Front that will become the new last front once
// CommitNext is called, creating it if necessary. Callers (blockdrv) fill
// in its fields in place before committing — this is how the engine
// reuses front storage across band-doubling iterations instead of
// reallocating.
func (s *Sequence) NextSlot() *Front {
	idx := s.lastIdx + 1
	if idx == len(s.fronts) {
		s.fronts = append(s.fronts, &Front{})
	}
	return s.fronts[idx]
}

// CommitNext advances LastIndex/IRange to the front most recently
// returned by NextSlot, which must be for column i.
func (s *Sequence) CommitNext(i int) {
	s.lastIdx++
	if s.fronts[s.lastIdx].I != i {
		panic(fmt.Sprintf("front: committed front column mismatch: got %d want %d", s.fronts[s.lastIdx].I, i))
	}
	s.iRange.Hi = i
}

// PopLastFront walks one step backward during traceback: it asserts the
// arena's recorded i_range matches the last front's column, then steps
// back by one index.
func (s *Sequence) PopLastFront() {
	if s.iRange.Hi != s.fronts[s.lastIdx].I {
		panic(fmt.Sprintf("front: PopLastFront: i_range.Hi=%d != last front column %d", s.iRange.Hi, s.fronts[s.lastIdx].I))
	}
	s.lastIdx--
	if s.lastIdx < 0 {
		s.iRange.Hi = -1
		return
	}
	s.iRange.Hi = s.fronts[s.lastIdx].I
}

// SetLastFrontFixedJRange records the fixed subrange computed for the
// most recent front, unioning with any fixed range the reused arena slot
// already carried: fixed ranges only grow across band-doubling
// iterations. An empty range is a legal value — it signals "no feasible
// path with this bound" to callers.
func (s *Sequence) SetLastFrontFixedJRange(jr coord.JRange) {
	f := s.fronts[s.lastIdx]
	if f.FixedJRange != nil {
		jr = f.FixedJRange.Union(jr)
	}
	f.FixedJRange = &jr
}

// TruncateTo drops every front after index idx, used when traceback needs
// to recompute a block densely and overwrite the sparse fronts it
// replaces.
func (s *Sequence) TruncateTo(idx int) {
	s.lastIdx = idx
	s.iRange.Hi = s.fronts[idx].I
}

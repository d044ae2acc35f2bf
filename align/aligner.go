package align

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/blockdrv"
	"github.com/genomekit/nwalign/cigar"
	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
	"github.com/genomekit/nwalign/jrange"
	"github.com/genomekit/nwalign/traceback"
)

// Stats is a snapshot of bookkeeping counters accumulated by the most
// recent Align/Cost call, useful for verifying how much work the banded
// search actually did.
type Stats struct {
	// Iterations is the number of band-doubling iterations the last call
	// performed (always 1 for Strategy=None).
	Iterations int
	// BlocksComputed is the total number of block invocations across all
	// iterations.
	BlocksComputed int
	// ComputedRows is the sum of j_range.Len() across all blocks and
	// iterations: the row ranges as the j-range computer returned them,
	// before rounding to whole words or widening to an earlier
	// iteration's range. Rows recomputed by a later iteration count again.
	ComputedRows int
}

// Aligner computes unit-cost edit distance (and, optionally, a CIGAR
// alignment) between two byte sequences using a banded block-based
// bit-parallel DP engine driven by exponential band doubling.
//
// An Aligner holds no package-level mutable state; each instance owns its
// own configuration only, so multiple Aligners may run concurrently on
// separate goroutines with no shared state.
type Aligner struct {
	opts  Options
	stats Stats
}

// New constructs an Aligner from the given options, applied on top of
// DefaultOptions. It returns an error (never panics) for an invalid block
// width and for cross-field combinations that only Validate can detect;
// WithBandDoubling panics immediately on a self-evidently invalid
// argument, mirroring dijkstra.WithMaxDistance's convention.
func New(opts ...Option) (*Aligner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{opts: o}, nil
}

// Stats returns a snapshot of the counters accumulated by the most recent
// Align or Cost call. It is not safe to call concurrently with another
// Align/Cost on the same Aligner.
func (a *Aligner) Stats() Stats { return a.stats }

// Cost computes the unit-cost edit distance between A and B without
// reconstructing a CIGAR.
func (a *Aligner) Cost(ctx context.Context, A, B []byte) (int, error) {
	cost, _, err := a.run(ctx, A, B, false)
	return cost, err
}

// Align computes the unit-cost edit distance between A and B. The
// returned CIGAR is reconstructed only if the Aligner was built with
// WithTrace; otherwise it is nil.
func (a *Aligner) Align(ctx context.Context, A, B []byte) (int, cigar.CIGAR, error) {
	return a.run(ctx, A, B, a.opts.Trace)
}

func (a *Aligner) run(ctx context.Context, A, B []byte, trace bool) (int, cigar.CIGAR, error) {
	a.stats = Stats{}

	if len(A) == 0 && len(B) == 0 {
		if !trace {
			return 0, nil, nil
		}
		return 0, cigar.CIGAR{}, nil
	}
	if len(A) == 0 {
		if !trace {
			return len(B), nil, nil
		}
		return len(B), cigar.CIGAR{{Kind: cigar.Ins, Len: len(B)}}, nil
	}
	if len(B) == 0 {
		if !trace {
			return len(A), nil, nil
		}
		return len(A), cigar.CIGAR{{Kind: cigar.Del, Len: len(A)}}, nil
	}

	prof, err := bitpack.NewProfile(A, B)
	if err != nil {
		return 0, nil, err
	}

	domain := jrange.Domain{Kind: a.opts.Domain, H: a.opts.H}
	computer := &jrange.Computer{
		Domain:       domain,
		N:            len(A),
		M:            len(B),
		BlockWidth:   a.opts.BlockWidth,
		SparseHCalls: a.opts.SparseHCalls,
	}
	// The H cache only pays off (and is only sound to reuse) with the
	// fixed ranges the Astar domain maintains.
	incremental := a.opts.IncrementalDoubling && a.opts.Domain == jrange.Astar
	drv := blockdrv.New(prof, a.opts.Mode, incremental)

	hint := len(A) + 1
	if a.opts.Sparse {
		hint = len(A)/a.opts.BlockWidth + 2
	}
	seq := front.NewSequence(a.opts.Sparse, front.WithCapacityHint(hint))

	logger := a.opts.Logger

	if a.opts.Strategy.Kind == None {
		found, err := a.runOnce(ctx, computer, drv, seq, nil, logger)
		if err != nil {
			return 0, nil, err
		}
		a.stats.Iterations = 1
		if !found {
			return 0, nil, fmt.Errorf("align: no feasible path (Strategy=None ran unbounded but the engine reported no coverage)")
		}
		cost := seq.LastFront().Index(len(B))
		return a.finish(prof, drv, seq, cost, trace)
	}

	s := a.opts.Strategy.Start
	if ds := a.domainStart(len(A), len(B)); ds > s {
		s = ds
	}
	for iter := 1; ; iter++ {
		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		default:
		}

		fMax := s
		found, err := a.runOnce(ctx, computer, drv, seq, &fMax, logger)
		if err != nil {
			return 0, nil, err
		}
		a.stats.Iterations = iter

		logger.Debug("nwalign: band-doubling iteration", "bound", s, "found", found)

		if found {
			cost := seq.LastFront().Index(len(B))
			if cost <= s {
				return a.finish(prof, drv, seq, cost, trace)
			}
		}

		next := int(math.Ceil(a.opts.Strategy.Factor * float64(s)))
		if next < s+a.opts.BlockWidth {
			next = s + a.opts.BlockWidth
		}
		s = next
	}
}

// domainStart derives the initial bound from the domain:
// zero for Full/GapStart, the unavoidable gap cost for GapGap, and
// h(0, 0) for Astar. Each is an admissible lower bound on the true cost,
// so starting there skips iterations that cannot succeed.
func (a *Aligner) domainStart(n, m int) int {
	switch a.opts.Domain {
	case jrange.GapGap:
		d := m - n
		if d < 0 {
			d = -d
		}
		return d
	case jrange.Astar:
		return a.opts.H.H(coord.Pos{I: 0, J: 0})
	default:
		return 0
	}
}

// finish optionally reconstructs the CIGAR for a completed forward pass.
func (a *Aligner) finish(prof *bitpack.Profile, drv *blockdrv.Driver, seq *front.Sequence, cost int, trace bool) (int, cigar.CIGAR, error) {
	if !trace {
		return cost, nil, nil
	}
	w := traceback.New(prof, drv)
	last := seq.LastFront()
	path := w.Walk(seq, coord.Pos{I: last.I, J: len(prof.B)})
	return cost, path, nil
}

// runOnce drives one full left-to-right pass over A in blocks of
// a.opts.BlockWidth columns, given an optional cost bound. It returns
// false if some block's j_range came back empty (no feasible path within
// fMax).
func (a *Aligner) runOnce(ctx context.Context, computer *jrange.Computer, drv *blockdrv.Driver, seq *front.Sequence, fMax *int, logger *slog.Logger) (bool, error) {
	initial := computer.JRange(coord.IRange{Lo: -1, Hi: 0}, fMax, nil)
	if initial.IsEmpty() {
		return false, nil
	}
	seq.Init(initial)

	n := computer.N
	for lo := 0; lo < n; lo += a.opts.BlockWidth {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		hi := lo + a.opts.BlockWidth
		if hi > n {
			hi = n
		}
		iRange := coord.IRange{Lo: lo, Hi: hi}

		prev := seq.LastFront()
		jRange := computer.JRange(iRange, fMax, prev)
		if jRange.IsEmpty() {
			return false, nil
		}

		a.stats.BlocksComputed++
		a.stats.ComputedRows += jRange.Len()

		if a.opts.Sparse {
			if _, err := drv.ComputeNextBlock(seq, iRange, jRange); err != nil {
				return false, err
			}
		} else {
			drv.FillBlock(seq, iRange, jRange)
		}

		if fixed, ok := computer.FixedJRange(seq.LastFront(), fMax); ok {
			seq.SetLastFrontFixedJRange(fixed)
		}

		logger.Debug("nwalign: block computed", "i_range", iRange, "j_range", jRange, "sparse", a.opts.Sparse)
	}
	return true, nil
}

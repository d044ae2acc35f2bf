package align

import (
	"errors"
	"log/slog"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/heuristic"
	"github.com/genomekit/nwalign/jrange"
	"github.com/genomekit/nwalign/kernel"
)

// Sentinel errors for Aligner construction.
var (
	// ErrInvalidBlockWidth indicates BlockWidth was zero, negative, or
	// not a multiple of bitpack.W.
	ErrInvalidBlockWidth = errors.New("align: BlockWidth must be a positive multiple of W")

	// ErrDomainStrategyMismatch indicates Strategy=None was requested
	// with a Domain other than Full — without band doubling there is no
	// f_max to narrow any other domain's j_range against.
	ErrDomainStrategyMismatch = errors.New("align: Strategy=None requires Domain=Full")

	// ErrInvalidGrowthFactor indicates a BandDoubling factor <= 1, which
	// would not grow f_max between iterations.
	ErrInvalidGrowthFactor = errors.New("align: BandDoubling factor must be > 1")

	// ErrInvalidStart indicates a BandDoubling start bound < 0.
	ErrInvalidStart = errors.New("align: BandDoubling start must be non-negative")
)

// StrategyKind selects the band-doubling driver.
type StrategyKind int

const (
	// None runs the engine once with no cost bound (Domain must be Full).
	None StrategyKind = iota
	// BandDoubling repeatedly widens f_max by Factor until a path of
	// cost <= f_max is found.
	BandDoubling
)

// Strategy configures the C8 driver loop.
type Strategy struct {
	Kind StrategyKind

	// Start is the initial f_max for BandDoubling. Ignored for None.
	Start int

	// Factor is the geometric growth applied each iteration:
	// s <- max(ceil(factor*s), s+BlockWidth). Ignored for None.
	Factor float64
}

// DefaultBlockWidth is the default number of columns per kernel
// invocation; any positive multiple of bitpack.W works.
const DefaultBlockWidth = 128

// DefaultGrowthFactor is the default geometric growth of the bound
// between band-doubling iterations.
const DefaultGrowthFactor = 2.0

// Options configures an Aligner. See New and the With* constructors.
type Options struct {
	Domain   jrange.Kind
	H        heuristic.Capability
	Strategy Strategy

	BlockWidth          int
	Sparse              bool
	Mode                kernel.Mode
	IncrementalDoubling bool
	SparseHCalls        bool
	Trace               bool

	Logger *slog.Logger
}

// Option is a functional setter for Options, in the same style as
// dijkstra.Option: WithBandDoubling panics on nonsensical arguments, and
// Options.Validate() catches an invalid block width and the combinations
// that depend on more than one field.
type Option func(*Options)

// DefaultOptions returns the engine's default configuration: GapGap
// domain (a cheap admissible band needing no heuristic),
// BandDoubling{start:0, factor:2}, dense trace off, sparse fronts,
// incremental doubling and sparse-h calls on, default block width and
// kernel mode.
func DefaultOptions() Options {
	return Options{
		Domain: jrange.GapGap,
		H:      heuristic.Zero{},
		Strategy: Strategy{
			Kind:   BandDoubling,
			Start:  0,
			Factor: DefaultGrowthFactor,
		},
		BlockWidth:          DefaultBlockWidth,
		Sparse:              true,
		Mode:                kernel.DefaultMode(),
		IncrementalDoubling: true,
		SparseHCalls:        true,
		Trace:               false,
		Logger:              slog.Default(),
	}
}

// WithDomain selects the j_range strategy. h is only consulted when kind
// is jrange.Astar; pass nil otherwise (Zero{} is substituted).
func WithDomain(kind jrange.Kind, h heuristic.Capability) Option {
	return func(o *Options) {
		o.Domain = kind
		if h == nil {
			h = heuristic.Zero{}
		}
		o.H = h
	}
}

// WithNoDoubling disables the band-doubling driver: the engine runs once
// with no cost bound. Only the Full domain is meaningful without a bound,
// so this also resets the domain to Full; combining it with a later
// WithDomain other than Full is rejected by Validate.
func WithNoDoubling() Option {
	return func(o *Options) {
		o.Strategy = Strategy{Kind: None}
		o.Domain = jrange.Full
		o.H = heuristic.Zero{}
	}
}

// WithBandDoubling enables the exponential search driver with the given
// start bound and geometric growth factor.
func WithBandDoubling(start int, factor float64) Option {
	if start < 0 {
		panic(ErrInvalidStart.Error())
	}
	if factor <= 1 {
		panic(ErrInvalidGrowthFactor.Error())
	}
	return func(o *Options) {
		o.Strategy = Strategy{Kind: BandDoubling, Start: start, Factor: factor}
	}
}

// WithBlockWidth sets the number of columns processed per kernel
// invocation. Must be a positive multiple of bitpack.W.
func WithBlockWidth(n int) Option {
	return func(o *Options) { o.BlockWidth = n }
}

// WithDenseTrace stores one front per column instead of one per block,
// trading memory for avoiding on-demand recomputation during traceback.
func WithDenseTrace() Option {
	return func(o *Options) { o.Sparse = false }
}

// WithMode overrides the kernel execution mode (Scalar/SIMD2). Defaults
// to kernel.DefaultMode()'s hardware-feature detection.
func WithMode(m kernel.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithNoIncrementalDoubling disables the per-column H cache reused across
// band-doubling iterations, always recomputing each block over its whole
// row range.
func WithNoIncrementalDoubling() Option {
	return func(o *Options) { o.IncrementalDoubling = false }
}

// WithNoSparseHCalls disables the exponential-stride walk in jrange's
// Astar domain, querying h at every row.
func WithNoSparseHCalls() Option {
	return func(o *Options) { o.SparseHCalls = false }
}

// WithTrace enables CIGAR reconstruction during Align. Without it, Align
// still returns the correct cost but a nil CIGAR; Cost never needs it.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithLogger overrides the *slog.Logger used for per-iteration and
// per-block diagnostics. A nil logger is replaced by slog.Default() in
// Validate so callers don't need to special-case it.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Validate checks the block width and the cross-field invariants that a
// single With* constructor cannot enforce alone, and fills in any
// zero-value fields left over from
// a caller building Options by hand.
func (o *Options) Validate() error {
	if o.BlockWidth <= 0 || o.BlockWidth%bitpack.W != 0 {
		return ErrInvalidBlockWidth
	}
	if o.Strategy.Kind == None && o.Domain != jrange.Full {
		return ErrDomainStrategyMismatch
	}
	if o.H == nil {
		o.H = heuristic.Zero{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}

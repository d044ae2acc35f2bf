package kernel

// HMode selects how the kernel treats the caller-supplied horizontal delta
// slice for one block invocation. It is a closed four-case variant; the
// kernel never branches on anything but this enum plus the
// scalar-vs-SIMD2 Mode flag.
type HMode int

const (
	// HNone discards H entirely: it is scratch, initialized to +1 and
	// thrown away. Used when no later block needs to resume from this H.
	HNone HMode = iota
	// HInput reads H but must not mutate the caller's slice (the kernel
	// copies it internally before use).
	HInput
	// HUpdate reads and writes H in place — used when extending a
	// previously computed block vertically over identical columns.
	HUpdate
	// HOutput initializes H to +1 per column (the "virtual row above the
	// top" convention) and fills it in as columns are processed.
	HOutput
)

// String implements fmt.Stringer for diagnostic logging.
func (m HMode) String() string {
	switch m {
	case HNone:
		return "None"
	case HInput:
		return "Input"
	case HUpdate:
		return "Update"
	case HOutput:
		return "Output"
	default:
		return "HMode(?)"
	}
}

// Mode selects the kernel's execution strategy.
type Mode int

const (
	// Scalar processes one row-word at a time; H is carried in locals.
	Scalar Mode = iota
	// SIMD2 walks the row-words in groups of two. Each word still goes
	// through the same sequential recurrence as Scalar, one column at a
	// time, so results are identical to Scalar; no vector instructions
	// are used and columns are not batched.
	SIMD2
)

func (m Mode) String() string {
	if m == SIMD2 {
		return "SIMD2"
	}
	return "Scalar"
}

package cigar

import (
	"fmt"
	"strconv"
	"strings"
)

// OpKind is the edit operation of one CIGAR run.
type OpKind int

const (
	Match OpKind = iota
	Sub
	Ins
	Del
)

func (k OpKind) String() string {
	switch k {
	case Match:
		return "M"
	case Sub:
		return "X"
	case Ins:
		return "I"
	case Del:
		return "D"
	default:
		return "?"
	}
}

// extendedSymbol renders Match/Sub using the extended ('=', 'X') CIGAR
// convention instead of the classic ('M' for Match, 'X' for Sub).
func (k OpKind) extendedSymbol() byte {
	switch k {
	case Match:
		return '='
	case Sub:
		return 'X'
	case Ins:
		return 'I'
	case Del:
		return 'D'
	default:
		return '?'
	}
}

// Op is one run-length element: Len consecutive operations of Kind.
type Op struct {
	Kind OpKind
	Len  int
}

// CIGAR is an ordered sequence of runs describing how to transform A into
// B (or equivalently, how the two were aligned).
type CIGAR []Op

// Cost returns the total number of non-Match operations, i.e. the edit
// distance this CIGAR represents.
func (c CIGAR) Cost() int {
	total := 0
	for _, op := range c {
		if op.Kind != Match {
			total += op.Len
		}
	}
	return total
}

// Len returns the total number of operations across all runs.
func (c CIGAR) Len() int {
	total := 0
	for _, op := range c {
		total += op.Len
	}
	return total
}

// String renders the classic form (2M1X1M), using 'M' for Match and 'X'
// for Sub. Use Extended for the '='/'X' form, which
// differs only in using '=' instead of 'M' for Match.
func (c CIGAR) String() string {
	var b strings.Builder
	for _, op := range c {
		sym := byte('M')
		switch op.Kind {
		case Sub:
			sym = 'X'
		case Ins:
			sym = 'I'
		case Del:
			sym = 'D'
		}
		b.WriteString(strconv.Itoa(op.Len))
		b.WriteByte(sym)
	}
	return b.String()
}

// Extended renders the '='/'X' form (4=1X), distinguishing exact matches
// from substitutions.
func (c CIGAR) Extended() string {
	var b strings.Builder
	for _, op := range c {
		b.WriteString(strconv.Itoa(op.Len))
		b.WriteByte(op.Kind.extendedSymbol())
	}
	return b.String()
}

// Apply transforms A into a byte slice using this CIGAR against b for
// inserted content, returning an error if the CIGAR's operations don't
// consume exactly len(a) of A and len(b) of B.
func Apply(c CIGAR, a, b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b))
	ai, bi := 0, 0
	for _, op := range c {
		switch op.Kind {
		case Match, Sub:
			if ai+op.Len > len(a) || bi+op.Len > len(b) {
				return nil, fmt.Errorf("cigar: %v run overruns input", op.Kind)
			}
			out = append(out, b[bi:bi+op.Len]...)
			ai += op.Len
			bi += op.Len
		case Ins:
			if bi+op.Len > len(b) {
				return nil, fmt.Errorf("cigar: Ins run overruns B")
			}
			out = append(out, b[bi:bi+op.Len]...)
			bi += op.Len
		case Del:
			if ai+op.Len > len(a) {
				return nil, fmt.Errorf("cigar: Del run overruns A")
			}
			ai += op.Len
		}
	}
	if ai != len(a) || bi != len(b) {
		return nil, fmt.Errorf("cigar: consumed (%d,%d), want (%d,%d)", ai, bi, len(a), len(b))
	}
	return out, nil
}

package jrange

import "github.com/genomekit/nwalign/heuristic"

// Kind selects the j_range strategy.
type Kind int

const (
	Full Kind = iota
	GapStart
	GapGap
	Astar
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "Full"
	case GapStart:
		return "GapStart"
	case GapGap:
		return "GapGap"
	case Astar:
		return "Astar"
	default:
		return "Kind(?)"
	}
}

// Domain selects a j_range strategy and, for Astar, carries the
// heuristic capability it consults.
type Domain struct {
	Kind Kind
	H    heuristic.Capability
}

// UnitInsertCost and UnitDeleteCost are the per-row/column extension
// costs GapStart/GapGap budget against. Named (rather than inlined as 1)
// so an affine-cost extension — explicitly out of scope for this unit-
// cost engine — has an obvious seam to override them.
const (
	UnitInsertCost = 1
	UnitDeleteCost = 1
)

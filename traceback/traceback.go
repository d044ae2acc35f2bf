package traceback

import (
	"fmt"

	"github.com/genomekit/nwalign/bitpack"
	"github.com/genomekit/nwalign/blockdrv"
	"github.com/genomekit/nwalign/cigar"
	"github.com/genomekit/nwalign/coord"
	"github.com/genomekit/nwalign/front"
)

// Walker reconstructs a CIGAR from a computed front.Sequence.
type Walker struct {
	Prof   *bitpack.Profile
	Driver *blockdrv.Driver
}

// New constructs a Walker. drv is used only when seq is sparse, to
// recompute the dense interior of a block on demand.
func New(prof *bitpack.Profile, drv *blockdrv.Driver) *Walker {
	return &Walker{Prof: prof, Driver: drv}
}

// Walk traces backward from `to` (which must be the last front's
// column) to (0, 0), returning the CIGAR in forward order. It may pop
// and recompute trailing fronts of seq in the process.
func (w *Walker) Walk(seq *front.Sequence, to coord.Pos) cigar.CIGAR {
	if seq.LastFront().I != to.I {
		panic(fmt.Sprintf("traceback: Walk: last front is for column %d, not %d", seq.LastFront().I, to.I))
	}

	g := seq.LastFront().Index(to.J)
	blockStart := to.I - 1

	var b builder
	cur := to
	for cur.I != 0 || cur.J != 0 {
		for seq.LastFront().I > cur.I {
			seq.PopLastFront()
		}

		if seq.Sparse() && cur.I > 0 {
			f := seq.LastFront()
			prevIdx := seq.LastIndex() - 1
			prevF := seq.FrontAt(prevIdx)
			if prevF.I < cur.I-1 {
				blockStart = prevF.I
				iRange := coord.IRange{Lo: prevF.I, Hi: f.I}
				jHi := cur.J
				jLo := f.JRange.Lo
				seq.PopLastFront()

				height := iRange.Len() * 5 / 4
				if height < 1 {
					height = 1
				}
				for {
					lo := jHi - height
					if lo < jLo {
						lo = jLo
					}
					w.Driver.FillBlock(seq, iRange, coord.JRange{Lo: lo, Hi: jHi})
					if seq.LastFront().Index(cur.J) == g {
						break
					}
					seq.TruncateTo(prevIdx)
					height *= 2
				}
			}
		}

		parent, op := w.parent(seq, cur, &g, blockStart)
		cur = parent
		b.push(op)
	}
	if g != 0 {
		panic(fmt.Sprintf("traceback: Walk: reached (0,0) with residual cost %d", g))
	}

	b.reverse()
	return cigar.CIGAR(b.ops)
}

// parent finds the single backward step from st (assumed to be in the
// last front of seq, with the front immediately before it for column
// st.I-1), applying the priority Match > Ins > Del > Sub. g is updated
// in place to the cost at the returned parent state.
func (w *Walker) parent(seq *front.Sequence, st coord.Pos, g *int, blockStart int) (coord.Pos, cigar.Op) {
	f := seq.LastFront()
	if f.I != st.I {
		panic(fmt.Sprintf("traceback: parent: last front is for column %d, not %d", f.I, st.I))
	}

	var prevF *front.Front
	if st.I > 0 {
		prevF = seq.FrontAt(seq.LastIndex() - 1)
		if prevF.I != st.I-1 {
			panic(fmt.Sprintf("traceback: parent: previous front is for column %d, not %d", prevF.I, st.I-1))
		}
	}

	cnt := 0
	for st.I > 0 && st.J > prevF.RoundedRange().Lo {
		if !w.Prof.IsMatch(st.I-1, st.J-1) {
			break
		}
		cnt++
		st.I--
		st.J--
		if st.I == blockStart {
			break
		}
	}
	if cnt > 0 {
		return st, cigar.Op{Kind: cigar.Match, Len: cnt}
	}

	*g--

	if vd, ok := f.GetDiff(st.J - 1); ok && vd == 1 {
		return coord.Pos{I: st.I, J: st.J - 1}, cigar.Op{Kind: cigar.Ins, Len: 1}
	}

	if prevF == nil {
		panic("traceback: parent: no vertical edge, but also no previous front")
	}

	hd := (*g + 1) - prevF.Index(st.J)
	if hd == 1 {
		return coord.Pos{I: st.I - 1, J: st.J}, cigar.Op{Kind: cigar.Del, Len: 1}
	}

	dd, ok := prevF.GetDiff(st.J - 1)
	if !ok {
		panic("traceback: parent: missing diagonal delta in previous front")
	}
	if dd+hd == 1 {
		return coord.Pos{I: st.I - 1, J: st.J - 1}, cigar.Op{Kind: cigar.Sub, Len: 1}
	}

	panic("traceback: parent: no parent found")
}

// builder accumulates CIGAR ops in reverse (traceback) order, merging
// consecutive runs of the same kind, then reverses once at the end.
type builder struct {
	ops []cigar.Op
}

func (b *builder) push(op cigar.Op) {
	if n := len(b.ops); n > 0 && b.ops[n-1].Kind == op.Kind {
		b.ops[n-1].Len += op.Len
		return
	}
	b.ops = append(b.ops, op)
}

func (b *builder) reverse() {
	for i, j := 0, len(b.ops)-1; i < j; i, j = i+1, j-1 {
		b.ops[i], b.ops[j] = b.ops[j], b.ops[i]
	}
}

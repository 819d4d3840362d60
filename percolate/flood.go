package percolate

import (
	"github.com/arashmh/poreflow/adjacency"
	"github.com/arashmh/poreflow/errs"
	"github.com/arashmh/poreflow/mesh"
)

// Label classifies a tet after the two-pass flood fill.
type Label int

const (
	NotReached  Label = 0
	Forward     Label = 1
	Percolating Label = 2
)

// floodForward performs the forward sweep from front0: every tet reachable
// from an inlet-adjacent tet over live face-adjacency is labelled Forward.
// Traversal order is unspecified by spec.md; a LIFO stack is used here,
// matching one of the two orderings the original implementation allows.
func floodForward(ee adjacency.EE, label []Label, front0 []int32) {
	stack := append([]int32(nil), front0...)
	for len(stack) > 0 {
		seed := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if label[seed] == Forward {
			continue
		}
		label[seed] = Forward
		for _, n := range ee[seed] {
			if n != adjacency.Null && label[n] != Forward {
				stack = append(stack, n)
			}
		}
	}
}

// floodBackward performs the backward sweep from front1: only tets already
// labelled Forward are promoted to Percolating. Tets labelled NotReached
// are off-limits; tets already Percolating are skipped.
func floodBackward(ee adjacency.EE, label []Label, front1 []int32) {
	stack := append([]int32(nil), front1...)
	for len(stack) > 0 {
		seed := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if label[seed] != Forward {
			continue
		}
		label[seed] = Percolating
		for _, n := range ee[seed] {
			if n != adjacency.Null && label[n] == Forward {
				stack = append(stack, n)
			}
		}
	}
}

// TwoPassFlood runs the forward sweep from front0 then the backward sweep
// from front1 and returns the per-tet label array. It fails with
// errs.EmptyResult if no tet ends up labelled Percolating, since that means
// the sample does not percolate from inlet to outlet.
func TwoPassFlood(m *mesh.Mesh, ee adjacency.EE, front0, front1 []int32) ([]Label, error) {
	label := make([]Label, m.NTets())
	floodForward(ee, label, front0)
	floodBackward(ee, label, front1)

	for _, l := range label {
		if l == Percolating {
			return label, nil
		}
	}
	return label, errs.New(errs.EmptyResult, "no tet reaches both the inlet and outlet faces", nil)
}

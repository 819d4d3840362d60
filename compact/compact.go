// Package compact implements the C6 compactor: it gathers the surviving
// (Percolating) tets and their referenced vertices into a dense, stably
// renumbered mesh.
package compact

import (
	"sort"

	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
)

// Result is the compacted mesh plus the old->new vertex renumbering that
// produced it. The facet extractor needs the renumbering to translate
// boundary faces discovered against the original, pre-compaction adjacency.
type Result struct {
	Mesh    *mesh.Mesh
	Renumb  map[int32]int32 // old vertex index -> new vertex index
	OldTets []int32         // new tet index -> old tet index, ascending
}

// Compact walks the surviving tets (label == Percolating) in ascending old
// index order, collects the set of vertices they reference, assigns each a
// new index in ascending order of its old index, and gathers both arrays by
// that renumbering. Non-percolating tets and any vertex they alone
// reference are dropped.
func Compact(m *mesh.Mesh, label []percolate.Label) Result {
	var oldTets []int32
	referenced := make(map[int32]struct{})
	for i := 0; i < m.NTets(); i++ {
		if label[i] != percolate.Percolating {
			continue
		}
		oldTets = append(oldTets, int32(i))
		for _, v := range m.T[i] {
			referenced[v] = struct{}{}
		}
	}

	oldVerts := make([]int32, 0, len(referenced))
	for v := range referenced {
		oldVerts = append(oldVerts, v)
	}
	sort.Slice(oldVerts, func(a, b int) bool { return oldVerts[a] < oldVerts[b] })

	renumb := make(map[int32]int32, len(oldVerts))
	newV := make([]mesh.Vec3, len(oldVerts))
	for newIdx, oldIdx := range oldVerts {
		renumb[oldIdx] = int32(newIdx)
		newV[newIdx] = m.V[oldIdx]
	}

	newT := make([]mesh.Tet, len(oldTets))
	for newIdx, oldIdx := range oldTets {
		old := m.T[oldIdx]
		newT[newIdx] = mesh.Tet{
			renumb[old[0]], renumb[old[1]], renumb[old[2]], renumb[old[3]],
		}
	}

	return Result{
		Mesh:    mesh.New(newV, newT),
		Renumb:  renumb,
		OldTets: oldTets,
	}
}

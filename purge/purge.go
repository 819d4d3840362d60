// Package purge implements the optional C8 locked-tet purge: removing tets
// whose four vertices all lie on the extracted domain's boundary, whether or
// not the tet itself has a boundary face. These are voxelization artifacts
// left over from the tetrahedralization of a voxel grid.
package purge

import (
	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/mesh"
)

// BoundaryVertices collects every vertex referenced by any extracted facet,
// regardless of which of the seven boundary IDs it was classified under.
func BoundaryVertices(facets []facet.Facet) map[int32]struct{} {
	boundary := make(map[int32]struct{})
	for _, f := range facets {
		boundary[f.A] = struct{}{}
		boundary[f.B] = struct{}{}
		boundary[f.C] = struct{}{}
	}
	return boundary
}

// Purge kills every live tet of m whose four corner vertices are all
// boundary vertices, and returns how many tets were killed. It is
// idempotent: a tet once killed is skipped by Live on a second pass, and the
// boundary vertex set used here is fixed at call time rather than
// recomputed from the purged mesh, so a repeat call with the same facets
// kills nothing further.
func Purge(m *mesh.Mesh, facets []facet.Facet) int {
	boundary := BoundaryVertices(facets)
	killed := 0
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		locked := true
		for _, v := range m.T[i] {
			if _, ok := boundary[v]; !ok {
				locked = false
				break
			}
		}
		if locked {
			m.Kill(i)
			killed++
		}
	}
	return killed
}

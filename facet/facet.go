// Package facet implements the C7 facet extractor: it re-walks the
// surviving tets against their original, pre-compaction adjacency to find
// every boundary triangle of the percolating cluster, translates it into
// compact vertex indices, and classifies it against one of the seven
// boundary IDs.
package facet

import (
	"github.com/arashmh/poreflow/adjacency"
	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
)

// Facet is one outward-oriented triangle of the extracted domain's boundary,
// given as compact vertex indices.
type Facet struct {
	A, B, C  int32
	Boundary percolate.BoundaryID
}

// Extract finds, for every surviving tet, each face that is either on the
// original mesh boundary or borders a non-percolating neighbour: both are
// boundary faces of the extracted domain. Each face is translated from
// original to compact vertex indices via comp.Renumb, classified against
// the original (pre-compaction) bounding box and tolerance, and emitted in
// its outward-oriented order.
func Extract(
	m *mesh.Mesh,
	ee adjacency.EE,
	label []percolate.Label,
	comp compact.Result,
	bb geom.Box3,
	eta float64,
) []Facet {
	var out []Facet
	for i := 0; i < m.NTets(); i++ {
		if label[i] != percolate.Percolating {
			continue
		}
		for j := 0; j < 4; j++ {
			n := ee[i][j]
			if n != adjacency.Null && label[n] == percolate.Percolating {
				continue
			}
			a, b, c := m.T[i].Face(j)
			centroid := mesh.Vec3{
				X: (m.V[a].X + m.V[b].X + m.V[c].X) / 3,
				Y: (m.V[a].Y + m.V[b].Y + m.V[c].Y) / 3,
				Z: (m.V[a].Z + m.V[b].Z + m.V[c].Z) / 3,
			}
			out = append(out, Facet{
				A:        comp.Renumb[a],
				B:        comp.Renumb[b],
				C:        comp.Renumb[c],
				Boundary: percolate.ClassifyCentroid(centroid, bb, eta),
			})
		}
	}
	return out
}

// Package adjacency builds the node->element and element->element
// adjacency structures used by the face classifier, two-pass flood fill,
// and facet extractor.
package adjacency

import (
	"github.com/arashmh/poreflow/errs"
	"github.com/arashmh/poreflow/mesh"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Null is the EE sentinel recorded for a face on the mesh boundary.
const Null int32 = -1

// NE is the node->element map: NE[v] holds the live tet indices incident to
// vertex v, in ascending order. It is only needed transiently while EE is
// built.
type NE [][]int32

// BuildNE walks live tets in ascending index order and records, for each of
// their four corner vertices, the owning tet index. Because tets are
// visited in increasing order each per-vertex list comes out sorted, which
// lets BuildEE intersect them by a linear merge instead of a hash join.
func BuildNE(m *mesh.Mesh) NE {
	ne := make(NE, m.NVerts())
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		t := m.T[i]
		for _, v := range t {
			ne[v] = append(ne[v], int32(i))
		}
	}
	return ne
}

// localFace returns the three vertex indices (in local face order) for the
// face opposite local vertex j, i.e. the face formed by local vertices
// (j+1, j+2, j+3) mod 4.
func localFace(t mesh.Tet, j int) (int32, int32, int32) {
	return t[(j+1)%4], t[(j+2)%4], t[(j+3)%4]
}

// intersect3 returns the sorted intersection of three sorted slices.
func intersect3(a, b, c []int32) []int32 {
	return intersect2(intersect2(a, b), c)
}

func intersect2(a, b []int32) []int32 {
	out := make([]int32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// EE is the dense NT x 4 element-element neighbour table. EE[i][j] is the
// tet index sharing the triangular face opposite local vertex j of tet i,
// or Null if that face is on the boundary.
type EE [][4]int32

// Build constructs EE from the mesh's live tets, via triple set-intersection
// of the per-vertex NE lists of each face's three vertices. A face shared by
// more than two live tets is a non-manifold mesh and is fatal.
func Build(m *mesh.Mesh) (EE, error) {
	ne := BuildNE(m)
	ee := make(EE, m.NTets())
	for i := range ee {
		ee[i] = [4]int32{Null, Null, Null, Null}
	}

	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		t := m.T[i]
		for j := 0; j < 4; j++ {
			a, b, c := localFace(t, j)
			neighbours := intersect3(ne[a], ne[b], ne[c])

			switch len(neighbours) {
			case 1:
				// boundary face: only i itself touches it
				if neighbours[0] != int32(i) {
					return nil, errs.Newf(errs.NonManifoldMesh, nil,
						"tet %d face %d: lone incident tet %d is not self", i, j, neighbours[0])
				}
			case 2:
				other := neighbours[0]
				if other == int32(i) {
					other = neighbours[1]
				}
				ee[i][j] = other
			default:
				return nil, errs.Newf(errs.NonManifoldMesh, nil,
					"tet %d face %d: %d live tets incident to this face, at most 2 allowed", i, j, len(neighbours))
			}
		}
	}
	return ee, nil
}

//-----------------------------------------------------------------------------

// Graph builds a gonum undirected graph mirroring EE: one node per live tet,
// one edge per shared interior face. It exists purely as a diagnostic view
// so pipeline consumers can reuse gonum's connectivity algorithms (e.g.
// topo.ConnectedComponents) instead of hand-rolling them, mirroring how the
// render package exposes a CountComponents diagnostic over its own voxel
// adjacency.
func Graph(m *mesh.Mesh, ee EE) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < len(ee); i++ {
		if !m.Live(i) {
			continue
		}
		for _, n := range ee[i] {
			if n == Null || int64(n) < int64(i) {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(n))})
		}
	}
	return g
}

// ComponentCount returns the number of connected components in g, using
// gonum's topological connected-components routine.
func ComponentCount(g graph.Undirected) int {
	return len(topo.ConnectedComponents(g))
}

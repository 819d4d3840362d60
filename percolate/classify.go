package percolate

import (
	"math"

	"github.com/arashmh/poreflow/adjacency"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
)

// BoundaryID tags a boundary facet with which side of the bounding box (or
// interior) it lies on.
type BoundaryID int

const (
	Inlet    BoundaryID = 1
	Outlet   BoundaryID = 2
	YMin     BoundaryID = 3
	YMax     BoundaryID = 4
	ZMin     BoundaryID = 5
	ZMax     BoundaryID = 6
	Internal BoundaryID = 7
)

// ClassifyCentroid assigns a boundary ID to a face centroid by first-match
// proximity, within tolerance eta, to each of the bounding box's six
// planes, falling back to Internal for faces that lie on neither (e.g. an
// internal void surface touching the percolating cluster).
func ClassifyCentroid(c mesh.Vec3, bb geom.Box3, eta float64) BoundaryID {
	switch {
	case math.Abs(c.X-bb.Min.X) < eta:
		return Inlet
	case math.Abs(c.X-bb.Max.X) < eta:
		return Outlet
	case math.Abs(c.Y-bb.Min.Y) < eta:
		return YMin
	case math.Abs(c.Y-bb.Max.Y) < eta:
		return YMax
	case math.Abs(c.Z-bb.Min.Z) < eta:
		return ZMin
	case math.Abs(c.Z-bb.Max.Z) < eta:
		return ZMax
	default:
		return Internal
	}
}

// faceCentroid returns the centroid of face j of tet i.
func faceCentroid(m *mesh.Mesh, i int, j int) mesh.Vec3 {
	a, b, c := m.T[i].Face(j)
	pa, pb, pc := m.V[a], m.V[b], m.V[c]
	return mesh.Vec3{
		X: (pa.X + pb.X + pc.X) / 3,
		Y: (pa.Y + pb.Y + pc.Y) / 3,
		Z: (pa.Z + pb.Z + pc.Z) / 3,
	}
}

// SeedFronts walks every boundary face of every live tet (faces where ee is
// Null) and, per spec.md §4.4, seeds front0 with tets touching the inlet
// plane (x=xmin) and front1 with tets touching the outlet plane (x=xmax).
// Only the x-classification matters here; the full seven-way classification
// is applied later, once more, when facets are finally emitted.
func SeedFronts(m *mesh.Mesh, ee adjacency.EE, bb geom.Box3, eta float64) (front0, front1 []int32) {
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		for j := 0; j < 4; j++ {
			if ee[i][j] != adjacency.Null {
				continue
			}
			c := faceCentroid(m, i, j)
			switch {
			case math.Abs(c.X-bb.Min.X) < eta:
				front0 = append(front0, int32(i))
			case math.Abs(c.X-bb.Max.X) < eta:
				front1 = append(front1, int32(i))
			}
		}
	}
	return front0, front1
}

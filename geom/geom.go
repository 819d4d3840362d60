// Package geom provides the geometric primitives used to validate and
// classify a tetrahedral mesh: signed volume, bounding box, and the
// characteristic length eta used as a coplanarity tolerance.
package geom

import (
	"math"

	"github.com/arashmh/poreflow/mesh"
)

// Volume returns the signed volume of the tetrahedron (x0,x1,x2,x3) using
// the standard 1/6 * det expansion. A positive result means the vertex
// order (0,1,2,3) is right-handed with respect to face (1,3,2).
func Volume(x0, x1, x2, x3 mesh.Vec3) float64 {
	d01 := x0.Sub(x1)
	d02 := x0.Sub(x2)
	d03 := x0.Sub(x3)

	return (-d03.X*(d02.Z*d01.Y-d01.Z*d02.Y) +
		d02.X*(d03.Z*d01.Y-d01.Z*d03.Y) -
		d01.X*(d03.Z*d02.Y-d02.Z*d03.Y)) / 6
}

//-----------------------------------------------------------------------------

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max mesh.Vec3
}

// Size returns the per-axis extent of the box.
func (b Box3) Size() mesh.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundingBox computes the axis-aligned bounding box of every vertex in the
// mesh, irrespective of tet liveness (the vertex array has no independent
// liveness concept).
func BoundingBox(v []mesh.Vec3) Box3 {
	if len(v) == 0 {
		return Box3{}
	}
	bb := Box3{Min: v[0], Max: v[0]}
	for _, p := range v[1:] {
		bb.Min.X = math.Min(bb.Min.X, p.X)
		bb.Min.Y = math.Min(bb.Min.Y, p.Y)
		bb.Min.Z = math.Min(bb.Min.Z, p.Z)
		bb.Max.X = math.Max(bb.Max.X, p.X)
		bb.Max.Y = math.Max(bb.Max.Y, p.Y)
		bb.Max.Z = math.Max(bb.Max.Z, p.Z)
	}
	return bb
}

// TetBox returns the bounding box of one tet's four corner nodes.
func TetBox(a, b, c, d mesh.Vec3) Box3 {
	bb := Box3{Min: a, Max: a}
	for _, p := range [3]mesh.Vec3{b, c, d} {
		bb.Min.X = math.Min(bb.Min.X, p.X)
		bb.Min.Y = math.Min(bb.Min.Y, p.Y)
		bb.Min.Z = math.Min(bb.Min.Z, p.Z)
		bb.Max.X = math.Max(bb.Max.X, p.X)
		bb.Max.Y = math.Max(bb.Max.Y, p.Y)
		bb.Max.Z = math.Max(bb.Max.Z, p.Z)
	}
	return bb
}

//-----------------------------------------------------------------------------

// Eta returns the characteristic small-distance tolerance: 0.1 times the
// mean, over all live tets, of (dx+dy+dz)/3 for each tet's own corner-node
// bounding box. It is the tolerance used by the face classifier to decide
// whether a facet centroid is coplanar with a bounding-box plane.
func Eta(m *mesh.Mesh) float64 {
	var sum float64
	var live int
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		a, b, c, d := m.Vertices(i)
		box := TetBox(a, b, c, d)
		size := box.Size()
		sum += (size.X + size.Y + size.Z)
		live++
	}
	if live == 0 {
		return 0
	}
	mean := sum / float64(live) / 3
	return 0.1 * mean
}

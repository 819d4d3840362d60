package writer

import (
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
)

func boundingBox(v []mesh.Vec3) geom.Box3 {
	return geom.BoundingBox(v)
}

// axisValue picks one coordinate of v by axis index (0=X, 1=Y, 2=Z).
func axisValue(v mesh.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// planeAxes returns the two axes that remain once axis drop is sliced away,
// e.g. slicing on Z (drop=2) leaves the (X,Y) plane.
func planeAxes(drop int) (int, int) {
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func lerpVec3(a, b mesh.Vec3, t float64) mesh.Vec3 {
	return mesh.Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// sliceTriangle returns the segment where triangle tri crosses the plane
// axis=val (axis 0=x, 1=y, 2=z). ok is false when the triangle lies
// entirely to one side of the plane and contributes nothing to the
// cross-section.
func sliceTriangle(tri [3]mesh.Vec3, axis int, val float64) (p0, p1 mesh.Vec3, ok bool) {
	var pts []mesh.Vec3
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		av, bv := axisValue(a, axis)-val, axisValue(b, axis)-val
		if av == 0 {
			pts = append(pts, a)
		}
		if (av < 0 && bv > 0) || (av > 0 && bv < 0) {
			pts = append(pts, lerpVec3(a, b, av/(av-bv)))
		}
	}
	if len(pts) < 2 {
		return mesh.Vec3{}, mesh.Vec3{}, false
	}
	return pts[0], pts[1], true
}

// sliceOrCenter returns v unless it is NaN, in which case it defaults to the
// midpoint of bb along axis — used so an unset slice flag still produces a
// cross-section that intersects the mesh instead of an empty drawing.
func sliceOrCenter(v float64, bb geom.Box3, axis int) float64 {
	if v == v {
		return v
	}
	return (axisValue(bb.Min, axis) + axisValue(bb.Max, axis)) / 2
}

// projectionScale2 returns the uniform pixels-per-unit scale for a uSize x
// vSize plane extent rendered into a width x height canvas.
func projectionScale2(uSize, vSize float64, width, height int) float64 {
	su, sv := 1.0, 1.0
	if uSize > 0 {
		su = float64(width) / uSize
	}
	if vSize > 0 {
		sv = float64(height) / vSize
	}
	if sv < su {
		return sv
	}
	return su
}

// project2 maps a (u,v) plane point to integer canvas pixel coordinates,
// flipping v since SVG/image coordinate origins are top-left while mesh
// coordinates grow upward.
func project2(u, v, uMin, vMin, scale float64, height int) (int, int) {
	return int((u - uMin) * scale), height - int((v-vMin)*scale)
}

// boundaryColor maps a BoundaryID to a stable display color, used by both
// the SVG and PNG debug writers.
func boundaryColor(id percolate.BoundaryID) string {
	switch id {
	case percolate.Inlet:
		return "red"
	case percolate.Outlet:
		return "blue"
	case percolate.YMin, percolate.YMax:
		return "green"
	case percolate.ZMin, percolate.ZMax:
		return "orange"
	default:
		return "gray"
	}
}

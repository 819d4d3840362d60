package writer

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/arashmh/poreflow/mesh"
)

// WriteDebugSVG renders an x=const cross-section of the classified boundary
// facets, color-coded by boundary ID, for visually auditing the face
// classifier without a full 3D mesh viewer. x is NaN-tolerant: an unset
// slice value falls back to the midpoint of the mesh's x-extent.
func WriteDebugSVG(w io.Writer, d Domain, width, height int, x float64) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	bb := boundingBox(d.Mesh.Mesh.V)
	sliceX := sliceOrCenter(x, bb, 0)
	uAxis, vAxis := planeAxes(0)
	uMin, vMin := axisValue(bb.Min, uAxis), axisValue(bb.Min, vAxis)
	uSize := axisValue(bb.Max, uAxis) - uMin
	vSize := axisValue(bb.Max, vAxis) - vMin
	scale := projectionScale2(uSize, vSize, width, height)

	m := d.Mesh.Mesh
	for _, f := range d.Facets {
		tri := [3]mesh.Vec3{m.V[f.A], m.V[f.B], m.V[f.C]}
		p0, p1, ok := sliceTriangle(tri, 0, sliceX)
		if !ok {
			continue
		}
		x0, y0 := project2(axisValue(p0, uAxis), axisValue(p0, vAxis), uMin, vMin, scale, height)
		x1, y1 := project2(axisValue(p1, uAxis), axisValue(p1, vAxis), uMin, vMin, scale, height)
		style := "stroke:" + boundaryColor(f.Boundary) + ";fill:none"
		canvas.Line(x0, y0, x1, y1, style)
	}

	canvas.End()
}

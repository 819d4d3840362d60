package writer

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/arashmh/poreflow/mesh"
)

// WriteDXF projects the boundary facets onto the xy-plane at the given
// z-slice as a wireframe, one layer per boundary ID. z is NaN-tolerant: an
// unset slice value falls back to the midpoint of the mesh's z-extent. The
// dxf package only supports writing to a named file, not an io.Writer, so
// this takes a path rather than matching the other writers' signatures.
func WriteDXF(path string, d Domain, z float64) error {
	dr := dxf.NewDrawing()

	layers := map[int]bool{}
	for _, f := range d.Facets {
		id := int(f.Boundary)
		if !layers[id] {
			dr.AddLayer(layerName(id), color.Get(uint8(id+1)), dxf.DefaultLineType, true)
			layers[id] = true
		}
	}

	bb := boundingBox(d.Mesh.Mesh.V)
	sliceZ := sliceOrCenter(z, bb, 2)

	m := d.Mesh.Mesh
	for _, f := range d.Facets {
		tri := [3]mesh.Vec3{m.V[f.A], m.V[f.B], m.V[f.C]}
		p0, p1, ok := sliceTriangle(tri, 2, sliceZ)
		if !ok {
			continue
		}
		dr.ChangeLayer(layerName(int(f.Boundary)))
		dr.Line(p0.X, p0.Y, 0, p1.X, p1.Y, 0)
	}

	return dr.SaveAs(path)
}

func layerName(boundaryID int) string {
	names := map[int]string{
		1: "INLET", 2: "OUTLET", 3: "YMIN", 4: "YMAX", 5: "ZMIN", 6: "ZMAX", 7: "INTERNAL",
	}
	if n, ok := names[boundaryID]; ok {
		return n
	}
	return "UNKNOWN"
}

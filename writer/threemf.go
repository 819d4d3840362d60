package writer

import (
	"io"

	"github.com/hpinc/go3mf"
)

// WriteThreeMF writes the compacted volume mesh's boundary surface as a
// watertight-triangle-soup 3MF model: one mesh object built from every
// extracted facet, suitable for loading into a slicer or CAD viewer for
// visual inspection of the percolating domain's shape.
func WriteThreeMF(w io.Writer, d Domain) error {
	m := d.Mesh.Mesh

	mesh := &go3mf.Mesh{}
	mesh.Vertices.Vertex = make([]go3mf.Point3D, m.NVerts())
	for i, v := range m.V {
		mesh.Vertices.Vertex[i] = go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, len(d.Facets))
	for i, f := range d.Facets {
		mesh.Triangles.Triangle[i] = go3mf.Triangle{
			V1: uint32(f.A), V2: uint32(f.B), V3: uint32(f.C),
		}
	}

	model := &go3mf.Model{}
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Type: go3mf.ObjectTypeModel,
		Mesh: mesh,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	return go3mf.NewEncoder(w).Encode(model)
}

package writer

import (
	"fmt"
	"io"
)

// WriteGmsh writes d as a Gmsh v2.2 ASCII mesh: a $Nodes block of 1-based
// node coordinates, then an $Elements block holding the volume tets (type 4)
// followed by the boundary facets (type 2, triangle), each tagged with its
// physical group so downstream flow solvers can pick out individual
// boundary walls by ID.
func WriteGmsh(w io.Writer, d Domain) error {
	if _, err := fmt.Fprintln(w, "$MeshFormat"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "2.2 0 8"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "$EndMeshFormat"); err != nil {
		return err
	}

	m := d.Mesh.Mesh
	if _, err := fmt.Fprintln(w, "$Nodes"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, m.NVerts()); err != nil {
		return err
	}
	for i, v := range m.V {
		if _, err := fmt.Fprintf(w, "%d %g %g %g\n", i+1, v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "$EndNodes"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "$Elements"); err != nil {
		return err
	}
	total := m.NTets() + len(d.Facets)
	if _, err := fmt.Fprintln(w, total); err != nil {
		return err
	}

	id := 1
	for _, t := range m.T {
		// element-type 4 = 4-node tetrahedron; tag count 2, both set to
		// physical/elementary group 0 (the domain interior has no boundary
		// classification of its own).
		_, err := fmt.Fprintf(w, "%d 4 2 0 0 %d %d %d %d\n",
			id, t[0]+1, t[1]+1, t[2]+1, t[3]+1)
		if err != nil {
			return err
		}
		id++
	}
	for _, f := range d.Facets {
		// element-type 2 = 3-node triangle; physical group = boundary ID.
		_, err := fmt.Fprintf(w, "%d 2 2 %d %d %d %d %d\n",
			id, int(f.Boundary), int(f.Boundary), f.A+1, f.B+1, f.C+1)
		if err != nil {
			return err
		}
		id++
	}
	if _, err := fmt.Fprintln(w, "$EndElements"); err != nil {
		return err
	}
	return nil
}

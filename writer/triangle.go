package writer

import (
	"fmt"
	"io"
)

// WriteTriangle writes d's node, element (tetrahedron), and boundary-facet
// arrays as a Triangle/TetGen-style .node/.ele/.face triple, one per
// io.Writer. Indices are 0-based, matching TetGen's default numbering.
func WriteTriangle(nodeW, eleW, faceW io.Writer, d Domain) error {
	m := d.Mesh.Mesh

	if _, err := fmt.Fprintf(nodeW, "%d 3 0 0\n", m.NVerts()); err != nil {
		return err
	}
	for i, v := range m.V {
		if _, err := fmt.Fprintf(nodeW, "%d %g %g %g\n", i, v.X, v.Y, v.Z); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(eleW, "%d 4 0\n", m.NTets()); err != nil {
		return err
	}
	for i, t := range m.T {
		if _, err := fmt.Fprintf(eleW, "%d %d %d %d %d\n", i, t[0], t[1], t[2], t[3]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(faceW, "%d 1\n", len(d.Facets)); err != nil {
		return err
	}
	for i, f := range d.Facets {
		if _, err := fmt.Fprintf(faceW, "%d %d %d %d %d\n", i, f.A, f.B, f.C, int(f.Boundary)); err != nil {
			return err
		}
	}
	return nil
}

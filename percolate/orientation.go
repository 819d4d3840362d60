// Package percolate implements the orientation filter, face classifier,
// and two-pass flood fill that together identify the tets belonging to the
// inlet-to-outlet percolating cluster.
package percolate

import (
	"github.com/arashmh/poreflow/errs"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
)

// OrientationReport summarizes the effect of FilterOrientation: how many
// tets were killed and the warnings raised for each (inverted or
// degenerate tets are never fatal, only counted and logged).
type OrientationReport struct {
	Killed   int
	Warnings []error
}

// FilterOrientation computes the signed volume of every live tet and kills
// any tet with non-positive volume: negative volume is an inverted tet,
// exactly zero volume is degenerate. No tolerance is applied, so a tet with
// a tiny positive volume stays live and one with a tiny negative volume is
// reported as inverted. Both are warnings, never fatal, matching spec.md's
// §7 error propagation rules.
func FilterOrientation(m *mesh.Mesh) OrientationReport {
	var report OrientationReport
	for i := 0; i < m.NTets(); i++ {
		if !m.Live(i) {
			continue
		}
		a, b, c, d := m.Vertices(i)
		v := geom.Volume(a, b, c, d)
		if v > 0 {
			continue
		}
		kind := errs.InvertedTet
		if v == 0 {
			kind = errs.DegenerateGeometry
		}
		report.Warnings = append(report.Warnings, errs.Newf(kind, nil,
			"tet %d volume=%g vertices=[%v %v %v %v]", i, v, a, b, c, d))
		m.Kill(i)
		report.Killed++
	}
	return report
}

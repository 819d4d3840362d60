package facet

import (
	"testing"

	"github.com/arashmh/poreflow/adjacency"
	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barMesh is the percolate tests' Scenario B bar: vertex 4 at (1,10,10)
// makes eta 0.4, so tet 1's face (1,3,4) classifies as outlet.
func barMesh() *mesh.Mesh {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 10, Z: 10},
	}
	t := []mesh.Tet{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
	}
	return mesh.New(v, t)
}

func TestExtract_TwoTetBar(t *testing.T) {
	m := barMesh()
	ee, err := adjacency.Build(m)
	require.NoError(t, err)
	bb := geom.BoundingBox(m.V)
	eta := geom.Eta(m)
	front0, front1 := percolate.SeedFronts(m, ee, bb, eta)
	label, err := percolate.TwoPassFlood(m, ee, front0, front1)
	require.NoError(t, err)

	comp := compact.Compact(m, label)
	facets := Extract(m, ee, label, comp, bb, eta)

	// each tet has 3 boundary faces (the 4th is the shared interior face).
	assert.Len(t, facets, 6)

	for _, f := range facets {
		for _, idx := range []int32{f.A, f.B, f.C} {
			assert.GreaterOrEqual(t, idx, int32(0))
			assert.Less(t, idx, int32(comp.Mesh.NVerts()))
		}
		assert.GreaterOrEqual(t, int(f.Boundary), 1)
		assert.LessOrEqual(t, int(f.Boundary), 7)
	}

	var sawInlet, sawOutlet bool
	for _, f := range facets {
		switch f.Boundary {
		case percolate.Inlet:
			sawInlet = true
		case percolate.Outlet:
			sawOutlet = true
		}
	}
	assert.True(t, sawInlet, "expected at least one inlet facet")
	assert.True(t, sawOutlet, "expected at least one outlet facet")
}

func TestExtract_NoSharedFaceEmitted(t *testing.T) {
	m := barMesh()
	ee, err := adjacency.Build(m)
	require.NoError(t, err)
	bb := geom.BoundingBox(m.V)
	eta := geom.Eta(m)

	label := []percolate.Label{percolate.Percolating, percolate.Percolating}
	comp := compact.Compact(m, label)
	facets := Extract(m, ee, label, comp, bb, eta)

	assert.Len(t, facets, 6)
}

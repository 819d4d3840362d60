package purge

import (
	"testing"

	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/stretchr/testify/assert"
)

// cubeWithInteriorArtifact builds a unit cube's 8 corners plus one extra
// interior vertex (8). A synthetic facet set marks all 8 cube corners as
// boundary; tet 0 uses only cube corners (a locked artifact: all four of its
// vertices are boundary vertices) and tet 1 uses the interior vertex, so it
// must survive.
func cubeWithInteriorArtifact() (*mesh.Mesh, []facet.Facet) {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		{X: 0.5, Y: 0.5, Z: 0.5}, // 8: interior vertex
	}
	t := []mesh.Tet{
		{0, 1, 2, 6}, // locked: all four vertices are cube corners
		{0, 1, 2, 8}, // touches the interior vertex: must survive
	}
	m := mesh.New(v, t)

	var facets []facet.Facet
	corners := [8]int32{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < len(corners); i++ {
		if i+2 >= len(corners) {
			break
		}
		facets = append(facets, facet.Facet{
			A: corners[i], B: corners[i+1], C: corners[i+2],
			Boundary: percolate.Inlet,
		})
	}
	return m, facets
}

func TestPurge_KillsLockedTetOnly(t *testing.T) {
	m, facets := cubeWithInteriorArtifact()

	killed := Purge(m, facets)

	assert.Equal(t, 1, killed)
	assert.False(t, m.Live(0))
	assert.True(t, m.Live(1))
}

func TestPurge_Idempotent(t *testing.T) {
	m, facets := cubeWithInteriorArtifact()

	first := Purge(m, facets)
	second := Purge(m, facets)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestBoundaryVertices(t *testing.T) {
	facets := []facet.Facet{
		{A: 0, B: 1, C: 2, Boundary: percolate.Inlet},
		{A: 1, B: 2, C: 3, Boundary: percolate.Outlet},
	}
	bv := BoundaryVertices(facets)
	assert.Len(t, bv, 4)
	for _, v := range []int32{0, 1, 2, 3} {
		_, ok := bv[v]
		assert.True(t, ok)
	}
}

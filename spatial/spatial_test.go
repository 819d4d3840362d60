package spatial

import (
	"testing"

	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFacetResult() (compact.Result, []facet.Facet) {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 10, Y: 10, Z: 10},
		{X: 11, Y: 10, Z: 10},
		{X: 10, Y: 11, Z: 10},
	}
	res := compact.Result{Mesh: mesh.New(v, nil)}
	facets := []facet.Facet{
		{A: 0, B: 1, C: 2, Boundary: percolate.Inlet},
		{A: 3, B: 4, C: 5, Boundary: percolate.Outlet},
	}
	return res, facets
}

func TestFacetIndex_Nearest(t *testing.T) {
	res, facets := twoFacetResult()
	idx, err := NewFacetIndex(res, facets)
	require.NoError(t, err)

	i, boundary, ok := idx.Nearest(mesh.Vec3{X: 0.2, Y: 0.2, Z: 0})
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, percolate.Inlet, boundary)

	i, boundary, ok = idx.Nearest(mesh.Vec3{X: 10.2, Y: 10.2, Z: 10})
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, percolate.Outlet, boundary)
}

func TestFacetIndex_Overlapping(t *testing.T) {
	res, facets := twoFacetResult()
	idx, err := NewFacetIndex(res, facets)
	require.NoError(t, err)

	box := geom.Box3{Min: mesh.Vec3{X: -1, Y: -1, Z: -1}, Max: mesh.Vec3{X: 2, Y: 2, Z: 2}}
	hits, err := idx.Overlapping(box)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, hits)
}

func TestFacetIndex_EmptyIndex(t *testing.T) {
	res := compact.Result{Mesh: mesh.New(nil, nil)}
	idx, err := NewFacetIndex(res, nil)
	require.NoError(t, err)

	_, _, ok := idx.Nearest(mesh.Vec3{})
	assert.False(t, ok)
}

package adjacency

import (
	"testing"

	"github.com/arashmh/poreflow/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTetBar builds two tets sharing the (1,2,3) face (the unit cube's
// corner tet and its neighbour across the diagonal face), matching the
// connectivity of Scenario B of the spec.
func twoTetBar() *mesh.Mesh {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0}, // 0
		{X: 1, Y: 0, Z: 0}, // 1
		{X: 0, Y: 1, Z: 0}, // 2
		{X: 0, Y: 0, Z: 1}, // 3
		{X: 1, Y: 1, Z: 1}, // 4
	}
	t := []mesh.Tet{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
	}
	return mesh.New(v, t)
}

func TestBuildEE_SharedFaceIsSymmetric(t *testing.T) {
	m := twoTetBar()
	ee, err := Build(m)
	require.NoError(t, err)

	found := false
	for j := 0; j < 4; j++ {
		if ee[0][j] == 1 {
			found = true
		}
	}
	require.True(t, found, "tet 0 must record tet 1 as a neighbour on the shared face")

	found = false
	for j := 0; j < 4; j++ {
		if ee[1][j] == 0 {
			found = true
		}
	}
	require.True(t, found, "tet 1 must record tet 0 as a neighbour on the shared face")
}

func TestBuildEE_BoundaryFacesAreNull(t *testing.T) {
	m := twoTetBar()
	ee, err := Build(m)
	require.NoError(t, err)

	for i := range ee {
		nullCount := 0
		for _, n := range ee[i] {
			if n == Null {
				nullCount++
			}
		}
		assert.Equal(t, 3, nullCount, "each tet in a two-tet bar has exactly one interior face")
	}
}

func TestBuildEE_DeadTetsIgnored(t *testing.T) {
	m := twoTetBar()
	m.Kill(1)
	ee, err := Build(m)
	require.NoError(t, err)

	for _, n := range ee[0] {
		assert.NotEqual(t, int32(1), n, "a dead tet must never appear as a neighbour")
	}
}

func TestComponentCount(t *testing.T) {
	m := twoTetBar()
	ee, err := Build(m)
	require.NoError(t, err)
	g := Graph(m, ee)
	assert.Equal(t, 1, ComponentCount(g))
}

func TestComponentCount_TwoIsolatedTets(t *testing.T) {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 10, Y: 0, Z: 0}, {X: 11, Y: 0, Z: 0}, {X: 10, Y: 1, Z: 0}, {X: 10, Y: 0, Z: 1},
	}
	tt := []mesh.Tet{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
	}
	m := mesh.New(v, tt)
	ee, err := Build(m)
	require.NoError(t, err)
	g := Graph(m, ee)
	assert.Equal(t, 2, ComponentCount(g))
}

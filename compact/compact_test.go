package compact

import (
	"testing"

	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barMesh has the same two-tet connectivity as the bar used across the
// percolate tests: vertex 0 is unused by the surviving tet, so compaction
// must drop it.
func barMesh() *mesh.Mesh {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0}, // 0 - only referenced by the dropped tet
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

func TestCompact_DropsNonPercolatingTetsAndOrphanVertices(t *testing.T) {
	m := barMesh()
	label := []percolate.Label{percolate.Forward, percolate.Percolating}

	res := Compact(m, label)

	require.Equal(t, 1, res.Mesh.NTets())
	require.Equal(t, 4, res.Mesh.NVerts())
	assert.Equal(t, []int32{1}, res.OldTets)

	// vertex 0 must not appear in the renumbering: it belonged only to the
	// dropped tet.
	_, present := res.Renumb[0]
	assert.False(t, present)

	for oldIdx, newIdx := range res.Renumb {
		assert.Equal(t, m.V[oldIdx], res.Mesh.V[newIdx])
	}
}

func TestCompact_StableAscendingRenumbering(t *testing.T) {
	m := barMesh()
	label := []percolate.Label{percolate.Percolating, percolate.Percolating}

	res := Compact(m, label)

	require.Equal(t, 2, res.Mesh.NTets())
	require.Equal(t, 5, res.Mesh.NVerts())

	// old vertex indices 0..4 must map, in ascending order, to new indices 0..4.
	for i := int32(0); i < 5; i++ {
		assert.Equal(t, int32(i), res.Renumb[i])
	}
	assert.Equal(t, []int32{0, 1}, res.OldTets)
}

func TestCompact_NoOrphanVertices(t *testing.T) {
	m := barMesh()
	label := []percolate.Label{percolate.NotReached, percolate.Percolating}

	res := Compact(m, label)

	referenced := make(map[int32]bool)
	for _, tt := range res.Mesh.T {
		for _, v := range tt {
			referenced[v] = true
		}
	}
	assert.Len(t, referenced, res.Mesh.NVerts())
	for i := 0; i < res.Mesh.NVerts(); i++ {
		assert.True(t, referenced[int32(i)], "vertex %d is an orphan", i)
	}
}

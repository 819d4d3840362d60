package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barDomain() Domain {
	v := []mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	t := []mesh.Tet{{0, 1, 2, 3}}
	res := compact.Result{Mesh: mesh.New(v, t), OldTets: []int32{0}}
	facets := []facet.Facet{
		{A: 1, B: 3, C: 2, Boundary: percolate.Inlet},
		{A: 0, B: 2, C: 3, Boundary: percolate.Outlet},
	}
	return Domain{Mesh: res, Facets: facets}
}

func TestWriteGmsh(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGmsh(&buf, barDomain()))

	out := buf.String()
	assert.Contains(t, out, "$MeshFormat")
	assert.Contains(t, out, "$Nodes")
	assert.Contains(t, out, "$Elements")
	assert.Contains(t, out, "$EndElements")
	lines := strings.Split(out, "\n")
	var elementLines int
	for _, l := range lines {
		if strings.HasPrefix(l, "1 4 2") || strings.Contains(l, " 2 2 ") {
			elementLines++
		}
	}
	assert.Equal(t, 3, elementLines, "expected one tet element plus two facet elements")
}

func TestWriteTriangle(t *testing.T) {
	var node, ele, face bytes.Buffer
	require.NoError(t, WriteTriangle(&node, &ele, &face, barDomain()))

	assert.Contains(t, node.String(), "4 3 0 0")
	assert.Contains(t, ele.String(), "1 4 0")
	assert.Contains(t, face.String(), "2 1")
}

func TestWriteVTU(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVTU(&buf, barDomain()))

	out := buf.String()
	assert.Contains(t, out, "UnstructuredGrid")
	assert.Contains(t, out, "NumberOfPoints=\"4\"")
	assert.Contains(t, out, "NumberOfCells=\"1\"")
}

func TestSliceTriangle_CrossesPlane(t *testing.T) {
	tri := [3]mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}
	p0, p1, ok := sliceTriangle(tri, 0, 1)
	require.True(t, ok)
	// the x=1 plane crosses edge (0,0,0)-(2,0,0) at (1,0,0) and edge
	// (0,0,0)-(0,2,0) never crosses, but edge (2,0,0)-(0,2,0) crosses at
	// (1,1,0).
	pts := []mesh.Vec3{p0, p1}
	assert.Contains(t, pts, mesh.Vec3{X: 1, Y: 0, Z: 0})
	assert.Contains(t, pts, mesh.Vec3{X: 1, Y: 1, Z: 0})
}

func TestSliceTriangle_MissesPlane(t *testing.T) {
	tri := [3]mesh.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}
	_, _, ok := sliceTriangle(tri, 0, 5)
	assert.False(t, ok, "a plane entirely outside the triangle's x-extent must not cross it")
}

func TestWriteDebugSVG_OnlyDrawsSlicedFacets(t *testing.T) {
	var buf bytes.Buffer
	dom := barDomain()
	// the bar's tet spans x in [0,1]; a slice outside that range must
	// produce no cross-section segments at all.
	WriteDebugSVG(&buf, dom, 100, 100, 5)
	out := buf.String()
	assert.NotContains(t, out, "<line")

	buf.Reset()
	WriteDebugSVG(&buf, dom, 100, 100, 0.25)
	assert.Contains(t, buf.String(), "<line")
}

// Package mesh holds the vertex/tetrahedron data model shared by every
// stage of the domain extraction pipeline.
package mesh

import "math"

// Vec3 is a point or displacement in 3-space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

//-----------------------------------------------------------------------------

// Dead is the sentinel value stored in a tet's first vertex slot to mark it
// as dead. Dead tets keep their slot so indices into Tets stay stable until
// compaction runs.
const Dead int32 = -1

// Tet is a tetrahedron given as four vertex indices into a Vertices slice.
type Tet [4]int32

// FaceOrder gives, for each local face j (opposite local vertex j), the
// local vertex order (a,b,c) that yields an outward-pointing normal under
// the Volume sign convention.
var FaceOrder = [4][3]int{
	{1, 3, 2},
	{0, 2, 3},
	{0, 3, 1},
	{0, 1, 2},
}

// Face returns the three global vertex indices of local face j, in the
// outward-oriented order given by FaceOrder.
func (t Tet) Face(j int) (int32, int32, int32) {
	o := FaceOrder[j]
	return t[o[0]], t[o[1]], t[o[2]]
}

//-----------------------------------------------------------------------------

// Material is the three-way tet partition read from the parser's mat0/mat1/
// mat2 sections. mat0 is surfaced only in diagnostics; its semantics are
// unspecified upstream.
type Material struct {
	Mat0 []int32
	Mat1 []int32
	Mat2 []int32
}

// Keep returns the set of tet indices that should stay live for the given
// toggle setting: mat2 by default, mat1 once toggled.
func (m Material) Keep(toggle bool) map[int32]struct{} {
	selected := m.Mat2
	if toggle {
		selected = m.Mat1
	}
	keep := make(map[int32]struct{}, len(selected))
	for _, i := range selected {
		keep[i] = struct{}{}
	}
	return keep
}

//-----------------------------------------------------------------------------

// Mesh is the mutable vertex/tet array pair that flows through every stage.
type Mesh struct {
	V []Vec3
	T []Tet
}

// New builds a Mesh from raw vertex and tet slices.
func New(v []Vec3, t []Tet) *Mesh {
	return &Mesh{V: v, T: t}
}

// NTets returns the total slot count, live and dead.
func (m *Mesh) NTets() int {
	return len(m.T)
}

// NVerts returns the vertex count.
func (m *Mesh) NVerts() int {
	return len(m.V)
}

// Live reports whether tet i has not been killed.
func (m *Mesh) Live(i int) bool {
	return m.T[i][0] != Dead
}

// Kill marks tet i dead in place; its slot is retained.
func (m *Mesh) Kill(i int) {
	m.T[i][0] = Dead
}

// LiveCount returns the number of tets that have not been killed.
func (m *Mesh) LiveCount() int {
	n := 0
	for i := range m.T {
		if m.Live(i) {
			n++
		}
	}
	return n
}

// ApplyMaterial kills every tet not present in the kept set.
func (m *Mesh) ApplyMaterial(mat Material, toggle bool) {
	keep := mat.Keep(toggle)
	for i := range m.T {
		if _, ok := keep[int32(i)]; !ok {
			m.Kill(i)
		}
	}
}

// Vertices returns the coordinates of a tet's four corner nodes.
func (m *Mesh) Vertices(i int) (a, b, c, d Vec3) {
	t := m.T[i]
	return m.V[t[0]], m.V[t[1]], m.V[t[2]], m.V[t[3]]
}

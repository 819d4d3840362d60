// Package spatial provides a nearest-facet and bounding-box overlap query
// over the extracted domain's boundary facets, an rtreego-backed analogue
// of the voxel-grid Locate query the teacher mesh package offers over its
// own finite elements.
package spatial

import (
	"math"

	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/geom"
	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/dhconnelly/rtreego"
)

// facetSpatial adapts one Facet into an rtreego.Spatial by its own
// triangle bounding box, so the tree can be queried by point or region.
type facetSpatial struct {
	idx     int
	bounds  *rtreego.Rect
	facet   facet.Facet
	centroid mesh.Vec3
}

func (f *facetSpatial) Bounds() *rtreego.Rect {
	return f.bounds
}

// FacetIndex is a spatial index over one extraction's boundary facets.
type FacetIndex struct {
	tree   *rtreego.Rtree
	facets []*facetSpatial
}

const minRectSize = 1e-9

// NewFacetIndex builds a FacetIndex from a compacted mesh and its extracted
// facets.
func NewFacetIndex(m compact.Result, facets []facet.Facet) (*FacetIndex, error) {
	idx := &FacetIndex{tree: rtreego.NewTree(3, 25, 50)}
	for i, f := range facets {
		a, b, c := m.Mesh.V[f.A], m.Mesh.V[f.B], m.Mesh.V[f.C]
		box := geom.TetBox(a, b, c, a)
		size := box.Size()
		lengths := [3]float64{
			math.Max(size.X, minRectSize),
			math.Max(size.Y, minRectSize),
			math.Max(size.Z, minRectSize),
		}
		pt := rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z}
		rect, err := rtreego.NewRect(pt, lengths[:])
		if err != nil {
			return nil, err
		}
		centroid := mesh.Vec3{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
			Z: (a.Z + b.Z + c.Z) / 3,
		}
		fs := &facetSpatial{idx: i, bounds: rect, facet: f, centroid: centroid}
		idx.facets = append(idx.facets, fs)
		idx.tree.Insert(fs)
	}
	return idx, nil
}

// Nearest returns the index and boundary ID of the facet whose centroid is
// closest to p, by brute scan over the tree's nearest-neighbour candidates.
// False is returned if the index holds no facets.
func (idx *FacetIndex) Nearest(p mesh.Vec3) (facetIdx int, boundary percolate.BoundaryID, ok bool) {
	if len(idx.facets) == 0 {
		return 0, 0, false
	}
	query := rtreego.Point{p.X, p.Y, p.Z}
	results := idx.tree.NearestNeighbors(len(idx.facets), query)

	best := -1
	bestDist := math.Inf(1)
	for _, r := range results {
		fs, isFacet := r.(*facetSpatial)
		if !isFacet {
			continue
		}
		d := p.Sub(fs.centroid).Length()
		if d < bestDist {
			bestDist = d
			best = fs.idx
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, idx.facets[best].facet.Boundary, true
}

// Overlapping returns the indices of every facet whose bounding box
// intersects box.
func (idx *FacetIndex) Overlapping(box geom.Box3) ([]int, error) {
	size := box.Size()
	lengths := [3]float64{
		math.Max(size.X, minRectSize),
		math.Max(size.Y, minRectSize),
		math.Max(size.Z, minRectSize),
	}
	rect, err := rtreego.NewRect(rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z}, lengths[:])
	if err != nil {
		return nil, err
	}
	var out []int
	for _, r := range idx.tree.SearchIntersect(rect) {
		if fs, isFacet := r.(*facetSpatial); isFacet {
			out = append(out, fs.idx)
		}
	}
	return out, nil
}

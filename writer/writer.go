// Package writer emits the extracted domain (compacted mesh plus
// classified boundary facets) in several output formats: Gmsh, Triangle,
// and VTK UnstructuredGrid XML as the primary formats named by spec.md, plus
// a handful of supplemental formats useful for visual inspection.
package writer

import (
	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/facet"
)

// Domain bundles everything a writer needs: the compacted vertex/tet
// arrays and the classified boundary facets that reference them.
type Domain struct {
	Mesh   compact.Result
	Facets []facet.Facet
}

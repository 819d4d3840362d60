//-----------------------------------------------------------------------------
/*

Extract the inlet-to-outlet percolating domain from a two-phase Tarantula
tetrahedral mesh, for downstream pore-scale flow simulation.

*/
//-----------------------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arashmh/poreflow/adjacency"
	"github.com/arashmh/poreflow/compact"
	"github.com/arashmh/poreflow/errs"
	"github.com/arashmh/poreflow/facet"
	"github.com/arashmh/poreflow/geom"
	meshpkg "github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
	"github.com/arashmh/poreflow/purge"
	"github.com/arashmh/poreflow/spatial"
	"github.com/arashmh/poreflow/tarantula"
	"github.com/arashmh/poreflow/writer"
)

//-----------------------------------------------------------------------------

func usage() {
	fmt.Fprintf(os.Stderr, "\nUsage: %s [options ...] [Tarantula mesh file]\n", os.Args[0])
	flag.PrintDefaults()
}

// formatList collects every "--format" occurrence on the command line, so
// a single run can emit more than one output format.
type formatList []string

func (f *formatList) String() string { return strings.Join(*f, ",") }

func (f *formatList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var formats formatList
	var (
		verbose     = flag.Bool("v", false, "verbose output")
		toggle      = flag.Bool("t", false, "toggle the material selection for the mesh")
		out         = flag.String("o", "domain", "output path stem (extension added per format)")
		purgeLocked = flag.Bool("purge-locked", false, "run the optional locked-tet purge after extraction")
		debugSVG    = flag.String("debug-svg", "", "optional path to write a debug SVG cross-section")
		debugPNG    = flag.String("debug-png", "", "optional path to write a debug PNG cross-section")
		sliceX      = flag.Float64("slice-x", math.NaN(), "x=const cross-section for --debug-svg/--debug-png (default: mesh x-center)")
		sliceZ      = flag.Float64("slice-z", math.NaN(), "z=const cross-section for the dxf format (default: mesh z-center)")
		probe       = flag.String("probe", "", "x,y,z: print the nearest boundary ID to this point and exit")
	)
	flag.BoolVar(verbose, "verbose", false, "verbose output (same as -v)")
	flag.BoolVar(toggle, "toggle", false, "toggle the material selection for the mesh (same as -t)")
	flag.Var(&formats, "format", "output format: gmsh, triangle, vtu, 3mf, or dxf; repeatable (default: gmsh)")
	flag.Usage = usage
	flag.Parse()

	if len(formats) == 0 {
		formats = formatList{"gmsh"}
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	infile := flag.Arg(0)

	if err := run(infile, *verbose, *toggle, formats, *out, *purgeLocked, *debugSVG, *debugPNG, *sliceX, *sliceZ, *probe); err != nil {
		log.Printf("error: %s", err)
		os.Exit(1)
	}
}

func run(infile string, verbose, toggle bool, formats []string, out string, purgeLocked bool, debugSVG, debugPNG string, sliceX, sliceZ float64, probe string) error {
	f, err := os.Open(infile)
	if err != nil {
		return errs.Newf(errs.IOError, err, "opening %s", infile)
	}
	defer f.Close()

	parsed, err := tarantula.Parse(f)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("parsed %d nodes, %d tets, mat0=%d mat1=%d mat2=%d",
			len(parsed.Verts), len(parsed.Tets),
			len(parsed.Mat.Mat0), len(parsed.Mat.Mat1), len(parsed.Mat.Mat2))
	}

	mesh := meshpkg.New(parsed.Verts, parsed.Tets)
	mesh.ApplyMaterial(parsed.Mat, toggle)
	if verbose {
		log.Printf("material selection left %d/%d tets live", mesh.LiveCount(), mesh.NTets())
	}

	report := percolate.FilterOrientation(mesh)
	if verbose {
		for _, w := range report.Warnings {
			log.Print(w)
		}
		log.Printf("orientation filter killed %d tets", report.Killed)
	}

	ee, err := adjacency.Build(mesh)
	if err != nil {
		return err
	}

	bb := geom.BoundingBox(mesh.V)
	eta := geom.Eta(mesh)
	front0, front1 := percolate.SeedFronts(mesh, ee, bb, eta)
	label, err := percolate.TwoPassFlood(mesh, ee, front0, front1)
	if err != nil {
		return err
	}

	comp := compact.Compact(mesh, label)
	if verbose {
		log.Printf("compacted to %d tets, %d vertices", comp.Mesh.NTets(), comp.Mesh.NVerts())
	}

	facets := facet.Extract(mesh, ee, label, comp, bb, eta)

	if purgeLocked {
		killed := purge.Purge(comp.Mesh, facets)
		if verbose {
			log.Printf("locked-tet purge killed %d tets", killed)
		}
	}

	dom := writer.Domain{Mesh: comp, Facets: facets}

	for _, format := range formats {
		if err := writeOutput(dom, format, out, sliceZ); err != nil {
			return err
		}
	}
	if debugSVG != "" {
		if err := writeDebugSVG(dom, debugSVG, sliceX); err != nil {
			return err
		}
	}
	if debugPNG != "" {
		if err := writeDebugPNG(dom, debugPNG, sliceX); err != nil {
			return err
		}
	}
	if probe != "" {
		if err := runProbe(dom, probe); err != nil {
			return err
		}
	}
	return nil
}

func runProbe(dom writer.Domain, probe string) error {
	parts := strings.Split(probe, ",")
	if len(parts) != 3 {
		return errs.Newf(errs.MalformedInput, nil, "--probe wants x,y,z, got %q", probe)
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return errs.Newf(errs.MalformedInput, err, "parsing --probe coordinate %q", p)
		}
		xyz[i] = v
	}

	idx, err := spatial.NewFacetIndex(dom.Mesh, dom.Facets)
	if err != nil {
		return err
	}
	facetIdx, boundary, ok := idx.Nearest(meshpkg.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	if !ok {
		fmt.Println("no facets in extracted domain")
		return nil
	}
	fmt.Printf("nearest facet %d, boundary ID %d\n", facetIdx, int(boundary))
	return nil
}

func writeOutput(dom writer.Domain, format, out string, sliceZ float64) error {
	switch format {
	case "gmsh":
		f, err := os.Create(out + ".msh")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.msh", out)
		}
		defer f.Close()
		return writer.WriteGmsh(f, dom)
	case "vtu":
		f, err := os.Create(out + ".vtu")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.vtu", out)
		}
		defer f.Close()
		return writer.WriteVTU(f, dom)
	case "triangle":
		nodeF, err := os.Create(out + ".node")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.node", out)
		}
		defer nodeF.Close()
		eleF, err := os.Create(out + ".ele")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.ele", out)
		}
		defer eleF.Close()
		faceF, err := os.Create(out + ".face")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.face", out)
		}
		defer faceF.Close()
		return writer.WriteTriangle(nodeF, eleF, faceF, dom)
	case "3mf":
		f, err := os.Create(out + ".3mf")
		if err != nil {
			return errs.Newf(errs.IOError, err, "creating %s.3mf", out)
		}
		defer f.Close()
		return writer.WriteThreeMF(f, dom)
	case "dxf":
		return writer.WriteDXF(out+".dxf", dom, sliceZ)
	default:
		return errs.Newf(errs.MalformedInput, nil, "unknown output format %q", format)
	}
}

func writeDebugSVG(dom writer.Domain, path string, sliceX float64) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Newf(errs.IOError, err, "creating %s", path)
	}
	defer f.Close()
	writer.WriteDebugSVG(f, dom, 800, 800, sliceX)
	return nil
}

func writeDebugPNG(dom writer.Domain, path string, sliceX float64) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Newf(errs.IOError, err, "creating %s", path)
	}
	defer f.Close()
	return writer.WriteDebugPNG(f, dom, 800, 800, sliceX, "", nil)
}

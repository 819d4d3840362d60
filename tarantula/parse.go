// Package tarantula parses the two-phase Tarantula mesh text format: a
// node/element list annotated with exactly three material sections.
package tarantula

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arashmh/poreflow/errs"
	"github.com/arashmh/poreflow/mesh"
)

// Mesh is the raw parse result: the vertex/tet arrays plus the material
// partition, before any orientation filtering or index validation.
type Mesh struct {
	Verts []mesh.Vec3
	Tets  []mesh.Tet
	Mat   mesh.Material
}

type scanner struct {
	r   *bufio.Scanner
	w   *wordScanner
	err error
}

// wordScanner tokenizes whitespace-separated fields across line boundaries,
// matching the original parser's use of a formatted stream extraction
// operator that does not respect line breaks.
type wordScanner struct {
	s       *bufio.Scanner
	pending []string
}

func newWordScanner(r io.Reader) *wordScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &wordScanner{s: s}
}

func (w *wordScanner) next() (string, bool) {
	for len(w.pending) == 0 {
		if !w.s.Scan() {
			return "", false
		}
		w.pending = strings.Fields(w.s.Text())
	}
	tok := w.pending[0]
	w.pending = w.pending[1:]
	return tok, true
}

func (w *wordScanner) nextLine() (string, bool) {
	// A pending line fragment means the word scanner is mid-line; the
	// original format never mixes a throwaway getline with partially
	// consumed tokens, so this only triggers at true line boundaries.
	if !w.s.Scan() {
		return "", false
	}
	return w.s.Text(), true
}

func (w *wordScanner) nextInt() (int, error) {
	tok, ok := w.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(tok)
}

func (w *wordScanner) nextFloat() (float64, error) {
	tok, ok := w.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(tok, 64)
}

// Parse reads a Tarantula mesh: two throwaway header lines, a node count
// followed by that many (x y z) coordinate triples, an element count
// followed by that many "4 v0 v1 v2 v3" tet lines, and exactly three
// "mat<k>" sections (a header line, a junked line, a count, and that many
// tet indices). Vertex indices are auto-detected as 0-based or 1-based from
// their observed range and normalized to 0-based.
func Parse(r io.Reader) (*Mesh, error) {
	w := newWordScanner(r)

	if _, ok := w.nextLine(); !ok {
		return nil, errs.New(errs.MalformedInput, "missing header line 1", nil)
	}
	if _, ok := w.nextLine(); !ok {
		return nil, errs.New(errs.MalformedInput, "missing header line 2", nil)
	}

	nNodes, err := w.nextInt()
	if err != nil {
		return nil, errs.Newf(errs.MalformedInput, err, "reading node count")
	}
	if nNodes < 0 {
		return nil, errs.Newf(errs.MalformedInput, nil, "negative node count %d", nNodes)
	}

	verts := make([]mesh.Vec3, nNodes)
	for i := 0; i < nNodes; i++ {
		x, err := w.nextFloat()
		if err != nil {
			return nil, errs.Newf(errs.MalformedInput, err, "reading node %d x", i)
		}
		y, err := w.nextFloat()
		if err != nil {
			return nil, errs.Newf(errs.MalformedInput, err, "reading node %d y", i)
		}
		z, err := w.nextFloat()
		if err != nil {
			return nil, errs.Newf(errs.MalformedInput, err, "reading node %d z", i)
		}
		verts[i] = mesh.Vec3{X: x, Y: y, Z: z}
	}

	// Two throwaway lines between the node block and the element count.
	// The original's first getline() after the coordinate-extraction loop
	// only flushes the remainder of the last `>>` token's line, which is a
	// no-op once that line has already been fully consumed word by word;
	// only the following two getlines skip genuine junk lines.
	for i := 0; i < 2; i++ {
		w.nextLine()
	}

	nTetra, err := w.nextInt()
	if err != nil {
		return nil, errs.Newf(errs.MalformedInput, err, "reading element count")
	}
	if nTetra < 0 {
		return nil, errs.Newf(errs.MalformedInput, nil, "negative element count %d", nTetra)
	}

	rawTets := make([][4]int, nTetra)
	minIdx, maxIdx := 0, 0
	first := true
	for i := 0; i < nTetra; i++ {
		nloc, err := w.nextInt()
		if err != nil {
			return nil, errs.Newf(errs.MalformedInput, err, "reading element %d vertex count", i)
		}
		if nloc != 4 {
			return nil, errs.Newf(errs.MalformedInput, nil, "element %d has %d local vertices, want 4", i, nloc)
		}
		var t [4]int
		for j := 0; j < 4; j++ {
			v, err := w.nextInt()
			if err != nil {
				return nil, errs.Newf(errs.MalformedInput, err, "reading element %d vertex %d", i, j)
			}
			t[j] = v
			if first {
				minIdx, maxIdx = v, v
				first = false
			} else {
				if v < minIdx {
					minIdx = v
				}
				if v > maxIdx {
					maxIdx = v
				}
			}
		}
		rawTets[i] = t
	}

	offset := 0
	if nTetra > 0 && minIdx == 1 && maxIdx == nNodes {
		offset = -1
	}

	tets := make([]mesh.Tet, nTetra)
	for i, t := range rawTets {
		tets[i] = mesh.Tet{
			int32(t[0] + offset), int32(t[1] + offset),
			int32(t[2] + offset), int32(t[3] + offset),
		}
	}

	mat, err := parseMaterials(w, nTetra)
	if err != nil {
		return nil, err
	}

	return &Mesh{Verts: verts, Tets: tets, Mat: mat}, nil
}

// parseMaterials scans forward line by line looking for "mat" headers,
// mirroring the original format's free scan through trailing whitespace and
// comment-like lines until exactly three material sections are found.
// Material entries index directly into the element array (0-based), a
// separate index space from node coordinates, so no offset normalization
// applies here.
func parseMaterials(w *wordScanner, nTetra int) (mesh.Material, error) {
	var sections [][]int32
	for {
		line, ok := w.nextLine()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "mat") {
			continue
		}

		// junk line
		w.nextLine()

		cnt, err := w.nextInt()
		if err != nil {
			return mesh.Material{}, errs.Newf(errs.MalformedInput, err, "reading %s count", line)
		}
		cells := make([]int32, cnt)
		for i := 0; i < cnt; i++ {
			v, err := w.nextInt()
			if err != nil {
				return mesh.Material{}, errs.Newf(errs.MalformedInput, err, "reading %s entry %d", line, i)
			}
			cells[i] = int32(v)
		}
		sections = append(sections, cells)
	}

	if len(sections) != 3 {
		return mesh.Material{}, errs.Newf(errs.MalformedInput, nil,
			"expected exactly 3 material sections, found %d", len(sections))
	}
	return mesh.Material{Mat0: sections[0], Mat1: sections[1], Mat2: sections[2]}, nil
}

package writer

import (
	"encoding/xml"
	"fmt"
	"io"
)

type vtuFile struct {
	XMLName xml.Name    `xml:"VTKFile"`
	Type    string      `xml:"type,attr"`
	Version string      `xml:"version,attr"`
	Grid    vtuUnstruct `xml:"UnstructuredGrid"`
}

type vtuUnstruct struct {
	Piece vtuPiece `xml:"Piece"`
}

type vtuPiece struct {
	NumberOfPoints int          `xml:"NumberOfPoints,attr"`
	NumberOfCells  int          `xml:"NumberOfCells,attr"`
	Points         vtuPoints    `xml:"Points"`
	Cells          vtuCells     `xml:"Cells"`
	CellData       *vtuCellData `xml:"CellData,omitempty"`
}

type vtuPoints struct {
	DataArray vtuDataArray `xml:"DataArray"`
}

type vtuCells struct {
	DataArrays []vtuDataArray `xml:"DataArray"`
}

type vtuCellData struct {
	DataArray vtuDataArray `xml:"DataArray"`
}

type vtuDataArray struct {
	Name        string `xml:"Name,attr,omitempty"`
	Type        string `xml:"type,attr"`
	NumComp     int    `xml:"NumberOfComponents,attr,omitempty"`
	Format      string `xml:"format,attr"`
	CharData    string `xml:",chardata"`
}

// WriteVTU writes d as a VTK UnstructuredGrid XML file (.vtu), ASCII
// encoded. Surviving tets are written as VTK_TETRA (type 10) cells; the
// classified boundary facets are not part of the cell list (VTU has no
// native concept of a tagged boundary surface bundled with a volume mesh),
// so they are written out-of-band via WriteGmsh/WriteTriangle instead.
func WriteVTU(w io.Writer, d Domain) error {
	m := d.Mesh.Mesh

	var pts, offsets, conn, types, tags string
	for _, v := range m.V {
		pts += fmt.Sprintf("%g %g %g ", v.X, v.Y, v.Z)
	}

	offset := 0
	for _, t := range m.T {
		conn += fmt.Sprintf("%d %d %d %d ", t[0], t[1], t[2], t[3])
		offset += 4
		offsets += fmt.Sprintf("%d ", offset)
		types += "10 "
		tags += "0 "
	}

	doc := vtuFile{
		Type:    "UnstructuredGrid",
		Version: "0.1",
		Grid: vtuUnstruct{
			Piece: vtuPiece{
				NumberOfPoints: m.NVerts(),
				NumberOfCells:  m.NTets(),
				Points: vtuPoints{
					DataArray: vtuDataArray{Type: "Float64", NumComp: 3, Format: "ascii", CharData: pts},
				},
				Cells: vtuCells{
					DataArrays: []vtuDataArray{
						{Name: "connectivity", Type: "Int32", Format: "ascii", CharData: conn},
						{Name: "offsets", Type: "Int32", Format: "ascii", CharData: offsets},
						{Name: "types", Type: "UInt8", Format: "ascii", CharData: types},
					},
				},
				CellData: &vtuCellData{
					DataArray: vtuDataArray{Name: "material", Type: "Int32", Format: "ascii", CharData: tags},
				},
			},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

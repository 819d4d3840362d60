package writer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/arashmh/poreflow/mesh"
	"github.com/arashmh/poreflow/percolate"
)

// WriteDebugPNG rasterizes the same x=const cross-section as WriteDebugSVG,
// as a PNG. If label is non-empty and font is non-nil, the label is stamped in the
// top-left corner (e.g. the input file name), using freetype for glyph
// rasterization the way draw2d itself does internally.
func WriteDebugPNG(w io.Writer, d Domain, width, height int, x float64, label string, font *truetype.Font) error {
	dest := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetFillColor(color.White)
	gc.Clear()

	bb := boundingBox(d.Mesh.Mesh.V)
	sliceX := sliceOrCenter(x, bb, 0)
	uAxis, vAxis := planeAxes(0)
	uMin, vMin := axisValue(bb.Min, uAxis), axisValue(bb.Min, vAxis)
	uSize := axisValue(bb.Max, uAxis) - uMin
	vSize := axisValue(bb.Max, vAxis) - vMin
	scale := projectionScale2(uSize, vSize, width, height)

	m := d.Mesh.Mesh
	for _, f := range d.Facets {
		tri := [3]mesh.Vec3{m.V[f.A], m.V[f.B], m.V[f.C]}
		p0, p1, ok := sliceTriangle(tri, 0, sliceX)
		if !ok {
			continue
		}
		x0, y0 := project2(axisValue(p0, uAxis), axisValue(p0, vAxis), uMin, vMin, scale, height)
		x1, y1 := project2(axisValue(p1, uAxis), axisValue(p1, vAxis), uMin, vMin, scale, height)

		gc.SetStrokeColor(rgbaFor(f.Boundary))
		gc.MoveTo(float64(x0), float64(y0))
		gc.LineTo(float64(x1), float64(y1))
		gc.Stroke()
	}

	if label != "" && font != nil {
		ctx := freetype.NewContext()
		ctx.SetDPI(72)
		ctx.SetFont(font)
		ctx.SetFontSize(12)
		ctx.SetClip(dest.Bounds())
		ctx.SetDst(dest)
		ctx.SetSrc(image.NewUniform(color.Black))
		if _, err := ctx.DrawString(label, freetype.Pt(8, 16)); err != nil {
			return err
		}
	}

	return png.Encode(w, dest)
}

func rgbaFor(id percolate.BoundaryID) color.RGBA {
	switch boundaryColor(id) {
	case "red":
		return color.RGBA{R: 220, A: 255}
	case "blue":
		return color.RGBA{B: 220, A: 255}
	case "green":
		return color.RGBA{G: 150, A: 255}
	case "orange":
		return color.RGBA{R: 230, G: 140, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
}

// Implements a raster preview of an icon set,
// by wrapping rasterx.
// Each icon is drawn in a cell of a grid, with its name below.
package svgraster

import (
	"bufio"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/benoitkugler/iconjs/iconset"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelHeight is the height reserved below each icon for its name.
const LabelHeight = 16

// ViewBox is the fixed view box used by the icon loader.
const ViewBox = "0 0 24 24"

// Sheet describes the layout of a preview grid.
type Sheet struct {
	Cell    int // size of the (square) icon area, in pixels
	Columns int
}

// DefaultSheet draws icons at twice their nominal size.
var DefaultSheet = Sheet{Cell: 48, Columns: 8}

func (s Sheet) columns(n int) int {
	if n < s.Columns {
		return n
	}
	return s.Columns
}

// Bounds returns the size of the sheet for n icons.
func (s Sheet) Bounds(n int) image.Rectangle {
	cols := s.columns(n)
	if cols <= 0 {
		return image.Rectangle{}
	}
	rows := (n + cols - 1) / cols
	return image.Rect(0, 0, cols*s.Cell, rows*(s.Cell+LabelHeight))
}

// cellOrigin returns the top left corner of the i-th cell
func (s Sheet) cellOrigin(i, cols int) image.Point {
	return image.Pt((i%cols)*s.Cell, (i/cols)*(s.Cell+LabelHeight))
}

// iconDocument wraps path data in a minimal SVG document
func iconDocument(pathData string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="` + ViewBox + `"><path d="` +
		html.EscapeString(pathData) + `"/></svg>`
}

// Render draws every entry of set on a white background.
// The names of the entries whose path data could not be
// compiled are returned; their cells are left empty.
func (s Sheet) Render(set iconset.Set) (*image.RGBA, []string) {
	bounds := s.Bounds(len(set))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)
	if bounds.Empty() {
		return img, nil
	}

	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, bounds)
	dasher := rasterx.NewDasher(w, h, scanner)
	label := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	cols := s.columns(len(set))
	var failed []string
	for i, entry := range set {
		origin := s.cellOrigin(i, cols)
		s.drawLabel(label, origin, entry.Name)

		icon, err := oksvg.ReadIconStream(strings.NewReader(iconDocument(entry.PathData)), oksvg.StrictErrorMode)
		if err != nil {
			failed = append(failed, entry.Name)
			continue
		}
		// path data may overflow the view box
		scanner.SetClip(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(s.Cell, s.Cell))})
		icon.SetTarget(float64(origin.X), float64(origin.Y), float64(s.Cell), float64(s.Cell))
		icon.Draw(dasher, 1.0)
	}
	return img, failed
}

// drawLabel centers name below the icon area, truncating
// it to the cell width
func (s Sheet) drawLabel(d *font.Drawer, origin image.Point, name string) {
	runes := []rune(name)
	for len(runes) > 0 && d.MeasureString(string(runes)) > fixed.I(s.Cell) {
		runes = runes[:len(runes)-1]
	}
	width := d.MeasureString(string(runes))
	d.Dot = fixed.Point26_6{
		X: fixed.I(origin.X) + (fixed.I(s.Cell)-width)/2,
		Y: fixed.I(origin.Y + s.Cell + LabelHeight - 3),
	}
	d.DrawString(string(runes))
}

// WritePNG renders set and saves it as a PNG image in file.
func (s Sheet) WritePNG(file string, set iconset.Set) ([]string, error) {
	img, failed := s.Render(set)
	out, err := os.Create(file)
	if err != nil {
		return failed, err
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	if err = png.Encode(buf, img); err != nil {
		return failed, err
	}
	if err = buf.Flush(); err != nil {
		return failed, err
	}
	return failed, out.Close()
}

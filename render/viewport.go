package render

import (
	"math"

	"github.com/lixenwraith/flanker/parameter"
)

// Viewport maps world X/Y onto terminal cells around a centre point
// World Y grows up the screen; rows are stretched by the cell aspect
type Viewport struct {
	Width, Height int // map area in cells
	Top           int // first map row on the surface
	CenterX       float64
	CenterY       float64
	CellsPerUnit  float64
}

// unitsPerRow is world units covered by one terminal row
func (v Viewport) unitsPerRow() float64 {
	return parameter.CellAspect / v.CellsPerUnit
}

// ToWorld returns the world X/Y at the centre of a surface cell
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	x = v.CenterX + (float64(col)+0.5-float64(v.Width)/2)/v.CellsPerUnit
	y = v.CenterY - (float64(row-v.Top)+0.5-float64(v.Height)/2)*v.unitsPerRow()
	return x, y
}

// ToCell returns the surface cell for a world point and whether it lies in the map area
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor((x-v.CenterX)*v.CellsPerUnit + float64(v.Width)/2))
	row = int(math.Floor(-(y-v.CenterY)/v.unitsPerRow()+float64(v.Height)/2)) + v.Top
	ok = col >= 0 && col < v.Width && row >= v.Top && row < v.Top+v.Height
	return col, row, ok
}

// headingGlyphs are arrows for eight compass sectors, counter-clockwise from +X
var headingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// HeadingGlyph returns the arrow for the direction of travel
// Forward is body -X, so heading 0 flies towards -X
func HeadingGlyph(heading float64) rune {
	rad := heading * math.Pi / 180
	dx, dy := -math.Cos(rad), -math.Sin(rad)
	a := math.Atan2(dy, dx)
	sector := int(math.Round(a/(math.Pi/4))) & 7
	return headingGlyphs[sector]
}

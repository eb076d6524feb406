// Package terrain holds the heightfield the aircraft flies over: building it
// from images, caching it to disk and answering ground-contact queries
package terrain

import "math"

// Terrain is a regular grid of heights with one world unit between vertices
// Row 0 is world Y = 0; image rows are flipped on import
type Terrain struct {
	Width   int       `cbor:"w"`
	Height  int       `cbor:"h"`
	Scale   float64   `cbor:"s"`
	Heights []float32 `cbor:"z"`   // Width*Height, world units
	Colors  []uint8   `cbor:"rgb"` // Width*Height*3
}

// Contains reports whether (x, y) lies on the grid
func (t *Terrain) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= float64(t.Width-1) && y <= float64(t.Height-1)
}

// HeightAt returns the bilinearly interpolated surface height, clamping to the grid edge
func (t *Terrain) HeightAt(x, y float64) float64 {
	x = clampf(x, 0, float64(t.Width-1))
	y = clampf(y, 0, float64(t.Height-1))

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := min(x0+1, t.Width-1), min(y0+1, t.Height-1)
	fx, fy := x-float64(x0), y-float64(y0)

	h00 := float64(t.Heights[y0*t.Width+x0])
	h10 := float64(t.Heights[y0*t.Width+x1])
	h01 := float64(t.Heights[y1*t.Width+x0])
	h11 := float64(t.Heights[y1*t.Width+x1])

	top := h00 + (h10-h00)*fx
	bottom := h01 + (h11-h01)*fx
	return top + (bottom-top)*fy
}

// ColorAt returns the nearest colour map sample
func (t *Terrain) ColorAt(x, y float64) (r, g, b uint8) {
	ix := int(math.Round(clampf(x, 0, float64(t.Width-1))))
	iy := int(math.Round(clampf(y, 0, float64(t.Height-1))))
	i := (iy*t.Width + ix) * 3
	return t.Colors[i], t.Colors[i+1], t.Colors[i+2]
}

// valid checks slice lengths after decoding
func (t *Terrain) valid() bool {
	n := t.Width * t.Height
	return t.Width > 1 && t.Height > 1 && len(t.Heights) == n && len(t.Colors) == n*3
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

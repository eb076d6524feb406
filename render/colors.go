package render

import "github.com/gdamore/tcell/v2"

// RGB colour definitions for the flight view
var (
	RgbBackground = tcell.NewRGBColor(12, 14, 22)    // Off-map void
	RgbStatusText = tcell.NewRGBColor(128, 255, 128) // Status labels, pale green
	RgbHUDText    = tcell.NewRGBColor(220, 220, 220) // Telemetry line
	RgbHUDBg      = tcell.NewRGBColor(20, 20, 30)    // Telemetry line background
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // Aircraft glyph
	RgbExplosion  = tcell.NewRGBColor(255, 140, 0)   // Explosion ring
	RgbFlash      = tcell.NewRGBColor(255, 240, 180) // Explosion core
	RgbHelpBg     = tcell.NewRGBColor(30, 30, 60)    // Help overlay
)

// Terrain palette, blended per cell before conversion
var (
	fogRGB    = [3]uint8{128, 128, 128} // Scene-wide fog
	waterRGB  = [3]uint8{40, 90, 170}   // Water plane
	groundRGB = [3]uint8{50, 90, 40}    // Flat world without a colour map
)

// blend mixes a towards b by t in [0, 1]
func blend(a, b [3]uint8, t float64) [3]uint8 {
	var out [3]uint8
	for i := range out {
		out[i] = uint8(float64(a[i])*(1-t) + float64(b[i])*t)
	}
	return out
}

// shade scales a colour by k, clamping at white
func shade(c [3]uint8, k float64) [3]uint8 {
	var out [3]uint8
	for i := range out {
		v := float64(c[i]) * k
		if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	return out
}

func rgb(c [3]uint8) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

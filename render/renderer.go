package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flanker/engine"
	"github.com/lixenwraith/flanker/input"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/status"
	"github.com/lixenwraith/flanker/system"
	"github.com/lixenwraith/flanker/terrain"
)

// explosionUnitsPerScale converts effect scale into a world radius
const explosionUnitsPerScale = 0.5

// Options configures the top-down view
type Options struct {
	WorldSize    float64
	WaterLevel   float64
	CellsPerUnit float64
	FogDensity   float64
	Debug        bool
}

// Renderer draws frames onto a terminal surface
// All methods run on the frame goroutine
type Renderer struct {
	surface Surface
	terrain *terrain.Terrain
	keys    *input.KeyTable
	metrics *status.Registry
	opts    Options

	showHelp bool
	muted    bool
}

// NewRenderer creates a renderer; t may be nil for a flat world
func NewRenderer(s Surface, t *terrain.Terrain, keys *input.KeyTable, metrics *status.Registry, opts Options) *Renderer {
	return &Renderer{
		surface: s,
		terrain: t,
		keys:    keys,
		metrics: metrics,
		opts:    opts,
	}
}

// ToggleHelp flips the key binding overlay
func (r *Renderer) ToggleHelp() { r.showHelp = !r.showHelp }

// SetMuted updates the sound indicator
func (r *Renderer) SetMuted(muted bool) { r.muted = muted }

// Draw renders one frame
func (r *Renderer) Draw(f engine.Frame) {
	s := r.surface
	s.Clear()

	w, h := s.Size()
	vp := Viewport{
		Width:        w,
		Height:       h - parameter.HUDRows - 1,
		Top:          parameter.HUDRows,
		CenterX:      f.Camera.X(),
		CenterY:      f.Camera.Y(),
		CellsPerUnit: r.opts.CellsPerUnit,
	}

	if vp.Height > 0 && vp.Width > 0 {
		r.drawTerrain(vp, f)
		if f.Phase == system.PhaseExploding {
			r.drawExplosion(vp, f)
		}
		if f.PlayerVisible {
			r.drawPlayer(vp, f)
		}
	}

	r.drawLabels(f)
	if h > 0 {
		r.drawHUD(f, h-1)
	}
	if r.showHelp {
		r.drawHelp(w, h)
	}

	s.Show()
}

func (r *Renderer) drawTerrain(vp Viewport, f engine.Frame) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	cam := f.Camera.Pos

	for row := vp.Top; row < vp.Top+vp.Height; row++ {
		for col := 0; col < vp.Width; col++ {
			x, y := vp.ToWorld(col, row)
			if x < 0 || y < 0 || x > r.opts.WorldSize || y > r.opts.WorldSize {
				r.surface.SetContent(col, row, ' ', nil, bg)
				continue
			}

			c, z := r.groundColor(x, y)
			glyph := ' '
			if z < r.opts.WaterLevel {
				c, z = waterRGB, r.opts.WaterLevel
				glyph = '~'
			}

			dx, dy, dz := x-cam[0], y-cam[1], z-cam[2]
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			c = blend(c, fogRGB, 1-math.Exp(-r.opts.FogDensity*dist))

			style := tcell.StyleDefault.Background(rgb(c)).Foreground(rgb(shade(c, 1.3)))
			r.surface.SetContent(col, row, glyph, nil, style)
		}
	}
}

// groundColor returns the shaded colour-map sample and surface height
func (r *Renderer) groundColor(x, y float64) ([3]uint8, float64) {
	t := r.terrain
	if t == nil || !t.Contains(x, y) {
		return groundRGB, 0
	}
	z := t.HeightAt(x, y)
	cr, cg, cb := t.ColorAt(x, y)
	k := 0.6
	if t.Scale > 0 {
		k += 0.5 * z / t.Scale
	}
	return shade([3]uint8{cr, cg, cb}, k), z
}

func (r *Renderer) drawPlayer(vp Viewport, f engine.Frame) {
	col, row, ok := vp.ToCell(f.Pose.X(), f.Pose.Y())
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(RgbPlayer).Background(RgbBackground).Bold(true)
	r.surface.SetContent(col, row, HeadingGlyph(f.Pose.H), nil, style)
}

func (r *Renderer) drawExplosion(vp Viewport, f engine.Frame) {
	radius := f.EffectScale * explosionUnitsPerScale
	cellW := 1 / vp.CellsPerUnit
	ring := tcell.StyleDefault.Foreground(RgbExplosion).Background(RgbBackground)
	core := tcell.StyleDefault.Foreground(RgbFlash).Background(RgbExplosion)

	cx, cy := f.EffectPose.X(), f.EffectPose.Y()
	for row := vp.Top; row < vp.Top+vp.Height; row++ {
		for col := 0; col < vp.Width; col++ {
			x, y := vp.ToWorld(col, row)
			d := math.Hypot(x-cx, y-cy)
			switch {
			case math.Abs(d-radius) <= cellW:
				r.surface.SetContent(col, row, '*', nil, ring)
			case d < radius*0.5:
				r.surface.SetContent(col, row, '▒', nil, core)
			}
		}
	}
}

func (r *Renderer) drawLabels(f engine.Frame) {
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbBackground).Bold(true)
	drawText(r.surface, 1, 0, f.StatusText, style)
	if r.opts.Debug {
		drawText(r.surface, 1, 1, f.CollisionText, style)
	}
}

func (r *Renderer) drawHUD(f engine.Frame, row int) {
	style := tcell.StyleDefault.Foreground(RgbHUDText).Background(RgbHUDBg)
	w, _ := r.surface.Size()
	for x := 0; x < w; x++ {
		r.surface.SetContent(x, row, ' ', nil, style)
	}

	fps := 0.0
	if r.metrics != nil {
		fps = r.metrics.FPS.Get()
	}
	sound := "♫"
	if r.muted {
		sound = "-"
	}
	line := fmt.Sprintf(" SPD %5.1f  ALT %5.1f  HPR %6.1f %6.1f %6.1f  XY %6.1f %6.1f  %s  FPS %3.0f  ? help",
		f.Speed, f.Pose.Z(), f.Pose.H, f.Pose.P, f.Pose.R, f.Pose.X(), f.Pose.Y(), sound, fps)
	drawText(r.surface, 0, row, line, style)
}

func (r *Renderer) drawHelp(w, h int) {
	if r.keys == nil {
		return
	}
	bindings := r.keys.Bindings()
	style := tcell.StyleDefault.Foreground(RgbHUDText).Background(RgbHelpBg)

	const boxW = 28
	boxH := len(bindings) + 2
	x0, y0 := (w-boxW)/2, (h-boxH)/2

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			if x0+x >= 0 && y0+y >= 0 {
				r.surface.SetContent(x0+x, y0+y, ' ', nil, style)
			}
		}
	}
	drawText(r.surface, x0+2, y0, "KEYS", style.Bold(true))
	for i, b := range bindings {
		drawText(r.surface, x0+2, y0+1+i, fmt.Sprintf("%-8s %s", b.Key, b.Action), style)
	}
}

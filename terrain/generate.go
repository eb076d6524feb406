package terrain

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// GenerateOptions shapes the procedural heightfield
type GenerateOptions struct {
	Size       int     // side in pixels, 2^n+1 matches the heightfield convention
	Seed       uint32
	Octaves    int
	Frequency  float64 // base cycles across the map
	WaterLevel float64 // normalised [0,1] level below which the colour map is water
}

// DefaultGenerateOptions returns an island-style map layout
func DefaultGenerateOptions(size int, seed uint32) GenerateOptions {
	return GenerateOptions{
		Size:       size,
		Seed:       seed,
		Octaves:    5,
		Frequency:  4,
		WaterLevel: 0.42,
	}
}

// Generate builds a heightfield and matching colour map from value noise
// Sampling is by pixel coordinate, so a seed always yields the same map
func Generate(opts GenerateOptions) (*image.Gray16, *image.RGBA) {
	n := opts.Size
	hf := image.NewGray16(image.Rect(0, 0, n, n))
	cm := image.NewRGBA(image.Rect(0, 0, n, n))

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			u := float64(x) / float64(n-1)
			v := float64(y) / float64(n-1)

			h := fbm(opts.Seed, u*opts.Frequency, v*opts.Frequency, opts.Octaves)
			// Radial falloff keeps the border low so the map reads as an island
			dx, dy := u-0.5, v-0.5
			falloff := 1 - math.Min(1, math.Sqrt(dx*dx+dy*dy)*1.6)
			h = clampf(h*0.55+falloff*0.55-0.1, 0, 1)

			hf.SetGray16(x, y, color.Gray16{Y: uint16(h * 0xffff)})
			cm.SetRGBA(x, y, paletteFor(h, opts.WaterLevel))
		}
	}
	return hf, cm
}

// WritePNGs generates a map and writes the heightfield and colour map files
func WritePNGs(opts GenerateOptions, heightfieldPath, colorMapPath string) error {
	hf, cm := Generate(opts)
	if err := writePNG(heightfieldPath, hf); err != nil {
		return err
	}
	return writePNG(colorMapPath, cm)
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return assetErr("write", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return assetErr("write", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return assetErr("write", path, err)
	}
	if err := f.Close(); err != nil {
		return assetErr("write", path, fmt.Errorf("close: %w", err))
	}
	return nil
}

func paletteFor(h, water float64) color.RGBA {
	switch {
	case h < water:
		return color.RGBA{R: 30, G: 70, B: 140, A: 255}
	case h < water+0.04:
		return color.RGBA{R: 200, G: 190, B: 130, A: 255}
	case h < 0.7:
		return color.RGBA{R: 60, G: 130, B: 50, A: 255}
	case h < 0.85:
		return color.RGBA{R: 110, G: 100, B: 80, A: 255}
	}
	return color.RGBA{R: 235, G: 235, B: 240, A: 255}
}

// fbm sums octaves of value noise, normalised to [0, 1]
func fbm(seed uint32, x, y float64, octaves int) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	for o := 0; o < octaves; o++ {
		sum += amp * valueNoise(seed+uint32(o)*0x9e3779b9, x, y)
		norm += amp
		amp *= 0.5
		x *= 2
		y *= 2
	}
	return sum / norm
}

// valueNoise interpolates hashed lattice values with a smoothstep
func valueNoise(seed uint32, x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := smooth(x-x0), smooth(y-y0)
	ix, iy := int32(x0), int32(y0)

	v00 := lattice(seed, ix, iy)
	v10 := lattice(seed, ix+1, iy)
	v01 := lattice(seed, ix, iy+1)
	v11 := lattice(seed, ix+1, iy+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lattice(seed uint32, x, y int32) float64 {
	return float64(hash2(seed, x, y)) / float64(math.MaxUint32)
}

// hash2 is a murmur-finaliser style mix of 2D lattice coordinates and seed
func hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

package terrain

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
)

// FromImages samples a heightfield and a colour map into a terrain
// Heights are the grey level normalised to [0, 1] times scale; the colour map
// is stretched over the heightfield, so the two images may differ in size
func FromImages(hf, cm image.Image, scale float64) (*Terrain, error) {
	hb, cb := hf.Bounds(), cm.Bounds()
	if hb.Empty() || cb.Empty() {
		return nil, ErrEmptyImage
	}

	w, h := hb.Dx(), hb.Dy()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: heightfield %dx%d", ErrEmptyImage, w, h)
	}

	t := &Terrain{
		Width:   w,
		Height:  h,
		Scale:   scale,
		Heights: make([]float32, w*h),
		Colors:  make([]uint8, w*h*3),
	}

	for y := 0; y < h; y++ {
		// World Y grows up, image rows grow down
		row := hb.Min.Y + h - 1 - y
		cy := cb.Min.Y + (h-1-y)*(cb.Dy()-1)/(h-1)
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(hf.At(hb.Min.X+x, row)).(color.Gray16)
			t.Heights[y*w+x] = float32(float64(g.Y) / 0xffff * scale)

			cx := cb.Min.X + x*(cb.Dx()-1)/(w-1)
			r, gg, b, _ := cm.At(cx, cy).RGBA()
			i := (y*w + x) * 3
			t.Colors[i] = uint8(r >> 8)
			t.Colors[i+1] = uint8(gg >> 8)
			t.Colors[i+2] = uint8(b >> 8)
		}
	}
	return t, nil
}

// Build reads the heightfield and colour map files and samples them
func Build(heightfieldPath, colorMapPath string, scale float64) (*Terrain, error) {
	hf, err := readImage(heightfieldPath)
	if err != nil {
		return nil, err
	}
	cm, err := readImage(colorMapPath)
	if err != nil {
		return nil, err
	}
	t, err := FromImages(hf, cm, scale)
	if err != nil {
		return nil, assetErr("decode", heightfieldPath, err)
	}
	return t, nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, assetErr("read", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, assetErr("decode", path, err)
	}
	return img, nil
}

package pixelgrid

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// DefaultThreshold is the luminance at or above which a composited pixel is ink.
const DefaultThreshold uint8 = 128

type imageConfig struct {
	threshold uint8
	invert    bool
}

// ImageOption customizes FromImage.
type ImageOption func(*imageConfig)

// WithThreshold sets the luminance cut-off (ink when luma >= t).
// Panics on 0, which would turn every pixel into ink.
func WithThreshold(t uint8) ImageOption {
	if t == 0 {
		panic("pixelgrid: WithThreshold(0)")
	}
	return func(c *imageConfig) { c.threshold = t }
}

// WithInvert treats dark pixels as ink, for sheets drawn black on white.
func WithInvert() ImageOption {
	return func(c *imageConfig) { c.invert = true }
}

// FromImage binarizes img into a Grid. The image is first composited over
// an opaque backdrop (black, or white under WithInvert) so transparent
// pixels become background, then each pixel's luminance is compared
// against the threshold.
// The grid origin is img.Bounds().Min.
// Complexity: O(W×H) time and memory.
func FromImage(img image.Image, opts ...ImageOption) *Grid {
	cfg := imageConfig{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return &Grid{}
	}

	backdrop := color.Black
	if cfg.invert {
		backdrop = color.White
	}
	flat := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(flat, flat.Bounds(), image.NewUniform(backdrop), image.Point{}, xdraw.Src)
	xdraw.Copy(flat, image.Point{}, img, b, xdraw.Over, nil)

	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			luma := color.GrayModel.Convert(flat.At(x, y)).(color.Gray).Y
			ink := luma >= cfg.threshold
			if cfg.invert {
				ink = !ink
			}
			if ink {
				cells[y*w+x] = 1
			}
		}
	}

	return &Grid{width: w, height: h, bits: cells}
}

// Package ggsource renders a deterministic moving test pattern as raw RGBA
// frames, giving the recorder a self-contained frame supply.
package ggsource

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/framecast/pkg/ports"
)

// Options configures the pattern appearance.
type Options struct {
	// Background fills the canvas. Defaults to a dark navy.
	Background color.Color
	// Accent colors the moving elements. Defaults to green.
	Accent color.Color
	// Supersample renders at N times the target size and scales down with
	// CatmullRom for smoother edges. Values below 2 disable it.
	Supersample int
}

// Source implements ports.FrameSource with a synthetic orbit-and-progress
// pattern. The same index always renders the same bytes.
type Source struct {
	width  int
	height int
	fps    int
	opts   Options
}

// New creates a pattern source for the given geometry and frame rate.
func New(width, height, fps int, opts Options) (*Source, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame geometry %dx%d", width, height)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", fps)
	}

	if opts.Background == nil {
		opts.Background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	}
	if opts.Accent == nil {
		opts.Accent = color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	}

	return &Source{width: width, height: height, fps: fps, opts: opts}, nil
}

// Frame renders frame index as a tightly packed RGBA buffer of exactly
// width*height*4 bytes.
func (s *Source) Frame(index int) ([]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative frame index %d", index)
	}

	scale := 1
	if s.opts.Supersample >= 2 {
		scale = s.opts.Supersample
	}
	w := s.width * scale
	h := s.height * scale

	dc := gg.NewContext(w, h)
	dc.SetColor(s.opts.Background)
	dc.Clear()

	cx := float64(w) / 2
	cy := float64(h) / 2

	// Orbiting disk, one revolution per second of output video.
	angle := 2 * math.Pi * float64(index) / float64(s.fps)
	orbit := math.Min(cx, cy) * 0.6
	dotRadius := math.Min(cx, cy) * 0.15
	dc.SetColor(s.opts.Accent)
	dc.DrawCircle(cx+orbit*math.Cos(angle), cy+orbit*math.Sin(angle), dotRadius)
	dc.Fill()

	// Progress bar along the bottom edge, filling once per second.
	frac := float64(index%s.fps) / float64(s.fps)
	barHeight := math.Max(float64(h)*0.05, 1)
	dc.DrawRectangle(0, float64(h)-barHeight, float64(w)*frac, barHeight)
	dc.Fill()

	img := dc.Image()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst.Pix, nil
	}
	return rgbaBytes(img, s.width, s.height), nil
}

// rgbaBytes returns the image's pixels as a tight width*height*4 buffer,
// copying only when the backing store has an offset or padded stride.
func rgbaBytes(img image.Image, width, height int) []byte {
	if rgba, ok := img.(*image.RGBA); ok &&
		rgba.Rect.Min == (image.Point{}) && rgba.Stride == width*4 {
		return rgba.Pix
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst.Pix
}

var _ ports.FrameSource = (*Source)(nil)

// Package glyph rasterizes a text run offscreen and exposes its alpha coverage.
//
// The rasterization mirrors a 2D canvas fillText call: the run is drawn in
// white, horizontally centred on the canvas, with its baseline a fixed offset
// below the vertical centre. Only the alpha channel is kept.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrEmptyCanvas is returned when the requested canvas has no pixels.
var ErrEmptyCanvas = errors.New("glyph: canvas has no area")

// Options describes the offscreen canvas and the font used to fill it.
type Options struct {
	Width          int
	Height         int
	FontSize       float64
	BaselineOffset float64

	// Font is TTF/OTF data. Go Bold is used when empty.
	Font []byte
}

// Rasterize draws s onto a transparent canvas and returns its alpha mask.
func Rasterize(s string, opts Options) (*AlphaMask, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, opts.Width, opts.Height)
	}

	data := opts.Font
	if len(data) == 0 {
		data = gobold.TTF
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: load font: %w", err)
	}
	defer func() { _ = source.Close() }()

	dc := gg.NewContext(opts.Width, opts.Height)
	defer func() { _ = dc.Close() }()

	dc.SetFont(source.Face(opts.FontSize))
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(s,
		float64(opts.Width)/2,
		float64(opts.Height)/2+opts.BaselineOffset,
		0.5, 0)

	return FromImage(dc.Image()), nil
}

// AlphaMask is the per-pixel alpha of a rasterized canvas.
type AlphaMask struct {
	width   int
	height  int
	alpha   []uint8
	bounds  image.Rectangle
	covered int
}

// FromImage extracts the alpha channel of img. The mask origin is img's
// top-left corner.
func FromImage(img image.Image) *AlphaMask {
	b := img.Bounds()
	m := &AlphaMask{
		width:  b.Dx(),
		height: b.Dy(),
		alpha:  make([]uint8, b.Dx()*b.Dy()),
	}

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < m.height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < m.width; x++ {
				m.alpha[y*m.width+x] = row[x*4+3]
			}
		}
	case *image.Alpha:
		for y := 0; y < m.height; y++ {
			copy(m.alpha[y*m.width:(y+1)*m.width], src.Pix[y*src.Stride:])
		}
	default:
		dst := image.NewAlpha(image.Rect(0, 0, m.width, m.height))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		copy(m.alpha, dst.Pix)
	}

	m.measure()
	return m
}

func (m *AlphaMask) measure() {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.alpha[y*m.width+x] == 0 {
				continue
			}
			m.covered++
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if m.covered > 0 {
		m.bounds = image.Rect(minX, minY, maxX+1, maxY+1)
	}
}

// Width returns the canvas width in pixels.
func (m *AlphaMask) Width() int { return m.width }

// Height returns the canvas height in pixels.
func (m *AlphaMask) Height() int { return m.height }

// Alpha returns the alpha at (x, y), or 0 outside the canvas.
func (m *AlphaMask) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return m.alpha[y*m.width+x]
}

// Covered reports whether (x, y) has non-zero alpha.
func (m *AlphaMask) Covered(x, y int) bool {
	return m.Alpha(x, y) != 0
}

// Bounds returns the smallest rectangle holding every covered pixel.
// It is empty when nothing was drawn.
func (m *AlphaMask) Bounds() image.Rectangle { return m.bounds }

// CoveredPixels returns the number of pixels with non-zero alpha.
func (m *AlphaMask) CoveredPixels() int { return m.covered }

// Coverage returns the covered fraction of the canvas.
func (m *AlphaMask) Coverage() float64 {
	if len(m.alpha) == 0 {
		return 0
	}
	return float64(m.covered) / float64(len(m.alpha))
}

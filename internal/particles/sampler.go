package particles

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/glyph-particles/internal/glyph"
)

// Sample is one accepted point of the glyph.
type Sample struct {
	Pixel image.Point
	Rest  mgl32.Vec3

	// Fallback marks a point placed uniformly because rejection sampling
	// gave up.
	Fallback bool
}

// Sampler turns covered mask pixels into resting coordinates centred on
// the canvas, with y pointing up and z = 0.
type Sampler struct {
	Mask        *glyph.AlphaMask
	Scale       float32
	MaxAttempts int
}

// Sample draws n points by rejection sampling. Once a point needs more than
// MaxAttempts draws, that point and every later one are placed on uniform
// random pixels instead. The second result counts those fallbacks.
func (s Sampler) Sample(rng *rand.Rand, n int) ([]Sample, int) {
	out := make([]Sample, 0, n)
	w, h := s.Mask.Width(), s.Mask.Height()

	exhausted := s.Mask.CoveredPixels() == 0
	fallbacks := 0
	for len(out) < n {
		if !exhausted {
			if px, ok := s.reject(rng, w, h); ok {
				out = append(out, Sample{Pixel: px, Rest: s.Rest(px)})
				continue
			}
			exhausted = true
		}
		px := image.Pt(rng.IntN(w), rng.IntN(h))
		out = append(out, Sample{Pixel: px, Rest: s.Rest(px), Fallback: true})
		fallbacks++
	}
	return out, fallbacks
}

func (s Sampler) reject(rng *rand.Rand, w, h int) (image.Point, bool) {
	for range s.MaxAttempts {
		x, y := rng.IntN(w), rng.IntN(h)
		if s.Mask.Covered(x, y) {
			return image.Pt(x, y), true
		}
	}
	return image.Point{}, false
}

// Rest maps the centre of pixel px to its resting coordinate.
func (s Sampler) Rest(px image.Point) mgl32.Vec3 {
	cx := float32(s.Mask.Width()) / 2
	cy := float32(s.Mask.Height()) / 2
	return mgl32.Vec3{
		(float32(px.X) + 0.5 - cx) * s.Scale,
		(cy - float32(px.Y) - 0.5) * s.Scale,
		0,
	}
}

// Pixel maps a resting coordinate back to the canvas pixel it came from.
func (s Sampler) Pixel(rest mgl32.Vec3) image.Point {
	cx := float64(s.Mask.Width()) / 2
	cy := float64(s.Mask.Height()) / 2
	return image.Pt(
		int(math.Floor(float64(rest[0])/float64(s.Scale)+cx)),
		int(math.Floor(cy-float64(rest[1])/float64(s.Scale))),
	)
}

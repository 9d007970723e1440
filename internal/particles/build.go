package particles

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/glyph-particles/internal/glyph"
)

// Stats summarizes a built field.
type Stats struct {
	Count     int
	Fallbacks int
	Coverage  float64
}

// NewRand returns the particle generator for seed. A zero seed is replaced
// by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build samples cfg.Count points from mask and gives each a scatter target,
// drift velocity and gradient color. Positions start at the resting
// coordinates.
func Build(cfg Config, mask *glyph.AlphaMask, rng *rand.Rand) (*Field, Stats, error) {
	if cfg.Count <= 0 {
		return nil, Stats{}, fmt.Errorf("%w: got %d", ErrNoParticles, cfg.Count)
	}
	if mask == nil || mask.Width() == 0 || mask.Height() == 0 {
		return nil, Stats{}, fmt.Errorf("particles: %w", glyph.ErrEmptyCanvas)
	}

	sampler := Sampler{Mask: mask, Scale: cfg.Scale, MaxAttempts: max(cfg.MaxSampleAttempts, 1)}
	samples, fallbacks := sampler.Sample(rng, cfg.Count)

	f := newField(cfg.Count, cfg.Bounds)
	half := cfg.ScatterExtent / 2
	for i, s := range samples {
		rest := s.Rest
		f.original[i] = rest
		f.dispersed[i] = mgl32.Vec3{
			rest[0] + (rng.Float32()*2-1)*half,
			rest[1] + (rng.Float32()*2-1)*half,
			rest[2] + (rng.Float32()*2-1)*half,
		}
		f.velocity[i] = mgl32.Vec3{
			(rng.Float32()*2 - 1) * cfg.SpeedFactor,
			(rng.Float32()*2 - 1) * cfg.SpeedFactor,
			(rng.Float32()*2 - 1) * cfg.SpeedFactor,
		}

		c := GradientColor(float32(i) / float32(cfg.Count))
		f.colors[i*3] = c[0]
		f.colors[i*3+1] = c[1]
		f.colors[i*3+2] = c[2]

		f.setPosition(i, rest)
	}

	stats := Stats{Count: cfg.Count, Fallbacks: fallbacks, Coverage: mask.Coverage()}
	if fallbacks > 0 {
		Logger().Warn("glyph sampling fell back to uniform placement",
			"fallbacks", fallbacks, "count", cfg.Count, "coverage", stats.Coverage)
	}
	return f, stats, nil
}

package particles

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/glyph-particles/internal/config"
)

// ErrNoParticles is returned when a field would hold no particles.
var ErrNoParticles = errors.New("particles: particle count must be positive")

// Config holds everything needed to build and run a simulation.
type Config struct {
	Text           string
	CanvasWidth    int
	CanvasHeight   int
	FontSize       float64
	BaselineOffset float64
	Scale          float32

	Count             int
	SpeedFactor       float32
	ScatterExtent     float32
	MaxSampleAttempts int
	Bounds            mgl32.Vec3

	DispersalDelay time.Duration
	ReemergeDelay  time.Duration
	FadeDuration   time.Duration
	Repeat         bool

	// Seed for the particle generator; 0 picks one from the wall clock.
	Seed uint64
}

// DefaultConfig returns the compile-time configuration.
func DefaultConfig() Config {
	return Config{
		Text:              config.Text,
		CanvasWidth:       config.CanvasWidth,
		CanvasHeight:      config.CanvasHeight,
		FontSize:          config.FontSize,
		BaselineOffset:    config.BaselineOffset,
		Scale:             config.GlyphScale,
		Count:             config.ParticleCount,
		SpeedFactor:       config.SpeedFactor,
		ScatterExtent:     config.ScatterExtent,
		MaxSampleAttempts: config.MaxSampleAttempts,
		Bounds:            mgl32.Vec3{config.BoundX, config.BoundY, config.BoundZ},
		DispersalDelay:    config.DispersalDelay,
		ReemergeDelay:     config.ReemergeDelay,
		FadeDuration:      config.FadeDuration,
		Repeat:            config.RepeatCycle,
		Seed:              config.RandomSeed,
	}
}

// Validate reports the first setting that cannot produce a working simulation.
func (c Config) Validate() error {
	switch {
	case c.Count <= 0:
		return fmt.Errorf("%w: got %d", ErrNoParticles, c.Count)
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("particles: canvas must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	case c.Scale <= 0:
		return fmt.Errorf("particles: scale must be positive, got %v", c.Scale)
	case c.MaxSampleAttempts <= 0:
		return fmt.Errorf("particles: max sample attempts must be positive, got %d", c.MaxSampleAttempts)
	case c.FadeDuration <= 0:
		return fmt.Errorf("particles: fade duration must be positive, got %v", c.FadeDuration)
	case c.ReemergeDelay < c.DispersalDelay:
		return fmt.Errorf("particles: reemerge delay %v precedes dispersal delay %v", c.ReemergeDelay, c.DispersalDelay)
	}
	return nil
}

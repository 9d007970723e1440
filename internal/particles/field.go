package particles

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Field stores every particle as parallel records. Resting coordinates,
// scatter targets and colors are written once by the builder; only the
// position buffer and velocities change afterwards.
type Field struct {
	original  []mgl32.Vec3
	dispersed []mgl32.Vec3
	velocity  []mgl32.Vec3

	// Flat xyz / rgb buffers handed to the renderer.
	positions []float32
	colors    []float32
	dirty     bool

	bounds mgl32.Vec3
}

func newField(n int, bounds mgl32.Vec3) *Field {
	return &Field{
		original:  make([]mgl32.Vec3, n),
		dispersed: make([]mgl32.Vec3, n),
		velocity:  make([]mgl32.Vec3, n),
		positions: make([]float32, n*3),
		colors:    make([]float32, n*3),
		dirty:     true,
		bounds:    bounds,
	}
}

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.original) }

// Original returns particle i's resting coordinate.
func (f *Field) Original(i int) mgl32.Vec3 { return f.original[i] }

// Dispersed returns particle i's scatter target.
func (f *Field) Dispersed(i int) mgl32.Vec3 { return f.dispersed[i] }

// Velocity returns particle i's drift velocity.
func (f *Field) Velocity(i int) mgl32.Vec3 { return f.velocity[i] }

// Position returns particle i's displayed position.
func (f *Field) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{f.positions[i*3], f.positions[i*3+1], f.positions[i*3+2]}
}

// Color returns particle i's RGB color.
func (f *Field) Color(i int) mgl32.Vec3 {
	return mgl32.Vec3{f.colors[i*3], f.colors[i*3+1], f.colors[i*3+2]}
}

// Positions returns the live xyz buffer. Callers must not write to it.
func (f *Field) Positions() []float32 { return f.positions }

// Colors returns the rgb buffer. Callers must not write to it.
func (f *Field) Colors() []float32 { return f.colors }

// Bounds returns the idle drift half-extents.
func (f *Field) Bounds() mgl32.Vec3 { return f.bounds }

// Dirty reports whether positions changed since the last MarkClean.
func (f *Field) Dirty() bool { return f.dirty }

// MarkClean records that the renderer consumed the current positions.
func (f *Field) MarkClean() { f.dirty = false }

func (f *Field) setPosition(i int, p mgl32.Vec3) {
	f.positions[i*3] = p[0]
	f.positions[i*3+1] = p[1]
	f.positions[i*3+2] = p[2]
}

// Gradient stops. The last one is deliberately out of gamut: the blue
// channel keeps climbing past 1 toward the end of the run.
var (
	gradientStart = colorful.Color{R: 0.5, G: 0, B: 1}
	gradientMid   = colorful.Color{R: 1, G: 0, B: 0.5}
	gradientEnd   = colorful.Color{R: 0, G: 0, B: 1.5}
)

// GradientColor returns the color for emission fraction t in [0, 1): a
// purple-to-magenta run up to the midpoint, then red fading into blue.
func GradientColor(t float32) mgl32.Vec3 {
	var c colorful.Color
	if t < 0.5 {
		c = gradientStart.BlendRgb(gradientMid, float64(t)*2)
	} else {
		c = gradientMid.BlendRgb(gradientEnd, (float64(t)-0.5)*2)
	}
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// Lerp interpolates from a to b. It returns a exactly at p=0 and b exactly
// at p=1.
func Lerp(a, b mgl32.Vec3, p float32) mgl32.Vec3 {
	q := 1 - p
	return mgl32.Vec3{
		a[0]*q + b[0]*p,
		a[1]*q + b[1]*p,
		a[2]*q + b[2]*p,
	}
}

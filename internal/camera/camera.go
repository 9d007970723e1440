// Package camera provides the perspective camera for the particle header and
// a damped orbit/zoom control around its target.
package camera

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/glyph-particles/internal/config"
)

// Options configures a Camera.
type Options struct {
	FOV      float32 // vertical field of view in degrees
	Near     float32
	Far      float32
	Distance float64 // initial eye distance from the target

	MinDistance float64
	MaxDistance float64

	// Damping is the fraction of the remaining orbit motion applied per
	// frame at FPS.
	Damping     float64
	FPS         int
	RotateSpeed float64 // radians per dragged pixel
	ZoomSpeed   float64 // fractional distance change per wheel step

	// Logger receives viewport changes. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the header camera: 75° fov, eye 150 units out,
// orbit damping 0.05 per frame at 60 fps.
func DefaultOptions() Options {
	return Options{
		FOV:         config.FieldOfView,
		Near:        config.NearPlane,
		Far:         config.FarPlane,
		Distance:    config.CameraDistance,
		MinDistance: config.MinDistance,
		MaxDistance: config.MaxDistance,
		Damping:     config.DampingFactor,
		FPS:         60,
		RotateSpeed: config.RotateSpeed,
		ZoomSpeed:   config.ZoomSpeed,
	}
}

// Camera is a perspective camera orbiting a fixed target.
type Camera struct {
	opts   Options
	width  int
	height int
	target mgl32.Vec3

	orbit orbit

	proj     mgl32.Mat4
	view     mgl32.Mat4
	viewProj mgl32.Mat4
	version  uint64
}

const polarLimit = 0.01

// New creates a camera looking at the origin from +z, sized to the viewport.
func New(opts Options, width, height int) *Camera {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	c := &Camera{
		opts:   opts,
		width:  max(width, 1),
		height: max(height, 1),
	}
	c.orbit = newOrbit(opts, spherical{azimuth: 0, polar: math.Pi / 2, radius: opts.Distance})
	c.rebuildProjection()
	c.rebuildView()
	return c
}

// Resize recomputes the aspect ratio for a new viewport. It reports whether
// the size changed.
func (c *Camera) Resize(width, height int) bool {
	width, height = max(width, 1), max(height, 1)
	if width == c.width && height == c.height {
		return false
	}
	c.width, c.height = width, height
	c.rebuildProjection()
	c.opts.Logger.Info("viewport resized", "width", width, "height", height, "aspect", c.Aspect())
	return true
}

// Size returns the viewport dimensions.
func (c *Camera) Size() (int, int) { return c.width, c.height }

// Aspect returns the viewport aspect ratio.
func (c *Camera) Aspect() float32 { return float32(c.width) / float32(c.height) }

// Rotate orbits the goal by a pointer drag of (dx, dy) pixels.
func (c *Camera) Rotate(dx, dy float64) {
	g := &c.orbit.goal
	g.azimuth -= dx * c.opts.RotateSpeed
	g.polar -= dy * c.opts.RotateSpeed
	g.polar = clamp(g.polar, polarLimit, math.Pi-polarLimit)
}

// Zoom moves the goal closer for positive steps and further for negative ones.
func (c *Camera) Zoom(steps float64) {
	g := &c.orbit.goal
	g.radius *= math.Pow(1-c.opts.ZoomSpeed, steps)
	g.radius = clamp(g.radius, c.opts.MinDistance, c.opts.MaxDistance)
}

// Update advances the orbit springs by one frame. It reports whether the
// view changed.
func (c *Camera) Update() bool {
	if !c.orbit.step() {
		return false
	}
	c.rebuildView()
	return true
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.target.Add(c.orbit.pos.offset())
}

// Distance returns the current eye distance from the target.
func (c *Camera) Distance() float64 { return c.orbit.pos.radius }

// ViewProjection returns projection × view.
func (c *Camera) ViewProjection() mgl32.Mat4 { return c.viewProj }

// Version increments whenever the view or projection changes.
func (c *Camera) Version() uint64 { return c.version }

// PointScale is the factor that turns a world-space point size at unit
// distance into pixels.
func (c *Camera) PointScale() float32 { return float32(c.height) / 2 }

// Project maps p to viewport pixels. depth is the distance from the eye
// along the view direction. ok is false for points behind the near plane or
// beyond the far plane.
func (c *Camera) Project(p mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip[3]
	if w < c.opts.Near {
		return 0, 0, 0, false
	}
	nz := clip[2] / w
	if nz > 1 {
		return 0, 0, 0, false
	}
	nx, ny := clip[0]/w, clip[1]/w
	x = (nx + 1) * 0.5 * float32(c.width)
	y = (1 - ny) * 0.5 * float32(c.height)
	return x, y, w, true
}

func (c *Camera) rebuildProjection() {
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.opts.FOV), c.Aspect(), c.opts.Near, c.opts.Far)
	c.viewProj = c.proj.Mul4(c.view)
	c.version++
}

func (c *Camera) rebuildView() {
	c.view = mgl32.LookAtV(c.Eye(), c.target, mgl32.Vec3{0, 1, 0})
	c.viewProj = c.proj.Mul4(c.view)
	c.version++
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

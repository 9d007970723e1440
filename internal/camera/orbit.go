package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// spherical is an eye offset around the target; polar is measured from +y.
type spherical struct {
	azimuth float64
	polar   float64
	radius  float64
}

func (s spherical) offset() mgl32.Vec3 {
	sp := math.Sin(s.polar)
	return mgl32.Vec3{
		float32(s.radius * sp * math.Sin(s.azimuth)),
		float32(s.radius * math.Cos(s.polar)),
		float32(s.radius * sp * math.Cos(s.azimuth)),
	}
}

// orbit eases the live spherical position toward the goal with one
// critically damped spring per coordinate.
type orbit struct {
	spring harmonica.Spring
	goal   spherical
	pos    spherical
	vel    spherical
}

// settleEpsilon is the distance below which the orbit snaps to its goal.
const settleEpsilon = 1e-6

func newOrbit(opts Options, start spherical) orbit {
	fps := max(opts.FPS, 1)
	// Keeping (1 - damping) of the motion each frame is a time constant of
	// 1/(damping·fps) seconds.
	freq := opts.Damping * float64(fps)
	return orbit{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, 1),
		goal:   start,
		pos:    start,
	}
}

// step advances one frame and reports whether the position moved.
func (o *orbit) step() bool {
	if o.settled() {
		return false
	}
	o.pos.azimuth, o.vel.azimuth = o.spring.Update(o.pos.azimuth, o.vel.azimuth, o.goal.azimuth)
	o.pos.polar, o.vel.polar = o.spring.Update(o.pos.polar, o.vel.polar, o.goal.polar)
	o.pos.radius, o.vel.radius = o.spring.Update(o.pos.radius, o.vel.radius, o.goal.radius)

	if o.settled() {
		o.pos, o.vel = o.goal, spherical{}
	}
	return true
}

func (o *orbit) settled() bool {
	near := func(a, b, v float64) bool {
		return math.Abs(a-b) < settleEpsilon && math.Abs(v) < settleEpsilon
	}
	return near(o.pos.azimuth, o.goal.azimuth, o.vel.azimuth) &&
		near(o.pos.polar, o.goal.polar, o.vel.polar) &&
		near(o.pos.radius, o.goal.radius, o.vel.radius)
}

package particles

import (
	"time"
)

// Phase is the active visual mode.
type Phase int

const (
	// Idle drifts particles by their velocity inside the bounds.
	Idle Phase = iota
	// Dispersing moves particles from rest toward their scatter targets.
	Dispersing
	// Reemerging moves particles from their scatter targets back to rest.
	Reemerging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dispersing:
		return "dispersing"
	case Reemerging:
		return "reemerging"
	default:
		return "unknown"
	}
}

// Controller tracks the current phase and when its fade began.
type Controller struct {
	phase     Phase
	fadeStart time.Time
	fade      time.Duration
	observers []func(from, to Phase, at time.Time)
}

// NewController returns a controller in Idle with the given fade duration.
func NewController(fade time.Duration) *Controller {
	return &Controller{fade: fade}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// FadeStart returns when the current transition began.
func (c *Controller) FadeStart() time.Time { return c.fadeStart }

// FadeDuration returns the interpolation window.
func (c *Controller) FadeDuration() time.Duration { return c.fade }

// OnChange registers fn to be called after every phase change.
func (c *Controller) OnChange(fn func(from, to Phase, at time.Time)) {
	c.observers = append(c.observers, fn)
}

// Disperse enters Dispersing with the fade starting at now.
func (c *Controller) Disperse(now time.Time) { c.enter(Dispersing, now) }

// Reemerge enters Reemerging with the fade starting at now.
func (c *Controller) Reemerge(now time.Time) { c.enter(Reemerging, now) }

// Settle returns to Idle.
func (c *Controller) Settle(now time.Time) { c.enter(Idle, now) }

func (c *Controller) enter(p Phase, now time.Time) {
	from := c.phase
	c.phase = p
	c.fadeStart = now
	for _, fn := range c.observers {
		fn(from, p, now)
	}
}

// Progress returns the elapsed fraction of the current fade, clamped to [0, 1].
func (c *Controller) Progress(now time.Time) float32 {
	if c.fade <= 0 {
		return 1
	}
	p := float64(now.Sub(c.fadeStart)) / float64(c.fade)
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return float32(p)
}

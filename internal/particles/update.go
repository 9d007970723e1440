package particles

import (
	"time"
)

// Step repositions every particle for the controller's phase at now and
// marks the position buffer dirty. Reemerging hands back to Idle on the
// frame its progress reaches 1.
func (f *Field) Step(c *Controller, now time.Time) {
	switch c.Phase() {
	case Dispersing:
		p := c.Progress(now)
		for i := range f.original {
			f.setPosition(i, Lerp(f.original[i], f.dispersed[i], p))
		}
	case Reemerging:
		p := c.Progress(now)
		for i := range f.original {
			f.setPosition(i, Lerp(f.dispersed[i], f.original[i], p))
		}
		if p == 1 {
			c.Settle(now)
		}
	default:
		f.drift()
	}
	f.dirty = true
}

// drift integrates velocity and reflects any component whose coordinate
// ended up outside the bounds.
func (f *Field) drift() {
	pos := f.positions
	for i := range f.velocity {
		v := &f.velocity[i]
		for axis := 0; axis < 3; axis++ {
			j := i*3 + axis
			pos[j] += v[axis]
			if pos[j] < -f.bounds[axis] || pos[j] > f.bounds[axis] {
				v[axis] = -v[axis]
			}
		}
	}
}

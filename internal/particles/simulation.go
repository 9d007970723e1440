package particles

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/glyph-particles/internal/glyph"
	"github.com/iburimskiy/glyph-particles/internal/schedule"
)

// Simulation owns the particle field, the phase controller and the
// scheduled work that drives them. Create it with New or NewFromText and
// release it with Close.
type Simulation struct {
	cfg   Config
	field *Field
	ctrl  *Controller
	stats Stats

	sched    *schedule.Scheduler
	frame    *schedule.Task
	disperse *schedule.Timer
	reemerge *schedule.Timer
	closed   bool
}

// NewFromText rasterizes cfg.Text and builds a simulation from it.
func NewFromText(cfg Config, sched *schedule.Scheduler) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mask, err := glyph.Rasterize(cfg.Text, glyph.Options{
		Width:          cfg.CanvasWidth,
		Height:         cfg.CanvasHeight,
		FontSize:       cfg.FontSize,
		BaselineOffset: cfg.BaselineOffset,
	})
	if err != nil {
		return nil, fmt.Errorf("particles: rasterize %q: %w", cfg.Text, err)
	}
	return New(cfg, mask, sched, NewRand(cfg.Seed))
}

// New builds the field from mask, arms the dispersal and reemerge timers
// relative to the scheduler's current time and registers the per-frame
// update.
func New(cfg Config, mask *glyph.AlphaMask, sched *schedule.Scheduler, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, stats, err := Build(cfg, mask, rng)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:   cfg,
		field: field,
		ctrl:  NewController(cfg.FadeDuration),
		stats: stats,
		sched: sched,
	}
	s.ctrl.OnChange(s.phaseChanged)
	s.arm(sched.Now())
	s.frame = sched.Every(s.step)

	Logger().Info("particle field ready",
		"particles", stats.Count,
		"coverage", stats.Coverage,
		"fallbacks", stats.Fallbacks)
	return s, nil
}

// arm schedules one disperse/reemerge cycle keyed off start.
func (s *Simulation) arm(start time.Time) {
	s.disperse = s.sched.At(start.Add(s.cfg.DispersalDelay), s.ctrl.Disperse)
	s.reemerge = s.sched.At(start.Add(s.cfg.ReemergeDelay), s.ctrl.Reemerge)
}

func (s *Simulation) step(now time.Time) {
	s.field.Step(s.ctrl, now)
}

func (s *Simulation) phaseChanged(from, to Phase, at time.Time) {
	Logger().Info("phase changed", "from", from, "to", to)
	if s.cfg.Repeat && from == Reemerging && to == Idle && !s.closed {
		s.arm(at)
	}
}

// Field returns the particle field.
func (s *Simulation) Field() *Field { return s.field }

// Controller returns the phase controller.
func (s *Simulation) Controller() *Controller { return s.ctrl }

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.ctrl.Phase() }

// Stats returns the setup summary.
func (s *Simulation) Stats() Stats { return s.stats }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// OnPhaseChange registers fn for every phase change.
func (s *Simulation) OnPhaseChange(fn func(from, to Phase, at time.Time)) {
	s.ctrl.OnChange(fn)
}

// Disperse enters Dispersing now. The pending cycle is replaced: the
// reemerge follows after the same gap the timers use.
func (s *Simulation) Disperse() {
	if s.closed {
		return
	}
	now := s.sched.Now()
	s.cancelCycle()
	s.ctrl.Disperse(now)
	s.reemerge = s.sched.At(now.Add(s.cfg.ReemergeDelay-s.cfg.DispersalDelay), s.ctrl.Reemerge)
}

// Reemerge enters Reemerging now and cancels the pending cycle.
func (s *Simulation) Reemerge() {
	if s.closed {
		return
	}
	s.cancelCycle()
	s.ctrl.Reemerge(s.sched.Now())
}

func (s *Simulation) cancelCycle() {
	s.disperse.Stop()
	s.reemerge.Stop()
}

// Pause stops per-frame updates until Resume. Timers are unaffected; pause
// the scheduler's clock to freeze them too.
func (s *Simulation) Pause() { s.frame.Pause() }

// Resume restarts per-frame updates.
func (s *Simulation) Resume() { s.frame.Resume() }

// Paused reports whether per-frame updates are paused.
func (s *Simulation) Paused() bool { return s.frame.Paused() }

// Close cancels the frame task and any pending phase timers.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.frame.Stop()
	s.cancelCycle()
}

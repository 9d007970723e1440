// Package schedule runs deferred one-shot timers and repeating per-frame
// tasks cooperatively from a host loop.
//
// Nothing here starts a goroutine. The host calls [Scheduler.Advance] once
// per frame; due timers fire first, in deadline order, then every live task
// runs with the current time. Callbacks may schedule further work.
package schedule

import (
	"errors"
	"slices"
	"time"
)

// ErrStopped is returned by Advance after Stop.
var ErrStopped = errors.New("schedule: stopped")

// Scheduler owns a set of timers and tasks driven by a Clock.
type Scheduler struct {
	clock   Clock
	timers  []*Timer
	tasks   []*Task
	stopped bool
	frames  uint64
}

// New creates a scheduler reading time from clock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// Clock returns the clock the scheduler reads.
func (s *Scheduler) Clock() Clock { return s.clock }

// Frames returns how many times Advance ran tasks.
func (s *Scheduler) Frames() uint64 { return s.frames }

// After schedules fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func(at time.Time)) *Timer {
	return s.At(s.clock.Now().Add(d), fn)
}

// At schedules fn to run once at or after deadline. fn receives the
// deadline, not the time the frame happened to observe it.
func (s *Scheduler) At(deadline time.Time, fn func(at time.Time)) *Timer {
	t := &Timer{deadline: deadline, fn: fn}
	if s.stopped {
		t.stopped = true
		return t
	}
	s.timers = append(s.timers, t)
	return t
}

// Every registers fn to run on each Advance until its task is stopped.
func (s *Scheduler) Every(fn func(now time.Time)) *Task {
	t := &Task{fn: fn}
	if s.stopped {
		t.stopped = true
		return t
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every timer whose deadline has passed and then runs all
// live, unpaused tasks.
func (s *Scheduler) Advance() error {
	if s.stopped {
		return ErrStopped
	}
	now := s.clock.Now()

	for {
		t := s.nextDue(now)
		if t == nil {
			break
		}
		t.fired = true
		t.fn(t.deadline)
	}
	s.timers = slices.DeleteFunc(s.timers, func(t *Timer) bool { return t.fired || t.stopped })

	// Tasks added by a task start on the next frame.
	tasks := slices.Clone(s.tasks)
	for _, t := range tasks {
		if t.stopped || t.paused {
			continue
		}
		t.runs++
		t.fn(now)
	}
	s.tasks = slices.DeleteFunc(s.tasks, func(t *Task) bool { return t.stopped })
	s.frames++

	return nil
}

func (s *Scheduler) nextDue(now time.Time) *Timer {
	var next *Timer
	for _, t := range s.timers {
		if t.fired || t.stopped || t.deadline.After(now) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) {
			next = t
		}
	}
	return next
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Stop cancels every timer and task. Later Advance calls return ErrStopped.
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	for _, t := range s.timers {
		t.stopped = true
	}
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.timers = nil
	s.tasks = nil
}

// Stopped reports whether Stop was called.
func (s *Scheduler) Stopped() bool { return s.stopped }

// Timer is a one-shot deferred callback.
type Timer struct {
	deadline time.Time
	fn       func(at time.Time)
	fired    bool
	stopped  bool
}

// Deadline returns when the timer is due.
func (t *Timer) Deadline() time.Time { return t.deadline }

// Fired reports whether the callback ran.
func (t *Timer) Fired() bool { return t.fired }

// Stop cancels the timer. It reports whether the call prevented the
// callback from running.
func (t *Timer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Task is a repeating callback with a cancellation handle.
type Task struct {
	fn      func(now time.Time)
	paused  bool
	stopped bool
	runs    uint64
}

// Pause skips the task on subsequent frames until Resume.
func (t *Task) Pause() { t.paused = true }

// Resume undoes Pause.
func (t *Task) Resume() { t.paused = false }

// Paused reports whether the task is paused.
func (t *Task) Paused() bool { return t.paused }

// Stop removes the task for good.
func (t *Task) Stop() { t.stopped = true }

// Stopped reports whether the task was stopped.
func (t *Task) Stopped() bool { return t.stopped }

// Runs returns how many times the task has run.
func (t *Task) Runs() uint64 { return t.runs }

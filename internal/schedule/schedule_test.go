package schedule

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimerFiresOnceAtDeadline(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	var fired []time.Time
	timer := s.After(3*time.Second, func(at time.Time) { fired = append(fired, at) })

	clock.Advance(2999 * time.Millisecond)
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("timer fired early at %v", fired)
	}

	// Observed late, but reports its deadline.
	clock.Advance(17 * time.Millisecond)
	_ = s.Advance()
	clock.Advance(time.Second)
	_ = s.Advance()

	if len(fired) != 1 {
		t.Fatalf("timer fired %d times, want 1", len(fired))
	}
	if want := epoch.Add(3 * time.Second); !fired[0].Equal(want) {
		t.Errorf("fired at %v, want %v", fired[0], want)
	}
	if !timer.Fired() {
		t.Error("Fired() = false, want true")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestTimersFireInDeadlineOrderBeforeTasks(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	var order []string
	s.Every(func(time.Time) { order = append(order, "task") })
	s.After(6*time.Second, func(time.Time) { order = append(order, "second") })
	s.After(3*time.Second, func(time.Time) { order = append(order, "first") })

	clock.Advance(10 * time.Second)
	_ = s.Advance()

	want := []string{"first", "second", "task"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestTimerStop(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	ran := false
	timer := s.After(time.Second, func(time.Time) { ran = true })
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}

	clock.Advance(2 * time.Second)
	_ = s.Advance()
	if ran {
		t.Error("stopped timer ran")
	}
}

func TestTimerScheduledFromCallback(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	var hits []time.Time
	s.After(time.Second, func(at time.Time) {
		hits = append(hits, at)
		s.At(at.Add(time.Second), func(at time.Time) { hits = append(hits, at) })
	})

	clock.Advance(5 * time.Second)
	_ = s.Advance()

	if len(hits) != 2 {
		t.Fatalf("hits = %v, want 2 entries", hits)
	}
	if want := epoch.Add(2 * time.Second); !hits[1].Equal(want) {
		t.Errorf("chained timer at %v, want %v", hits[1], want)
	}
}

func TestTaskPauseResumeStop(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	task := s.Every(func(time.Time) {})

	_ = s.Advance()
	task.Pause()
	_ = s.Advance()
	_ = s.Advance()
	if got := task.Runs(); got != 1 {
		t.Fatalf("Runs() while paused = %d, want 1", got)
	}

	task.Resume()
	_ = s.Advance()
	if got := task.Runs(); got != 2 {
		t.Fatalf("Runs() after resume = %d, want 2", got)
	}

	task.Stop()
	_ = s.Advance()
	if got := task.Runs(); got != 2 {
		t.Errorf("Runs() after stop = %d, want 2", got)
	}
	if !task.Stopped() {
		t.Error("Stopped() = false, want true")
	}
	if got := s.Frames(); got != 5 {
		t.Errorf("Frames() = %d, want 5", got)
	}
}

func TestSchedulerStop(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)

	ran := false
	timer := s.After(time.Millisecond, func(time.Time) { ran = true })
	task := s.Every(func(time.Time) { ran = true })

	s.Stop()
	clock.Advance(time.Second)
	if err := s.Advance(); !errors.Is(err, ErrStopped) {
		t.Errorf("Advance() error = %v, want ErrStopped", err)
	}
	if ran {
		t.Error("callback ran after Stop")
	}
	if !task.Stopped() || timer.Stop() {
		t.Error("Stop did not cancel handles")
	}

	late := s.Every(func(time.Time) {})
	if !late.Stopped() {
		t.Error("task registered after Stop is live")
	}
}

func TestPausableClock(t *testing.T) {
	base := NewManualClock(epoch)
	c := NewPausableClock(base)

	base.Advance(time.Second)
	if got, want := c.Now(), epoch.Add(time.Second); !got.Equal(want) {
		t.Fatalf("Now() = %v, want %v", got, want)
	}

	c.Pause()
	base.Advance(5 * time.Second)
	if got, want := c.Now(), epoch.Add(time.Second); !got.Equal(want) {
		t.Errorf("Now() while paused = %v, want %v", got, want)
	}
	if got := c.PausedFor(); got != 5*time.Second {
		t.Errorf("PausedFor() = %v, want 5s", got)
	}

	c.Resume()
	base.Advance(time.Second)
	if got, want := c.Now(), epoch.Add(2*time.Second); !got.Equal(want) {
		t.Errorf("Now() after resume = %v, want %v", got, want)
	}
	if c.Paused() {
		t.Error("Paused() = true after Resume")
	}
}

func TestPausableClockFreezesTimers(t *testing.T) {
	base := NewManualClock(epoch)
	c := NewPausableClock(base)
	s := New(c)

	ran := false
	s.After(time.Second, func(time.Time) { ran = true })

	c.Pause()
	base.Advance(time.Minute)
	_ = s.Advance()
	if ran {
		t.Fatal("timer fired while clock paused")
	}

	c.Resume()
	base.Advance(time.Second)
	_ = s.Advance()
	if !ran {
		t.Error("timer did not fire after resume")
	}
}

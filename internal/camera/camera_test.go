package camera

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestProjectOriginToCentre(t *testing.T) {
	c := New(DefaultOptions(), 1200, 300)

	x, y, depth, ok := c.Project(mgl32.Vec3{})
	if !ok {
		t.Fatal("Project(origin) not visible")
	}
	if !approx(float64(x), 600, 1e-3) || !approx(float64(y), 150, 1e-3) {
		t.Errorf("Project(origin) = (%v, %v), want (600, 150)", x, y)
	}
	if !approx(float64(depth), 150, 1e-3) {
		t.Errorf("depth = %v, want 150", depth)
	}
}

func TestProjectOrientation(t *testing.T) {
	c := New(DefaultOptions(), 1200, 300)

	rx, _, _, _ := c.Project(mgl32.Vec3{10, 0, 0})
	_, uy, _, _ := c.Project(mgl32.Vec3{0, 10, 0})
	if rx <= 600 {
		t.Errorf("+x projects to x=%v, want right of centre", rx)
	}
	if uy >= 150 {
		t.Errorf("+y projects to y=%v, want above centre", uy)
	}
}

func TestProjectClipsBehindCamera(t *testing.T) {
	c := New(DefaultOptions(), 800, 300)

	if _, _, _, ok := c.Project(mgl32.Vec3{0, 0, 200}); ok {
		t.Error("point behind the eye reported visible")
	}
	if _, _, _, ok := c.Project(mgl32.Vec3{0, 0, -2000}); ok {
		t.Error("point beyond the far plane reported visible")
	}
}

func TestResize(t *testing.T) {
	c := New(DefaultOptions(), 800, 300)
	v := c.Version()

	if c.Resize(800, 300) {
		t.Error("Resize to same size reported a change")
	}
	if !c.Resize(1500, 300) {
		t.Fatal("Resize to new width reported no change")
	}
	if got, want := c.Aspect(), float32(5); got != want {
		t.Errorf("Aspect() = %v, want %v", got, want)
	}
	if c.Version() == v {
		t.Error("Version() unchanged after resize")
	}
	x, _, _, _ := c.Project(mgl32.Vec3{})
	if !approx(float64(x), 750, 1e-3) {
		t.Errorf("centre x after resize = %v, want 750", x)
	}

	c.Resize(0, 0)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size() after zero resize = %dx%d, want 1x1", w, h)
	}
}

func TestOrbitIsDamped(t *testing.T) {
	c := New(DefaultOptions(), 800, 300)

	c.Rotate(100, 0)
	if !c.Update() {
		t.Fatal("Update() after Rotate reported no change")
	}
	first := c.Eye()
	if first[0] == 0 {
		t.Fatal("eye did not start moving")
	}
	goal := spherical{azimuth: -100 * DefaultOptions().RotateSpeed, polar: math.Pi / 2, radius: 150}.offset()
	if first.Sub(goal).Len() < 1 {
		t.Errorf("eye jumped to goal in one frame: %v", first)
	}

	for range 600 {
		c.Update()
	}
	if got := c.Eye(); !got.ApproxEqualThreshold(goal, 1e-2) {
		t.Errorf("eye after settling = %v, want %v", got, goal)
	}
	if !approx(c.Distance(), 150, 1e-6) {
		t.Errorf("Distance() = %v, want 150", c.Distance())
	}
	if c.Update() {
		t.Error("Update() on a settled orbit reported a change")
	}
}

func TestZoomClamps(t *testing.T) {
	opts := DefaultOptions()
	c := New(opts, 800, 300)

	c.Zoom(1000)
	for range 1200 {
		c.Update()
	}
	if !approx(c.Distance(), opts.MinDistance, 1e-3) {
		t.Errorf("Distance() after zoom in = %v, want %v", c.Distance(), opts.MinDistance)
	}

	c.Zoom(-1000)
	for range 1200 {
		c.Update()
	}
	if !approx(c.Distance(), opts.MaxDistance, 1e-3) {
		t.Errorf("Distance() after zoom out = %v, want %v", c.Distance(), opts.MaxDistance)
	}
}

func TestRotateClampsPolar(t *testing.T) {
	c := New(DefaultOptions(), 800, 300)

	c.Rotate(0, 1e6)
	if c.orbit.goal.polar != polarLimit {
		t.Errorf("polar goal = %v, want %v", c.orbit.goal.polar, polarLimit)
	}
	c.Rotate(0, -1e6)
	if c.orbit.goal.polar != math.Pi-polarLimit {
		t.Errorf("polar goal = %v, want %v", c.orbit.goal.polar, math.Pi-polarLimit)
	}
}

func TestResizeLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	c := New(opts, 800, 300)

	c.Resize(800, 300)
	if buf.Len() != 0 {
		t.Fatalf("unchanged size logged %q", buf.String())
	}

	c.Resize(1500, 300)
	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="viewport resized"`, "width=1500", "height=300"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	c := New(DefaultOptions(), 800, 300)
	if !c.Resize(640, 300) {
		t.Fatal("Resize reported no change")
	}
}

// Package game wires the particle simulation into an ebiten game loop.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/glyph-particles/internal/camera"
	"github.com/iburimskiy/glyph-particles/internal/config"
	"github.com/iburimskiy/glyph-particles/internal/particles"
	"github.com/iburimskiy/glyph-particles/internal/render"
	"github.com/iburimskiy/glyph-particles/internal/schedule"
	"github.com/iburimskiy/glyph-particles/internal/sound"
)

// Game is the header window: one simulation, one camera, one menu.
type Game struct {
	clock  *schedule.PausableClock
	sched  *schedule.Scheduler
	sim    *particles.Simulation
	cam    *camera.Camera
	points *render.Points
	menu   *menu
	audio  *cuePlayer

	width  int
	height int

	// orbit drag
	dragging bool
	lastX    int
	lastY    int

	paused bool
}

// New rasterizes the header text, builds the particle field and arms the
// phase timers. Errors here mean the header cannot be shown at all.
func New(logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}

	clock := schedule.NewPausableClock(nil)
	sched := schedule.New(clock)

	start := time.Now()
	sim, err := particles.NewFromText(particles.DefaultConfig(), sched)
	if err != nil {
		return nil, fmt.Errorf("build particle field: %w", err)
	}
	logger.Info("setup complete", "took", time.Since(start).Round(time.Millisecond))

	camOpts := camera.DefaultOptions()
	camOpts.Logger = logger

	g := &Game{
		clock:  clock,
		sched:  sched,
		sim:    sim,
		cam:    camera.New(camOpts, config.WindowWidth, config.HeaderHeight),
		points: render.NewPoints(config.PointSize, config.PointOpacity),
		menu:   newMenu(config.MenuItems),
		audio:  newCuePlayer(logger),
		width:  config.WindowWidth,
		height: config.HeaderHeight,
	}
	sim.OnPhaseChange(g.phaseChanged)
	return g, nil
}

func (g *Game) phaseChanged(_, to particles.Phase, _ time.Time) {
	switch to {
	case particles.Dispersing:
		g.audio.play(sound.Whoosh)
	case particles.Reemerging:
		g.audio.play(sound.Chime)
	}
}

// ToggleMenu collapses or expands the navigation panel.
func (g *Game) ToggleMenu() {
	g.menu.toggle(time.Now())
}

// Close stops the simulation and silences audio.
func (g *Game) Close() {
	g.sim.Close()
	g.sched.Stop()
	g.audio.close()
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.clock.Pause()
		g.sim.Pause()
	} else {
		g.clock.Resume()
		g.sim.Resume()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sched.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ToggleMenu()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.audio.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.sim.Disperse()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reemerge()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if !g.menu.update(mouseX, mouseY, g.width, g.height, time.Now()) {
		g.updateOrbit(mouseX, mouseY)
	} else {
		g.dragging = false
	}

	if err := g.sched.Advance(); err != nil {
		if errors.Is(err, schedule.ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	g.cam.Update()
	return nil
}

func (g *Game) updateOrbit(mouseX, mouseY int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = mouseX, mouseY
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		g.cam.Rotate(float64(mouseX-g.lastX), float64(mouseY-g.lastY))
		g.lastX, g.lastY = mouseX, mouseY
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(wy)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.points.Upload(g.sim.Field(), g.cam)
	g.points.Draw(screen)

	g.menu.draw(screen, time.Now())

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "Paused - Space to resume", 12, 12)
	}
}

// Layout keeps the header height fixed and follows the window width.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideWidth != g.width {
		g.width = outsideWidth
		g.cam.Resize(g.width, g.height)
	}
	return g.width, g.height
}

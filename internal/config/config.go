package config

import "time"

const (
	// Window: full header width, fixed height
	WindowWidth  = 1280
	HeaderHeight = 300
	WindowTitle  = "aeonify.net"

	// Glyph rasterization
	Text           = "aeonify.net"
	CanvasWidth    = 4192
	CanvasHeight   = 2028
	FontSize       = 768
	BaselineOffset = 100
	GlyphScale     = 0.15

	// Simulation
	ParticleCount     = 50000
	SpeedFactor       = 0.1
	ScatterExtent     = 100
	MaxSampleAttempts = 200000
	RandomSeed        = 0 // 0 seeds from the wall clock
	RepeatCycle       = false

	DispersalDelay = 3000 * time.Millisecond
	ReemergeDelay  = 6000 * time.Millisecond
	FadeDuration   = 2000 * time.Millisecond

	// Idle drift bounds
	BoundX = 50
	BoundY = 30
	BoundZ = 30

	// Camera
	FieldOfView    = 75
	NearPlane      = 0.1
	FarPlane       = 1000
	CameraDistance = 150
	MinDistance    = 20
	MaxDistance    = 800
	DampingFactor  = 0.05
	RotateSpeed    = 0.005
	ZoomSpeed      = 0.1

	// Point material
	PointSize    = 0.5
	PointOpacity = 0.8

	// Menu button dimensions
	MenuButtonSize   = 32
	MenuButtonMargin = 16
	MenuPanelWidth   = 180

	// Audio cues
	SampleRate = 44100
	CueVolume  = 0.25
)

// MenuItems are the navigation labels shown in the header menu.
var MenuItems = []string{"Home", "Projects", "Blog", "About", "Contact"}

package motion

import (
	"time"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, the animation Loop,
// input state, scroll position and render buffers.
type Scene struct {
	root  *Node
	loop  *Loop
	clock func() time.Duration
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Page scrolling
	scrollY    float64
	pageHeight float64
	viewW      float64
	viewH      float64
	revealers  []*Revealer

	// Render state
	commands []RenderCommand

	// Input state
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	// Playback
	script          *Script
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root container. The scene's
// clock starts on the first Update.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	s := &Scene{
		root:          root,
		loop:          NewLoop(),
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: DefaultScreenshotDir,
	}
	var start time.Time
	s.clock = func() time.Duration {
		if start.IsZero() {
			start = time.Now()
		}
		return time.Since(start)
	}
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Scheduler returns the scene's frame and timer scheduler. Frames run once per
// Update.
func (s *Scene) Scheduler() Scheduler {
	return s.loop
}

// Loop returns the scene's Loop.
func (s *Scene) Loop() *Loop {
	return s.loop
}

// SetClock replaces the wall clock that drives the scene's Loop. Useful for
// deterministic tests and recordings.
func (s *Scene) SetClock(clock func() time.Duration) {
	s.clock = clock
}

// SetUpdateFunc sets a callback that runs at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetViewport records the visible size of the scene in pixels.
func (s *Scene) SetViewport(width, height float64) {
	s.viewW = width
	s.viewH = height
	s.clampScroll()
}

// SetPageHeight sets the scrollable height of the scene content. Heights no
// taller than the viewport disable scrolling.
func (s *Scene) SetPageHeight(h float64) {
	s.pageHeight = h
	s.clampScroll()
}

// ScrollY returns the current vertical scroll offset.
func (s *Scene) ScrollY() float64 {
	return s.scrollY
}

// ScrollBy scrolls the page vertically, bounded by the page height.
func (s *Scene) ScrollBy(dy float64) {
	s.scrollY += dy
	s.clampScroll()
}

func (s *Scene) clampScroll() {
	maxScroll := s.pageHeight - s.viewH
	if s.scrollY > maxScroll {
		s.scrollY = maxScroll
	}
	if s.scrollY < 0 {
		s.scrollY = 0
	}
}

// VisibleRect returns the scrolled viewport in world coordinates.
func (s *Scene) VisibleRect() Rect {
	return Rect{X: 0, Y: s.scrollY, Width: s.viewW, Height: s.viewH}
}

// AddRevealer registers a Revealer checked against VisibleRect on every Update.
func (s *Scene) AddRevealer(r *Revealer) {
	s.revealers = append(s.revealers, r)
}

// Update steps the attached Script, processes input, advances the Loop to the
// clock's current time (firing due timers then one frame) and checks
// revealers.
func (s *Scene) Update() error {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	s.loop.Advance(s.clock())
	s.checkReveals()
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

func (s *Scene) checkReveals() {
	vis := s.VisibleRect()
	for _, r := range s.revealers {
		r.Check(vis)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-frame timing stats
// and trigger diagnostics are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

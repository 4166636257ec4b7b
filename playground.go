package motion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Playground defaults and constants.
const (
	DefaultSpeed  = 1.0
	DefaultScale  = 1.0
	DefaultRadius = 60.0
	DefaultEasing = EasingEaseInOut

	// BaseRadius is the central shape's radius attribute at scale 1.
	BaseRadius = 40.0

	// OrbitCount is the number of satellites circling the central shape.
	OrbitCount = 3

	// angularRate converts elapsed milliseconds to radians at speed 1.
	angularRate = 0.001
)

// ErrMissingElement is returned by NewPlayground when a required node is nil.
var ErrMissingElement = errors.New("motion: missing playground element")

// State is the playground's parameter record.
type State struct {
	Speed  float64
	Scale  float64
	Radius float64
	Easing Easing
	// IsPlaying is reserved; nothing reads or toggles it.
	IsPlaying bool
	// CurrentAngle is the orbital phase in radians. It only grows while the
	// loop runs and is never normalized.
	CurrentAngle float64
}

// DefaultState returns the parameter record a new Playground starts with.
func DefaultState() State {
	return State{
		Speed:     DefaultSpeed,
		Scale:     DefaultScale,
		Radius:    DefaultRadius,
		Easing:    DefaultEasing,
		IsPlaying: true,
	}
}

// Elements are the nodes a Playground drives. All of them are required.
type Elements struct {
	// Container groups the shapes; the playground never mutates it.
	Container *Node
	// Main is the central circle.
	Main *Node
	// Orbits are the satellites, each positioned relative to the container origin.
	Orbits [OrbitCount]*Node

	SpeedInput  *Node
	ScaleInput  *Node
	RadiusInput *Node
	EasingInput *Node

	SpeedLabel  *Node
	ScaleLabel  *Node
	RadiusLabel *Node

	// Triggers are buttons whose "trigger" data attribute names the effect
	// they run: pulse, explode, morph or reset.
	Triggers []*Node
}

func (e Elements) validate() error {
	check := []struct {
		name string
		node *Node
	}{
		{"container", e.Container},
		{"main shape", e.Main},
		{"speed input", e.SpeedInput},
		{"scale input", e.ScaleInput},
		{"radius input", e.RadiusInput},
		{"easing input", e.EasingInput},
		{"speed label", e.SpeedLabel},
		{"scale label", e.ScaleLabel},
		{"radius label", e.RadiusLabel},
	}
	for i, o := range e.Orbits {
		check = append(check, struct {
			name string
			node *Node
		}{fmt.Sprintf("orbit %d", i+1), o})
	}
	for _, c := range check {
		if c.node == nil {
			return fmt.Errorf("%w: %s", ErrMissingElement, c.name)
		}
	}
	for i, t := range e.Triggers {
		if t == nil {
			return fmt.Errorf("%w: trigger %d", ErrMissingElement, i)
		}
	}
	return nil
}

// EntityStore receives trigger events, e.g. to forward them to an ECS.
type EntityStore interface {
	EmitEvent(event TriggerEvent)
}

// TriggerEvent describes a trigger that just started.
type TriggerEvent struct {
	Trigger  Trigger
	At       time.Duration
	Duration time.Duration
	Speed    float64
	Radius   float64
	Easing   Easing
}

// Playground owns the parameter state, the continuous orbit loop and the
// trigger effects. It is single-threaded: every method must be called from
// the goroutine that advances its Scheduler.
type Playground struct {
	el    Elements
	sched Scheduler
	state State
	store EntityStore

	frame     FrameHandle
	running   bool
	haveLast  bool
	lastFrame time.Duration
}

// NewPlayground binds the controls and trigger buttons in el and returns a
// stopped playground. The loop does not run until Start.
func NewPlayground(el Elements, sched Scheduler) (*Playground, error) {
	if sched == nil {
		return nil, errors.New("motion: nil scheduler")
	}
	if err := el.validate(); err != nil {
		return nil, err
	}
	p := &Playground{el: el, sched: sched, state: DefaultState()}
	p.bindControls()
	p.bindTriggers()
	return p, nil
}

// SetEntityStore sets the optional receiver of trigger events.
func (p *Playground) SetEntityStore(store EntityStore) {
	p.store = store
}

// State returns a copy of the current parameters.
func (p *Playground) State() State {
	return p.state
}

// Elements returns the nodes the playground drives.
func (p *Playground) Elements() Elements {
	return p.el
}

// Easing returns the timing function for the current easing selection.
func (p *Playground) Easing() string {
	return p.state.Easing.Curve()
}

// --- Control binding ---

func (p *Playground) bindControls() {
	p.el.SpeedInput.OnInput = func(raw string) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			debugf("ignoring speed %q: %v", raw, err)
			return
		}
		p.state.Speed = v
		p.el.SpeedLabel.Text = formatNumber(v) + "x"
	}

	p.el.ScaleInput.OnInput = func(raw string) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			debugf("ignoring scale %q: %v", raw, err)
			return
		}
		p.state.Scale = v
		p.el.ScaleLabel.Text = formatNumber(v) + "x"
		p.el.Main.Radius = BaseRadius * v
	}

	p.el.RadiusInput.OnInput = func(raw string) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			debugf("ignoring radius %q: %v", raw, err)
			return
		}
		// Out-of-range input like "-0.4" truncates to -0; store it as 0.
		r := math.Trunc(v)
		if r == 0 {
			r = 0
		}
		p.state.Radius = r
		p.el.RadiusLabel.Text = formatNumber(p.state.Radius) + "px"
	}

	p.el.EasingInput.OnChange = func(raw string) {
		p.state.Easing = Easing(raw)
	}
}

func (p *Playground) bindTriggers() {
	for _, btn := range p.el.Triggers {
		btn.OnClick = func(ClickContext) {
			p.Execute(btn.DataValue("trigger"))
		}
	}
}

// --- Continuous loop ---

// Start begins the orbit loop. Calling Start on a running playground does
// nothing. The first frame after Start contributes no elapsed time.
func (p *Playground) Start() {
	if p.running {
		return
	}
	p.running = true
	p.haveLast = false
	p.frame = p.sched.RequestFrame(p.onFrame)
}

// Stop cancels the pending frame. Trigger timers already scheduled still fire.
func (p *Playground) Stop() {
	if !p.running {
		return
	}
	p.sched.CancelFrame(p.frame)
	p.frame = 0
	p.running = false
}

// Running reports whether the orbit loop is scheduled.
func (p *Playground) Running() bool {
	return p.running
}

func (p *Playground) onFrame(now time.Duration) {
	if !p.running {
		return
	}
	if !p.haveLast {
		p.lastFrame = now
		p.haveLast = true
	}
	elapsed := now - p.lastFrame
	p.lastFrame = now

	elapsedMS := float64(elapsed) / float64(time.Millisecond)
	p.state.CurrentAngle += elapsedMS * angularRate * p.state.Speed
	p.placeOrbits()

	p.frame = p.sched.RequestFrame(p.onFrame)
}

// placeOrbits writes each satellite's center from the current phase.
func (p *Playground) placeOrbits() {
	for i, orbit := range p.el.Orbits {
		x, y := OrbitPosition(p.state.CurrentAngle, p.state.Radius, i)
		orbit.X = x
		orbit.Y = y
	}
}

// OrbitPosition returns the center of satellite i at phase angle on an orbit
// of the given radius.
func OrbitPosition(angle, radius float64, i int) (x, y float64) {
	offset := float64(i) * 2 * math.Pi / OrbitCount
	a := angle + offset
	return math.Cos(a) * radius, math.Sin(a) * radius
}

package motion

import (
	"math"
	"time"
)

// Trigger names a discrete, time-bounded effect layered over the orbit loop.
type Trigger string

const (
	TriggerPulse   Trigger = "pulse"
	TriggerExplode Trigger = "explode"
	TriggerMorph   Trigger = "morph"
	TriggerReset   Trigger = "reset"
)

// Base durations at speed 1. Effective durations are divided by the speed.
const (
	PulseDuration   = 600 * time.Millisecond
	ExplodeDuration = 400 * time.Millisecond
	MorphDuration   = 800 * time.Millisecond

	// morphSettle is the extra delay after the last morph step before the
	// shape's styling is cleared.
	morphSettle = 100 * time.Millisecond

	pulsePeak = 1.5
)

// morphShapes are the horizontal and vertical radii the morph cycles through,
// relative to BaseRadius.
var morphShapes = [...]Vec2{
	{X: 40, Y: 20},
	{X: 20, Y: 40},
	{X: 10, Y: 10},
	{X: 40, Y: 40},
}

// Execute runs the trigger with the given identifier. Unknown identifiers are
// ignored.
func (p *Playground) Execute(trigger string) {
	switch Trigger(trigger) {
	case TriggerPulse:
		p.Pulse()
	case TriggerExplode:
		p.Explode()
	case TriggerMorph:
		p.Morph()
	case TriggerReset:
		p.Reset()
	default:
		debugf("unknown trigger %q", trigger)
	}
}

// scaled divides a base duration by the current speed.
func (p *Playground) scaled(base time.Duration) time.Duration {
	return time.Duration(float64(base) / p.state.Speed)
}

func (p *Playground) emit(t Trigger, d time.Duration) {
	debugf("trigger %s at %v (duration %v, easing %s)", t, p.sched.Now(), d, p.state.Easing)
	if p.store == nil {
		return
	}
	p.store.EmitEvent(TriggerEvent{
		Trigger:  t,
		At:       p.sched.Now(),
		Duration: d,
		Speed:    p.state.Speed,
		Radius:   p.state.Radius,
		Easing:   p.state.Easing,
	})
}

// Pulse scales the central shape up to 1.5 and back over one duration each,
// then clears its styling.
func (p *Playground) Pulse() {
	d := p.scaled(PulseDuration)
	main := p.el.Main
	main.SetTransition(Transition{Property: "transform", Duration: d, Timing: p.Easing()})
	main.SetTransform(p.sched.Now(), Scale(pulsePeak))

	p.sched.AfterFunc(d, func() {
		main.SetTransform(p.sched.Now(), Scale(1))
	})
	p.sched.AfterFunc(2*d, func() {
		main.ClearTransition()
		main.ClearTransform(p.sched.Now())
	})
	p.emit(TriggerPulse, d)
}

// Explode sends each satellite outward along its 120°-separated direction to
// twice the orbit radius while fading out, brings it back, then clears its
// styling.
func (p *Playground) Explode() {
	d := p.scaled(ExplodeDuration)
	curve := p.Easing()
	transition := []Transition{
		{Property: "transform", Duration: d, Timing: curve},
		{Property: "opacity", Duration: d},
	}
	now := p.sched.Now()
	distance := p.state.Radius * 2

	for i, orbit := range p.el.Orbits {
		angle := float64(i*120) * (math.Pi / 180)
		x := math.Cos(angle) * distance
		y := math.Sin(angle) * distance

		orbit.SetTransition(transition...)
		orbit.SetTransform(now, Transform{TranslateX: x, TranslateY: y})
		orbit.SetOpacity(now, 0)
	}

	p.sched.AfterFunc(d, func() {
		now := p.sched.Now()
		for _, orbit := range p.el.Orbits {
			orbit.SetTransition(transition...)
			orbit.ClearTransform(now)
			orbit.ClearOpacity(now)
		}
	})
	p.sched.AfterFunc(2*d, func() {
		for _, orbit := range p.el.Orbits {
			orbit.ClearTransition()
		}
	})
	p.emit(TriggerExplode, d)
}

// Morph steps the central shape through four non-uniform scales spaced half a
// duration apart, then clears its styling.
func (p *Playground) Morph() {
	d := p.scaled(MorphDuration)
	main := p.el.Main
	main.SetTransition(Transition{Property: "all", Duration: d, Timing: p.Easing()})

	for i, shape := range morphShapes {
		sx := shape.X / BaseRadius
		sy := shape.Y / BaseRadius
		p.sched.AfterFunc(time.Duration(i)*(d/2), func() {
			main.SetTransform(p.sched.Now(), ScaleXY(sx, sy))
		})
	}

	p.sched.AfterFunc(time.Duration(len(morphShapes))*(d/2)+morphSettle, func() {
		main.ClearTransition()
		main.ClearTransform(p.sched.Now())
	})
	p.emit(TriggerMorph, d)
}

// Reset restores every parameter, widget and label to its default and clears
// inline transform and opacity on the central shape and the satellites.
// Timers scheduled by earlier triggers are not cancelled and still fire.
func (p *Playground) Reset() {
	now := p.sched.Now()
	def := DefaultState()

	p.el.SpeedInput.SetValue(formatNumber(def.Speed))
	p.el.SpeedLabel.Text = formatNumber(def.Speed) + "x"
	p.state.Speed = def.Speed

	p.el.ScaleInput.SetValue(formatNumber(def.Scale))
	p.el.ScaleLabel.Text = formatNumber(def.Scale) + "x"
	p.state.Scale = def.Scale
	p.el.Main.Radius = BaseRadius * def.Scale

	p.el.RadiusInput.SetValue(formatNumber(def.Radius))
	p.el.RadiusLabel.Text = formatNumber(def.Radius) + "px"
	p.state.Radius = def.Radius

	p.el.EasingInput.SetValue(string(def.Easing))
	p.state.Easing = def.Easing

	p.el.Main.ClearTransform(now)
	p.el.Main.ClearOpacity(now)
	for _, orbit := range p.el.Orbits {
		orbit.ClearTransform(now)
		orbit.ClearOpacity(now)
	}
	p.emit(TriggerReset, 0)
}

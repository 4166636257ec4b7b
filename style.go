package motion

import (
	"strings"
	"time"
)

// Transform is a CSS-style 2D transform limited to translate followed by
// scale, applied around the parent's origin: p' = T + S·p.
type Transform struct {
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
}

// IdentityTransform leaves geometry unchanged.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

// Scale returns a uniform scale transform.
func Scale(s float64) Transform {
	return Transform{ScaleX: s, ScaleY: s}
}

// ScaleXY returns a non-uniform scale transform.
func ScaleXY(sx, sy float64) Transform {
	return Transform{ScaleX: sx, ScaleY: sy}
}

// Translate returns a translation with unit scale.
func Translate(x, y float64) Transform {
	return Transform{TranslateX: x, TranslateY: y, ScaleX: 1, ScaleY: 1}
}

// Apply maps a local point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.TranslateX + t.ScaleX*x, t.TranslateY + t.ScaleY*y
}

// String renders the transform as CSS text, e.g. "translate(120px, 0px) scale(0)".
func (t Transform) String() string {
	var parts []string
	if t.TranslateX != 0 || t.TranslateY != 0 {
		parts = append(parts, "translate("+formatNumber(t.TranslateX)+"px, "+formatNumber(t.TranslateY)+"px)")
	}
	switch {
	case t.ScaleX == t.ScaleY:
		if t.ScaleX != 1 || len(parts) == 0 {
			parts = append(parts, "scale("+formatNumber(t.ScaleX)+")")
		}
	default:
		parts = append(parts, "scale("+formatNumber(t.ScaleX)+", "+formatNumber(t.ScaleY)+")")
	}
	return strings.Join(parts, " ")
}

// Transition declares how changes to a style property animate.
// Property is "transform", "opacity" or "all". An empty Timing means the CSS
// default, "ease".
type Transition struct {
	Property string
	Duration time.Duration
	Timing   string
}

// String renders the transition as CSS text, e.g. "transform 600ms linear".
func (t Transition) String() string {
	s := t.Property + " " + formatNumber(float64(t.Duration)/float64(time.Millisecond)) + "ms"
	if t.Timing != "" {
		s += " " + t.Timing
	}
	return s
}

// style is a node's inline style: declared values, as written by callers, and
// computed values, as currently rendered while transitions run.
type style struct {
	transform    Transform
	hasTransform bool
	opacity      float64
	hasOpacity   bool
	transitions  []Transition

	computedTransform Transform
	computedOpacity   float64
	transformTween    *TweenGroup
	opacityTween      *TweenGroup
	sampled           time.Duration
}

func (s *style) reset() {
	*s = style{
		transform:         IdentityTransform,
		opacity:           1,
		computedTransform: IdentityTransform,
		computedOpacity:   1,
	}
}

// cancel stops running transitions, snapping computed values to declared ones.
func (s *style) cancel() {
	s.transformTween = nil
	s.opacityTween = nil
	s.computedTransform = s.transform
	s.computedOpacity = s.opacity
}

// transitionFor returns the last declared transition covering property.
func (s *style) transitionFor(property string) (Transition, bool) {
	for i := len(s.transitions) - 1; i >= 0; i-- {
		t := s.transitions[i]
		if t.Property == property || t.Property == "all" {
			return t, t.Duration > 0
		}
	}
	return Transition{}, false
}

// sample advances running tweens to now. Time never runs backwards.
func (s *style) sample(now time.Duration) {
	if now <= s.sampled {
		return
	}
	dt := float32((now - s.sampled).Seconds())
	s.sampled = now
	if g := s.transformTween; g != nil {
		g.Update(dt)
		if g.Done {
			s.transformTween = nil
			s.computedTransform = s.transform
		}
	}
	if g := s.opacityTween; g != nil {
		g.Update(dt)
		if g.Done {
			s.opacityTween = nil
			s.computedOpacity = s.opacity
		}
	}
}

// --- Node style API ---

// SetTransform declares an inline transform at time now. A declared transform
// or all transition animates the change from the current computed value.
func (n *Node) SetTransform(now time.Duration, t Transform) {
	n.applyTransform(now, t, true)
}

// ClearTransform removes the inline transform at time now; the node returns to
// the identity transform, animated if a transition is declared.
func (n *Node) ClearTransform(now time.Duration) {
	n.applyTransform(now, IdentityTransform, false)
}

func (n *Node) applyTransform(now time.Duration, t Transform, declared bool) {
	s := &n.style
	s.sample(now)
	s.transform = t
	s.hasTransform = declared
	tr, ok := s.transitionFor("transform")
	if !ok || s.computedTransform == t {
		s.transformTween = nil
		s.computedTransform = t
		return
	}
	s.transformTween = tweenTransform(n, &s.computedTransform, t, float32(tr.Duration.Seconds()), TimingFunc(tr.Timing))
}

// SetOpacity declares an inline opacity at time now.
func (n *Node) SetOpacity(now time.Duration, opacity float64) {
	n.applyOpacity(now, opacity, true)
}

// ClearOpacity removes the inline opacity at time now; the node returns to
// fully opaque, animated if a transition is declared.
func (n *Node) ClearOpacity(now time.Duration) {
	n.applyOpacity(now, 1, false)
}

func (n *Node) applyOpacity(now time.Duration, opacity float64, declared bool) {
	s := &n.style
	s.sample(now)
	s.opacity = opacity
	s.hasOpacity = declared
	tr, ok := s.transitionFor("opacity")
	if !ok || s.computedOpacity == opacity {
		s.opacityTween = nil
		s.computedOpacity = opacity
		return
	}
	s.opacityTween = tweenScalar(n, &s.computedOpacity, opacity, float32(tr.Duration.Seconds()), TimingFunc(tr.Timing))
}

// SetTransition replaces the declared transition list. Running transitions
// keep going.
func (n *Node) SetTransition(transitions ...Transition) {
	n.style.transitions = append(n.style.transitions[:0], transitions...)
}

// ClearTransition removes all declared transitions. Running transitions are
// cancelled and computed values jump to the declared ones.
func (n *Node) ClearTransition() {
	n.style.transitions = n.style.transitions[:0]
	n.style.cancel()
}

// TransformStyle returns the declared transform as CSS text, or "" when none is set.
func (n *Node) TransformStyle() string {
	if !n.style.hasTransform {
		return ""
	}
	return n.style.transform.String()
}

// OpacityStyle returns the declared opacity as CSS text, or "" when none is set.
func (n *Node) OpacityStyle() string {
	if !n.style.hasOpacity {
		return ""
	}
	return formatNumber(n.style.opacity)
}

// TransitionStyle returns the declared transitions as CSS text, or "" when none are set.
func (n *Node) TransitionStyle() string {
	parts := make([]string, len(n.style.transitions))
	for i, t := range n.style.transitions {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// HasInlineStyle reports whether a transform or opacity is declared.
func (n *Node) HasInlineStyle() bool {
	return n.style.hasTransform || n.style.hasOpacity
}

// Transitioning reports whether any property is currently animating.
func (n *Node) Transitioning() bool {
	return n.style.transformTween != nil || n.style.opacityTween != nil
}

// ComputedTransform returns the transform being rendered at time now.
func (n *Node) ComputedTransform(now time.Duration) Transform {
	n.style.sample(now)
	return n.style.computedTransform
}

// ComputedOpacity returns the opacity being rendered at time now.
func (n *Node) ComputedOpacity(now time.Duration) float64 {
	n.style.sample(now)
	return n.style.computedOpacity
}

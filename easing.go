package motion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing selects the curve used by the playground's triggered transitions.
type Easing string

const (
	EasingLinear    Easing = "linear"
	EasingEaseInOut Easing = "ease-in-out"
	EasingElastic   Easing = "elastic"
	EasingBounce    Easing = "bounce"
)

// Easings lists the selectable easings in display order.
var Easings = []Easing{EasingLinear, EasingEaseInOut, EasingElastic, EasingBounce}

var easingCurves = map[Easing]string{
	EasingLinear:    "linear",
	EasingEaseInOut: "cubic-bezier(0.65, 0, 0.35, 1)",
	EasingElastic:   "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
	EasingBounce:    "cubic-bezier(0.175, 0.885, 0.32, 1.275)",
}

// Curve returns the CSS timing function for e. Unknown values resolve to the
// ease-in-out curve.
func (e Easing) Curve() string {
	if c, ok := easingCurves[e]; ok {
		return c
	}
	return easingCurves[EasingEaseInOut]
}

// Valid reports whether e is one of the four selectable easings.
func (e Easing) Valid() bool {
	_, ok := easingCurves[e]
	return ok
}

// Control points of the CSS keyword timing functions.
var keywordCurves = map[string][4]float64{
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// TimingFunc converts a CSS timing function ("linear", "ease", "ease-in",
// "ease-out", "ease-in-out" or "cubic-bezier(x1, y1, x2, y2)") into a gween
// easing function. Empty or malformed input yields "ease", the CSS default.
func TimingFunc(timing string) ease.TweenFunc {
	timing = strings.TrimSpace(timing)
	if timing == "linear" {
		return ease.Linear
	}
	if p, ok := keywordCurves[timing]; ok {
		return CubicBezier(p[0], p[1], p[2], p[3])
	}
	if p, err := parseCubicBezier(timing); err == nil {
		return CubicBezier(p[0], p[1], p[2], p[3])
	}
	p := keywordCurves["ease"]
	return CubicBezier(p[0], p[1], p[2], p[3])
}

func parseCubicBezier(s string) ([4]float64, error) {
	var p [4]float64
	inner, ok := strings.CutPrefix(s, "cubic-bezier(")
	if !ok {
		return p, fmt.Errorf("not a cubic-bezier: %q", s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return p, fmt.Errorf("unterminated cubic-bezier: %q", s)
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return p, fmt.Errorf("cubic-bezier needs 4 points, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return p, fmt.Errorf("cubic-bezier point %d: %w", i, err)
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return p, fmt.Errorf("cubic-bezier x out of [0, 1]: %q", s)
	}
	return p, nil
}

// CubicBezier returns a gween easing function for the unit cubic Bézier curve
// with control points (x1, y1) and (x2, y2). y may overshoot [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	// Polynomial coefficients, as in the WebKit UnitBezier solver.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		const eps = 1e-7
		s := x
		for range 8 {
			err := sampleX(s) - x
			if math.Abs(err) < eps {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}
		lo, hi := 0.0, 1.0
		s = x
		for lo < hi {
			v := sampleX(s)
			if math.Abs(v-x) < eps {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (hi-lo)/2 + lo
			if hi-lo < eps {
				break
			}
		}
		return s
	}

	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		if t <= 0 {
			return b
		}
		p := float64(t) / float64(d)
		return b + c*float32(sampleY(solve(p)))
	}
}

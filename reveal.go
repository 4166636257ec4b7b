package motion

// ClassInView marks a node the Revealer has seen enter the viewport.
const ClassInView = "in-view"

// Revealer defaults.
const (
	DefaultRevealThreshold    = 0.2
	DefaultRevealMarginBottom = -100.0
)

// Revealer flags observed nodes once they scroll into view. A node is revealed
// when the fraction of its bounds inside the viewport reaches Threshold; the
// viewport's bottom edge is moved by MarginBottom first (negative shrinks).
// Reveals are one-shot.
type Revealer struct {
	Threshold    float64
	MarginBottom float64
	// OnReveal, if set, runs once per node right after it gains ClassInView.
	OnReveal func(*Node)

	observed []*Node
}

// NewRevealer creates a Revealer with the default threshold and margin.
func NewRevealer() *Revealer {
	return &Revealer{
		Threshold:    DefaultRevealThreshold,
		MarginBottom: DefaultRevealMarginBottom,
	}
}

// Observe starts watching n. Nodes already carrying ClassInView are ignored.
func (r *Revealer) Observe(n *Node) {
	if n.HasClass(ClassInView) {
		return
	}
	r.observed = append(r.observed, n)
}

// Pending returns the number of observed nodes not yet revealed.
func (r *Revealer) Pending() int {
	return len(r.observed)
}

// Check reveals every pending node sufficiently inside viewport, given in the
// same world coordinates as Node.Bounds.
func (r *Revealer) Check(viewport Rect) {
	if len(r.observed) == 0 {
		return
	}
	viewport.Height += r.MarginBottom
	if viewport.Height < 0 {
		viewport.Height = 0
	}

	kept := r.observed[:0]
	for _, n := range r.observed {
		if n.IsDisposed() {
			continue
		}
		if !r.visibleEnough(n.Bounds(), viewport) {
			kept = append(kept, n)
			continue
		}
		n.AddClass(ClassInView)
		if r.OnReveal != nil {
			r.OnReveal(n)
		}
	}
	clear(r.observed[len(kept):])
	r.observed = kept
}

func (r *Revealer) visibleEnough(b, viewport Rect) bool {
	area := b.Area()
	if area <= 0 {
		// Zero-size targets count as visible when their origin is inside.
		return viewport.Contains(b.X, b.Y)
	}
	inter := b.Intersection(viewport)
	if inter.Area() <= 0 {
		return false
	}
	return inter.Area()/area >= r.Threshold
}

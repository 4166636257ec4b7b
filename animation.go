package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Inline style
// transitions are built from TweenGroups; they can also be driven directly by
// calling Update(dt) each frame. If the target node is disposed, the group
// stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finish jumps every tween to its end value.
func (g *TweenGroup) Finish() {
	for !g.Done {
		g.Update(float32(time.Hour.Seconds()))
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenRadius creates a TweenGroup that animates node.Radius.
func TweenRadius(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Radius), float32(to), duration, fn)
	g.fields[0] = &node.Radius
	return g
}

// tweenTransform animates a computed transform in place.
func tweenTransform(node *Node, tr *Transform, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(tr.TranslateX), float32(to.TranslateX), duration, fn)
	g.tweens[1] = gween.New(float32(tr.TranslateY), float32(to.TranslateY), duration, fn)
	g.tweens[2] = gween.New(float32(tr.ScaleX), float32(to.ScaleX), duration, fn)
	g.tweens[3] = gween.New(float32(tr.ScaleY), float32(to.ScaleY), duration, fn)
	g.fields[0] = &tr.TranslateX
	g.fields[1] = &tr.TranslateY
	g.fields[2] = &tr.ScaleX
	g.fields[3] = &tr.ScaleY
	return g
}

// tweenScalar animates a single computed value in place.
func tweenScalar(node *Node, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

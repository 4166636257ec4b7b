package motion

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0  // pixels
	wheelScrollStep     = 40.0 // pixels per wheel notch
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node
	dragging  bool
	button    MouseButton
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; circles test against their radius and other nodes
// against Width × Height. Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	switch n.Type {
	case NodeTypeContainer:
		return false
	case NodeTypeCircle:
		return HitCircle{Radius: n.Radius}.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes. Skips Visible=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && (n.HitShape != nil || n.Type != NodeTypeContainer) {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	nodes := collectInteractable(s.root, nil)
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle mouse input. A queued
// synthetic event replaces real input for that frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		s.ScrollBy(-dy * wheelScrollStep)
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	wx, wy := s.screenToWorld(float64(mx), float64(my))
	s.processPointer(wx, wy, pressed, MouseButtonLeft)
}

// screenToWorld converts screen coordinates to world coordinates by undoing
// the page scroll.
func (s *Scene) screenToWorld(sx, sy float64) (float64, float64) {
	return sx, sy + s.scrollY
}

// processPointer runs the pointer state machine for the mouse pointer.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointer

	// A pressed pointer stays on the node it went down on.
	var target *Node
	if ps.down && ps.hitNode != nil {
		target = ps.hitNode
	} else {
		target = s.hitTest(wx, wy)
	}

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointerLeave(ps.hoverNode, wx, wy, button)
		}
		if target != nil {
			s.firePointerEnter(target, wx, wy, button)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		ps.dragging = false
		s.firePointerDown(target, wx, wy, button)
		s.sliderTrack(target, wx, wy)

	case !pressed && ps.down:
		if !ps.dragging && ps.hitNode != nil && ps.hitNode == s.hitTest(wx, wy) {
			s.fireClick(ps.hitNode, wx, wy, ps.button)
		}
		s.firePointerUp(target, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false

	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging {
				s.fireDrag(ps.hitNode, wx, wy, ps.startX, ps.startY, wx-ps.lastX, wy-ps.lastY, ps.button)
				s.sliderTrack(ps.hitNode, wx, wy)
			}
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// sliderTrack commits the value under the pointer when n is a slider and the
// value changed.
func (s *Scene) sliderTrack(n *Node, wx, wy float64) {
	if n == nil || n.Type != NodeTypeSlider {
		return
	}
	lx, _ := n.WorldToLocal(wx, wy)
	if v := n.SliderValueAt(lx); v != n.Value {
		n.Input(v)
	}
}

// --- Event dispatch ---

func pointerContext(n *Node, typ EventType, wx, wy float64, button MouseButton) PointerContext {
	lx, ly := n.WorldToLocal(wx, wy)
	return PointerContext{Node: n, Type: typ, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly, Button: button}
}

func (s *Scene) firePointerDown(n *Node, wx, wy float64, button MouseButton) {
	if n != nil && n.OnPointerDown != nil {
		n.OnPointerDown(pointerContext(n, EventPointerDown, wx, wy, button))
	}
}

func (s *Scene) firePointerUp(n *Node, wx, wy float64, button MouseButton) {
	if n != nil && n.OnPointerUp != nil {
		n.OnPointerUp(pointerContext(n, EventPointerUp, wx, wy, button))
	}
}

func (s *Scene) firePointerEnter(n *Node, wx, wy float64, button MouseButton) {
	if n.OnPointerEnter != nil {
		n.OnPointerEnter(pointerContext(n, EventPointerEnter, wx, wy, button))
	}
}

func (s *Scene) firePointerLeave(n *Node, wx, wy float64, button MouseButton) {
	if n.OnPointerLeave != nil {
		n.OnPointerLeave(pointerContext(n, EventPointerLeave, wx, wy, button))
	}
}

// fireClick runs the node's click handler. Selects without a handler cycle to
// their next option.
func (s *Scene) fireClick(n *Node, wx, wy float64, button MouseButton) {
	if n.OnClick != nil {
		lx, ly := n.WorldToLocal(wx, wy)
		n.OnClick(ClickContext{Node: n, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly, Button: button})
		return
	}
	if n.Type == NodeTypeSelect {
		n.Input(n.NextOption())
	}
}

func (s *Scene) fireDrag(n *Node, wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton) {
	if n == nil || n.OnDrag == nil {
		return
	}
	lx, ly := n.WorldToLocal(wx, wy)
	n.OnDrag(DragContext{
		Node: n, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		StartX: startX, StartY: startY, DeltaX: deltaX, DeltaY: deltaY,
		Button: button,
	})
}

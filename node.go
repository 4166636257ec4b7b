package motion

import (
	"slices"
	"strconv"
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node    *Node
	Type    EventType
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// DragContext carries drag event data.
type DragContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	StartX  float64
	StartY  float64
	DeltaX  float64
	DeltaY  float64
	Button  MouseButton
}

// nodeIDCounter is a plain counter (no atomic, motion is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types; fields that do not apply to a node's Type are ignored.
//
// Geometry fields are attributes in the SVG sense: X and Y are the center of a
// circle (cx, cy) or the top-left of a box, Radius is r. Inline style
// (transform, opacity, transition) is layered on top of the attributes and is
// manipulated through the Set/Clear style methods.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Attributes
	X, Y          float64
	Radius        float64
	Width, Height float64
	Color         Color

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Text content for labels and buttons.
	Text string

	// Input widget fields (NodeTypeSlider, NodeTypeSelect)
	Value   string
	Min     float64
	Max     float64
	Step    float64
	Options []string

	// Data holds data-* attributes, e.g. "trigger" or "animation".
	Data map[string]string

	// Metadata
	UserData any

	// Hit testing
	HitShape HitShape

	style   style
	classes []string

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(ClickContext)
	OnDrag         func(DragContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// OnInput fires when a slider value is committed by the user.
	OnInput func(value string)
	// OnChange fires when a select value is committed by the user.
	OnChange func(value string)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Color = ColorWhite
	n.Visible = true
	n.style.reset()
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewCircle creates a circle node with the given radius centered on its
// parent's origin.
func NewCircle(name string, radius float64) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Radius: radius}
	nodeDefaults(n)
	return n
}

// NewBox creates a filled rectangle node.
func NewBox(name string, width, height float64) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewLabel creates a text readout node.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Type: NodeTypeLabel, Text: text}
	nodeDefaults(n)
	return n
}

// NewSlider creates an interactable range input with the given bounds, step
// and initial value.
func NewSlider(name string, minValue, maxValue, step, value float64) *Node {
	n := &Node{
		Name:         name,
		Type:         NodeTypeSlider,
		Min:          minValue,
		Max:          maxValue,
		Step:         step,
		Value:        formatNumber(value),
		Width:        160,
		Height:       16,
		Interactable: true,
	}
	nodeDefaults(n)
	return n
}

// NewSelect creates an interactable enumerated input. value should be one of
// options.
func NewSelect(name string, options []string, value string) *Node {
	n := &Node{
		Name:         name,
		Type:         NodeTypeSelect,
		Options:      slices.Clone(options),
		Value:        value,
		Width:        160,
		Height:       20,
		Interactable: true,
	}
	nodeDefaults(n)
	return n
}

// NewButton creates an interactable button with a caption.
func NewButton(name, text string) *Node {
	n := &Node{
		Name:         name,
		Type:         NodeTypeButton,
		Text:         text,
		Width:        80,
		Height:       24,
		Interactable: true,
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindByName returns the first node named name in this subtree (depth first,
// including n itself), or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Position ---

// SetPosition sets the node's X and Y attributes.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Origin returns the world-space origin of this node's local coordinate
// system: the sum of the positions of all ancestors. Ancestor style
// transforms are not applied.
func (n *Node) Origin() Vec2 {
	var o Vec2
	for p := n.Parent; p != nil; p = p.Parent {
		o.X += p.X
		o.Y += p.Y
	}
	return o
}

// Bounds returns the node's world-space layout rectangle, ignoring inline
// style transforms. Containers without children have an empty rectangle at
// their origin.
func (n *Node) Bounds() Rect {
	o := n.Origin()
	switch n.Type {
	case NodeTypeCircle:
		return Rect{X: o.X + n.X - n.Radius, Y: o.Y + n.Y - n.Radius, Width: 2 * n.Radius, Height: 2 * n.Radius}
	default:
		return Rect{X: o.X + n.X, Y: o.Y + n.Y, Width: n.Width, Height: n.Height}
	}
}

// WorldToLocal converts a world-space point to this node's local space,
// relative to its layout position.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	o := n.Origin()
	return wx - o.X - n.X, wy - o.Y - n.Y
}

// --- Classes ---

// AddClass adds a class flag. Adding an existing class is a no-op.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes a class flag if present.
func (n *Node) RemoveClass(class string) {
	if i := slices.Index(n.classes, class); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// ToggleClass flips a class flag and reports whether it is now present.
func (n *Node) ToggleClass(class string) bool {
	if n.HasClass(class) {
		n.RemoveClass(class)
		return false
	}
	n.classes = append(n.classes, class)
	return true
}

// HasClass reports whether the class flag is present.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// --- Data attributes ---

// SetData sets a data-* attribute.
func (n *Node) SetData(key, value string) {
	if n.Data == nil {
		n.Data = make(map[string]string)
	}
	n.Data[key] = value
}

// DataValue returns a data-* attribute, or "" if unset.
func (n *Node) DataValue(key string) string {
	return n.Data[key]
}

// --- Input widgets ---

// SetValue sets an input widget's value programmatically. No callbacks fire.
func (n *Node) SetValue(value string) {
	n.Value = value
}

// Input commits a value as if entered by the user: the value is stored and
// OnInput (sliders) or OnChange (selects) fires.
func (n *Node) Input(value string) {
	n.Value = value
	switch n.Type {
	case NodeTypeSlider:
		if n.OnInput != nil {
			n.OnInput(value)
		}
	case NodeTypeSelect:
		if n.OnChange != nil {
			n.OnChange(value)
		}
	}
}

// SliderValueAt maps a local x coordinate across the slider's width to a value
// string snapped to Step and bounded by Min and Max.
func (n *Node) SliderValueAt(lx float64) string {
	t := 0.0
	if n.Width > 0 {
		t = clamp01(lx / n.Width)
	}
	v := n.Min + t*(n.Max-n.Min)
	if n.Step > 0 {
		steps := int((v-n.Min)/n.Step + 0.5)
		v = n.Min + float64(steps)*n.Step
		// Round away accumulated binary error so labels read "1.3x", not "1.3000000000000003x".
		v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	}
	return formatNumber(min(max(v, n.Min), n.Max))
}

// SliderFraction returns the position of the current value within [Min, Max]
// as a fraction in [0, 1]. Unparseable values map to 0.
func (n *Node) SliderFraction() float64 {
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil || n.Max <= n.Min {
		return 0
	}
	return clamp01((v - n.Min) / (n.Max - n.Min))
}

// NextOption returns the option after the current value, wrapping around.
// Returns the first option when the current value is not among the options.
func (n *Node) NextOption() string {
	if len(n.Options) == 0 {
		return n.Value
	}
	i := slices.Index(n.Options, n.Value)
	return n.Options[(i+1)%len(n.Options)]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Running transitions stop.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.Data = nil
	n.style.cancel()
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnClick = nil
	n.OnDrag = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnInput = nil
	n.OnChange = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// formatNumber renders v the way a browser stringifies a number: shortest
// representation, no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

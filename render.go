package motion

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType selects how a RenderCommand is drawn.
type CommandType uint8

const (
	CommandEllipse CommandType = iota // filled ellipse centered on (X, Y)
	CommandRect                       // filled rectangle with top-left (X, Y)
	CommandText                       // debug-font text at (X, Y)
)

// RenderCommand is a single draw operation in screen coordinates emitted
// during scene traversal.
type RenderCommand struct {
	Type   CommandType
	Node   *Node
	X, Y   float64
	RX, RY float64 // ellipse radii
	W, H   float64 // rect size
	Color  Color
	Alpha  float64
	Text   string
}

// ellipseSegments is the triangle-fan resolution for circles.
const ellipseSegments = 48

// Widget palette.
var (
	colorWidgetTrack  = Color{R: 0.25, G: 0.27, B: 0.33, A: 1}
	colorWidgetFill   = Color{R: 0.45, G: 0.6, B: 1, A: 1}
	colorWidgetButton = Color{R: 0.32, G: 0.36, B: 0.48, A: 1}
	colorWidgetHover  = Color{R: 0.42, G: 0.47, B: 0.62, A: 1}
)

// debugGlyphH is the line height of ebitenutil's debug font.
const debugGlyphH = 16

var whiteImage *ebiten.Image

// solidImage returns a small white image for untextured triangles, created
// lazily so headless code paths never touch the GPU.
func solidImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite.toRGBA(1))
	}
	return whiteImage
}

// Draw traverses the scene tree at the Loop's current time and draws it onto
// screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA(1))
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.commands = s.BuildCommands(s.commands[:0])

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range s.commands {
		submitCommand(screen, &s.commands[i])
	}

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		stats.timerCount = s.loop.PendingTimers()
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// BuildCommands appends the draw operations for the current frame to buf and
// returns it. Computed style values are sampled at the Loop's current time.
func (s *Scene) BuildCommands(buf []RenderCommand) []RenderCommand {
	return s.traverse(s.root, Vec2{Y: -s.scrollY}, IdentityTransform, 1, s.loop.Now(), buf)
}

// traverse emits commands for n and its subtree. origin is the screen-space
// origin of n's parent coordinate system, parent the composed style
// transform of the ancestors around that origin.
func (s *Scene) traverse(n *Node, origin Vec2, parent Transform, alpha float64, now time.Duration, buf []RenderCommand) []RenderCommand {
	if !n.Visible {
		return buf
	}
	tr := n.ComputedTransform(now)
	alpha *= n.ComputedOpacity(now)
	if alpha <= 0 {
		return buf
	}

	// Local position with the node's own transform, then the ancestors'.
	lx, ly := tr.Apply(n.X, n.Y)
	px, py := parent.Apply(lx, ly)
	sx := parent.ScaleX * tr.ScaleX
	sy := parent.ScaleY * tr.ScaleY
	x, y := origin.X+px, origin.Y+py

	switch n.Type {
	case NodeTypeCircle:
		buf = append(buf, RenderCommand{
			Type: CommandEllipse, Node: n, X: x, Y: y,
			RX: math.Abs(n.Radius * sx), RY: math.Abs(n.Radius * sy),
			Color: n.Color, Alpha: alpha,
		})
	case NodeTypeBox:
		buf = append(buf, RenderCommand{
			Type: CommandRect, Node: n, X: x, Y: y,
			W: n.Width * sx, H: n.Height * sy,
			Color: n.Color, Alpha: alpha,
		})
	case NodeTypeLabel:
		buf = append(buf, RenderCommand{Type: CommandText, Node: n, X: x, Y: y, Text: n.Text, Color: n.Color, Alpha: alpha})
	case NodeTypeSlider:
		trackY := y + n.Height/2 - 2
		buf = append(buf,
			RenderCommand{Type: CommandRect, Node: n, X: x, Y: trackY, W: n.Width, H: 4, Color: colorWidgetTrack, Alpha: alpha},
			RenderCommand{Type: CommandRect, Node: n, X: x, Y: trackY, W: n.Width * n.SliderFraction(), H: 4, Color: colorWidgetFill, Alpha: alpha},
			RenderCommand{Type: CommandEllipse, Node: n, X: x + n.Width*n.SliderFraction(), Y: y + n.Height/2, RX: n.Height / 2, RY: n.Height / 2, Color: n.Color, Alpha: alpha},
		)
	case NodeTypeSelect, NodeTypeButton:
		fill := colorWidgetButton
		if s.pointer.hoverNode == n {
			fill = colorWidgetHover
		}
		text := n.Text
		if n.Type == NodeTypeSelect {
			text = "< " + n.Value + " >"
		}
		buf = append(buf,
			RenderCommand{Type: CommandRect, Node: n, X: x, Y: y, W: n.Width * sx, H: n.Height * sy, Color: fill, Alpha: alpha},
			RenderCommand{Type: CommandText, Node: n, X: x + 6, Y: y + (n.Height-debugGlyphH)/2, Text: text, Color: n.Color, Alpha: alpha},
		)
	}

	// Children live in this node's coordinate system, whose origin is the
	// node's transformed position; only the composed scale carries over.
	childOrigin := Vec2{X: x, Y: y}
	childParent := Transform{ScaleX: sx, ScaleY: sy}
	for _, child := range n.children {
		buf = s.traverse(child, childOrigin, childParent, alpha, now, buf)
	}
	return buf
}

// submitCommand draws one command with Ebitengine.
func submitCommand(screen *ebiten.Image, cmd *RenderCommand) {
	switch cmd.Type {
	case CommandEllipse:
		drawEllipse(screen, cmd)
	case CommandRect:
		if cmd.W <= 0 || cmd.H <= 0 {
			return
		}
		vector.DrawFilledRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), cmd.Color.toRGBA(cmd.Alpha), true)
	case CommandText:
		ebitenutil.DebugPrintAt(screen, cmd.Text, int(cmd.X), int(cmd.Y))
	}
}

// drawEllipse fills an ellipse as a triangle fan so non-uniform scales
// render correctly.
func drawEllipse(screen *ebiten.Image, cmd *RenderCommand) {
	if cmd.RX <= 0 || cmd.RY <= 0 {
		return
	}
	c := cmd.Color.toRGBA(cmd.Alpha)
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255

	verts := make([]ebiten.Vertex, 0, ellipseSegments+1)
	inds := make([]uint16, 0, ellipseSegments*3)
	verts = append(verts, ebiten.Vertex{
		DstX: float32(cmd.X), DstY: float32(cmd.Y),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		verts = append(verts, ebiten.Vertex{
			DstX: float32(cmd.X + math.Cos(theta)*cmd.RX),
			DstY: float32(cmd.Y + math.Sin(theta)*cmd.RY),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
		next := uint16((i+1)%ellipseSegments + 1)
		inds = append(inds, 0, uint16(i+1), next)
	}
	screen.DrawTriangles(verts, inds, solidImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

package motion

// Slider ranges of the standard playground panel.
const (
	SpeedMin, SpeedMax, SpeedStep    = 0.1, 3.0, 0.1
	ScaleMin, ScaleMax, ScaleStep    = 0.5, 2.0, 0.1
	RadiusMin, RadiusMax, RadiusStep = 30.0, 120.0, 5.0
)

// Panel geometry.
const (
	panelWidth      = 640
	panelHeight     = 360
	stageCenterX    = 200
	stageCenterY    = 180
	controlsX       = 420
	controlRowH     = 56
	triggerButtonW  = 96
	triggerButtonH  = 24
	triggerSpacingY = 32
)

// Shape colors of the standard panel.
var (
	ColorMainShape = Color{R: 0.4, G: 0.55, B: 1, A: 1}
	ColorOrbit     = Color{R: 1, G: 0.55, B: 0.35, A: 1}
	ColorPanel     = Color{R: 0.11, G: 0.12, B: 0.16, A: 1}
	ColorLabel     = Color{R: 0.9, G: 0.9, B: 0.95, A: 1}
)

// NewPanel builds the standard playground layout: a background box, the
// shape container with its central circle and three satellites, one labeled
// row per control and the four trigger buttons. The returned node is the
// panel root; add it to a scene and pass the Elements to NewPlayground.
func NewPanel(name string) (*Node, Elements) {
	root := NewContainer(name)

	bg := NewBox(name+"-bg", panelWidth, panelHeight)
	bg.Color = ColorPanel
	root.AddChild(bg)

	var el Elements
	el.Container = NewContainer("animated-shape")
	el.Container.SetPosition(stageCenterX, stageCenterY)
	root.AddChild(el.Container)

	el.Main = NewCircle("shape-main", BaseRadius*DefaultScale)
	el.Main.Color = ColorMainShape
	el.Container.AddChild(el.Main)

	for i := range el.Orbits {
		o := NewCircle("shape-orbit-"+formatNumber(float64(i+1)), 12)
		o.Color = ColorOrbit
		o.X, o.Y = OrbitPosition(0, DefaultRadius, i)
		el.Orbits[i] = o
		el.Container.AddChild(o)
	}

	row := func(i int, caption string, input *Node, value *Node) {
		y := 24 + float64(i)*controlRowH
		title := NewLabel("title-"+input.Name, caption)
		title.Color = ColorLabel
		title.SetPosition(controlsX, y)
		root.AddChild(title)

		if value != nil {
			value.Color = ColorLabel
			value.SetPosition(controlsX+120, y)
			root.AddChild(value)
		}

		input.SetPosition(controlsX, y+20)
		root.AddChild(input)
	}

	el.SpeedInput = NewSlider("ctrl-speed", SpeedMin, SpeedMax, SpeedStep, DefaultSpeed)
	el.SpeedLabel = NewLabel("val-speed", formatNumber(DefaultSpeed)+"x")
	row(0, "Speed", el.SpeedInput, el.SpeedLabel)

	el.ScaleInput = NewSlider("ctrl-scale", ScaleMin, ScaleMax, ScaleStep, DefaultScale)
	el.ScaleLabel = NewLabel("val-scale", formatNumber(DefaultScale)+"x")
	row(1, "Scale", el.ScaleInput, el.ScaleLabel)

	el.RadiusInput = NewSlider("ctrl-radius", RadiusMin, RadiusMax, RadiusStep, DefaultRadius)
	el.RadiusLabel = NewLabel("val-radius", formatNumber(DefaultRadius)+"px")
	row(2, "Orbit radius", el.RadiusInput, el.RadiusLabel)

	options := make([]string, len(Easings))
	for i, e := range Easings {
		options[i] = string(e)
	}
	el.EasingInput = NewSelect("ctrl-easing", options, string(DefaultEasing))
	row(3, "Easing", el.EasingInput, nil)

	triggers := []Trigger{TriggerPulse, TriggerExplode, TriggerMorph, TriggerReset}
	for i, t := range triggers {
		btn := NewButton("trigger-"+string(t), string(t))
		btn.Width, btn.Height = triggerButtonW, triggerButtonH
		btn.Color = ColorLabel
		btn.SetData("trigger", string(t))
		col, line := i%2, i/2
		btn.SetPosition(controlsX+float64(col)*(triggerButtonW+8), 24+4*controlRowH+float64(line)*triggerSpacingY)
		el.Triggers = append(el.Triggers, btn)
		root.AddChild(btn)
	}

	return root, el
}

// PanelSize returns the width and height of the layout built by NewPanel.
func PanelSize() (width, height float64) {
	return panelWidth, panelHeight
}

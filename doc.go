// Package motion is an interactive animation playground built on [Ebitengine].
//
// A central shape and three satellites orbit continuously while four triggers
// (pulse, explode, morph, reset) layer time-bounded effects on top. Sliders
// tune speed, scale and orbit radius, and a select picks the easing curve the
// effects use.
//
// # Quick start
//
// [NewPanel] builds the standard layout and [NewPlayground] wires it up:
//
//	scene := motion.NewScene()
//	panel, el := motion.NewPanel("playground")
//	scene.Root().AddChild(panel)
//
//	p, err := motion.NewPlayground(el, scene.Scheduler())
//	if err != nil {
//		log.Fatal(err)
//	}
//	p.Start()
//
//	motion.Run(scene, motion.RunConfig{Title: "Playground", Width: 640, Height: 360})
//
// # Scheduling
//
// Animation code runs on a [Scheduler]: per-frame callbacks plus one-shot
// timers that cannot be cancelled. [Loop] is the deterministic implementation;
// the host advances it, so tests can step time exactly:
//
//	loop := motion.NewLoop()
//	p, _ := motion.NewPlayground(el, loop)
//	p.Execute("explode")
//	loop.Advance(400 * time.Millisecond)
//
// Timers due before a frame fire first, each with [Loop.Now] set to its own
// deadline.
//
// # Inline style
//
// Nodes carry SVG-like attributes (X, Y, Radius) plus a CSS-like inline style:
// a [Transform], an opacity and a list of [Transition] declarations. Changing
// a styled property while a matching transition is declared animates the
// computed value with a gween tween shaped by the declared timing function:
//
//	n.SetTransition(motion.Transition{Property: "transform", Duration: 600 * time.Millisecond, Timing: "linear"})
//	n.SetTransform(loop.Now(), motion.Scale(1.5))
//
// Computed values are sampled by time, see [Node.ComputedTransform].
//
// # Page behaviors
//
// [BindIcons] gives icon nodes click-to-toggle and hover micro-animations.
// A [Revealer] flags sections with [ClassInView] once they scroll into view.
//
// # Debug mode
//
// [Scene.SetDebugMode] (or [SetDebug] without a scene) enables disposed-node
// checks and writes trigger and frame diagnostics to stderr.
//
// [Ebitengine]: https://ebitengine.org
package motion

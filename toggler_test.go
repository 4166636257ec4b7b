package motion

import (
	"testing"
)

func newIcon(name, animation string) *Node {
	icon := NewCircle(name, 16)
	icon.SetData("animation", animation)
	return icon
}

func TestIconClickToggles(t *testing.T) {
	loop := NewLoop()
	heart := newIcon("heart", "heart")
	BindIcons([]*Node{heart}, loop)

	heart.OnClick(ClickContext{Node: heart})
	if !heart.HasClass(ClassActive) {
		t.Fatal("expected active after first click")
	}
	loop.Advance(IconAutoReset * 2)
	if !heart.HasClass(ClassActive) {
		t.Error("heart should stay active")
	}
	heart.OnClick(ClickContext{Node: heart})
	if heart.HasClass(ClassActive) {
		t.Error("expected inactive after second click")
	}
}

func TestIconAutoReset(t *testing.T) {
	for _, anim := range []string{"send", "bell"} {
		t.Run(anim, func(t *testing.T) {
			loop := NewLoop()
			icon := newIcon(anim, anim)
			BindIcons([]*Node{icon}, loop)

			icon.OnClick(ClickContext{Node: icon})
			loop.Advance(IconAutoReset - ms)
			if !icon.HasClass(ClassActive) {
				t.Fatal("deactivated too early")
			}
			loop.Advance(IconAutoReset)
			if icon.HasClass(ClassActive) {
				t.Error("expected auto reset after 600ms")
			}
		})
	}
}

func TestIconDoubleClickAutoResetLeavesInactive(t *testing.T) {
	loop := NewLoop()
	icon := newIcon("bell", "bell")
	BindIcons([]*Node{icon}, loop)

	icon.OnClick(ClickContext{Node: icon})
	icon.OnClick(ClickContext{Node: icon})
	loop.Advance(IconAutoReset)
	if icon.HasClass(ClassActive) {
		t.Error("icon should end inactive")
	}
}

func TestIconHover(t *testing.T) {
	loop := NewLoop()
	icon := newIcon("heart", "heart")
	BindIcons([]*Node{icon}, loop)

	icon.OnPointerEnter(PointerContext{Node: icon})
	if icon.TransformStyle() != "scale(1.1)" {
		t.Errorf("hover transform = %q, want scale(1.1)", icon.TransformStyle())
	}
	icon.OnPointerLeave(PointerContext{Node: icon})
	if icon.TransformStyle() != "" {
		t.Errorf("transform after leave = %q, want empty", icon.TransformStyle())
	}

	icon.AddClass(ClassActive)
	icon.OnPointerEnter(PointerContext{Node: icon})
	if icon.TransformStyle() != "" {
		t.Errorf("active icon hover transform = %q, want empty", icon.TransformStyle())
	}
}

func TestIconsThroughScene(t *testing.T) {
	s := NewScene()
	icon := newIcon("send", "send")
	icon.SetPosition(50, 50)
	s.Root().AddChild(icon)
	BindIcons([]*Node{icon}, s.Loop())

	if !icon.Interactable {
		t.Fatal("BindIcons should make icons interactable")
	}
	s.processPointer(50, 50, false, MouseButtonLeft)
	if icon.TransformStyle() != "scale(1.1)" {
		t.Errorf("transform = %q after hover", icon.TransformStyle())
	}
	s.processPointer(50, 50, true, MouseButtonLeft)
	s.processPointer(50, 50, false, MouseButtonLeft)
	if !icon.HasClass(ClassActive) {
		t.Error("expected active after click")
	}
}

package motion

import (
	"slices"
	"time"
)

// ClassActive marks an icon whose micro-animation is playing.
const ClassActive = "active"

// IconAutoReset is how long self-resetting icon animations stay active.
const IconAutoReset = 600 * time.Millisecond

// hoverScale is the preview scale applied to an inactive icon under the pointer.
const hoverScale = 1.1

// autoResetAnimations are the "animation" data values that deactivate on their own.
var autoResetAnimations = []string{"send", "bell"}

// BindIcons wires click and hover handlers onto icon nodes. A click toggles the
// active class; "send" and "bell" icons drop it again after IconAutoReset.
// Hovering an inactive icon previews it at a slightly larger scale.
func BindIcons(icons []*Node, sched Scheduler) {
	for _, icon := range icons {
		icon.Interactable = true

		icon.OnClick = func(ClickContext) {
			icon.ToggleClass(ClassActive)
			if slices.Contains(autoResetAnimations, icon.DataValue("animation")) {
				sched.AfterFunc(IconAutoReset, func() {
					icon.RemoveClass(ClassActive)
				})
			}
		}

		icon.OnPointerEnter = func(PointerContext) {
			if !icon.HasClass(ClassActive) {
				icon.SetTransform(sched.Now(), Scale(hoverScale))
			}
		}

		icon.OnPointerLeave = func(PointerContext) {
			icon.ClearTransform(sched.Now())
		}
	}
}

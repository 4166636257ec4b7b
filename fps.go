package motion

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fpsOverlay draws the current FPS, TPS and pending timer count in the top-right
// corner. The text is refreshed every ~0.5 seconds of scene time.
type fpsOverlay struct {
	text       string
	lastUpdate float64
}

func (o *fpsOverlay) update(now float64, loop *Loop) {
	if o.text != "" && now-o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = now
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTimers: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), loop.PendingTimers())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	// 100x48 is enough for three short lines.
	x := float32(w - 104)
	vector.DrawFilledRect(screen, x, 4, 100, 48, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, o.text, int(x)+4, 4)
}

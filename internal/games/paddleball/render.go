package paddleball

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
)

// Layout maps arena units to terminal cells.
type Layout struct {
	UnitsPerCol float64
	UnitsPerRow float64
}

// DefaultLayout turns an 80x24 terminal into the 800x600 default arena.
var DefaultLayout = Layout{UnitsPerCol: 10, UnitsPerRow: 25}

// ArenaForScreen measures the arena from a surface of cols x rows cells.
// An unmeasured surface falls back to DefaultArena.
func ArenaForScreen(cols, rows int, l Layout) Arena {
	if cols <= 0 || rows <= 0 {
		return DefaultArena
	}
	return Arena{
		Width:  float64(cols) * l.UnitsPerCol,
		Height: float64(rows) * l.UnitsPerRow,
	}
}

// cells converts a box in arena units to the cells it covers.
// Every visible object covers at least one cell.
func (l Layout) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() / l.UnitsPerCol))
	y0 := int(math.Floor(b.Top() / l.UnitsPerRow))
	x1 := int(math.Ceil(b.Right() / l.UnitsPerCol))
	y1 := int(math.Ceil(b.Bottom() / l.UnitsPerRow))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws a snapshot into dst.
func Render(dst *core.Screen, snap Snapshot, l Layout) {
	dst.Clear()

	dst.DrawRect(l.cells(snap.PaddleBox()), PaddleChar, core.ColorCyan)
	dst.DrawRect(l.cells(snap.BallBox()), BallChar, core.ColorBrightYellow)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", "Press Space to start again", core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	x := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	y := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())
	box := core.NewRect(x, y, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorGray)
}

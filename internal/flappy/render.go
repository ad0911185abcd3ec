package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar    = '█'
	BirdEye     = '▪'
	PipeChar    = '█'
	PipeCapTop  = '▀'
	PipeCapBot  = '▄'
	CloudChar   = '░'
	TrunkChar   = '┃'
	CanopyChar  = '♣'
	HUDPaddingX = 1
)

// ScreenRenderer draws the world into a core.Screen, scaling field units to
// character cells. The screen may be resized between frames.
type ScreenRenderer struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

// NewScreenRenderer creates a renderer for the given field size.
func NewScreenRenderer(screen *core.Screen, cfg config.Tunables) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,
	}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// BeginFrame clears the buffer.
func (r *ScreenRenderer) BeginFrame() {
	r.screen.Clear()
}

// DrawCloud fills an ellipse around the cloud center.
func (r *ScreenRenderer) DrawCloud(c Cloud) {
	rx, ry := c.Width/2, c.Height/2
	r.fillEllipse(c.X, c.Y, rx, ry, CloudChar, core.ColorWhite)
	// Smaller side puffs
	r.fillEllipse(c.X+c.Width*0.6, c.Y+c.Height*0.2, c.Width*0.4, c.Height*0.4, CloudChar, core.ColorWhite)
	r.fillEllipse(c.X-c.Width*0.4, c.Y+c.Height*0.1, c.Width*0.3, c.Height*0.3, CloudChar, core.ColorWhite)
}

// DrawTree draws the trunk and a round canopy on top of it.
func (r *ScreenRenderer) DrawTree(t Tree) {
	top := t.TrunkTop()
	cx := t.X + t.TrunkWidth/2
	r.fillEllipse(cx, top-t.CanopyRadius/3, t.CanopyRadius, t.CanopyRadius, CanopyChar, core.ColorGreen)
	r.screen.DrawRect(r.cells(core.NewBox(t.X, top, t.TrunkWidth, t.Height)), TrunkChar, core.ColorBrown)
}

// DrawPipe draws both sections with caps facing the gap.
func (r *ScreenRenderer) DrawPipe(p Pipe) {
	top := r.cells(p.TopBox())
	bottom := r.cells(p.BottomBox(r.fieldH))

	r.screen.DrawRect(top, PipeChar, core.ColorBrightGreen)
	r.screen.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorGreen)

	r.screen.DrawRect(bottom, PipeChar, core.ColorBrightGreen)
	r.screen.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBot, core.ColorGreen)
}

// DrawBird draws the bird's box with an eye in the top-right cell.
func (r *ScreenRenderer) DrawBird(b Bird) {
	box := r.cells(b.Box())
	r.screen.DrawRect(box, BirdChar, core.ColorBrightYellow)
	r.screen.SetColor(box.Right()-1, box.Y, BirdEye, core.ColorYellow)
}

// DrawHUD draws the score and, after game over, the centered overlay.
func (r *ScreenRenderer) DrawHUD(h HUD) {
	r.screen.DrawText(HUDPaddingX, 0, fmt.Sprintf(" Score: %d ", h.Score), core.ColorBrightWhite)
	if h.GameOver {
		r.drawCenteredMessage("GAME OVER!", "Space or click to restart")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r *ScreenRenderer) drawCenteredMessage(title, subtitle string) {
	w, h := r.screen.Width(), r.screen.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	// Screens smaller than the box keep its top-left corner visible
	box := core.NewRect(core.Clamp((w-boxW)/2, 0, w), core.Clamp((h-boxH)/2, 0, h), boxW, boxH)

	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, core.ColorBrightRed)
	r.screen.DrawTextCentered(box.Y+1, title, core.ColorBrightRed)
	r.screen.DrawTextCentered(box.Y+3, subtitle, core.ColorRed)
}

// col maps a field x-coordinate to a screen column.
func (r *ScreenRenderer) col(x float64) int {
	return int(math.Floor(x * float64(r.screen.Width()) / r.fieldW))
}

// row maps a field y-coordinate to a screen row.
func (r *ScreenRenderer) row(y float64) int {
	return int(math.Floor(y * float64(r.screen.Height()) / r.fieldH))
}

// bounds returns the whole screen as a rectangle.
func (r *ScreenRenderer) bounds() core.Rect {
	return core.NewRect(0, 0, r.screen.Width(), r.screen.Height())
}

// cells converts a field box to the screen cells it covers.
// Any box with positive size covers at least one cell.
func (r *ScreenRenderer) cells(b core.Box) core.Rect {
	if b.W <= 0 || b.H <= 0 {
		return core.Rect{}
	}
	x0, y0 := r.col(b.X), r.row(b.Y)
	x1, y1 := r.col(b.Right()), r.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// fillEllipse fills the cells whose centers lie inside the ellipse.
func (r *ScreenRenderer) fillEllipse(cx, cy, rx, ry float64, ch rune, c core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	area := r.cells(core.NewBox(cx-rx, cy-ry, 2*rx, 2*ry))
	if !area.Intersects(r.bounds()) {
		return
	}
	w, h := r.screen.Width(), r.screen.Height()
	x0, x1 := core.Clamp(area.X, 0, w), core.Clamp(area.Right(), 0, w)
	y0, y1 := core.Clamp(area.Y, 0, h), core.Clamp(area.Bottom(), 0, h)

	cellW := r.fieldW / float64(max(r.screen.Width(), 1))
	cellH := r.fieldH / float64(max(r.screen.Height(), 1))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := ((float64(x)+0.5)*cellW - cx) / rx
			dy := ((float64(y)+0.5)*cellH - cy) / ry
			if dx*dx+dy*dy <= 1 {
				r.screen.SetColor(x, y, ch, c)
			}
		}
	}
}

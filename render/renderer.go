package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/status"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Frame is everything drawn in one pass
type Frame struct {
	Game    game.Snapshot
	Session status.Summary
}

// Renderer draws snapshots onto a terminal surface
type Renderer struct {
	screen       Surface
	defaultStyle tcell.Style
}

// NewRenderer creates a renderer for the given surface
func NewRenderer(screen Surface) *Renderer {
	return &Renderer{
		screen:       screen,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Draw renders one complete frame
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.fill(0, 0, w, h, r.defaultStyle)

	if w < constants.MinScreenWidth || h < constants.MinScreenHeight {
		r.drawTooSmall(w, h)
		r.screen.Show()
		return
	}

	l := newLayout(w, h)
	r.drawFrame(l, f.Game.Score)
	r.drawBoard(l, f.Game)
	r.drawStatus(l, f.Game)
	r.drawLegend(l)

	switch f.Game.State {
	case game.StatePaused:
		r.drawPaused(l, f)
	case game.StateWon, game.StateLost:
		r.drawGameOver(l, f)
	}

	r.screen.Show()
}

// layout positions the framed board centered on the screen
type layout struct {
	originX, originY int // Top-left corner of the frame border
}

func newLayout(w, h int) layout {
	return layout{
		originX: (w - constants.FrameWidth) / 2,
		originY: (h - constants.MinScreenHeight) / 2,
	}
}

// cellPos maps a grid cell to its terminal position and half
// Two grid rows share one terminal row; y grows upward so row 0 holds the top of the board
func (l layout) cellPos(c game.Cell) (x, y int, upper bool) {
	flipped := constants.GridHeight - 1 - c.Y
	return l.originX + 1 + c.X, l.originY + 1 + flipped/2, flipped%2 == 0
}

func (l layout) statusY() int {
	return l.originY + constants.FrameHeight
}

func (r *Renderer) drawTooSmall(w, h int) {
	need := fmt.Sprintf("Need %dx%d, have %dx%d", constants.MinScreenWidth, constants.MinScreenHeight, w, h)
	r.drawText(0, 0, constants.TooSmallText, r.defaultStyle.Foreground(RgbBannerLost))
	r.drawText(0, 1, need, r.defaultStyle)
}

// drawText writes s starting at (x, y), one column per rune
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

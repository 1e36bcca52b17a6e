package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// Box drawing runes
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runeUpperHalf   = '▀'
)

// drawBox draws a border with an optional title in the top edge
func (r *Renderer) drawBox(x, y, w, h int, title string, style tcell.Style) {
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		r.screen.SetContent(col, y, runeHorizontal, nil, style)
		r.screen.SetContent(col, bottom, runeHorizontal, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		r.screen.SetContent(x, row, runeVertical, nil, style)
		r.screen.SetContent(right, row, runeVertical, nil, style)
	}
	r.screen.SetContent(x, y, runeTopLeft, nil, style)
	r.screen.SetContent(right, y, runeTopRight, nil, style)
	r.screen.SetContent(x, bottom, runeBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, runeBottomRight, nil, style)

	if title != "" {
		r.drawText(x+2, y, title, style)
	}
}

// drawFrame draws the board border with the title on top and the score below
func (r *Renderer) drawFrame(l layout, score int) {
	style := r.defaultStyle.Foreground(RgbBorder)
	r.drawBox(l.originX, l.originY, constants.FrameWidth, constants.FrameHeight, constants.TitleText, style)

	scoreText := fmt.Sprintf(" Score: %d ", score)
	r.drawText(l.originX+2, l.originY+constants.FrameHeight-1, scoreText, style.Foreground(RgbText))
}

// paint assigns a color to every occupied cell; later writes win
func paint(s game.Snapshot) map[game.Cell]tcell.Color {
	colors := make(map[game.Cell]tcell.Color, len(s.Body)+2)
	colors[s.Dot] = RgbFood
	boosted := s.Boosted()
	for i, c := range s.Body {
		colors[c] = bodyColor(i, boosted)
	}
	colors[s.Head] = RgbHead
	return colors
}

// drawBoard fills the interior with half blocks, upper half from the higher grid row
func (r *Renderer) drawBoard(l layout, s game.Snapshot) {
	colors := paint(s)
	colorAt := func(c game.Cell) tcell.Color {
		if col, ok := colors[c]; ok && c.InBounds() {
			return col
		}
		return RgbBoard
	}

	for x := 0; x < constants.GridWidth; x++ {
		for row := 0; row < constants.BoardRows; row++ {
			upper := game.Cell{X: x, Y: constants.GridHeight - 1 - 2*row}
			lower := game.Cell{X: x, Y: upper.Y - 1}
			style := tcell.StyleDefault.Foreground(colorAt(upper)).Background(colorAt(lower))
			sx, sy, _ := l.cellPos(upper)
			r.screen.SetContent(sx, sy, runeUpperHalf, nil, style)
		}
	}
}

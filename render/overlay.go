package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// drawStatus draws speed and heading, plus the boost counter while boosted
func (r *Renderer) drawStatus(l layout, s game.Snapshot) {
	y := l.statusY()
	text := fmt.Sprintf(" Speed: %3dms  Heading: %-5s", s.Speed, s.Direction)
	r.drawText(l.originX, y, text, r.defaultStyle)

	if s.Boosted() {
		boost := fmt.Sprintf(" BOOST %3d ", s.BoostTurns)
		x := l.originX + constants.FrameWidth - len(boost)
		r.drawText(x, y, boost, r.defaultStyle.Foreground(tcell.ColorBlack).Background(RgbBoostBg))
	}
}

func (r *Renderer) drawLegend(l layout) {
	style := r.defaultStyle.Foreground(RgbTextDim)
	for i, line := range constants.LegendLines {
		r.drawText(l.originX, l.statusY()+1+i, line, style)
	}
}

func (r *Renderer) drawPaused(l layout, f Frame) {
	r.drawBanner(l, constants.PausedTitle, []bannerLine{
		{constants.PausedMessage, RgbBannerInfo},
		{fmt.Sprintf("Current Score: %d", f.Game.Score), RgbText},
	})
}

func (r *Renderer) drawGameOver(l layout, f Frame) {
	headline := bannerLine{constants.LostMessage, RgbBannerLost}
	if f.Game.State == game.StateWon {
		headline = bannerLine{constants.WonMessage, RgbBannerWon}
	}
	r.drawBanner(l, constants.GameOverTitle, []bannerLine{
		headline,
		{fmt.Sprintf("Final Score: %d", f.Game.Score), RgbText},
		{fmt.Sprintf("Session Best: %d", f.Session.Best), RgbText},
		{constants.RestartMessage, RgbBannerInfo},
	})
}

type bannerLine struct {
	text  string
	color tcell.Color
}

// drawBanner draws a bordered box centered on the board with centered lines
func (r *Renderer) drawBanner(l layout, title string, lines []bannerLine) {
	width := len(title) + 4
	for _, line := range lines {
		width = max(width, len(line.text)+4)
	}
	height := len(lines) + 4

	x := l.originX + (constants.FrameWidth-width)/2
	y := l.originY + (constants.FrameHeight-height)/2
	base := r.defaultStyle.Background(RgbBannerBg)

	r.fill(x, y, width, height, base)
	r.drawBox(x, y, width, height, title, base.Foreground(RgbBorder))

	for i, line := range lines {
		lx := x + (width-len(line.text))/2
		r.drawText(lx, y+2+i, line.text, base.Foreground(line.color))
	}
}

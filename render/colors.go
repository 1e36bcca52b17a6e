package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoard      = tcell.NewRGBColor(16, 17, 24)    // Darker board interior
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbTextDim    = tcell.NewRGBColor(140, 140, 150) // Legend gray

	RgbHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbBody = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbFood = tcell.NewRGBColor(255, 255, 255)

	// Boosted body alternates between these
	RgbBoostA  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBoostB  = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbBoostBg = tcell.NewRGBColor(255, 192, 203) // Pink for boost counter

	RgbBannerBg   = tcell.NewRGBColor(40, 40, 60)
	RgbBannerWon  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbBannerLost = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBannerInfo = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// bodyColor returns the color of body segment i (0 = next to the head)
func bodyColor(i int, boosted bool) tcell.Color {
	if !boosted {
		return RgbBody
	}
	if i%2 == 0 {
		return RgbBoostA
	}
	return RgbBoostB
}

package constants

// Board Layout
const (
	// BoardColumns is the terminal width of the board interior (one column per grid x)
	BoardColumns = GridWidth

	// BoardRows is the terminal height of the board interior (two grid rows per terminal row)
	BoardRows = (GridHeight + 1) / 2

	// FrameWidth includes the left and right border
	FrameWidth = BoardColumns + 2

	// FrameHeight includes the top and bottom border
	FrameHeight = BoardRows + 2

	// StatusLines is the number of lines below the frame (status + legend)
	// Must stay at least 1 + len(LegendLines)
	StatusLines = 4

	// MinScreenWidth is the smallest terminal width that fits the board and legend
	MinScreenWidth = FrameWidth

	// MinScreenHeight is the smallest terminal height that fits the board and legend
	MinScreenHeight = FrameHeight + StatusLines
)

// Banner Text
const (
	TitleText      = " Snake "
	PausedTitle    = " Paused "
	GameOverTitle  = " Game Over "
	PausedMessage  = "Game Paused. Press <Space> to unpause."
	WonMessage     = "Congratulations! You won!"
	LostMessage    = "Game Over! Try again!"
	RestartMessage = "Press 'n' to play a new game, or 'q' to quit"
	TooSmallText   = "Terminal too small"
)

// Legend lines shown under the board
var LegendLines = []string{
	"Move: arrows, h/j/k/l  Double: Ctrl+direction",
	"Pause: Space  Boost: b  New: n/Enter  Quit: q",
	"Backspace may arrive as Ctrl+h (double left)",
}

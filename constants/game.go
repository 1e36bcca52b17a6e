package constants

// Board Dimensions
const (
	// GridWidth is the number of columns on the board
	GridWidth = 50

	// GridHeight is the number of rows on the board
	GridHeight = 50

	// GridCells is the total number of cells on the board
	GridCells = GridWidth * GridHeight
)

// Tick Timing (milliseconds)
const (
	// InitialSpeedMs is the tick interval at the start of every game
	InitialSpeedMs = 100

	// EarlySpeedStepMs is subtracted every EarlySpeedScoreStep points up to EarlySpeedScoreLimit
	EarlySpeedStepMs = 4

	// EarlySpeedScoreStep is the score increment that triggers an early speed-up
	EarlySpeedScoreStep = 5

	// EarlySpeedScoreLimit is the last score that uses the early speed schedule
	EarlySpeedScoreLimit = 30

	// LateSpeedStepMs is subtracted every LateSpeedScoreStep points past the early schedule
	LateSpeedStepMs = 1

	// LateSpeedScoreStep is the score increment that triggers a late speed-up
	LateSpeedScoreStep = 100
)

// Boost
const (
	// BoostTurns is the number of ticks a boost lasts
	BoostTurns = 300

	// BoostSpeedMs is removed from the tick interval while boosted
	BoostSpeedMs = 50

	// BoostMinSpeedMs is the interval a boost must stay strictly above to activate
	BoostMinSpeedMs = 50
)

// Scoring
const (
	// WinScore ends the game as won
	WinScore = 2500

	// BodyTrackingScoreLimit is the highest score at which a plain move relocates the body
	BodyTrackingScoreLimit = 50
)

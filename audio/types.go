package audio

import (
	"github.com/pkg/errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundLose                   // Collision
	SoundBoost                  // Boost activated
	SoundWin                    // Win score reached
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"eat", "lose", "boost", "win"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

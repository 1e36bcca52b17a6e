package game

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// Cell is a coordinate on the board, y grows upward
type Cell struct {
	X, Y int
}

// InBounds reports whether the cell lies on the board
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < constants.GridWidth && c.Y >= 0 && c.Y < constants.GridHeight
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is the heading of the snake
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// directionOrder is the draw order for a random initial heading
var directionOrder = [4]Direction{DirLeft, DirUp, DirRight, DirDown}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the unit offset of one step
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// State is the game state machine position
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateWon
	StateLost
)

// Terminal reports whether the game is over
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

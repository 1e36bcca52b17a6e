package game

import (
	"time"

	"github.com/gammazero/deque"
	"github.com/lixenwraith/vi-snake/constants"
)

// Model is the authoritative game state
// Owned by a single loop; every transition runs to completion without suspension
// Head, body, food and free cells partition the board while Playing or Paused;
// after a loss the head sits on the crash cell and its vacated cell is not returned
type Model struct {
	rng Rand

	head Cell
	// body excludes the head, front is the most recently vacated head cell
	body       deque.Deque[Cell]
	dot        Cell
	spaces     *Spaces
	direction  Direction
	state      State
	score      int
	speed      int
	boostTurns int
}

// New creates a model with a randomized head, food and heading
func New(rng Rand) *Model {
	m := &Model{
		rng:    rng,
		spaces: NewSpaces(),
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.dot = m.randomCell()
	m.head = m.randomCell()
	for m.head == m.dot {
		m.head = m.randomCell()
	}
	m.direction = directionOrder[m.rng.Intn(len(directionOrder))]
	m.spaces.Fill(m.head, m.dot)
	m.body.Clear()
	m.score = 0
	m.state = StatePlaying
	m.speed = constants.InitialSpeedMs
	m.boostTurns = 0
}

func (m *Model) randomCell() Cell {
	return Cell{X: m.rng.Intn(constants.GridWidth), Y: m.rng.Intn(constants.GridHeight)}
}

// Apply dispatches one command; timeouts and key moves share the move path
func (m *Model) Apply(cmd Command) Events {
	if dir, double, ok := cmd.Direction(); ok {
		ev := m.Move(dir)
		if double {
			second := m.Move(dir)
			if second.Has(EventMoved) {
				second = second&^EventMoved | EventMovedTwice
			}
			ev |= second
		}
		return ev
	}

	switch cmd {
	case CommandTimeout:
		return m.Continue()
	case CommandTogglePause:
		return m.TogglePause()
	case CommandBoost:
		return m.Boost()
	case CommandNewGame:
		return m.NewGame()
	}
	// Quit belongs to the loop; None only triggers a redraw
	return 0
}

// Move turns to dir and advances one cell
// Ignored outside Playing and when dir reverses the current heading
func (m *Model) Move(dir Direction) Events {
	if m.state != StatePlaying || dir == m.direction.Opposite() {
		return 0
	}
	m.direction = dir
	prev := m.head
	m.head = prev.Step(dir)
	return m.resolve(prev)
}

// Continue advances one cell along the current heading
func (m *Model) Continue() Events {
	return m.Move(m.direction)
}

// resolve settles the board after the head moved away from prev
func (m *Model) resolve(prev Cell) Events {
	ev := EventMoved
	switch {
	case m.collides(m.head):
		m.state = StateLost
		ev |= EventLost
	case m.head == m.dot:
		ev |= m.eat(prev)
	default:
		m.advance(prev)
	}
	return ev | m.countdownBoost()
}

func (m *Model) collides(c Cell) bool {
	if !c.InBounds() {
		return true
	}
	for i := 0; i < m.body.Len(); i++ {
		if m.body.At(i) == c {
			return true
		}
	}
	return false
}

// eat grows the body by the vacated cell and places new food
func (m *Model) eat(prev Cell) Events {
	m.score++
	m.body.PushFront(prev)

	switch {
	case m.score <= constants.EarlySpeedScoreLimit && m.score%constants.EarlySpeedScoreStep == 0:
		m.speed -= constants.EarlySpeedStepMs
	case m.score%constants.LateSpeedScoreStep == 0:
		m.speed -= constants.LateSpeedStepMs
	}

	if m.score == constants.WinScore {
		m.state = StateWon
		return EventAte | EventWon
	}

	// Full board keeps the old dot
	if c, ok := m.spaces.Pick(m.rng); ok {
		m.dot = c
	}
	return EventAte
}

// advance moves the body one cell behind the head at constant length
// Past BodyTrackingScoreLimit the body stays put and only the head's cell changes hands
func (m *Model) advance(prev Cell) {
	m.spaces.Remove(m.head)
	if m.score > constants.BodyTrackingScoreLimit {
		m.spaces.Add(prev)
		return
	}
	m.body.PushFront(prev)
	m.spaces.Add(m.body.PopBack())
}

func (m *Model) countdownBoost() Events {
	switch {
	case m.boostTurns == 1:
		m.boostTurns = 0
		m.speed += constants.BoostSpeedMs
		return EventBoostEnded
	case m.boostTurns >= 2 && m.boostTurns <= constants.BoostTurns:
		m.boostTurns--
	}
	return 0
}

// TogglePause flips between Playing and Paused
func (m *Model) TogglePause() Events {
	switch m.state {
	case StatePlaying:
		m.state = StatePaused
		return EventPaused
	case StatePaused:
		m.state = StatePlaying
		return EventResumed
	}
	return 0
}

// Boost shortens the tick for BoostTurns ticks
// Requires a positive score, no active boost and room above BoostMinSpeedMs
func (m *Model) Boost() Events {
	if m.speed <= constants.BoostMinSpeedMs || m.boostTurns != 0 || m.score <= 0 {
		return 0
	}
	m.boostTurns = constants.BoostTurns
	m.speed -= constants.BoostSpeedMs
	return EventBoostStarted
}

// NewGame reinitializes everything once the current game is not running
func (m *Model) NewGame() Events {
	if m.state == StatePlaying {
		return 0
	}
	m.reset()
	return EventReset
}

func (m *Model) Head() Cell           { return m.head }
func (m *Model) Dot() Cell            { return m.dot }
func (m *Model) Score() int           { return m.score }
func (m *Model) State() State         { return m.state }
func (m *Model) Direction() Direction { return m.direction }
func (m *Model) BoostTurns() int      { return m.boostTurns }

// Speed returns the current tick interval in milliseconds
func (m *Model) Speed() int { return m.speed }

// Interval returns the current tick interval
func (m *Model) Interval() time.Duration {
	return time.Duration(m.speed) * time.Millisecond
}

// Body returns the body cells head-to-tail
func (m *Model) Body() []Cell {
	cells := make([]Cell, m.body.Len())
	for i := range cells {
		cells[i] = m.body.At(i)
	}
	return cells
}

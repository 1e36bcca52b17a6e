package game

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Head       Cell
	Body       []Cell // head-to-tail
	Dot        Cell
	Score      int
	State      State
	Direction  Direction
	BoostTurns int
	Speed      int
}

// Boosted reports whether a boost is running
func (s Snapshot) Boosted() bool {
	return s.BoostTurns > 0
}

// Snapshot copies the current state for rendering between transitions
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Head:       m.head,
		Body:       m.Body(),
		Dot:        m.dot,
		Score:      m.score,
		State:      m.state,
		Direction:  m.direction,
		BoostTurns: m.boostTurns,
		Speed:      m.speed,
	}
}

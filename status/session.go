package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/game"
)

// Counter names
const (
	CounterGames  = "games"
	CounterBest   = "best_score"
	CounterTicks  = "ticks"
	CounterFood   = "food"
	CounterBoosts = "boosts"
	CounterLosses = "losses"
	CounterWins   = "wins"
)

// Session tracks in-memory statistics for one process run
// Nothing is persisted; counters reset when the process exits
type Session struct {
	counters *Counters

	games  *atomic.Int64
	best   *atomic.Int64
	ticks  *atomic.Int64
	food   *atomic.Int64
	boosts *atomic.Int64
	losses *atomic.Int64
	wins   *atomic.Int64
}

// Summary is a point-in-time copy of the session counters
type Summary struct {
	Games  int64
	Best   int64
	Ticks  int64
	Food   int64
	Boosts int64
	Losses int64
	Wins   int64
}

// NewSession creates a session with the first game already counted
func NewSession() *Session {
	c := NewCounters()
	s := &Session{
		counters: c,
		games:    c.Get(CounterGames),
		best:     c.Get(CounterBest),
		ticks:    c.Get(CounterTicks),
		food:     c.Get(CounterFood),
		boosts:   c.Get(CounterBoosts),
		losses:   c.Get(CounterLosses),
		wins:     c.Get(CounterWins),
	}
	s.games.Store(1)
	return s
}

// Observe folds the outcome of one applied command into the counters
// A tick is a cell the head actually advanced, so a double move counts two
func (s *Session) Observe(ev game.Events, score int) {
	if ev.Has(game.EventMoved) {
		s.ticks.Add(1)
	}
	if ev.Has(game.EventMovedTwice) {
		s.ticks.Add(1)
	}
	if ev.Has(game.EventAte) {
		s.food.Add(1)
	}
	if ev.Has(game.EventBoostStarted) {
		s.boosts.Add(1)
	}
	if ev.Has(game.EventLost) {
		s.losses.Add(1)
	}
	if ev.Has(game.EventWon) {
		s.wins.Add(1)
	}
	if ev.Has(game.EventReset) {
		s.games.Add(1)
	}

	for {
		best := s.best.Load()
		if int64(score) <= best || s.best.CompareAndSwap(best, int64(score)) {
			break
		}
	}
}

// Summary returns the current counters
func (s *Session) Summary() Summary {
	return Summary{
		Games:  s.games.Load(),
		Best:   s.best.Load(),
		Ticks:  s.ticks.Load(),
		Food:   s.food.Load(),
		Boosts: s.boosts.Load(),
		Losses: s.losses.Load(),
		Wins:   s.wins.Load(),
	}
}

// String formats every counter as name=value for the debug log
func (s *Session) String() string {
	var b strings.Builder
	s.counters.Range(func(name string, value int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", name, value)
	})
	return b.String()
}

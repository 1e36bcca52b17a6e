package input

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// eventBufferSize bounds terminal events queued between ticks
const eventBufferSize = 256

// EventSource is the blocking event feed of a terminal screen
// PollEvent returns nil once the screen is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Input is the outcome of one wait
type Input struct {
	Command game.Command
	Resized bool // Terminal size changed, redraw from scratch
}

// Poller turns the blocking event feed into a timed wait
type Poller struct {
	events chan tcell.Event
	keys   *KeyTable
}

// NewPoller creates a poller using the given key bindings
func NewPoller(keys *KeyTable) *Poller {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Poller{
		events: make(chan tcell.Event, eventBufferSize),
		keys:   keys,
	}
}

// Run forwards events from src until it is finalized or ctx ends
// Intended to run on its own goroutine; closes the event channel on return
func (p *Poller) Run(ctx context.Context, src EventSource) error {
	defer close(p.events)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case p.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// Wait blocks up to timeout for one event
// Returns CommandTimeout if nothing arrived, CommandQuit once the feed is closed
func (p *Poller) Wait(ctx context.Context, timeout time.Duration) (Input, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Input{}, ctx.Err()
	case <-timer.C:
		return Input{Command: game.CommandTimeout}, nil
	case ev, ok := <-p.events:
		if !ok {
			return Input{Command: game.CommandQuit}, nil
		}
		return p.decode(ev), nil
	}
}

func (p *Poller) decode(ev tcell.Event) Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Input{Command: p.keys.TranslateEvent(ev)}
	case *tcell.EventResize:
		return Input{Command: game.CommandNone, Resized: true}
	}
	return Input{Command: game.CommandNone}
}

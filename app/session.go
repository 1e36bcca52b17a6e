package app

import (
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout cannot host the game
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Screen is the part of tcell.Screen the game loop uses
type Screen interface {
	render.Surface
	input.EventSource
	Sync()
	Fini()
}

// Session owns the terminal for one run and restores it exactly once
type Session struct {
	screen Screen
	once   sync.Once
}

// OpenSession puts the controlling terminal into full-screen mode
func OpenSession() (*Session, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()

	return NewSession(screen), nil
}

// NewSession wraps an initialized screen and registers it for crash recovery
func NewSession(screen Screen) *Session {
	s := &Session{screen: screen}
	core.RegisterTerminal(s)
	return s
}

// Screen returns the wrapped screen
func (s *Session) Screen() Screen {
	return s.screen
}

// Close restores the terminal; safe to call more than once
// Finalizing the screen also unblocks a pending PollEvent
func (s *Session) Close() {
	s.once.Do(func() {
		core.RegisterTerminal(nil)
		s.screen.Fini()
	})
}

// Fini lets the crash handler restore the terminal through the same once
func (s *Session) Fini() {
	s.Close()
}

// Package app runs the game loop: wait for input or a tick, apply it, redraw
package app

import (
	"context"
	"log"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// App ties the model to a terminal session
type App struct {
	model    *game.Model
	session  *Session
	poller   *input.Poller
	renderer *render.Renderer
	stats    *status.Session
	player   audio.Player
}

// New creates an app; a nil player plays nothing
func New(model *game.Model, session *Session, player audio.Player) *App {
	if player == nil {
		player = audio.NopPlayer{}
	}
	return &App{
		model:    model,
		session:  session,
		poller:   input.NewPoller(nil),
		renderer: render.NewRenderer(session.Screen()),
		stats:    status.NewSession(),
		player:   player,
	}
}

// Stats returns the session counters
func (a *App) Stats() *status.Session {
	return a.stats
}

// Run plays until the player quits, the event feed ends or ctx is cancelled
// The session is closed before Run returns
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer core.Recover()
		return a.poller.Run(ctx, a.session.Screen())
	})

	g.Go(func() error {
		defer core.Recover()
		defer a.session.Close()
		defer cancel()
		return a.loop(ctx)
	})

	err := g.Wait()
	log.Printf("session: %s", a.stats)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) loop(ctx context.Context) error {
	a.draw()
	for {
		in, err := a.poller.Wait(ctx, a.model.Interval())
		if err != nil {
			return err
		}
		if in.Resized {
			a.session.Screen().Sync()
		}
		if !a.Step(in.Command) {
			return nil
		}
		a.draw()
	}
}

// Step applies one command and reports whether the loop should keep going
func (a *App) Step(cmd game.Command) bool {
	if cmd == game.CommandQuit {
		log.Printf("quit at score %d", a.model.Score())
		return false
	}

	ev := a.model.Apply(cmd)
	a.stats.Observe(ev, a.model.Score())
	a.player.PlayEvents(ev)

	switch {
	case ev.Has(game.EventWon):
		log.Printf("game won with score %d", a.model.Score())
	case ev.Has(game.EventLost):
		log.Printf("game lost with score %d at %s", a.model.Score(), a.model.Head())
	case ev.Has(game.EventReset):
		log.Printf("new game, direction %s", a.model.Direction())
	}
	return true
}

func (a *App) draw() {
	a.renderer.Draw(render.Frame{
		Game:    a.model.Snapshot(),
		Session: a.stats.Summary(),
	})
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/vi-snake/app"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/pkg/errors"
)

// options holds the command-line flags
type options struct {
	configPath string
	seed       uint64
	mute       bool
	debug      bool
}

// parseFlags returns the options and the names of flags given explicitly
func parseFlags(args []string) (options, map[string]bool, error) {
	var opts options
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed for a reproducible game (0 = clock)")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound effects")
	fs.BoolVar(&opts.debug, "debug", false, "Write a debug log to the log directory")

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// apply lets explicit flags override the file and environment
func (o options) apply(cfg *config.Config, set map[string]bool) {
	if set["seed"] {
		cfg.Seed = o.seed
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.debug {
		cfg.Debug = true
	}
}

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer core.Recover()

	opts, set, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(opts, set); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, set map[string]bool) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg, set)

	logFile, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: seed=%d audio=%v volume=%.2f rate=%d",
		cfg.Seed, cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate)

	player := startAudio(cfg)
	defer player.Close()

	session, err := app.OpenSession()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := game.New(game.NewRand(cfg.Seed))
	return app.New(model, session, player).Run(ctx)
}

// startAudio returns a working player or a silent one; audio failures never stop the game
func startAudio(cfg *config.Config) audio.Player {
	settings := cfg.AudioSettings()
	if !settings.Enabled {
		log.Printf("audio disabled")
		return audio.NopPlayer{}
	}

	sm := audio.NewSoundManager(settings)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio unavailable, running muted: %v", err)
		return audio.NopPlayer{}
	}
	return sm
}

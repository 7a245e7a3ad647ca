package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/appengine-ltd/ranger/internal/config"
	"github.com/appengine-ltd/ranger/internal/console"
	"github.com/appengine-ltd/ranger/internal/game"
	"github.com/appengine-ltd/ranger/internal/spectate"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type session struct {
	cfg config.Config
	sim *game.Simulation
	hub *spectate.Hub
}

// newSession loads config and starts the simulation. The console shows the
// journal itself, so only the window host logs it.
func newSession(configPath, listen string, logJournal bool) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if listen != "" {
		cfg.Host.ListenAddr = listen
	}
	log.SetPrefix(cfg.Host.LogPrefix)

	opts := game.Options{Config: cfg.Simulation}
	if logJournal {
		opts.Logger = log.Default()
	}
	sim, err := game.NewSimulation(opts)
	if err != nil {
		return nil, fmt.Errorf("start simulation: %w", err)
	}
	s := &session{cfg: cfg, sim: sim}
	if cfg.Host.ListenAddr != "" {
		s.hub = spectate.NewHub(log.Default())
	}
	return s, nil
}

// serveSpectators runs the websocket server in the background when enabled.
func (s *session) serveSpectators(ctx context.Context) {
	if s.hub == nil {
		return
	}
	go func() {
		if err := s.hub.ListenAndServe(ctx, s.cfg.Host.ListenAddr); err != nil {
			log.Printf("spectators: %v", err)
		}
	}()
}

func (s *session) runConsole(ctx context.Context) error {
	hostCfg := console.Config{
		In:           os.Stdin,
		Out:          os.Stdout,
		TickInterval: s.cfg.Host.TickInterval,
		Logger:       log.Default(),
	}
	if s.hub != nil {
		hostCfg.Publisher = s.hub
	}
	return console.New(s.sim, hostCfg).Run(ctx)
}

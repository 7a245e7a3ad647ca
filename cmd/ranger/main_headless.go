//go:build !cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var (
		showVersion bool
		useConsole  bool
		configPath  string
		listen      string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&useConsole, "console", true, "play in the terminal (always on without cgo)")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&listen, "listen", "", "serve spectator snapshots on this address, e.g. :8090")
	flag.Parse()

	if showVersion {
		fmt.Printf("Ranger %s (%s) %s\n", version, commit, date)
		return
	}
	if !useConsole {
		fmt.Fprintln(os.Stderr, "The window client needs a cgo build (raylib); running in the terminal.")
	}

	s, err := newSession(configPath, listen, false)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s.serveSpectators(ctx)

	if err := s.runConsole(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//go:build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/ranger/internal/gui"
)

func main() {
	var (
		showVersion bool
		useConsole  bool
		configPath  string
		listen      string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&useConsole, "console", false, "play in the terminal instead of a window")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&listen, "listen", "", "serve spectator snapshots on this address, e.g. :8090")
	flag.Parse()

	if showVersion {
		fmt.Printf("Ranger %s (%s) %s\n", version, commit, date)
		return
	}

	s, err := newSession(configPath, listen, !useConsole)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s.serveSpectators(ctx)

	if useConsole {
		err = s.runConsole(ctx)
	} else {
		appCfg := gui.AppConfig{Version: version, Logger: log.Default()}
		if s.hub != nil {
			appCfg.Publisher = s.hub
		}
		err = gui.NewApp(s.sim, appCfg).Run()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

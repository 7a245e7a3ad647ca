// Package console drives a journey simulation from a line-oriented terminal.
// Commands are typed, parsed with the fuzzy command parser and mapped onto the
// action slots the simulation currently offers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/appengine-ltd/ranger/internal/game"
	"github.com/appengine-ltd/ranger/internal/parser"
)

const defaultTickInterval = 40 * time.Millisecond

// Publisher receives a snapshot after every tick and command.
type Publisher interface {
	Publish(game.Snapshot)
}

type Config struct {
	In           io.Reader
	Out          io.Writer
	TickInterval time.Duration
	Logger       *log.Logger
	// Publisher is optional.
	Publisher Publisher
}

type Host struct {
	sim       *game.Simulation
	parser    *parser.Parser
	in        io.Reader
	out       io.Writer
	interval  time.Duration
	logger    *log.Logger
	publisher Publisher

	lastSeq   int
	lastState game.State
}

func New(sim *game.Simulation, cfg Config) *Host {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &Host{
		sim:       sim,
		parser:    parser.New(),
		in:        cfg.In,
		out:       cfg.Out,
		interval:  interval,
		logger:    logger,
		publisher: cfg.Publisher,
		lastState: sim.State(),
	}
}

// Run owns the simulation until the player quits, input ends or ctx is
// cancelled. Ticks and commands are applied from this goroutine only.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go h.readLines(ctx, lines)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.printf("Ranger is ready. Type help for commands.\n")
	h.flush()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := h.Handle(line); quit {
				return nil
			}
		case now := <-ticker.C:
			if err := h.Step(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}
}

// readLines feeds input lines to Run. A Scan blocked on stdin outlives a
// cancelled ctx; the goroutine ends with the process.
func (h *Host) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)
	if h.in == nil {
		<-ctx.Done()
		return
	}
	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		h.logger.Printf("read input: %v", err)
	}
}

// Step advances the simulation by a real-time delta and reports what changed.
func (h *Host) Step(real time.Duration) error {
	if err := h.sim.Tick(real); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	h.flush()
	return nil
}

// Handle applies one line of player input. It reports whether the player
// asked to quit.
func (h *Host) Handle(line string) bool {
	slots := h.sim.Actions()
	intent := h.parser.Parse(parser.ParseContext{Offered: parser.OfferedVerbs(slots)}, line)
	if intent.Clarify != nil {
		h.printClarify(intent.Clarify)
		return false
	}

	switch intent.Verb {
	case "quit":
		h.printf("Farewell, ranger.\n")
		return true
	case "help":
		h.printHelp()
		return false
	case "status":
		h.printStatus(h.sim.Snapshot())
		return false
	case parser.SlotVerb:
		action := slots[intent.Slot-1]
		if action.Empty() {
			h.printf("Slot %d is empty.\n", intent.Slot)
			return false
		}
		h.perform(action.Kind)
		return false
	}

	kind, ok := parser.ActionForVerb(intent.Verb, slots)
	if !ok {
		h.printf("Nothing to do for %q.\n", intent.Verb)
		return false
	}
	h.perform(kind)
	return false
}

func (h *Host) perform(kind game.ActionKind) {
	err := h.sim.Perform(kind)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNoEligibleDestination):
		h.printf("Nowhere left to explore here. Head home, or try again once the world shifts.\n")
	case errors.Is(err, game.ErrUnknownAction):
		h.printf("You can't %s right now.\n", strings.ReplaceAll(string(kind), "_", " "))
	default:
		h.logger.Printf("perform %s: %v", kind, err)
		h.printf("Something went wrong: %v\n", err)
	}
	h.flush()
}

// flush prints journal entries not yet shown, announces a new encounter and
// hands the latest snapshot to the publisher.
func (h *Host) flush() {
	snap := h.sim.Snapshot()
	for _, entry := range snap.Journal {
		if entry.Seq <= h.lastSeq {
			continue
		}
		h.lastSeq = entry.Seq
		h.printf("  %s\n", entry.Text)
	}
	if snap.State != h.lastState {
		h.lastState = snap.State
		if snap.State == game.StateEventPending {
			h.printEvent(snap)
		}
	}
	if h.publisher != nil {
		h.publisher.Publish(snap)
	}
}

func (h *Host) printStatus(snap game.Snapshot) {
	h.printf("[%s] energy %d  spirit %d  health %d\n", snap.State, snap.Energy, snap.Spirit, snap.Health)
	if snap.DestinationID != "" {
		h.printf("  to %s: %.1f/%.1fm (%.1f%%)\n", snap.DestinationID, snap.Distance, snap.DestinationDistance, snap.ProgressPercent)
	} else if snap.DestinationDistance > 0 {
		h.printf("  to home: %.1f/%.1fm (%.1f%%)\n", snap.Distance, snap.DestinationDistance, snap.ProgressPercent)
	}
	h.printf("  speed %.2fm/s x%g  range %.1fm  best %.0fm  visited %d\n", snap.Speed, snap.TimeMultiplier, snap.Range, snap.BestRange, snap.Visited)
	if snap.NowhereToExplore {
		h.printf("  nowhere left to explore this epoch\n")
	}
	if snap.Event != nil {
		h.printEvent(snap)
		return
	}
	h.printActions(snap.Actions)
}

func (h *Host) printEvent(snap game.Snapshot) {
	if snap.Event == nil {
		return
	}
	switch {
	case snap.Event.Type == game.EventHome:
		h.printf("Home again.\n")
	case snap.Event.Timed:
		h.printf("Encounter: %s! %.1fs to decide.\n", snap.Event.Type, snap.Event.CountdownSeconds)
	default:
		h.printf("Encounter: %s.\n", snap.Event.Type)
	}
	h.printActions(snap.Actions)
}

func (h *Host) printActions(slots game.ActionSlots) {
	var parts []string
	for i, a := range slots {
		if a.Empty() {
			continue
		}
		label := fmt.Sprintf("%d) %s", i+1, a.Label)
		if a.Default {
			label += "*"
		}
		parts = append(parts, label)
	}
	if len(parts) > 0 {
		h.printf("  %s\n", strings.Join(parts, "  "))
	}
}

func (h *Host) printClarify(q *parser.ClarifyQuestion) {
	if len(q.Options) == 0 {
		h.printf("%s\n", q.Prompt)
		return
	}
	verbs := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		verbs = append(verbs, opt.Verb)
	}
	h.printf("%s %s?\n", q.Prompt, strings.Join(verbs, " or "))
}

func (h *Host) printHelp() {
	for _, cmd := range h.parser.Commands() {
		h.printf("  %-9s %s\n", cmd.Canonical, cmd.Help)
	}
	h.printf("  1-4       pick an action slot\n")
}

func (h *Host) printf(format string, args ...any) {
	if h.out == nil {
		return
	}
	fmt.Fprintf(h.out, format, args...)
}

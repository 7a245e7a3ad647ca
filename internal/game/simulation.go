package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"time"
)

type State string

const (
	StateStopped      State = "stopped"
	StateRunning      State = "running"
	StateEventPending State = "event"
)

// Event is a decision waiting on the player. An untimed event never resolves
// by itself.
type Event struct {
	Type              EventType `json:"type"`
	DNA               []float64 `json:"dna,omitempty"`
	DecisionCountdown float64   `json:"decision_countdown_ms"`
	Timed             bool      `json:"timed"`
}

// JournalEntry is one line of the session log. Seq increases by one per entry
// and survives eviction, so readers can tell which entries they have seen.
type JournalEntry struct {
	Seq  int     `json:"seq"`
	AtMs float64 `json:"at_ms"`
	Text string  `json:"text"`
}

type Options struct {
	Config SimConfig
	Clock  Clock
	// Logger receives the journal as it is written. Nil discards it.
	Logger *log.Logger
}

// Simulation advances one ranger's journey. It is driven by a single host
// goroutine and is not safe for concurrent use.
type Simulation struct {
	cfg    SimConfig
	clock  Clock
	logger *log.Logger

	ranger         *Ranger
	world          World
	nearby         []Location
	orbs           []JourneyOrb
	event          *Event
	running        bool
	timeMultiplier float64
	nowhere        bool
	elapsedMs      float64
	journal        []JournalEntry
	journalSeq     int
}

// NewSimulation creates a stopped session with its first destination drawn.
func NewSimulation(opts Options) (*Simulation, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Simulation{
		cfg:            opts.Config,
		clock:          clock,
		logger:         logger,
		ranger:         NewRanger(opts.Config),
		timeMultiplier: opts.Config.BaseTimeMultiplier,
	}
	x, y := s.ranger.Position()
	if err := s.setNextDestination(x, y); err != nil && !errors.Is(err, ErrNoEligibleDestination) {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) State() State {
	switch {
	case s.event != nil:
		return StateEventPending
	case s.running:
		return StateRunning
	default:
		return StateStopped
	}
}

func (s *Simulation) Actions() ActionSlots {
	return actionsFor(s.State(), s.event)
}

func (s *Simulation) TimeMultiplier() float64 { return s.timeMultiplier }

// NowhereToExplore reports that the last destination search found nothing.
func (s *Simulation) NowhereToExplore() bool { return s.nowhere }

func (s *Simulation) World() World { return s.world }

func (s *Simulation) Nearby() []Location {
	return slices.Clone(s.nearby)
}

func (s *Simulation) Journal() []JournalEntry {
	return slices.Clone(s.journal)
}

// Tick advances by a real-time delta scaled by the current time multiplier.
func (s *Simulation) Tick(real time.Duration) error {
	if real < 0 {
		return fmt.Errorf("tick by %s: %w", real, ErrInvalidTimeDelta)
	}
	return s.Advance(float64(real) / float64(time.Millisecond) * s.timeMultiplier)
}

// Advance moves the simulation forward by elapsedMs of simulated time.
func (s *Simulation) Advance(elapsedMs float64) error {
	if !validDelta(elapsedMs) {
		return fmt.Errorf("advance by %vms: %w", elapsedMs, ErrInvalidTimeDelta)
	}
	s.elapsedMs += elapsedMs
	// Time spent reaching a destination does not count against its decision.
	waiting := s.event != nil
	if s.running {
		if _, err := s.ranger.AdvanceDistance(elapsedMs); err != nil {
			return err
		}
		s.triggerOrbs()
		s.ranger.trackBestRange()
		if s.ranger.AtDestination() {
			s.arrive()
		}
	}
	if waiting && s.event != nil && s.event.Timed {
		s.event.DecisionCountdown = max(0, s.event.DecisionCountdown-elapsedMs)
		if s.event.DecisionCountdown == 0 {
			action, _ := s.Actions().DefaultAction()
			kind := action.Kind
			if action.Empty() {
				kind = ActionContinue
			}
			s.record("no decision made: %s", kind)
			if err := s.perform(kind); err != nil && !errors.Is(err, ErrNoEligibleDestination) {
				return err
			}
		}
	}
	return nil
}

func (s *Simulation) triggerOrbs() {
	dist := s.ranger.Distance()
	for i := range s.orbs {
		orb := &s.orbs[i]
		if orb.Triggered || orb.Distance >= dist {
			continue
		}
		orb.Triggered = true
		s.ranger.ChangeStat(orb.Effect)
		s.record("orb at %.1fm: %s", orb.Distance, orb.Effect)
	}
}

func (s *Simulation) arrive() {
	dest, _ := s.ranger.Destination()
	s.running = false
	s.timeMultiplier = 1
	s.orbs = nil
	s.ranger.TrackVisited(dest.ID)
	s.setupEvent(dest.Event)
	if dest.ID != "" {
		s.record("arrived at %s", dest.ID)
	} else {
		s.record("arrived home")
	}
}

func (s *Simulation) setupEvent(payload LocationEvent) {
	if payload.Type == "" {
		s.event = nil
		return
	}
	ev := &Event{Type: payload.Type}
	if len(payload.DNA) > 0 {
		ev.DNA = slices.Clone(payload.DNA)
		ev.DecisionCountdown = payload.DNA[0] * s.cfg.DecisionMaxSeconds * 1000
		ev.Timed = true
	}
	s.event = ev
}

func (s *Simulation) setNextDestination(centerX, centerY float64) error {
	s.world = NewWorld(s.clock.Now())
	s.nearby = s.world.GenerateLocations(centerX, centerY)
	next, ok := s.ranger.FindNextLocation(s.nearby)
	if !ok {
		s.nowhere = true
		s.record("nowhere to explore around (%.1f, %.1f)", centerX, centerY)
		return fmt.Errorf("explore around (%.1f, %.1f): %w", centerX, centerY, ErrNoEligibleDestination)
	}
	s.nowhere = false
	x, y := s.ranger.Position()
	s.ranger.SetNewDestination(next)
	s.orbs = GenerateJourneyOrbs(x, y, next)
	s.record("heading to %s, %.1fm away", next.ID, s.ranger.DestinationDistance())
	return nil
}

// ContinueJourney resumes travel, drawing a new destination when the current
// one has been reached. With no eligible destination the ranger stays stopped
// until a later call finds one, typically after the epoch rotates.
func (s *Simulation) ContinueJourney() error {
	s.event = nil
	s.timeMultiplier = s.cfg.BaseTimeMultiplier
	if !s.ranger.HasDestination() || s.ranger.AtDestination() {
		x, y := s.ranger.Position()
		if err := s.setNextDestination(x, y); err != nil {
			s.running = false
			s.timeMultiplier = 1
			return err
		}
	}
	s.running = true
	return nil
}

func (s *Simulation) ReturnHome() {
	s.event = nil
	s.nowhere = false
	s.ranger.SetHomeDestination()
	s.orbs = nil
	s.timeMultiplier = s.cfg.HomeTimeMultiplier
	s.running = true
	s.record("returning home, %.1fm away", s.ranger.DestinationDistance())
}

func (s *Simulation) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.record("stopped at %.1fm", s.ranger.Distance())
}

// ResolveEvent answers the pending event with one of the actions it offers.
func (s *Simulation) ResolveEvent(kind ActionKind) error {
	if s.event == nil {
		return fmt.Errorf("resolve %s: %w", kind, ErrNoActiveEvent)
	}
	return s.Perform(kind)
}

// Perform runs any action currently offered in the action slots.
func (s *Simulation) Perform(kind ActionKind) error {
	if _, ok := s.Actions().Find(kind); !ok {
		return fmt.Errorf("%s while %s: %w", kind, s.State(), ErrUnknownAction)
	}
	return s.perform(kind)
}

func (s *Simulation) perform(kind ActionKind) error {
	if s.event != nil {
		s.record("%s event: %s", s.event.Type, kind)
	}
	switch kind {
	case ActionFlee, ActionReturnHome:
		s.ReturnHome()
		return nil
	case ActionApproachPeacefully, ActionFight, ActionContinue:
		return s.ContinueJourney()
	case ActionStop:
		s.Stop()
		return nil
	default:
		return fmt.Errorf("perform %q: %w", kind, ErrUnknownAction)
	}
}

func (s *Simulation) record(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	s.logger.Print(text)
	if s.cfg.JournalSize == 0 {
		return
	}
	s.journalSeq++
	s.journal = append(s.journal, JournalEntry{Seq: s.journalSeq, AtMs: s.elapsedMs, Text: text})
	if over := len(s.journal) - s.cfg.JournalSize; over > 0 {
		s.journal = slices.Delete(s.journal, 0, over)
	}
}

package game

import "math"

type OrbView struct {
	Percent   float64 `json:"percent"`
	Triggered bool    `json:"triggered"`
	Effect    string  `json:"effect"`
}

type EventView struct {
	Type EventType `json:"type"`
	// CountdownSeconds is rounded to 0.1s and meaningless when Timed is false.
	CountdownSeconds float64 `json:"countdown_seconds"`
	Timed            bool    `json:"timed"`
}

// Snapshot is the display projection of a simulation. It shares no memory with
// the simulation and may be handed to other goroutines.
type Snapshot struct {
	State               State          `json:"state"`
	X                   float64        `json:"x"`
	Y                   float64        `json:"y"`
	Speed               float64        `json:"speed"`
	TimeMultiplier      float64        `json:"time_multiplier"`
	Energy              int            `json:"energy"`
	Spirit              int            `json:"spirit"`
	Health              int            `json:"health"`
	Distance            float64        `json:"distance"`
	DestinationDistance float64        `json:"destination_distance"`
	ProgressPercent     float64        `json:"progress_percent"`
	Range               float64        `json:"range"`
	BestRange           float64        `json:"best_range"`
	DestinationID       string         `json:"destination_id,omitempty"`
	Event               *EventView     `json:"event,omitempty"`
	Orbs                []OrbView      `json:"orbs,omitempty"`
	Actions             ActionSlots    `json:"actions"`
	Visited             int            `json:"visited"`
	NowhereToExplore    bool           `json:"nowhere_to_explore,omitempty"`
	EpochSeed           int            `json:"epoch_seed"`
	ElapsedMs           float64        `json:"elapsed_ms"`
	Journal             []JournalEntry `json:"journal,omitempty"`
}

func (s *Simulation) Snapshot() Snapshot {
	r := s.ranger
	x, y := r.Position()
	snap := Snapshot{
		State:               s.State(),
		X:                   x,
		Y:                   y,
		Speed:               roundTo(r.Speed(), 2),
		TimeMultiplier:      s.timeMultiplier,
		Energy:              int(math.Ceil(r.Energy)),
		Spirit:              int(math.Ceil(r.Spirit)),
		Health:              int(math.Ceil(r.Health)),
		Distance:            roundTo(r.Distance(), 1),
		DestinationDistance: roundTo(r.DestinationDistance(), 1),
		ProgressPercent:     floorTo(r.DistancePercent()*100, 3),
		Range:               roundTo(r.RangeFromHome(), 1),
		BestRange:           r.BestRange,
		Actions:             s.Actions(),
		Visited:             len(r.visited),
		NowhereToExplore:    s.nowhere,
		EpochSeed:           s.world.EpochSeed,
		ElapsedMs:           s.elapsedMs,
		Journal:             s.Journal(),
	}
	if dest, ok := r.Destination(); ok {
		snap.DestinationID = dest.ID
	}
	if s.event != nil {
		view := &EventView{Type: s.event.Type, Timed: s.event.Timed}
		if s.event.Timed {
			view.CountdownSeconds = roundTo(s.event.DecisionCountdown/1000, 1)
		}
		snap.Event = view
	}
	if len(s.orbs) > 0 {
		snap.Orbs = make([]OrbView, 0, len(s.orbs))
		for _, orb := range s.orbs {
			snap.Orbs = append(snap.Orbs, OrbView{
				Percent:   roundTo(orb.DistancePercent*100, 3),
				Triggered: orb.Triggered,
				Effect:    orb.Effect.String(),
			})
		}
	}
	return snap
}

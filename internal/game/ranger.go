package game

import (
	"fmt"
	"math"
	"slices"
)

const minSpeed = 0.01

type Destination struct {
	ID    string        `json:"id,omitempty"`
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	Event LocationEvent `json:"event"`
}

// Ranger is the traveler. Home is the base of operations; start is where the
// current journey began.
type Ranger struct {
	HomeX     float64
	HomeY     float64
	BaseSpeed float64
	Spirit    float64
	Energy    float64
	Health    float64
	// Effort is carried for hosts; journeys do not change it.
	Effort    float64
	BestRange float64

	startX         float64
	startY         float64
	destination    Destination
	hasDestination bool
	distance       float64
	// destinationDistance is only written by SetNewDestination.
	destinationDistance float64
	visited             []string
	maxVisited          int
}

func NewRanger(cfg SimConfig) *Ranger {
	return &Ranger{
		HomeX:      cfg.HomeX,
		HomeY:      cfg.HomeY,
		BaseSpeed:  cfg.BaseSpeed,
		Spirit:     cfg.InitialStat,
		Energy:     cfg.InitialStat,
		Health:     cfg.InitialStat,
		startX:     cfg.HomeX,
		startY:     cfg.HomeY,
		maxVisited: max(1, cfg.MaxVisited),
	}
}

// DistancePercent is the traveled fraction of the current journey, 0 when the
// journey has no length.
func (r *Ranger) DistancePercent() float64 {
	if r.destinationDistance == 0 {
		return 0
	}
	return r.distance / r.destinationDistance
}

func (r *Ranger) Position() (float64, float64) {
	p := r.DistancePercent()
	left := 1 - p
	x := left*r.startX + p*r.destination.X
	y := left*r.startY + p*r.destination.Y
	return x, y
}

func (r *Ranger) RangeFromHome() float64 {
	x, y := r.Position()
	return distanceBetween(x, y, r.HomeX, r.HomeY)
}

// Speed scales base speed by the share of stats still above zero.
func (r *Ranger) Speed() float64 {
	healthy := 0
	for _, stat := range []float64{r.Spirit, r.Energy, r.Health} {
		if stat > 0 {
			healthy++
		}
	}
	return max(r.BaseSpeed*float64(healthy)/3, minSpeed)
}

func (r *Ranger) Distance() float64            { return r.distance }
func (r *Ranger) DestinationDistance() float64 { return r.destinationDistance }
func (r *Ranger) HasDestination() bool         { return r.hasDestination }

func (r *Ranger) Destination() (Destination, bool) {
	if !r.hasDestination {
		return Destination{}, false
	}
	d := r.destination
	d.Event = d.Event.clone()
	return d, true
}

func (r *Ranger) AtDestination() bool {
	return r.hasDestination && r.distance == r.destinationDistance
}

func (r *Ranger) Visited() []string {
	return slices.Clone(r.visited)
}

func (r *Ranger) HasVisited(id string) bool {
	return slices.Contains(r.visited, id)
}

// SetNewDestination starts a journey from the current position.
func (r *Ranger) SetNewDestination(loc Location) {
	r.setDestination(Destination{
		ID:    loc.ID,
		X:     loc.X,
		Y:     loc.Y,
		Event: loc.Event.clone(),
	})
}

func (r *Ranger) SetHomeDestination() {
	r.setDestination(Destination{
		X:     r.HomeX,
		Y:     r.HomeY,
		Event: LocationEvent{Type: EventHome},
	})
}

func (r *Ranger) setDestination(d Destination) {
	x, y := r.Position()
	r.startX = x
	r.startY = y
	r.destination = d
	r.hasDestination = true
	r.distance = 0
	r.destinationDistance = distanceBetween(r.startX, r.startY, d.X, d.Y)
}

// validDelta accepts finite, non-negative elapsed times. NaN fails both checks.
func validDelta(elapsedMs float64) bool {
	return elapsedMs >= 0 && !math.IsInf(elapsedMs, 1)
}

// AdvanceDistance moves the ranger for elapsedMs of simulated time and
// returns the distance traveled on the current journey.
func (r *Ranger) AdvanceDistance(elapsedMs float64) (float64, error) {
	if !validDelta(elapsedMs) {
		return r.distance, fmt.Errorf("advance distance by %vms: %w", elapsedMs, ErrInvalidTimeDelta)
	}
	r.distance += r.Speed() / 1000 * elapsedMs
	if r.distance > r.destinationDistance {
		r.distance = r.destinationDistance
	}
	return r.distance, nil
}

// ChangeStat applies deltas in the order energy, spirit, health. A negative
// energy balance is drawn from spirit, a negative spirit balance from health,
// and health stops at zero.
func (r *Ranger) ChangeStat(effect StatEffect) {
	r.Energy += effect.Energy
	if r.Energy < 0 {
		r.Spirit += r.Energy
		r.Energy = 0
	}
	r.Spirit += effect.Spirit
	if r.Spirit < 0 {
		r.Health += r.Spirit
		r.Spirit = 0
	}
	r.Health += effect.Health
	if r.Health < 0 {
		r.Health = 0
	}
}

func (r *Ranger) TrackVisited(id string) {
	if id == "" {
		return
	}
	r.visited = append(r.visited, id)
	if over := len(r.visited) - r.maxVisited; over > 0 {
		r.visited = slices.Delete(r.visited, 0, over)
	}
}

func (r *Ranger) trackBestRange() {
	r.BestRange = math.Floor(max(r.BestRange, roundTo(r.RangeFromHome(), 1)))
}

// FindNextLocation picks the nearest unvisited candidate that is at least as
// far from home as the ranger is now. ok is false when none qualifies.
func (r *Ranger) FindNextLocation(candidates []Location) (Location, bool) {
	rangerRange := r.RangeFromHome()
	x, y := r.Position()
	var (
		best     Location
		bestDist float64
		found    bool
	)
	for _, loc := range candidates {
		if distanceBetween(loc.X, loc.Y, r.HomeX, r.HomeY) < rangerRange {
			continue
		}
		if r.HasVisited(loc.ID) {
			continue
		}
		dist := distanceBetween(loc.X, loc.Y, x, y)
		if !found || dist < bestDist {
			best = loc
			bestDist = dist
			found = true
		}
	}
	return best, found
}

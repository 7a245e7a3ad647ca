package game

import (
	"fmt"
	"time"
)

const (
	worldSquareSize = 500.0
	// A new epoch seed every 12 hours; see EpochSeed for the bucket edges.
	seedRotationHours = 12
	locationsPerQuery = 10
	locationDNALength = 20
	epochSeedRange    = 1000000
)

type EventType string

const (
	EventHostile EventType = "hostile"
	EventHome    EventType = "home"
)

type LocationEvent struct {
	Type EventType `json:"type"`
	DNA  []float64 `json:"dna,omitempty"`
}

func (e LocationEvent) clone() LocationEvent {
	out := LocationEvent{Type: e.Type}
	if e.DNA != nil {
		out.DNA = append([]float64(nil), e.DNA...)
	}
	return out
}

type Location struct {
	ID        string        `json:"id"`
	SeedStart int           `json:"seed_start"`
	SeedEnd   int           `json:"seed_end"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Event     LocationEvent `json:"event"`
}

func (l Location) DistanceFrom(x, y float64) float64 {
	return distanceBetween(x, y, l.X, l.Y)
}

// World is one epoch of procedurally generated content.
type World struct {
	Date      time.Time
	EpochSeed int
}

func NewWorld(date time.Time) World {
	return World{Date: date, EpochSeed: EpochSeed(date)}
}

// dateNumber concatenates year, zero-based month, day and hour index as
// decimal digits (YYYYMMDDHH) and adds one. Components come from the
// location carried by date, not UTC.
func dateNumber(date time.Time) int {
	hourIndex := int(roundTo(float64(date.Hour())/seedRotationHours, 0))
	month := int(date.Month()) - 1
	return date.Year()*1000000 + month*10000 + date.Day()*100 + hourIndex + 1
}

// EpochSeed buckets date into a 12 hour window and maps it to [0, 1000000).
// Hours 0-5 share index 0, 6-17 index 1 and 18-23 index 2.
func EpochSeed(date time.Time) int {
	seed := int(roundTo(PseudoRandom(dateNumber(date))*epochSeedRange, 0))
	return seed % epochSeedRange
}

func (w World) makeLocation(seedStart int, x1, y1 float64) Location {
	seed := seedStart
	seed++
	x := roundTo(x1+PseudoRandom(seed)*worldSquareSize, 3)
	seed++
	y := roundTo(y1+PseudoRandom(seed)*worldSquareSize, 3)
	dna := make([]float64, 0, locationDNALength)
	for i := 0; i < locationDNALength; i++ {
		seed++
		dna = append(dna, roundTo(PseudoRandom(seed), 3))
	}
	return Location{
		ID:        fmt.Sprintf("%d-%d", w.EpochSeed, seedStart),
		SeedStart: seedStart,
		SeedEnd:   seed,
		X:         x,
		Y:         y,
		Event: LocationEvent{
			Type: EventHostile,
			DNA:  dna,
		},
	}
}

// GenerateLocations returns the epoch's locations in the square centred on
// (centerX, centerY). Seed blocks are contiguous and never overlap.
func (w World) GenerateLocations(centerX, centerY float64) []Location {
	x1 := centerX - worldSquareSize/2
	y1 := centerY - worldSquareSize/2
	locations := make([]Location, 0, locationsPerQuery)
	seed := w.EpochSeed
	for i := 0; i < locationsPerQuery; i++ {
		loc := w.makeLocation(seed, x1, y1)
		locations = append(locations, loc)
		seed = loc.SeedEnd + 1
	}
	return locations
}

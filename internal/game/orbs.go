package game

import (
	"math"
	"slices"
)

const journeyOrbsPerMeter = 0.06

// StatEffect is a set of stat deltas. Mystery and Card carry no stat change.
type StatEffect struct {
	Energy  float64 `json:"energy,omitempty"`
	Spirit  float64 `json:"spirit,omitempty"`
	Health  float64 `json:"health,omitempty"`
	Mystery bool    `json:"mystery,omitempty"`
	Card    bool    `json:"card,omitempty"`
}

func (e StatEffect) String() string {
	switch {
	case e.Mystery:
		return "mystery"
	case e.Card:
		return "card"
	case e.Energy < 0:
		return "energy drain"
	case e.Spirit < 0:
		return "spirit drain"
	case e.Health < 0:
		return "wound"
	case e.Spirit > 0:
		return "spirit boost"
	case e.Health > 0:
		return "healing"
	default:
		return "nothing"
	}
}

type JourneyOrb struct {
	Effect          StatEffect `json:"effect"`
	DistancePercent float64    `json:"distance_percent"`
	Distance        float64    `json:"distance"`
	Triggered       bool       `json:"triggered"`
}

// OrbOdds is one row of the cumulative orb table: rolls below Below (and at or
// above the previous row) produce Effect.
type OrbOdds struct {
	Below  float64
	Effect StatEffect
}

var journeyOrbTable = []OrbOdds{
	{Below: 0.40, Effect: StatEffect{Energy: -1}},
	{Below: 0.50, Effect: StatEffect{Spirit: -1}},
	{Below: 0.60, Effect: StatEffect{Health: -1}},
	{Below: 0.65, Effect: StatEffect{Spirit: 1}},
	{Below: 0.70, Effect: StatEffect{Health: 1}},
	{Below: 0.90, Effect: StatEffect{Mystery: true}},
	{Below: 1, Effect: StatEffect{Card: true}},
}

func JourneyOrbTable() []OrbOdds {
	return slices.Clone(journeyOrbTable)
}

// pickJourneyOrbEffect resolves a roll against the cumulative table.
func pickJourneyOrbEffect(roll float64) StatEffect {
	for _, row := range journeyOrbTable {
		if roll < row.Below {
			return row.Effect
		}
	}
	return journeyOrbTable[len(journeyOrbTable)-1].Effect
}

// GenerateJourneyOrbs lays out the orbs on the path from (fromX, fromY) to loc.
// The result is in generation order, not sorted by distance.
func GenerateJourneyOrbs(fromX, fromY float64, loc Location) []JourneyOrb {
	dist := distanceBetween(fromX, fromY, loc.X, loc.Y)
	count := int(math.Ceil(dist * journeyOrbsPerMeter))
	orbs := make([]JourneyOrb, 0, count)
	seed := loc.SeedEnd
	for i := 0; i < count; i++ {
		seed++
		percent := PseudoRandom(seed)
		seed++
		orbs = append(orbs, JourneyOrb{
			Effect:          pickJourneyOrbEffect(PseudoRandom(seed)),
			DistancePercent: percent,
			Distance:        dist * percent,
		})
	}
	return orbs
}

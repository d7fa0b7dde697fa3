package pet

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"petplay/internal/config"
	"petplay/internal/species"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

const (
	MaxStat = 100.0
	MinStat = 0.0

	MaxStage = 3
)

// Stats are the four care meters, each clamped to [0,100].
type Stats struct {
	Hunger      float64 `json:"hunger"`
	Happiness   float64 `json:"happiness"`
	Energy      float64 `json:"energy"`
	Cleanliness float64 `json:"cleanliness"`
}

// AllAbove reports whether every stat exceeds the threshold.
func (s Stats) AllAbove(threshold float64) bool {
	return s.Hunger > threshold && s.Happiness > threshold &&
		s.Energy > threshold && s.Cleanliness > threshold
}

// Average returns the mean of the four stats.
func (s Stats) Average() float64 {
	return (s.Hunger + s.Happiness + s.Energy + s.Cleanliness) / 4
}

// Pet is a single owned pet.
type Pet struct {
	ID        string `json:"id"`
	SpeciesID string `json:"speciesId"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`
	// Stage is the evolution stage, 1-3.
	Stage       int       `json:"evolutionStage"`
	Stats       Stats     `json:"stats"`
	LastUpdated time.Time `json:"lastUpdated"`
	// TotalCareReceived never decreases; it gates evolution independently
	// of level.
	TotalCareReceived int `json:"totalCareReceived"`
}

// New creates a stage-1, level-1 pet of the given species.
func New(sp species.Species, start config.Starting) Pet {
	return Pet{
		ID:        uuid.NewString(),
		SpeciesID: sp.ID,
		Name:      sp.Name,
		Level:     1,
		XP:        0,
		Stage:     1,
		Stats: Stats{
			Hunger:      start.Stats,
			Happiness:   start.Stats,
			Energy:      start.Stats,
			Cleanliness: start.Stats,
		},
		LastUpdated:       TimeNow(),
		TotalCareReceived: 0,
	}
}

func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// AdjustStat applies a delta to a single stat value and clamps it.
func AdjustStat(v, delta float64) float64 {
	return clamp(v + delta)
}

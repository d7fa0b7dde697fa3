package game

import (
	"time"

	"petplay/internal/pet"
)

// StorageKey is the persisted document name for the game aggregate.
const StorageKey = "petplay-storage"

// EvolutionRecord is an append-only log entry for a stage transition.
type EvolutionRecord struct {
	PetID     string    `json:"petId"`
	FromStage int       `json:"fromStage"`
	ToStage   int       `json:"toStage"`
	Timestamp time.Time `json:"timestamp"`
}

// MiniGameScore tracks per-game statistics. HighScore is a running max; the
// other counters only grow.
type MiniGameScore struct {
	HighScore        int        `json:"highScore"`
	TotalPlays       int        `json:"totalPlays"`
	TotalCoinsEarned int        `json:"totalCoinsEarned"`
	LastPlayed       *time.Time `json:"lastPlayed"`
}

// State is the whole persisted game: coins, pets, streak, logs, mini-game
// stats. Pets keep acquisition order.
type State struct {
	Coins            int                      `json:"coins"`
	Pets             []pet.Pet                `json:"pets"`
	ActivePetID      string                   `json:"activePetId,omitempty"`
	UnlockedSpecies  []string                 `json:"unlockedSpecies"`
	TotalCareActions int                      `json:"totalCareActions"`
	LastDailyBonus   *time.Time               `json:"lastDailyBonus"`
	LoginStreak      int                      `json:"loginStreak"`
	LastStreakClaim  *time.Time               `json:"lastStreakClaim"`
	EvolutionHistory []EvolutionRecord        `json:"evolutionHistory"`
	MiniGameWins     int                      `json:"miniGameWins"`
	MiniGameScores   map[string]MiniGameScore `json:"miniGameScores"`
}

// HasUnlockedSpecies reports whether the species id was ever obtained.
func (s *State) HasUnlockedSpecies(id string) bool {
	for _, u := range s.UnlockedSpecies {
		if u == id {
			return true
		}
	}
	return false
}

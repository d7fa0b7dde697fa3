package game

import (
	"encoding/json"
	"log"
	"time"

	"petplay/internal/achievement"
	"petplay/internal/config"
	"petplay/internal/pet"
	"petplay/internal/species"
	"petplay/internal/storage"
)

// Store is the single owner of game state. Every mutation goes through one
// of its operations; each committed mutation is persisted and then reported
// to the achievement tracker.
type Store struct {
	state   State
	bal     config.Balance
	blobs   storage.Store
	tracker *achievement.Tracker

	warnedWrite bool
}

// NewStore loads the saved game from the blob store, or starts a fresh one.
// A corrupted document starts fresh rather than crashing.
func NewStore(blobs storage.Store, bal config.Balance, tracker *achievement.Tracker) *Store {
	s := &Store{bal: bal, blobs: blobs, tracker: tracker}

	loaded := false
	if raw, ok := blobs.Get(StorageKey); ok {
		var st State
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			log.Printf("Error loading saved game: %v. Starting fresh.", err)
		} else {
			s.state = st
			loaded = true
		}
	}
	if !loaded {
		s.state = State{Coins: bal.Starting.Coins}
	}
	if s.state.MiniGameScores == nil {
		s.state.MiniGameScores = make(map[string]MiniGameScore)
	}

	// Settle decay accrued while the game was closed. Without this, a care
	// action before the first timer tick would reset LastUpdated and forgive
	// the whole absence.
	s.TickDecay()
	return s
}

// Balance exposes the active balance values to the presentation layer.
func (s *Store) Balance() config.Balance { return s.bal }

// Snapshot returns a copy of the current state for rendering. The copy
// shares nothing with live state, timestamps included.
func (s *Store) Snapshot() State {
	st := s.state
	st.Pets = append([]pet.Pet(nil), s.state.Pets...)
	st.UnlockedSpecies = append([]string(nil), s.state.UnlockedSpecies...)
	st.EvolutionHistory = append([]EvolutionRecord(nil), s.state.EvolutionHistory...)
	st.LastDailyBonus = copyTime(s.state.LastDailyBonus)
	st.LastStreakClaim = copyTime(s.state.LastStreakClaim)
	scores := make(map[string]MiniGameScore, len(s.state.MiniGameScores))
	for k, v := range s.state.MiniGameScores {
		v.LastPlayed = copyTime(v.LastPlayed)
		scores[k] = v
	}
	st.MiniGameScores = scores
	return st
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// commit persists the state and drives the achievement hook. A failed write
// is logged once and gameplay continues from memory.
func (s *Store) commit() {
	data, err := json.Marshal(&s.state)
	if err != nil {
		log.Printf("Error saving game: %v", err)
	} else if err := s.blobs.Set(StorageKey, string(data)); err != nil {
		if !s.warnedWrite {
			s.warnedWrite = true
			log.Printf("Progress may not be saved: %v", err)
		}
	}

	if s.tracker != nil {
		s.tracker.Observe(s.metrics())
	}
}

func (s *Store) metrics() achievement.Metrics {
	m := achievement.Metrics{
		PetCount:     len(s.state.Pets),
		CareActions:  s.state.TotalCareActions,
		Coins:        s.state.Coins,
		Evolutions:   len(s.state.EvolutionHistory),
		MiniGameWins: s.state.MiniGameWins,
		LoginStreak:  s.state.LoginStreak,
	}
	for _, p := range s.state.Pets {
		if sp, ok := species.ByID(p.SpeciesID); ok {
			if sp.Rarity >= species.Rare {
				m.HasRare = true
			}
			if sp.Rarity == species.Legendary {
				m.HasLegendary = true
			}
		}
		if p.Level >= s.bal.Progression.MaxLevel {
			m.HasMaxLevel = true
		}
	}
	return m
}

func (s *Store) findPet(id string) *pet.Pet {
	for i := range s.state.Pets {
		if s.state.Pets[i].ID == id {
			return &s.state.Pets[i]
		}
	}
	return nil
}

// Coins returns the current balance.
func (s *Store) Coins() int { return s.state.Coins }

// AddCoins credits the balance. Non-positive amounts are ignored.
func (s *Store) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	s.state.Coins += amount
	s.commit()
}

// SpendCoins debits the balance, refusing overdrafts.
func (s *Store) SpendCoins(amount int) bool {
	if amount < 0 || s.state.Coins < amount {
		return false
	}
	s.state.Coins -= amount
	s.commit()
	return true
}

// AddPet creates a pet of the given species and appends it to the
// collection. The first pet becomes the active one; the species is marked
// unlocked. Returns false for an unknown species id.
func (s *Store) AddPet(speciesID string) (pet.Pet, bool) {
	sp, ok := species.ByID(speciesID)
	if !ok {
		return pet.Pet{}, false
	}
	p := s.addPetLocked(sp)
	s.commit()
	return p, true
}

// addPetLocked appends a pet without committing, for operations that commit
// once at the end.
func (s *Store) addPetLocked(sp species.Species) pet.Pet {
	p := pet.New(sp, s.bal.Starting)
	s.state.Pets = append(s.state.Pets, p)
	if s.state.ActivePetID == "" {
		s.state.ActivePetID = p.ID
	}
	if !s.state.HasUnlockedSpecies(sp.ID) {
		s.state.UnlockedSpecies = append(s.state.UnlockedSpecies, sp.ID)
	}
	return p
}

// SetActivePet selects which pet the UI displays and care actions target.
func (s *Store) SetActivePet(petID string) bool {
	if s.findPet(petID) == nil {
		return false
	}
	s.state.ActivePetID = petID
	s.commit()
	return true
}

// ActivePet returns a copy of the currently selected pet.
func (s *Store) ActivePet() (pet.Pet, bool) {
	p := s.findPet(s.state.ActivePetID)
	if p == nil {
		return pet.Pet{}, false
	}
	return *p, true
}

// TickDecay applies time-based stat decay to every pet. Pets updated too
// recently are skipped; the state is only committed when something changed.
func (s *Store) TickDecay() bool {
	now := pet.TimeNow()
	changed := false
	for i := range s.state.Pets {
		if pet.ApplyDecay(&s.state.Pets[i], now, s.bal.Decay) {
			changed = true
		}
	}
	if changed {
		s.commit()
	}
	return changed
}

package game

import (
	"petplay/internal/pet"
	"petplay/internal/species"
)

// StreakReward is what a successful daily claim granted.
type StreakReward struct {
	Coins     int
	StreakDay int
	GotEgg    bool
	// NewSpeciesID is set when the day-7 egg hatched a pet.
	NewSpeciesID string
}

// careAction runs the shared care-reward flow: the thriving check happens
// before the stat delta, the pet earns XP and the player earns coins, and
// the care counters advance. Fails with no state change when no pet is
// selected.
func (s *Store) careAction(apply func(*pet.Pet)) (*pet.LevelUpResult, bool) {
	p := s.findPet(s.state.ActivePetID)
	if p == nil {
		return nil, false
	}

	care := s.bal.Care
	thriving := p.Stats.AllAbove(care.ThrivingThreshold)
	coins := care.CoinReward
	xp := care.XPReward
	if thriving {
		coins += care.ThrivingCoinBonus
		xp = care.ThrivingXPReward
	}

	apply(p)
	p.LastUpdated = pet.TimeNow()
	p.TotalCareReceived++

	result := pet.AddXP(p, xp, s.bal.Progression)

	s.state.Coins += coins
	s.state.TotalCareActions++
	s.commit()
	return result, true
}

// Feed restores hunger.
func (s *Store) Feed() (*pet.LevelUpResult, bool) {
	return s.careAction(func(p *pet.Pet) {
		p.Stats.Hunger = pet.AdjustStat(p.Stats.Hunger, s.bal.Care.FeedHunger)
	})
}

// Play raises happiness at the cost of some energy.
func (s *Store) Play() (*pet.LevelUpResult, bool) {
	return s.careAction(func(p *pet.Pet) {
		p.Stats.Happiness = pet.AdjustStat(p.Stats.Happiness, s.bal.Care.PlayHappiness)
		p.Stats.Energy = pet.AdjustStat(p.Stats.Energy, -s.bal.Care.PlayEnergyCost)
	})
}

// Clean restores cleanliness.
func (s *Store) Clean() (*pet.LevelUpResult, bool) {
	return s.careAction(func(p *pet.Pet) {
		p.Stats.Cleanliness = pet.AdjustStat(p.Stats.Cleanliness, s.bal.Care.CleanCleanliness)
	})
}

// Sleep restores energy.
func (s *Store) Sleep() (*pet.LevelUpResult, bool) {
	return s.careAction(func(p *pet.Pet) {
		p.Stats.Energy = pet.AdjustStat(p.Stats.Energy, s.bal.Care.SleepEnergy)
	})
}

// Pat is the cosmetic tap on the pet: a small happiness nudge with no coins,
// XP or care credit.
func (s *Store) Pat() bool {
	p := s.findPet(s.state.ActivePetID)
	if p == nil {
		return false
	}
	p.Stats.Happiness = pet.AdjustStat(p.Stats.Happiness, s.bal.Care.PatHappiness)
	p.LastUpdated = pet.TimeNow()
	s.commit()
	return true
}

// rollRarity maps a uniform roll in [0,100) to a rarity tier using the
// cumulative boundaries from the balance table.
func (s *Store) rollRarity(roll float64) int {
	g := s.bal.Gacha
	switch {
	case roll < g.CommonBound:
		return species.Common
	case roll < g.UncommonBound:
		return species.Uncommon
	case roll < g.RareBound:
		return species.Rare
	case roll < g.EpicBound:
		return species.Epic
	default:
		return species.Legendary
	}
}

func pickSpecies(pool []species.Species) species.Species {
	idx := int(pet.RandFloat64() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}

// GachaPull spends the draw cost and hatches a random species, weighted by
// rarity tier. An empty tier falls back to Common; if Common is empty too
// the cost is refunded and the pull fails. Insufficient funds fail with no
// state change.
func (s *Store) GachaPull() (species.Species, bool) {
	cost := s.bal.Gacha.Cost
	if s.state.Coins < cost {
		return species.Species{}, false
	}
	s.state.Coins -= cost

	rarity := s.rollRarity(pet.RandFloat64() * 100)
	pool := species.ByRarity(rarity)
	if len(pool) == 0 {
		pool = species.ByRarity(species.Common)
		if len(pool) == 0 {
			s.state.Coins += cost
			return species.Species{}, false
		}
	}

	sp := pickSpecies(pool)
	s.addPetLocked(sp)
	s.commit()
	return sp, true
}

// StreakClaimable reports whether the daily reward can be claimed now.
func (s *Store) StreakClaimable() bool {
	last := s.state.LastStreakClaim
	return last == nil || pet.TimeNow().Sub(*last) >= s.bal.Streak.ClaimWindow
}

// ClaimDailyStreak grants the reward for the next streak day. Claims within
// 24 hours of the last are rejected; a gap past 48 hours resets the streak
// to day 1; otherwise the day cycles 1-7. Day 7 also hatches a random
// rare-tier pet.
func (s *Store) ClaimDailyStreak() *StreakReward {
	now := pet.TimeNow()
	st := s.bal.Streak
	last := s.state.LastStreakClaim

	if last != nil && now.Sub(*last) < st.ClaimWindow {
		return nil
	}

	day := 1
	if last != nil && now.Sub(*last) < st.BreakWindow {
		day = (s.state.LoginStreak % 7) + 1
	}

	reward := &StreakReward{
		Coins:     st.Coins[day-1],
		StreakDay: day,
		GotEgg:    day == st.EggDay,
	}

	s.state.Coins += reward.Coins
	s.state.LoginStreak = day
	s.state.LastStreakClaim = &now
	s.state.LastDailyBonus = &now

	if reward.GotEgg {
		pool := species.ByRarity(st.EggRarity)
		if len(pool) > 0 {
			sp := pickSpecies(pool)
			s.addPetLocked(sp)
			reward.NewSpeciesID = sp.ID
		}
	}

	s.commit()
	return reward
}

// CanEvolve reports whether the pet meets its next-stage gates.
func (s *Store) CanEvolve(petID string) bool {
	p := s.findPet(petID)
	if p == nil {
		return false
	}
	return pet.CanEvolve(p, s.bal.Evolution)
}

// EvolutionProgress returns the level/care readiness toward the next stage.
func (s *Store) EvolutionProgress(petID string) pet.EvolutionProgress {
	p := s.findPet(petID)
	if p == nil {
		return pet.EvolutionProgress{}
	}
	return pet.Progress(p, s.bal.Evolution)
}

// EvolvePet advances an eligible pet one stage, renames it from the
// catalog's evolution names and appends a history record. Eligibility is
// re-validated here regardless of what the UI already checked.
func (s *Store) EvolvePet(petID string) bool {
	p := s.findPet(petID)
	if p == nil || !pet.CanEvolve(p, s.bal.Evolution) {
		return false
	}

	from := p.Stage
	p.Stage++
	if sp, ok := species.ByID(p.SpeciesID); ok {
		p.Name = sp.EvolutionName(p.Stage)
	}

	s.state.EvolutionHistory = append(s.state.EvolutionHistory, EvolutionRecord{
		PetID:     p.ID,
		FromStage: from,
		ToStage:   p.Stage,
		Timestamp: pet.TimeNow(),
	})
	s.commit()
	return true
}

// RecordMiniGame folds a finished mini-game into the per-game statistics.
// Any play that earned coins counts as a win, matching the original game's
// bookkeeping.
func (s *Store) RecordMiniGame(gameID string, score, coinsEarned int) {
	now := pet.TimeNow()
	sc := s.state.MiniGameScores[gameID]
	if score > sc.HighScore {
		sc.HighScore = score
	}
	sc.TotalPlays++
	sc.TotalCoinsEarned += coinsEarned
	sc.LastPlayed = &now
	s.state.MiniGameScores[gameID] = sc

	if coinsEarned > 0 {
		s.state.MiniGameWins++
	}
	s.commit()
}

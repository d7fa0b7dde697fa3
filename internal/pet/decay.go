package pet

import (
	"time"

	"petplay/internal/config"
)

// ApplyDecay depletes the pet's stats linearly for the time elapsed since
// LastUpdated, flooring each stat at 0. Elapsed time below the configured
// threshold is skipped entirely so frequent re-renders never churn state;
// LastUpdated only advances when decay is actually applied. Returns whether
// the pet changed.
func ApplyDecay(p *Pet, now time.Time, d config.Decay) bool {
	elapsed := now.Sub(p.LastUpdated)
	if elapsed < d.MinElapsed {
		return false
	}

	hours := elapsed.Hours()
	p.Stats.Hunger = clamp(p.Stats.Hunger - d.HungerPerHour*hours)
	p.Stats.Happiness = clamp(p.Stats.Happiness - d.HappinessPerHour*hours)
	p.Stats.Energy = clamp(p.Stats.Energy - d.EnergyPerHour*hours)
	p.Stats.Cleanliness = clamp(p.Stats.Cleanliness - d.CleanlinessPerHour*hours)
	p.LastUpdated = now
	return true
}

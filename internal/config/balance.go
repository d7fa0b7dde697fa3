package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance holds every gameplay tunable. Defaults match the shipped game; a
// YAML file can override any subset.
type Balance struct {
	Decay       Decay       `yaml:"decay"`
	Care        Care        `yaml:"care"`
	Progression Progression `yaml:"progression"`
	Evolution   Evolution   `yaml:"evolution"`
	Gacha       Gacha       `yaml:"gacha"`
	Streak      Streak      `yaml:"streak"`
	Starting    Starting    `yaml:"starting"`
}

// Decay is the per-hour stat depletion table.
type Decay struct {
	HungerPerHour      float64 `yaml:"hunger_per_hour"`
	HappinessPerHour   float64 `yaml:"happiness_per_hour"`
	EnergyPerHour      float64 `yaml:"energy_per_hour"`
	CleanlinessPerHour float64 `yaml:"cleanliness_per_hour"`
	// MinElapsed guards against stat churn from frequent re-renders.
	MinElapsed time.Duration `yaml:"min_elapsed"`
}

type Care struct {
	FeedHunger       float64 `yaml:"feed_hunger"`
	PlayHappiness    float64 `yaml:"play_happiness"`
	PlayEnergyCost   float64 `yaml:"play_energy_cost"`
	CleanCleanliness float64 `yaml:"clean_cleanliness"`
	SleepEnergy      float64 `yaml:"sleep_energy"`
	PatHappiness     float64 `yaml:"pat_happiness"`

	CoinReward        int     `yaml:"coin_reward"`
	ThrivingCoinBonus int     `yaml:"thriving_coin_bonus"`
	XPReward          int     `yaml:"xp_reward"`
	ThrivingXPReward  int     `yaml:"thriving_xp_reward"`
	ThrivingThreshold float64 `yaml:"thriving_threshold"`
}

type Progression struct {
	BaseXP         int     `yaml:"base_xp"`
	GrowthRate     float64 `yaml:"growth_rate"`
	MaxLevel       int     `yaml:"max_level"`
	MilestoneEvery int     `yaml:"milestone_every"`
}

type Evolution struct {
	Stage2Level int `yaml:"stage2_level"`
	Stage3Level int `yaml:"stage3_level"`
	Stage2Care  int `yaml:"stage2_care"`
	Stage3Care  int `yaml:"stage3_care"`
}

// Gacha holds the draw cost and the cumulative tier boundaries over a
// [0,100) roll: Common [0,C1), Uncommon [C1,C2), Rare [C2,C3), Epic [C3,C4),
// Legendary [C4,100).
type Gacha struct {
	Cost          int     `yaml:"cost"`
	CommonBound   float64 `yaml:"common_bound"`
	UncommonBound float64 `yaml:"uncommon_bound"`
	RareBound     float64 `yaml:"rare_bound"`
	EpicBound     float64 `yaml:"epic_bound"`
}

type Streak struct {
	// Coins indexed by streak day 1-7.
	Coins       [7]int        `yaml:"coins"`
	ClaimWindow time.Duration `yaml:"claim_window"`
	BreakWindow time.Duration `yaml:"break_window"`
	EggDay      int           `yaml:"egg_day"`
	EggRarity   int           `yaml:"egg_rarity"`
}

type Starting struct {
	Stats float64 `yaml:"stats"`
	Coins int     `yaml:"coins"`
}

// Default returns the built-in balance values.
func Default() Balance {
	return Balance{
		Decay: Decay{
			HungerPerHour:      5,
			HappinessPerHour:   3,
			EnergyPerHour:      4,
			CleanlinessPerHour: 2,
			MinElapsed:         36 * time.Second,
		},
		Care: Care{
			FeedHunger:        30,
			PlayHappiness:     25,
			PlayEnergyCost:    10,
			CleanCleanliness:  35,
			SleepEnergy:       40,
			PatHappiness:      2,
			CoinReward:        5,
			ThrivingCoinBonus: 10,
			XPReward:          15,
			ThrivingXPReward:  25,
			ThrivingThreshold: 80,
		},
		Progression: Progression{
			BaseXP:         50,
			GrowthRate:     1.15,
			MaxLevel:       50,
			MilestoneEvery: 5,
		},
		Evolution: Evolution{
			Stage2Level: 10,
			Stage3Level: 25,
			Stage2Care:  50,
			Stage3Care:  150,
		},
		Gacha: Gacha{
			Cost:          100,
			CommonBound:   60,
			UncommonBound: 85,
			RareBound:     95,
			EpicBound:     99,
		},
		Streak: Streak{
			Coins:       [7]int{50, 75, 100, 125, 150, 175, 300},
			ClaimWindow: 24 * time.Hour,
			BreakWindow: 48 * time.Hour,
			EggDay:      7,
			EggRarity:   3,
		},
		Starting: Starting{
			Stats: 80,
			Coins: 200,
		},
	}
}

// Load reads a YAML balance file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Balance, error) {
	bal := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bal, nil
		}
		return bal, err
	}
	if err := yaml.Unmarshal(data, &bal); err != nil {
		return Default(), err
	}
	return bal, nil
}

package pet

import (
	"math"

	"petplay/internal/config"
)

// LevelUpResult reports a level-up to the caller. Milestone marks levels the
// UI celebrates harder.
type LevelUpResult struct {
	NewLevel  int
	Milestone bool
}

// XPRequiredForLevel returns the XP needed to clear the given level. The
// curve is exponential: floor(baseXP * growthRate^(level-1)).
func XPRequiredForLevel(level int, prog config.Progression) int {
	return int(math.Floor(float64(prog.BaseXP) * math.Pow(prog.GrowthRate, float64(level-1))))
}

// AddXP grants XP to the pet, carrying overflow across level-ups until the
// remaining XP no longer clears the current level. At max level XP gain is a
// no-op. Returns nil when no level-up occurred.
func AddXP(p *Pet, amount int, prog config.Progression) *LevelUpResult {
	if p.Level >= prog.MaxLevel {
		return nil
	}

	xp := p.XP + amount
	level := p.Level
	leveled := false

	for level < prog.MaxLevel && xp >= XPRequiredForLevel(level, prog) {
		xp -= XPRequiredForLevel(level, prog)
		level++
		leveled = true
	}

	p.XP = xp
	p.Level = level

	if !leveled {
		return nil
	}
	return &LevelUpResult{
		NewLevel:  level,
		Milestone: level%prog.MilestoneEvery == 0,
	}
}

// EvolutionProgress describes how close a pet is to its next stage.
// TargetStage is 0 when the pet is already at the final stage.
type EvolutionProgress struct {
	LevelReady  bool
	CareReady   bool
	TargetStage int
}

// Progress evaluates the next-stage requirements for the pet.
func Progress(p *Pet, ev config.Evolution) EvolutionProgress {
	if p.Stage >= MaxStage {
		return EvolutionProgress{}
	}

	target := p.Stage + 1
	requiredLevel := ev.Stage2Level
	requiredCare := ev.Stage2Care
	if target == 3 {
		requiredLevel = ev.Stage3Level
		requiredCare = ev.Stage3Care
	}

	return EvolutionProgress{
		LevelReady:  p.Level >= requiredLevel,
		CareReady:   p.TotalCareReceived >= requiredCare,
		TargetStage: target,
	}
}

// CanEvolve reports whether the pet meets both the level and care gates for
// its next stage.
func CanEvolve(p *Pet, ev config.Evolution) bool {
	if p.Stage >= MaxStage {
		return false
	}
	prog := Progress(p, ev)
	return prog.LevelReady && prog.CareReady
}

package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petplay/internal/config"
)

func TestXPCurveStrictlyIncreasing(t *testing.T) {
	prog := config.Default().Progression

	assert.Equal(t, 50, XPRequiredForLevel(1, prog))
	prev := 0
	for level := 1; level < prog.MaxLevel; level++ {
		req := XPRequiredForLevel(level, prog)
		assert.Greater(t, req, prev, "level %d", level)
		prev = req
	}
}

func TestAddXPSingleLevelUp(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	prog := config.Default().Progression

	res := AddXP(&p, 50, prog)

	require.NotNil(t, res)
	assert.Equal(t, 2, res.NewLevel)
	assert.False(t, res.Milestone)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.XP)
}

func TestAddXPNoLevelUp(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	prog := config.Default().Progression

	res := AddXP(&p, 49, prog)

	assert.Nil(t, res)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 49, p.XP)
}

func TestAddXPMultiLevelCarryover(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	prog := config.Default().Progression

	// 50 for level 1 plus 57 for level 2 plus 5 left over.
	res := AddXP(&p, 112, prog)

	require.NotNil(t, res)
	assert.Equal(t, 3, res.NewLevel)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.XP)
}

func TestAddXPMilestoneEveryFive(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	prog := config.Default().Progression

	p.Level = 4
	p.XP = XPRequiredForLevel(4, prog) - 1

	res := AddXP(&p, 1, prog)

	require.NotNil(t, res)
	assert.Equal(t, 5, res.NewLevel)
	assert.True(t, res.Milestone)
}

func TestAddXPCappedAtMaxLevel(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	prog := config.Default().Progression

	p.Level = prog.MaxLevel
	p.XP = 0

	res := AddXP(&p, 10000, prog)

	assert.Nil(t, res)
	assert.Equal(t, prog.MaxLevel, p.Level)
	assert.Equal(t, 0, p.XP)
}

func TestEvolutionProgressGates(t *testing.T) {
	start := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPet(t, start)
	ev := config.Default().Evolution

	prog := Progress(&p, ev)
	assert.Equal(t, 2, prog.TargetStage)
	assert.False(t, prog.LevelReady)
	assert.False(t, prog.CareReady)
	assert.False(t, CanEvolve(&p, ev))

	p.Level = 10
	p.TotalCareReceived = 50
	prog = Progress(&p, ev)
	assert.True(t, prog.LevelReady)
	assert.True(t, prog.CareReady)
	assert.True(t, CanEvolve(&p, ev))

	// Stage 2 needs the higher thresholds.
	p.Stage = 2
	assert.False(t, CanEvolve(&p, ev))
	p.Level = 25
	p.TotalCareReceived = 150
	assert.True(t, CanEvolve(&p, ev))

	// Final stage has nowhere to go.
	p.Stage = MaxStage
	prog = Progress(&p, ev)
	assert.Equal(t, 0, prog.TargetStage)
	assert.False(t, CanEvolve(&p, ev))
}

func TestStatsHelpers(t *testing.T) {
	s := Stats{Hunger: 90, Happiness: 85, Energy: 81, Cleanliness: 100}
	assert.True(t, s.AllAbove(80))
	s.Energy = 80
	assert.False(t, s.AllAbove(80))
	assert.InDelta(t, 88.75, s.Average(), 0.001)
}

func TestAdjustStatClamps(t *testing.T) {
	assert.Equal(t, 100.0, AdjustStat(90, 30))
	assert.Equal(t, 0.0, AdjustStat(5, -30))
	assert.Equal(t, 55.0, AdjustStat(30, 25))
}

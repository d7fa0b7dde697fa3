package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petplay/internal/species"
)

func TestGachaRevealRunsToCompletion(t *testing.T) {
	sp, ok := species.ByID("dragon")
	require.True(t, ok)

	anim, cmd := StartGachaReveal(sp)
	require.NotNil(t, cmd)
	assert.Equal(t, AnimGachaReveal, anim.Type)

	steps := 0
	for anim.Type != AnimNone {
		anim, _ = anim.Advance()
		steps++
		require.Less(t, steps, 10, "animation never ended")
	}
	assert.Equal(t, len(gachaFrames), steps)
}

func TestGachaRevealFinalFrameNamesThePet(t *testing.T) {
	sp, _ := species.ByID("dragon")
	anim, _ := StartGachaReveal(sp)

	for anim.Frame < len(gachaFrames)-1 {
		next, _ := anim.Advance()
		anim = next
	}

	out := anim.Render()
	assert.Contains(t, out, "Drake Jr")
	assert.Contains(t, out, "Rare")
}

func TestEvolutionAnimation(t *testing.T) {
	anim, cmd := StartEvolution("Wyrm")
	require.NotNil(t, cmd)

	for anim.Frame < len(evolutionFrames)-1 {
		anim, _ = anim.Advance()
	}
	assert.Contains(t, anim.Render(), "Evolved into Wyrm")

	anim, cmd = anim.Advance()
	assert.Equal(t, AnimNone, anim.Type)
	assert.Nil(t, cmd)
}

func TestNoneAnimationRendersNothing(t *testing.T) {
	assert.Equal(t, "", Animation{}.Render())
}

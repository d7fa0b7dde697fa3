package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petplay/internal/species"
)

// AnimationType represents the type of reveal animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimGachaReveal
	AnimEvolution
)

// Animation holds the current reveal state. The underlying state mutation
// already happened; this layer only sequences frames.
type Animation struct {
	Type  AnimationType
	Frame int
	// Species drawn by the gacha, for the final reveal frame.
	Species species.Species
	// EvolvedName is the new name shown at the end of an evolution.
	EvolvedName string
}

type animTickMsg struct{}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 450 * time.Millisecond

var gachaFrames = []string{
	`
     🥚
  *wobble*
`,
	`
     🥚
  *wobble wobble*
`,
	`
     🐣
  *crack!*
`,
	`
     ✨✨✨
`,
}

var evolutionFrames = []string{
	`
     ✨
     😶
`,
	`
    ✨✨
    🌟
`,
	`
   ✨✨✨
    💫
`,
}

func animTick() tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

// StartGachaReveal begins the egg-hatch sequence for a drawn species.
func StartGachaReveal(sp species.Species) (Animation, tea.Cmd) {
	return Animation{Type: AnimGachaReveal, Species: sp}, animTick()
}

// StartEvolution begins the evolution flash for a freshly evolved pet.
func StartEvolution(name string) (Animation, tea.Cmd) {
	return Animation{Type: AnimEvolution, EvolvedName: name}, animTick()
}

func (a Animation) frames() []string {
	switch a.Type {
	case AnimGachaReveal:
		return gachaFrames
	case AnimEvolution:
		return evolutionFrames
	default:
		return nil
	}
}

// Advance moves to the next frame, ending the animation after the last one.
func (a Animation) Advance() (Animation, tea.Cmd) {
	a.Frame++
	if a.Frame >= len(a.frames()) {
		return Animation{}, nil
	}
	return a, animTick()
}

// Render returns the current frame plus the reveal line on the final frame.
func (a Animation) Render() string {
	frames := a.frames()
	if len(frames) == 0 {
		return ""
	}
	frame := frames[a.Frame]

	if a.Frame == len(frames)-1 {
		switch a.Type {
		case AnimGachaReveal:
			return frame + fmt.Sprintf("\n %s You got %s! (%s)\n",
				a.Species.Emoji, a.Species.Name, species.RarityName(a.Species.Rarity))
		case AnimEvolution:
			return frame + fmt.Sprintf("\n 🎊 Evolved into %s! 🎊\n", a.EvolvedName)
		}
	}
	return frame
}

package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petplay/internal/achievement"
	"petplay/internal/catchgame"
	"petplay/internal/game"
	"petplay/internal/memorygame"
	"petplay/internal/pet"
	"petplay/internal/species"
)

const messageDuration = 4 * time.Second

// screen is which view the player is on.
type screen int

const (
	screenStarter screen = iota
	screenMain
	screenCollection
	screenAchievements
	screenGamesMenu
	screenCatch
	screenMemory
)

// Model is the top-level Bubble Tea model. All game mutation goes through
// the store; the model only holds presentation state.
type Model struct {
	Store   *game.Store
	Tracker *achievement.Tracker

	Screen   screen
	Choice   int
	Quitting bool

	Message        string
	MessageExpires time.Time

	// Starter picking
	StarterChoice int

	// Collection browsing
	CollectionChoice int

	// Achievement browsing
	AchievementChoice int

	// Mini-games
	GameChoice int
	Catch      catchgame.Model
	Memory     memorygame.Model
	// gameRecorded guards the one-shot result recording per round.
	gameRecorded bool

	Animation Animation
}

type tickMsg time.Time

// NewModel builds the UI over a loaded store.
func NewModel(store *game.Store, tracker *achievement.Tracker) Model {
	m := Model{Store: store, Tracker: tracker, Screen: screenMain}
	if len(store.Snapshot().Pets) == 0 {
		m.Screen = screenStarter
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(messageDuration)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Periodic decay across all pets; the store skips pets updated
		// too recently.
		m.Store.TickDecay()
		return m, tick()

	case animTickMsg:
		prev := m.Animation
		var cmd tea.Cmd
		m.Animation, cmd = m.Animation.Advance()
		if m.Animation.Type == AnimNone {
			switch prev.Type {
			case AnimGachaReveal:
				m.setMessage(fmt.Sprintf("%s You got %s! (%s)", prev.Species.Emoji,
					prev.Species.Name, species.RarityName(prev.Species.Rarity)))
			case AnimEvolution:
				m.setMessage("🎊 Evolved into " + prev.EvolvedName + "!")
			}
		}
		return m, cmd

	case catchgame.FrameMsg:
		return m.updateCatch(msg)

	case memorygame.TickMsg, memorygame.HideMsg:
		return m.updateMemory(msg)

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		if nm, ok := next.(Model); ok {
			nm.toastUnlocks()
			return nm, cmd
		}
		return next, cmd
	}

	return m, nil
}

// toastUnlocks appends a banner for achievements unlocked by the last action.
func (m *Model) toastUnlocks() {
	for _, id := range m.Tracker.DrainNewUnlocks() {
		def, ok := achievement.DefinitionByID(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("🏆 Achievement unlocked: %s!", def.Name)
		if m.Message != "" {
			line = m.Message + "  " + line
		}
		m.setMessage(line)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// While a reveal animation plays, only quit keys register.
	if m.Animation.Type != AnimNone {
		if msg.String() == "q" {
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.Screen {
	case screenStarter:
		return m.handleStarterKey(msg)
	case screenCollection:
		return m.handleCollectionKey(msg)
	case screenAchievements:
		return m.handleAchievementsKey(msg)
	case screenGamesMenu:
		return m.handleGamesMenuKey(msg)
	case screenCatch:
		return m.updateCatch(msg)
	case screenMemory:
		return m.updateMemory(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m Model) handleStarterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.StarterChoice > 0 {
			m.StarterChoice--
		}
	case "down", "j":
		if m.StarterChoice < len(species.StarterIDs)-1 {
			m.StarterChoice++
		}
	case "enter", " ":
		id := species.StarterIDs[m.StarterChoice]
		if p, ok := m.Store.AddPet(id); ok {
			m.Screen = screenMain
			m.setMessage(fmt.Sprintf("🎉 Welcome home, %s!", p.Name))
		}
	}
	return m, nil
}

var mainMenu = []string{"Feed", "Play", "Clean", "Sleep", "Gacha Pull (100🪙)", "Daily Reward", "Mini-Games", "Collection", "Achievements", "Quit"}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(mainMenu)-1 {
			m.Choice++
		}
	case "p":
		// Cosmetic pat: tiny happiness nudge, no rewards.
		if m.Store.Pat() {
			m.setMessage("💕 " + m.activeName() + " loves that!")
		}
	case "e":
		return m.tryEvolve()
	case "tab":
		m.cycleActivePet()
	case "enter", " ":
		return m.selectMainMenu()
	}
	return m, nil
}

func (m Model) selectMainMenu() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case 0:
		res, ok := m.Store.Feed()
		m.careResult(res, ok, "🍖 Yum!")
	case 1:
		res, ok := m.Store.Play()
		m.careResult(res, ok, "🎾 Wheee!")
	case 2:
		res, ok := m.Store.Clean()
		m.careResult(res, ok, "🧼 Squeaky clean!")
	case 3:
		res, ok := m.Store.Sleep()
		m.careResult(res, ok, "😴 Zzz... refreshed!")
	case 4:
		return m.doGacha()
	case 5:
		m.claimDaily()
	case 6:
		m.Screen = screenGamesMenu
		m.GameChoice = 0
	case 7:
		m.Screen = screenCollection
		m.CollectionChoice = 0
	case 8:
		m.Screen = screenAchievements
		m.AchievementChoice = 0
	case 9:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) careResult(result *pet.LevelUpResult, ok bool, happy string) {
	switch {
	case !ok:
		m.setMessage("No pet selected! Hatch one first.")
	case result == nil:
		m.setMessage(happy)
	case result.Milestone:
		m.setMessage(fmt.Sprintf("🌟 MILESTONE! %s reached level %d!", m.activeName(), result.NewLevel))
	default:
		m.setMessage(fmt.Sprintf("⬆️ %s leveled up to %d!", m.activeName(), result.NewLevel))
	}
}

func (m Model) doGacha() (tea.Model, tea.Cmd) {
	sp, ok := m.Store.GachaPull()
	if !ok {
		m.setMessage(fmt.Sprintf("Not enough coins! Gacha costs %d 🪙", m.Store.Balance().Gacha.Cost))
		return m, nil
	}
	// Mutation is done; the reveal is purely cosmetic.
	var cmd tea.Cmd
	m.Animation, cmd = StartGachaReveal(sp)
	return m, cmd
}

func (m *Model) claimDaily() {
	reward := m.Store.ClaimDailyStreak()
	if reward == nil {
		m.setMessage("📅 Already claimed today, come back tomorrow!")
		return
	}
	msg := fmt.Sprintf("📅 Day %d streak! +%d 🪙", reward.StreakDay, reward.Coins)
	if reward.GotEgg && reward.NewSpeciesID != "" {
		if sp, ok := species.ByID(reward.NewSpeciesID); ok {
			msg += fmt.Sprintf("  🥚 A rare %s hatched!", sp.Name)
		}
	}
	m.setMessage(msg)
}

func (m Model) tryEvolve() (tea.Model, tea.Cmd) {
	p, ok := m.Store.ActivePet()
	if !ok {
		return m, nil
	}
	if !m.Store.CanEvolve(p.ID) {
		prog := m.Store.EvolutionProgress(p.ID)
		if prog.TargetStage == 0 {
			m.setMessage(p.Name + " is fully evolved!")
		} else {
			m.setMessage("Not ready to evolve yet.")
		}
		return m, nil
	}
	if !m.Store.EvolvePet(p.ID) {
		return m, nil
	}
	evolved, _ := m.Store.ActivePet()
	var cmd tea.Cmd
	m.Animation, cmd = StartEvolution(evolved.Name)
	return m, cmd
}

func (m *Model) cycleActivePet() {
	snap := m.Store.Snapshot()
	if len(snap.Pets) < 2 {
		return
	}
	for i, p := range snap.Pets {
		if p.ID == snap.ActivePetID {
			next := snap.Pets[(i+1)%len(snap.Pets)]
			m.Store.SetActivePet(next.ID)
			m.setMessage("Now playing with " + next.Name)
			return
		}
	}
}

func (m Model) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.Screen = screenMain
	case "up", "k":
		if m.CollectionChoice > 0 {
			m.CollectionChoice--
		}
	case "down", "j":
		if m.CollectionChoice < len(m.Store.Snapshot().Pets)-1 {
			m.CollectionChoice++
		}
	case "enter", " ":
		pets := m.Store.Snapshot().Pets
		if m.CollectionChoice < len(pets) {
			m.Store.SetActivePet(pets[m.CollectionChoice].ID)
			m.Screen = screenMain
			m.setMessage("Now playing with " + pets[m.CollectionChoice].Name)
		}
	}
	return m, nil
}

func (m Model) handleAchievementsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.Screen = screenMain
	case "up", "k":
		if m.AchievementChoice > 0 {
			m.AchievementChoice--
		}
	case "down", "j":
		if m.AchievementChoice < len(achievement.Definitions)-1 {
			m.AchievementChoice++
		}
	case "enter", " ":
		def := achievement.Definitions[m.AchievementChoice]
		if reward := m.Tracker.ClaimReward(def.ID); reward > 0 {
			m.Store.AddCoins(reward)
			m.setMessage(fmt.Sprintf("🏆 %s claimed! +%d 🪙", def.Name, reward))
		}
	}
	return m, nil
}

var gamesMenu = []string{"Treat Catcher", "Memory Match", "Back"}

func (m Model) handleGamesMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.Screen = screenMain
	case "up", "k":
		if m.GameChoice > 0 {
			m.GameChoice--
		}
	case "down", "j":
		if m.GameChoice < len(gamesMenu)-1 {
			m.GameChoice++
		}
	case "enter", " ":
		switch m.GameChoice {
		case 0:
			m.Screen = screenCatch
			m.Catch = catchgame.New()
			m.gameRecorded = false
			return m, catchgame.Tick()
		case 1:
			m.Screen = screenMemory
			m.Memory = memorygame.New()
			m.gameRecorded = false
			return m, memorygame.Tick()
		default:
			m.Screen = screenMain
		}
	}
	return m, nil
}

func (m Model) updateCatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Catch.Done {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc", "enter", " ":
				m.Screen = screenGamesMenu
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Catch, cmd = m.Catch.Update(msg)
	if m.Catch.Done && !m.gameRecorded {
		m.gameRecorded = true
		m.Store.AddCoins(m.Catch.CoinsEarned)
		m.Store.RecordMiniGame("catch", m.Catch.Score, m.Catch.CoinsEarned)
	}
	return m, cmd
}

func (m Model) updateMemory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Memory.Done {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc", "enter", " ":
				m.Screen = screenGamesMenu
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Memory, cmd = m.Memory.Update(msg)
	if m.Memory.Done && !m.gameRecorded {
		m.gameRecorded = true
		// A timed-out round with zero matches earns nothing and is not
		// recorded, matching the original game.
		if m.Memory.Won || m.Memory.CoinsEarned > 0 {
			m.Store.AddCoins(m.Memory.CoinsEarned)
			m.Store.RecordMiniGame("memory", m.Memory.Matches, m.Memory.CoinsEarned)
		}
	}
	return m, cmd
}

func (m Model) activeName() string {
	if p, ok := m.Store.ActivePet(); ok {
		return p.Name
	}
	return "your pet"
}

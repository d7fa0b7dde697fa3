package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"petplay/internal/achievement"
	"petplay/internal/pet"
	"petplay/internal/species"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	menu     lipgloss.Style
	selected lipgloss.Style
	coins    lipgloss.Style
	dim      lipgloss.Style
	rarity   map[int]lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	coins: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")),

	rarity: map[int]lipgloss.Style{
		species.Common:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		species.Uncommon:  lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		species.Rare:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9370DB")),
		species.Epic:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF69B4")),
		species.Legendary: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	},
}

func makeBar(value float64) string {
	filled := int(value) / 10
	var bar strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.Animation.Type != AnimNone {
		return m.Animation.Render()
	}

	switch m.Screen {
	case screenStarter:
		return m.starterView()
	case screenCollection:
		return m.collectionView()
	case screenAchievements:
		return m.achievementsView()
	case screenGamesMenu:
		return m.gamesMenuView()
	case screenCatch:
		if m.Catch.Done {
			return m.Catch.ResultView() + "\n\nPress enter to continue"
		}
		return m.Catch.View()
	case screenMemory:
		if m.Memory.Done {
			return m.Memory.ResultView() + "\n\nPress enter to continue"
		}
		return m.Memory.View()
	default:
		return m.mainView()
	}
}

func (m Model) starterView() string {
	var b strings.Builder
	b.WriteString(gameStyles.title.Render("🥚 Pick your starter pet! 🥚"))
	b.WriteString("\n\n")
	for i, id := range species.StarterIDs {
		sp, _ := species.ByID(id)
		cursor := "  "
		line := fmt.Sprintf("%s %s — %s", sp.Emoji, sp.Name, sp.Description)
		if i == m.StarterChoice {
			cursor = "> "
			line = gameStyles.selected.Render(line)
		} else {
			line = gameStyles.menu.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + gameStyles.dim.Render("↑/↓ to choose, enter to adopt"))
	return b.String()
}

func (m Model) mainView() string {
	snap := m.Store.Snapshot()
	p, hasPet := m.Store.ActivePet()

	var sections []string

	header := fmt.Sprintf("🪙 %d", snap.Coins)
	if m.Store.StreakClaimable() {
		header += "   📅 Daily reward ready!"
	}
	if n := m.Tracker.UnclaimedCount(); n > 0 {
		header += fmt.Sprintf("   🏆 %d unclaimed", n)
	}
	sections = append(sections, gameStyles.coins.Render(header))

	if hasPet {
		sp, _ := species.ByID(p.SpeciesID)
		title := fmt.Sprintf("%s %s %s", sp.Emoji, p.Name, sp.Emoji)
		sections = append(sections, gameStyles.title.Render(title), "", m.renderStats(p))

		prog := m.Store.EvolutionProgress(p.ID)
		if prog.TargetStage != 0 {
			line := fmt.Sprintf("Evolution to stage %d: level %s  care %s", prog.TargetStage,
				readyMark(prog.LevelReady), readyMark(prog.CareReady))
			if m.Store.CanEvolve(p.ID) {
				line = gameStyles.selected.Render("✨ Ready to evolve! Press [E] ✨")
			} else {
				line = gameStyles.dim.Render(line)
			}
			sections = append(sections, "", line)
		}
	} else {
		sections = append(sections, gameStyles.status.Render("No pets yet — try the gacha!"))
	}

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	sections = append(sections, "", m.renderMenu(),
		"", gameStyles.dim.Render("↑/↓ select • enter confirm • [p]at • [tab] switch pet • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func readyMark(ready bool) string {
	if ready {
		return "✅"
	}
	return "❌"
}

func (m Model) renderStats(p pet.Pet) string {
	var b strings.Builder
	b.WriteString(gameStyles.status.Render(fmt.Sprintf("Level %d  (XP %d/%d)  Stage %d",
		p.Level, p.XP, pet.XPRequiredForLevel(p.Level, m.Store.Balance().Progression), p.Stage)))
	b.WriteString("\n")
	b.WriteString(gameStyles.status.Render(fmt.Sprintf("Hunger:      [%s] %3.0f%%", makeBar(p.Stats.Hunger), p.Stats.Hunger)))
	b.WriteString("\n")
	b.WriteString(gameStyles.status.Render(fmt.Sprintf("Happiness:   [%s] %3.0f%%", makeBar(p.Stats.Happiness), p.Stats.Happiness)))
	b.WriteString("\n")
	b.WriteString(gameStyles.status.Render(fmt.Sprintf("Energy:      [%s] %3.0f%%", makeBar(p.Stats.Energy), p.Stats.Energy)))
	b.WriteString("\n")
	b.WriteString(gameStyles.status.Render(fmt.Sprintf("Cleanliness: [%s] %3.0f%%", makeBar(p.Stats.Cleanliness), p.Stats.Cleanliness)))
	return b.String()
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, choice := range mainMenu {
		cursor := "  "
		line := gameStyles.menu.Render(choice)
		if m.Choice == i {
			cursor = "> "
			line = gameStyles.selected.Render(choice)
		}
		b.WriteString(cursor + line)
		if i < len(mainMenu)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) collectionView() string {
	snap := m.Store.Snapshot()

	var b strings.Builder
	b.WriteString(gameStyles.title.Render(fmt.Sprintf("📦 Collection — %d/%d species discovered",
		len(snap.UnlockedSpecies), len(species.Catalog))))
	b.WriteString("\n\n")

	if len(snap.Pets) == 0 {
		b.WriteString(gameStyles.dim.Render("No pets yet."))
	}
	for i, p := range snap.Pets {
		sp, _ := species.ByID(p.SpeciesID)
		style := gameStyles.rarity[sp.Rarity]
		cursor := "  "
		if i == m.CollectionChoice {
			cursor = "> "
		}
		active := ""
		if p.ID == snap.ActivePetID {
			active = " ★"
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%s %s  Lv%d  Stage %d  (%s)%s",
			sp.Emoji, p.Name, p.Level, p.Stage, species.RarityName(sp.Rarity), active)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + gameStyles.dim.Render("enter to make active • esc to go back"))
	return b.String()
}

func (m Model) achievementsView() string {
	var b strings.Builder
	b.WriteString(gameStyles.title.Render("🏆 Achievements"))
	b.WriteString("\n\n")

	for i, def := range achievement.Definitions {
		prog, _ := m.Tracker.Progress(def.ID)
		cursor := "  "
		if i == m.AchievementChoice {
			cursor = "> "
		}

		current := prog.Current
		if current > def.Requirement {
			current = def.Requirement
		}
		line := fmt.Sprintf("%s %s — %s (%d/%d)", def.Icon, def.Name, def.Description, current, def.Requirement)
		switch {
		case prog.Claimed:
			line = gameStyles.dim.Render(line + "  ✓ claimed")
		case prog.Unlocked:
			line = gameStyles.selected.Render(line + fmt.Sprintf("  🎁 claim +%d 🪙", def.Reward))
		default:
			line = gameStyles.menu.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + gameStyles.dim.Render("enter to claim • esc to go back"))
	return b.String()
}

func (m Model) gamesMenuView() string {
	snap := m.Store.Snapshot()

	var b strings.Builder
	b.WriteString(gameStyles.title.Render("🎮 Mini-Games"))
	b.WriteString("\n\n")
	for i, choice := range gamesMenu {
		cursor := "  "
		line := gameStyles.menu.Render(choice)
		if m.GameChoice == i {
			cursor = "> "
			line = gameStyles.selected.Render(choice)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	if sc, ok := snap.MiniGameScores["catch"]; ok {
		b.WriteString(gameStyles.dim.Render(fmt.Sprintf("Treat Catcher — high score %d, %d plays, %d 🪙 earned",
			sc.HighScore, sc.TotalPlays, sc.TotalCoinsEarned)))
		b.WriteString("\n")
	}
	if sc, ok := snap.MiniGameScores["memory"]; ok {
		b.WriteString(gameStyles.dim.Render(fmt.Sprintf("Memory Match — high score %d, %d plays, %d 🪙 earned",
			sc.HighScore, sc.TotalPlays, sc.TotalCoinsEarned)))
		b.WriteString("\n")
	}
	b.WriteString(gameStyles.dim.Render(fmt.Sprintf("Total wins: %d", snap.MiniGameWins)))

	b.WriteString("\n\n" + gameStyles.dim.Render("enter to play • esc to go back"))
	return b.String()
}

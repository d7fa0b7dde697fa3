// Package catchgame is the Treat Catcher mini-game: move the basket under
// falling treats before the timer runs out.
package catchgame

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RandFloat64 is swappable in tests.
var RandFloat64 = rand.Float64

const (
	frameInterval = 120 * time.Millisecond
	gameDuration  = 30 * time.Second

	fieldWidth  = 9
	fieldHeight = 8

	// Coin formula: catches and best combo both pay double.
	coinsPerCatch = 2
	coinsPerCombo = 2
)

var treatEmojis = []string{"🍖", "🍎", "🍪", "🐟"}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFB6C1")).
			Padding(0, 1)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	comboStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF75B5"))
)

type treat struct {
	col   int
	row   int
	emoji string
}

// FrameMsg advances the game one frame.
type FrameMsg time.Time

// Model is the Treat Catcher state. The parent model embeds it and reads
// Done/Score/CoinsEarned after each update.
type Model struct {
	BasketCol   int
	Treats      []treat
	Score       int
	Combo       int
	BestCombo   int
	Missed      int
	Frame       int
	Remaining   time.Duration
	Done        bool
	CoinsEarned int
}

// New starts a fresh round.
func New() Model {
	return Model{
		BasketCol: fieldWidth / 2,
		Remaining: gameDuration,
	}
}

// Tick schedules the next frame.
func Tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) fallEvery() int {
	// Speeds up as time runs down.
	elapsed := gameDuration - m.Remaining
	switch {
	case elapsed > 20*time.Second:
		return 2
	case elapsed > 10*time.Second:
		return 3
	default:
		return 4
	}
}

// Update advances the game. The parent forwards key and frame messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.Done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.BasketCol > 0 {
				m.BasketCol--
			}
		case "right", "l":
			if m.BasketCol < fieldWidth-1 {
				m.BasketCol++
			}
		}
		return m, nil

	case FrameMsg:
		m.Frame++
		m.Remaining -= frameInterval
		if m.Remaining <= 0 {
			m.finish()
			return m, nil
		}

		// Spawn a treat roughly every second.
		if m.Frame%8 == 0 {
			m.Treats = append(m.Treats, treat{
				col:   int(RandFloat64() * float64(fieldWidth)),
				row:   0,
				emoji: treatEmojis[int(RandFloat64()*float64(len(treatEmojis)))%len(treatEmojis)],
			})
		}

		if m.Frame%m.fallEvery() == 0 {
			kept := m.Treats[:0]
			for _, t := range m.Treats {
				t.row++
				if t.row >= fieldHeight-1 {
					if t.col == m.BasketCol {
						m.Score++
						m.Combo++
						if m.Combo > m.BestCombo {
							m.BestCombo = m.Combo
						}
					} else {
						m.Missed++
						m.Combo = 0
					}
					continue
				}
				kept = append(kept, t)
			}
			m.Treats = kept
		}
		return m, Tick()
	}

	return m, nil
}

func (m *Model) finish() {
	m.Done = true
	m.CoinsEarned = m.Score*coinsPerCatch + m.BestCombo*coinsPerCombo
}

// View renders the playfield.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(scoreStyle.Render(fmt.Sprintf("🍖 Treat Catcher  %ds left", int(m.Remaining.Seconds()))))
	b.WriteString("\n")
	b.WriteString(comboStyle.Render(fmt.Sprintf("Caught: %d  Combo: %d  Best: %d", m.Score, m.Combo, m.BestCombo)))
	b.WriteString("\n")

	grid := make([][]string, fieldHeight)
	for y := range grid {
		grid[y] = make([]string, fieldWidth)
		for x := range grid[y] {
			grid[y][x] = "・"
		}
	}
	for _, t := range m.Treats {
		grid[t.row][t.col] = t.emoji
	}
	grid[fieldHeight-1][m.BasketCol] = "🧺"

	var field strings.Builder
	for y, row := range grid {
		field.WriteString(strings.Join(row, ""))
		if y < fieldHeight-1 {
			field.WriteString("\n")
		}
	}
	b.WriteString(frameStyle.Render(field.String()))
	b.WriteString("\n←/→ to move the basket")
	return b.String()
}

// ResultView renders the end-of-round summary.
func (m Model) ResultView() string {
	return fmt.Sprintf("%s\n%s",
		scoreStyle.Render(fmt.Sprintf("Time! %d catches, best combo %d", m.Score, m.BestCombo)),
		comboStyle.Render(fmt.Sprintf("+%d coins earned!", m.CoinsEarned)))
}

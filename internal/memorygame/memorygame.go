// Package memorygame is the Memory Match mini-game: clear a 4x4 board of
// emoji pairs before the timer runs out.
package memorygame

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
	boardSize  = 4
	totalPairs = boardSize * boardSize / 2

	gameDuration = 60 * time.Second
	revealDelay  = 900 * time.Millisecond

	coinsPerMatch     = 5
	timeBonusStep     = 5 // seconds of remaining time per bonus step
	coinsPerTimeStep  = 2
	coinsPerLossMatch = 3
)

var pairEmojis = []string{"🦊", "🐰", "🐤", "🐕", "🐱", "🍄", "🐝", "🐲"}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9370DB")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9370DB")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF75B5"))
)

type card struct {
	emoji   string
	flipped bool
	matched bool
}

// TickMsg counts the game clock down one second.
type TickMsg time.Time

// HideMsg flips a mismatched pair back over.
type HideMsg struct{}

// Model is the Memory Match state. The parent embeds it and reads
// Done/Won/Matches/CoinsEarned after each update.
type Model struct {
	Cards       []card
	Cursor      int
	FlippedIdx  []int
	Matches     int
	Moves       int
	Remaining   time.Duration
	Hiding      bool
	Done        bool
	Won         bool
	CoinsEarned int
}

// New deals a shuffled board.
func New() Model {
	cards := make([]card, 0, boardSize*boardSize)
	for _, e := range pairEmojis {
		cards = append(cards, card{emoji: e}, card{emoji: e})
	}
	// Fisher-Yates with the injectable rand.
	for i := len(cards) - 1; i > 0; i-- {
		j := int(RandFloat64() * float64(i+1))
		if j > i {
			j = i
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
	return Model{
		Cards:     cards,
		Remaining: gameDuration,
	}
}

// Tick schedules the one-second clock.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func hideLater() tea.Cmd {
	return tea.Tick(revealDelay, func(time.Time) tea.Msg {
		return HideMsg{}
	})
}

// Update advances the game. The parent forwards key, tick and hide messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.Done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.Cursor%boardSize > 0 {
				m.Cursor--
			}
		case "right", "l":
			if m.Cursor%boardSize < boardSize-1 {
				m.Cursor++
			}
		case "up", "k":
			if m.Cursor >= boardSize {
				m.Cursor -= boardSize
			}
		case "down", "j":
			if m.Cursor < len(m.Cards)-boardSize {
				m.Cursor += boardSize
			}
		case "enter", " ":
			return m.flip()
		}
		return m, nil

	case TickMsg:
		m.Remaining -= time.Second
		if m.Remaining <= 0 {
			m.lose()
			return m, nil
		}
		return m, Tick()

	case HideMsg:
		for _, idx := range m.FlippedIdx {
			m.Cards[idx].flipped = false
		}
		m.FlippedIdx = nil
		m.Hiding = false
		return m, nil
	}

	return m, nil
}

func (m Model) flip() (Model, tea.Cmd) {
	if m.Hiding || len(m.FlippedIdx) >= 2 {
		return m, nil
	}
	c := &m.Cards[m.Cursor]
	if c.flipped || c.matched {
		return m, nil
	}
	c.flipped = true
	m.FlippedIdx = append(m.FlippedIdx, m.Cursor)

	if len(m.FlippedIdx) < 2 {
		return m, nil
	}

	m.Moves++
	a, b := m.FlippedIdx[0], m.FlippedIdx[1]
	if m.Cards[a].emoji == m.Cards[b].emoji {
		m.Cards[a].matched = true
		m.Cards[b].matched = true
		m.FlippedIdx = nil
		m.Matches++
		if m.Matches == totalPairs {
			m.win()
		}
		return m, nil
	}

	m.Hiding = true
	return m, hideLater()
}

func (m *Model) win() {
	m.Done = true
	m.Won = true

	base := m.Matches * coinsPerMatch
	timeBonus := int(m.Remaining.Seconds()) / timeBonusStep * coinsPerTimeStep
	efficiency := 0
	switch {
	case m.Moves <= totalPairs*2:
		efficiency = 20
	case m.Moves <= totalPairs*3:
		efficiency = 10
	}
	m.CoinsEarned = base + timeBonus + efficiency
}

func (m *Model) lose() {
	m.Done = true
	m.Won = false
	// Partial reward for matches found.
	m.CoinsEarned = m.Matches * coinsPerLossMatch
}

// View renders the board.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("🧠 Memory Match  %ds left", int(m.Remaining.Seconds()))))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Pairs: %d/%d  Moves: %d", m.Matches, totalPairs, m.Moves)))
	b.WriteString("\n")

	for row := 0; row < boardSize; row++ {
		cells := make([]string, 0, boardSize)
		for col := 0; col < boardSize; col++ {
			idx := row*boardSize + col
			c := m.Cards[idx]
			face := "❔"
			if c.flipped || c.matched {
				face = c.emoji
			}
			style := cardStyle
			if idx == m.Cursor {
				style = cursorStyle
			}
			cells = append(cells, style.Render(face))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cells...))
		b.WriteString("\n")
	}
	b.WriteString("arrows to move, enter to flip")
	return b.String()
}

// ResultView renders the end-of-round summary.
func (m Model) ResultView() string {
	head := "⌛ Time's up!"
	if m.Won {
		head = "🎉 All pairs matched!"
	}
	return fmt.Sprintf("%s\n%s",
		titleStyle.Render(head),
		infoStyle.Render(fmt.Sprintf("%d pairs, +%d coins earned!", m.Matches, m.CoinsEarned)))
}

package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leveltrack/internal/gamestate"
	"github.com/abhisek/leveltrack/internal/screen"
	"github.com/abhisek/leveltrack/internal/tracker"
	"github.com/abhisek/leveltrack/internal/ui/layout"
	"github.com/abhisek/leveltrack/internal/ui/theme"
)

const (
	refreshInterval = time.Second
	maxEntries      = 200
)

// refreshTickMsg is sent periodically to reload the zone history.
type refreshTickMsg time.Time

// HistoryScreen displays the zone transitions of this session, newest
// first, with cursor navigation.
type HistoryScreen struct {
	game     *gamestate.GameState
	entries  []tracker.ZoneEntry
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(game *gamestate.GameState) *HistoryScreen {
	return &HistoryScreen{game: game}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return refreshCmd()
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next view"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		// Newest first for display.
		entries := s.game.Recent(maxEntries)
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		s.entries = entries
		if s.selected >= len(s.entries) {
			s.selected = len(s.entries) - 1
		}
		if s.selected < 0 {
			s.selected = 0
		}
		return s, refreshCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "g":
			s.selected = 0
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No zones visited yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the cursor visible within the available rows.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.entries) {
		end = len(s.entries)
	}

	for i := start; i < end; i++ {
		e := s.entries[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  Act %d  %s", prefix, e.Timestamp.Format("15:04:05"), e.Act, e.Name)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

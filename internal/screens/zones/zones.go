package zones

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leveltrack/internal/gamedata"
	"github.com/abhisek/leveltrack/internal/gamestate"
	"github.com/abhisek/leveltrack/internal/screen"
	"github.com/abhisek/leveltrack/internal/tracker"
	"github.com/abhisek/leveltrack/internal/ui/components"
	"github.com/abhisek/leveltrack/internal/ui/layout"
	"github.com/abhisek/leveltrack/internal/ui/theme"
)

const refreshInterval = time.Second

// refreshTickMsg is sent periodically to refresh visited markers.
type refreshTickMsg time.Time

type row struct {
	act  int
	zone gamedata.ZoneRecord
}

// ZonesScreen lists every known zone grouped by act, with a text
// filter and markers for visited and passive-point zones.
type ZonesScreen struct {
	game   *gamestate.GameState
	dir    *gamedata.Directory
	filter components.FilterInput

	rows     []row
	filtered []row
	visited  map[string]bool
	selected int
}

var _ screen.Screen = (*ZonesScreen)(nil)
var _ screen.KeyHintProvider = (*ZonesScreen)(nil)

// New creates a new ZonesScreen.
func New(game *gamestate.GameState, dir *gamedata.Directory) *ZonesScreen {
	s := &ZonesScreen{
		game:    game,
		dir:     dir,
		filter:  components.NewFilterInput("Filter zones..."),
		visited: make(map[string]bool),
	}
	for act := 1; act <= dir.ActCount(); act++ {
		zones, err := dir.ActZones(act)
		if err != nil {
			continue
		}
		for _, z := range zones {
			s.rows = append(s.rows, row{act: act, zone: z})
		}
	}
	s.applyFilter()
	return s
}

func (s *ZonesScreen) Init() tea.Cmd {
	return refreshCmd()
}

func (s *ZonesScreen) Title() string {
	return "Zones"
}

func (s *ZonesScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next view"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ZonesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		for _, r := range s.rows {
			if !s.visited[r.zone.ID] && s.game.Visited(r.zone.ID) {
				s.visited[r.zone.ID] = true
			}
		}
		return s, refreshCmd()

	case tea.KeyMsg:
		if s.filter.Focused() {
			switch msg.String() {
			case "enter":
				s.filter.Blur()
				return s, nil
			case "esc":
				s.filter.Clear()
				s.filter.Blur()
				s.applyFilter()
				return s, nil
			}
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.applyFilter()
			return s, cmd
		}

		switch msg.String() {
		case "/":
			return s, s.filter.Focus()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.filtered)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *ZonesScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		s.filtered = s.rows
	} else {
		s.filtered = nil
		for _, r := range s.rows {
			if strings.Contains(strings.ToLower(r.zone.Name), query) ||
				strings.Contains(strings.ToLower(r.zone.MapName), query) {
				s.filtered = append(s.filtered, r)
			}
		}
	}
	if s.selected >= len(s.filtered) {
		s.selected = len(s.filtered) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ZonesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filter.View()))
	b.WriteString("\n\n")

	if len(s.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No zones match."))
		return b.String()
	}

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.filtered) {
		end = len(s.filtered)
	}

	lastAct := 0
	for i := start; i < end; i++ {
		r := s.filtered[i]

		if r.act != lastAct {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Subtitle.Render(fmt.Sprintf("── Act %d ──", r.act))))
			b.WriteString("\n")
			lastAct = r.act
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		marks := " "
		if s.visited[r.zone.ID] {
			marks = theme.VisitedMark.Render("✓")
		}
		if tracker.IsPassiveZone(r.zone.ID) {
			marks += theme.PassiveMark.Render(" ✦")
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := style.Render(fmt.Sprintf("%s%-36s ", prefix, r.zone.Name)) + marks
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

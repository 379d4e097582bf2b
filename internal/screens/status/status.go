package status

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

const (
	refreshInterval = 500 * time.Millisecond
	spinnerInterval = 120 * time.Millisecond
	recentShown     = 8
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StatusScreen shows the live progression state: current zone, act
// progress, passive points, and the most recent zone transitions.
type StatusScreen struct {
	game *gamestate.GameState
	dir  *gamedata.Directory

	snap    gamestate.Snapshot
	recent  []tracker.ZoneEntry
	running bool
	logPath string
	frame   int
}

var _ screen.Screen = (*StatusScreen)(nil)
var _ screen.KeyHintProvider = (*StatusScreen)(nil)

// New creates a new StatusScreen.
func New(game *gamestate.GameState, dir *gamedata.Directory, logPath string) *StatusScreen {
	s := &StatusScreen{
		game:    game,
		dir:     dir,
		logPath: logPath,
	}
	s.snap = game.Snapshot()
	s.running = game.Running()
	return s
}

func (s *StatusScreen) Init() tea.Cmd {
	return tea.Batch(refreshCmd(), spinnerCmd())
}

func (s *StatusScreen) Title() string {
	return "Status"
}

func (s *StatusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next view"},
		{Key: "r", Description: "Reset session"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StatusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		s.snap = s.game.Snapshot()
		s.recent = s.game.Recent(recentShown)
		s.running = s.game.Running()
		return s, refreshCmd()

	case spinnerTickMsg:
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerCmd()

	case tea.KeyMsg:
		if msg.String() == "r" {
			s.game.Reset()
			s.snap = s.game.Snapshot()
			s.recent = nil
			return s, nil
		}
	}
	return s, nil
}

func (s *StatusScreen) View(width, height int) string {
	if !s.running {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(fmt.Sprintf("\n\n  Client log not found.\n\n  Looked at: %s\n\n  Start the game or set LEVELTRACK_CLIENT_TXT.", s.logPath))
	}

	if s.snap.Zone == "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  %s Waiting for a zone change...", spinnerFrames[s.frame]))
	}

	var b strings.Builder
	b.WriteString("\n")

	zoneLine := theme.Title.Render(s.snap.Zone)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, zoneLine))
	b.WriteString("\n\n")

	actCount := s.dir.ActCount()
	percent := float64(s.snap.Act) / float64(actCount)
	bar := components.NewProgressBar(fmt.Sprintf("Act %d/%d", s.snap.Act, actCount), percent, width/2)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("✦ %d passive points    %d zones visited", s.snap.PassivePoints, s.snap.ZonesVisited)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(statsLine)))
	b.WriteString("\n\n")

	if len(s.recent) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("Recent zones")))
		b.WriteString("\n")
		// Newest at the top.
		for i := len(s.recent) - 1; i >= 0; i-- {
			e := s.recent[i]
			line := fmt.Sprintf("%s  %s (Act %d)", e.Timestamp.Format("15:04:05"), e.Name, e.Act)
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if i == len(s.recent)-1 {
				style = lipgloss.NewStyle().Foreground(theme.Text)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

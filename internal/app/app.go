// Package app hosts the root Bubble Tea model. It owns a fixed set of
// tab screens and composes the header, active screen, and footer.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leveltrack/internal/gamedata"
	"github.com/abhisek/leveltrack/internal/gamestate"
	"github.com/abhisek/leveltrack/internal/screen"
	"github.com/abhisek/leveltrack/internal/screens/history"
	"github.com/abhisek/leveltrack/internal/screens/status"
	"github.com/abhisek/leveltrack/internal/screens/zones"
	"github.com/abhisek/leveltrack/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Game      *gamestate.GameState
	Directory *gamedata.Directory
	LogPath   string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	game   *gamestate.GameState
	tabs   []screen.Screen
	active int
	width  int
	height int
}

// newAppModel creates a new AppModel with the status tab active.
func newAppModel(opts Options) AppModel {
	return AppModel{
		game: opts.Game,
		tabs: []screen.Screen{
			status.New(opts.Game, opts.Directory, opts.LogPath),
			history.New(opts.Game),
			zones.New(opts.Game, opts.Directory),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		cmds = append(cmds, t.Init())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % len(m.tabs)
			return m, nil
		}
		// Other keys go to the active tab only.
		updated, cmd := m.tabs[m.active].Update(msg)
		m.tabs[m.active] = updated
		return m, cmd
	}

	// Ticks and other messages reach every tab so background views
	// keep their refresh loops alive.
	var cmds []tea.Cmd
	for i, t := range m.tabs {
		updated, cmd := t.Update(msg)
		m.tabs[i] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.tabs[m.active]
	snap := m.game.Snapshot()

	header := layout.RenderHeader(active.Title(), snap.Act, snap.PassivePoints, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Tab", Description: "Next view"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := active.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

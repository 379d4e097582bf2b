package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/leveltrack/internal/app"
)

// runApp builds the monitoring pipeline and launches the TUI. Logs are
// discarded while the alternate screen owns the terminal.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	game, dir, logPath, err := buildGame(cfg, log)
	if err != nil {
		return err
	}

	game.Start()
	defer game.Stop()

	return app.Run(app.Options{
		Game:      game,
		Directory: dir,
		LogPath:   logPath,
	})
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/leveltrack/internal/config"
	"github.com/abhisek/leveltrack/internal/gamedata"
	"github.com/abhisek/leveltrack/internal/gamestate"
	"github.com/abhisek/leveltrack/internal/logmon"
	"github.com/abhisek/leveltrack/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "leveltrack",
	Short: "Path of Exile leveling tracker",
	Long:  "Leveltrack — terminal app that follows your Client.txt and tracks zones, acts, and passive skill points while you level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the default XDG location)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves the effective configuration using the --config
// flag (highest priority), then the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildGame assembles the directory, tailer, tracker, and coordinator
// from the configuration. The returned path is the resolved Client.txt
// location, which may not exist.
func buildGame(cfg config.Config, log *slog.Logger) (*gamestate.GameState, *gamedata.Directory, string, error) {
	dir := gamedata.Default()
	if cfg.AreasFile != "" {
		d, err := gamedata.LoadFile(cfg.AreasFile)
		if err != nil {
			return nil, nil, "", fmt.Errorf("load areas file: %w", err)
		}
		dir = d
	}

	logPath, found := cfg.ResolveClientLog()
	if !found {
		log.Warn("client log not found in known locations", "path", logPath)
	}

	tl, err := logmon.New(logPath, logmon.Options{
		Interval: cfg.PollInterval,
		Source:   logmon.Source(cfg.EventSource),
		Logger:   log,
	})
	if err != nil {
		return nil, nil, "", fmt.Errorf("create tailer: %w", err)
	}

	tr := tracker.New(dir, tracker.Options{
		MonotonicAct: cfg.MonotonicAct,
		Logger:       log,
	})

	game := gamestate.New(tl, tr, gamestate.Options{Logger: log})
	return game, dir, logPath, nil
}

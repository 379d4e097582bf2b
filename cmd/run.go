package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/leveltrack/internal/tracker"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Monitor the client log without the TUI",
	Long:  "Follows Client.txt and prints zone changes, act transitions, and passive point pickups to stdout. Intended for scripting or running under a supervisor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		game, _, logPath, err := buildGame(cfg, log)
		if err != nil {
			return err
		}

		tr := game.Tracker()
		tr.OnZoneChange(func(e tracker.ZoneEntry) {
			fmt.Printf("[%s] entered %s (act %d)\n", e.Timestamp.Format("15:04:05"), e.Name, e.Act)
		})
		tr.OnActChange(func(oldAct, newAct int) {
			fmt.Printf("act %d -> act %d\n", oldAct, newAct)
		})
		tr.OnPassivePoint(func(zoneName string, total int) {
			fmt.Printf("passive point earned in %s (%d total)\n", zoneName, total)
		})

		game.Start()
		if !game.Running() {
			return fmt.Errorf("client log not available at %q", logPath)
		}
		defer game.Stop()

		log.Info("monitoring", "path", logPath, "session", game.SessionID())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		stats := game.TailStats()
		log.Info("shutting down", "lines", stats.Lines, "events", stats.Events, "errors", stats.Errors)
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("verbose", false, "Enable debug logging")
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leveltrack/internal/gamedata"
	"github.com/abhisek/leveltrack/internal/tracker"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [file]",
	Short: "Replay zone identifiers through the tracker",
	Long:  "Reads one zone identifier or display name per line, from a file or stdin, and prints the resulting progression. Useful for checking a leveling route without the game running.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dir := gamedata.Default()
		if cfg.AreasFile != "" {
			dir, err = gamedata.LoadFile(cfg.AreasFile)
			if err != nil {
				return fmt.Errorf("load areas file: %w", err)
			}
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		tr := tracker.New(dir, tracker.Options{
			MonotonicAct: cfg.MonotonicAct,
			Logger:       log,
		})
		out := cmd.OutOrStdout()
		tr.OnActChange(func(oldAct, newAct int) {
			fmt.Fprintf(out, "  act %d -> act %d\n", oldAct, newAct)
		})
		tr.OnPassivePoint(func(zoneName string, total int) {
			fmt.Fprintf(out, "  passive point in %s (%d total)\n", zoneName, total)
		})

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			raw := strings.TrimSpace(sc.Text())
			if raw == "" || strings.HasPrefix(raw, "#") {
				continue
			}
			entry, ok := tr.EnterZone(raw)
			if !ok {
				fmt.Fprintf(out, "? %s (unresolved)\n", raw)
				continue
			}
			fmt.Fprintf(out, "%s -> %s (act %d)\n", raw, entry.Name, entry.Act)
		}
		if err := sc.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d zones, act %d, %d passive points\n",
			tr.VisitCount(), tr.CurrentAct(), tr.PassivePoints())
		return nil
	},
}

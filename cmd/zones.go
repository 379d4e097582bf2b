package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/leveltrack/internal/gamedata"
	"github.com/abhisek/leveltrack/internal/tracker"
)

var zonesCmd = &cobra.Command{
	Use:   "zones [act]",
	Short: "List known zones, optionally for one act",
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

		first, last := 1, dir.ActCount()
		if len(args) == 1 {
			act, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid act %q", args[0])
			}
			first, last = act, act
		}

		for act := first; act <= last; act++ {
			zones, err := dir.ActZones(act)
			if err != nil {
				return err
			}
			fmt.Printf("Act %d\n", act)
			for _, z := range zones {
				mark := " "
				if tracker.IsPassiveZone(z.ID) {
					mark = "✦"
				}
				fmt.Printf("  %s %-14s %s\n", mark, z.ID, z.Name)
			}
		}
		return nil
	},
}

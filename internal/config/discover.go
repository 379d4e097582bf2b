package config

import (
	"os"
	"path/filepath"
)

// clientLogCandidates are known Client.txt locations relative to the
// user's home directory, probed in order. Both common Steam library
// layouts for the Proton prefix are covered.
var clientLogCandidates = []string{
	".steam/steam/steamapps/compatdata/238960/pfx/drive_c/Program Files (x86)/Grinding Gear Games/Path of Exile/logs/Client.txt",
	".local/share/Steam/steamapps/compatdata/238960/pfx/drive_c/Program Files (x86)/Grinding Gear Games/Path of Exile/logs/Client.txt",
}

// ResolveClientLog returns the Client.txt path to monitor. An explicit
// configured path always wins, whether or not the file exists yet (the
// tailer reports a missing file itself). Otherwise the known install
// locations are probed; ok is false when none exists.
func (c *Config) ResolveClientLog() (path string, ok bool) {
	if c.ClientLog != "" {
		return c.ClientLog, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	for _, rel := range clientLogCandidates {
		p := filepath.Join(home, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

package status

import "time"

// refreshTickMsg is sent at short intervals to poll the game state.
type refreshTickMsg time.Time

// spinnerTickMsg is sent at short intervals to animate the waiting spinner.
type spinnerTickMsg time.Time

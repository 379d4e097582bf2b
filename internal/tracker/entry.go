package tracker

import "time"

// ZoneEntry records a single zone visit. Entries are immutable once
// appended to the history.
type ZoneEntry struct {
	// ZoneID is the resolved area id, e.g. "1_1_7_2".
	ZoneID string
	// Name is the resolved display name of the area.
	Name string
	// Act is the act in effect at the moment of the visit.
	Act int
	// Timestamp is when the visit was observed.
	Timestamp time.Time
}

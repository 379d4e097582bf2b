// Package tracker maintains campaign progression state from a stream
// of raw zone identifiers: current zone, current act, zone history,
// and one-time passive point rewards.
package tracker

import (
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/leveltrack/internal/gamedata"
)

// namePrefix is stripped and retried when a display name fails to
// resolve; the game data is inconsistent about leading articles
// ("The Coast" in the log, "Coast" in the dataset).
const namePrefix = "The "

// Options tunes tracker behaviour.
type Options struct {
	// MonotonicAct pins CurrentAct so it never moves backward: entering
	// an earlier act's zone keeps the current act. When false (the
	// default) the act parsed from the zone id is trusted as-is,
	// including backward movement.
	MonotonicAct bool
	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

// Tracker converts raw zone identifiers into progression state
// transitions. It is not safe for concurrent use: all mutation must
// happen on a single goroutine (the coordinator guarantees this).
type Tracker struct {
	dir  *gamedata.Directory
	opts Options

	history           []ZoneEntry
	current           *ZoneEntry
	currentAct        int
	passivePoints     int
	visited           map[string]struct{}
	completedPassives map[string]struct{}

	zoneChangeSubs   []func(ZoneEntry)
	actChangeSubs    []func(oldAct, newAct int)
	passivePointSubs []func(zoneName string, total int)
}

// New creates a Tracker over the given directory, starting in act 1
// with empty state.
func New(dir *gamedata.Directory, opts Options) *Tracker {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Tracker{
		dir:               dir,
		opts:              opts,
		currentAct:        1,
		visited:           make(map[string]struct{}),
		completedPassives: make(map[string]struct{}),
	}
}

// OnZoneChange registers a subscriber for zone changes. Subscribers
// run synchronously in registration order; register before the
// monitoring loop starts.
func (t *Tracker) OnZoneChange(fn func(ZoneEntry)) {
	t.zoneChangeSubs = append(t.zoneChangeSubs, fn)
}

// OnActChange registers a subscriber for act transitions (oldAct, newAct).
func (t *Tracker) OnActChange(fn func(oldAct, newAct int)) {
	t.actChangeSubs = append(t.actChangeSubs, fn)
}

// OnPassivePoint registers a subscriber for passive point gains
// (zoneName, new total).
func (t *Tracker) OnPassivePoint(fn func(zoneName string, total int)) {
	t.passivePointSubs = append(t.passivePointSubs, fn)
}

// EnterZone processes one raw identifier: an area id (preferred, ids
// are globally unique) or a display name. On success it appends a
// history entry, updates act and passive state, and notifies
// subscribers in fixed order: passive point, act change, zone change.
// An identifier that cannot be resolved mutates nothing and returns
// ok == false.
func (t *Tracker) EnterZone(raw string) (ZoneEntry, bool) {
	rec, ok := t.resolve(raw)
	if !ok {
		t.opts.Logger.Warn("tracker: unknown zone", "identifier", raw)
		return ZoneEntry{}, false
	}

	act := t.deriveAct(rec.ID)

	entry := ZoneEntry{
		ZoneID:    rec.ID,
		Name:      rec.Name,
		Act:       act,
		Timestamp: time.Now(),
	}

	// Passive point check fires first so subscribers see the reward
	// before the zone change that caused it.
	if IsPassiveZone(rec.ID) {
		if _, done := t.completedPassives[rec.ID]; !done {
			t.passivePoints++
			t.completedPassives[rec.ID] = struct{}{}
			for _, fn := range t.passivePointSubs {
				fn(entry.Name, t.passivePoints)
			}
		}
	}

	oldAct := t.currentAct
	t.current = &entry
	t.history = append(t.history, entry)
	t.visited[rec.ID] = struct{}{}

	if act != oldAct {
		t.currentAct = act
		for _, fn := range t.actChangeSubs {
			fn(oldAct, act)
		}
	}

	for _, fn := range t.zoneChangeSubs {
		fn(entry)
	}
	return entry, true
}

// resolve maps a raw identifier to a zone record.
func (t *Tracker) resolve(raw string) (gamedata.ZoneRecord, bool) {
	if gamedata.IsAreaID(raw) {
		rec, err := t.dir.ZoneByID(raw)
		if err != nil {
			return gamedata.ZoneRecord{}, false
		}
		return rec, true
	}

	if rec, ok := t.searchByProximity(raw); ok {
		return rec, true
	}

	// Retry once without the leading article.
	if stripped, ok := strings.CutPrefix(raw, namePrefix); ok {
		if rec, ok := t.searchByProximity(stripped); ok {
			return rec, true
		}
	}
	return gamedata.ZoneRecord{}, false
}

// searchByProximity looks the name up act by act, nearest the current
// act first, checking act+d before act-d for each distance. Duplicate
// names across acts resolve to the act closest to current progress.
func (t *Tracker) searchByProximity(name string) (gamedata.ZoneRecord, bool) {
	total := t.dir.ActCount()
	for d := 0; d < total; d++ {
		if rec, ok := t.dir.FindInAct(name, t.currentAct+d); ok {
			return rec, true
		}
		if d == 0 {
			continue
		}
		if rec, ok := t.dir.FindInAct(name, t.currentAct-d); ok {
			return rec, true
		}
	}
	return gamedata.ZoneRecord{}, false
}

// deriveAct resolves the act for a zone id under the configured
// regression policy. Ids that do not encode an act (hideouts and the
// like) keep the current act.
func (t *Tracker) deriveAct(zoneID string) int {
	act := gamedata.ActOf(zoneID)
	if act == 0 {
		return t.currentAct
	}
	if t.opts.MonotonicAct && act < t.currentAct {
		return t.currentAct
	}
	return act
}

// Reset clears all tracking state back to a fresh act-1 session. It is
// idempotent and fires no notifications.
func (t *Tracker) Reset() {
	t.history = nil
	t.current = nil
	t.currentAct = 1
	t.passivePoints = 0
	t.visited = make(map[string]struct{})
	t.completedPassives = make(map[string]struct{})
}

// CurrentZone returns the most recent entry, or false when no zone has
// been resolved yet.
func (t *Tracker) CurrentZone() (ZoneEntry, bool) {
	if t.current == nil {
		return ZoneEntry{}, false
	}
	return *t.current, true
}

// CurrentAct returns the act in effect.
func (t *Tracker) CurrentAct() int { return t.currentAct }

// PassivePoints returns the number of passive points earned.
func (t *Tracker) PassivePoints() int { return t.passivePoints }

// VisitCount returns the number of resolved zone entries.
func (t *Tracker) VisitCount() int { return len(t.history) }

// Visited reports whether the zone id has ever been entered.
func (t *Tracker) Visited(zoneID string) bool {
	_, ok := t.visited[zoneID]
	return ok
}

// RecentZones returns the most recent n entries, oldest first.
func (t *Tracker) RecentZones(n int) []ZoneEntry {
	if n <= 0 || len(t.history) == 0 {
		return nil
	}
	if n > len(t.history) {
		n = len(t.history)
	}
	out := make([]ZoneEntry, n)
	copy(out, t.history[len(t.history)-n:])
	return out
}

// ZonesInAct returns every history entry recorded while the given act
// was in effect.
func (t *Tracker) ZonesInAct(act int) []ZoneEntry {
	var out []ZoneEntry
	for _, e := range t.history {
		if e.Act == act {
			out = append(out, e)
		}
	}
	return out
}

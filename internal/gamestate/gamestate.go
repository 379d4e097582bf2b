// Package gamestate wires the log tailer to the progression tracker
// and exposes a thread-safe view of the current state to the
// presentation layer.
package gamestate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/leveltrack/internal/logmon"
	"github.com/abhisek/leveltrack/internal/tracker"
)

// stopTimeout bounds how long Stop waits for the background loop.
const stopTimeout = 2 * time.Second

// Snapshot is a consistent copy of the externally relevant state.
type Snapshot struct {
	Zone          string
	Act           int
	PassivePoints int
	ZonesVisited  int
}

// Options tunes the coordinator.
type Options struct {
	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

// GameState owns one tailer and one tracker. All tracker mutation
// happens on the single background goroutine that runs the tailer
// loop, under the state mutex; Snapshot readers therefore never
// observe a torn combination of fields. Tracker subscribers run on
// that goroutine with the mutex held and must not call back into
// GameState.
type GameState struct {
	mu      sync.Mutex
	tailer  *logmon.Tailer
	tracker *tracker.Tracker
	log     *slog.Logger

	sessionID string
	running   bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// New wires the tailer's events into the tracker. Register any tracker
// subscribers before calling Start.
func New(tl *logmon.Tailer, tr *tracker.Tracker, opts Options) *GameState {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	g := &GameState{
		tailer:    tl,
		tracker:   tr,
		log:       log,
		sessionID: uuid.New().String(),
	}
	tl.OnEvent(func(raw string) {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.tracker.EnterZone(raw)
	})
	return g
}

// SessionID identifies this monitoring session in logs.
func (g *GameState) SessionID() string { return g.sessionID }

// Tracker returns the owned tracker for subscriber registration.
// Register before Start; the subscriber lists are not guarded.
func (g *GameState) Tracker() *tracker.Tracker { return g.tracker }

// Start launches the tailer loop on a background goroutine. When the
// tailer has no usable target the system stays idle: nothing is
// spawned and the condition is logged once. Calling Start while
// already running is a no-op.
func (g *GameState) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		g.log.Warn("gamestate: already running", "session", g.sessionID)
		return
	}
	if !g.tailer.Enabled() {
		g.log.Warn("gamestate: client log not found, monitoring disabled",
			"session", g.sessionID, "path", g.tailer.Path())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.done = make(chan struct{})
	g.running = true

	go func(done chan struct{}) {
		defer close(done)
		_ = g.tailer.Run(ctx)
	}(g.done)

	g.log.Info("gamestate: monitoring started", "session", g.sessionID, "path", g.tailer.Path())
}

// Stop signals the background loop and waits for it, bounded by a
// timeout. Safe to call at any time, from any goroutine, including
// before Start or after a previous Stop.
func (g *GameState) Stop() {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return
	}
	g.running = false
	cancel, done := g.cancel, g.done
	g.cancel, g.done = nil, nil
	g.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(stopTimeout):
		g.log.Warn("gamestate: background loop did not stop in time", "session", g.sessionID)
	}
	g.log.Info("gamestate: monitoring stopped", "session", g.sessionID)
}

// Running reports whether the background loop is active.
func (g *GameState) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Snapshot returns an atomic copy of the current progression state.
// Safe to call concurrently with the background loop.
func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Act:           g.tracker.CurrentAct(),
		PassivePoints: g.tracker.PassivePoints(),
		ZonesVisited:  g.tracker.VisitCount(),
	}
	if entry, ok := g.tracker.CurrentZone(); ok {
		s.Zone = entry.Name
	}
	return s
}

// Recent returns the most recent n zone entries, oldest first.
func (g *GameState) Recent(n int) []tracker.ZoneEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.RecentZones(n)
}

// Visited reports whether a zone has been entered this session.
func (g *GameState) Visited(zoneID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.Visited(zoneID)
}

// TailStats returns counters from the underlying tailer.
func (g *GameState) TailStats() logmon.Stats {
	return g.tailer.Stats()
}

// Reset clears all tracking state for a new character or session.
func (g *GameState) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracker.Reset()
	g.log.Info("gamestate: reset", "session", g.sessionID)
}

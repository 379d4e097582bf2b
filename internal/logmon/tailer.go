// Package logmon tails the game client's log file and extracts raw
// zone-change identifiers from newly appended lines.
//
// The tailer is a cooperative polling loop: it reads whole lines from
// a stored byte offset, sleeps for the poll interval when no new data
// is available, and exits within one interval of its context being
// cancelled. Read hiccups (file locked, truncated read) are treated as
// "no new data" and retried.
package logmon

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sync/atomic"
	"time"
)

// ErrNoTarget is returned by Run when the tailer was constructed
// against a missing log file and is permanently disabled.
var ErrNoTarget = errors.New("client log file not available")

// DefaultInterval is the poll interval used when Options leaves it zero.
const DefaultInterval = 500 * time.Millisecond

// Options tunes the tailer.
type Options struct {
	// Interval is the polling frequency. Default: DefaultInterval.
	Interval time.Duration
	// Source selects the line format to recognize. Default: SourceGenerating.
	Source Source
	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Source == "" {
		o.Source = SourceGenerating
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Stats are point-in-time tailer counters.
type Stats struct {
	Lines  int64 `json:"lines"`
	Events int64 `json:"events"`
	Errors int64 `json:"errors"`
}

// Tailer incrementally reads a single growing log file and hands one
// raw identifier per recognized line to its subscribers. Lines already
// present when the tailer is constructed are skipped: the offset is
// seeded to the current end of file, because only new activity matters.
type Tailer struct {
	path    string
	pattern *regexp.Regexp
	opts    Options
	enabled bool
	offset  int64

	handlers []func(raw string)

	lines  atomic.Int64
	events atomic.Int64
	errs   atomic.Int64
}

// New creates a Tailer for the log file at path. A missing file is not
// an error: the tailer comes up permanently disabled and Run refuses
// to loop, which callers can detect up front via Enabled.
func New(path string, opts Options) (*Tailer, error) {
	opts.defaults()
	pattern, err := patternFor(opts.Source)
	if err != nil {
		return nil, err
	}

	t := &Tailer{path: path, pattern: pattern, opts: opts}
	info, err := os.Stat(path)
	if err != nil {
		opts.Logger.Warn("logmon: client log not found, monitoring disabled", "path", path)
		return t, nil
	}
	t.enabled = true
	t.offset = info.Size()
	return t, nil
}

// Enabled reports whether the tailer has a usable target file.
func (t *Tailer) Enabled() bool { return t.enabled }

// Path returns the monitored file path.
func (t *Tailer) Path() string { return t.path }

// OnEvent registers a subscriber for raw identifiers. Subscribers are
// invoked synchronously, in registration order, on the goroutine that
// runs the poll loop. Register before calling Run.
func (t *Tailer) OnEvent(fn func(raw string)) {
	t.handlers = append(t.handlers, fn)
}

// Stats returns the current counters.
func (t *Tailer) Stats() Stats {
	return Stats{
		Lines:  t.lines.Load(),
		Events: t.events.Load(),
		Errors: t.errs.Load(),
	}
}

// Run blocks until ctx is cancelled, polling the log file at the
// configured interval. Each complete new line is consumed exactly
// once: matching lines emit their identifier, non-matching lines are
// skipped silently. A partially written trailing line is left in place
// until its newline arrives.
func (t *Tailer) Run(ctx context.Context) error {
	log := t.opts.Logger
	if !t.enabled {
		return ErrNoTarget
	}

	f, err := os.Open(t.path)
	if err != nil {
		log.Error("logmon: open client log", "path", t.path, "error", err)
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		log.Error("logmon: seek client log", "offset", t.offset, "error", err)
		return err
	}
	r := bufio.NewReader(f)

	log.Info("logmon: started", "path", t.path, "interval", t.opts.Interval, "source", string(t.opts.Source))

	timer := time.NewTimer(t.opts.Interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			log.Info("logmon: stopped", "lines", t.lines.Load(), "events", t.events.Load())
			return nil
		}

		line, err := r.ReadString('\n')
		if err == nil {
			t.offset += int64(len(line))
			t.lines.Add(1)
			if raw, ok := extract(t.pattern, line); ok {
				t.events.Add(1)
				log.Debug("logmon: event", "raw", raw)
				for _, fn := range t.handlers {
					fn(raw)
				}
			}
			// Drain any further buffered lines before sleeping.
			continue
		}

		if !errors.Is(err, io.EOF) {
			// Transient read error: log once per occurrence and treat
			// as "no new data".
			t.errs.Add(1)
			log.Warn("logmon: read error, retrying", "error", err)
		}

		// Discard any partial line the reader buffered and rewind to
		// the last consumed position before waiting for more data.
		if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
			t.errs.Add(1)
			log.Warn("logmon: seek error, retrying", "error", err)
		}
		r.Reset(f)

		timer.Reset(t.opts.Interval)
		select {
		case <-ctx.Done():
			log.Info("logmon: stopped", "lines", t.lines.Load(), "events", t.events.Load())
			return nil
		case <-timer.C:
		}
	}
}

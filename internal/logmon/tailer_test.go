package logmon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeLog(t *testing.T, initial string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Client.txt")
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func appendLog(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
}

// collector gathers emitted identifiers across goroutines.
type collector struct {
	mu   sync.Mutex
	raws []string
}

func (c *collector) add(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raws = append(c.raws, raw)
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.raws...)
}

func (c *collector) waitFor(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if got := c.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.snapshot()
}

func genLine(raw string) string {
	return fmt.Sprintf(`2025/11/14 10:10:00 123456789 1186a8e1 [DEBUG Client 312] Generating level 4 area "%s" with seed 123456789`+"\n", raw)
}

func TestTailer_EmitsAppendedLines(t *testing.T) {
	path := writeLog(t, "2025/11/14 10:00:00 123 [INFO] Client version: 3.25.0\n")

	tailer, err := New(path, Options{Interval: 10 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	if !tailer.Enabled() {
		t.Fatal("tailer should be enabled for an existing file")
	}

	var c collector
	tailer.OnEvent(c.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx) }()

	// Write one line at a time, pausing longer than one poll interval
	// so every line crosses a sleep boundary.
	for _, raw := range []string{"1_1_1", "1_1_town", "1_1_2"} {
		time.Sleep(30 * time.Millisecond)
		appendLog(t, path, genLine(raw))
	}

	got := c.waitFor(t, 3)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{"1_1_1", "1_1_town", "1_1_2"}
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTailer_IgnoresExistingContent(t *testing.T) {
	// Lines present before monitoring starts must never be replayed.
	path := writeLog(t, genLine("1_1_1")+genLine("1_1_2"))

	tailer, err := New(path, Options{Interval: 10 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	var c collector
	tailer.OnEvent(c.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	appendLog(t, path, genLine("1_1_3"))

	got := c.waitFor(t, 1)
	cancel()
	<-done

	if len(got) != 1 || got[0] != "1_1_3" {
		t.Errorf("got %v, want only the appended id 1_1_3", got)
	}
}

func TestTailer_SkipsNonMatchingLines(t *testing.T) {
	path := writeLog(t, "")

	tailer, err := New(path, Options{Interval: 10 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	var c collector
	tailer.OnEvent(c.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx) }()

	appendLog(t, path, "2025/11/14 10:01:00 123 [INFO] Connecting to instance server...\n")
	appendLog(t, path, genLine("1_1_5"))

	got := c.waitFor(t, 1)
	cancel()
	<-done

	if len(got) != 1 || got[0] != "1_1_5" {
		t.Errorf("got %v, want [1_1_5]", got)
	}

	stats := tailer.Stats()
	if stats.Lines != 2 {
		t.Errorf("got %d lines consumed, want 2", stats.Lines)
	}
	if stats.Events != 1 {
		t.Errorf("got %d events, want 1", stats.Events)
	}
}

func TestTailer_PartialLineNotEmitted(t *testing.T) {
	path := writeLog(t, "")

	tailer, err := New(path, Options{Interval: 10 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	var c collector
	tailer.OnEvent(c.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx) }()

	// Write the line in two chunks; only the newline completes it.
	line := genLine("1_1_6")
	appendLog(t, path, line[:20])
	time.Sleep(50 * time.Millisecond)
	if got := c.snapshot(); len(got) != 0 {
		t.Fatalf("partial line emitted early: %v", got)
	}
	appendLog(t, path, line[20:])

	got := c.waitFor(t, 1)
	cancel()
	<-done

	if len(got) != 1 || got[0] != "1_1_6" {
		t.Errorf("got %v, want [1_1_6]", got)
	}
}

func TestTailer_MissingFileDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	tailer, err := New(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if tailer.Enabled() {
		t.Error("tailer should be disabled for a missing file")
	}
	if err := tailer.Run(context.Background()); err != ErrNoTarget {
		t.Errorf("Run: got %v, want ErrNoTarget", err)
	}
}

func TestTailer_StopWithinInterval(t *testing.T) {
	path := writeLog(t, "")

	tailer, err := New(path, Options{Interval: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("Run did not exit within one poll interval of cancellation")
	}
}

func TestExtract_Sources(t *testing.T) {
	tests := []struct {
		source Source
		line   string
		want   string
		wantOK bool
	}{
		{SourceGenerating, genLine("1_2_14_1"), "1_2_14_1", true},
		{SourceGenerating, `... Generating level 12 area "The Coast" with seed 42`, "The Coast", true},
		{SourceGenerating, "plain chatter", "", false},
		{SourceEntered, "2025/11/14 10:10:00 123 [INFO Client 312] : You have entered The Coast.", "The Coast", true},
		{SourceEntered, "2025/11/14 10:10:00 123 [INFO Client 312] : You have entered Lioneye's Watch.", "Lioneye's Watch", true},
		{SourceEntered, "you have entered lowercase chatter", "", false},
	}
	for _, tt := range tests {
		p, err := patternFor(tt.source)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := extract(p, tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("extract(%s, %q): got (%q, %v), want (%q, %v)", tt.source, tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPatternFor_Unknown(t *testing.T) {
	if _, err := patternFor(Source("bogus")); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

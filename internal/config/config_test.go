package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("got poll interval %s, want 500ms", cfg.PollInterval)
	}
	if cfg.EventSource != "generating" {
		t.Errorf("got event source %q, want %q", cfg.EventSource, "generating")
	}
	if cfg.MonotonicAct {
		t.Error("monotonic_act should default to false")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `client_log: /tmp/Client.txt
poll_interval: 250ms
event_source: entered
monotonic_act: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientLog != "/tmp/Client.txt" {
		t.Errorf("got client log %q, want /tmp/Client.txt", cfg.ClientLog)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("got poll interval %s, want 250ms", cfg.PollInterval)
	}
	if cfg.EventSource != "entered" {
		t.Errorf("got event source %q, want %q", cfg.EventSource, "entered")
	}
	if !cfg.MonotonicAct {
		t.Error("monotonic_act should be true")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("client_log: /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEVELTRACK_CLIENT_TXT", "/from/env")
	t.Setenv("LEVELTRACK_POLL_INTERVAL", "1s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientLog != "/from/env" {
		t.Errorf("got client log %q, want env override /from/env", cfg.ClientLog)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("got poll interval %s, want 1s", cfg.PollInterval)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad source", "event_source: teleported\n"},
		{"zero interval", "poll_interval: 0s\n"},
		{"bad yaml", "client_log: [\n"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestResolveClientLog_ExplicitWins(t *testing.T) {
	cfg := Config{ClientLog: "/explicit/Client.txt"}
	path, ok := cfg.ResolveClientLog()
	if !ok || path != "/explicit/Client.txt" {
		t.Errorf("got (%q, %v), want explicit path", path, ok)
	}
}

func TestResolveClientLog_Discovery(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{}
	if _, ok := cfg.ResolveClientLog(); ok {
		t.Fatal("expected no discovery hit in empty home")
	}

	target := filepath.Join(home, filepath.FromSlash(clientLogCandidates[0]))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok := cfg.ResolveClientLog()
	if !ok || path != target {
		t.Errorf("got (%q, %v), want (%q, true)", path, ok, target)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	s, err := Load(Settings{}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.DataDir != filepath.Join(home, ".eskalero") {
		t.Errorf("unexpected data dir %s", s.DataDir)
	}
	if s.JournalDir != filepath.Join(home, ".eskalero", "journals") {
		t.Errorf("unexpected journal dir %s", s.JournalDir)
	}
	if s.Mode != DefaultMode {
		t.Errorf("expected mode %s, got %s", DefaultMode, s.Mode)
	}
}

func TestLoadKeepsBaseWhenUnset(t *testing.T) {
	clearEnv(t)

	s, err := Load(Settings{DataDir: "/srv/eskalero", Mode: "classic"}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.DataDir != "/srv/eskalero" || s.Mode != "classic" {
		t.Errorf("expected base values to survive, got %+v", s)
	}
	if s.JournalDir != filepath.Join("/srv/eskalero", "journals") {
		t.Errorf("unexpected journal dir %s", s.JournalDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, "test.env")
	if err := os.WriteFile(dotenv, []byte("ESKALERO_MODE=classic\nESKALERO_PLAIN=true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	clearEnv(t)
	t.Setenv("ESKALERO_DATA_DIR", dir)

	s, err := Load(Settings{Mode: "triple"}, dotenv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.DataDir != dir {
		t.Errorf("expected data dir from env, got %s", s.DataDir)
	}
	if s.Mode != "classic" || !s.Plain {
		t.Errorf("expected .env values, got %+v", s)
	}
}

func TestLoadParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("ESKALERO_PLAIN", "not-a-bool")

	_, err := Load(Settings{}, filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ESKALERO_DATA_DIR", "ESKALERO_JOURNAL_DIR", "ESKALERO_MODE", "ESKALERO_PLAIN", "ESKALERO_NO_JOURNAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

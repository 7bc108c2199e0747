package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLineupRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader([]string{dir})

	path, err := l.SaveLineup(&Lineup{Name: "Friday Night", Mode: "triple", Players: []string{"Anna", "Bert", "Jan Peter"}})
	if err != nil {
		t.Fatalf("Failed to save lineup: %v", err)
	}
	if filepath.Base(path) != "friday-night.yaml" {
		t.Errorf("Unexpected file name %s", path)
	}

	lu, err := l.LoadLineup("friday night")
	if err != nil {
		t.Fatalf("Failed to load lineup: %v", err)
	}
	if lu.Name != "Friday Night" || lu.Mode != "triple" {
		t.Errorf("Unexpected lineup %+v", lu)
	}
	if len(lu.Players) != 3 || lu.Players[2] != "Jan Peter" {
		t.Errorf("Unexpected players %v", lu.Players)
	}
}

func TestLineupFallbackHierarchy(t *testing.T) {
	user, shared := t.TempDir(), t.TempDir()
	writeLineup(t, shared, "club.yaml", "name: club\nplayers: [Cleo, Dora]\n")
	writeLineup(t, shared, "family.yaml", "name: family\nplayers: [Mom, Dad]\n")
	writeLineup(t, user, "club.yaml", "name: club\nmode: classic\nplayers: [Anna, Bert]\n")

	l := NewLoader([]string{user, shared})

	lu, err := l.LoadLineup("club")
	if err != nil {
		t.Fatalf("Failed to load lineup: %v", err)
	}
	if lu.Players[0] != "Anna" {
		t.Errorf("Expected the first directory to win, got %v", lu.Players)
	}

	names, err := l.ListLineups()
	if err != nil {
		t.Fatalf("Failed to list lineups: %v", err)
	}
	if len(names) != 2 || names[0] != "club" || names[1] != "family" {
		t.Errorf("Unexpected lineups %v", names)
	}

	if _, err := l.LoadLineup("missing"); err == nil {
		t.Error("Expected error for a missing lineup")
	}
}

func TestLineupValidation(t *testing.T) {
	l := NewLoader([]string{t.TempDir()})

	bad := []*Lineup{
		{Name: "", Players: []string{"Anna"}},
		{Name: "a/b", Players: []string{"Anna"}},
		{Name: "empty"},
		{Name: "blank", Players: []string{"Anna", "  "}},
	}
	for _, lu := range bad {
		if _, err := l.SaveLineup(lu); err == nil {
			t.Errorf("Expected validation error for %+v", lu)
		}
	}

	if _, err := NewLoader(nil).SaveLineup(&Lineup{Name: "x", Players: []string{"Anna"}}); err == nil {
		t.Error("Expected error without a data directory")
	}
}

func writeLineup(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "lineups"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lineups", name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
